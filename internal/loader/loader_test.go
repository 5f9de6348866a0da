package loader

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	internalErrors "github.com/docsearch/go-docs-search/internal/errors"
)

func writeFile(t *testing.T, dir, name, content string) {
	t.Helper()
	if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
		t.Fatalf("writing %s: %v", name, err)
	}
}

func TestReadDirSingleFile(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs.json", `[
		{"title": "A", "content": "alpha", "path": "topics/a/a.html"},
		{"title": "B", "content": "beta", "path": "topics/b/b.html"}
	]`)

	records, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(records) != 2 || records[0].Title != "A" || records[1].Content != "beta" {
		t.Errorf("records = %+v", records)
	}
}

func TestReadDirChunked(t *testing.T) {
	dir := t.TempDir()
	// Chunk order is numeric, not lexicographic.
	writeFile(t, dir, "docs-10.json", `[{"title": "third", "content": "", "path": ""}]`)
	writeFile(t, dir, "docs-2.json", `[{"title": "second", "content": "", "path": ""}]`)
	writeFile(t, dir, "docs-1.json", `[{"title": "first", "content": "", "path": ""}]`)
	writeFile(t, dir, "notes.txt", "ignored")

	records, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	titles := make([]string, len(records))
	for i, r := range records {
		titles[i] = r.Title
	}
	want := []string{"first", "second", "third"}
	if len(titles) != len(want) {
		t.Fatalf("titles = %v, want %v", titles, want)
	}
	for i := range want {
		if titles[i] != want[i] {
			t.Fatalf("titles = %v, want %v", titles, want)
		}
	}
}

func TestReadDirSingleFileWinsOverChunks(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs.json", `[{"title": "single", "content": "", "path": ""}]`)
	writeFile(t, dir, "docs-1.json", `[{"title": "chunk", "content": "", "path": ""}]`)

	records, err := ReadDir(dir)
	if err != nil {
		t.Fatalf("ReadDir failed: %v", err)
	}
	if len(records) != 1 || records[0].Title != "single" {
		t.Errorf("records = %+v, want the single-file corpus", records)
	}
}

func TestReadDirNoSource(t *testing.T) {
	_, err := ReadDir(t.TempDir())
	if !errors.Is(err, internalErrors.ErrNoCorpusSource) {
		t.Errorf("err = %v, want ErrNoCorpusSource", err)
	}
}

func TestReadDirMalformed(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "docs.json", `not json`)

	if _, err := ReadDir(dir); err == nil {
		t.Errorf("malformed corpus must fail, not silently load")
	}
}
