package search

import (
	"testing"

	"github.com/docsearch/go-docs-search/config"
	"github.com/docsearch/go-docs-search/index"
	"github.com/docsearch/go-docs-search/store"
)

type testDoc struct {
	title   string
	content string
	path    string
}

func buildCorpus(t *testing.T, docs []testDoc) (*store.DocumentStore, *index.TokenIndex) {
	t.Helper()
	settings := config.Default()
	ds := store.New(settings)
	for _, d := range docs {
		if err := ds.Append(d.title, d.content, d.path); err != nil {
			t.Fatalf("Append failed: %v", err)
		}
	}
	ds.Finalize()
	return ds, index.Build(ds)
}

func idSet(ids ...int) map[int]struct{} {
	set := make(map[int]struct{}, len(ids))
	for _, id := range ids {
		set[id] = struct{}{}
	}
	return set
}

func TestSelectCandidates(t *testing.T) {
	_, idx := buildCorpus(t, []testDoc{
		{"Alpha Guide", "install steps", "topics/setup/a.html"},
		{"Beta Guide", "usage notes", "topics/usage/b.html"},
		{"Gamma", "install and usage", "topics/setup/c.html"},
	})

	t.Run("single ascii group prunes", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("install"), nil)
		if c.Unconstrained() || c.Empty() {
			t.Fatalf("expected a candidate set")
		}
		want := idSet(0, 2)
		if len(c.IDs()) != len(want) {
			t.Fatalf("candidates = %v, want %v", c.IDs(), want)
		}
		for id := range want {
			if _, ok := c.IDs()[id]; !ok {
				t.Errorf("missing candidate %d", id)
			}
		}
	})

	t.Run("two groups intersect", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("install usage"), nil)
		if _, ok := c.IDs()[2]; !ok || len(c.IDs()) != 1 {
			t.Errorf("candidates = %v, want only doc 2", c.IDs())
		}
	})

	t.Run("absent token short-circuits to empty", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("install zzzmissing"), nil)
		if !c.Empty() {
			t.Errorf("expected empty candidates")
		}
	})

	t.Run("multi-alternative group never prunes", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("install|usage"), nil)
		if !c.Unconstrained() {
			t.Errorf("OR group must fall back to full scan")
		}
	})

	t.Run("cjk group never prunes", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("搜索"), nil)
		if !c.Unconstrained() {
			t.Errorf("CJK group must fall back to full scan")
		}
	})

	t.Run("short token never prunes", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("a"), nil)
		if !c.Unconstrained() {
			t.Errorf("sub-minimum token must fall back to full scan")
		}
	})

	t.Run("base restriction intersected", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("install"), idSet(0, 1))
		if _, ok := c.IDs()[0]; !ok || len(c.IDs()) != 1 {
			t.Errorf("candidates = %v, want only doc 0", c.IDs())
		}
	})

	t.Run("no eligible group returns base set", func(t *testing.T) {
		base := idSet(1, 2)
		c := selectCandidates(idx, ParseQuery("install|usage"), base)
		if c.Unconstrained() || len(c.IDs()) != 2 {
			t.Errorf("expected base set back, got %v", c.IDs())
		}
	})

	t.Run("disjoint base and bucket is empty", func(t *testing.T) {
		c := selectCandidates(idx, ParseQuery("install"), idSet(1))
		if !c.Empty() {
			t.Errorf("expected empty candidates")
		}
	})
}
