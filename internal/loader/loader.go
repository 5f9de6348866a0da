// Package loader sources raw corpus records from a data directory. It
// is the feeding collaborator of the engine: it only reads and decodes
// files, all normalization and index building happens inside Load.
package loader

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"github.com/docsearch/go-docs-search/internal/errors"
	"github.com/docsearch/go-docs-search/services"
)

const (
	corpusFile  = "docs.json"
	chunkPrefix = "docs-"
	chunkSuffix = ".json"
)

// ReadDir reads corpus records from dir. It accepts either a single
// docs.json holding one JSON array, or chunked docs-<n>.json files
// which are concatenated in ascending numeric order. Returns
// ErrNoCorpusSource when neither exists.
func ReadDir(dir string) ([]services.CorpusRecord, error) {
	single := filepath.Join(dir, corpusFile)
	if _, err := os.Stat(single); err == nil {
		return readRecords(single)
	}

	chunks, err := chunkFiles(dir)
	if err != nil {
		return nil, err
	}
	if len(chunks) == 0 {
		return nil, fmt.Errorf("%w in %s", errors.ErrNoCorpusSource, dir)
	}

	var records []services.CorpusRecord
	for _, chunk := range chunks {
		part, err := readRecords(chunk)
		if err != nil {
			return nil, err
		}
		records = append(records, part...)
	}
	return records, nil
}

func readRecords(path string) ([]services.CorpusRecord, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read corpus file %s: %w", path, err)
	}
	var records []services.CorpusRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("failed to parse corpus file %s: %w", path, err)
	}
	return records, nil
}

// chunkFiles lists docs-<n>.json files in dir sorted by their numeric
// suffix, so docs-10.json sorts after docs-9.json.
func chunkFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read data directory %s: %w", dir, err)
	}

	type chunk struct {
		path string
		seq  int
	}
	var chunks []chunk
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || !strings.HasPrefix(name, chunkPrefix) || !strings.HasSuffix(name, chunkSuffix) {
			continue
		}
		seq, err := strconv.Atoi(strings.TrimSuffix(strings.TrimPrefix(name, chunkPrefix), chunkSuffix))
		if err != nil {
			continue
		}
		chunks = append(chunks, chunk{path: filepath.Join(dir, name), seq: seq})
	}

	sort.Slice(chunks, func(i, j int) bool { return chunks[i].seq < chunks[j].seq })

	paths := make([]string, len(chunks))
	for i, c := range chunks {
		paths[i] = c.path
	}
	return paths, nil
}
