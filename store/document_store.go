// Package store holds the normalized, immutable corpus for one load
// cycle and assigns each document its stable integer ID.
package store

import (
	"strings"

	"github.com/docsearch/go-docs-search/config"
	"github.com/docsearch/go-docs-search/internal/errors"
	"github.com/docsearch/go-docs-search/model"
)

// DocumentStore is append-only while a corpus load is in progress and
// immutable after Finalize. A document's ID is its position in the
// store. The store is never mutated once finalized; a corpus reload
// builds a fresh store and swaps it in wholesale.
type DocumentStore struct {
	settings   *config.Settings
	docs       []model.Document
	categories map[string]struct{}
	finalized  bool
}

// New creates an empty store ready to accept documents.
func New(settings *config.Settings) *DocumentStore {
	return &DocumentStore{
		settings: settings,
		categories: map[string]struct{}{
			settings.DefaultCategory: {},
		},
	}
}

// Append normalizes one raw record and adds it to the store, assigning
// the next ID. It fails once the store has been finalized.
func (ds *DocumentStore) Append(title, content, path string) error {
	if ds.finalized {
		return errors.ErrStoreFinalized
	}

	normPath := strings.ReplaceAll(normalizeLineEndings(path), "\\", "/")
	normTitle := normalizeLineEndings(title)
	normContent := normalizeLineEndings(content)
	category := ds.deriveCategory(normPath)

	doc := model.Document{
		ID:           len(ds.docs),
		Title:        normTitle,
		RawTitle:     title,
		Content:      normContent,
		Path:         normPath,
		SourcePath:   path,
		Category:     category,
		TitleLower:   strings.ToLower(normTitle),
		ContentLower: strings.ToLower(normContent),
	}
	ds.docs = append(ds.docs, doc)
	ds.categories[category] = struct{}{}
	return nil
}

// Finalize marks the store immutable. Derived structures (token index,
// sorted category list) must only be built from a finalized store.
func (ds *DocumentStore) Finalize() {
	ds.finalized = true
}

// Get returns the document with the given ID, or false when the ID is
// outside [0, Len()).
func (ds *DocumentStore) Get(id int) (model.Document, bool) {
	if id < 0 || id >= len(ds.docs) {
		return model.Document{}, false
	}
	return ds.docs[id], true
}

// Len returns the number of documents in the store.
func (ds *DocumentStore) Len() int {
	return len(ds.docs)
}

// Categories returns the distinct category values observed during load,
// always including the default category, in unspecified order.
func (ds *DocumentStore) Categories() []string {
	out := make([]string, 0, len(ds.categories))
	for c := range ds.categories {
		out = append(out, c)
	}
	return out
}

// deriveCategory reads the first path segment after the configured
// prefix. A document directly under the prefix (or outside it with no
// directory segment) falls back to the default category.
func (ds *DocumentStore) deriveCategory(path string) string {
	rest := strings.TrimPrefix(path, ds.settings.CategoryPathPrefix)
	segment, _, found := strings.Cut(rest, "/")
	if !found || segment == "" {
		return ds.settings.DefaultCategory
	}
	return segment
}

func normalizeLineEndings(s string) string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}
