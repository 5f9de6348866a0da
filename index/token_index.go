// Package index provides the inverted token index built once per corpus
// load.
package index

import (
	"github.com/docsearch/go-docs-search/internal/tokenizer"
	"github.com/docsearch/go-docs-search/store"
)

// TokenIndex maps a token to the set of document IDs whose title or
// content contains it at least once. A TokenIndex is built from a
// finalized store and never mutated afterwards; concurrent readers need
// no locking.
type TokenIndex struct {
	buckets map[string]map[int]struct{}
}

// Build tokenizes every document's combined lowercase text and records
// one membership per (token, document) pair. Runs once per load;
// O(total text length).
func Build(docs *store.DocumentStore) *TokenIndex {
	ti := &TokenIndex{buckets: make(map[string]map[int]struct{})}
	for id := 0; id < docs.Len(); id++ {
		doc, _ := docs.Get(id)
		for _, token := range tokenizer.Tokenize(doc.TitleLower + " " + doc.ContentLower) {
			bucket, ok := ti.buckets[token]
			if !ok {
				bucket = make(map[int]struct{})
				ti.buckets[token] = bucket
			}
			bucket[id] = struct{}{}
		}
	}
	return ti
}

// Lookup returns the set of document IDs containing token, or nil when
// the token was never seen. Callers must not modify the returned set.
func (ti *TokenIndex) Lookup(token string) map[int]struct{} {
	return ti.buckets[token]
}

// TermCount returns the number of distinct indexed tokens.
func (ti *TokenIndex) TermCount() int {
	return len(ti.buckets)
}
