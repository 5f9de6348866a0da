package search

import (
	"github.com/docsearch/go-docs-search/index"
	"github.com/docsearch/go-docs-search/internal/tokenizer"
)

type candidateKind int

const (
	candidatesUnconstrained candidateKind = iota
	candidatesSet
	candidatesEmpty
)

// Candidates is the outcome of index-based pruning. It is an explicit
// three-way result so callers cannot mistake "no constraint" for
// "matched nothing": Unconstrained means scan the whole store, Set
// carries an upper bound on the matching IDs, Empty means no document
// can match.
type Candidates struct {
	kind candidateKind
	ids  map[int]struct{}
}

func unconstrainedCandidates() Candidates {
	return Candidates{kind: candidatesUnconstrained}
}

func emptyCandidates() Candidates {
	return Candidates{kind: candidatesEmpty}
}

func candidateSet(ids map[int]struct{}) Candidates {
	if len(ids) == 0 {
		return emptyCandidates()
	}
	return Candidates{kind: candidatesSet, ids: ids}
}

// Unconstrained reports whether the whole store must be scanned.
func (c Candidates) Unconstrained() bool { return c.kind == candidatesUnconstrained }

// Empty reports whether no document can match the query.
func (c Candidates) Empty() bool { return c.kind == candidatesEmpty }

// IDs returns the candidate ID set; only meaningful for a Set result.
func (c Candidates) IDs() map[int]struct{} { return c.ids }

// selectCandidates narrows the search space using the token index. Only
// a group whose single lowercase alternative is an indexable ASCII token
// can prune: multi-alternative groups would need a bucket union and CJK
// tokens have no addressable ASCII bucket, so both fall through to the
// full scan and are decided entirely by the ranker. The returned set,
// when constrained, is an upper bound: every true match is inside it.
// base, when non-nil, is the caller-supplied ID restriction.
func selectCandidates(idx *index.TokenIndex, groups []Group, base map[int]struct{}) Candidates {
	var candidates map[int]struct{}

	for _, group := range groups {
		if len(group.Lowered) != 1 {
			continue
		}
		token := group.Lowered[0]
		if !tokenizer.IsIndexableASCII(token) {
			continue
		}

		bucket := idx.Lookup(token)
		if len(bucket) == 0 {
			return emptyCandidates()
		}

		narrowed := make(map[int]struct{}, len(bucket))
		for id := range bucket {
			if base != nil {
				if _, ok := base[id]; !ok {
					continue
				}
			}
			if candidates != nil {
				if _, ok := candidates[id]; !ok {
					continue
				}
			}
			narrowed[id] = struct{}{}
		}
		if len(narrowed) == 0 {
			return emptyCandidates()
		}
		candidates = narrowed
	}

	if candidates == nil {
		if base != nil {
			return candidateSet(base)
		}
		return unconstrainedCandidates()
	}
	return candidateSet(candidates)
}
