// Package search implements the query pipeline: parsing, candidate
// pruning, ranking, result caching and pagination over one immutable
// corpus snapshot.
package search

import (
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/docsearch/go-docs-search/config"
	"github.com/docsearch/go-docs-search/index"
	"github.com/docsearch/go-docs-search/services"
	"github.com/docsearch/go-docs-search/store"
)

// allCategories is the case-insensitive category value that disables
// the category filter.
const allCategories = "all"

// Service implements the search logic for one loaded corpus. It holds
// only immutable structures plus the (internally synchronized) result
// cache, so concurrent Search calls need no further locking.
type Service struct {
	documentStore *store.DocumentStore
	tokenIndex    *index.TokenIndex
	settings      *config.Settings
	ranker        *Ranker
	cache         *resultCache
}

// NewService creates a new search Service over a finalized store and
// its token index.
func NewService(docStore *store.DocumentStore, tokenIndex *index.TokenIndex, settings *config.Settings) (*Service, error) {
	if docStore == nil {
		return nil, fmt.Errorf("document store cannot be nil")
	}
	if tokenIndex == nil {
		return nil, fmt.Errorf("token index cannot be nil")
	}
	if settings == nil {
		return nil, fmt.Errorf("settings cannot be nil")
	}
	return &Service{
		documentStore: docStore,
		tokenIndex:    tokenIndex,
		settings:      settings,
		ranker:        NewRanker(settings),
		cache:         newResultCache(settings.CacheCapacity, settings.CacheTTL),
	}, nil
}

// Search runs the full pipeline for one request: parse, cache lookup,
// candidate selection, ranking, sorting, cache store, pagination.
func (s *Service) Search(query services.SearchQuery) (services.SearchResult, error) {
	page := query.Page
	if page < 1 {
		page = 1
	}
	pageSize := query.PageSize
	if pageSize < 1 {
		pageSize = 1
	}
	if pageSize > s.settings.MaxPageSize {
		pageSize = s.settings.MaxPageSize
	}

	empty := services.SearchResult{
		Results:  []services.Hit{},
		Page:     page,
		PageSize: pageSize,
		QueryID:  uuid.New().String(),
	}

	groups := ParseQuery(query.Keyword)
	if len(groups) == 0 {
		return empty, nil
	}

	base, baseEmpty := s.validBaseIndexes(query.BaseIndexes)
	if baseEmpty {
		return empty, nil
	}

	category := normalizeCategory(query.Category)

	// The signature encodes the validated restriction, not the raw one,
	// so requests differing only in out-of-range IDs share one entry.
	var baseList []int
	if base != nil {
		baseList = make([]int, 0, len(base))
		for id := range base {
			baseList = append(baseList, id)
		}
	}

	key := querySignature(groups, query.TitleOnly, baseList, category)
	hits, ok := s.cache.get(key)
	if !ok {
		hits = s.rankAll(groups, selectCandidates(s.tokenIndex, groups, base), query.TitleOnly, category)
		s.cache.put(key, hits)
	}

	return s.paginate(hits, page, pageSize), nil
}

// validBaseIndexes filters the caller-supplied restriction down to IDs
// inside the loaded corpus. The second return is true when a non-empty
// restriction contained no valid ID, which must yield an empty result.
func (s *Service) validBaseIndexes(baseIndexes []int) (map[int]struct{}, bool) {
	if len(baseIndexes) == 0 {
		return nil, false
	}
	valid := make(map[int]struct{}, len(baseIndexes))
	for _, id := range baseIndexes {
		if id >= 0 && id < s.documentStore.Len() {
			valid[id] = struct{}{}
		}
	}
	if len(valid) == 0 {
		return nil, true
	}
	return valid, false
}

// rankAll applies the ranker to every ID in the candidate space, drops
// non-matches, and returns the full list sorted by descending rank with
// ascending ID as the deterministic tiebreak.
func (s *Service) rankAll(groups []Group, candidates Candidates, titleOnly bool, category string) []services.Hit {
	hits := make([]services.Hit, 0)
	if candidates.Empty() {
		return hits
	}

	score := func(id int) {
		doc, ok := s.documentStore.Get(id)
		if !ok {
			return
		}
		if category != "" && doc.Category != category {
			return
		}
		rank, matched := s.ranker.Rank(doc, groups, titleOnly)
		if !matched {
			return
		}
		preview, highlights := s.ranker.Preview(doc, groups)
		hits = append(hits, services.Hit{
			ID:         doc.ID,
			Title:      doc.Title,
			RawTitle:   doc.RawTitle,
			Path:       doc.Path,
			SourcePath: doc.SourcePath,
			Rank:       rank,
			Preview:    preview,
			Highlights: highlights,
			Content:    doc.Content,
			Category:   doc.Category,
		})
	}

	if candidates.Unconstrained() {
		for id := 0; id < s.documentStore.Len(); id++ {
			score(id)
		}
	} else {
		for id := range candidates.IDs() {
			score(id)
		}
	}

	sort.Slice(hits, func(i, j int) bool {
		if hits[i].Rank != hits[j].Rank {
			return hits[i].Rank > hits[j].Rank
		}
		return hits[i].ID < hits[j].ID
	})
	return hits
}

// paginate slices the sorted result list into the requested 1-based
// page. A page past the end yields an empty slice, not an error.
func (s *Service) paginate(hits []services.Hit, page, pageSize int) services.SearchResult {
	total := len(hits)
	totalPages := (total + pageSize - 1) / pageSize

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	pageHits := make([]services.Hit, end-start)
	copy(pageHits, hits[start:end])

	return services.SearchResult{
		Results:    pageHits,
		Total:      total,
		Page:       page,
		TotalPages: totalPages,
		PageSize:   pageSize,
		QueryID:    uuid.New().String(),
	}
}

// normalizeCategory maps the "no filter" spellings (empty or "all" in
// any casing) to the empty string.
func normalizeCategory(category string) string {
	if strings.EqualFold(category, allCategories) {
		return ""
	}
	return category
}
