// Package services defines the request/response types and interfaces
// through which the search core is consumed.
package services

// SearchQuery describes one search request.
type SearchQuery struct {
	Keyword   string `json:"keyword"`
	TitleOnly bool   `json:"title_only"`
	Page      int    `json:"page"`
	PageSize  int    `json:"page_size"`
	// BaseIndexes optionally restricts the search to a subset of
	// document IDs. IDs outside the loaded corpus are ignored; a
	// non-empty restriction with no valid ID yields an empty result.
	BaseIndexes []int `json:"base_indexes,omitempty"`
	// Category filters results to one derived category. Empty or "all"
	// (case-insensitive) disables the filter.
	Category string `json:"category,omitempty"`
}

// HighlightSpan marks one occurrence of a query alternative inside a
// hit's preview, as byte offsets into the preview string.
type HighlightSpan struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Hit is a single ranked search result.
type Hit struct {
	ID         int             `json:"id"`
	Title      string          `json:"title"`
	RawTitle   string          `json:"raw_title"`
	Path       string          `json:"path"`
	SourcePath string          `json:"source_path"`
	Rank       int             `json:"rank"`
	Preview    string          `json:"preview"`
	Highlights []HighlightSpan `json:"highlights,omitempty"`
	Content    string          `json:"content"`
	Category   string          `json:"category"`
}

// SearchResult is the paginated response for one search request.
type SearchResult struct {
	Results    []Hit  `json:"results"`
	Total      int    `json:"total"`
	Page       int    `json:"page"`
	TotalPages int    `json:"total_pages"`
	PageSize   int    `json:"page_size"`
	QueryID    string `json:"query_id"`
}

// DocumentView is the read-only projection returned for a single
// document fetch.
type DocumentView struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Path    string `json:"path"`
}

// CategoriesResult lists the distinct categories of the loaded corpus.
type CategoriesResult struct {
	Categories      []string `json:"categories"`
	DefaultCategory string   `json:"default_category"`
}

// StatsResult reports basic corpus statistics.
type StatsResult struct {
	DocumentCount int `json:"document_count"`
	CategoryCount int `json:"category_count"`
	TokenCount    int `json:"token_count"`
}

// CorpusRecord is one raw record fed into a corpus load, before
// normalization.
type CorpusRecord struct {
	Content string `json:"content"`
	Title   string `json:"title"`
	Path    string `json:"path"`
}

// Searcher executes ranked queries against the loaded corpus.
type Searcher interface {
	Search(query SearchQuery) (SearchResult, error)
}

// DocumentReader fetches single documents by ID.
type DocumentReader interface {
	GetDocument(id int) (DocumentView, error)
}

// CategoryLister reports the categories of the loaded corpus.
type CategoryLister interface {
	ListCategories() CategoriesResult
}

// CorpusLoader atomically replaces the loaded corpus.
type CorpusLoader interface {
	Load(records []CorpusRecord) error
}

// Engine combines the full service surface exposed to the HTTP layer.
type Engine interface {
	Searcher
	DocumentReader
	CategoryLister
	CorpusLoader
	Stats() StatsResult
}
