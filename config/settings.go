// Package config provides configuration structures for the search service.
// It defines corpus, ranking, and cache settings with sensible defaults.
package config

import "time"

// Settings contains all tunable options for the search service.
// All fields have working defaults applied by ApplyDefaults; a zero
// Settings value is therefore never used directly.
type Settings struct {
	// CategoryPathPrefix is stripped from a document path before its
	// first path segment is read as the document's category
	// (e.g. "topics/basics/intro.html" -> "basics").
	CategoryPathPrefix string `json:"category_path_prefix"`

	// DefaultCategory is assigned to documents whose path yields no
	// category segment, and is always present in the category list.
	DefaultCategory string `json:"default_category"`

	// DefaultPageSize is used by the HTTP layer when a request omits
	// page_size. MaxPageSize caps any requested page size.
	DefaultPageSize int `json:"default_page_size"`
	MaxPageSize     int `json:"max_page_size"`

	// PreviewLength is the maximum preview window size in characters.
	PreviewLength int `json:"preview_length"`

	// TitleWeight multiplies the title component of the relevance rank.
	TitleWeight int `json:"title_weight"`

	// CacheTTL and CacheCapacity bound the per-snapshot result cache.
	CacheTTL      time.Duration `json:"cache_ttl"`
	CacheCapacity int           `json:"cache_capacity"`

	// Locale is a BCP 47 tag used for locale-aware category sorting.
	Locale string `json:"locale"`
}

// ApplyDefaults fills in default values for any unset fields.
func (s *Settings) ApplyDefaults() {
	if s.CategoryPathPrefix == "" {
		s.CategoryPathPrefix = "topics/"
	}
	if s.DefaultCategory == "" {
		s.DefaultCategory = "uncategorized"
	}
	if s.DefaultPageSize == 0 {
		s.DefaultPageSize = 10
	}
	if s.MaxPageSize == 0 {
		s.MaxPageSize = 100
	}
	if s.DefaultPageSize > s.MaxPageSize {
		s.DefaultPageSize = s.MaxPageSize
	}
	if s.PreviewLength == 0 {
		s.PreviewLength = 600
	}
	if s.TitleWeight == 0 {
		s.TitleWeight = 20
	}
	if s.CacheTTL == 0 {
		s.CacheTTL = 5 * time.Minute
	}
	if s.CacheCapacity == 0 {
		s.CacheCapacity = 120
	}
	if s.Locale == "" {
		s.Locale = "en"
	}
}

// Validate returns a list of human-readable problems with the settings.
// An empty list means the settings are usable.
func (s *Settings) Validate() []string {
	var problems []string
	if s.DefaultPageSize < 1 {
		problems = append(problems, "default_page_size must be at least 1")
	}
	if s.MaxPageSize < 1 {
		problems = append(problems, "max_page_size must be at least 1")
	}
	if s.DefaultPageSize > s.MaxPageSize {
		problems = append(problems, "default_page_size cannot exceed max_page_size")
	}
	if s.PreviewLength < 1 {
		problems = append(problems, "preview_length must be at least 1")
	}
	if s.TitleWeight < 1 {
		problems = append(problems, "title_weight must be at least 1")
	}
	if s.CacheTTL < 0 {
		problems = append(problems, "cache_ttl cannot be negative")
	}
	if s.CacheCapacity < 1 {
		problems = append(problems, "cache_capacity must be at least 1")
	}
	return problems
}

// Default returns a Settings value with all defaults applied.
func Default() *Settings {
	s := &Settings{}
	s.ApplyDefaults()
	return s
}
