package model

// Document is one normalized corpus entry. Its ID equals its position in
// the document store for the corpus load that produced it; a reload
// replaces the whole store and invalidates previously issued IDs.
//
// Title, Content and Path carry normalized text (line endings collapsed
// to "\n", backslashes in paths converted to forward slashes), while
// RawTitle and SourcePath preserve the text exactly as ingested.
// TitleLower and ContentLower are computed once at load time so query
// matching never re-folds case per request.
type Document struct {
	ID         int    `json:"id"`
	Title      string `json:"title"`
	RawTitle   string `json:"raw_title"`
	Content    string `json:"content"`
	Path       string `json:"path"`
	SourcePath string `json:"source_path"`
	Category   string `json:"category"`

	TitleLower   string `json:"-"`
	ContentLower string `json:"-"`
}
