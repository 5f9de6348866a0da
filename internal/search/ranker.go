package search

import (
	"math"
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/docsearch/go-docs-search/config"
	"github.com/docsearch/go-docs-search/model"
	"github.com/docsearch/go-docs-search/services"
)

const ellipsis = "..."

// Ranker decides match/no-match and computes relevance ranks and
// previews for candidate documents.
type Ranker struct {
	settings *config.Settings
}

// NewRanker creates a Ranker with the given settings.
func NewRanker(settings *config.Settings) *Ranker {
	return &Ranker{settings: settings}
}

// Rank scores doc against the parsed query groups. It returns false
// when any group has no positive occurrence count (AND semantics). An
// occurrence count is a literal, non-overlapping, case-insensitive
// substring count against the precomputed lowercase projections.
//
// Per group the best alternative count is taken separately for title
// and content; the rank combines the geometric means of (count+1)
// products so one very frequent group cannot dominate a multi-group
// query, with title hits weighted TitleWeight times a content hit.
// Content is skipped entirely in title-only mode.
func (r *Ranker) Rank(doc model.Document, groups []Group, titleOnly bool) (int, bool) {
	if len(groups) == 0 {
		return 0, false
	}

	titleRank := 1.0
	contentRank := 1.0
	for _, group := range groups {
		bestTitle := 0
		bestContent := 0
		for _, alt := range group.Lowered {
			if n := strings.Count(doc.TitleLower, alt); n > bestTitle {
				bestTitle = n
			}
			if !titleOnly {
				if n := strings.Count(doc.ContentLower, alt); n > bestContent {
					bestContent = n
				}
			}
		}
		if bestTitle == 0 && bestContent == 0 {
			return 0, false
		}
		titleRank *= float64(bestTitle + 1)
		contentRank *= float64(bestContent + 1)
	}

	exp := 1 / float64(len(groups))
	rank := int(math.Round(math.Pow(titleRank, exp) * float64(r.settings.TitleWeight)))
	if !titleOnly {
		rank += int(math.Round(math.Pow(contentRank, exp)))
	}
	return rank, true
}

// Preview produces a window of up to PreviewLength characters of
// content centered on the earliest occurrence of any query alternative,
// with ellipsis markers where the window clips the content. When no
// alternative occurs in the content the preview is simply its leading
// characters. Highlight spans locate alternative occurrences inside the
// returned preview as byte offsets.
func (r *Ranker) Preview(doc model.Document, groups []Group) (string, []services.HighlightSpan) {
	limit := r.settings.PreviewLength

	earliest := -1
	for _, group := range groups {
		for _, alt := range group.Lowered {
			if pos := strings.Index(doc.ContentLower, alt); pos >= 0 && (earliest < 0 || pos < earliest) {
				earliest = pos
			}
		}
	}

	runes := []rune(doc.Content)
	if earliest < 0 {
		// No alternative occurs in the content, so there is nothing to
		// highlight either.
		if len(runes) <= limit {
			return doc.Content, nil
		}
		return string(runes[:limit]) + ellipsis, nil
	}

	center := utf8.RuneCountInString(doc.ContentLower[:earliest])
	start := center - limit/2
	if start < 0 {
		start = 0
	}
	end := start + limit
	if end > len(runes) {
		end = len(runes)
		if start = end - limit; start < 0 {
			start = 0
		}
	}

	preview := string(runes[start:end])
	if start > 0 {
		preview = ellipsis + preview
	}
	if end < len(runes) {
		preview += ellipsis
	}
	return preview, r.highlight(preview, groups)
}

// highlight finds every non-overlapping occurrence of each alternative
// in the preview, case-insensitively, and returns the spans sorted by
// start offset.
func (r *Ranker) highlight(preview string, groups []Group) []services.HighlightSpan {
	lower := strings.ToLower(preview)

	var spans []services.HighlightSpan
	for _, group := range groups {
		for _, alt := range group.Lowered {
			for from := 0; ; {
				rel := strings.Index(lower[from:], alt)
				if rel < 0 {
					break
				}
				start := from + rel
				spans = append(spans, services.HighlightSpan{Start: start, End: start + len(alt)})
				from = start + len(alt)
			}
		}
	}
	sort.Slice(spans, func(i, j int) bool {
		if spans[i].Start != spans[j].Start {
			return spans[i].Start < spans[j].Start
		}
		return spans[i].End < spans[j].End
	})
	return spans
}
