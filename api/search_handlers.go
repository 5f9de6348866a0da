package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docsearch/go-docs-search/services"
)

// SearchRequest defines the JSON structure for search queries.
type SearchRequest struct {
	Keyword     string `json:"keyword"`
	TitleOnly   bool   `json:"title_only"`
	Page        int    `json:"page"`
	PageSize    int    `json:"page_size"`
	BaseIndexes []int  `json:"base_indexes,omitempty"`
	Category    string `json:"category,omitempty"`
}

// SearchHandler handles search requests. An empty keyword is not an
// error: it yields an empty result set.
func (api *API) SearchHandler(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		SendInvalidJSONError(c, err)
		return
	}

	// A request omitting page_size gets the service default; the core
	// still clamps whatever arrives.
	if req.PageSize == 0 {
		req.PageSize = api.settings.DefaultPageSize
	}

	results, err := api.engine.Search(services.SearchQuery{
		Keyword:     req.Keyword,
		TitleOnly:   req.TitleOnly,
		Page:        req.Page,
		PageSize:    req.PageSize,
		BaseIndexes: req.BaseIndexes,
		Category:    req.Category,
	})
	if err != nil {
		SendError(c, http.StatusInternalServerError, ErrorCodeSearchFailed, "Search failed: "+err.Error())
		return
	}
	c.JSON(http.StatusOK, results)
}
