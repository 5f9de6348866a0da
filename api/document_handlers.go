package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	internalErrors "github.com/docsearch/go-docs-search/internal/errors"
)

// GetDocumentHandler returns a single document by its integer ID.
func (api *API) GetDocumentHandler(c *gin.Context) {
	idParam := c.Param("id")
	id, err := strconv.Atoi(idParam)
	if err != nil {
		SendValidationError(c, ErrorDetail{Field: "id", Message: "Document ID must be an integer"})
		return
	}

	doc, err := api.engine.GetDocument(id)
	if err != nil {
		if errors.Is(err, internalErrors.ErrDocumentNotFound) {
			SendDocumentNotFoundError(c, idParam)
			return
		}
		SendInternalError(c, "get document", err)
		return
	}
	c.JSON(http.StatusOK, doc)
}

// ListCategoriesHandler returns the sorted categories of the loaded
// corpus plus the default category.
func (api *API) ListCategoriesHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.ListCategories())
}
