// Package api exposes the search engine over HTTP using gin.
package api

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/docsearch/go-docs-search/config"
	"github.com/docsearch/go-docs-search/services"
)

// maxRequestBody caps search request bodies; queries are small.
const maxRequestBody = 1 << 20

// CorpusSource supplies raw records for a (re)load, typically backed by
// the data-directory loader.
type CorpusSource func() ([]services.CorpusRecord, error)

// API holds dependencies for the HTTP handlers.
type API struct {
	engine   services.Engine
	source   CorpusSource
	settings *config.Settings
}

// NewAPI creates a new API handler structure.
func NewAPI(engine services.Engine, source CorpusSource, settings *config.Settings) *API {
	if settings == nil {
		settings = config.Default()
	}
	return &API{engine: engine, source: source, settings: settings}
}

// SetupRoutes defines all the API routes for the search service.
func SetupRoutes(router *gin.Engine, engine services.Engine, source CorpusSource, settings *config.Settings) {
	apiHandler := NewAPI(engine, source, settings)

	router.Use(CORSMiddleware())
	router.Use(RequestSizeLimitMiddleware(maxRequestBody))

	router.GET("/health", apiHandler.HealthCheckHandler)
	router.GET("/stats", apiHandler.GetStatsHandler)
	router.GET("/categories", apiHandler.ListCategoriesHandler)
	router.GET("/documents/:id", apiHandler.GetDocumentHandler)
	router.POST("/search", apiHandler.SearchHandler)
	router.POST("/reload", apiHandler.ReloadHandler)
}

// HealthCheckHandler reports service liveness.
func (api *API) HealthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// GetStatsHandler returns corpus statistics for the current snapshot.
func (api *API) GetStatsHandler(c *gin.Context) {
	c.JSON(http.StatusOK, api.engine.Stats())
}

// ReloadHandler re-reads the corpus source and atomically swaps in the
// rebuilt snapshot.
func (api *API) ReloadHandler(c *gin.Context) {
	if api.source == nil {
		SendError(c, http.StatusServiceUnavailable, ErrorCodeLoadFailed, "No corpus source configured")
		return
	}
	records, err := api.source()
	if err != nil {
		log.Printf("Corpus reload failed: %v", err)
		SendError(c, http.StatusInternalServerError, ErrorCodeLoadFailed, "Failed to read corpus: "+err.Error())
		return
	}
	if err := api.engine.Load(records); err != nil {
		SendInternalError(c, "corpus load", err)
		return
	}
	c.JSON(http.StatusOK, api.engine.Stats())
}
