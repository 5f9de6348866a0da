// Package engine owns the loaded corpus and exposes the service
// surface. All derived structures for one load cycle are bundled into a
// snapshot behind an atomic pointer, so queries always observe a fully
// built store, index and category list, never a partial rebuild.
package engine

import (
	"log"
	"sync"
	"sync/atomic"

	"golang.org/x/text/collate"
	"golang.org/x/text/language"

	"github.com/docsearch/go-docs-search/config"
	"github.com/docsearch/go-docs-search/index"
	"github.com/docsearch/go-docs-search/internal/errors"
	"github.com/docsearch/go-docs-search/internal/search"
	"github.com/docsearch/go-docs-search/services"
	"github.com/docsearch/go-docs-search/store"
)

// snapshot bundles everything derived from one corpus load. The result
// cache lives inside the search service, so swapping snapshots also
// discards every cached result list referencing old document IDs.
type snapshot struct {
	store      *store.DocumentStore
	index      *index.TokenIndex
	categories []string
	search     *search.Service
}

// Engine implements services.Engine over the current snapshot. Load is
// the single mutating operation; readers never block and in-flight
// queries keep using the snapshot they started with.
type Engine struct {
	settings *config.Settings
	collator *collate.Collator

	loadMu sync.Mutex // serializes Load; collator is not concurrency-safe
	snap   atomic.Pointer[snapshot]
}

// NewEngine creates an engine serving an empty corpus until the first
// Load.
func NewEngine(settings *config.Settings) (*Engine, error) {
	if settings == nil {
		settings = config.Default()
	}
	settings.ApplyDefaults()

	tag, err := language.Parse(settings.Locale)
	if err != nil {
		log.Printf("Invalid locale %q, falling back to und: %v", settings.Locale, err)
		tag = language.Und
	}

	eng := &Engine{
		settings: settings,
		collator: collate.New(tag),
	}
	if err := eng.Load(nil); err != nil {
		return nil, err
	}
	return eng, nil
}

// Load builds a fresh store, token index and category list from the
// given records and atomically swaps them in. Previously issued
// document IDs are invalid afterwards. Records that fail to append are
// skipped with a log line; the load itself still completes.
func (e *Engine) Load(records []services.CorpusRecord) error {
	e.loadMu.Lock()
	defer e.loadMu.Unlock()

	docStore := store.New(e.settings)
	for i, rec := range records {
		if err := docStore.Append(rec.Title, rec.Content, rec.Path); err != nil {
			log.Printf("Skipping corpus record %d: %v", i, err)
		}
	}
	docStore.Finalize()

	tokenIndex := index.Build(docStore)

	categories := docStore.Categories()
	e.collator.SortStrings(categories)

	searchService, err := search.NewService(docStore, tokenIndex, e.settings)
	if err != nil {
		return err
	}

	e.snap.Store(&snapshot{
		store:      docStore,
		index:      tokenIndex,
		categories: categories,
		search:     searchService,
	})
	log.Printf("Loaded %d documents, %d categories, %d indexed tokens",
		docStore.Len(), len(categories), tokenIndex.TermCount())
	return nil
}

// Search runs one query against the current snapshot.
func (e *Engine) Search(query services.SearchQuery) (services.SearchResult, error) {
	return e.snap.Load().search.Search(query)
}

// GetDocument returns the document with the given ID, or a not-found
// error when the ID is outside the loaded corpus.
func (e *Engine) GetDocument(id int) (services.DocumentView, error) {
	snap := e.snap.Load()
	doc, ok := snap.store.Get(id)
	if !ok {
		return services.DocumentView{}, errors.NewDocumentNotFoundError(id, snap.store.Len())
	}
	return services.DocumentView{
		Content: doc.Content,
		Title:   doc.Title,
		Path:    doc.Path,
	}, nil
}

// ListCategories returns the locale-sorted categories of the current
// snapshot.
func (e *Engine) ListCategories() services.CategoriesResult {
	return services.CategoriesResult{
		Categories:      e.snap.Load().categories,
		DefaultCategory: e.settings.DefaultCategory,
	}
}

// Stats reports basic statistics for the current snapshot.
func (e *Engine) Stats() services.StatsResult {
	snap := e.snap.Load()
	return services.StatsResult{
		DocumentCount: snap.store.Len(),
		CategoryCount: len(snap.categories),
		TokenCount:    snap.index.TermCount(),
	}
}
