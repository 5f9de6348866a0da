package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/docsearch/go-docs-search/api"
	"github.com/docsearch/go-docs-search/config"
	"github.com/docsearch/go-docs-search/internal/engine"
	"github.com/docsearch/go-docs-search/internal/loader"
	"github.com/docsearch/go-docs-search/services"
)

func main() {
	var (
		help           = flag.Bool("help", false, "Show help message")
		version        = flag.Bool("version", false, "Show version information")
		port           = flag.String("port", "8080", "Port to run the server on")
		dataDir        = flag.String("data-dir", "./data", "Directory holding the corpus files")
		categoryPrefix = flag.String("category-prefix", "", "Path prefix stripped before deriving categories")
		locale         = flag.String("locale", "", "BCP 47 locale tag for category sorting")
	)

	flag.Parse()

	if *help {
		fmt.Printf("Docs Search - a full-text search service over a documentation corpus\n\n")
		fmt.Printf("Usage: %s [options]\n\n", os.Args[0])
		fmt.Printf("Options:\n")
		flag.PrintDefaults()
		fmt.Printf("\nExamples:\n")
		fmt.Printf("  %s                        # Serve on port 8080 from ./data\n", os.Args[0])
		fmt.Printf("  %s --port 9000            # Serve on port 9000\n", os.Args[0])
		fmt.Printf("  %s --data-dir /srv/docs   # Use a custom corpus directory\n", os.Args[0])
		return
	}

	if *version {
		fmt.Printf("Docs Search v1.0.0\n")
		return
	}

	settings := &config.Settings{
		CategoryPathPrefix: *categoryPrefix,
		Locale:             *locale,
	}
	settings.ApplyDefaults()
	if problems := settings.Validate(); len(problems) > 0 {
		log.Fatalf("Invalid settings: %v", problems)
	}

	searchEngine, err := engine.NewEngine(settings)
	if err != nil {
		log.Fatalf("Failed to initialize engine: %v", err)
	}

	// A missing or malformed corpus leaves the service running with zero
	// documents rather than crashing.
	log.Printf("Using data directory: %s", *dataDir)
	source := func() ([]services.CorpusRecord, error) {
		return loader.ReadDir(*dataDir)
	}
	if records, err := source(); err != nil {
		log.Printf("Corpus load failed, serving empty corpus: %v", err)
	} else if err := searchEngine.Load(records); err != nil {
		log.Printf("Corpus build failed, serving empty corpus: %v", err)
	}

	router := gin.Default()
	api.SetupRoutes(router, searchEngine, source, settings)

	log.Printf("Starting server on port %s...", *port)
	if err := router.Run(":" + *port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
