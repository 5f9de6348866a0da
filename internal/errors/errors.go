// Package errors defines sentinel and typed errors shared across the
// search service.
package errors

import (
	"errors"
	"fmt"
)

// Sentinel errors for common error conditions
var (
	// ErrDocumentNotFound is returned when a document ID is outside the
	// loaded corpus.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrStoreFinalized is returned when appending to a store after it
	// has been finalized.
	ErrStoreFinalized = errors.New("document store already finalized")

	// ErrNoCorpusSource is returned when the data directory contains no
	// recognizable corpus files.
	ErrNoCorpusSource = errors.New("no corpus source found")
)

// DocumentNotFoundError carries the offending ID and the current corpus
// size for context.
type DocumentNotFoundError struct {
	ID   int
	Size int
}

func (e *DocumentNotFoundError) Error() string {
	return fmt.Sprintf("document %d not found (corpus has %d documents)", e.ID, e.Size)
}

func (e *DocumentNotFoundError) Is(target error) bool {
	return target == ErrDocumentNotFound
}

// NewDocumentNotFoundError creates a new DocumentNotFoundError.
func NewDocumentNotFoundError(id, size int) *DocumentNotFoundError {
	return &DocumentNotFoundError{ID: id, Size: size}
}
