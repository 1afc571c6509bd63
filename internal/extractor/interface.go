// Package extractor abstracts the entity extraction capability behind a
// single interface with two variants: a BERT-backed extractor and a
// rule-mode extractor that deterministically yields nothing. The variant
// is chosen once at process startup and never re-evaluated per request.
package extractor

import (
	"context"

	"reminder-nlp-service/internal/model"
)

// Extractor produces tagged entity spans from free text.
// Implementations are safe for concurrent use.
type Extractor interface {
	// Extract returns the entities detected in text, in extraction order.
	Extract(ctx context.Context, text string) ([]model.Entity, error)

	// Parser returns the backend tag reported in parse results.
	Parser() model.Parser
}
