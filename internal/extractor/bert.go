package extractor

import (
	"context"
	"fmt"

	"reminder-nlp-service/internal/model"
	"reminder-nlp-service/pkg/bertner"
)

// Recognizer is the slice of the NER client used by the BERT extractor.
type Recognizer interface {
	Recognize(ctx context.Context, text string) ([]bertner.Span, error)
	Model() string
}

// BERTExtractor delegates extraction to the NER inference client.
// The underlying client is shared read-only for the process lifetime.
type BERTExtractor struct {
	ner Recognizer
}

var _ Extractor = (*BERTExtractor)(nil)

// NewBERT creates a model-backed extractor over the given recognizer.
func NewBERT(ner Recognizer) *BERTExtractor {
	return &BERTExtractor{ner: ner}
}

// Extract runs NER over text. An inference failure is surfaced to the
// caller: there is no mid-request fallback to the rule variant.
func (e *BERTExtractor) Extract(ctx context.Context, text string) ([]model.Entity, error) {
	spans, err := e.ner.Recognize(ctx, text)
	if err != nil {
		return nil, fmt.Errorf("ner inference failed: %w", err)
	}

	entities := make([]model.Entity, 0, len(spans))
	for _, s := range spans {
		entities = append(entities, model.Entity{
			Word:  s.Word,
			Group: s.EntityGroup,
			Score: s.Score,
		})
	}
	return entities, nil
}

// Parser implements Extractor.
func (e *BERTExtractor) Parser() model.Parser {
	return model.ParserModel
}
