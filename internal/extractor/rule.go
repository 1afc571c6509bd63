package extractor

import (
	"context"

	"reminder-nlp-service/internal/model"
)

// RuleExtractor is the degraded variant used when no NER model is
// available. It always returns an empty entity list; this is defined
// behavior, not an error.
type RuleExtractor struct{}

var _ Extractor = (*RuleExtractor)(nil)

// NewRule creates the rule-mode extractor.
func NewRule() *RuleExtractor {
	return &RuleExtractor{}
}

// Extract implements Extractor.
func (e *RuleExtractor) Extract(ctx context.Context, text string) ([]model.Entity, error) {
	return []model.Entity{}, nil
}

// Parser implements Extractor.
func (e *RuleExtractor) Parser() model.Parser {
	return model.ParserRule
}
