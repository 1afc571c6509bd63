package extractor

import (
	"context"

	"reminder-nlp-service/pkg/bertner"
	"reminder-nlp-service/pkg/log"
)

// Config selects and configures the extraction backend.
type Config struct {
	Enabled bool   // NER model toggle; false forces the rule variant
	APIKey  string // Inference API token
	APIURL  string // Optional endpoint override
	Model   string // Optional model override
}

// New selects the extraction backend from config, once, at startup.
// The rule variant is chosen when the model is disabled or has no API
// key; that is a defined degraded mode, not a failure.
func New(ctx context.Context, cfg Config, l log.Logger) Extractor {
	if !cfg.Enabled || cfg.APIKey == "" {
		l.Warn(ctx, "NER model not configured, extraction runs in rule mode")
		return NewRule()
	}

	opts := []bertner.Option{}
	if cfg.APIURL != "" {
		opts = append(opts, bertner.WithAPIURL(cfg.APIURL))
	}
	if cfg.Model != "" {
		opts = append(opts, bertner.WithModel(cfg.Model))
	}

	client := bertner.NewClient(cfg.APIKey, opts...)
	l.Infof(ctx, "NER model initialized: %s", client.Model())
	return NewBERT(client)
}
