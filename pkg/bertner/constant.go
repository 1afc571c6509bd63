package bertner

import "time"

const (
	// DefaultModel is the default token-classification model
	DefaultModel = "dslim/bert-base-NER"

	// DefaultAPIURL is the default HuggingFace Inference API endpoint
	DefaultAPIURL = "https://api-inference.huggingface.co/models"

	// DefaultTimeout is the default HTTP client timeout
	DefaultTimeout = 30 * time.Second

	// AggregationSimple merges sub-token fragments into whole-word spans
	AggregationSimple = "simple"
)
