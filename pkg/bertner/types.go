package bertner

// tokenClassificationRequest is the HuggingFace Inference API request body
// for a token-classification pipeline.
type tokenClassificationRequest struct {
	Inputs     string            `json:"inputs"`
	Parameters requestParameters `json:"parameters"`
	Options    requestOptions    `json:"options"`
}

type requestParameters struct {
	AggregationStrategy string `json:"aggregation_strategy"`
}

type requestOptions struct {
	WaitForModel bool `json:"wait_for_model"`
}

// Span is a single named-entity span returned by the model. With simple
// aggregation, Word covers the whole detected span rather than a
// sub-token fragment.
type Span struct {
	EntityGroup string  `json:"entity_group"`
	Word        string  `json:"word"`
	Score       float64 `json:"score"`
	Start       int     `json:"start"`
	End         int     `json:"end"`
}
