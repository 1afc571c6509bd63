package reminder

// ParseInput is the input for reminder text interpretation.
// Text may be empty; the pipeline still produces a complete record.
type ParseInput struct {
	Text string
}
