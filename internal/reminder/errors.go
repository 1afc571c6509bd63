package reminder

import "errors"

// Domain-specific errors for the reminder package.
var (
	ErrInference = errors.New("entity extraction inference failed")
)
