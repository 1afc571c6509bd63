package reminder

import (
	"context"

	"reminder-nlp-service/internal/model"
)

// UseCase defines the business logic interface for the reminder domain.
type UseCase interface {
	// Parse interprets free-form reminder text into a structured record.
	// It is total over any input text, including empty text; the only
	// hard failure is an inference error from the model backend.
	Parse(ctx context.Context, sc model.Scope, input ParseInput) (model.Reminder, error)
}
