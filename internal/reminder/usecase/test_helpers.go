package usecase

import (
	"context"
	"time"

	"reminder-nlp-service/internal/extractor"
	"reminder-nlp-service/internal/model"
	"reminder-nlp-service/pkg/datemath"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock model-backed extractor with canned entities
type mockModelExtractor struct {
	entities []model.Entity
	err      error
}

func (m *mockModelExtractor) Extract(ctx context.Context, text string) ([]model.Entity, error) {
	if m.err != nil {
		return nil, m.err
	}
	return m.entities, nil
}

func (m *mockModelExtractor) Parser() model.Parser { return model.ParserModel }

var _ extractor.Extractor = (*mockModelExtractor)(nil)

// newTestUseCase builds a usecase with a fixed clock for deterministic
// scheduled_time assertions.
func newTestUseCase(ext extractor.Extractor, fixedNow time.Time) *implUseCase {
	resolver, _ := datemath.NewResolver("UTC")
	uc := New(&mockLogger{}, ext, resolver)
	uc.now = func() time.Time { return fixedNow }
	return uc
}
