package usecase

import (
	"time"

	"reminder-nlp-service/internal/extractor"
	"reminder-nlp-service/pkg/datemath"
	pkgLog "reminder-nlp-service/pkg/log"
)

type implUseCase struct {
	l         pkgLog.Logger
	extractor extractor.Extractor
	resolver  *datemath.Resolver
	now       func() time.Time
}

// New creates a new reminder UseCase instance. The extraction backend is
// fixed here for the process lifetime.
func New(l pkgLog.Logger, ext extractor.Extractor, resolver *datemath.Resolver) *implUseCase {
	return &implUseCase{
		l:         l,
		extractor: ext,
		resolver:  resolver,
		now:       time.Now,
	}
}
