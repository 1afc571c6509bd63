package usecase

import (
	"context"
	"fmt"

	"reminder-nlp-service/internal/model"
	"reminder-nlp-service/internal/reminder"
)

// Parse runs the full interpretation pipeline over the input text:
// entity extraction, medication detection, category and priority
// classification, temporal resolution, and title synthesis. Both
// backend paths produce identically shaped results; only entity
// population and the classifier variant differ.
func (uc *implUseCase) Parse(ctx context.Context, sc model.Scope, input reminder.ParseInput) (model.Reminder, error) {
	text := input.Text

	uc.l.Infof(ctx, "Parse: user=%s backend=%s input_length=%d", sc.UserID, uc.extractor.Parser(), len(text))

	entities, err := uc.extractor.Extract(ctx, text)
	if err != nil {
		// No mid-request fallback to the rule path once the model
		// backend is selected for the process.
		return model.Reminder{}, fmt.Errorf("%w: %v", reminder.ErrInference, err)
	}

	var medicationNames []string
	var category model.Category

	if uc.extractor.Parser() == model.ParserModel {
		medicationNames = medicationNamesFromEntities(entities)
		category = classifyCategoryEntityAware(text, entities)
	} else {
		medicationNames = scanMedicationTokens(text)
		category = classifyCategoryKeyword(text, medicationNames)
	}

	scheduledTime, found := uc.resolver.Resolve(text, uc.now())
	if !found {
		// Default is the wall clock at assembly, never cached earlier.
		scheduledTime = uc.now()
	}

	result := model.Reminder{
		Title:           generateTitle(text, category, medicationNames),
		Description:     text,
		Category:        category,
		ScheduledTime:   scheduledTime,
		Priority:        classifyPriority(text),
		MedicationNames: medicationNames,
		Entities:        entities,
		ParserUsed:      uc.extractor.Parser(),
	}

	uc.l.Infof(ctx, "Parse: category=%s priority=%s medications=%d entities=%d",
		result.Category, result.Priority, len(result.MedicationNames), len(result.Entities))

	return result, nil
}
