package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"reminder-nlp-service/internal/extractor"
	"reminder-nlp-service/internal/model"
	"reminder-nlp-service/internal/reminder"
)

var testNow = time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday

func parseText(t *testing.T, ext extractor.Extractor, text string) model.Reminder {
	t.Helper()
	uc := newTestUseCase(ext, testNow)
	result, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, reminder.ParseInput{Text: text})
	if err != nil {
		t.Fatalf("unexpected error parsing %q: %v", text, err)
	}
	return result
}

func TestParseRuleBackend(t *testing.T) {
	tests := []struct {
		name         string
		text         string
		wantCategory model.Category
		wantPriority model.Priority
		wantTitle    string
		wantTime     time.Time
		wantMeds     []string
	}{
		{
			name:         "Medication with time and day",
			text:         "Take aspirin at 8am tomorrow",
			wantCategory: model.CategoryMedication,
			wantPriority: model.PriorityMedium,
			wantTitle:    "Take aspirin",
			wantTime:     time.Date(2024, 5, 2, 8, 0, 0, 0, time.UTC),
			wantMeds:     []string{"aspirin"},
		},
		{
			name:         "Urgent appointment next weekday",
			text:         "Urgent doctor appointment next Monday",
			wantCategory: model.CategoryAppointment,
			wantPriority: model.PriorityCritical,
			wantTitle:    "Doctor Appointment",
			wantTime:     time.Date(2024, 5, 6, 0, 0, 0, 0, time.UTC),
			wantMeds:     []string{},
		},
		{
			name:         "Exercise without date defaults to now",
			text:         "walk the dog",
			wantCategory: model.CategoryExercise,
			wantPriority: model.PriorityMedium,
			wantTitle:    "Exercise Time",
			wantTime:     testNow,
			wantMeds:     []string{},
		},
		{
			name:         "Empty text yields complete default record",
			text:         "",
			wantCategory: model.CategoryOther,
			wantPriority: model.PriorityMedium,
			wantTitle:    "",
			wantTime:     testNow,
			wantMeds:     []string{},
		},
		{
			name:         "Meal with keyword",
			text:         "eat breakfast at 7:30am",
			wantCategory: model.CategoryMeal,
			wantPriority: model.PriorityMedium,
			wantTitle:    "Meal Reminder",
			wantTime:     time.Date(2024, 5, 2, 7, 30, 0, 0, time.UTC),
			wantMeds:     []string{},
		},
		{
			name:         "Fallback title from first words",
			text:         "call grandchildren about the weekend visit",
			wantCategory: model.CategoryOther,
			wantPriority: model.PriorityMedium,
			wantTitle:    "Call grandchildren about the",
			wantTime:     testNow,
			wantMeds:     []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := parseText(t, extractor.NewRule(), tt.text)

			if result.Category != tt.wantCategory {
				t.Errorf("category = %s, want %s", result.Category, tt.wantCategory)
			}
			if result.Priority != tt.wantPriority {
				t.Errorf("priority = %s, want %s", result.Priority, tt.wantPriority)
			}
			if result.Title != tt.wantTitle {
				t.Errorf("title = %q, want %q", result.Title, tt.wantTitle)
			}
			if !result.ScheduledTime.Equal(tt.wantTime) {
				t.Errorf("scheduled_time = %v, want %v", result.ScheduledTime, tt.wantTime)
			}
			if result.Description != tt.text {
				t.Errorf("description = %q, want original text %q", result.Description, tt.text)
			}
			if result.ParserUsed != model.ParserRule {
				t.Errorf("parser_used = %s, want rule", result.ParserUsed)
			}
			if len(result.Entities) != 0 {
				t.Errorf("rule backend must never produce entities, got %v", result.Entities)
			}
			if len(result.MedicationNames) != len(tt.wantMeds) {
				t.Fatalf("medication_names = %v, want %v", result.MedicationNames, tt.wantMeds)
			}
			for i, want := range tt.wantMeds {
				if result.MedicationNames[i] != want {
					t.Errorf("medication_names[%d] = %q, want %q", i, result.MedicationNames[i], want)
				}
			}
		})
	}
}

func TestParseModelBackend(t *testing.T) {
	ext := &mockModelExtractor{entities: []model.Entity{
		{Word: "metformin", Group: "MISC", Score: 0.97},
		{Word: "lisinopril", Group: "ORG", Score: 0.91},
	}}

	result := parseText(t, ext, "Take metformin and lisinopril twice daily")

	if result.ParserUsed != model.ParserModel {
		t.Errorf("parser_used = %s, want model", result.ParserUsed)
	}
	if result.Category != model.CategoryMedication {
		t.Errorf("category = %s, want medication", result.Category)
	}
	if result.Title != "Take metformin" {
		t.Errorf("title = %q, want %q", result.Title, "Take metformin")
	}
	if len(result.MedicationNames) != 2 ||
		result.MedicationNames[0] != "metformin" ||
		result.MedicationNames[1] != "lisinopril" {
		t.Errorf("medication_names = %v, want [metformin lisinopril]", result.MedicationNames)
	}
	if len(result.Entities) != 2 {
		t.Errorf("expected 2 entities, got %d", len(result.Entities))
	}
}

func TestParseModelBackendEntityOverride(t *testing.T) {
	// Entity-derived medication signal beats the appointment keyword.
	ext := &mockModelExtractor{entities: []model.Entity{
		{Word: "Atorvastatin", Group: "MISC", Score: 0.95},
	}}

	result := parseText(t, ext, "ask the doctor about Atorvastatin")

	if result.Category != model.CategoryMedication {
		t.Errorf("category = %s, want medication (entity override)", result.Category)
	}
	if result.Title != "Take Atorvastatin" {
		t.Errorf("title = %q, want %q", result.Title, "Take Atorvastatin")
	}
}

func TestParseInferenceFailureSurfaces(t *testing.T) {
	ext := &mockModelExtractor{err: errors.New("model overloaded")}
	uc := newTestUseCase(ext, testNow)

	_, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, reminder.ParseInput{Text: "take aspirin"})
	if !errors.Is(err, reminder.ErrInference) {
		t.Fatalf("expected ErrInference, got %v", err)
	}
}

func TestParseDeterministicForSameInput(t *testing.T) {
	uc := newTestUseCase(extractor.NewRule(), testNow)
	sc := model.Scope{UserID: "user-1"}
	input := reminder.ParseInput{Text: "Take aspirin at 8am tomorrow"}

	first, err := uc.Parse(context.Background(), sc, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := uc.Parse(context.Background(), sc, input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if first.Category != second.Category || first.Priority != second.Priority ||
		first.Title != second.Title || !first.ScheduledTime.Equal(second.ScheduledTime) {
		t.Errorf("identical input produced different results: %+v vs %+v", first, second)
	}
}

func TestParseUnresolvedTimeTracksClock(t *testing.T) {
	resolverlessText := "feed the cat" // no temporal expression

	earlier := parseText(t, extractor.NewRule(), resolverlessText)

	uc := newTestUseCase(extractor.NewRule(), testNow.Add(time.Minute))
	later, err := uc.Parse(context.Background(), model.Scope{UserID: "user-1"}, reminder.ParseInput{Text: resolverlessText})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !later.ScheduledTime.After(earlier.ScheduledTime) {
		t.Errorf("scheduled_time should track the clock when unresolved: %v then %v",
			earlier.ScheduledTime, later.ScheduledTime)
	}
}
