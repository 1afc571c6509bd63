package model

import "time"

// Category classifies what domain a reminder belongs to.
type Category string

const (
	CategoryMedication  Category = "medication"
	CategoryAppointment Category = "appointment"
	CategoryMeal        Category = "meal"
	CategoryExercise    Category = "exercise"
	CategoryOther       Category = "other"
)

// Priority is the urgency level of a reminder.
type Priority string

const (
	PriorityCritical Priority = "critical"
	PriorityHigh     Priority = "high"
	PriorityMedium   Priority = "medium"
	PriorityLow      Priority = "low"
)

// Parser identifies which extraction backend produced a result.
type Parser string

const (
	ParserModel Parser = "model"
	ParserRule  Parser = "rule"
)

// Entity is a tagged text span produced by the NER model.
// The rule backend never produces entities.
type Entity struct {
	Word  string  // Whole-word span text, sub-token fragments aggregated
	Group string  // Semantic group tag (e.g. "MISC", "ORG", "PER")
	Score float64 // Model confidence in [0,1]
}

// Reminder is a fully interpreted reminder record.
// Description always carries the original input text verbatim.
type Reminder struct {
	Title           string
	Description     string
	Category        Category
	ScheduledTime   time.Time // Naive: rendered without a timezone offset
	Priority        Priority
	MedicationNames []string // Extraction/detection order, duplicates kept
	Entities        []Entity
	ParserUsed      Parser
}
