package usecase

import "reminder-nlp-service/internal/model"

// categoryRule pairs a category with its trigger keywords. Rules are
// tested in order against the lowercased full text by substring
// containment; first match wins.
type categoryRule struct {
	category model.Category
	keywords []string
}

// categoryRules is the single keyword table consulted by both
// classification variants.
var categoryRules = []categoryRule{
	{model.CategoryMedication, []string{"medicine", "medication", "pill", "tablet", "dose"}},
	{model.CategoryAppointment, []string{"appointment", "doctor", "clinic", "hospital"}},
	{model.CategoryMeal, []string{"meal", "breakfast", "lunch", "dinner", "eat"}},
	{model.CategoryExercise, []string{"exercise", "walk", "gym", "workout"}},
}

// medicationTakeKeyword extends the medication keyword set on the
// entity-aware path only. The rule path deliberately excludes it:
// without entity confirmation, "take" alone is too weak a signal.
const medicationTakeKeyword = "take"

// priorityRule pairs a priority with its urgency keywords, tested in
// order, first match wins.
type priorityRule struct {
	priority model.Priority
	keywords []string
}

var priorityRules = []priorityRule{
	{model.PriorityCritical, []string{"urgent", "critical", "emergency", "immediately"}},
	{model.PriorityHigh, []string{"important", "must", "essential"}},
	{model.PriorityLow, []string{"optional", "if possible", "maybe"}},
}

// medicationEntityGroups are the NER groups eligible as medication name
// candidates. The model tags drug names as miscellaneous or, for brand
// names, organizations.
var medicationEntityGroups = map[string]struct{}{
	"MISC": {},
	"ORG":  {},
}

// categoryTitles are the fixed display titles per category.
var categoryTitles = map[model.Category]string{
	model.CategoryMedication:  "Take Medication",
	model.CategoryAppointment: "Doctor Appointment",
	model.CategoryMeal:        "Meal Reminder",
	model.CategoryExercise:    "Exercise Time",
}

// titleWordLimit caps fallback titles built from the raw text.
const titleWordLimit = 4

// minMedicationTokenLen filters short tokens out of the rule-path
// medication scan; the suffix heuristic is far too loose below this.
const minMedicationTokenLen = 5

// medicationTokenStopwords are common English words the suffix
// heuristic would otherwise misread as drug names.
var medicationTokenStopwords = map[string]struct{}{
	"again": {}, "begin": {}, "within": {}, "certain": {}, "explain": {},
	"contain": {}, "maintain": {}, "obtain": {}, "remain": {}, "brain": {},
	"train": {}, "chain": {}, "plain": {}, "school": {}, "control": {},
	"patrol": {}, "aside": {}, "beside": {}, "decide": {}, "inside": {},
	"outside": {}, "provide": {}, "guide": {}, "pride": {}, "slide": {},
}
