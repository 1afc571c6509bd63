package usecase

import (
	"strings"

	"reminder-nlp-service/internal/model"
	"reminder-nlp-service/pkg/medication"
)

// classifyCategoryEntityAware decides the category on the model-backed
// path. A medication-looking entity short-circuits every other test;
// otherwise the shared keyword table applies, with "take" added to the
// medication keywords.
func classifyCategoryEntityAware(text string, entities []model.Entity) model.Category {
	for _, e := range entities {
		if medication.IsLikelyName(e.Word) {
			return model.CategoryMedication
		}
	}

	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		keywords := rule.keywords
		if rule.category == model.CategoryMedication {
			keywords = append([]string{medicationTakeKeyword}, keywords...)
		}
		if containsAny(lower, keywords) {
			return rule.category
		}
	}

	return model.CategoryOther
}

// classifyCategoryKeyword decides the category on the rule path.
// Detected medication name tokens take top precedence, mirroring the
// entity override on the model path; then the shared keyword table.
func classifyCategoryKeyword(text string, medicationNames []string) model.Category {
	if len(medicationNames) > 0 {
		return model.CategoryMedication
	}

	lower := strings.ToLower(text)
	for _, rule := range categoryRules {
		if containsAny(lower, rule.keywords) {
			return rule.category
		}
	}

	return model.CategoryOther
}

// classifyPriority maps urgency keywords to a priority, independent of
// category and backend. Defaults to medium.
func classifyPriority(text string) model.Priority {
	lower := strings.ToLower(text)
	for _, rule := range priorityRules {
		if containsAny(lower, rule.keywords) {
			return rule.priority
		}
	}
	return model.PriorityMedium
}

func containsAny(lower string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(lower, kw) {
			return true
		}
	}
	return false
}

// medicationNamesFromEntities filters extracted entities down to
// medication name candidates, preserving extraction order.
func medicationNamesFromEntities(entities []model.Entity) []string {
	names := []string{}
	for _, e := range entities {
		if _, ok := medicationEntityGroups[e.Group]; !ok {
			continue
		}
		word := strings.TrimSpace(e.Word)
		if medication.IsLikelyName(word) {
			names = append(names, word)
		}
	}
	return names
}

// scanMedicationTokens runs the medication heuristic over whitespace
// tokens of the raw text for the rule path, where no entities exist.
// Short tokens and known heuristic traps are skipped.
func scanMedicationTokens(text string) []string {
	names := []string{}
	for _, token := range strings.Fields(text) {
		word := strings.Trim(token, ".,!?;:()[]\"'")
		if len(word) < minMedicationTokenLen {
			continue
		}
		if _, skip := medicationTokenStopwords[strings.ToLower(word)]; skip {
			continue
		}
		if medication.IsLikelyName(word) {
			names = append(names, word)
		}
	}
	return names
}
