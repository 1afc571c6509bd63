package usecase

import (
	"strings"
	"unicode"

	"reminder-nlp-service/internal/model"
)

// generateTitle synthesizes a short display title. A detected medication
// name wins over everything, then the fixed per-category titles, then
// the first words of the raw text.
func generateTitle(text string, category model.Category, medicationNames []string) string {
	if len(medicationNames) > 0 {
		return "Take " + medicationNames[0]
	}

	if title, ok := categoryTitles[category]; ok {
		return title
	}

	words := strings.Fields(text)
	if len(words) > titleWordLimit {
		words = words[:titleWordLimit]
	}
	return capitalizeFirst(strings.Join(words, " "))
}

// capitalizeFirst uppercases only the first character, leaving the rest
// of the string untouched.
func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	r := []rune(s)
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}
