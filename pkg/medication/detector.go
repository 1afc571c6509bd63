// Package medication provides a lexical heuristic for recognizing
// medication names in free-form reminder text.
package medication

import "strings"

// nameSuffixes are common endings of drug names (aspirin, paracetamol,
// amoxicillin, erythromycin, atorvastatin, lisinopril, furosemide).
var nameSuffixes = []string{"in", "ol", "cin", "mycin", "statin", "pril", "ide"}

// knownNames is a curated set of frequently prescribed medications.
var knownNames = map[string]struct{}{
	"aspirin":      {},
	"insulin":      {},
	"metformin":    {},
	"lisinopril":   {},
	"atorvastatin": {},
}

// IsLikelyName reports whether word looks like a medication name.
// The word is trimmed and lowercased, then tested against the suffix
// list and the curated dictionary.
func IsLikelyName(word string) bool {
	w := strings.ToLower(strings.TrimSpace(word))
	if w == "" {
		return false
	}

	for _, suffix := range nameSuffixes {
		if strings.HasSuffix(w, suffix) {
			return true
		}
	}

	_, ok := knownNames[w]
	return ok
}
