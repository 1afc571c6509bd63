package medication_test

import (
	"testing"

	"reminder-nlp-service/pkg/medication"
)

func TestIsLikelyName(t *testing.T) {
	tests := []struct {
		name string
		word string
		want bool
	}{
		{
			name: "Known medication",
			word: "aspirin",
			want: true,
		},
		{
			name: "Known medication mixed case",
			word: "Aspirin",
			want: true,
		},
		{
			name: "Suffix cin",
			word: "Amoxicillin",
			want: true,
		},
		{
			name: "Suffix statin",
			word: "rosuvastatin",
			want: true,
		},
		{
			name: "Suffix pril",
			word: "enalapril",
			want: true,
		},
		{
			name: "Suffix ide",
			word: "furosemide",
			want: true,
		},
		{
			name: "Surrounding whitespace",
			word: "  metformin  ",
			want: true,
		},
		{
			name: "Ordinary word",
			word: "Walking",
			want: false,
		},
		{
			name: "Ordinary word no suffix",
			word: "doctor",
			want: false,
		},
		{
			name: "Empty string",
			word: "",
			want: false,
		},
		{
			name: "Whitespace only",
			word: "   ",
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := medication.IsLikelyName(tt.word); got != tt.want {
				t.Errorf("IsLikelyName(%q) = %v, want %v", tt.word, got, tt.want)
			}
		})
	}
}
