package datemath_test

import (
	"testing"
	"time"

	"reminder-nlp-service/pkg/datemath"
)

func TestNewResolver(t *testing.T) {
	_, err := datemath.NewResolver("Asia/Ho_Chi_Minh")
	if err != nil {
		t.Fatalf("unexpected error creating valid resolver: %v", err)
	}

	_, err = datemath.NewResolver("Invalid/Timezone")
	if err == nil {
		t.Fatalf("expected error for invalid timezone")
	}
}

func TestResolve(t *testing.T) {
	resolver, _ := datemath.NewResolver("UTC")
	baseTime := time.Date(2024, 5, 1, 15, 30, 0, 0, time.UTC) // Wednesday, May 1, 2024
	startOfBase := time.Date(2024, 5, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		text   string
		want   time.Time
		wantOK bool
	}{
		{
			name:   "Tomorrow with am time",
			text:   "Take aspirin at 8am tomorrow",
			want:   startOfBase.AddDate(0, 0, 1).Add(8 * time.Hour),
			wantOK: true,
		},
		{
			name:   "Tomorrow alone",
			text:   "call the clinic tomorrow",
			want:   startOfBase.AddDate(0, 0, 1),
			wantOK: true,
		},
		{
			name:   "Day after tomorrow",
			text:   "refill prescription day after tomorrow",
			want:   startOfBase.AddDate(0, 0, 2),
			wantOK: true,
		},
		{
			name:   "Next Monday",
			text:   "Urgent doctor appointment next Monday",
			want:   startOfBase.AddDate(0, 0, 5), // Wed -> Mon is +5 days
			wantOK: true,
		},
		{
			name:   "Bare weekday resolves forward",
			text:   "dentist on friday",
			want:   startOfBase.AddDate(0, 0, 2),
			wantOK: true,
		},
		{
			name:   "Same weekday goes to next week",
			text:   "checkup on wednesday",
			want:   startOfBase.AddDate(0, 0, 7),
			wantOK: true,
		},
		{
			name:   "PM clock with minutes",
			text:   "dinner at 7:30pm",
			want:   startOfBase.Add(19*time.Hour + 30*time.Minute),
			wantOK: true,
		},
		{
			name:   "Past clock time rolls to next day",
			text:   "stretch at 6am",
			want:   startOfBase.AddDate(0, 0, 1).Add(6 * time.Hour),
			wantOK: true,
		},
		{
			name:   "24h clock with at",
			text:   "meeting at 17:45",
			want:   startOfBase.Add(17*time.Hour + 45*time.Minute),
			wantOK: true,
		},
		{
			name:   "Noon",
			text:   "lunch at noon",
			want:   startOfBase.AddDate(0, 0, 1).Add(12 * time.Hour), // 12:00 already passed at base
			wantOK: true,
		},
		{
			name:   "Tonight",
			text:   "take pills tonight",
			want:   startOfBase.Add(21 * time.Hour),
			wantOK: true,
		},
		{
			name:   "Tomorrow evening",
			text:   "visit grandma tomorrow evening",
			want:   startOfBase.AddDate(0, 0, 1).Add(18 * time.Hour),
			wantOK: true,
		},
		{
			name:   "In N days",
			text:   "blood test in 3 days",
			want:   startOfBase.AddDate(0, 0, 3),
			wantOK: true,
		},
		{
			name:   "In N weeks",
			text:   "follow-up in 2 weeks",
			want:   startOfBase.AddDate(0, 0, 14),
			wantOK: true,
		},
		{
			name:   "In N hours",
			text:   "next dose in 2 hours",
			want:   baseTime.Add(2 * time.Hour),
			wantOK: true,
		},
		{
			name:   "In N minutes",
			text:   "drink water in 30 minutes",
			want:   baseTime.Add(30 * time.Minute),
			wantOK: true,
		},
		{
			name:   "Midnight",
			text:   "new dose starts at midnight",
			want:   startOfBase.AddDate(0, 0, 1), // 00:00 passed, rolls forward
			wantOK: true,
		},
		{
			name:   "No temporal expression",
			text:   "walk the dog",
			wantOK: false,
		},
		{
			name:   "Empty text",
			text:   "",
			wantOK: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := resolver.Resolve(tt.text, baseTime)
			if ok != tt.wantOK {
				t.Fatalf("Resolve(%q) ok = %v, want %v", tt.text, ok, tt.wantOK)
			}
			if ok && !got.Equal(tt.want) {
				t.Errorf("Resolve(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
