// Package datemath resolves natural-language temporal expressions
// embedded in free text to absolute timestamps.
package datemath

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
)

var (
	reClockAmPm = regexp.MustCompile(`\b(\d{1,2})(?::(\d{2}))?\s*(am|pm)\b`)
	reClockAt   = regexp.MustCompile(`\bat\s+(\d{1,2})(?::(\d{2}))\b`)
	reDuration  = regexp.MustCompile(`\bin\s+(\d+)\s+(minute|minutes|hour|hours|day|days|week|weeks|month|months)\b`)
	reWeekday   = regexp.MustCompile(`\b(?:(next)\s+)?(monday|tuesday|wednesday|thursday|friday|saturday|sunday)\b`)
)

var weekdays = map[string]time.Weekday{
	"monday":    time.Monday,
	"tuesday":   time.Tuesday,
	"wednesday": time.Wednesday,
	"thursday":  time.Thursday,
	"friday":    time.Friday,
	"saturday":  time.Saturday,
	"sunday":    time.Sunday,
}

// namedTimes maps day-part words to a clock hour. Ordered so that
// longer words are tested before their substrings ("tonight" / "night").
var namedTimes = []struct {
	word string
	hour int
}{
	{"midnight", 0},
	{"afternoon", 15},
	{"noon", 12},
	{"morning", 9},
	{"evening", 18},
	{"tonight", 21},
	{"night", 21},
}

// Resolver converts temporal expressions found in free text to absolute
// time.Time values in a fixed location. Ambiguous weekday references
// resolve to the nearest future occurrence. Results are intended to be
// rendered naive (without an offset).
type Resolver struct {
	location *time.Location
}

// NewResolver creates a resolver for the given IANA timezone string,
// e.g. "Asia/Ho_Chi_Minh".
func NewResolver(timezone string) (*Resolver, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", timezone, err)
	}
	return &Resolver{location: loc}, nil
}

// Resolve scans text for a temporal expression and resolves it against
// baseTime. The second return value is false when the text contains no
// recognizable expression; that is not an error condition.
func (r *Resolver) Resolve(text string, baseTime time.Time) (time.Time, bool) {
	lower := strings.ToLower(text)
	base := baseTime.In(r.location)

	day, hasDay := r.resolveDay(lower, base)

	hour, minute, hasClock := resolveClock(lower)

	switch {
	case hasDay && hasClock:
		return time.Date(day.Year(), day.Month(), day.Day(), hour, minute, 0, 0, r.location), true
	case hasDay:
		return day, true
	case hasClock:
		at := time.Date(base.Year(), base.Month(), base.Day(), hour, minute, 0, 0, r.location)
		if !at.After(base) {
			at = at.AddDate(0, 0, 1)
		}
		return at, true
	}

	// "in 30 minutes" / "in 2 hours" — pure offsets from the base.
	if m := reDuration.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "minute"):
			return base.Add(time.Duration(amount) * time.Minute), true
		case strings.HasPrefix(m[2], "hour"):
			return base.Add(time.Duration(amount) * time.Hour), true
		}
	}

	return time.Time{}, false
}

// resolveDay finds the day component: "today", "tomorrow", a weekday
// name (with or without "next"), or "in N days/weeks/months".
func (r *Resolver) resolveDay(lower string, base time.Time) (time.Time, bool) {
	switch {
	case strings.Contains(lower, "day after tomorrow"):
		return r.startOfDay(base.AddDate(0, 0, 2)), true
	case strings.Contains(lower, "tomorrow"):
		return r.startOfDay(base.AddDate(0, 0, 1)), true
	case strings.Contains(lower, "today"), strings.Contains(lower, "tonight"):
		return r.startOfDay(base), true
	}

	if m := reWeekday.FindStringSubmatch(lower); m != nil {
		target := weekdays[m[2]]
		daysUntil := int(target-base.Weekday()+7) % 7
		if daysUntil == 0 {
			daysUntil = 7
		}
		return r.startOfDay(base.AddDate(0, 0, daysUntil)), true
	}

	if m := reDuration.FindStringSubmatch(lower); m != nil {
		amount, _ := strconv.Atoi(m[1])
		switch {
		case strings.HasPrefix(m[2], "day"):
			return r.startOfDay(base.AddDate(0, 0, amount)), true
		case strings.HasPrefix(m[2], "week"):
			return r.startOfDay(base.AddDate(0, 0, amount*7)), true
		case strings.HasPrefix(m[2], "month"):
			return r.startOfDay(base.AddDate(0, amount, 0)), true
		}
	}

	return time.Time{}, false
}

// resolveClock finds the time-of-day component: "8am", "8:30 pm",
// "at 14:30", or a day-part word like "noon" or "evening".
func resolveClock(lower string) (hour, minute int, ok bool) {
	if m := reClockAmPm.FindStringSubmatch(lower); m != nil {
		h, _ := strconv.Atoi(m[1])
		if h >= 1 && h <= 12 {
			if m[2] != "" {
				minute, _ = strconv.Atoi(m[2])
			}
			if h == 12 {
				h = 0
			}
			if m[3] == "pm" {
				h += 12
			}
			if minute <= 59 {
				return h, minute, true
			}
		}
	}

	if m := reClockAt.FindStringSubmatch(lower); m != nil {
		h, _ := strconv.Atoi(m[1])
		min, _ := strconv.Atoi(m[2])
		if h <= 23 && min <= 59 {
			return h, min, true
		}
	}

	for _, nt := range namedTimes {
		if strings.Contains(lower, nt.word) {
			return nt.hour, 0, true
		}
	}

	return 0, 0, false
}

// startOfDay returns midnight at the start of the given day in the
// resolver's timezone.
func (r *Resolver) startOfDay(t time.Time) time.Time {
	t = t.In(r.location)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, r.location)
}
