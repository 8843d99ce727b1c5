package domain

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Boundary parsers used by presentation layers. All failures are
// InvalidArgumentError values.

// Require returns an InvalidArgumentError for field when cond is false.
func Require(cond bool, field, reason string) error {
	if cond {
		return nil
	}
	return &InvalidArgumentError{Field: field, Reason: reason}
}

// ParseGender accepts M/F in any case; only the first letter is considered.
func ParseGender(s string) (Gender, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return "", &InvalidArgumentError{Field: "gender", Reason: "required (M/F)"}
	}
	g := Gender(strings.ToUpper(s[:1]))
	if !g.Valid() {
		return "", &InvalidArgumentError{Field: "gender", Reason: "must be M or F"}
	}
	return g, nil
}

// ParseInt parses a required integer field.
func ParseInt(s, field string) (int, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InvalidArgumentError{Field: field, Reason: "required"}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, &InvalidArgumentError{Field: field, Reason: "must be a number"}
	}
	return n, nil
}

// ParseAge parses an age in years between 0 and 150.
func ParseAge(s string) (int, error) {
	n, err := ParseInt(s, "age")
	if err != nil {
		return 0, err
	}
	if n < 0 || n > 150 {
		return 0, &InvalidArgumentError{Field: "age", Reason: fmt.Sprintf("%d out of range", n)}
	}
	return n, nil
}

// ParseTimeOfDay parses "HH:MM". "24:00" is accepted as the end of the day.
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, &InvalidArgumentError{Field: "time", Reason: "required (HH:MM)"}
	}
	if s == "24:00" {
		return MinutesPerDay, nil
	}
	t, err := time.Parse("15:04", s)
	if err != nil {
		return 0, &InvalidArgumentError{Field: "time", Reason: "format must be HH:MM"}
	}
	return Clock(t.Hour(), t.Minute()), nil
}

// ParseWeekday accepts full names or three-letter prefixes, any case.
func ParseWeekday(s string) (Weekday, error) {
	d, ok := lookupWeekday(s)
	if !ok {
		return 0, &InvalidArgumentError{Field: "day", Reason: fmt.Sprintf("unknown weekday %q", s)}
	}
	return d, nil
}

// ParseRole accepts manager, doctor or nurse in any case.
func ParseRole(s string) (Role, error) {
	r := Role(strings.ToLower(strings.TrimSpace(s)))
	if !r.Valid() {
		return "", &InvalidArgumentError{Field: "role", Reason: fmt.Sprintf("unknown role %q", s)}
	}
	return r, nil
}

// ParseTimestamp accepts RFC 3339 or "2006-01-02 15:04" (interpreted as UTC).
func ParseTimestamp(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, &InvalidArgumentError{Field: "timestamp", Reason: "required"}
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t.UTC(), nil
	}
	if t, err := time.ParseInLocation("2006-01-02 15:04", s, time.UTC); err == nil {
		return t, nil
	}
	return time.Time{}, &InvalidArgumentError{Field: "timestamp", Reason: "format must be RFC 3339 or YYYY-MM-DD HH:MM"}
}
