package domain

import (
	"fmt"
	"strings"
	"time"
)

// TimeOfDay is a wall-clock time expressed in minutes after midnight.
// It serialises as "HH:MM".
type TimeOfDay int

// MinutesPerDay bounds TimeOfDay values; 24:00 is accepted as an end-of-day marker.
const MinutesPerDay = 24 * 60

// Clock builds a TimeOfDay from an hour and minute.
func Clock(hour, minute int) TimeOfDay {
	return TimeOfDay(hour*60 + minute)
}

// Valid reports whether t lies within 00:00 and 24:00 inclusive.
func (t TimeOfDay) Valid() bool { return t >= 0 && t <= MinutesPerDay }

// Hour returns the hour component.
func (t TimeOfDay) Hour() int { return int(t) / 60 }

// Minute returns the minute component.
func (t TimeOfDay) Minute() int { return int(t) % 60 }

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
}

// MarshalText implements encoding.TextMarshaler.
func (t TimeOfDay) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (t *TimeOfDay) UnmarshalText(text []byte) error {
	parsed, err := ParseTimeOfDay(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Weekday is an ISO-8601 day of week, Monday = 1 through Sunday = 7.
type Weekday int

// Days of the week in ISO order.
const (
	Monday Weekday = iota + 1
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
	Sunday
)

var weekdayNames = [...]string{"", "MONDAY", "TUESDAY", "WEDNESDAY", "THURSDAY", "FRIDAY", "SATURDAY", "SUNDAY"}

// Weekdays lists the days Monday through Sunday.
func Weekdays() []Weekday {
	return []Weekday{Monday, Tuesday, Wednesday, Thursday, Friday, Saturday, Sunday}
}

// WeekdayOf converts a time.Weekday.
func WeekdayOf(d time.Weekday) Weekday {
	if d == time.Sunday {
		return Sunday
	}
	return Weekday(d)
}

// Valid reports whether d is between Monday and Sunday.
func (d Weekday) Valid() bool { return d >= Monday && d <= Sunday }

func (d Weekday) String() string {
	if !d.Valid() {
		return fmt.Sprintf("Weekday(%d)", int(d))
	}
	return weekdayNames[d]
}

// MarshalText implements encoding.TextMarshaler.
func (d Weekday) MarshalText() ([]byte, error) {
	if !d.Valid() {
		return nil, fmt.Errorf("invalid weekday %d", int(d))
	}
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Weekday) UnmarshalText(text []byte) error {
	parsed, err := ParseWeekday(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

func lookupWeekday(s string) (Weekday, bool) {
	upper := strings.ToUpper(strings.TrimSpace(s))
	if upper == "" {
		return 0, false
	}
	for i := Monday; i <= Sunday; i++ {
		name := weekdayNames[i]
		if upper == name || (len(upper) >= 3 && strings.HasPrefix(name, upper)) {
			return i, true
		}
	}
	return 0, false
}
