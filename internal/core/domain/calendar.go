package domain

import (
	"fmt"
	"strconv"
	"time"
)

const dateLayout = "2006-01-02"

// TimeOfDay is a wall-clock time with second precision, stored in a TIME column.
type TimeOfDay struct {
	seconds int
}

// NewTimeOfDay builds a TimeOfDay, rejecting out-of-range components.
func NewTimeOfDay(hour, minute, second int) (TimeOfDay, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 {
		return TimeOfDay{}, fmt.Errorf("%w: time %02d:%02d:%02d out of range", ErrInvalidInput, hour, minute, second)
	}
	return TimeOfDay{seconds: hour*3600 + minute*60 + second}, nil
}

// ParseTimeOfDay accepts "HH:MM" or "HH:MM:SS".
func ParseTimeOfDay(s string) (TimeOfDay, error) {
	for _, layout := range []string{"15:04:05", "15:04"} {
		if t, err := time.Parse(layout, s); err == nil {
			return NewTimeOfDay(t.Hour(), t.Minute(), t.Second())
		}
	}
	return TimeOfDay{}, fmt.Errorf("%w: time %q must be HH:MM or HH:MM:SS", ErrInvalidInput, s)
}

// TimeOfDayFromMicroseconds converts a PostgreSQL TIME value (microseconds
// since midnight) into a TimeOfDay. Sub-second precision is truncated.
func TimeOfDayFromMicroseconds(us int64) TimeOfDay {
	return TimeOfDay{seconds: int(us / 1_000_000)}
}

func (t TimeOfDay) Hour() int   { return t.seconds / 3600 }
func (t TimeOfDay) Minute() int { return t.seconds % 3600 / 60 }
func (t TimeOfDay) Second() int { return t.seconds % 60 }

// Microseconds returns the value as microseconds since midnight.
func (t TimeOfDay) Microseconds() int64 {
	return int64(t.seconds) * 1_000_000
}

// String renders "HH:MM", or "HH:MM:SS" when seconds are non-zero, so that a
// value written as "14:00" reads back as "14:00".
func (t TimeOfDay) String() string {
	if t.Second() == 0 {
		return fmt.Sprintf("%02d:%02d", t.Hour(), t.Minute())
	}
	return fmt.Sprintf("%02d:%02d:%02d", t.Hour(), t.Minute(), t.Second())
}

func (t TimeOfDay) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(t.String())), nil
}

// Date is a calendar date without time zone, stored in a DATE column.
type Date struct {
	t time.Time
}

// ParseDate accepts "YYYY-MM-DD".
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("%w: date %q must be YYYY-MM-DD", ErrInvalidInput, s)
	}
	return Date{t: t}, nil
}

// DateOf truncates t to its calendar date.
func DateOf(t time.Time) Date {
	return Date{t: time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)}
}

// Time returns midnight UTC of the date.
func (d Date) Time() time.Time { return d.t }

func (d Date) IsZero() bool { return d.t.IsZero() }

func (d Date) String() string { return d.t.Format(dateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	return []byte(strconv.Quote(d.String())), nil
}
