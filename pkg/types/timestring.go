// Package types holds small shared value types used across layers.
package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

// TimeFormat is the wire format for times of day.
const TimeFormat = "15:04"

var (
	// ErrInvalidTimeString is returned when a string is not a valid HH:MM time.
	ErrInvalidTimeString = errors.New("invalid time string format")
)

// TimeString represents a time of day in "HH:MM" format.
// It is used for slot boundaries in configuration and API payloads.
type TimeString string

// NewTimeString creates a TimeString from the time-of-day part of t.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(TimeFormat))
}

// NewTimeStringFromString parses and validates an "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// NewTimeStringFromParts builds a TimeString from hour and minute values.
func NewTimeStringFromParts(hour, minute int) (TimeString, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 {
		return "", fmt.Errorf("%w: %02d:%02d", ErrInvalidTimeString, hour, minute)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", hour, minute)), nil
}

// Validate checks that the value is a well-formed HH:MM time.
func (t TimeString) Validate() error {
	if _, err := time.Parse(TimeFormat, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero reports whether the value is empty.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the HH:MM representation.
func (t TimeString) String() string {
	return string(t)
}

// Parts returns the hour and minute components.
func (t TimeString) Parts() (hour, minute int, err error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour(), parsed.Minute(), nil
}

// Minutes returns the value as minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	hour, minute, err := t.Parts()
	if err != nil {
		return 0, err
	}
	return hour*60 + minute, nil
}

// AddMinutes returns a new TimeString shifted forward by the given minutes.
// The result wraps around midnight.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	parsed, err := time.Parse(TimeFormat, string(t))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return TimeString(parsed.Add(time.Duration(minutes) * time.Minute).Format(TimeFormat)), nil
}

// IsBefore reports whether t is strictly earlier in the day than other.
// Malformed values compare lexicographically, which matches HH:MM ordering
// for well-formed inputs.
func (t TimeString) IsBefore(other TimeString) bool {
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later in the day than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer for database writes.
func (t TimeString) Value() (driver.Value, error) {
	if t.IsZero() {
		return nil, nil
	}
	return string(t), nil
}

// Scan implements sql.Scanner for database reads.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = TimeString(v)
		return nil
	case []byte:
		*t = TimeString(v)
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T into TimeString", ErrInvalidTimeString, src)
	}
}
