package types

import (
	"database/sql/driver"
	"errors"
	"fmt"
	"time"
)

const (
	timeStringFormat = "15:04"
	minutesInDay     = 24 * 60
)

var (
	// ErrInvalidTimeString возвращается при некорректном формате времени (ожидается HH:MM)
	ErrInvalidTimeString = errors.New("types: invalid time string format")

	// ErrTimeOutOfRange возвращается, когда результат операции выходит за пределы суток
	ErrTimeOutOfRange = errors.New("types: time out of range")
)

// TimeString represents a wall-clock time of day in "HH:MM" (24h) form.
// The string form avoids timezone drift: a booking at "10:00" means
// 10:00 at the salon, regardless of where the server runs.
type TimeString string

// NewTimeString creates a TimeString from a time.Time, keeping only HH:MM.
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringFormat))
}

// NewTimeStringFromString parses and validates a "HH:MM" string.
func NewTimeStringFromString(s string) (TimeString, error) {
	ts := TimeString(s)
	if err := ts.Validate(); err != nil {
		return "", err
	}
	return ts, nil
}

// Validate checks that the value is a well-formed "HH:MM" time.
func (t TimeString) Validate() error {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	// time.Parse принимает "9:05", но каноничный формат - с ведущим нулём
	if parsed.Format(timeStringFormat) != string(t) {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// String returns the "HH:MM" representation.
func (t TimeString) String() string {
	return string(t)
}

// Minutes returns the number of minutes since midnight.
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringFormat, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes returns the time shifted forward by the given number of minutes.
// Crossing midnight is not supported and returns ErrTimeOutOfRange.
func (t TimeString) AddMinutes(minutes int) (TimeString, error) {
	current, err := t.Minutes()
	if err != nil {
		return "", err
	}

	total := current + minutes
	if total < 0 || total >= minutesInDay {
		return "", fmt.Errorf("%w: %s + %d minutes", ErrTimeOutOfRange, string(t), minutes)
	}

	return TimeString(fmt.Sprintf("%02d:%02d", total/60, total%60)), nil
}

// IsBefore reports whether t is strictly earlier than other.
func (t TimeString) IsBefore(other TimeString) bool {
	// Для валидных "HH:MM" с ведущими нулями лексикографическое сравнение
	// совпадает с хронологическим
	return string(t) < string(other)
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return string(t) > string(other)
}

// Value implements driver.Valuer so the type can be written directly.
func (t TimeString) Value() (driver.Value, error) {
	return string(t), nil
}

// Scan implements sql.Scanner. Accepts "HH:MM" and "HH:MM:SS" column values.
func (t *TimeString) Scan(src interface{}) error {
	switch v := src.(type) {
	case nil:
		*t = ""
		return nil
	case string:
		*t = truncateSeconds(v)
		return nil
	case []byte:
		*t = truncateSeconds(string(v))
		return nil
	case time.Time:
		*t = NewTimeString(v)
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimeString, src)
	}
}

// truncateSeconds обрезает секунды у значений вида "10:00:00" из колонок TIME
func truncateSeconds(s string) TimeString {
	if len(s) > len(timeStringFormat) {
		return TimeString(s[:len(timeStringFormat)])
	}
	return TimeString(s)
}
