package types

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidTimeString возвращается при некорректном формате времени
var ErrInvalidTimeString = errors.New("invalid time string format")

const (
	timeStringLayout = "15:04"
	minutesPerDay    = 24 * 60
)

// TimeString represents a wall-clock time of day as a zero-padded "HH:MM"
// string. The canonical form makes lexicographic comparison equivalent to
// chronological comparison, so values can be ordered without parsing.
type TimeString string

// NewTimeString создает TimeString из time.Time (отбрасывает секунды)
func NewTimeString(t time.Time) TimeString {
	return TimeString(t.Format(timeStringLayout))
}

// NewTimeStringFromString парсит строку "HH:MM" и приводит её к канонической форме
func NewTimeStringFromString(s string) (TimeString, error) {
	parsed, err := time.Parse(timeStringLayout, s)
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidTimeString, s)
	}
	return TimeString(parsed.Format(timeStringLayout)), nil
}

// NewTimeStringFromMinutes создает TimeString из количества минут с начала дня.
// Значение 24*60 допустимо как эксклюзивная граница интервала ("24:00").
func NewTimeStringFromMinutes(m int) (TimeString, error) {
	if m < 0 || m > minutesPerDay {
		return "", fmt.Errorf("%w: %d minutes is out of day range", ErrInvalidTimeString, m)
	}
	return TimeString(fmt.Sprintf("%02d:%02d", m/60, m%60)), nil
}

// String returns the canonical "HH:MM" form.
func (t TimeString) String() string {
	return string(t)
}

// IsZero returns true for the empty value.
func (t TimeString) IsZero() bool {
	return t == ""
}

// Validate проверяет, что значение является корректным временем "HH:MM"
func (t TimeString) Validate() error {
	if _, err := time.Parse(timeStringLayout, string(t)); err != nil {
		return fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return nil
}

// Minutes возвращает количество минут с начала дня
func (t TimeString) Minutes() (int, error) {
	parsed, err := time.Parse(timeStringLayout, string(t))
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeString, string(t))
	}
	return parsed.Hour()*60 + parsed.Minute(), nil
}

// AddMinutes возвращает время, сдвинутое на m минут вперед.
// Результат не может выходить за пределы суток ("24:00" допустимо как граница).
func (t TimeString) AddMinutes(m int) (TimeString, error) {
	total, err := t.Minutes()
	if err != nil {
		return "", err
	}
	return NewTimeStringFromMinutes(total + m)
}

// IsBefore reports whether t is strictly earlier than other.
// Lexicographic comparison is valid for canonical zero-padded values.
func (t TimeString) IsBefore(other TimeString) bool {
	return t < other
}

// IsAfter reports whether t is strictly later than other.
func (t TimeString) IsAfter(other TimeString) bool {
	return t > other
}
