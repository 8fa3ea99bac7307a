package model

import (
	"errors"
	"fmt"
)

// Sentinel errors. The concrete error types below match them with errors.Is.
var (
	// ErrInvalidRange indicates a malformed, inverted or out of horizon week range.
	ErrInvalidRange = errors.New("model: invalid week range")

	// ErrInvalidDay indicates a day label outside the six teaching days.
	ErrInvalidDay = errors.New("model: invalid day")

	// ErrEmptyRecord indicates compression was requested for a day with no conflicts.
	ErrEmptyRecord = errors.New("model: no conflicting weeks for day")

	// ErrInvalidCourse indicates a course without a name.
	ErrInvalidCourse = errors.New("model: invalid course")
)

// InvalidRangeError describes a week range that cannot be used.
type InvalidRangeError struct {
	Value   string
	Horizon int
	Reason  string
}

func (e *InvalidRangeError) Error() string {
	if e.Horizon > 0 {
		return fmt.Sprintf("invalid week range %q (horizon %d): %s", e.Value, e.Horizon, e.Reason)
	}
	return fmt.Sprintf("invalid week range %q: %s", e.Value, e.Reason)
}

func (e *InvalidRangeError) Is(target error) bool { return target == ErrInvalidRange }

// InvalidDayError describes a day label ParseDay does not understand.
type InvalidDayError struct {
	Value string
}

func (e *InvalidDayError) Error() string {
	return fmt.Sprintf("invalid day %q: expected one of 一 二 三 四 五 六", e.Value)
}

func (e *InvalidDayError) Is(target error) bool { return target == ErrInvalidDay }

// EmptyRecordError is returned when a record holds no weeks for Day.
type EmptyRecordError struct {
	Pair Pair
	Day  Day
}

func (e *EmptyRecordError) Error() string {
	if !e.Pair.Valid() {
		return fmt.Sprintf("no conflicting weeks on %s", e.Day)
	}
	return fmt.Sprintf("no conflicting weeks for %s on %s", e.Pair, e.Day)
}

func (e *EmptyRecordError) Is(target error) bool { return target == ErrEmptyRecord }
