package model

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/width"
)

// DefaultHorizon is the last teaching week of a regular semester.
const DefaultHorizon = 18

// MaxHorizon bounds the week grid. Longer horizons are clamped to it.
const MaxHorizon = 60

// WeekRange is an inclusive range of week numbers.
type WeekRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// ParseWeekRange parses "<start>-<end>", e.g. "1-18". Spaces around the
// numbers and full-width digits or dashes are tolerated.
func ParseWeekRange(s string) (WeekRange, error) {
	v := strings.TrimSpace(width.Fold.String(s))
	startSTR, endSTR, ok := strings.Cut(v, "-")
	if !ok {
		return WeekRange{}, &InvalidRangeError{Value: s, Reason: "expected <start>-<end>"}
	}
	start, err := strconv.Atoi(strings.TrimSpace(startSTR))
	if err != nil {
		return WeekRange{}, &InvalidRangeError{Value: s, Reason: "start is not an integer"}
	}
	end, err := strconv.Atoi(strings.TrimSpace(endSTR))
	if err != nil {
		return WeekRange{}, &InvalidRangeError{Value: s, Reason: "end is not an integer"}
	}
	return WeekRange{Start: start, End: end}, nil
}

// Validate checks 1 <= Start <= End <= horizon.
func (r WeekRange) Validate(horizon int) error {
	switch {
	case r.Start > r.End:
		return &InvalidRangeError{Value: r.String(), Horizon: horizon, Reason: "start is after end"}
	case r.Start < 1:
		return &InvalidRangeError{Value: r.String(), Horizon: horizon, Reason: "weeks start at 1"}
	case r.End > horizon:
		return &InvalidRangeError{Value: r.String(), Horizon: horizon, Reason: "end is past the horizon"}
	}
	return nil
}

// Weeks expands the range into its week numbers.
func (r WeekRange) Weeks() []int {
	if r.Start > r.End {
		return nil
	}
	weeks := make([]int, 0, r.End-r.Start+1)
	for wk := r.Start; wk <= r.End; wk++ {
		weeks = append(weeks, wk)
	}
	return weeks
}

// Len returns the number of weeks covered.
func (r WeekRange) Len() int {
	if r.Start > r.End {
		return 0
	}
	return r.End - r.Start + 1
}

// Contains reports whether week falls inside the range.
func (r WeekRange) Contains(week int) bool {
	return week >= r.Start && week <= r.End
}

func (r WeekRange) String() string {
	return fmt.Sprintf("%d-%d", r.Start, r.End)
}
