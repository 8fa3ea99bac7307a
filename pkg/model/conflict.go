package model

import (
	"fmt"
	"slices"
	"strings"
)

// Pair is an unordered pair of distinct course names, stored with A < B.
type Pair struct {
	A string `json:"a"`
	B string `json:"b"`
}

// NewPair returns the canonical pair for x and y in either order.
func NewPair(x, y string) Pair {
	if y < x {
		x, y = y, x
	}
	return Pair{A: x, B: y}
}

// Valid reports whether the pair names two different courses.
func (p Pair) Valid() bool {
	return p.A != "" && p.B != "" && p.A < p.B
}

// Has reports whether course is one side of the pair.
func (p Pair) Has(course string) bool {
	return p.A == course || p.B == course
}

// Compare orders pairs by A then B.
func (p Pair) Compare(o Pair) int {
	if c := strings.Compare(p.A, o.A); c != 0 {
		return c
	}
	return strings.Compare(p.B, o.B)
}

func (p Pair) String() string {
	return p.A + " <-> " + p.B
}

// Record is the set of slots in which both courses of a pair meet.
type Record map[Slot]struct{}

// Add inserts a slot.
func (r Record) Add(day Day, week int) {
	r[Slot{Day: day, Week: week}] = struct{}{}
}

// Has checks for a slot.
func (r Record) Has(day Day, week int) bool {
	_, ok := r[Slot{Day: day, Week: week}]
	return ok
}

// Days returns the days present in the record in fixed day order.
func (r Record) Days() []Day {
	var seen [NumberOfDays + 1]bool
	for s := range r {
		if s.Day.Valid() {
			seen[s.Day] = true
		}
	}
	var days []Day
	for _, d := range Days {
		if seen[d] {
			days = append(days, d)
		}
	}
	return days
}

// Weeks returns the weeks recorded for day, ascending.
func (r Record) Weeks(day Day) []int {
	var weeks []int
	for s := range r {
		if s.Day == day {
			weeks = append(weeks, s.Week)
		}
	}
	slices.Sort(weeks)
	return weeks
}

// Span is an inclusive run of consecutive weeks.
type Span struct {
	First int `json:"first"`
	Last  int `json:"last"`
}

func (s Span) String() string {
	return fmt.Sprintf("%d-%d", s.First, s.Last)
}

// CompressedRange is a maximal run of conflicting weeks on one day.
type CompressedRange struct {
	Day   Day
	First int
	Last  int
}

// Span drops the day.
func (c CompressedRange) Span() Span {
	return Span{First: c.First, Last: c.Last}
}

// ConflictRow is one compressed range of one pair, flattened for export.
type ConflictRow struct {
	CourseA   string `csv:"course_a" json:"courseA"`
	CourseB   string `csv:"course_b" json:"courseB"`
	DaySTR    string `csv:"day" json:"day"`
	FirstWeek int    `csv:"first_week" json:"firstWeek"`
	LastWeek  int    `csv:"last_week" json:"lastWeek"`
	Day       Day    `csv:"-" json:"-"`
}

// Pair returns the canonical pair of the row.
func (r *ConflictRow) Pair() Pair {
	return NewPair(r.CourseA, r.CourseB)
}
