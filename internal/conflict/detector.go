// Package conflict finds courses that meet on the same day in the same week
// and compresses the shared weeks into contiguous ranges.
//
// Detection is a pure function of its input. Every call builds its own
// occupancy grid and conflict map, so a Detector may be shared freely.
package conflict

import (
	"fmt"

	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// Mode selects how a slot held by three or more courses is paired up.
type Mode int

const (
	// FirstOccupant pairs each later course only with the slot's occupant of
	// record. With A, B and C on one slot this yields {A,B} and {A,C}.
	FirstOccupant Mode = iota
	// AllPairs pairs each later course with every earlier course on the slot.
	AllPairs
)

func (m Mode) String() string {
	switch m {
	case FirstOccupant:
		return "first-occupant"
	case AllPairs:
		return "all-pairs"
	default:
		return fmt.Sprintf("Mode(%d)", int(m))
	}
}

// ParseMode accepts the names produced by Mode.String.
func ParseMode(s string) (Mode, error) {
	switch s {
	case "", "first-occupant", "first":
		return FirstOccupant, nil
	case "all-pairs", "all":
		return AllPairs, nil
	}
	return FirstOccupant, fmt.Errorf("unknown conflict mode %q", s)
}

// Option configures a Detector.
type Option func(*Detector)

// WithHorizon sets the last valid week number, clamped to
// 1..model.MaxHorizon.
func WithHorizon(weeks int) Option {
	return func(d *Detector) { d.horizon = min(max(weeks, 1), model.MaxHorizon) }
}

// WithMode sets the pairing mode.
func WithMode(m Mode) Option {
	return func(d *Detector) { d.mode = m }
}

// Detector holds detection settings. It carries no per-run state.
type Detector struct {
	horizon int
	mode    Mode
}

// NewDetector returns a Detector for weeks 1..model.DefaultHorizon in
// FirstOccupant mode unless overridden.
func NewDetector(opts ...Option) *Detector {
	d := &Detector{horizon: model.DefaultHorizon, mode: FirstOccupant}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Horizon returns the configured last week.
func (d *Detector) Horizon() int { return d.horizon }

// Mode returns the configured pairing mode.
func (d *Detector) Mode() Mode { return d.mode }

// Rejection is a course left out of detection and the reason why.
type Rejection struct {
	Index  int
	Course model.Course
	Err    error
}

func (r Rejection) Error() string {
	return fmt.Sprintf("course #%d %q: %v", r.Index+1, r.Course.Name, r.Err)
}

func (r Rejection) Unwrap() error { return r.Err }

// Result is the outcome of one detection run.
type Result struct {
	// Conflicts maps each conflicting pair to the slots they share.
	Conflicts map[model.Pair]model.Record
	// Occupancy is the grid built during the run.
	Occupancy *model.Occupancy
	// Accepted lists the courses that took part, in input order.
	Accepted []model.Course
	// Rejected lists the courses that failed validation, in input order.
	Rejected []Rejection
}

// HasConflicts reports whether any pair conflicts.
func (r *Result) HasConflicts() bool {
	return len(r.Conflicts) > 0
}

// Detect runs detection with default settings.
func Detect(courses []model.Course, opts ...Option) *Result {
	return NewDetector(opts...).Detect(courses)
}

// Detect walks courses in the given order. The first course to claim a
// (day, week) slot stays its occupant of record; any other course landing on
// it is recorded as conflicting. Invalid courses are reported in
// Result.Rejected and do not stop the run.
func (d *Detector) Detect(courses []model.Course) *Result {
	res := &Result{
		Conflicts: make(map[model.Pair]model.Record),
		Occupancy: model.NewOccupancy(d.horizon),
	}

	for i, course := range courses {
		if err := course.Validate(d.horizon); err != nil {
			res.Rejected = append(res.Rejected, Rejection{Index: i, Course: course, Err: err})
			continue
		}
		res.Accepted = append(res.Accepted, course)

		for _, wk := range course.Weeks.Weeks() {
			if res.Occupancy.IsAvailable(course.Day, wk) {
				res.Occupancy.Place(course.Day, wk, course.Name)
				continue
			}
			occupants := res.Occupancy.Occupants(course.Day, wk)
			if d.mode == FirstOccupant && len(occupants) > 0 {
				occupants = occupants[:1]
			}
			for _, other := range occupants {
				if other == course.Name {
					continue
				}
				pair := model.NewPair(other, course.Name)
				rec, ok := res.Conflicts[pair]
				if !ok {
					rec = make(model.Record)
					res.Conflicts[pair] = rec
				}
				rec.Add(course.Day, wk)
			}
			res.Occupancy.Place(course.Day, wk, course.Name)
		}
	}

	return res
}
