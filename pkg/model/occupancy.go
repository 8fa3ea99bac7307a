package model

import "slices"

// Slot is a single (day, week) cell of the semester grid.
type Slot struct {
	Day  Day `json:"day"`
	Week int `json:"week"`
}

// Occupancy records which courses hold each slot of a days x weeks grid.
// The first course placed in a slot is its occupant of record.
type Occupancy struct {
	horizon int
	grid    [][][]string
}

// NewOccupancy creates an empty grid for weeks 1..horizon, with horizon
// clamped to 0..MaxHorizon.
func NewOccupancy(horizon int) *Occupancy {
	horizon = min(max(horizon, 0), MaxHorizon)
	o := &Occupancy{horizon: horizon, grid: make([][][]string, NumberOfDays)}
	for i := range o.grid {
		o.grid[i] = make([][]string, horizon+1)
	}
	return o
}

// Horizon returns the last week the grid covers.
func (o *Occupancy) Horizon() int { return o.horizon }

func (o *Occupancy) inBounds(day Day, week int) bool {
	return day.Valid() && week >= 1 && week <= o.horizon
}

// IsAvailable checks if nobody holds the slot.
func (o *Occupancy) IsAvailable(day Day, week int) bool {
	if !o.inBounds(day, week) {
		return false
	}
	return len(o.grid[day.Index()][week]) == 0
}

// Occupant returns the occupant of record, or "" for a free slot.
func (o *Occupancy) Occupant(day Day, week int) string {
	if !o.inBounds(day, week) || len(o.grid[day.Index()][week]) == 0 {
		return ""
	}
	return o.grid[day.Index()][week][0]
}

// Occupants returns every distinct course holding the slot, in placement order.
func (o *Occupancy) Occupants(day Day, week int) []string {
	if !o.inBounds(day, week) {
		return nil
	}
	return slices.Clone(o.grid[day.Index()][week])
}

// Place adds course to the slot. The occupant of record never changes and a
// course already holding the slot is not added twice.
// Returns false if the slot was occupied or out of bounds.
func (o *Occupancy) Place(day Day, week int, course string) bool {
	if !o.inBounds(day, week) {
		return false
	}
	cell := o.grid[day.Index()][week]
	for _, c := range cell {
		if c == course {
			return false
		}
	}
	o.grid[day.Index()][week] = append(cell, course)
	return len(cell) == 0
}
