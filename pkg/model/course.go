package model

import (
	"strconv"
	"strings"
)

// Course is one weekly session: a named course held on Day during Weeks.
// Rows sharing a Name are sessions of the same course.
type Course struct {
	Name  string    `json:"name"`
	Day   Day       `json:"day"`
	Weeks WeekRange `json:"weeks"`
	Color string    `json:"color,omitempty"`
}

// Validate checks the course against the given week horizon.
func (c Course) Validate(horizon int) error {
	if strings.TrimSpace(c.Name) == "" {
		return ErrInvalidCourse
	}
	if !c.Day.Valid() {
		return &InvalidDayError{Value: c.Day.String()}
	}
	return c.Weeks.Validate(horizon)
}

// CourseRow is a course as it appears in the course sheet.
type CourseRow struct {
	Name        string `csv:"課程名稱"`
	DaySTR      string `csv:"星期"`
	WeeksSTR    string `csv:"週次"`
	Color       string `csv:"顏色(RGB)"`
	SelectedSTR string `csv:"勾選"`
}

// Selected reports whether the row is ticked.
func (r *CourseRow) Selected() bool {
	ticked, _ := r.Tick()
	return ticked
}

// Tick reads the selection cell. An empty cell counts as ticked. A value
// that is neither a yes nor a no counts as unticked and known is false.
func (r *CourseRow) Tick() (ticked, known bool) {
	v := strings.TrimSpace(r.SelectedSTR)
	if v == "" {
		return true, true
	}
	switch strings.ToLower(v) {
	case "v", "y", "yes", "是", "✓", "✔":
		return true, true
	case "n", "no", "否":
		return false, true
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return false, false
	}
	return b, true
}

// Course parses the raw cells of the row.
func (r *CourseRow) Course() (Course, error) {
	day, err := ParseDay(r.DaySTR)
	if err != nil {
		return Course{}, err
	}
	weeks, err := ParseWeekRange(r.WeeksSTR)
	if err != nil {
		return Course{}, err
	}
	return Course{
		Name:  strings.TrimSpace(r.Name),
		Day:   day,
		Weeks: weeks,
		Color: strings.TrimSpace(r.Color),
	}, nil
}
