package conflict

import (
	"slices"

	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// Compress groups the weeks recorded for day into maximal runs of
// consecutive weeks, in ascending order. A single week yields First == Last.
func Compress(rec model.Record, day model.Day) ([]model.CompressedRange, error) {
	weeks := rec.Weeks(day)
	if len(weeks) == 0 {
		return nil, &model.EmptyRecordError{Day: day}
	}

	ranges := make([]model.CompressedRange, 0, 1)
	cur := model.CompressedRange{Day: day, First: weeks[0], Last: weeks[0]}
	for _, wk := range weeks[1:] {
		if wk == cur.Last+1 {
			cur.Last = wk
			continue
		}
		ranges = append(ranges, cur)
		cur = model.CompressedRange{Day: day, First: wk, Last: wk}
	}
	return append(ranges, cur), nil
}

// Compressed maps a pair to its conflicting spans per day.
type Compressed map[model.Pair]map[model.Day][]model.Span

// CompressAll compresses every day of every record.
func CompressAll(conflicts map[model.Pair]model.Record) Compressed {
	out := make(Compressed, len(conflicts))
	for pair, rec := range conflicts {
		days := rec.Days()
		if len(days) == 0 {
			continue
		}
		byDay := make(map[model.Day][]model.Span, len(days))
		for _, day := range days {
			// day comes from the record, so Compress cannot fail here
			ranges, _ := Compress(rec, day)
			spans := make([]model.Span, len(ranges))
			for i, r := range ranges {
				spans[i] = r.Span()
			}
			byDay[day] = spans
		}
		out[pair] = byDay
	}
	return out
}

// Rows flattens c into one row per span, ordered by pair, day, then week.
func (c Compressed) Rows() []*model.ConflictRow {
	pairs := make([]model.Pair, 0, len(c))
	for p := range c {
		pairs = append(pairs, p)
	}
	slices.SortFunc(pairs, model.Pair.Compare)

	var rows []*model.ConflictRow
	for _, p := range pairs {
		for _, day := range model.Days {
			for _, s := range c[p][day] {
				rows = append(rows, &model.ConflictRow{
					CourseA:   p.A,
					CourseB:   p.B,
					DaySTR:    day.Symbol(),
					Day:       day,
					FirstWeek: s.First,
					LastWeek:  s.Last,
				})
			}
		}
	}
	return rows
}

// Report runs detection and compression in one go.
func (d *Detector) Report(courses []model.Course) (*Result, []*model.ConflictRow) {
	res := d.Detect(courses)
	return res, CompressAll(res.Conflicts).Rows()
}
