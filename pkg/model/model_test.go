package model_test

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joywang0926/course-gantt-app/pkg/model"
)

func TestParseDay(t *testing.T) {
	tests := []struct {
		in      string
		want    model.Day
		wantErr bool
	}{
		{in: "一", want: model.Monday},
		{in: " 六 ", want: model.Saturday},
		{in: "星期三", want: model.Wednesday},
		{in: "週五", want: model.Friday},
		{in: "Tuesday", want: model.Tuesday},
		{in: "thu", want: model.Thursday},
		{in: "ＳＡＴ", want: model.Saturday},
		{in: "日", wantErr: true},
		{in: "Sunday", wantErr: true},
		{in: "", wantErr: true},
		{in: "mo", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := model.ParseDay(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrInvalidDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDaySymbols(t *testing.T) {
	var got string
	for _, d := range model.Days {
		got += d.Symbol()
	}
	assert.Equal(t, "一二三四五六", got)
	assert.Equal(t, "?", model.Day(0).Symbol())
	assert.False(t, model.Day(7).Valid())
}

func TestParseWeekRange(t *testing.T) {
	tests := []struct {
		in      string
		want    model.WeekRange
		wantErr bool
	}{
		{in: "1-18", want: model.WeekRange{Start: 1, End: 18}},
		{in: " 3 - 4 ", want: model.WeekRange{Start: 3, End: 4}},
		{in: "９－１０", want: model.WeekRange{Start: 9, End: 10}},
		{in: "5", wantErr: true},
		{in: "a-3", wantErr: true},
		{in: "3-b", wantErr: true},
		{in: "1.5-3", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := model.ParseWeekRange(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, model.ErrInvalidRange)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestWeekRangeValidate(t *testing.T) {
	assert.NoError(t, model.WeekRange{Start: 1, End: 18}.Validate(18))
	assert.NoError(t, model.WeekRange{Start: 7, End: 7}.Validate(18))
	assert.ErrorIs(t, model.WeekRange{Start: 5, End: 4}.Validate(18), model.ErrInvalidRange)
	assert.ErrorIs(t, model.WeekRange{Start: 0, End: 4}.Validate(18), model.ErrInvalidRange)
	assert.ErrorIs(t, model.WeekRange{Start: 1, End: 19}.Validate(18), model.ErrInvalidRange)

	assert.Equal(t, []int{3, 4, 5}, model.WeekRange{Start: 3, End: 5}.Weeks())
	assert.Empty(t, model.WeekRange{Start: 5, End: 3}.Weeks())
	assert.Equal(t, 0, model.WeekRange{Start: 5, End: 3}.Len())
}

func TestCourseRow(t *testing.T) {
	row := &model.CourseRow{Name: " 微積分 ", DaySTR: "二", WeeksSTR: "1-9", Color: "#ff8800"}
	c, err := row.Course()
	require.NoError(t, err)
	assert.Equal(t, model.Course{Name: "微積分", Day: model.Tuesday, Weeks: model.WeekRange{Start: 1, End: 9}, Color: "#ff8800"}, c)
	assert.True(t, row.Selected())

	row.SelectedSTR = "FALSE"
	assert.False(t, row.Selected())
	row.SelectedSTR = "是"
	assert.True(t, row.Selected())
	row.SelectedSTR = "maybe"
	assert.False(t, row.Selected())
	ticked, known := row.Tick()
	assert.False(t, ticked)
	assert.False(t, known)
	row.SelectedSTR = ""
	ticked, known = row.Tick()
	assert.True(t, ticked)
	assert.True(t, known)

	_, err = (&model.CourseRow{Name: "x", DaySTR: "八", WeeksSTR: "1-2"}).Course()
	assert.ErrorIs(t, err, model.ErrInvalidDay)
	_, err = (&model.CourseRow{Name: "x", DaySTR: "一", WeeksSTR: "1~2"}).Course()
	assert.ErrorIs(t, err, model.ErrInvalidRange)
}

func TestCourseJSON(t *testing.T) {
	var c model.Course
	require.NoError(t, json.Unmarshal([]byte(`{"name":"A","day":"星期四","weeks":{"start":2,"end":6}}`), &c))
	assert.Equal(t, model.Thursday, c.Day)

	out, err := json.Marshal(c)
	require.NoError(t, err)
	assert.JSONEq(t, `{"name":"A","day":"四","weeks":{"start":2,"end":6}}`, string(out))

	assert.Error(t, json.Unmarshal([]byte(`{"name":"A","day":"Sun"}`), &c))
}

func TestOccupancy(t *testing.T) {
	o := model.NewOccupancy(18)

	assert.True(t, o.IsAvailable(model.Monday, 1))
	assert.True(t, o.Place(model.Monday, 1, "A"))
	assert.False(t, o.Place(model.Monday, 1, "B"))
	assert.False(t, o.Place(model.Monday, 1, "A"))
	assert.False(t, o.IsAvailable(model.Monday, 1))
	assert.Equal(t, "A", o.Occupant(model.Monday, 1))
	assert.Equal(t, []string{"A", "B"}, o.Occupants(model.Monday, 1))

	held := o.Occupants(model.Monday, 1)
	held[0] = "Z"
	assert.Equal(t, "A", o.Occupant(model.Monday, 1))

	assert.Equal(t, model.MaxHorizon, model.NewOccupancy(1<<40).Horizon())

	assert.False(t, o.Place(model.Monday, 19, "A"))
	assert.False(t, o.Place(model.Monday, 0, "A"))
	assert.False(t, o.Place(model.Day(0), 1, "A"))
	assert.Equal(t, "", o.Occupant(model.Saturday, 18))
}

func TestPair(t *testing.T) {
	assert.Equal(t, model.NewPair("B", "A"), model.NewPair("A", "B"))
	assert.Equal(t, model.Pair{A: "A", B: "B"}, model.NewPair("B", "A"))
	assert.False(t, model.NewPair("A", "A").Valid())
	assert.True(t, model.NewPair("資料結構", "演算法").Valid())
	assert.Equal(t, -1, model.NewPair("A", "B").Compare(model.NewPair("A", "C")))
}

func TestRecord(t *testing.T) {
	rec := make(model.Record)
	rec.Add(model.Friday, 9)
	rec.Add(model.Monday, 3)
	rec.Add(model.Friday, 2)
	rec.Add(model.Friday, 9)

	assert.Len(t, rec, 3)
	assert.Equal(t, []model.Day{model.Monday, model.Friday}, rec.Days())
	assert.Equal(t, []int{2, 9}, rec.Weeks(model.Friday))
	assert.True(t, rec.Has(model.Monday, 3))
	assert.False(t, rec.Has(model.Monday, 4))
}
