package timeline_test

import (
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joywang0926/course-gantt-app/internal/conflict"
	"github.com/joywang0926/course-gantt-app/internal/timeline"
	"github.com/joywang0926/course-gantt-app/pkg/model"
)

func TestRenderPlain(t *testing.T) {
	courses := []model.Course{
		{Name: "A", Day: model.Friday, Weeks: model.WeekRange{Start: 3, End: 4}},
		{Name: "A", Day: model.Friday, Weeks: model.WeekRange{Start: 9, End: 10}},
		{Name: "B", Day: model.Friday, Weeks: model.WeekRange{Start: 3, End: 10}},
		{Name: "C", Day: model.Monday, Weeks: model.WeekRange{Start: 1, End: 2}, Color: "#00ff00"},
	}
	res := conflict.Detect(courses, conflict.WithHorizon(10))

	out := timeline.Render(courses, res.Conflicts, timeline.Options{Horizon: 10})
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")

	require.Equal(t, "課程甘特圖", lines[0])
	assert.True(t, strings.HasSuffix(lines[1], " 1234567890"), lines[1])

	var friday []string
	inFriday := false
	for _, l := range lines {
		switch {
		case l == "星期五":
			inFriday = true
		case strings.HasPrefix(l, "星期"):
			inFriday = false
		case inFriday:
			friday = append(friday, l)
		}
	}
	require.Len(t, friday, 3)
	assert.Equal(t, "A      ··XX······ 3-4", friday[0])
	assert.Equal(t, "A      ········XX 9-10", friday[1])
	assert.Equal(t, "B      ··XX████XX 3-10", friday[2])

	assert.Contains(t, out, "C      ██········ 1-2")
	for _, d := range model.Days {
		assert.Contains(t, out, "星期"+d.Symbol())
	}
}

var ansi = regexp.MustCompile(`\x1b\[[0-9;]*m`)

func TestRenderStyledMarksConflicts(t *testing.T) {
	courses := []model.Course{
		{Name: "A", Day: model.Monday, Weeks: model.WeekRange{Start: 1, End: 3}},
		{Name: "B", Day: model.Monday, Weeks: model.WeekRange{Start: 2, End: 4}, Color: "#00ff00"},
	}
	res := conflict.Detect(courses, conflict.WithHorizon(6))

	out := timeline.Render(courses, res.Conflicts, timeline.Options{Horizon: 6, Styled: true})

	require.Contains(t, out, "\x1b[")
	// weeks 2 and 3 of both lanes in red, busy weeks in the lane color
	assert.Equal(t, 4, strings.Count(out, "38;2;255;0;0"))
	assert.Equal(t, 1, strings.Count(out, "38;2;135;175;175"))
	assert.Equal(t, 1, strings.Count(out, "38;2;0;255;0"))
	assert.NotContains(t, out, "X")

	plain := ansi.ReplaceAllString(out, "")
	assert.Contains(t, plain, "A      ███··· 1-3\n")
	assert.Contains(t, plain, "B      ·███·· 2-4\n")
}

func TestRenderClampsHorizon(t *testing.T) {
	out := timeline.Render(nil, nil, timeline.Options{Horizon: 1 << 40})
	header := strings.Split(out, "\n")[1]
	assert.True(t, strings.HasSuffix(header, strings.Repeat("1234567890", model.MaxHorizon/10)), header)
}

func TestDetectStyled(t *testing.T) {
	f, err := os.Create(filepath.Join(t.TempDir(), "out.txt"))
	require.NoError(t, err)
	defer f.Close()

	t.Setenv("NO_COLOR", "")
	assert.False(t, timeline.DetectStyled(f))

	t.Setenv("NO_COLOR", "1")
	assert.False(t, timeline.DetectStyled(f))
}

func TestRenderDefaultsHorizon(t *testing.T) {
	out := timeline.Render(nil, nil, timeline.Options{})
	assert.Contains(t, out, "123456789012345678\n")
}

func TestHexColor(t *testing.T) {
	tests := []struct {
		in   string
		want string
		ok   bool
	}{
		{in: "#FF8800", want: "#ff8800", ok: true},
		{in: "ff8800", want: "#ff8800", ok: true},
		{in: "#f80", want: "#ff8800", ok: true},
		{in: "rgb(255, 136, 0)", want: "#ff8800", ok: true},
		{in: "rgba(255,136,0,0.5)", want: "#ff8800", ok: true},
		{in: "rgb(256,0,0)", ok: false},
		{in: "red", ok: false},
		{in: "", ok: false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := timeline.HexColor(tt.in)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}
