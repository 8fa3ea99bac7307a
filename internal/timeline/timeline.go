// Package timeline draws selected courses as a week-by-week text Gantt chart
// with conflicting weeks highlighted.
package timeline

import (
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"github.com/joywang0926/course-gantt-app/pkg/model"
)

const (
	cellBusy     = "█"
	cellConflict = "X"
	cellFree     = "·"
)

// palette holds the styles of one render. Styled output is always written
// in true color, whatever stdout happens to be.
type palette struct {
	renderer      *lipgloss.Renderer
	title         lipgloss.Style
	day           lipgloss.Style
	muted         lipgloss.Style
	conflict      lipgloss.Style
	defaultCourse lipgloss.Style
}

func newPalette() *palette {
	r := lipgloss.NewRenderer(io.Discard)
	r.SetColorProfile(termenv.TrueColor)
	return &palette{
		renderer:      r,
		title:         r.NewStyle().Bold(true),
		day:           r.NewStyle().Bold(true).Foreground(lipgloss.Color("#5f87d7")),
		muted:         r.NewStyle().Foreground(lipgloss.Color("#808080")),
		conflict:      r.NewStyle().Bold(true).Foreground(lipgloss.Color("#ff0000")),
		defaultCourse: r.NewStyle().Foreground(lipgloss.Color("#87afaf")),
	}
}

func (p *palette) course(c model.Course) lipgloss.Style {
	if hex, ok := HexColor(c.Color); ok {
		return p.renderer.NewStyle().Foreground(lipgloss.Color(hex))
	}
	return p.defaultCourse
}

// Options controls rendering.
type Options struct {
	// Horizon is the last week column.
	Horizon int
	// Styled enables colors; plain output marks conflicts with X.
	Styled bool
}

// DetectStyled reports whether f is a color capable terminal.
func DetectStyled(f *os.File) bool {
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

type lane struct {
	course    model.Course
	conflicts map[int]bool
}

// Render draws one block per day in fixed day order with one lane per course
// session on that day. Days without courses are still listed.
func Render(courses []model.Course, conflicts map[model.Pair]model.Record, opts Options) string {
	horizon := opts.Horizon
	if horizon < 1 {
		horizon = model.DefaultHorizon
	}
	horizon = min(horizon, model.MaxHorizon)

	lanes := make([][]lane, model.NumberOfDays)
	labelWidth := lipgloss.Width("星期一")
	for _, c := range courses {
		if !c.Day.Valid() {
			continue
		}
		l := lane{course: c, conflicts: make(map[int]bool)}
		for pair, rec := range conflicts {
			if !pair.Has(c.Name) {
				continue
			}
			for _, wk := range c.Weeks.Weeks() {
				if rec.Has(c.Day, wk) {
					l.conflicts[wk] = true
				}
			}
		}
		lanes[c.Day.Index()] = append(lanes[c.Day.Index()], l)
		if w := lipgloss.Width(c.Name); w > labelWidth {
			labelWidth = w
		}
	}

	p := newPalette()
	style := func(s lipgloss.Style, text string) string {
		if !opts.Styled {
			return text
		}
		return s.Render(text)
	}

	var b strings.Builder
	b.WriteString(style(p.title, "課程甘特圖"))
	b.WriteString("\n")
	b.WriteString(pad("週次", labelWidth))
	b.WriteString(" ")
	for wk := 1; wk <= horizon; wk++ {
		b.WriteString(style(p.muted, strconv.Itoa(wk%10)))
	}
	b.WriteString("\n")

	for _, d := range model.Days {
		b.WriteString(style(p.day, "星期"+d.Symbol()))
		b.WriteString("\n")
		for _, l := range lanes[d.Index()] {
			busy := p.course(l.course)
			b.WriteString(pad(l.course.Name, labelWidth))
			b.WriteString(" ")
			for wk := 1; wk <= horizon; wk++ {
				switch {
				case l.conflicts[wk] && opts.Styled:
					b.WriteString(p.conflict.Render(cellBusy))
				case l.conflicts[wk]:
					b.WriteString(cellConflict)
				case l.course.Weeks.Contains(wk):
					b.WriteString(style(busy, cellBusy))
				default:
					b.WriteString(style(p.muted, cellFree))
				}
			}
			b.WriteString(fmt.Sprintf(" %s", l.course.Weeks))
			b.WriteString("\n")
		}
	}
	return b.String()
}

func pad(s string, width int) string {
	if w := lipgloss.Width(s); w < width {
		return s + strings.Repeat(" ", width-w)
	}
	return s
}

var rgbPattern = regexp.MustCompile(`^rgba?\(\s*(\d{1,3})\s*,\s*(\d{1,3})\s*,\s*(\d{1,3})\s*(?:,\s*[\d.]+\s*)?\)$`)

var hexPattern = regexp.MustCompile(`^#?([0-9a-fA-F]{6}|[0-9a-fA-F]{3})$`)

// HexColor converts a sheet color cell ("#ff8800", "ff8800", "rgb(255,136,0)")
// into "#rrggbb". Other values are not understood.
func HexColor(s string) (string, bool) {
	v := strings.TrimSpace(s)
	if m := hexPattern.FindStringSubmatch(v); m != nil {
		h := strings.ToLower(m[1])
		if len(h) == 3 {
			h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
		}
		return "#" + h, true
	}
	if m := rgbPattern.FindStringSubmatch(strings.ToLower(v)); m != nil {
		var rgb [3]int
		for i := range rgb {
			n, _ := strconv.Atoi(m[i+1])
			if n > 255 {
				return "", false
			}
			rgb[i] = n
		}
		return fmt.Sprintf("#%02x%02x%02x", rgb[0], rgb[1], rgb[2]), true
	}
	return "", false
}
