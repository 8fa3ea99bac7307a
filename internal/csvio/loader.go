package csvio

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/gocarina/gocsv"
	"github.com/rs/zerolog/log"
	"github.com/xuri/excelize/v2"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/joywang0926/course-gantt-app/internal/conflict"
	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// Load reads course rows from path, choosing the format by extension.
// sheet is only used for spreadsheets; empty means the first sheet.
func Load(path string, sheet string, delim rune) ([]*model.CourseRow, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".xlsx", ".xlsm":
		return LoadCoursesXLSX(path, sheet)
	default:
		return LoadCourses(path, delim)
	}
}

// LoadCourses reads and parses given csv file for course data.
func LoadCourses(path string, delim rune) ([]*model.CourseRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadCourses(f, delim)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Debug().Str("path", path).Int("rows", len(rows)).Msg("Courses loaded")
	return rows, nil
}

// ReadCourses parses course rows from CSV. A leading UTF-8 byte order mark,
// as written by spreadsheet exports, is dropped.
func ReadCourses(in io.Reader, delim rune) ([]*model.CourseRow, error) {
	r := csv.NewReader(transform.NewReader(in, unicode.BOMOverride(unicode.UTF8.NewDecoder())))
	r.Comma = delim
	r.TrimLeadingSpace = true

	rows := []*model.CourseRow{}
	if err := gocsv.UnmarshalCSV(r, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// LoadCoursesXLSX reads course rows from a workbook.
func LoadCoursesXLSX(path string, sheet string) ([]*model.CourseRow, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	rows, err := ReadCoursesXLSX(f, sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	log.Debug().Str("path", path).Str("sheet", sheet).Int("rows", len(rows)).Msg("Courses loaded")
	return rows, nil
}

// ReadCoursesXLSX parses course rows from the named sheet, or the first
// sheet when sheet is empty. The first row holds the column headers.
func ReadCoursesXLSX(in io.Reader, sheet string) ([]*model.CourseRow, error) {
	book, err := excelize.OpenReader(in)
	if err != nil {
		return nil, err
	}
	defer book.Close()

	if sheet == "" {
		sheets := book.GetSheetList()
		if len(sheets) == 0 {
			return nil, fmt.Errorf("workbook has no sheets")
		}
		sheet = sheets[0]
	}
	cells, err := book.GetRows(sheet)
	if err != nil {
		return nil, err
	}

	rows := []*model.CourseRow{}
	if err := gocsv.UnmarshalCSV(newTableReader(cells), &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// tableReader feeds an in-memory table to gocsv. Rows shorter than the
// header, which excelize returns when trailing cells are empty, are padded.
type tableReader struct {
	rows [][]string
	pos  int
}

func newTableReader(cells [][]string) *tableReader {
	width := 0
	if len(cells) > 0 {
		width = len(cells[0])
	}
	rows := make([][]string, 0, len(cells))
	for _, row := range cells {
		if isBlank(row) {
			continue
		}
		for len(row) < width {
			row = append(row, "")
		}
		rows = append(rows, row)
	}
	return &tableReader{rows: rows}
}

func isBlank(row []string) bool {
	for _, c := range row {
		if strings.TrimSpace(c) != "" {
			return false
		}
	}
	return true
}

func (t *tableReader) Read() ([]string, error) {
	if t.pos >= len(t.rows) {
		return nil, io.EOF
	}
	row := t.rows[t.pos]
	t.pos++
	return row, nil
}

func (t *tableReader) ReadAll() ([][]string, error) {
	rest := t.rows[t.pos:]
	t.pos = len(t.rows)
	return rest, nil
}

// Selected parses the ticked rows into courses in row order. Rows that
// cannot be parsed are returned as rejections indexed by row position.
func Selected(rows []*model.CourseRow) ([]model.Course, []conflict.Rejection) {
	var courses []model.Course
	var rejected []conflict.Rejection
	for i, row := range rows {
		ticked, known := row.Tick()
		if !known {
			log.Warn().Int("row", i+1).Str("course", row.Name).Str("value", row.SelectedSTR).Msg("Unrecognized selection value, treating row as unticked")
		}
		if !ticked {
			continue
		}
		c, err := row.Course()
		if err != nil {
			rejected = append(rejected, conflict.Rejection{
				Index:  i,
				Course: model.Course{Name: strings.TrimSpace(row.Name), Color: row.Color},
				Err:    err,
			})
			log.Info().Int("row", i+1).Str("course", row.Name).Err(err).Msg("Skipping course row")
			continue
		}
		courses = append(courses, c)
	}
	return courses, rejected
}
