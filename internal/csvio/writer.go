package csvio

import (
	"fmt"
	"io"
	"os"

	"github.com/gocarina/gocsv"

	"github.com/joywang0926/course-gantt-app/internal/conflict"
	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// NoConflictsMessage is printed when the selection is conflict free.
const NoConflictsMessage = "✅ 目前選課無衝堂！"

// ExportConflicts writes the conflict rows to the CSV file at path,
// replacing any existing file.
func ExportConflicts(rows []*model.ConflictRow, path string) error {
	out, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, 0644)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer out.Close()

	if rows == nil {
		rows = []*model.ConflictRow{}
	}
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// ExportConflictsString formats the conflict rows as CSV text.
func ExportConflictsString(rows []*model.ConflictRow) (string, error) {
	if rows == nil {
		rows = []*model.ConflictRow{}
	}
	return gocsv.MarshalString(&rows)
}

// Message renders one conflict row as a sentence.
func Message(r *model.ConflictRow) string {
	return fmt.Sprintf("【%s】與【%s】 星期%s 第%d-%d週衝堂。", r.CourseA, r.CourseB, r.DaySTR, r.FirstWeek, r.LastWeek)
}

// Messages renders every row, or the all-clear message when there are none.
func Messages(rows []*model.ConflictRow) []string {
	if len(rows) == 0 {
		return []string{NoConflictsMessage}
	}
	msgs := make([]string, len(rows))
	for i, r := range rows {
		msgs[i] = Message(r)
	}
	return msgs
}

// PrintConflicts prints one line per conflicting range followed by the
// courses that were skipped.
func PrintConflicts(w io.Writer, rows []*model.ConflictRow, rejected []conflict.Rejection) {
	for _, m := range Messages(rows) {
		fmt.Fprintln(w, m)
	}
	if len(rejected) == 0 {
		return
	}
	fmt.Fprintf(w, "\nSkipped rows: %d\n", len(rejected))
	for _, r := range rejected {
		fmt.Fprintf(w, "  %-4d %-20s %v\n", r.Index+1, r.Course.Name, r.Err)
	}
}
