package conflict

import (
	"fmt"

	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// Validate summarizes a detection run as a checklist.
// Returns false and a message listing the problems when a check fails.
func Validate(res *Result, rows []*model.ConflictRow) (bool, string) {
	var message string
	var valid bool = true
	var allAccepted bool = len(res.Rejected) == 0
	var hasCourseCollision bool = len(rows) > 0

	if !allAccepted {
		valid = false
		message += fmt.Sprintf("- There are %d rejected courses:\n", len(res.Rejected))
		for _, rj := range res.Rejected {
			message += fmt.Sprintf("    #%d %s: %v\n", rj.Index+1, rj.Course.Name, rj.Err)
		}
	}

	if hasCourseCollision {
		valid = false
		message += fmt.Sprintf("- There are %d conflicting week ranges:\n", len(rows))
		for _, r := range rows {
			message += fmt.Sprintf("    %s <-> %s %s %d-%d\n", r.CourseA, r.CourseB, r.DaySTR, r.FirstWeek, r.LastWeek)
		}
	}

	if hasCourseCollision {
		message = "[FAIL]: Course collision check.\n" + message
	} else {
		message = "[  OK]: Course collision check.\n" + message
	}
	if !allAccepted {
		message = "[FAIL]: Course data check.\n" + message
	} else {
		message = "[  OK]: Course data check.\n" + message
	}

	return valid, message
}
