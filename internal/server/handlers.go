package server

import (
	"encoding/json"
	"net/http"
	"slices"

	"github.com/google/uuid"

	"github.com/joywang0926/course-gantt-app/internal/conflict"
	"github.com/joywang0926/course-gantt-app/internal/csvio"
	"github.com/joywang0926/course-gantt-app/pkg/model"
)

// CourseRequest is one course as sent by clients. Day and Weeks use the same
// text forms as the course sheet, e.g. "三" and "1-18".
type CourseRequest struct {
	Name  string `json:"name" validate:"required"`
	Day   string `json:"day" validate:"required"`
	Weeks string `json:"weeks" validate:"required"`
	Color string `json:"color"`
}

type ConflictsRequest struct {
	Courses []CourseRequest `json:"courses" validate:"required,dive"`
	Horizon int             `json:"horizon" validate:"omitempty,min=1,max=60"`
	Mode    string          `json:"mode" validate:"omitempty,oneof=first-occupant all-pairs"`
}

type RejectedCourse struct {
	Index int    `json:"index"`
	Name  string `json:"name"`
	Error string `json:"error"`
}

type ConflictsResponse struct {
	ID        string               `json:"id"`
	Conflicts []*model.ConflictRow `json:"conflicts"`
	Rejected  []RejectedCourse     `json:"rejected"`
	Messages  []string             `json:"messages"`
}

func handleGetHealth(w http.ResponseWriter, _ *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handlePostConflicts(w http.ResponseWriter, r *http.Request) {
	var req ConflictsRequest
	if err := s.bind.parseJSON(w, r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	horizon := s.cfg.Horizon
	if req.Horizon > 0 {
		horizon = req.Horizon
	}
	mode, err := conflict.ParseMode(s.cfg.Mode)
	if req.Mode != "" {
		mode, err = conflict.ParseMode(req.Mode)
	}
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}

	rows := make([]*model.CourseRow, len(req.Courses))
	for i, c := range req.Courses {
		rows[i] = &model.CourseRow{Name: c.Name, DaySTR: c.Day, WeeksSTR: c.Weeks, Color: c.Color}
	}
	courses, parseRejected := csvio.Selected(rows)

	// position of each parsed course in the request
	positions := make([]int, 0, len(courses))
	skipped := make(map[int]bool, len(parseRejected))
	for _, rj := range parseRejected {
		skipped[rj.Index] = true
	}
	for i := range rows {
		if !skipped[i] {
			positions = append(positions, i)
		}
	}

	res, conflicts := conflict.NewDetector(conflict.WithHorizon(horizon), conflict.WithMode(mode)).Report(courses)

	resp := ConflictsResponse{
		ID:        uuid.NewString(),
		Conflicts: conflicts,
		Rejected:  []RejectedCourse{},
		Messages:  csvio.Messages(conflicts),
	}
	if resp.Conflicts == nil {
		resp.Conflicts = []*model.ConflictRow{}
	}
	for _, rj := range parseRejected {
		resp.Rejected = append(resp.Rejected, RejectedCourse{Index: rj.Index, Name: rj.Course.Name, Error: rj.Err.Error()})
	}
	for _, rj := range res.Rejected {
		resp.Rejected = append(resp.Rejected, RejectedCourse{Index: positions[rj.Index], Name: rj.Course.Name, Error: rj.Err.Error()})
	}

	slices.SortStableFunc(resp.Rejected, func(a, b RejectedCourse) int { return a.Index - b.Index })

	s.log.Debug().
		Str("id", resp.ID).
		Int("courses", len(req.Courses)).
		Int("conflicts", len(conflicts)).
		Int("rejected", len(resp.Rejected)).
		Msg("Conflicts detected")

	writeJSON(w, http.StatusOK, resp)
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
