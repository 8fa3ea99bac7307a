package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joywang0926/course-gantt-app/internal/config"
	"github.com/joywang0926/course-gantt-app/internal/server"
	"github.com/joywang0926/course-gantt-app/pkg/model"
)

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/conflicts", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) server.ConflictsResponse {
	t.Helper()
	var resp server.ConflictsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	return resp
}

func TestHealth(t *testing.T) {
	h := server.New(config.NewDefaultConfiguration()).Handler()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status":"ok"}`, rec.Body.String())
}

func TestPostConflicts(t *testing.T) {
	h := server.New(config.NewDefaultConfiguration()).Handler()

	rec := post(t, h, `{"courses":[
		{"name":"A","day":"五","weeks":"3-4","color":"#ff0000"},
		{"name":"A","day":"五","weeks":"9-10"},
		{"name":"Bad","day":"日","weeks":"1-2"},
		{"name":"B","day":"星期五","weeks":"3-10"},
		{"name":"Late","day":"一","weeks":"1-30"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	_, err := uuid.Parse(resp.ID)
	assert.NoError(t, err)

	require.Len(t, resp.Conflicts, 2)
	assert.Equal(t, model.ConflictRow{CourseA: "A", CourseB: "B", DaySTR: "五", FirstWeek: 3, LastWeek: 4}, *resp.Conflicts[0])
	assert.Equal(t, model.ConflictRow{CourseA: "A", CourseB: "B", DaySTR: "五", FirstWeek: 9, LastWeek: 10}, *resp.Conflicts[1])
	assert.Equal(t, []string{
		"【A】與【B】 星期五 第3-4週衝堂。",
		"【A】與【B】 星期五 第9-10週衝堂。",
	}, resp.Messages)

	require.Len(t, resp.Rejected, 2)
	assert.Equal(t, 2, resp.Rejected[0].Index)
	assert.Equal(t, "Bad", resp.Rejected[0].Name)
	assert.Equal(t, 4, resp.Rejected[1].Index)
	assert.Contains(t, resp.Rejected[1].Error, "horizon")
}

func TestPostConflictsModeAndHorizon(t *testing.T) {
	h := server.New(config.NewDefaultConfiguration()).Handler()

	rec := post(t, h, `{"mode":"all-pairs","horizon":20,"courses":[
		{"name":"A","day":"四","weeks":"19-20"},
		{"name":"B","day":"四","weeks":"19-20"},
		{"name":"C","day":"四","weeks":"20-20"}
	]}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	resp := decode(t, rec)
	assert.Empty(t, resp.Rejected)
	assert.Len(t, resp.Conflicts, 3)
}

func TestPostConflictsNone(t *testing.T) {
	h := server.New(config.NewDefaultConfiguration()).Handler()

	rec := post(t, h, `{"courses":[{"name":"A","day":"三","weeks":"1-3"},{"name":"B","day":"三","weeks":"5-7"}]}`)
	require.Equal(t, http.StatusOK, rec.Code)

	resp := decode(t, rec)
	assert.Empty(t, resp.Conflicts)
	assert.NotNil(t, resp.Conflicts)
	assert.Equal(t, []string{"✅ 目前選課無衝堂！"}, resp.Messages)
}

func TestPostConflictsBadRequests(t *testing.T) {
	h := server.New(config.NewDefaultConfiguration()).Handler()

	tests := []struct {
		name    string
		body    string
		wantErr string
	}{
		{name: "empty_body", body: ``, wantErr: "empty body"},
		{name: "malformed", body: `{"courses":`, wantErr: "invalid JSON"},
		{name: "unknown_field", body: `{"courses":[],"extra":1}`, wantErr: "invalid JSON"},
		{name: "missing_courses", body: `{}`, wantErr: "courses"},
		{name: "missing_name", body: `{"courses":[{"day":"一","weeks":"1-2"}]}`, wantErr: "name"},
		{name: "bad_mode", body: `{"mode":"every","courses":[{"name":"A","day":"一","weeks":"1-2"}]}`, wantErr: "mode"},
		{name: "trailing", body: `{"courses":[{"name":"A","day":"一","weeks":"1-2"}]} {}`, wantErr: "trailing"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
			var body map[string]string
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
			assert.Contains(t, body["error"], tt.wantErr)
		})
	}
}

func TestCORSPreflight(t *testing.T) {
	h := server.New(config.NewDefaultConfiguration()).Handler()

	req := httptest.NewRequest(http.MethodOptions, "/conflicts", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	req.Header.Set("Access-Control-Request-Method", "POST")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)

	assert.Contains(t, []int{http.StatusOK, http.StatusNoContent}, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
	assert.Empty(t, rec.Header().Get("Access-Control-Allow-Credentials"))
}
