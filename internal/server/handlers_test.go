package server

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/engine"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
)

func newTestServer(t *testing.T) (*engine.Service, http.Handler) {
	t.Helper()
	ctx := context.Background()

	path := filepath.Join(t.TempDir(), "test.db")
	db, err := storage.Open(ctx, path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	svc := engine.NewService(db).WithClock(func() time.Time {
		return time.Date(2026, 3, 10, 9, 0, 0, 0, time.UTC)
	})

	logger := zap.NewNop().Sugar()
	return svc, New(svc, logger).Handler()
}

func seedTask(t *testing.T, svc *engine.Service, userKey string) int64 {
	t.Helper()
	ctx := context.Background()

	project, err := svc.CreateProject(ctx, userKey, "Inbox")
	require.NoError(t, err)
	task, err := svc.CreateTask(ctx, userKey, engine.CreateTaskInput{ProjectID: project.ID, Title: "Ship it"})
	require.NoError(t, err)
	return task.ID
}

func TestCompleteEndpoint(t *testing.T) {
	svc, handler := newTestServer(t)
	taskID := seedTask(t, svc, "main")
	url := fmt.Sprintf("/api/tasks/%d/complete", taskID)

	req := httptest.NewRequest(http.MethodPost, url, nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-Id"))

	var body struct {
		FlexMessage  string          `json:"flex_message"`
		PointsEarned int             `json:"points_earned"`
		TotalPoints  int             `json:"total_points"`
		Streak       int             `json:"streak"`
		BadgeEarned  json.RawMessage `json:"badge_earned"`
		LevelUp      bool            `json:"level_up"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.NotEmpty(t, body.FlexMessage)
	assert.Equal(t, 10, body.PointsEarned)
	assert.Equal(t, 10, body.TotalPoints)
	assert.Equal(t, 1, body.Streak)
	assert.False(t, body.LevelUp)
	assert.NotEqual(t, "null", string(body.BadgeEarned), "first completion should earn first-flex")

	// Double submit is a conflict, not a second award.
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, httptest.NewRequest(http.MethodPost, url, nil))
	assert.Equal(t, http.StatusConflict, rec2.Code)
}

func TestUncompleteEndpoint(t *testing.T) {
	svc, handler := newTestServer(t)
	seedTask(t, svc, "main")

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tasks/1/uncomplete", nil))
	assert.Equal(t, http.StatusConflict, rec.Code, "uncompleting a pending task is a conflict")

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/tasks/1/complete", nil))

	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, httptest.NewRequest(http.MethodPost, "/api/tasks/1/uncomplete", nil))
	require.Equal(t, http.StatusOK, rec2.Code)

	var body struct {
		TotalPoints    int `json:"total_points"`
		PointsDeducted int `json:"points_deducted"`
	}
	require.NoError(t, json.Unmarshal(rec2.Body.Bytes(), &body))
	assert.Equal(t, 0, body.TotalPoints)
	assert.Equal(t, 10, body.PointsDeducted)
}

func TestCompleteUnknownTask(t *testing.T) {
	_, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tasks/42/complete", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCompleteBadTaskID(t *testing.T) {
	_, handler := newTestServer(t)

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/api/tasks/abc/complete", nil))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUserStatusEndpoint(t *testing.T) {
	svc, handler := newTestServer(t)
	seedTask(t, svc, "alice")

	handler.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodPost, "/api/tasks/1/complete?user=alice", nil))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/users/alice", nil))
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Key            string `json:"key"`
		Points         int    `json:"points"`
		Level          int    `json:"level"`
		CompletedTasks int    `json:"completed_tasks"`
		Badges         []struct {
			Slug string `json:"slug"`
		} `json:"badges"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "alice", body.Key)
	assert.Equal(t, 10, body.Points)
	assert.Equal(t, 1, body.Level)
	assert.Equal(t, 1, body.CompletedTasks)
	require.Len(t, body.Badges, 1)
	assert.Equal(t, "first-flex", body.Badges[0].Slug)

	// An empty key segment does not match the route at all.
	rec2 := httptest.NewRecorder()
	handler.ServeHTTP(rec2, httptest.NewRequest(http.MethodGet, "/api/users/", nil))
	assert.Equal(t, http.StatusNotFound, rec2.Code)
}
