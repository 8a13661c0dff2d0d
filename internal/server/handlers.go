package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/impruthvi/flexboard-bytes-sub000/internal/engine"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/metrics"
	"github.com/impruthvi/flexboard-bytes-sub000/internal/storage"
)

type badgePayload struct {
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
}

type completeResponse struct {
	FlexMessage  string        `json:"flex_message"`
	PointsEarned int           `json:"points_earned"`
	TotalPoints  int           `json:"total_points"`
	Streak       int           `json:"streak"`
	Multiplier   float64       `json:"multiplier"`
	StreakBonus  bool          `json:"streak_bonus"`
	BadgeEarned  *badgePayload `json:"badge_earned"`
	LevelUp      bool          `json:"level_up"`
}

type uncompleteResponse struct {
	TotalPoints    int `json:"total_points"`
	PointsDeducted int `json:"points_deducted"`
}

type userStatusResponse struct {
	Key            string         `json:"key"`
	Points         int            `json:"points"`
	Level          int            `json:"level"`
	PointsToNext   int            `json:"points_to_next_level"`
	CurrentStreak  int            `json:"current_streak"`
	LongestStreak  int            `json:"longest_streak"`
	CompletedTasks int            `json:"completed_tasks"`
	Badges         []badgePayload `json:"badges"`
}

func (s *Server) handleComplete(w http.ResponseWriter, r *http.Request) {
	taskID, ok := s.taskID(w, r)
	if !ok {
		return
	}
	userKey := userKeyParam(r)

	res, err := s.svc.CompleteTask(r.Context(), userKey, taskID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	metrics.Completions.Inc()
	metrics.PointsAwarded.Add(float64(res.PointsEarned))
	if res.BadgeEarned != nil {
		metrics.BadgesAwarded.Inc()
	}

	s.writeJSON(w, http.StatusOK, completeResponse{
		FlexMessage:  res.Message,
		PointsEarned: res.PointsEarned,
		TotalPoints:  res.TotalPoints,
		Streak:       res.Streak,
		Multiplier:   res.Multiplier,
		StreakBonus:  res.StreakBonus,
		BadgeEarned:  toBadgePayload(res.BadgeEarned),
		LevelUp:      res.LevelUp,
	})
}

func (s *Server) handleUncomplete(w http.ResponseWriter, r *http.Request) {
	taskID, ok := s.taskID(w, r)
	if !ok {
		return
	}
	userKey := userKeyParam(r)

	res, err := s.svc.UncompleteTask(r.Context(), userKey, taskID)
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	metrics.Uncompletions.Inc()
	s.writeJSON(w, http.StatusOK, uncompleteResponse{
		TotalPoints:    res.TotalPoints,
		PointsDeducted: res.PointsDeducted,
	})
}

func (s *Server) handleUserStatus(w http.ResponseWriter, r *http.Request) {
	st, err := s.svc.UserStatus(r.Context(), r.PathValue("key"))
	if err != nil {
		s.writeEngineError(w, err)
		return
	}

	badges := make([]badgePayload, 0, len(st.Badges))
	for _, b := range st.Badges {
		badges = append(badges, *toBadgePayload(&b.Badge))
	}
	s.writeJSON(w, http.StatusOK, userStatusResponse{
		Key:            st.User.Key,
		Points:         st.User.Points,
		Level:          st.Level,
		PointsToNext:   st.PointsToNext,
		CurrentStreak:  st.User.CurrentStreak,
		LongestStreak:  st.User.LongestStreak,
		CompletedTasks: st.CompletedTasks,
		Badges:         badges,
	})
}

func (s *Server) taskID(w http.ResponseWriter, r *http.Request) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, map[string]string{"error": "task id must be an integer"})
		return 0, false
	}
	return id, true
}

func userKeyParam(r *http.Request) string {
	if key := r.URL.Query().Get("user"); key != "" {
		return key
	}
	return storage.DefaultUserKey
}

// writeEngineError maps the engine's typed errors onto status codes; anything
// unrecognized is a plain 500 with the detail kept in the log.
func (s *Server) writeEngineError(w http.ResponseWriter, err error) {
	var (
		notFound     engine.TaskNotFoundError
		already      engine.AlreadyCompletedError
		notCompleted engine.NotCompletedError
	)
	switch {
	case errors.As(err, &notFound):
		s.writeJSON(w, http.StatusNotFound, map[string]string{"error": err.Error()})
	case errors.As(err, &already), errors.As(err, &notCompleted):
		s.writeJSON(w, http.StatusConflict, map[string]string{"error": err.Error()})
	default:
		s.logger.Errorw("engine error", "err", err)
		s.writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}

func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Warnw("write response", "err", err)
	}
}

func toBadgePayload(b *storage.Badge) *badgePayload {
	if b == nil {
		return nil
	}
	return &badgePayload{Slug: b.Slug, Name: b.Name, Icon: b.Icon, Description: b.Description}
}
