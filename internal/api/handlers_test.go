package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/insights"
	"alcyxob/fitness-tracker/internal/service"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogWorkout(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/workouts", "user-1", map[string]any{
		"type": "running", "duration": 30, "calories": 300, "user_id": "spoofed",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	got := decode[domain.Workout](t, rec)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, "generated", got.ID)
	require.Len(t, ts.workouts.logged, 1)
	assert.Equal(t, 30, ts.workouts.logged[0].Duration)
}

func TestLogWorkout_Validation(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/workouts", "user-1", map[string]any{"duration": 30})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodPost, "/api/v1/workouts", "user-1", map[string]any{"type": "run", "duration": -3})
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Empty(t, ts.workouts.logged)
}

func TestLogWorkout_ServiceErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{fmt.Errorf("%w: type is required", service.ErrInvalidWorkout), http.StatusBadRequest},
		{service.ErrWorkoutNotFound, http.StatusNotFound},
		{errBoom, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			ts := newTestServer(t)
			ts.workouts.err = tt.err
			rec := ts.do(t, http.MethodPost, "/api/v1/workouts", "user-1", map[string]any{"type": "run"})
			assert.Equal(t, tt.want, rec.Code)
			assert.NotEmpty(t, errorMessage(t, rec))
		})
	}
}

func TestWorkoutReadAndDelete(t *testing.T) {
	ts := newTestServer(t)
	ts.workouts.workouts["w1"] = domain.Workout{ID: "w1", UserID: "user-1", Type: "run"}

	rec := ts.do(t, http.MethodGet, "/api/v1/workouts", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[[]domain.Workout](t, rec), 1)

	rec = ts.do(t, http.MethodGet, "/api/v1/workouts", "user-2", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/workouts/w1", "user-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/workouts/w1", "user-1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/workouts/w1", "user-2", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/workouts/w1", "user-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.NotContains(t, ts.workouts.workouts, "w1")
}

func TestProfileEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/profile", "user-1", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = ts.do(t, http.MethodPut, "/api/v1/profile", "user-1", map[string]any{
		"weight": 72.5, "weekly_target_type": "minutes", "weekly_target_value": 150,
	})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	rec = ts.do(t, http.MethodGet, "/api/v1/profile", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[domain.Profile](t, rec)
	assert.Equal(t, "user-1", got.UserID)
	assert.Equal(t, 72.5, got.Weight)
	assert.Equal(t, domain.TargetTypeMinutes, got.WeeklyTargetType)

	rec = ts.do(t, http.MethodPut, "/api/v1/profile", "user-1", map[string]any{"age": -1})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	ts.profiles.err = errBoom
	rec = ts.do(t, http.MethodGet, "/api/v1/profile", "user-1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestPlannedWorkoutEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/planned-workouts", "user-1", map[string]any{
		"workout_type": "cycling", "planned_date": "2024-01-12", "planned_time": "18:00",
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	assert.Equal(t, "user-1", decode[domain.PlannedWorkout](t, rec).UserID)

	rec = ts.do(t, http.MethodPost, "/api/v1/planned-workouts", "user-1", map[string]any{"workout_type": "cycling"})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodGet, "/api/v1/planned-workouts", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())

	rec = ts.do(t, http.MethodPut, "/api/v1/planned-workouts/p7", "user-1", map[string]any{
		"workout_type": "swim", "planned_date": "2024-01-13",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "p7", decode[domain.PlannedWorkout](t, rec).ID)

	rec = ts.do(t, http.MethodPost, "/api/v1/planned-workouts/p7/complete", "user-1", map[string]any{"workout_id": "w1"})
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, decode[domain.PlannedWorkout](t, rec).Completed)
	assert.Equal(t, "w1", ts.planned.completed)

	rec = ts.do(t, http.MethodPost, "/api/v1/planned-workouts/p7/complete", "user-1", map[string]any{})
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = ts.do(t, http.MethodDelete, "/api/v1/planned-workouts/p7", "user-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestPlannedWorkoutErrors(t *testing.T) {
	tests := []struct {
		err  error
		want int
	}{
		{service.ErrPlannedWorkoutNotFound, http.StatusNotFound},
		{service.ErrWorkoutNotFound, http.StatusNotFound},
		{fmt.Errorf("%w: planned_date must be YYYY-MM-DD", service.ErrInvalidPlannedWorkout), http.StatusBadRequest},
		{errBoom, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.err.Error(), func(t *testing.T) {
			ts := newTestServer(t)
			ts.planned.err = tt.err
			rec := ts.do(t, http.MethodPost, "/api/v1/planned-workouts/p1/complete", "user-1", map[string]any{"workout_id": "w1"})
			assert.Equal(t, tt.want, rec.Code)

			rec = ts.do(t, http.MethodDelete, "/api/v1/planned-workouts/p1", "user-1", nil)
			assert.Equal(t, tt.want, rec.Code)
		})
	}
}

func TestInsightsEndpoints(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodGet, "/api/v1/insights", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "user-1", ts.insights.userID)

	body := decode[map[string]any](t, rec)
	for _, key := range []string{"weekly_progress", "week_comparison", "streaks", "frequency", "calories", "type_breakdown", "consistency"} {
		assert.Contains(t, body, key)
	}
	assert.Nil(t, body["weekly_progress"])

	got := decode[insights.Insights](t, rec)
	assert.Len(t, got.Frequency, 8)

	rec = ts.do(t, http.MethodGet, "/api/v1/insights/summary", "user-1", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"total_calories":200,"message":"You've burned 200 calories!"}`, rec.Body.String())

	ts.insights.err = errBoom
	rec = ts.do(t, http.MethodGet, "/api/v1/insights", "user-1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Equal(t, "Failed to compute insights.", errorMessage(t, rec))
}

func TestExportEndpoint(t *testing.T) {
	ts := newTestServer(t)

	rec := ts.do(t, http.MethodPost, "/api/v1/export", "user-1", nil)
	require.Equal(t, http.StatusCreated, rec.Code)
	got := decode[service.ExportResponse](t, rec)
	assert.Equal(t, "exports/user-1/x.json", got.ObjectKey)

	ts.exports.err = service.ErrExportFailed
	rec = ts.do(t, http.MethodPost, "/api/v1/export", "user-1", nil)
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
