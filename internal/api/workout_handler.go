package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type WorkoutHandler struct {
	workoutService service.WorkoutService
}

func NewWorkoutHandler(workoutService service.WorkoutService) *WorkoutHandler {
	return &WorkoutHandler{workoutService: workoutService}
}

// LogWorkoutRequest is the body of POST /workouts. Any user_id in the body is ignored.
type LogWorkoutRequest struct {
	ID        string `json:"id"`
	Type      string `json:"type" binding:"required"`
	Duration  int    `json:"duration" binding:"min=0"`
	Calories  int    `json:"calories" binding:"min=0"`
	Timestamp string `json:"timestamp"`
}

// writeWorkoutError maps workout service errors to responses.
func writeWorkoutError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found.")
	case errors.Is(err, service.ErrInvalidWorkout):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("Error trying to %s: %v", action, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to "+action+".")
	}
}

// LogWorkout godoc
// @Summary Log a completed workout
// @Description Stores a workout for the authenticated user. Sending an existing ID overwrites that workout.
// @Tags Workouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param workout body LogWorkoutRequest true "Workout"
// @Success 201 {object} domain.Workout
// @Failure 400 {object} gin.H "Validation error"
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 404 {object} gin.H "ID belongs to a workout the user does not own"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /workouts [post]
func (h *WorkoutHandler) LogWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req LogWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	workout, err := h.workoutService.LogWorkout(c.Request.Context(), userID, domain.Workout{
		ID:        req.ID,
		Type:      req.Type,
		Duration:  req.Duration,
		Calories:  req.Calories,
		Timestamp: req.Timestamp,
	})
	if err != nil {
		writeWorkoutError(c, err, "log workout")
		return
	}
	c.JSON(http.StatusCreated, workout)
}

// ListWorkouts godoc
// @Summary List my workouts
// @Tags Workouts
// @Produce json
// @Security BearerAuth
// @Success 200 {array} domain.Workout "Most recent first"
// @Router /workouts [get]
func (h *WorkoutHandler) ListWorkouts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workouts, err := h.workoutService.ListWorkouts(c.Request.Context(), userID)
	if err != nil {
		writeWorkoutError(c, err, "retrieve workouts")
		return
	}
	if workouts == nil {
		workouts = []domain.Workout{}
	}
	c.JSON(http.StatusOK, workouts)
}

func (h *WorkoutHandler) GetWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	workout, err := h.workoutService.GetWorkout(c.Request.Context(), userID, c.Param("id"))
	if err != nil {
		writeWorkoutError(c, err, "retrieve workout")
		return
	}
	c.JSON(http.StatusOK, workout)
}

func (h *WorkoutHandler) DeleteWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.workoutService.DeleteWorkout(c.Request.Context(), userID, c.Param("id")); err != nil {
		writeWorkoutError(c, err, "delete workout")
		return
	}
	c.Status(http.StatusNoContent)
}
