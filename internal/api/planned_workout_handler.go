package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type PlannedWorkoutHandler struct {
	plannedService service.PlannedWorkoutService
}

func NewPlannedWorkoutHandler(plannedService service.PlannedWorkoutService) *PlannedWorkoutHandler {
	return &PlannedWorkoutHandler{plannedService: plannedService}
}

// --- DTOs ---

type PlannedWorkoutRequest struct {
	WorkoutType     string `json:"workout_type" binding:"required"`
	PlannedDate     string `json:"planned_date" binding:"required"` // YYYY-MM-DD
	PlannedTime     string `json:"planned_time"`                    // HH:MM
	PlannedDuration int    `json:"planned_duration" binding:"min=0"`
	Notes           string `json:"notes"`
	Completed       bool   `json:"completed"`
	// Only honoured on update.
	CompletedWorkoutID string `json:"completed_workout_id"`
}

func (r PlannedWorkoutRequest) toDomain() domain.PlannedWorkout {
	return domain.PlannedWorkout{
		WorkoutType:        r.WorkoutType,
		PlannedDate:        r.PlannedDate,
		PlannedTime:        r.PlannedTime,
		PlannedDuration:    r.PlannedDuration,
		Notes:              r.Notes,
		Completed:          r.Completed,
		CompletedWorkoutID: r.CompletedWorkoutID,
	}
}

type CompletePlannedWorkoutRequest struct {
	WorkoutID string `json:"workout_id" binding:"required"`
}

func writePlannedError(c *gin.Context, err error, action string) {
	switch {
	case errors.Is(err, service.ErrPlannedWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Planned workout not found.")
	case errors.Is(err, service.ErrWorkoutNotFound):
		abortWithError(c, http.StatusNotFound, "Workout not found.")
	case errors.Is(err, service.ErrInvalidPlannedWorkout):
		abortWithError(c, http.StatusBadRequest, err.Error())
	default:
		log.Errorf("Error trying to %s: %v", action, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to "+action+".")
	}
}

// CreatePlannedWorkout godoc
// @Summary Schedule a workout
// @Tags PlannedWorkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param plan body PlannedWorkoutRequest true "Planned workout"
// @Success 201 {object} domain.PlannedWorkout
// @Failure 400 {object} gin.H "Validation error"
// @Router /planned-workouts [post]
func (h *PlannedWorkoutHandler) CreatePlannedWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req PlannedWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	planned, err := h.plannedService.Create(c.Request.Context(), userID, req.toDomain())
	if err != nil {
		writePlannedError(c, err, "create planned workout")
		return
	}
	c.JSON(http.StatusCreated, planned)
}

func (h *PlannedWorkoutHandler) ListPlannedWorkouts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	planned, err := h.plannedService.List(c.Request.Context(), userID)
	if err != nil {
		writePlannedError(c, err, "retrieve planned workouts")
		return
	}
	if planned == nil {
		planned = []domain.PlannedWorkout{}
	}
	c.JSON(http.StatusOK, planned)
}

func (h *PlannedWorkoutHandler) UpdatePlannedWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req PlannedWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	planned, err := h.plannedService.Update(c.Request.Context(), userID, c.Param("id"), req.toDomain())
	if err != nil {
		writePlannedError(c, err, "update planned workout")
		return
	}
	c.JSON(http.StatusOK, planned)
}

func (h *PlannedWorkoutHandler) DeletePlannedWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	if err := h.plannedService.Delete(c.Request.Context(), userID, c.Param("id")); err != nil {
		writePlannedError(c, err, "delete planned workout")
		return
	}
	c.Status(http.StatusNoContent)
}

// CompletePlannedWorkout godoc
// @Summary Mark a planned workout as done
// @Description Links the planned workout to a logged workout owned by the same user.
// @Tags PlannedWorkouts
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Planned workout ID"
// @Param body body CompletePlannedWorkoutRequest true "Workout that fulfilled the plan"
// @Success 200 {object} domain.PlannedWorkout
// @Failure 404 {object} gin.H "Plan or workout not found"
// @Router /planned-workouts/{id}/complete [post]
func (h *PlannedWorkoutHandler) CompletePlannedWorkout(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req CompletePlannedWorkoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}
	planned, err := h.plannedService.Complete(c.Request.Context(), userID, c.Param("id"), req.WorkoutID)
	if err != nil {
		writePlannedError(c, err, "complete planned workout")
		return
	}
	c.JSON(http.StatusOK, planned)
}
