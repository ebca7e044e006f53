package api

import (
	"alcyxob/fitness-tracker/internal/domain"
	"alcyxob/fitness-tracker/internal/service"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ProfileHandler struct {
	profileService service.ProfileService
}

func NewProfileHandler(profileService service.ProfileService) *ProfileHandler {
	return &ProfileHandler{profileService: profileService}
}

// SaveProfileRequest is the full replacement body of PUT /profile.
type SaveProfileRequest struct {
	Height            float64 `json:"height" binding:"min=0"`
	Weight            float64 `json:"weight" binding:"min=0"`
	Age               int     `json:"age" binding:"min=0"`
	Sex               string  `json:"sex"`
	TargetWeight      float64 `json:"target_weight" binding:"min=0"`
	WeeklyTargetType  string  `json:"weekly_target_type"`
	WeeklyTargetValue float64 `json:"weekly_target_value" binding:"min=0"`
	GoalDeadline      string  `json:"goal_deadline"`
	ActivityLevel     string  `json:"activity_level"`
	GymExperience     string  `json:"gym_experience"`
	WorkoutFrequency  string  `json:"workout_frequency"`
}

// GetProfile godoc
// @Summary Get my profile
// @Tags Profile
// @Produce json
// @Security BearerAuth
// @Success 200 {object} domain.Profile
// @Failure 404 {object} gin.H "Profile not set up yet"
// @Router /profile [get]
func (h *ProfileHandler) GetProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	profile, err := h.profileService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, service.ErrProfileNotFound) {
			abortWithError(c, http.StatusNotFound, "Profile not found.")
			return
		}
		log.Errorf("Error fetching profile for user %s: %v", userID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to retrieve profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}

// SaveProfile godoc
// @Summary Create or replace my profile
// @Tags Profile
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param profile body SaveProfileRequest true "Profile"
// @Success 200 {object} domain.Profile
// @Failure 400 {object} gin.H "Validation error"
// @Router /profile [put]
func (h *ProfileHandler) SaveProfile(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	var req SaveProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, "Validation error: "+err.Error())
		return
	}

	profile, err := h.profileService.SaveProfile(c.Request.Context(), userID, domain.Profile{
		Height:            req.Height,
		Weight:            req.Weight,
		Age:               req.Age,
		Sex:               req.Sex,
		TargetWeight:      req.TargetWeight,
		WeeklyTargetType:  req.WeeklyTargetType,
		WeeklyTargetValue: req.WeeklyTargetValue,
		GoalDeadline:      req.GoalDeadline,
		ActivityLevel:     req.ActivityLevel,
		GymExperience:     req.GymExperience,
		WorkoutFrequency:  req.WorkoutFrequency,
	})
	if err != nil {
		log.Errorf("Error saving profile for user %s: %v", userID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to save profile.")
		return
	}
	c.JSON(http.StatusOK, profile)
}
