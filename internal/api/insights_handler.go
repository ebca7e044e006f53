package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type InsightsHandler struct {
	insightsService service.InsightsService
}

func NewInsightsHandler(insightsService service.InsightsService) *InsightsHandler {
	return &InsightsHandler{insightsService: insightsService}
}

// GetInsights godoc
// @Summary Get workout analytics
// @Description Weekly goal progress, week-over-week comparison, streaks, 8-week series, type breakdown and consistency stats.
// @Tags Insights
// @Produce json
// @Security BearerAuth
// @Success 200 {object} insights.Insights
// @Failure 401 {object} gin.H "Unauthorized"
// @Failure 500 {object} gin.H "Internal Server Error"
// @Router /insights [get]
func (h *InsightsHandler) GetInsights(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	result, err := h.insightsService.GetInsights(c.Request.Context(), userID)
	if err != nil {
		log.Errorf("Error computing insights for user %s: %v", userID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to compute insights.")
		return
	}
	c.JSON(http.StatusOK, result)
}

func (h *InsightsHandler) GetSummary(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	summary, err := h.insightsService.GetSummary(c.Request.Context(), userID)
	if err != nil {
		log.Errorf("Error computing summary for user %s: %v", userID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to compute summary.")
		return
	}
	c.JSON(http.StatusOK, summary)
}
