package api

import (
	"alcyxob/fitness-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
)

type ExportHandler struct {
	exportService service.ExportService
}

func NewExportHandler(exportService service.ExportService) *ExportHandler {
	return &ExportHandler{exportService: exportService}
}

// ExportWorkouts godoc
// @Summary Export my workout history
// @Description Writes profile and workouts to object storage and returns a temporary download URL.
// @Tags Export
// @Produce json
// @Security BearerAuth
// @Success 201 {object} service.ExportResponse
// @Failure 500 {object} gin.H "Export failed"
// @Router /export [post]
func (h *ExportHandler) ExportWorkouts(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}
	resp, err := h.exportService.ExportWorkouts(c.Request.Context(), userID)
	if err != nil {
		log.Errorf("Error exporting workouts for user %s: %v", userID, err)
		abortWithError(c, http.StatusInternalServerError, "Failed to export workouts.")
		return
	}
	c.JSON(http.StatusCreated, resp)
}
