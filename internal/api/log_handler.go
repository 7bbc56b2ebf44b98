package api

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/service"
	"net/http"

	"github.com/gin-gonic/gin"
)

// LogHandler serves exercise logs and, when configured, log exports.
type LogHandler struct {
	logService    service.LogService
	exportService service.ExportService
}

// NewLogHandler creates a new LogHandler. exportService may be nil.
func NewLogHandler(logService service.LogService, exportService service.ExportService) *LogHandler {
	return &LogHandler{logService: logService, exportService: exportService}
}

func logQueryFromRequest(c *gin.Context) domain.LogQuery {
	return domain.ParseLogQuery(c.Query("from"), c.Query("to"), c.Query("limit"))
}

// GetLogs godoc
// @Summary Get a user's exercise log
// @Produce json
// @Param _id path string true "User ID"
// @Param from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} domain.ExerciseLog
// @Failure 404 {object} gin.H "No user exists for that id"
// @Failure 500 {object} gin.H
// @Router /users/{_id}/logs [get]
func (h *LogHandler) GetLogs(c *gin.Context) {
	exerciseLog, err := h.logService.GetLogs(c.Request.Context(), c.Param("_id"), logQueryFromRequest(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, exerciseLog)
}

// ExportLogs godoc
// @Summary Export a user's exercise log to object storage
// @Produce json
// @Param _id path string true "User ID"
// @Param from query string false "Inclusive lower bound (YYYY-MM-DD)"
// @Param to query string false "Inclusive upper bound (YYYY-MM-DD)"
// @Param limit query int false "Maximum entries"
// @Success 200 {object} service.LogExport
// @Failure 404 {object} gin.H "No user exists for that id"
// @Failure 500 {object} gin.H
// @Router /users/{_id}/logs/export [post]
func (h *LogHandler) ExportLogs(c *gin.Context) {
	if h.exportService == nil {
		abortWithError(c, http.StatusServiceUnavailable, service.ErrExportUnavailable.Error())
		return
	}

	export, err := h.exportService.ExportLogs(c.Request.Context(), c.Param("_id"), logQueryFromRequest(c))
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, export)
}
