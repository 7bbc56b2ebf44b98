package api

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// ExerciseHandler holds the exercise service dependency.
type ExerciseHandler struct {
	exerciseService service.ExerciseService
}

// NewExerciseHandler creates a new ExerciseHandler.
func NewExerciseHandler(exerciseService service.ExerciseService) *ExerciseHandler {
	return &ExerciseHandler{exerciseService: exerciseService}
}

// RecordExerciseRequest accepts a urlencoded form or JSON body. Date is
// optional and defaults to now.
type RecordExerciseRequest struct {
	Description string  `form:"description" json:"description"`
	Duration    float64 `form:"duration" json:"duration"`
	Date        string  `form:"date" json:"date"`
}

// ExerciseResponse is the DTO for a newly recorded exercise.
type ExerciseResponse struct {
	ID          string  `json:"_id"`
	Username    string  `json:"username"`
	Description string  `json:"description"`
	Duration    float64 `json:"duration"`
	Date        string  `json:"date"`
}

// MapExerciseToResponse converts a domain.Exercise to ExerciseResponse DTO.
func MapExerciseToResponse(ex *domain.Exercise) ExerciseResponse {
	if ex == nil {
		return ExerciseResponse{}
	}
	return ExerciseResponse{
		ID:          ex.ID.Hex(),
		Username:    ex.Username,
		Description: ex.Description,
		Duration:    ex.Duration,
		Date:        domain.FormatTimestamp(ex.Date),
	}
}

// RecordExercise godoc
// @Summary Record an exercise for a user
// @Accept x-www-form-urlencoded
// @Produce json
// @Param _id path string true "User ID"
// @Param description formData string false "Description"
// @Param duration formData number false "Duration in minutes"
// @Param date formData string false "Date (YYYY-MM-DD), defaults to now"
// @Success 200 {object} ExerciseResponse
// @Failure 400 {object} gin.H "Malformed duration or date"
// @Failure 404 {object} gin.H "No user exists for that id"
// @Failure 500 {object} gin.H
// @Router /users/{_id}/exercises [post]
func (h *ExerciseHandler) RecordExercise(c *gin.Context) {
	var req RecordExerciseRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	exercise, err := h.exerciseService.RecordExercise(c.Request.Context(), c.Param("_id"), service.RecordExerciseInput{
		Description: req.Description,
		Duration:    req.Duration,
		Date:        req.Date,
	})
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapExerciseToResponse(exercise))
}
