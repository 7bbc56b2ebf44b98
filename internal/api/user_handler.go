package api

import (
	"ahmadaybb/exercise-tracker/internal/domain"
	"ahmadaybb/exercise-tracker/internal/service"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
)

// UserHandler holds the user service dependency.
type UserHandler struct {
	userService service.UserService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService}
}

// CreateUserRequest accepts a urlencoded form or JSON body.
type CreateUserRequest struct {
	Username string `form:"username" json:"username" binding:"required"`
}

// UserResponse is the public view of a user.
type UserResponse struct {
	ID       string `json:"_id"`
	Username string `json:"username"`
}

// MapUserToResponse converts a domain.User to UserResponse DTO.
func MapUserToResponse(user *domain.User) UserResponse {
	if user == nil {
		return UserResponse{}
	}
	return UserResponse{ID: user.ID.Hex(), Username: user.Username}
}

// ListUsers godoc
// @Summary List users
// @Produce json
// @Success 200 {array} UserResponse
// @Failure 500 {object} gin.H
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	users, err := h.userService.ListUsers(c.Request.Context())
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	responses := make([]UserResponse, len(users))
	for i := range users {
		responses[i] = MapUserToResponse(&users[i])
	}
	c.JSON(http.StatusOK, responses)
}

// CreateUser godoc
// @Summary Get or create a user by username
// @Accept x-www-form-urlencoded
// @Produce json
// @Param username formData string true "Username"
// @Success 200 {object} UserResponse "Existing or newly created user"
// @Failure 400 {object} gin.H
// @Failure 500 {object} gin.H
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	var req CreateUserRequest
	if err := c.ShouldBind(&req); err != nil {
		abortWithError(c, http.StatusBadRequest, fmt.Sprintf("Validation error: %v", err))
		return
	}

	user, err := h.userService.GetOrCreateUser(c.Request.Context(), req.Username)
	if err != nil {
		abortWithServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, MapUserToResponse(user))
}
