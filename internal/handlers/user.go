package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/adaskevich/tasktracker/internal/dto"
	apierrors "github.com/adaskevich/tasktracker/internal/errors"
	"github.com/adaskevich/tasktracker/internal/middleware"
	"github.com/adaskevich/tasktracker/internal/services"
)

// UserHandler coordinates user-related HTTP handlers.
type UserHandler struct {
	authService *services.AuthService
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(authService *services.AuthService) *UserHandler {
	return &UserHandler{authService: authService}
}

// Register creates a new user account.
func (h *UserHandler) Register(c *gin.Context) {
	type RegisterRequest struct {
		Login    string `json:"login" binding:"required,min=3,max=50"`
		Email    string `json:"email" binding:"required,email,max=50"`
		Password string `json:"password" binding:"required,min=8"`
		Role     string `json:"role" binding:"required"`
	}

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequest(c, "Invalid request body: login (min 3 chars), email, password (min 8 chars) and role are required")
		return
	}

	user, err := h.authService.Register(services.RegisterInput{
		Login:    req.Login,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToUserDTO(*user))
}

// Details returns the authenticated user.
func (h *UserHandler) Details(c *gin.Context) {
	user, exists := middleware.GetCurrentUser(c)
	if !exists {
		apierrors.Unauthorized(c, "")
		return
	}

	c.JSON(http.StatusOK, dto.ToUserDTO(*user))
}
