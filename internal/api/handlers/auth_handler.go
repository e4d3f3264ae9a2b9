package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/johanstjernquist/portfolio-backend/internal/api/middleware"
	"github.com/johanstjernquist/portfolio-backend/internal/models"
	"github.com/johanstjernquist/portfolio-backend/internal/service"
	"github.com/johanstjernquist/portfolio-backend/internal/validation"
)

// ============================================
// Auth Handler
// ============================================

type AuthHandler struct {
	authService service.AuthService
}

func NewAuthHandler(authService service.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Login - Exchange email+password for a signed token
// POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req models.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()
	if errs := validation.Struct(&req); errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	user, token, err := h.authService.Login(c.Request.Context(), req.Email, req.Password)
	if errors.Is(err, service.ErrInvalidCredentials) {
		respondError(c, http.StatusUnauthorized, "Invalid email or password")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Login failed")
		return
	}

	respondData(c, http.StatusOK, "Login successful", models.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Register - Create a regular (non-admin) account
// POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req models.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()
	if errs := validation.Struct(&req); errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	user, token, err := h.authService.Register(c.Request.Context(), req.Name, req.Email, req.Password)
	if errors.Is(err, service.ErrUserExists) {
		respondError(c, http.StatusConflict, "An account with this email already exists")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Registration failed")
		return
	}

	respondData(c, http.StatusCreated, "Account created successfully", models.AuthResponse{
		User:  toUserResponse(user),
		Token: token,
	})
}

// Profile - Current principal's account
// GET /auth/profile
func (h *AuthHandler) Profile(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	if principal == nil {
		respondError(c, http.StatusUnauthorized, "Not authenticated")
		return
	}

	user, err := h.authService.GetUser(c.Request.Context(), principal.ID)
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, http.StatusNotFound, "User not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch profile")
		return
	}

	respondData(c, http.StatusOK, "", toUserResponse(user))
}
