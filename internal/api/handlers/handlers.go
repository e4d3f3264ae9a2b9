package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/johanstjernquist/portfolio-backend/internal/models"
	"github.com/johanstjernquist/portfolio-backend/internal/repository"
	"github.com/johanstjernquist/portfolio-backend/internal/service"
	"github.com/johanstjernquist/portfolio-backend/internal/validation"
)

// ============================================
// Handlers Container
// ============================================

type Handlers struct {
	Auth    *AuthHandler
	Contact *ContactHandler
	Project *ProjectHandler
}

func NewHandlers(services *service.Services) *Handlers {
	return &Handlers{
		Auth:    NewAuthHandler(services.Auth),
		Contact: NewContactHandler(services.Contact),
		Project: NewProjectHandler(services.Project),
	}
}

// ============================================
// Response helpers
// ============================================

func respondData(c *gin.Context, status int, message string, data interface{}) {
	c.JSON(status, models.APIResponse{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func respondError(c *gin.Context, status int, errMsg string) {
	c.JSON(status, models.APIResponse{
		Success: false,
		Error:   errMsg,
	})
}

func respondValidationErrors(c *gin.Context, errs []validation.FieldError) {
	c.JSON(400, models.APIResponse{
		Success: false,
		Message: "Validation failed",
		Error:   errs,
	})
}

// ============================================
// Response converters
// ============================================

func toUserResponse(u *repository.User) models.UserResponse {
	return models.UserResponse{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}

func toContactResponse(contact *repository.Contact) models.ContactResponse {
	return models.ContactResponse{
		ID:        contact.ID,
		Name:      contact.Name,
		Email:     contact.Email,
		Subject:   contact.Subject,
		Message:   contact.Message,
		IsRead:    contact.IsRead,
		CreatedAt: contact.CreatedAt,
	}
}

func toProjectResponse(p *repository.Project) models.ProjectResponse {
	return models.ProjectResponse{
		ID:              p.ID,
		Title:           p.Title,
		Description:     p.Description,
		LongDescription: p.LongDescription,
		Technologies:    p.Technologies,
		Category:        p.Category,
		Status:          p.Status,
		GithubURL:       p.GithubURL,
		DemoURL:         p.DemoURL,
		ImageURL:        p.ImageURL,
		Order:           p.DisplayOrder,
		IsVisible:       p.IsVisible,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
