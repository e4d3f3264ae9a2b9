package models

import (
	"strings"
	"time"
)

// ============================================
// Response envelope
// ============================================

// APIResponse is the body shape every endpoint returns.
type APIResponse struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
	Error   interface{} `json:"error,omitempty"`
}

// ============================================
// Auth DTOs
// ============================================

type RegisterRequest struct {
	Name     string `json:"name" validate:"required,min=2,max=100"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}

type UserResponse struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (r *RegisterRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
}

func (r *LoginRequest) Normalize() {
	r.Email = NormalizeEmail(r.Email)
}

// ============================================
// Contact DTOs
// ============================================

type SubmitContactRequest struct {
	Name    string `json:"name" validate:"required,min=1,max=100"`
	Email   string `json:"email" validate:"required,email"`
	Subject string `json:"subject" validate:"required,min=5,max=200"`
	Message string `json:"message" validate:"required,min=10,max=2000"`
}

// Normalize trims length-bounded fields before they are measured and
// canonicalizes the email address.
func (r *SubmitContactRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = NormalizeEmail(r.Email)
	r.Subject = strings.TrimSpace(r.Subject)
	r.Message = strings.TrimSpace(r.Message)
}

type ContactResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	IsRead    bool      `json:"isRead"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactCreatedResponse struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"createdAt"`
}

type ContactReadResponse struct {
	ID     string `json:"id"`
	IsRead bool   `json:"isRead"`
}

type Pagination struct {
	Page  int `json:"page"`
	Limit int `json:"limit"`
	Total int `json:"total"`
	Pages int `json:"pages"`
}

type ContactListResponse struct {
	Contacts   []ContactResponse `json:"contacts"`
	Pagination Pagination        `json:"pagination"`
}

// ============================================
// Project DTOs
// ============================================

type CreateProjectRequest struct {
	Title           string   `json:"title" validate:"required,min=3,max=200"`
	Description     string   `json:"description" validate:"required,min=10,max=500"`
	LongDescription string   `json:"longDescription" validate:"required,min=50,max=2000"`
	Technologies    []string `json:"technologies" validate:"required,min=1,dive,min=1,max=50"`
	Category        string   `json:"category" validate:"required,oneof=web backend ai-ml data mobile"`
	Status          string   `json:"status" validate:"required,oneof=completed in-progress planned"`
	GithubURL       *string  `json:"githubUrl" validate:"omitempty,url"`
	DemoURL         *string  `json:"demoUrl" validate:"omitempty,url"`
	ImageURL        *string  `json:"imageUrl" validate:"omitempty,url"`
	Order           *int     `json:"order" validate:"omitempty,min=0"`
	IsVisible       *bool    `json:"isVisible"`
}

func (r *CreateProjectRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Description = strings.TrimSpace(r.Description)
	r.LongDescription = strings.TrimSpace(r.LongDescription)
	for i := range r.Technologies {
		r.Technologies[i] = strings.TrimSpace(r.Technologies[i])
	}
	r.Category = strings.TrimSpace(r.Category)
}

// UpdateProjectRequest is a patch: every field is optional and only
// supplied fields are merged into the stored project.
type UpdateProjectRequest struct {
	Title           *string  `json:"title" validate:"omitempty,min=3,max=200"`
	Description     *string  `json:"description" validate:"omitempty,min=10,max=500"`
	LongDescription *string  `json:"longDescription" validate:"omitempty,min=50,max=2000"`
	Technologies    []string `json:"technologies" validate:"omitempty,min=1,dive,min=1,max=50"`
	Category        *string  `json:"category" validate:"omitempty,oneof=web backend ai-ml data mobile"`
	Status          *string  `json:"status" validate:"omitempty,oneof=completed in-progress planned"`
	GithubURL       *string  `json:"githubUrl" validate:"omitempty,url"`
	DemoURL         *string  `json:"demoUrl" validate:"omitempty,url"`
	ImageURL        *string  `json:"imageUrl" validate:"omitempty,url"`
	Order           *int     `json:"order" validate:"omitempty,min=0"`
	IsVisible       *bool    `json:"isVisible"`
}

func (r *UpdateProjectRequest) Normalize() {
	if r.Title != nil {
		*r.Title = strings.TrimSpace(*r.Title)
	}
	if r.Description != nil {
		*r.Description = strings.TrimSpace(*r.Description)
	}
	if r.LongDescription != nil {
		*r.LongDescription = strings.TrimSpace(*r.LongDescription)
	}
	for i := range r.Technologies {
		r.Technologies[i] = strings.TrimSpace(r.Technologies[i])
	}
	if r.Category != nil {
		*r.Category = strings.TrimSpace(*r.Category)
	}
}

type ProjectOrderInput struct {
	ID    string `json:"id" validate:"required"`
	Order int    `json:"order" validate:"min=0"`
}

type ReorderProjectsRequest struct {
	ProjectOrders []ProjectOrderInput `json:"projectOrders" validate:"required,min=1,dive"`
}

type ProjectResponse struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Description     string    `json:"description"`
	LongDescription string    `json:"longDescription"`
	Technologies    []string  `json:"technologies"`
	Category        string    `json:"category"`
	Status          string    `json:"status"`
	GithubURL       *string   `json:"githubUrl,omitempty"`
	DemoURL         *string   `json:"demoUrl,omitempty"`
	ImageURL        *string   `json:"imageUrl,omitempty"`
	Order           int       `json:"order"`
	IsVisible       bool      `json:"isVisible"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// NormalizeEmail canonicalizes an address: trims whitespace and
// lower-cases it so lookups and stored values compare equal.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
