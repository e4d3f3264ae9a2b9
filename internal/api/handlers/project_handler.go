package handlers

import (
	"errors"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/johanstjernquist/portfolio-backend/internal/api/middleware"
	"github.com/johanstjernquist/portfolio-backend/internal/models"
	"github.com/johanstjernquist/portfolio-backend/internal/repository"
	"github.com/johanstjernquist/portfolio-backend/internal/service"
	"github.com/johanstjernquist/portfolio-backend/internal/validation"
)

// ============================================
// Project Handler
// ============================================

type ProjectHandler struct {
	projectService service.ProjectService
}

func NewProjectHandler(projectService service.ProjectService) *ProjectHandler {
	return &ProjectHandler{projectService: projectService}
}

// List - Public project listing, sorted by (order asc, createdAt desc).
// Hidden projects appear only for an admin who asks for them.
// GET /projects?includeHidden=true&category=web
func (h *ProjectHandler) List(c *gin.Context) {
	principal := middleware.GetPrincipal(c)
	includeHidden := c.Query("includeHidden") == "true" &&
		principal != nil && principal.IsAdmin()
	category := c.Query("category")

	projects, err := h.projectService.List(c.Request.Context(), includeHidden, category)
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch projects")
		return
	}

	response := make([]models.ProjectResponse, len(projects))
	for i, p := range projects {
		response[i] = toProjectResponse(p)
	}

	respondData(c, http.StatusOK, "", response)
}

// Get - Project detail
// GET /projects/:id
func (h *ProjectHandler) Get(c *gin.Context) {
	id := c.Param("id")

	project, err := h.projectService.Get(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to fetch project")
		return
	}

	respondData(c, http.StatusOK, "", toProjectResponse(project))
}

// Create - Create a new project
// POST /projects (admin)
func (h *ProjectHandler) Create(c *gin.Context) {
	var req models.CreateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()
	if errs := validation.Struct(&req); errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	project, err := h.projectService.Create(c.Request.Context(), &req)
	if err != nil {
		log.Printf("❌ [Project] create failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to create project")
		return
	}

	respondData(c, http.StatusCreated, "Project created successfully", toProjectResponse(project))
}

// Update - Partial merge: only supplied fields change
// PUT /projects/:id (admin)
func (h *ProjectHandler) Update(c *gin.Context) {
	id := c.Param("id")

	var req models.UpdateProjectRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	req.Normalize()
	if errs := validation.Struct(&req); errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	project, err := h.projectService.Update(c.Request.Context(), id, &req)
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		log.Printf("❌ [Project] update failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to update project")
		return
	}

	respondData(c, http.StatusOK, "Project updated successfully", toProjectResponse(project))
}

// Delete - Hard delete
// DELETE /projects/:id (admin)
func (h *ProjectHandler) Delete(c *gin.Context) {
	id := c.Param("id")

	err := h.projectService.Delete(c.Request.Context(), id)
	if errors.Is(err, service.ErrNotFound) {
		respondError(c, http.StatusNotFound, "Project not found")
		return
	}
	if err != nil {
		respondError(c, http.StatusInternalServerError, "Failed to delete project")
		return
	}

	respondData(c, http.StatusOK, "Project deleted successfully", nil)
}

// Reorder - Applies every (id, order) pair atomically; a failed batch
// changes nothing.
// PATCH /projects/reorder (admin)
func (h *ProjectHandler) Reorder(c *gin.Context) {
	var req models.ReorderProjectsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, "Invalid request body")
		return
	}

	if errs := validation.Struct(&req); errs != nil {
		respondValidationErrors(c, errs)
		return
	}

	orders := make([]repository.ProjectOrder, len(req.ProjectOrders))
	for i, o := range req.ProjectOrders {
		orders[i] = repository.ProjectOrder{ID: o.ID, Order: o.Order}
	}

	if err := h.projectService.Reorder(c.Request.Context(), orders); err != nil {
		log.Printf("❌ [Project] reorder failed: %v", err)
		respondError(c, http.StatusInternalServerError, "Failed to update project order")
		return
	}

	respondData(c, http.StatusOK, "Project order updated successfully", nil)
}
