package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"time"

	"github.com/johanstjernquist/portfolio-backend/internal/db"
	"github.com/johanstjernquist/portfolio-backend/internal/models"
	"github.com/johanstjernquist/portfolio-backend/internal/repository"
)

// ============================================
// Project Service
// ============================================

const projectCacheTTL = 5 * time.Minute

type ProjectService interface {
	List(ctx context.Context, includeHidden bool, category string) ([]*repository.Project, error)
	Get(ctx context.Context, id string) (*repository.Project, error)
	Create(ctx context.Context, req *models.CreateProjectRequest) (*repository.Project, error)
	// Update merges the patch into the stored project; only supplied
	// fields change.
	Update(ctx context.Context, id string, patch *models.UpdateProjectRequest) (*repository.Project, error)
	Delete(ctx context.Context, id string) error
	// Reorder applies all (id, order) pairs atomically.
	Reorder(ctx context.Context, orders []repository.ProjectOrder) error
}

type projectService struct {
	projectRepo repository.ProjectRepository
	cache       *db.RedisDB // nil when Redis is not configured
}

func NewProjectService(projectRepo repository.ProjectRepository, cache *db.RedisDB) ProjectService {
	return &projectService{projectRepo: projectRepo, cache: cache}
}

func (s *projectService) List(ctx context.Context, includeHidden bool, category string) ([]*repository.Project, error) {
	// Only the public listing is cached; elevated reads always hit the store.
	cacheKey := ""
	if s.cache != nil && !includeHidden {
		cacheKey = "projects:public:" + category
		var cached []*repository.Project
		if err := s.cache.GetCache(ctx, cacheKey, &cached); err == nil {
			return cached, nil
		}
	}

	projects, err := s.projectRepo.List(ctx, repository.ProjectFilter{
		IncludeHidden: includeHidden,
		Category:      category,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list projects: %w", err)
	}

	if cacheKey != "" {
		if err := s.cache.SetCache(ctx, cacheKey, projects, projectCacheTTL); err != nil {
			log.Printf("⚠️ [Project] cache write failed: %v", err)
		}
	}

	return projects, nil
}

func (s *projectService) Get(ctx context.Context, id string) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}
	return project, nil
}

func (s *projectService) Create(ctx context.Context, req *models.CreateProjectRequest) (*repository.Project, error) {
	isVisible := true
	if req.IsVisible != nil {
		isVisible = *req.IsVisible
	}

	project := &repository.Project{
		Title:           req.Title,
		Description:     req.Description,
		LongDescription: req.LongDescription,
		Technologies:    req.Technologies,
		Category:        req.Category,
		Status:          req.Status,
		GithubURL:       req.GithubURL,
		DemoURL:         req.DemoURL,
		ImageURL:        req.ImageURL,
		IsVisible:       isVisible,
	}

	if err := s.projectRepo.Create(ctx, project, req.Order); err != nil {
		return nil, fmt.Errorf("failed to create project: %w", err)
	}

	s.invalidateListing(ctx)
	return project, nil
}

func (s *projectService) Update(ctx context.Context, id string, patch *models.UpdateProjectRequest) (*repository.Project, error) {
	project, err := s.projectRepo.FindByID(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to fetch project: %w", err)
	}

	applyProjectPatch(project, patch)

	if err := s.projectRepo.Update(ctx, project); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to update project: %w", err)
	}

	s.invalidateListing(ctx)
	return project, nil
}

func (s *projectService) Delete(ctx context.Context, id string) error {
	err := s.projectRepo.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("failed to delete project: %w", err)
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *projectService) Reorder(ctx context.Context, orders []repository.ProjectOrder) error {
	if err := s.projectRepo.UpdateOrders(ctx, orders); err != nil {
		return fmt.Errorf("failed to reorder projects: %w", err)
	}

	s.invalidateListing(ctx)
	return nil
}

func (s *projectService) invalidateListing(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if err := s.cache.InvalidateCache(ctx, "projects:public:*"); err != nil {
		log.Printf("⚠️ [Project] cache invalidation failed: %v", err)
	}
}

func applyProjectPatch(project *repository.Project, patch *models.UpdateProjectRequest) {
	if patch.Title != nil {
		project.Title = *patch.Title
	}
	if patch.Description != nil {
		project.Description = *patch.Description
	}
	if patch.LongDescription != nil {
		project.LongDescription = *patch.LongDescription
	}
	if patch.Technologies != nil {
		project.Technologies = patch.Technologies
	}
	if patch.Category != nil {
		project.Category = *patch.Category
	}
	if patch.Status != nil {
		project.Status = *patch.Status
	}
	if patch.GithubURL != nil {
		project.GithubURL = patch.GithubURL
	}
	if patch.DemoURL != nil {
		project.DemoURL = patch.DemoURL
	}
	if patch.ImageURL != nil {
		project.ImageURL = patch.ImageURL
	}
	if patch.Order != nil {
		project.DisplayOrder = *patch.Order
	}
	if patch.IsVisible != nil {
		project.IsVisible = *patch.IsVisible
	}
}
