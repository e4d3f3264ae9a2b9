// internal/seed/seed.go
package seed

import (
	"context"
	"log"

	"github.com/johanstjernquist/portfolio-backend/internal/config"
	"github.com/johanstjernquist/portfolio-backend/internal/repository"
	"golang.org/x/crypto/bcrypt"
)

// SeedData creates the admin account and a few sample projects for
// development. Safe to run repeatedly.
func SeedData(cfg *config.Config, repos *repository.Repositories) {
	ctx := context.Background()

	seedAdmin(ctx, cfg, repos)
	seedProjects(ctx, repos)
}

func seedAdmin(ctx context.Context, cfg *config.Config, repos *repository.Repositories) {
	existing, err := repos.UserRepo.FindByEmail(ctx, cfg.AdminEmail)
	if err != nil {
		log.Printf("⚠️ [Seed] admin lookup failed: %v", err)
		return
	}
	if existing != nil {
		return
	}

	adminPassword := cfg.AdminPassword
	if adminPassword == "" {
		adminPassword = "changeme123"
		log.Println("⚠️ [Seed] ADMIN_PASSWORD not set, using development default")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		log.Printf("⚠️ [Seed] failed to hash admin password: %v", err)
		return
	}

	admin := &repository.User{
		Email:    cfg.AdminEmail,
		Password: string(hashed),
		Name:     "Johan Nilsen Stjernquist",
		Role:     "admin",
	}
	if err := repos.UserRepo.Create(ctx, admin); err != nil {
		log.Printf("⚠️ [Seed] failed to create admin: %v", err)
		return
	}

	log.Printf("✅ [Seed] Created admin user %s", admin.Email)
}

func seedProjects(ctx context.Context, repos *repository.Repositories) {
	existing, err := repos.ProjectRepo.List(ctx, repository.ProjectFilter{IncludeHidden: true})
	if err != nil || len(existing) > 0 {
		return
	}

	demoURL := "https://johancv.com"
	githubURL := "https://github.com/johanstjernquist/portfolio"

	samples := []*repository.Project{
		{
			Title:           "Portfolio Website",
			Description:     "Personal CV and project showcase with an admin dashboard.",
			LongDescription: "A personal portfolio presenting my CV, skills and selected work. Visitors can reach me through a contact form; an admin dashboard manages submissions and curates the project catalog, including display ordering.",
			Technologies:    []string{"Go", "PostgreSQL", "React", "TypeScript"},
			Category:        "web",
			Status:          "completed",
			GithubURL:       &githubURL,
			DemoURL:         &demoURL,
			IsVisible:       true,
		},
		{
			Title:           "Sensor Data Pipeline",
			Description:     "Streaming ingestion and aggregation of IoT sensor readings.",
			LongDescription: "Ingests time-series readings from field sensors, validates and aggregates them in configurable windows, and exposes the rollups through a small query API. Built to explore backpressure handling and batch writes.",
			Technologies:    []string{"Go", "PostgreSQL", "Redis"},
			Category:        "data",
			Status:          "in-progress",
			IsVisible:       true,
		},
		{
			Title:           "Recipe Recommender",
			Description:     "Experiments with embedding-based recipe recommendations.",
			LongDescription: "A playground for recommendation experiments: ingredient embeddings, simple collaborative filtering, and a ranking layer. Hidden from the public listing until the write-up is finished and the results are reproducible.",
			Technologies:    []string{"Python", "PostgreSQL"},
			Category:        "ai-ml",
			Status:          "planned",
			IsVisible:       false,
		},
	}

	for _, p := range samples {
		if err := repos.ProjectRepo.Create(ctx, p, nil); err != nil {
			log.Printf("⚠️ [Seed] failed to create project %q: %v", p.Title, err)
		}
	}

	log.Printf("✅ [Seed] Created %d sample projects", len(samples))
}
