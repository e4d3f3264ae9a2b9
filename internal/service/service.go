package service

import (
	"errors"

	"github.com/johanstjernquist/portfolio-backend/internal/config"
	"github.com/johanstjernquist/portfolio-backend/internal/db"
	"github.com/johanstjernquist/portfolio-backend/internal/repository"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUserExists         = errors.New("user already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrNotFound           = errors.New("resource not found")
	ErrForbidden          = errors.New("forbidden")
)

// ContactNotifier is the outbound mail transport seen from the contact
// service. Both sends are fire-and-forget: failures are logged by the
// caller and never surfaced to the submitter.
type ContactNotifier interface {
	SendContactNotification(contact *repository.Contact) error
	SendAutoReply(contact *repository.Contact) error
}

// ============================================
// Services Container
// ============================================

type Services struct {
	Auth    AuthService
	Contact ContactService
	Project ProjectService
}

// ServiceDeps contains all dependencies needed to create services.
// Notifier and Cache are capabilities: nil means unconfigured.
type ServiceDeps struct {
	Config   *config.Config
	Repos    *repository.Repositories
	Notifier ContactNotifier
	Cache    *db.RedisDB
}

func NewServices(deps *ServiceDeps) *Services {
	return &Services{
		Auth:    NewAuthService(deps.Config, deps.Repos.UserRepo),
		Contact: NewContactService(deps.Repos.ContactRepo, deps.Notifier),
		Project: NewProjectService(deps.Repos.ProjectRepo, deps.Cache),
	}
}
