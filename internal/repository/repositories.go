package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jmoiron/sqlx"
)

// ErrNotFound is returned when an id does not resolve to an existing record.
var ErrNotFound = errors.New("record not found")

type Repositories struct {
	// pgxpool repos
	ContactRepo ContactRepository
	ProjectRepo ProjectRepository

	// sqlx repo
	UserRepo UserRepository
}

func NewRepositories(pool *pgxpool.Pool, db *sqlx.DB) *Repositories {
	return &Repositories{
		ContactRepo: NewContactRepository(pool),
		ProjectRepo: NewProjectRepository(pool),
		UserRepo:    NewUserRepository(db),
	}
}
