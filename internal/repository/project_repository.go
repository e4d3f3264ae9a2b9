package repository

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Project struct {
	ID              string
	Title           string
	Description     string
	LongDescription string
	Technologies    []string
	Category        string
	Status          string
	GithubURL       *string
	DemoURL         *string
	ImageURL        *string
	DisplayOrder    int
	IsVisible       bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// ProjectFilter narrows the listing. Category "" or "all" means no
// category filter; hidden projects are excluded unless IncludeHidden.
type ProjectFilter struct {
	IncludeHidden bool
	Category      string
}

// ProjectOrder is one (id, order) pair of a reorder batch.
type ProjectOrder struct {
	ID    string
	Order int
}

type ProjectRepository interface {
	// Create inserts the project. A nil order falls back to the next
	// display_order in creation sequence.
	Create(ctx context.Context, project *Project, order *int) error
	FindByID(ctx context.Context, id string) (*Project, error)
	List(ctx context.Context, filter ProjectFilter) ([]*Project, error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id string) error
	// UpdateOrders applies the whole batch in one transaction; an unknown
	// id rolls back every pair.
	UpdateOrders(ctx context.Context, orders []ProjectOrder) error
}

type pgProjectRepository struct {
	pool *pgxpool.Pool
}

func NewProjectRepository(pool *pgxpool.Pool) ProjectRepository {
	return &pgProjectRepository{pool: pool}
}

const projectColumns = `id, title, description, long_description, technologies, category, status,
	github_url, demo_url, image_url, display_order, is_visible, created_at, updated_at`

func (r *pgProjectRepository) Create(ctx context.Context, project *Project, order *int) error {
	project.ID = uuid.New().String()
	query := `
		INSERT INTO projects (id, title, description, long_description, technologies, category, status,
			github_url, demo_url, image_url, display_order, is_visible)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10,
			COALESCE($11, (SELECT COALESCE(MAX(display_order) + 1, 0) FROM projects)),
			$12)
		RETURNING display_order, created_at, updated_at
	`
	return r.pool.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.LongDescription,
		project.Technologies, project.Category, project.Status,
		project.GithubURL, project.DemoURL, project.ImageURL,
		order, project.IsVisible,
	).Scan(&project.DisplayOrder, &project.CreatedAt, &project.UpdatedAt)
}

func (r *pgProjectRepository) FindByID(ctx context.Context, id string) (*Project, error) {
	query := fmt.Sprintf(`SELECT %s FROM projects WHERE id = $1`, projectColumns)
	p := &Project{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Technologies,
		&p.Category, &p.Status, &p.GithubURL, &p.DemoURL, &p.ImageURL,
		&p.DisplayOrder, &p.IsVisible, &p.CreatedAt, &p.UpdatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (r *pgProjectRepository) List(ctx context.Context, filter ProjectFilter) ([]*Project, error) {
	var conds []string
	var args []interface{}

	if !filter.IncludeHidden {
		conds = append(conds, "is_visible = TRUE")
	}
	if filter.Category != "" && filter.Category != "all" {
		args = append(args, filter.Category)
		conds = append(conds, fmt.Sprintf("category = $%d", len(args)))
	}

	query := fmt.Sprintf(`SELECT %s FROM projects`, projectColumns)
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY display_order ASC, created_at DESC"

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var projects []*Project
	for rows.Next() {
		p := &Project{}
		if err := rows.Scan(
			&p.ID, &p.Title, &p.Description, &p.LongDescription, &p.Technologies,
			&p.Category, &p.Status, &p.GithubURL, &p.DemoURL, &p.ImageURL,
			&p.DisplayOrder, &p.IsVisible, &p.CreatedAt, &p.UpdatedAt,
		); err != nil {
			return nil, err
		}
		projects = append(projects, p)
	}
	return projects, rows.Err()
}

func (r *pgProjectRepository) Update(ctx context.Context, project *Project) error {
	query := `
		UPDATE projects SET
			title = $2, description = $3, long_description = $4, technologies = $5,
			category = $6, status = $7, github_url = $8, demo_url = $9, image_url = $10,
			display_order = $11, is_visible = $12, updated_at = NOW()
		WHERE id = $1
		RETURNING updated_at
	`
	err := r.pool.QueryRow(ctx, query,
		project.ID, project.Title, project.Description, project.LongDescription,
		project.Technologies, project.Category, project.Status,
		project.GithubURL, project.DemoURL, project.ImageURL,
		project.DisplayOrder, project.IsVisible,
	).Scan(&project.UpdatedAt)
	if err == pgx.ErrNoRows {
		return ErrNotFound
	}
	return err
}

func (r *pgProjectRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM projects WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *pgProjectRepository) UpdateOrders(ctx context.Context, orders []ProjectOrder) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	for _, o := range orders {
		tag, err := tx.Exec(ctx,
			`UPDATE projects SET display_order = $2, updated_at = NOW() WHERE id = $1`,
			o.ID, o.Order,
		)
		if err != nil {
			return err
		}
		if tag.RowsAffected() == 0 {
			return fmt.Errorf("project %s: %w", o.ID, ErrNotFound)
		}
	}

	return tx.Commit(ctx)
}
