package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type Contact struct {
	ID        string
	Name      string
	Email     string
	Subject   string
	Message   string
	IsRead    bool
	CreatedAt time.Time
}

type ContactRepository interface {
	Create(ctx context.Context, contact *Contact) error
	// List returns one page ordered by created_at descending plus the total count.
	List(ctx context.Context, offset, limit int) ([]*Contact, int, error)
	MarkRead(ctx context.Context, id string) (*Contact, error)
	Delete(ctx context.Context, id string) error
}

type pgContactRepository struct {
	pool *pgxpool.Pool
}

func NewContactRepository(pool *pgxpool.Pool) ContactRepository {
	return &pgContactRepository{pool: pool}
}

func (r *pgContactRepository) Create(ctx context.Context, contact *Contact) error {
	contact.ID = uuid.New().String()
	query := `
		INSERT INTO contacts (id, name, email, subject, message, is_read)
		VALUES ($1, $2, $3, $4, $5, FALSE)
		RETURNING is_read, created_at
	`
	return r.pool.QueryRow(ctx, query,
		contact.ID, contact.Name, contact.Email, contact.Subject, contact.Message,
	).Scan(&contact.IsRead, &contact.CreatedAt)
}

func (r *pgContactRepository) List(ctx context.Context, offset, limit int) ([]*Contact, int, error) {
	var total int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM contacts`).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, name, email, subject, message, is_read, created_at
		FROM contacts
		ORDER BY created_at DESC
		OFFSET $1 LIMIT $2
	`
	rows, err := r.pool.Query(ctx, query, offset, limit)
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	var contacts []*Contact
	for rows.Next() {
		c := &Contact{}
		if err := rows.Scan(
			&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.IsRead, &c.CreatedAt,
		); err != nil {
			return nil, 0, err
		}
		contacts = append(contacts, c)
	}
	return contacts, total, rows.Err()
}

// MarkRead sets is_read and returns the updated record. Marking an
// already-read contact is not an error.
func (r *pgContactRepository) MarkRead(ctx context.Context, id string) (*Contact, error) {
	query := `
		UPDATE contacts SET is_read = TRUE
		WHERE id = $1
		RETURNING id, name, email, subject, message, is_read, created_at
	`
	c := &Contact{}
	err := r.pool.QueryRow(ctx, query, id).Scan(
		&c.ID, &c.Name, &c.Email, &c.Subject, &c.Message, &c.IsRead, &c.CreatedAt,
	)
	if err == pgx.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *pgContactRepository) Delete(ctx context.Context, id string) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM contacts WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}
