// internal/db/sql.go
package db

import (
	"fmt"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
)

// NewSQLDB opens a sqlx handle over the pgx stdlib driver. The user
// repository runs on this handle; contacts and projects use the pgx pool.
func NewSQLDB(databaseURL string) (*sqlx.DB, error) {
	sqlDB, err := sqlx.Connect("pgx", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to open sql DB: %w", err)
	}

	sqlDB.SetMaxOpenConns(5)
	sqlDB.SetMaxIdleConns(2)

	log.Println("[DB] ✅ sqlx handle ready")
	return sqlDB, nil
}
