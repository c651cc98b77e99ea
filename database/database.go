// Package database opens the PostgreSQL connection used by every handler.
package database

import (
	"database/sql"
	"fmt"

	_ "github.com/lib/pq"

	"github.com/socialpulse/backend/config"
)

// Connect opens a connection pool from the given configuration and
// verifies it with a ping so the process fails fast when the database
// is unreachable.
func Connect(cfg config.DatabaseConfig) (*sql.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.Name, cfg.SSLMode)

	db, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	return db, nil
}
