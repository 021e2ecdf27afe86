// Package storage persists the user profile document in SQLite, for
// deployments where the user-data provider should survive restarts.
package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"lynq/internal/core"

	_ "modernc.org/sqlite"
)

// profileRowID pins the single active profile document. The dashboard is
// single-user; multi-profile support would key rows differently.
const profileRowID = 1

type SQLiteRepository struct {
	db *sql.DB
}

func NewSQLiteRepository(dbPath string) (*SQLiteRepository, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping database: %w", err)
	}

	if err := RunMigrations(dbPath); err != nil {
		db.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &SQLiteRepository{db: db}, nil
}

func (r *SQLiteRepository) Close() error {
	if r.db != nil {
		return r.db.Close()
	}
	return nil
}

// Seed stores the profile only when no document exists yet, so a fresh
// database starts with usable data without clobbering a saved profile.
func (r *SQLiteRepository) Seed(ctx context.Context, p core.Profile) error {
	var exists int
	err := r.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM profiles WHERE id = ?`, profileRowID).Scan(&exists)
	if err != nil {
		return fmt.Errorf("check existing profile: %w", err)
	}
	if exists > 0 {
		return nil
	}
	if err := r.WriteProfile(ctx, p); err != nil {
		return fmt.Errorf("seed profile: %w", err)
	}
	slog.InfoContext(ctx, "Seeded profile into SQLite", "name", p.User.Name)
	return nil
}

// ReadProfile implements profile.Reader.
func (r *SQLiteRepository) ReadProfile(ctx context.Context) (core.Profile, error) {
	var doc string
	err := r.db.QueryRowContext(ctx,
		`SELECT document FROM profiles WHERE id = ?`, profileRowID).Scan(&doc)
	if errors.Is(err, sql.ErrNoRows) {
		return core.Profile{}, nil
	}
	if err != nil {
		return core.Profile{}, fmt.Errorf("read profile: %w", err)
	}

	var p core.Profile
	if err := json.Unmarshal([]byte(doc), &p); err != nil {
		return core.Profile{}, fmt.Errorf("decode profile document: %w", err)
	}
	return p, nil
}

// WriteProfile implements profile.Writer.
func (r *SQLiteRepository) WriteProfile(ctx context.Context, p core.Profile) error {
	doc, err := json.Marshal(p)
	if err != nil {
		return fmt.Errorf("encode profile document: %w", err)
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO profiles (id, name, document, updated_at)
		VALUES (?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET
			name = excluded.name,
			document = excluded.document,
			updated_at = CURRENT_TIMESTAMP`,
		profileRowID, p.User.Name, string(doc))
	if err != nil {
		return fmt.Errorf("write profile: %w", err)
	}

	slog.InfoContext(ctx, "Profile saved to SQLite", "name", p.User.Name)
	return nil
}
