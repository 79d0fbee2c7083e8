package persist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite" // Pure Go SQLite driver (no CGO)

	"github.com/voici5986/Antigravity-Manager/internal/logging"
	"github.com/voici5986/Antigravity-Manager/internal/persist/migrations"

	"github.com/voici5986/Antigravity-Manager/internal/appconfig"
)

// SQLiteService stores the config as a JSON document in a single-row table
// of the app database.
type SQLiteService struct {
	db *sql.DB
}

// NewSQLiteService opens (creating if needed) the database at path and runs
// schema migrations.
func NewSQLiteService(path string) (*SQLiteService, error) {
	dir := filepath.Dir(path)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return nil, fmt.Errorf("failed to create database directory: %w", err)
		}
	}

	// Single connection - SQLite doesn't handle concurrent writers well
	db, err := sql.Open("sqlite", path+"?_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)&_pragma=foreign_keys(1)")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	if err := migrations.Run(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	logging.Infof("SQLite database initialized at %s", path)
	return &SQLiteService{db: db}, nil
}

// Close releases the database connection.
func (s *SQLiteService) Close() error {
	return s.db.Close()
}

func (s *SQLiteService) Load(ctx context.Context) (*appconfig.Config, error) {
	var data string
	err := s.db.QueryRowContext(ctx, `SELECT data FROM app_config WHERE id = 1`).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		cfg := appconfig.Default()
		if err := s.Save(ctx, cfg); err != nil {
			return nil, &LoadError{Err: err}
		}
		return cfg, nil
	}
	if err != nil {
		return nil, &LoadError{Err: err}
	}

	var cfg appconfig.Config
	if err := json.Unmarshal([]byte(data), &cfg); err != nil {
		return nil, &LoadError{Err: err}
	}
	return &cfg, nil
}

func (s *SQLiteService) Save(ctx context.Context, cfg *appconfig.Config) error {
	data, err := json.Marshal(cfg)
	if err != nil {
		return &SaveError{Err: err}
	}
	_, err = s.db.ExecContext(ctx, `
		INSERT INTO app_config (id, data, updated_at) VALUES (1, ?, unixepoch())
		ON CONFLICT(id) DO UPDATE SET data = excluded.data, updated_at = excluded.updated_at`,
		string(data))
	if err != nil {
		return &SaveError{Err: err}
	}
	return nil
}
