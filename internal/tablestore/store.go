package tablestore

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"os"
	"path/filepath"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/mnurse06/finance-tracker/internal/config"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

// Store persists logical tables. Load returns the whole table, an empty one
// when nothing was stored yet. Save replaces the stored table as a whole;
// the last save wins.
type Store interface {
	Load(ctx context.Context, schema Schema) (*Table, error)
	Save(ctx context.Context, schema Schema, table *Table) error
}

// New builds the store selected by the configuration.
func New(ctx context.Context, cfg config.Storage) (Store, error) {
	switch cfg.Backend {
	case "", "file":
		log.Infof("Using file table store in %s", cfg.Dir)
		return NewFileStore(cfg.Dir), nil

	case "memory":
		log.Info("Using in-memory table store")
		return NewMemoryStore(), nil

	case "sqlite":
		if dir := filepath.Dir(cfg.SQLite.Path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("could not create sqlite directory: %w", err)
			}
		}
		db, err := sql.Open("sqlite", cfg.SQLite.Path)
		if err != nil {
			return nil, fmt.Errorf("could not open sqlite database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("could not connect to sqlite database: %w", err)
		}
		if err := RunMigrations(db, DialectSQLite); err != nil {
			return nil, err
		}
		log.Infof("Using sqlite table store at %s", cfg.SQLite.Path)
		return NewSQLStore(db, DialectSQLite), nil

	case "postgres":
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
			cfg.Postgres.User, url.QueryEscape(cfg.Postgres.Pass),
			cfg.Postgres.Host, cfg.Postgres.Port, cfg.Postgres.Name)
		db, err := sql.Open("pgx", dsn)
		if err != nil {
			return nil, fmt.Errorf("could not open postgres database: %w", err)
		}
		if err := db.PingContext(ctx); err != nil {
			return nil, fmt.Errorf("could not connect to postgres database: %w", err)
		}
		if err := RunMigrations(db, DialectPostgres); err != nil {
			return nil, err
		}
		log.Infof("Using postgres table store at %s:%d", cfg.Postgres.Host, cfg.Postgres.Port)
		return NewSQLStore(db, DialectPostgres), nil

	case "sheets":
		store, err := NewSheetsStore(ctx, cfg.Sheets)
		if err != nil {
			return nil, err
		}
		log.Infof("Using Google Sheets table store (spreadsheet %s)", cfg.Sheets.SpreadsheetId)
		return store, nil

	default:
		return nil, fmt.Errorf("unknown storage backend: %q", cfg.Backend)
	}
}
