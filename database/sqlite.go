package database

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"
)

const memoryPath = ":memory:"

// SQLiteDB represents the embedded single-file store
type SQLiteDB struct {
	*sql.DB
	Path string
}

// OpenSQLite opens the SQLite file addressed by databaseURL, creating its directory if needed.
// Accepts a bare path or a file:// / sqlite:// URL.
func OpenSQLite(ctx context.Context, databaseURL string) (*SQLiteDB, error) {
	path := SQLitePath(databaseURL)
	if path == "" {
		return nil, fmt.Errorf("empty sqlite path in %q", databaseURL)
	}

	if path != memoryPath {
		if err := ensureSQLiteDir(path); err != nil {
			return nil, err
		}
	}

	db, err := sql.Open("sqlite", sqliteDSN(path))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// One logical connection shared by every caller
	db.SetMaxOpenConns(1)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	log.WithField("path", path).Info("Opened SQLite database")

	return &SQLiteDB{DB: db, Path: path}, nil
}

// Close closes the underlying database handle
func (db *SQLiteDB) Close() error {
	return db.DB.Close()
}

func ensureSQLiteDir(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create database directory: %w", err)
	}
	return nil
}

// sqliteDSN builds the driver DSN. Foreign keys are off by default in SQLite.
func sqliteDSN(path string) string {
	return path + "?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)"
}
