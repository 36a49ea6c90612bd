package database

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
)

type DB struct {
	*sql.DB
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS users (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		username TEXT UNIQUE NOT NULL,
		password TEXT NOT NULL
	)`,

	// Columns are read positionally, keep this order in sync with ParseNote.
	`CREATE TABLE IF NOT EXISTS notes (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		owner_id INTEGER NOT NULL,
		created_at TEXT NOT NULL,
		title TEXT NOT NULL DEFAULT '',
		tags TEXT NOT NULL DEFAULT '',
		content TEXT NOT NULL DEFAULT '',
		FOREIGN KEY (owner_id) REFERENCES users(id) ON DELETE CASCADE
	)`,

	`CREATE INDEX IF NOT EXISTS idx_notes_owner ON notes(owner_id)`,
}

func New(dbPath string) (*DB, error) {
	// Ensure directory exists
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create database directory: %w", err)
	}

	// Pragmas go in the DSN so every pooled connection gets them
	dsn := fmt.Sprintf("file:%s?_foreign_keys=on&_journal_mode=WAL&_busy_timeout=5000", dbPath)
	db, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(5)

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	registerMetrics()

	return &DB{db}, nil
}

// Migrate creates missing tables and leaves existing data alone.
func (db *DB) Migrate() error {
	for _, query := range schema {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
	}
	return nil
}

// InitSchema drops every table and recreates it. All data is lost.
func (db *DB) InitSchema() error {
	drops := []string{
		`DROP TABLE IF EXISTS notes`,
		`DROP TABLE IF EXISTS users`,
	}
	for _, query := range drops {
		if _, err := db.Exec(query); err != nil {
			return fmt.Errorf("schema reset failed: %w", err)
		}
	}
	return db.Migrate()
}

// NewUnitOfWork returns a unit of work bound to this database. No connection
// is taken from the pool until the first statement runs.
func (db *DB) NewUnitOfWork() *UnitOfWork {
	return &UnitOfWork{db: db}
}

func (db *DB) Close() error {
	return db.DB.Close()
}
