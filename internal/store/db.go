package store

import (
	"embed"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var embedMigrations embed.FS

// ErrNotFound is returned when a lookup matches no row
var ErrNotFound = errors.New("not found")

// Repository journals chart queries and exports in SQLite.
// A nil *Repository is a disabled journal: writes are dropped and reads
// return nothing.
type Repository struct {
	dbConn *sqlx.DB
}

// NewRepository wraps an open connection
func NewRepository(db *sqlx.DB) *Repository {
	return &Repository{dbConn: db}
}

// Open connects to the SQLite file at path and applies pending migrations.
func Open(path string) (*Repository, error) {
	db, err := New(path)
	if err != nil {
		return nil, err
	}
	return NewRepository(db), nil
}

// New establishes a connection to a SQLite database file and migrates it.
func New(path string) (*sqlx.DB, error) {
	db, err := sqlx.Connect("sqlite3", fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=on", path))
	if err != nil {
		return nil, fmt.Errorf("connecting to db : %w", err)
	}

	db.SetMaxOpenConns(1)

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(string(goose.DialectSQLite3)); err != nil {
		db.Close()
		return nil, fmt.Errorf("setting dialect for migrations : %w", err)
	}

	if err := goose.Up(db.DB, "migrations"); err != nil {
		db.Close()
		return nil, fmt.Errorf("applying migration : %w", err)
	}
	return db, nil
}

// Enabled reports whether the journal is backed by a database
func (repo *Repository) Enabled() bool {
	return repo != nil && repo.dbConn != nil
}

// Close terminates the database connection.
func (repo *Repository) Close() error {
	if !repo.Enabled() {
		return nil
	}
	if err := repo.dbConn.Close(); err != nil {
		return fmt.Errorf("closing repo : %w", err)
	}
	return nil
}
