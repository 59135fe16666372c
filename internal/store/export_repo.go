package store

import (
	"database/sql"
	"errors"
	"fmt"

	"spacex-dashboard/internal/model"
)

// SaveExport records a written export file.
func (repo *Repository) SaveExport(e model.ExportResult) error {
	if !repo.Enabled() {
		return nil
	}

	query := `INSERT INTO exports
		(id, format, site, payload_low, payload_high, file_name, file_path, record_count, size_bytes, created_at)
		VALUES (:id, :format, :site, :payload_low, :payload_high, :file_name, :file_path, :record_count, :size_bytes, :created_at)`

	if _, err := repo.dbConn.NamedExec(query, e); err != nil {
		return fmt.Errorf("inserting export %s: %w", e.ID, err)
	}
	return nil
}

// GetExport fetches one export by ID.
func (repo *Repository) GetExport(id string) (model.ExportResult, error) {
	var e model.ExportResult
	if !repo.Enabled() {
		return e, ErrNotFound
	}

	query := `SELECT id, format, site, payload_low, payload_high, file_name, file_path, record_count, size_bytes, created_at
		FROM exports WHERE id = ?`

	err := repo.dbConn.Get(&e, query, id)
	if errors.Is(err, sql.ErrNoRows) {
		return e, fmt.Errorf("export %s: %w", id, ErrNotFound)
	}
	if err != nil {
		return e, fmt.Errorf("getting export %s: %w", id, err)
	}
	return e, nil
}

// ListExports returns the most recent exports, newest first.
func (repo *Repository) ListExports(limit int) ([]model.ExportResult, error) {
	exports := []model.ExportResult{}
	if !repo.Enabled() {
		return exports, nil
	}

	query := `SELECT id, format, site, payload_low, payload_high, file_name, file_path, record_count, size_bytes, created_at
		FROM exports
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`

	if err := repo.dbConn.Select(&exports, query, limit); err != nil {
		return nil, fmt.Errorf("listing exports: %w", err)
	}
	return exports, nil
}
