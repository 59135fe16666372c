package store

import (
	"fmt"

	"spacex-dashboard/internal/model"
)

// SaveQuery journals one chart computation.
func (repo *Repository) SaveQuery(q model.ChartQuery) error {
	if !repo.Enabled() {
		return nil
	}

	query := `INSERT INTO chart_queries
		(id, chart, site, all_sites, payload_low, payload_high, result_count, channel, created_at)
		VALUES (:id, :chart, :site, :all_sites, :payload_low, :payload_high, :result_count, :channel, :created_at)`

	if _, err := repo.dbConn.NamedExec(query, q); err != nil {
		return fmt.Errorf("inserting chart query %s: %w", q.ID, err)
	}
	return nil
}

// ListQueries returns the most recent chart queries, newest first.
func (repo *Repository) ListQueries(limit int) ([]model.ChartQuery, error) {
	queries := []model.ChartQuery{}
	if !repo.Enabled() {
		return queries, nil
	}

	query := `SELECT id, chart, site, all_sites, payload_low, payload_high, result_count, channel, created_at
		FROM chart_queries
		ORDER BY created_at DESC, rowid DESC
		LIMIT ?`

	if err := repo.dbConn.Select(&queries, query, limit); err != nil {
		return nil, fmt.Errorf("listing chart queries: %w", err)
	}
	return queries, nil
}

// CountQueries returns the number of journaled chart queries, per chart kind.
func (repo *Repository) CountQueries() (map[string]int, error) {
	counts := make(map[string]int)
	if !repo.Enabled() {
		return counts, nil
	}

	var rows []struct {
		Chart string `db:"chart"`
		Count int    `db:"count"`
	}
	query := `SELECT chart, COUNT(*) AS count FROM chart_queries GROUP BY chart`

	if err := repo.dbConn.Select(&rows, query); err != nil {
		return nil, fmt.Errorf("counting chart queries: %w", err)
	}
	for _, r := range rows {
		counts[r.Chart] = r.Count
	}
	return counts, nil
}
