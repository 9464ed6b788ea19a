package database

import (
	"database/sql"
	"fmt"
)

// SQLRunRepository stores run history in SQLite.
type SQLRunRepository struct {
	db *DB
}

var _ RunRepository = (*SQLRunRepository)(nil)

func NewRunRepository(db *DB) *SQLRunRepository {
	return &SQLRunRepository{db: db}
}

// RecordRun inserts a run record.
func (r *SQLRunRepository) RecordRun(run Run) error {
	_, err := r.db.Exec(`
		INSERT INTO runs (partner_id, status, total_items, page_count, duration_ms, error)
		VALUES (?, ?, ?, ?, ?, ?)
	`, run.PartnerID, run.Status, run.TotalItems, run.PageCount, run.Duration.Milliseconds(), run.Error)
	if err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// GetLatestRuns returns the most recent runs for a partner, newest first.
func (r *SQLRunRepository) GetLatestRuns(partnerID string, limit int) ([]Run, error) {
	if limit < 1 {
		limit = 10
	}

	rows, err := r.db.Query(`
		SELECT id, partner_id, status, total_items, page_count, duration_ms, error, created_at
		FROM runs
		WHERE partner_id = ?
		ORDER BY created_at DESC
		LIMIT ?
	`, partnerID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query runs: %w", err)
	}
	defer rows.Close()

	var runs []Run
	for rows.Next() {
		run, err := scanRun(rows)
		if err != nil {
			return nil, err
		}
		runs = append(runs, run)
	}
	return runs, rows.Err()
}

// GetStats returns the latest run per partner together with its run count.
func (r *SQLRunRepository) GetStats() ([]PartnerStats, error) {
	rows, err := r.db.Query(`
		SELECT partner_id, status, total_items, page_count, duration_ms, created_at,
		       (SELECT COUNT(*) FROM runs AS c WHERE c.partner_id = runs.partner_id) AS run_count
		FROM runs
		WHERE id IN (SELECT MAX(id) FROM runs GROUP BY partner_id)
		ORDER BY partner_id
	`)
	if err != nil {
		return nil, fmt.Errorf("failed to query stats: %w", err)
	}
	defer rows.Close()

	var stats []PartnerStats
	for rows.Next() {
		var s PartnerStats
		if err := rows.Scan(&s.PartnerID, &s.Status, &s.TotalItems, &s.PageCount, &s.DurationMS, &s.LastRunAt, &s.RunCount); err != nil {
			return nil, fmt.Errorf("failed to scan stats: %w", err)
		}
		stats = append(stats, s)
	}
	return stats, rows.Err()
}

func scanRun(rows *sql.Rows) (Run, error) {
	var run Run
	var durationMS int64
	if err := rows.Scan(&run.ID, &run.PartnerID, &run.Status, &run.TotalItems, &run.PageCount, &durationMS, &run.Error, &run.CreatedAt); err != nil {
		return Run{}, fmt.Errorf("failed to scan run: %w", err)
	}
	run.Duration = durationFromMS(durationMS)
	return run, nil
}
