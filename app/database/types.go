package database

import (
	"time"
)

// Run records one rebuild of a partner's catalog.
type Run struct {
	ID         int64
	PartnerID  string
	Status     string // success, failed
	TotalItems int
	PageCount  int
	Duration   time.Duration
	Error      string
	CreatedAt  time.Time
}

func durationFromMS(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

// PartnerStats aggregates the most recent run per partner.
type PartnerStats struct {
	PartnerID  string    `json:"partner"`
	Status     string    `json:"status"`
	TotalItems int       `json:"total_items"`
	PageCount  int       `json:"page_count"`
	DurationMS int64     `json:"duration_ms"`
	LastRunAt  time.Time `json:"last_run_at"`
	RunCount   int       `json:"run_count"`
}
