package database

// RunRepository handles run history records.
type RunRepository interface {
	RecordRun(run Run) error
	GetLatestRuns(partnerID string, limit int) ([]Run, error)
	GetStats() ([]PartnerStats, error)
}
