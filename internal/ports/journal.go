package ports

import "dailyroll/internal/domain"

// MergeJournal records completed merge runs for later inspection.
type MergeJournal interface {
	// Lifecycle
	Open(vaultPath string) error
	Close() error

	// Record stores one merge outcome and fills in its ID.
	Record(rec *domain.MergeRecord) error

	// History returns past merges, newest first. An empty month returns
	// every record.
	History(month string) ([]domain.MergeRecord, error)
}
