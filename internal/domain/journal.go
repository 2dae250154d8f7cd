package domain

import "time"

// MergeRecord is one journal row describing a completed merge run for a
// month.
type MergeRecord struct {
	ID              int64
	Month           string
	NotesWritten    int
	NotesConsidered int
	Deleted         bool // daily notes removed after the merge
	MergedAt        time.Time
}
