package ports

import (
	"io"
	"time"

	"dailyroll/internal/domain"
)

// NoteFilter narrows which daily notes discovery returns.
type NoteFilter struct {
	// Month restricts results to one YYYY-MM key. Not validated for
	// calendar correctness here.
	Month string
	// Cutoff, when set, retains only notes whose parsed date is on or
	// before it. Filenames that fail to parse under this filter are an
	// error, not a silent skip.
	Cutoff *time.Time
}

// NoteRepository defines vault storage operations for daily notes and
// monthly summaries.
type NoteRepository interface {
	// Discovery
	DiscoverMonths(filter NoteFilter) (domain.MonthGroups, error)

	// Daily notes
	ReadNote(note domain.DailyNote) (string, error)
	RemoveNotes(notes []domain.DailyNote) error

	// Monthly summaries. Summaries are append-or-create only; existing
	// content is never truncated or rewritten.
	SummaryPath(month string) string
	SummaryExists(month string) (bool, error)
	ReadSummary(month string) (string, error)
	OpenSummary(month string) (io.WriteCloser, error)
}
