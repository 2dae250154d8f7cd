package filesystem

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"dailyroll/internal/application"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// Repository implements ports.NoteRepository on a vault directory
type Repository struct {
	vaultPath string
}

// Ensure Repository implements NoteRepository
var _ ports.NoteRepository = (*Repository)(nil)

// NewRepository creates a new filesystem repository
func NewRepository(vaultPath string) *Repository {
	// Expand ~ to home directory
	if strings.HasPrefix(vaultPath, "~") {
		home, _ := os.UserHomeDir()
		vaultPath = filepath.Join(home, vaultPath[1:])
	}
	return &Repository{vaultPath: vaultPath}
}

// VaultPath returns the expanded vault directory path
func (r *Repository) VaultPath() string {
	return r.vaultPath
}

// DiscoverMonths scans the vault for daily notes and groups them by month
// key. Pure read; only filenames decide membership, never content.
func (r *Repository) DiscoverMonths(filter ports.NoteFilter) (domain.MonthGroups, error) {
	entries, err := os.ReadDir(r.vaultPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, fmt.Errorf("%w: %s", application.ErrVaultNotFound, r.vaultPath)
		}
		return nil, fmt.Errorf("failed to read vault: %w", err)
	}

	groups := domain.MonthGroups{}
	for _, entry := range entries {
		if entry.IsDir() || !domain.IsDailyNoteName(entry.Name()) {
			continue
		}

		note := domain.NoteFromFilename(entry.Name(), filepath.Join(r.vaultPath, entry.Name()))
		month := note.MonthKey()

		if filter.Month != "" && month != filter.Month {
			continue
		}

		if filter.Cutoff != nil {
			day, err := note.ParsedDate()
			if err != nil {
				return nil, &application.DateFormatError{Value: entry.Name(), Want: "YYYY-MM-DD"}
			}
			// The month stays visible even when the window drops all of
			// its notes, so callers can warn instead of going silent.
			if _, ok := groups[month]; !ok {
				groups[month] = []domain.DailyNote{}
			}
			if day.After(*filter.Cutoff) {
				continue
			}
		}

		groups[month] = append(groups[month], note)
	}

	for _, notes := range groups {
		sort.Slice(notes, func(i, j int) bool {
			return notes[i].Date < notes[j].Date
		})
	}

	return groups, nil
}

// ReadNote returns the raw content of a daily note
func (r *Repository) ReadNote(note domain.DailyNote) (string, error) {
	data, err := os.ReadFile(note.Path)
	if err != nil {
		return "", fmt.Errorf("failed to read daily note: %w", err)
	}
	return string(data), nil
}

// RemoveNotes deletes daily note files. Callers only invoke this after
// the month's merge has fully succeeded.
func (r *Repository) RemoveNotes(notes []domain.DailyNote) error {
	for _, note := range notes {
		if err := os.Remove(note.Path); err != nil {
			return fmt.Errorf("failed to delete %s: %w", note.Path, err)
		}
	}
	return nil
}

// SummaryPath returns the monthly summary path for a month key
func (r *Repository) SummaryPath(month string) string {
	return filepath.Join(r.vaultPath, month+".md")
}

// SummaryExists reports whether the monthly summary is already on disk
func (r *Repository) SummaryExists(month string) (bool, error) {
	_, err := os.Stat(r.SummaryPath(month))
	if err == nil {
		return true, nil
	}
	if os.IsNotExist(err) {
		return false, nil
	}
	return false, fmt.Errorf("failed to stat summary: %w", err)
}

// ReadSummary returns the current content of the monthly summary
func (r *Repository) ReadSummary(month string) (string, error) {
	data, err := os.ReadFile(r.SummaryPath(month))
	if err != nil {
		return "", fmt.Errorf("failed to read summary: %w", err)
	}
	return string(data), nil
}

// OpenSummary opens the monthly summary for appending, creating it if
// absent. Existing content is never truncated.
func (r *Repository) OpenSummary(month string) (io.WriteCloser, error) {
	f, err := os.OpenFile(r.SummaryPath(month), os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary: %w", err)
	}
	return f, nil
}
