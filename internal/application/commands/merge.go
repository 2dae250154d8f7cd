package commands

import (
	"context"
	"fmt"
	"io"

	"dailyroll/internal/application"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// MergeMonthResult contains the result of merging one month
type MergeMonthResult struct {
	Month           string
	NotesConsidered int
	NotesWritten    int
	Skipped         []string // dates excluded as empty or duplicate-only
	SummaryPath     string
	Message         string
}

// MergeMonthCommand merges one month's daily notes into its monthly
// summary file. Notes must already be in ascending date order; the shared
// seen set depends on it.
type MergeMonthCommand struct {
	repo    ports.NoteRepository
	Month   string
	Notes   []domain.DailyNote
	Options domain.MergeOptions
}

// NewMergeMonthCommand creates a new MergeMonthCommand
func NewMergeMonthCommand(repo ports.NoteRepository, month string, notes []domain.DailyNote, opts domain.MergeOptions) *MergeMonthCommand {
	return &MergeMonthCommand{
		repo:    repo,
		Month:   month,
		Notes:   notes,
		Options: opts,
	}
}

// Validate checks the month key and that every note belongs to it
func (c *MergeMonthCommand) Validate() error {
	if err := application.ValidateRequired("month", c.Month); err != nil {
		return err
	}
	if err := application.ValidateMonthKey("month", c.Month); err != nil {
		return err
	}

	for _, note := range c.Notes {
		if note.MonthKey() != c.Month {
			return &application.ValidationError{
				Field:   "notes",
				Message: fmt.Sprintf("note %s does not belong to month %s", note.Date, c.Month),
			}
		}
	}

	return nil
}

// Execute runs the merge. The summary is opened once in append-or-create
// mode and only ever extended; a pre-existing summary without append mode
// aborts the month before anything is written.
func (c *MergeMonthCommand) Execute(ctx context.Context) (*MergeMonthResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	exists, err := c.repo.SummaryExists(c.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to check summary for %s: %w", c.Month, err)
	}
	if exists && !c.Options.Append {
		return nil, &application.SummaryExistsError{
			Month: c.Month,
			Path:  c.repo.SummaryPath(c.Month),
		}
	}

	seen := domain.NewTodoSet()
	if c.Options.SkipDuplicateTodos && exists {
		existing, err := c.repo.ReadSummary(c.Month)
		if err != nil {
			return nil, fmt.Errorf("failed to read existing summary for %s: %w", c.Month, err)
		}
		seen.CollectTodos(existing)
	}

	out, err := c.repo.OpenSummary(c.Month)
	if err != nil {
		return nil, fmt.Errorf("failed to open summary for %s: %w", c.Month, err)
	}

	written := 0
	var skipped []string
	for _, note := range c.Notes {
		content, err := c.repo.ReadNote(note)
		if err != nil {
			out.Close()
			return nil, fmt.Errorf("failed to read %s: %w", note.Path, err)
		}

		section, include := domain.RenderNote(note.Date, content, seen, c.Options)
		if !include {
			skipped = append(skipped, note.Date)
			continue
		}

		if _, err := io.WriteString(out, section.String()); err != nil {
			out.Close()
			return nil, fmt.Errorf("failed to write summary for %s: %w", c.Month, err)
		}
		written++
	}

	if err := out.Close(); err != nil {
		return nil, fmt.Errorf("failed to close summary for %s: %w", c.Month, err)
	}

	return &MergeMonthResult{
		Month:           c.Month,
		NotesConsidered: len(c.Notes),
		NotesWritten:    written,
		Skipped:         skipped,
		SummaryPath:     c.repo.SummaryPath(c.Month),
		Message:         fmt.Sprintf("Merged %d of %d notes for %s", written, len(c.Notes), c.Month),
	}, nil
}
