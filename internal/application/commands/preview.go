package commands

import (
	"context"
	"fmt"
	"strings"

	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// PreviewMonthResult contains the rendered output a merge would append
type PreviewMonthResult struct {
	Month           string
	NotesConsidered int
	NotesWritten    int
	Rendered        string
}

// PreviewMonthCommand renders a month's sections without touching the
// summary file. Append/existence checks are skipped; the seen set is
// still preloaded from an existing summary so duplicate suppression
// previews accurately.
type PreviewMonthCommand struct {
	repo    ports.NoteRepository
	Month   string
	Notes   []domain.DailyNote
	Options domain.MergeOptions
}

// NewPreviewMonthCommand creates a new PreviewMonthCommand
func NewPreviewMonthCommand(repo ports.NoteRepository, month string, notes []domain.DailyNote, opts domain.MergeOptions) *PreviewMonthCommand {
	return &PreviewMonthCommand{
		repo:    repo,
		Month:   month,
		Notes:   notes,
		Options: opts,
	}
}

// Validate reuses the merge command's argument checks
func (c *PreviewMonthCommand) Validate() error {
	merge := &MergeMonthCommand{Month: c.Month, Notes: c.Notes, Options: c.Options}
	return merge.Validate()
}

// Execute renders the sections in order and returns them as one string
func (c *PreviewMonthCommand) Execute(ctx context.Context) (*PreviewMonthResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	seen := domain.NewTodoSet()
	if c.Options.SkipDuplicateTodos {
		exists, err := c.repo.SummaryExists(c.Month)
		if err != nil {
			return nil, fmt.Errorf("failed to check summary for %s: %w", c.Month, err)
		}
		if exists {
			existing, err := c.repo.ReadSummary(c.Month)
			if err != nil {
				return nil, fmt.Errorf("failed to read existing summary for %s: %w", c.Month, err)
			}
			seen.CollectTodos(existing)
		}
	}

	var sb strings.Builder
	written := 0
	for _, note := range c.Notes {
		content, err := c.repo.ReadNote(note)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %w", note.Path, err)
		}

		section, include := domain.RenderNote(note.Date, content, seen, c.Options)
		if !include {
			continue
		}
		sb.WriteString(section.String())
		written++
	}

	return &PreviewMonthResult{
		Month:           c.Month,
		NotesConsidered: len(c.Notes),
		NotesWritten:    written,
		Rendered:        sb.String(),
	}, nil
}
