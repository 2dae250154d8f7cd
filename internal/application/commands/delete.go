package commands

import (
	"context"
	"fmt"

	"dailyroll/internal/application"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// DeleteNotesResult contains the result of removing merged daily notes
type DeleteNotesResult struct {
	Month   string
	Deleted int
	Message string
}

// DeleteNotesCommand removes a month's daily notes after their merge has
// fully succeeded. It must never run for a month whose merge failed.
type DeleteNotesCommand struct {
	repo  ports.NoteRepository
	Month string
	Notes []domain.DailyNote
}

// NewDeleteNotesCommand creates a new DeleteNotesCommand
func NewDeleteNotesCommand(repo ports.NoteRepository, month string, notes []domain.DailyNote) *DeleteNotesCommand {
	return &DeleteNotesCommand{
		repo:  repo,
		Month: month,
		Notes: notes,
	}
}

// Validate checks the command arguments
func (c *DeleteNotesCommand) Validate() error {
	if err := application.ValidateRequired("month", c.Month); err != nil {
		return err
	}
	if len(c.Notes) == 0 {
		return &application.ValidationError{
			Field:   "notes",
			Message: "no notes to delete",
		}
	}
	return nil
}

// Execute removes the daily note files
func (c *DeleteNotesCommand) Execute(ctx context.Context) (*DeleteNotesResult, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	if err := c.repo.RemoveNotes(c.Notes); err != nil {
		return nil, fmt.Errorf("failed to delete daily notes: %w", err)
	}

	return &DeleteNotesResult{
		Month:   c.Month,
		Deleted: len(c.Notes),
		Message: fmt.Sprintf("Deleted %d daily notes for %s", len(c.Notes), c.Month),
	}, nil
}
