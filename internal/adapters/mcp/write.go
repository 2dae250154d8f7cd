package mcp

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dailyroll/internal/application/commands"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// RegisterWriteTools adds the merging tools to the MCP server.
func RegisterWriteTools(s *server.MCPServer, repo ports.NoteRepository, journal ports.MergeJournal) {
	s.AddTool(mergeMonthTool(), mergeMonthHandler(repo, journal))
}

// --- merge_month ---

func mergeMonthTool() mcp.Tool {
	return mcp.NewTool("merge_month",
		mcp.WithDescription("Merge one month's daily notes into its monthly summary file. Refuses to touch an existing summary unless append is set."),
		mcp.WithString("month",
			mcp.Description("Month to merge (YYYY-MM)"),
			mcp.Required(),
		),
		mcp.WithBoolean("append",
			mcp.Description("Append to an existing summary instead of failing"),
		),
		mcp.WithBoolean("keep_empty",
			mcp.Description("Include empty notes as bare date headers"),
		),
		mcp.WithBoolean("skip_duplicate_todos",
			mcp.Description("Drop checklist lines already present in the summary"),
		),
		mcp.WithBoolean("delete_notes",
			mcp.Description("Delete the daily notes after a successful merge"),
		),
	)
}

func mergeMonthHandler(repo ports.NoteRepository, journal ports.MergeJournal) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month := req.GetString("month", "")
		opts := domain.MergeOptions{
			Append:             req.GetBool("append", false),
			KeepEmpty:          req.GetBool("keep_empty", false),
			SkipDuplicateTodos: req.GetBool("skip_duplicate_todos", false),
		}

		groups, err := repo.DiscoverMonths(ports.NoteFilter{Month: month})
		if err != nil {
			return toolError(err)
		}
		notes := groups[month]
		if len(notes) == 0 {
			return toolError(fmt.Errorf("no daily notes found for %s", month))
		}

		result, err := commands.NewMergeMonthCommand(repo, month, notes, opts).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		message := result.Message
		if len(result.Skipped) > 0 {
			message += fmt.Sprintf("\nSkipped (empty or duplicate-only): %s", strings.Join(result.Skipped, ", "))
		}
		rec := domain.MergeRecord{
			Month:           month,
			NotesWritten:    result.NotesWritten,
			NotesConsidered: result.NotesConsidered,
		}

		if req.GetBool("delete_notes", false) {
			delResult, err := commands.NewDeleteNotesCommand(repo, month, notes).Execute(ctx)
			if err != nil {
				return toolError(fmt.Errorf("merged but failed to delete notes: %w", err))
			}
			message += "\n" + delResult.Message
			rec.Deleted = true
		}

		if err := journal.Record(&rec); err != nil {
			message += fmt.Sprintf("\nWarning: failed to record merge: %v", err)
		}

		return mcp.NewToolResultText(message), nil
	}
}
