package mcp

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"dailyroll/internal/application/commands"
	"dailyroll/internal/domain"
	"dailyroll/internal/ports"
)

// RegisterReadTools adds all read-only tools to the MCP server.
func RegisterReadTools(s *server.MCPServer, repo ports.NoteRepository, journal ports.MergeJournal) {
	s.AddTool(listMonthsTool(), listMonthsHandler(repo))
	s.AddTool(previewMonthTool(), previewMonthHandler(repo))
	s.AddTool(mergeHistoryTool(), mergeHistoryHandler(journal))
}

// --- list_months ---

func listMonthsTool() mcp.Tool {
	return mcp.NewTool("list_months",
		mcp.WithDescription("List months that have daily notes, with note counts and whether a monthly summary already exists."),
		mcp.WithString("month",
			mcp.Description("Restrict to one month (YYYY-MM). Omit to list all months."),
		),
	)
}

func listMonthsHandler(repo ports.NoteRepository) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month := req.GetString("month", "")

		groups, err := repo.DiscoverMonths(ports.NoteFilter{Month: month})
		if err != nil {
			return toolError(err)
		}
		if len(groups) == 0 {
			return mcp.NewToolResultText("No daily notes found."), nil
		}

		var sb strings.Builder
		for _, key := range groups.SortedKeys() {
			exists, err := repo.SummaryExists(key)
			if err != nil {
				return toolError(err)
			}
			marker := ""
			if exists {
				marker = " [summary exists]"
			}
			fmt.Fprintf(&sb, "%s: %d notes%s\n", key, len(groups[key]), marker)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

// --- preview_month ---

func previewMonthTool() mcp.Tool {
	return mcp.NewTool("preview_month",
		mcp.WithDescription("Render what merging a month would append to its summary, without writing anything."),
		mcp.WithString("month",
			mcp.Description("Month to preview (YYYY-MM)"),
			mcp.Required(),
		),
		mcp.WithBoolean("keep_empty",
			mcp.Description("Include empty notes as bare date headers"),
		),
		mcp.WithBoolean("skip_duplicate_todos",
			mcp.Description("Drop checklist lines already present in the summary"),
		),
	)
}

func previewMonthHandler(repo ports.NoteRepository) server.ToolHandlerFunc {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		month := req.GetString("month", "")
		opts := domain.MergeOptions{
			KeepEmpty:          req.GetBool("keep_empty", false),
			SkipDuplicateTodos: req.GetBool("skip_duplicate_todos", false),
		}

		groups, err := repo.DiscoverMonths(ports.NoteFilter{Month: month})
		if err != nil {
			return toolError(err)
		}
		notes := groups[month]
		if len(notes) == 0 {
			return mcp.NewToolResultText(fmt.Sprintf("No daily notes found for %s.", month)), nil
		}

		result, err := commands.NewPreviewMonthCommand(repo, month, notes, opts).Execute(ctx)
		if err != nil {
			return toolError(err)
		}

		header := fmt.Sprintf("%d of %d notes would be written for %s:\n\n",
			result.NotesWritten, result.NotesConsidered, month)
		return mcp.NewToolResultText(header + result.Rendered), nil
	}
}

// --- merge_history ---

func mergeHistoryTool() mcp.Tool {
	return mcp.NewTool("merge_history",
		mcp.WithDescription("Show past merge runs recorded in the vault's journal, newest first."),
		mcp.WithString("month",
			mcp.Description("Restrict to one month (YYYY-MM). Omit for all runs."),
		),
	)
}

func mergeHistoryHandler(journal ports.MergeJournal) server.ToolHandlerFunc {
	return func(_ context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		records, err := journal.History(req.GetString("month", ""))
		if err != nil {
			return toolError(err)
		}
		if len(records) == 0 {
			return mcp.NewToolResultText("No merge runs recorded."), nil
		}

		var sb strings.Builder
		for _, rec := range records {
			deleted := ""
			if rec.Deleted {
				deleted = ", daily notes deleted"
			}
			fmt.Fprintf(&sb, "%s  %s  %d of %d notes%s\n",
				rec.MergedAt.UTC().Format(time.RFC3339),
				rec.Month, rec.NotesWritten, rec.NotesConsidered, deleted)
		}
		return mcp.NewToolResultText(sb.String()), nil
	}
}

func toolError(err error) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultError(err.Error()), nil
}
