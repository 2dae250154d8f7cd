package commands

import (
	"context"
	"errors"
	"strings"
	"testing"

	"dailyroll/internal/application"
	"dailyroll/internal/domain"
)

func TestMergeMonthCommand_Validate(t *testing.T) {
	tests := []struct {
		name    string
		month   string
		notes   []domain.DailyNote
		wantErr bool
		errMsg  string
	}{
		{
			name:  "valid merge",
			month: "2024-01",
			notes: []domain.DailyNote{{Date: "2024-01-01"}},
		},
		{
			name:    "empty month",
			month:   "",
			wantErr: true,
			errMsg:  "month is required",
		},
		{
			name:    "malformed month key",
			month:   "2024",
			wantErr: true,
			errMsg:  "expected YYYY-MM month key",
		},
		{
			name:    "note from another month",
			month:   "2024-01",
			notes:   []domain.DailyNote{{Date: "2024-02-01"}},
			wantErr: true,
			errMsg:  "does not belong to month",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := &MergeMonthCommand{Month: tt.month, Notes: tt.notes}
			err := cmd.Validate()

			if tt.wantErr {
				if err == nil {
					t.Errorf("expected error containing %q, got nil", tt.errMsg)
					return
				}
				if !strings.Contains(err.Error(), tt.errMsg) {
					t.Errorf("expected error containing %q, got %q", tt.errMsg, err.Error())
				}
			} else if err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestMergeMonthCommand_MergesWithHeaders(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "Day 1")
	repo.addNote("2024-01-02", "# 2024-01-02\nDay 2")

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"), domain.MergeOptions{})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.NotesWritten != 2 || result.NotesConsidered != 2 {
		t.Errorf("expected 2/2 notes, got %d/%d", result.NotesWritten, result.NotesConsidered)
	}

	content := repo.summaries["2024-01"]
	want := "# 2024-01-01\n\nDay 1\n\n# 2024-01-02\n\nDay 2\n\n"
	if content != want {
		t.Errorf("summary mismatch:\ngot  %q\nwant %q", content, want)
	}
	if strings.Count(content, "# 2024-01-02") != 1 {
		t.Errorf("self header duplicated in %q", content)
	}
}

func TestMergeMonthCommand_ExistingSummaryBlocksMerge(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "Day 1")
	repo.summaries["2024-01"] = "Existing content"

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"), domain.MergeOptions{})
	_, err := cmd.Execute(context.Background())
	if !errors.Is(err, application.ErrSummaryExists) {
		t.Fatalf("expected ErrSummaryExists, got %v", err)
	}

	if repo.summaries["2024-01"] != "Existing content" {
		t.Error("existing summary must be byte-for-byte unchanged after a refused merge")
	}
}

func TestMergeMonthCommand_AppendExtendsSummary(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "Day 1")
	repo.summaries["2024-01"] = "Existing content\n"

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"), domain.MergeOptions{Append: true})
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content := repo.summaries["2024-01"]
	if !strings.HasPrefix(content, "Existing content\n") {
		t.Errorf("append must keep existing content first: %q", content)
	}
	if !strings.Contains(content, "# 2024-01-01\n\nDay 1\n\n") {
		t.Errorf("appended section missing: %q", content)
	}
}

func TestMergeMonthCommand_SkipsEmptyNotes(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "Content")
	repo.addNote("2024-01-02", "")
	repo.addNote("2024-01-03", "  \n  ")

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"), domain.MergeOptions{})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.NotesWritten != 1 || result.NotesConsidered != 3 {
		t.Errorf("expected 1/3 notes, got %d/%d", result.NotesWritten, result.NotesConsidered)
	}
	if len(result.Skipped) != 2 {
		t.Errorf("expected 2 skipped dates reported, got %v", result.Skipped)
	}

	content := repo.summaries["2024-01"]
	if strings.Contains(content, "2024-01-02") || strings.Contains(content, "2024-01-03") {
		t.Errorf("empty notes leaked into summary: %q", content)
	}
}

func TestMergeMonthCommand_KeepEmptyWritesBareHeaders(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "Content")
	repo.addNote("2024-01-02", "")
	repo.addNote("2024-01-03", "  \n  ")

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"), domain.MergeOptions{KeepEmpty: true})
	result, err := cmd.Execute(context.Background())
	if err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	if result.NotesWritten != 3 {
		t.Errorf("expected all 3 notes written, got %d", result.NotesWritten)
	}
	content := repo.summaries["2024-01"]
	for _, header := range []string{"# 2024-01-01", "# 2024-01-02", "# 2024-01-03"} {
		if !strings.Contains(content, header) {
			t.Errorf("missing %s in %q", header, content)
		}
	}
}

func TestMergeMonthCommand_SkipDuplicateTodosAcrossDays(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "- [ ] Task 1\n- [ ] Task 2")
	repo.addNote("2024-01-02", "- [ ] Task 1\n- [ ] Task 3")

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"),
		domain.MergeOptions{SkipDuplicateTodos: true})
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content := repo.summaries["2024-01"]
	for _, task := range []string{"- [ ] Task 1", "- [ ] Task 2", "- [ ] Task 3"} {
		if got := strings.Count(content, task); got != 1 {
			t.Errorf("expected %q once, got %d times in %q", task, got, content)
		}
	}
}

func TestMergeMonthCommand_IdempotentUnderAppendForTodos(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "Prose line\n- [ ] Task 1")

	opts := domain.MergeOptions{Append: true, SkipDuplicateTodos: true}

	for i := 0; i < 2; i++ {
		cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"), opts)
		if _, err := cmd.Execute(context.Background()); err != nil {
			t.Fatalf("run %d failed: %v", i+1, err)
		}
	}

	content := repo.summaries["2024-01"]
	if got := strings.Count(content, "- [ ] Task 1"); got != 1 {
		t.Errorf("todo duplicated under append: %d occurrences", got)
	}
	// Duplicate suppression is checklist-only; prose does repeat.
	if got := strings.Count(content, "Prose line"); got != 2 {
		t.Errorf("expected prose twice, got %d occurrences", got)
	}
}

func TestMergeMonthCommand_PreloadsSeenSetFromExistingSummary(t *testing.T) {
	repo := newFakeRepo()
	repo.summaries["2024-01"] = "# 2024-01-01\n\n- [ ] Task 1\n\n"
	repo.addNote("2024-01-02", "- [ ] Task 1\n- [ ] Task 2")

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"),
		domain.MergeOptions{Append: true, SkipDuplicateTodos: true})
	if _, err := cmd.Execute(context.Background()); err != nil {
		t.Fatalf("Execute failed: %v", err)
	}

	content := repo.summaries["2024-01"]
	if got := strings.Count(content, "- [ ] Task 1"); got != 1 {
		t.Errorf("pre-existing todo repeated: %d occurrences", got)
	}
	if !strings.Contains(content, "- [ ] Task 2") {
		t.Errorf("new todo missing: %q", content)
	}
}

func TestMergeMonthCommand_ReadFailureAbortsMonth(t *testing.T) {
	repo := newFakeRepo()
	repo.addNote("2024-01-01", "Day 1")
	repo.addNote("2024-01-02", "Day 2")
	repo.addNote("2024-01-03", "Day 3")
	repo.readErr["2024-01-02"] = errors.New("disk gone")

	cmd := NewMergeMonthCommand(repo, "2024-01", repo.notesFor("2024-01"), domain.MergeOptions{})
	_, err := cmd.Execute(context.Background())
	if err == nil {
		t.Fatal("expected read failure to propagate")
	}

	// Partial output up to the failure is accepted, later notes are not.
	content := repo.summaries["2024-01"]
	if !strings.Contains(content, "Day 1") {
		t.Errorf("expected partial output for notes before the failure: %q", content)
	}
	if strings.Contains(content, "Day 3") {
		t.Errorf("notes after the failure must not be written: %q", content)
	}
}
