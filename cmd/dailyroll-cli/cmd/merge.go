package cmd

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"dailyroll/internal/adapters/sqlite"
	"dailyroll/internal/application/commands"
	"dailyroll/internal/domain"
)

var (
	mergeMonth              string
	mergeDaysToKeep         int
	mergeKeepEmpty          bool
	mergeAppend             bool
	mergeSkipDuplicateTodos bool
	mergeDelete             bool
)

var mergeCmd = &cobra.Command{
	Use:   "merge [notes-dir]",
	Short: "Merge daily notes into monthly summaries",
	Long: `Merge daily notes into monthly summary files, one date header per day.

Without --month, every month with notes up to but excluding the current
month is processed. --days-to-keep N merges only notes older than the
trailing N-day window and overrides --month. A month whose summary file
already exists is skipped with a warning unless --append is given; other
months are still attempted.

Examples:
  dailyroll-cli merge ~/vault/daily
  dailyroll-cli merge ~/vault/daily --month 2024-01
  dailyroll-cli merge ~/vault/daily --days-to-keep 30
  dailyroll-cli merge ~/vault/daily --append --skip-duplicate-todos
  dailyroll-cli merge ~/vault/daily --month 2024-01 --delete`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repoFor(args)
		ctx := context.Background()

		plan, err := commands.BuildPlan(repo, commands.PlanSelector{
			Month:      mergeMonth,
			DaysToKeep: mergeDaysToKeep,
			Reference:  time.Now(),
		})
		if err != nil {
			return err
		}
		if len(plan.Months) == 0 {
			fmt.Println("No daily notes to merge")
			return nil
		}

		journal := sqlite.NewJournal()
		journalReady := true
		if err := journal.Open(repo.VaultPath()); err != nil {
			journalReady = false
			fmt.Fprintf(os.Stderr, "Warning: merge journal unavailable: %v\n", err)
		} else {
			defer journal.Close()
		}

		opts := domain.MergeOptions{
			KeepEmpty:          mergeKeepEmpty,
			Append:             mergeAppend,
			SkipDuplicateTodos: mergeSkipDuplicateTodos,
		}

		// Months are processed strictly one at a time; a failed month is
		// reported and the rest are still attempted.
		for _, month := range plan.Months {
			notes := plan.Groups[month]
			if len(notes) == 0 {
				fmt.Printf("No daily notes found for %s\n", month)
				continue
			}

			result, err := commands.NewMergeMonthCommand(repo, month, notes, opts).Execute(ctx)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				continue
			}
			fmt.Println(result.Message)
			if len(result.Skipped) > 0 {
				fmt.Printf("Skipped (empty or duplicate-only): %s\n", strings.Join(result.Skipped, ", "))
			}

			rec := domain.MergeRecord{
				Month:           month,
				NotesWritten:    result.NotesWritten,
				NotesConsidered: result.NotesConsidered,
			}

			// Deletion only ever follows a fully successful merge.
			if mergeDelete {
				delResult, err := commands.NewDeleteNotesCommand(repo, month, notes).Execute(ctx)
				if err != nil {
					fmt.Fprintf(os.Stderr, "Warning: %v\n", err)
				} else {
					fmt.Println(delResult.Message)
					rec.Deleted = true
				}
			}

			if journalReady {
				if err := journal.Record(&rec); err != nil {
					fmt.Fprintf(os.Stderr, "Warning: failed to record merge: %v\n", err)
				}
			}
		}

		return nil
	},
}

func init() {
	mergeCmd.Flags().StringVar(&mergeMonth, "month", "", "specific month to process (YYYY-MM)")
	mergeCmd.Flags().IntVar(&mergeDaysToKeep, "days-to-keep", 0, "merge only notes older than the trailing N-day window")
	mergeCmd.Flags().BoolVar(&mergeKeepEmpty, "keep-empty", false, "keep empty or whitespace-only notes in output")
	mergeCmd.Flags().BoolVar(&mergeAppend, "append", false, "append to existing monthly summaries")
	mergeCmd.Flags().BoolVar(&mergeSkipDuplicateTodos, "skip-duplicate-todos", false, "drop checklist lines already present in the summary")
	mergeCmd.Flags().BoolVar(&mergeDelete, "delete", false, "delete daily notes after a successful merge")
	rootCmd.AddCommand(mergeCmd)
}
