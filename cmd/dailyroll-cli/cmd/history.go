package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"dailyroll/internal/adapters/sqlite"
)

var historyMonth string

var historyCmd = &cobra.Command{
	Use:   "history [notes-dir]",
	Short: "Show past merge runs",
	Long: `Show merge runs recorded in the vault's journal, newest first.

Examples:
  dailyroll-cli history ~/vault/daily
  dailyroll-cli history ~/vault/daily --month 2024-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repoFor(args)

		journal := sqlite.NewJournal()
		if err := journal.Open(repo.VaultPath()); err != nil {
			return err
		}
		defer journal.Close()

		records, err := journal.History(historyMonth)
		if err != nil {
			return err
		}
		if len(records) == 0 {
			fmt.Println("No merge runs recorded")
			return nil
		}

		for _, rec := range records {
			deleted := ""
			if rec.Deleted {
				deleted = ", daily notes deleted"
			}
			fmt.Printf("%s  %s  %d of %d notes%s\n",
				rec.MergedAt.Local().Format(time.DateTime),
				rec.Month, rec.NotesWritten, rec.NotesConsidered, deleted)
		}
		return nil
	},
}

func init() {
	historyCmd.Flags().StringVar(&historyMonth, "month", "", "restrict to one month (YYYY-MM)")
	rootCmd.AddCommand(historyCmd)
}
