package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"dailyroll/internal/ports"
)

var listMonth string

var listCmd = &cobra.Command{
	Use:   "list [notes-dir]",
	Short: "List months that have daily notes",
	Long: `List every month with daily notes, its note count, and whether a
monthly summary file already exists.

Examples:
  dailyroll-cli list ~/vault/daily
  dailyroll-cli list ~/vault/daily --month 2024-01`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		repo := repoFor(args)

		groups, err := repo.DiscoverMonths(ports.NoteFilter{Month: listMonth})
		if err != nil {
			return err
		}
		if len(groups) == 0 {
			fmt.Println("No daily notes found")
			return nil
		}

		for _, month := range groups.SortedKeys() {
			exists, err := repo.SummaryExists(month)
			if err != nil {
				return err
			}
			marker := ""
			if exists {
				marker = "  [summary exists]"
			}
			fmt.Printf("%s  %d notes%s\n", month, len(groups[month]), marker)
		}
		return nil
	},
}

func init() {
	listCmd.Flags().StringVar(&listMonth, "month", "", "restrict to one month (YYYY-MM)")
	rootCmd.AddCommand(listCmd)
}
