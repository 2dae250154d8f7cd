package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"dailyroll/internal/adapters/filesystem"
	"dailyroll/internal/config"
)

var vaultPath string

var rootCmd = &cobra.Command{
	Use:   "dailyroll-cli",
	Short: "Merge Obsidian daily notes into monthly summaries",
	Long: `dailyroll-cli combines daily note files (YYYY-MM-DD.md) from an
Obsidian vault into monthly summary files (YYYY-MM.md), one date header
per day.

By default it processes every month with notes up to but excluding the
current month, skips empty notes, and refuses to overwrite an existing
monthly summary.`,
}

// Execute runs the root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&vaultPath, "vault", "v", config.VaultPath(), "path to the daily notes directory")
}

// repoFor returns a repository for the optional positional directory,
// falling back to the --vault flag.
func repoFor(args []string) *filesystem.Repository {
	if len(args) > 0 {
		return filesystem.NewRepository(args[0])
	}
	return filesystem.NewRepository(vaultPath)
}
