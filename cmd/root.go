package cmd

import (
	"github.com/spf13/cobra"

	"github.com/intervue-ai/intervue/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "intervue",
	Short: "AI-powered interview assistant",
	Long:  "Intervue — terminal client for AI-driven timed interviews: resume intake, chat-based Q&A, and an interviewer dashboard.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runApp(cmd, false)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides INTERVUE_DB env var)")
	rootCmd.PersistentFlags().String("api-url", "", "Backend API base URL (overrides INTERVUE_API_URL env var)")

	rootCmd.AddCommand(dashboardCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then INTERVUE_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
