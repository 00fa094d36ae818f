package cmd

import (
	"github.com/spf13/cobra"

	"github.com/tutorbase/timo/internal/store"
)

var rootCmd = &cobra.Command{
	Use:   "timo",
	Short: "Adaptive difficulty engine for TIMO math practice",
	Long: "Timo decides how hard a student's next lesson should be, " +
		"fusing Elo rating, Bayesian Knowledge Tracing, and IRT ability signals " +
		"at each lesson boundary.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides TIMO_DB env var)")

	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest
// priority), then TIMO_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}
