// Package cmd defines the command-line interface for topcontrib.
package cmd

import (
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jordanopensource/topcontrib/internal"
	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

func init() {
	// Call initConfig on Cobra's initialization
	cobra.OnInitialize(initConfig)

	// Add primary subcommands to the root command
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(topCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)

	// Bind all persistent flags of rootCmd to Viper
	rootCmd.PersistentFlags().String("backend", string(schema.SQLiteBackend), "Store backend: sqlite or mysql or postgresql")
	rootCmd.PersistentFlags().String("db-connect", "topcontrib.db", "Database connection string (file path for sqlite)")
	rootCmd.PersistentFlags().String("period", string(schema.PeriodAll), "Contribution period: all, last_30_days, this_year, last_month, last_year or an explicit YYYY-MM-DD_YYYY-MM-DD range")
	rootCmd.PersistentFlags().String("sort-by", string(schema.SortByScore), "Leaderboard sort key: score or contributions")
	rootCmd.PersistentFlags().String("type", string(schema.AllContributions), "Contribution type: all or commits")
	rootCmd.PersistentFlags().Bool("members", false, "Restrict the leaderboard to association members")
	rootCmd.PersistentFlags().String("search", "", "Fuzzy search by username or display name")
	rootCmd.PersistentFlags().IntP("limit", "l", contract.DefaultResultLimit, "Number of results to display")
	rootCmd.PersistentFlags().String("output", string(schema.TextOut), "Output format: text or csv or json or parquet")
	rootCmd.PersistentFlags().String("output-file", "", "Optional path to write output to")
	rootCmd.PersistentFlags().String("color", "yes", "Enable colored labels in output (yes/no)")
	rootCmd.PersistentFlags().String("config", "", "Path to config file")
	if err := viper.BindPFlags(rootCmd.PersistentFlags()); err != nil {
		internal.FatalError("Error binding root flags", err)
	}

	// Bind all flags of serveCmd to Viper
	serveCmd.Flags().IntP("port", "p", contract.DefaultPort, "HTTP listen port")
	serveCmd.Flags().String("refresh-interval", "1h", "Snapshot refresh interval (Go duration)")
	serveCmd.Flags().Int("page-limit", contract.DefaultPageLimit, "Default page size for list endpoints")
	if err := viper.BindPFlags(serveCmd.Flags()); err != nil {
		internal.FatalError("Error binding serve flags", err)
	}
}
