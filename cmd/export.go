package cmd

import (
	"github.com/spf13/cobra"

	"github.com/jordanopensource/topcontrib/internal"
)

// exportCmd writes the ranked leaderboard to a file or stdout.
var exportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export the contribution leaderboard as csv, json or parquet",
	Long: `Compute the ranked leaderboard and write it in a machine-readable
format. The same period, sorting and search selectors as 'top' apply.

Examples:
  # Print the full board as JSON on stdout
  topcontrib export --output json --limit 1000

  # Write a CSV snapshot of member activity this year
  topcontrib export --output csv --output-file board.csv \
    --members --period this_year

  # Parquet for downstream analytics
  topcontrib export --output parquet --output-file board.parquet`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		ranked, err := rankedLeaderboard(rootCtx)
		if err != nil {
			internal.FatalError("Cannot compute leaderboard", err)
		}
		if err := internal.WriteLeaderboard(ranked, cfg); err != nil {
			internal.FatalError("Cannot export leaderboard", err)
		}
	},
}
