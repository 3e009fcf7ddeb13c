package cmd

import (
	"context"
	"time"

	"github.com/spf13/cobra"

	"github.com/jordanopensource/topcontrib/core"
	"github.com/jordanopensource/topcontrib/internal"
	"github.com/jordanopensource/topcontrib/schema"
)

// topCmd prints the ranked leaderboard to the terminal.
var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Print the contribution leaderboard",
	Long: `Rank contributors by popularity-weighted score and print the top
of the board as a table.

Examples:
  # Top 25 contributors across all recorded activity
  topcontrib top

  # Members only, ranked by raw contribution count over the last month
  topcontrib top --members --sort-by contributions --period last_month

  # Fuzzy search inside the ranked board
  topcontrib top --search alsadi`,
	PreRunE: sharedSetup,
	Run: func(_ *cobra.Command, _ []string) {
		ranked, err := rankedLeaderboard(rootCtx)
		if err != nil {
			internal.FatalError("Cannot compute leaderboard", err)
		}
		if err := internal.PrintLeaderboard(ranked, cfg); err != nil {
			internal.FatalError("Cannot print leaderboard", err)
		}
	},
}

// rankedLeaderboard loads the user collection and computes the ranked
// board, truncated to the configured result limit.
func rankedLeaderboard(ctx context.Context) ([]schema.RankedUser, error) {
	store, err := openStore()
	if err != nil {
		return nil, err
	}
	defer func() { _ = store.Close() }()

	users, err := store.FetchAllUsers(ctx)
	if err != nil {
		return nil, err
	}

	board, err := core.ComputeUserLeaderboard(users, core.LeaderboardOptions{
		SortBy:      cfg.SortBy,
		Period:      cfg.Period,
		Type:        cfg.Type,
		MembersOnly: cfg.MembersOnly,
		Search:      cfg.Search,
		Now:         time.Now(),
	})
	if err != nil {
		return nil, err
	}

	ranked := board.Users
	if len(ranked) > cfg.ResultLimit {
		ranked = ranked[:cfg.ResultLimit]
	}
	return ranked, nil
}
