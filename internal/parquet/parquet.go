// Package parquet exports ranked leaderboards to Parquet files using
// github.com/parquet-go/parquet-go.
package parquet

import (
	"fmt"
	"os"

	"github.com/parquet-go/parquet-go"

	"github.com/jordanopensource/topcontrib/schema"
)

// LeaderboardRow is one ranked contributor as stored in a Parquet file.
// The schema is derived from the struct tags.
type LeaderboardRow struct {
	Rank          int32  `parquet:"rank,snappy"`
	Username      string `parquet:"username,snappy"`
	Name          string `parquet:"name,snappy"`
	Contributions int32  `parquet:"contributions,snappy"`
	Score         int32  `parquet:"score,snappy"`
	IsMember      bool   `parquet:"is_member,snappy"`
}

// ConvertRankedUsers maps ranked users to Parquet rows.
func ConvertRankedUsers(users []schema.RankedUser) []LeaderboardRow {
	rows := make([]LeaderboardRow, len(users))
	for i, u := range users {
		rows[i] = LeaderboardRow{
			Rank:          int32(u.CurrentRank),
			Username:      u.Username,
			Name:          u.Name,
			Contributions: int32(u.ContributionsTotalCount),
			Score:         int32(u.Score),
			IsMember:      u.IsMember,
		}
	}
	return rows
}

// WriteLeaderboardParquet writes leaderboard rows to a Parquet file.
func WriteLeaderboardParquet(rows []LeaderboardRow, outputPath string) error {
	file, err := os.Create(outputPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer func() { _ = file.Close() }()

	writer := parquet.NewGenericWriter[LeaderboardRow](file)

	if _, err := writer.Write(rows); err != nil {
		_ = writer.Close()
		return fmt.Errorf("failed to write data to parquet file: %w", err)
	}
	if err := writer.Close(); err != nil {
		return fmt.Errorf("failed to finalize parquet file: %w", err)
	}
	return nil
}
