package internal

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/internal/parquet"
	"github.com/jordanopensource/topcontrib/schema"
)

// WriteLeaderboard dispatches ranked users to the configured output
// format.
func WriteLeaderboard(users []schema.RankedUser, cfg *contract.Config) error {
	switch cfg.Output {
	case schema.CSVOut:
		if err := writeCSVLeaderboard(users, cfg); err != nil {
			return fmt.Errorf("error writing CSV output: %w", err)
		}
	case schema.JSONOut:
		if err := writeJSONLeaderboard(users, cfg); err != nil {
			return fmt.Errorf("error writing JSON output: %w", err)
		}
	case schema.ParquetOut:
		if cfg.OutputFile == "" {
			return fmt.Errorf("parquet output requires an output file")
		}
		if err := parquet.WriteLeaderboardParquet(parquet.ConvertRankedUsers(users), cfg.OutputFile); err != nil {
			return fmt.Errorf("error writing parquet output: %w", err)
		}
		fmt.Fprintf(os.Stderr, "💾 Wrote parquet leaderboard to %s\n", cfg.OutputFile)
	default:
		return PrintLeaderboard(users, cfg)
	}
	return nil
}

// writeWithFile handles the common pattern of opening a file, writing to
// it, and cleaning up.
func writeWithFile(outputFile string, writer func(io.Writer) error, successMsg string) error {
	file, err := selectOutputFile(outputFile)
	if err != nil {
		return err
	}
	if file != os.Stdout {
		defer func() { _ = file.Close() }()
	}

	if err := writer(file); err != nil {
		return err
	}

	if file != os.Stdout {
		fmt.Fprintf(os.Stderr, "💾 %s to %s\n", successMsg, outputFile)
	}
	return nil
}

// selectOutputFile returns the file handle for the configured output
// path, or stdout when none is set.
func selectOutputFile(outputFile string) (*os.File, error) {
	if outputFile == "" {
		return os.Stdout, nil
	}
	file, err := os.Create(outputFile)
	if err != nil {
		return nil, fmt.Errorf("cannot open output file %s: %w", outputFile, err)
	}
	return file, nil
}

func writeCSVLeaderboard(users []schema.RankedUser, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		csvWriter := csv.NewWriter(w)
		defer csvWriter.Flush()

		if err := csvWriter.Write([]string{"rank", "username", "name", "contributions", "score", "is_member"}); err != nil {
			return fmt.Errorf("failed to write CSV header: %w", err)
		}
		for _, u := range users {
			rec := []string{
				strconv.Itoa(u.CurrentRank),
				u.Username,
				u.Name,
				strconv.Itoa(u.ContributionsTotalCount),
				strconv.Itoa(u.Score),
				strconv.FormatBool(u.IsMember),
			}
			if err := csvWriter.Write(rec); err != nil {
				return fmt.Errorf("failed to write CSV row: %w", err)
			}
		}
		return nil
	}, "Wrote CSV leaderboard")
}

func writeJSONLeaderboard(users []schema.RankedUser, cfg *contract.Config) error {
	return writeWithFile(cfg.OutputFile, func(w io.Writer) error {
		encoder := json.NewEncoder(w)
		encoder.SetIndent("", "  ")
		if err := encoder.Encode(users); err != nil {
			return fmt.Errorf("failed to encode JSON: %w", err)
		}
		return nil
	}, "Wrote JSON leaderboard")
}
