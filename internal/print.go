package internal

import (
	"fmt"
	"os"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"

	"github.com/jordanopensource/topcontrib/internal/contract"
	"github.com/jordanopensource/topcontrib/schema"
)

// PrintLeaderboard renders ranked users as a table on stdout.
func PrintLeaderboard(users []schema.RankedUser, cfg *contract.Config) error {
	color.NoColor = !cfg.UseColors

	table := tablewriter.NewWriter(os.Stdout)
	table.Header([]string{"Rank", "Username", "Name", "Contributions", "Score", "Member"})
	table.Configure(func(tcfg *tablewriter.Config) {
		tcfg.Row.Alignment.Global = tw.AlignRight
	})

	nameWidth := maxTableNameWidth()
	var data [][]string
	for _, u := range users {
		data = append(data, []string{
			formatRank(u.CurrentRank),
			u.Username,
			truncateName(u.Name, nameWidth),
			strconv.Itoa(u.ContributionsTotalCount),
			strconv.Itoa(u.Score),
			formatMember(u.IsMember),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	if err := table.Render(); err != nil {
		return err
	}

	fmt.Printf("Ranked %d contributors for period %q\n", len(users), displayPeriod(cfg.Period))
	return nil
}

func displayPeriod(period string) string {
	if period == "" {
		return string(schema.PeriodAll)
	}
	return period
}

// maxTableNameWidth sizes the name column from the terminal width.
func maxTableNameWidth() int {
	termWidth, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || termWidth <= 0 {
		termWidth = 80 // Conservative default for narrow terminals and CI
	}

	// Reserve space for the fixed columns plus borders and padding
	available := termWidth - 55
	if available < 12 {
		return 12
	}
	if available > 40 {
		return 40
	}
	return available
}
