// Package internal has helpers that are only useful within the
// topcontrib runtime.
package internal

import (
	"fmt"
	"os"

	"github.com/fatih/color"
)

// FatalError logs an error and exits the program.
func FatalError(msg string, err error) {
	fmt.Fprintf(os.Stderr, "❌ %s: %v\n", msg, err)
	os.Exit(1)
}

// Warning logs a warning.
func Warning(msg string) {
	fmt.Fprintf(os.Stderr, "⚠️  %s\n", msg)
}

var (
	topRankColor = color.New(color.FgYellow, color.Bold) // Podium ranks
	memberColor  = color.New(color.FgGreen)
)

// formatRank highlights podium positions in table output.
func formatRank(rank int) string {
	if rank <= 3 {
		return topRankColor.Sprintf("%d", rank)
	}
	return fmt.Sprintf("%d", rank)
}

// formatMember marks association members in table output.
func formatMember(isMember bool) string {
	if isMember {
		return memberColor.Sprint("member")
	}
	return "-"
}

// truncateName shortens a display name to a maximum width with an
// ellipsis suffix.
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth {
		return string(runes[:maxWidth-3]) + "..."
	}
	return name
}
