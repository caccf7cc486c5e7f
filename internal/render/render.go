// Package render formats solver results for the terminal.
package render

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"advent2020/internal/ledger"
	"advent2020/internal/puzzle"
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))

	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("246"))

	answerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("10"))

	errorStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("9"))

	dimStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("240"))
)

// ResultTable renders one row per solved part.
func ResultTable(results []puzzle.Result) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-6s %-24s %-6s %-14s %s", "DAY", "TITLE", "PART", "ANSWER", "TIME")))
	b.WriteByte('\n')
	for _, res := range results {
		answer := answerStyle.Render(fmt.Sprintf("%-14d", res.Answer))
		if res.Err != nil {
			answer = errorStyle.Render(fmt.Sprintf("%-14s", "error: "+res.Err.Error()))
		}
		fmt.Fprintf(&b, "%-6d %-24s %-6d %s %s\n",
			res.Day,
			titleStyle.Render(fmt.Sprintf("%-24s", res.Title)),
			res.Part,
			answer,
			dimStyle.Render(res.Duration.String()),
		)
	}
	return b.String()
}

// HistoryTable renders recorded runs, newest first.
func HistoryTable(runs []ledger.Run) string {
	if len(runs) == 0 {
		return dimStyle.Render("no recorded runs") + "\n"
	}
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("%-20s %-6s %-6s %-14s %-10s %s", "RECORDED", "DAY", "PART", "ANSWER", "TIME", "INPUT")))
	b.WriteByte('\n')
	for _, r := range runs {
		fmt.Fprintf(&b, "%-20s %-6d %-6d %s %-10s %s\n",
			r.CreatedAt.Local().Format("2006-01-02 15:04:05"),
			r.Day,
			r.Part,
			answerStyle.Render(fmt.Sprintf("%-14d", r.Answer)),
			r.Duration.String(),
			dimStyle.Render(r.InputPath),
		)
	}
	return b.String()
}
