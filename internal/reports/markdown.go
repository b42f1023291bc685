// Package reports provides habit statistics reports for the habits app.
// This file renders reports as Markdown.
package reports

import (
	"fmt"
	"strings"
)

// FormatMarkdown formats a report as a Markdown document.
func FormatMarkdown(report *Report) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# Habit report for %s\n\n", report.Date.Format("Monday, January 2, 2006"))
	fmt.Fprintf(&b, "**Today:** %d/%d completed (%.0f%%)\n\n",
		report.Summary.CompletedToday, report.Summary.TotalHabits, report.Summary.CompletionRate)

	if len(report.Habits) == 0 {
		b.WriteString("No habits tracked yet.\n")
		return b.String()
	}

	b.WriteString("| Habit | Week | Streak | Best | 30d |\n")
	b.WriteString("|-------|------|--------|------|-----|\n")
	for _, h := range report.Habits {
		fmt.Fprintf(&b, "| %s | %s | %d | %d | %.0f%% |\n",
			h.Name, weekCells(h.Week), h.Streak, h.LongestStreak, h.MonthRate)
	}

	return b.String()
}

func weekCells(week []bool) string {
	var b strings.Builder
	for _, done := range week {
		if done {
			b.WriteString("●")
		} else {
			b.WriteString("○")
		}
	}
	return b.String()
}
