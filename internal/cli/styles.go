// Package cli holds the lipgloss styles for colloquy's console output.
package cli

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

var (
	// Colors
	scientistColor   = lipgloss.Color("#60A5FA") // Blue
	philosopherColor = lipgloss.Color("#A78BFA") // Purple
	judgeColor       = lipgloss.Color("#F59E0B") // Amber
	mutedColor       = lipgloss.Color("#9CA3AF") // Gray
	errorColor       = lipgloss.Color("#F87171") // Red

	// Banner and section headers
	Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(judgeColor)

	Muted = lipgloss.NewStyle().
		Foreground(mutedColor)

	ErrorText = lipgloss.NewStyle().
			Bold(true).
			Foreground(errorColor)

	scientistLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(scientistColor)

	philosopherLabel = lipgloss.NewStyle().
				Bold(true).
				Foreground(philosopherColor)

	judgeLabel = lipgloss.NewStyle().
			Bold(true).
			Foreground(judgeColor)
)

// TurnLine renders one completed turn for the console stream.
func TurnLine(round int, speaker, text string) string {
	label := scientistLabel
	if speaker != "Scientist" {
		label = philosopherLabel
	}
	return fmt.Sprintf("%s %s: %s",
		Muted.Render(fmt.Sprintf("[Round %d]", round)),
		label.Render(speaker),
		text,
	)
}

// VerdictBlock renders the final judgment block.
func VerdictBlock(summary, winner, justification string) string {
	var b strings.Builder
	b.WriteString(judgeLabel.Render("[Judge]") + " Summary of debate:\n")
	b.WriteString(summary + "\n\n")
	b.WriteString(fmt.Sprintf("%s Winner: %s\n", judgeLabel.Render("[Judge]"), winner))
	b.WriteString(fmt.Sprintf("%s Reason: %s\n", judgeLabel.Render("[Judge]"), justification))
	return b.String()
}
