package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Styles for the review views. AdaptiveColor keeps them readable on both
// light and dark terminals.
var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#FAFAFA", Dark: "#FAFAFA"}).
			Background(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D56F4"}).
			Padding(0, 1)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7571F9"})

	selectedStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#B300A3", Dark: "#EE6FF8"})

	tvBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#0087AF", Dark: "#5FD7FF"})

	movieBadgeStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.AdaptiveColor{Light: "#AF5F00", Dark: "#FFAF5F"})

	successStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#008700", Dark: "#5FD700"})

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#D70000", Dark: "#FF5F87"})

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#9B9B9B", Dark: "#5C5C5C"})

	spinnerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.AdaptiveColor{Light: "#5A56E0", Dark: "#7D56F4"})
)

// ProgressBar renders a fixed-width bar for done out of total steps.
func ProgressBar(done, total, width int) string {
	if total <= 0 || width <= 0 {
		return ""
	}

	filled := done * width / total
	if filled > width {
		filled = width
	}

	bar := successStyle.Render(strings.Repeat("█", filled))
	empty := mutedStyle.Render(strings.Repeat("░", width-filled))

	return bar + empty
}

// TruncateString truncates a string to max length with ellipsis
func TruncateString(s string, max int) string {
	if len(s) <= max {
		return s
	}
	if max <= 3 {
		return s[:max]
	}
	return s[:max-3] + "..."
}
