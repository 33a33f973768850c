// Package styles provides Lip Gloss styles for the TUI.
package styles

import "github.com/charmbracelet/lipgloss"

// Terminal-adaptive colors that work in both light and dark terminals.
var (
	// Subtle is a muted color for secondary text
	Subtle = lipgloss.AdaptiveColor{Light: "#666666", Dark: "#999999"}

	// Highlight is the accent color for selected items
	Highlight = lipgloss.AdaptiveColor{Light: "#1B5E20", Dark: "#66BB6A"}

	// Special colors
	ErrorColor   = lipgloss.AdaptiveColor{Light: "#FF0000", Dark: "#FF6666"}
	SuccessColor = lipgloss.AdaptiveColor{Light: "#00AA00", Dark: "#66FF66"}
	WarningColor = lipgloss.AdaptiveColor{Light: "#FFAA00", Dark: "#FFCC66"}
)

// Registration status colors.
var (
	StatusPendingColor  = lipgloss.Color("#EA8811")
	StatusApprovedColor = lipgloss.Color("#3BB143")
	StatusRejectedColor = lipgloss.Color("#D0473D")
	StatusAttendedColor = lipgloss.Color("#296FDF")
)

// Base styles
var (
	// App is the base style for the entire application
	App = lipgloss.NewStyle().
		Padding(1, 2)

	// Title is the style for view titles
	Title = lipgloss.NewStyle().
		Bold(true).
		Foreground(Highlight)

	// Subtitle is for secondary headings
	Subtitle = lipgloss.NewStyle().
			Bold(true).
			Foreground(Subtle)

	// TabActive is the style for the active resource tab
	TabActive = lipgloss.NewStyle().
			Bold(true).
			Foreground(Highlight).
			Underline(true)

	// TabInactive is the style for inactive resource tabs
	TabInactive = lipgloss.NewStyle().
			Foreground(Subtle)
)

// Grid cell styles
var (
	// Card is the base style for a grid cell
	Card = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(Subtle).
		Padding(0, 1)

	// CardSelected is the style for the cell under the cursor
	CardSelected = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(Highlight).
			Bold(true).
			Padding(0, 1)

	// CardTitle is the style for a cell's first line
	CardTitle = lipgloss.NewStyle().
			Bold(true)

	// CardMeta is the style for a cell's secondary lines
	CardMeta = lipgloss.NewStyle().
			Foreground(Subtle)

	// Inactive marks deactivated users and inactive events
	Inactive = lipgloss.NewStyle().
			Faint(true).
			Strikethrough(true)
)

// Status bar styles
var (
	StatusBar = lipgloss.NewStyle().
			Foreground(Subtle)

	StatusBarError = lipgloss.NewStyle().
			Foreground(ErrorColor).
			Bold(true)

	StatusBarSuccess = lipgloss.NewStyle().
				Foreground(SuccessColor)

	// Hints is for the keybinding hint line
	Hints = lipgloss.NewStyle().
		Foreground(Subtle).
		Faint(true)
)

// Form styles
var (
	FormLabel = lipgloss.NewStyle().
			Bold(true).
			Width(18)

	FormLabelFocused = lipgloss.NewStyle().
				Bold(true).
				Width(18).
				Foreground(Highlight)

	FormError = lipgloss.NewStyle().
			Foreground(ErrorColor)
)

// Spinner is the loading spinner style
var Spinner = lipgloss.NewStyle().Foreground(Highlight)

// GetStatusStyle returns the style for a registration status string.
func GetStatusStyle(status string) lipgloss.Style {
	switch status {
	case "approved":
		return lipgloss.NewStyle().Foreground(StatusApprovedColor)
	case "rejected":
		return lipgloss.NewStyle().Foreground(StatusRejectedColor)
	case "attended":
		return lipgloss.NewStyle().Foreground(StatusAttendedColor)
	default:
		return lipgloss.NewStyle().Foreground(StatusPendingColor)
	}
}
