package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/kpdgayao/pine-time-tui/internal/tui/styles"
)

// HelpItem is a key/description pair. An item with an empty Key renders as
// a section header.
type HelpItem struct {
	Key  string
	Desc string
}

// HelpModel renders the help view with keyboard shortcuts.
type HelpModel struct {
	width, height int
	items         []HelpItem
}

// NewHelp creates a new HelpModel.
func NewHelp() *HelpModel {
	return &HelpModel{}
}

// Init implements Component.
func (h *HelpModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (h *HelpModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return h, nil
}

// View implements Component.
func (h *HelpModel) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Keyboard Shortcuts"))
	b.WriteString("\n")

	keyStyle := lipgloss.NewStyle().Bold(true).Width(12).Align(lipgloss.Right).PaddingRight(2)
	for _, item := range h.items {
		if item.Key == "" {
			b.WriteString("\n" + styles.Subtitle.Render(item.Desc) + "\n")
			continue
		}
		b.WriteString(keyStyle.Render(item.Key) + item.Desc + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Hints.Render("Press ESC or ? to close"))
	return b.String()
}

// SetSize implements Component.
func (h *HelpModel) SetSize(width, height int) {
	h.width = width
	h.height = height
}

// SetItems sets the help entries.
func (h *HelpModel) SetItems(items []HelpItem) {
	h.items = items
}
