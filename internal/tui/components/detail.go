package components

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/kpdgayao/pine-time-tui/internal/tui/styles"
)

// Field is a labeled value shown in the detail panel.
type Field struct {
	Label string
	Value string
}

// DetailModel displays the selected entity's fields in a full-screen view.
// It is domain-agnostic: the host supplies a title and field pairs.
type DetailModel struct {
	title         string
	fields        []Field
	width, height int
}

// NewDetail creates a new DetailModel.
func NewDetail() *DetailModel {
	return &DetailModel{}
}

// Init implements Component.
func (d *DetailModel) Init() tea.Cmd {
	return nil
}

// Update implements Component.
func (d *DetailModel) Update(msg tea.Msg) (Component, tea.Cmd) {
	return d, nil
}

// SetContent sets the title and fields to display.
func (d *DetailModel) SetContent(title string, fields []Field) {
	d.title = title
	d.fields = fields
}

// View implements Component.
func (d *DetailModel) View() string {
	if d.title == "" {
		return ""
	}

	var b strings.Builder
	b.WriteString(styles.Title.Render(d.title))
	b.WriteString("\n\n")

	labelStyle := lipgloss.NewStyle().Bold(true).Width(18)
	valueWidth := d.width - 20
	if valueWidth < 10 {
		valueWidth = 10
	}

	for _, f := range d.fields {
		value := f.Value
		if runewidth.StringWidth(value) > valueWidth {
			value = runewidth.Truncate(value, valueWidth, "…")
		}
		b.WriteString(labelStyle.Render(f.Label) + value + "\n")
	}

	b.WriteString("\n")
	b.WriteString(styles.Hints.Render("esc: back • e: edit • d: delete • y: yank ID"))
	return b.String()
}

// SetSize implements Component.
func (d *DetailModel) SetSize(width, height int) {
	d.width = width
	d.height = height
}
