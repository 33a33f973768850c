package tui

import (
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/kpdgayao/pine-time-tui/internal/tui/styles"
)

// View implements tea.Model.
func (a *App) View() string {
	if a.width == 0 {
		return "Loading..."
	}

	var b strings.Builder
	b.WriteString(a.headerView())
	b.WriteString("\n\n")

	switch a.currentView {
	case ViewHelp:
		b.WriteString(a.helpComp.View())
	case ViewDetail:
		b.WriteString(a.detailComp.View())
	case ViewForm:
		b.WriteString(a.form.View())
	case ViewConfirmDelete:
		b.WriteString(a.confirmView())
	default:
		b.WriteString(a.gridView())
	}

	b.WriteString("\n")
	b.WriteString(a.statusView())
	if a.showHints {
		b.WriteString("\n")
		b.WriteString(a.hintsView())
	}

	return styles.App.Render(b.String())
}

// headerView renders the tab bar and, when active, the search input.
func (a *App) headerView() string {
	tabs := make([]string, 0, 4)
	for tab := TabEvents; tab <= TabRegistrations; tab++ {
		label := strconv.Itoa(int(tab)+1) + " " + tabNames[tab]
		if tab == a.currentTab {
			tabs = append(tabs, styles.TabActive.Render(label))
		} else {
			tabs = append(tabs, styles.TabInactive.Render(label))
		}
	}
	header := strings.Join(tabs, styles.TabInactive.Render("  │  "))

	if a.loading() {
		header += "  " + a.spinner.View()
	}

	if a.isSearching {
		header += "\n" + styles.Title.Render("/") + a.searchInput.View()
	} else if a.searchQuery != "" {
		header += "\n" + styles.Subtitle.Render("filter: "+a.searchQuery)
	}

	return header
}

func (a *App) gridView() string {
	g := a.focusedGrid()
	if g.Len() == 0 {
		if a.loading() {
			return styles.CardMeta.Render("Loading " + strings.ToLower(tabNames[a.currentTab]) + "...")
		}
		empty := "No " + strings.ToLower(tabNames[a.currentTab]) + "."
		if a.searchQuery != "" {
			empty = "Nothing matches \"" + a.searchQuery + "\"."
		}
		return styles.CardMeta.Render(empty)
	}
	return g.View()
}

func (a *App) confirmView() string {
	if a.confirmDelete == nil {
		return ""
	}
	prompt := "Delete " + a.confirmDelete.label + "?"
	return lipgloss.JoinVertical(lipgloss.Left,
		styles.Title.Render("Confirm Delete"),
		"",
		prompt,
		"",
		styles.Hints.Render("y: delete • any other key: cancel"),
	)
}

// statusView renders the error or status line with the item count.
func (a *App) statusView() string {
	count := a.focusedGrid().Len()
	counter := strconv.Itoa(count) + " " + strings.ToLower(tabNames[a.currentTab])
	if a.hasMore[a.currentTab] {
		counter += "+"
	}

	switch {
	case a.err != nil:
		return styles.StatusBarError.Render("Error: "+a.err.Error()) +
			styles.StatusBar.Render("  ("+a.keymap.Refresh.Key+" to retry)")
	case a.statusMsg != "":
		return styles.StatusBarSuccess.Render(a.statusMsg) +
			styles.StatusBar.Render("  •  "+counter)
	default:
		return styles.StatusBar.Render(counter)
	}
}

func (a *App) hintsView() string {
	k := a.keymap
	var hints []string
	switch a.currentView {
	case ViewDetail:
		hints = []string{"esc: back", k.Edit.Key + ": edit", k.Delete.Key + ": delete", k.Yank.Key + ": yank"}
	case ViewForm, ViewConfirmDelete, ViewHelp:
		return ""
	default:
		hints = []string{
			k.Down.Key + "/" + k.Up.Key + "/" + k.Left.Key + "/" + k.Right.Key + ": move",
			k.Select.Key + ": details",
			k.NextTab.Key + ": tab",
			k.Search.Key + ": search",
			k.Help.Key + ": help",
			k.Quit.Key + ": quit",
		}
	}
	return styles.Hints.Render(strings.Join(hints, " • "))
}
