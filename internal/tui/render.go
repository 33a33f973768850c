package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/kpdgayao/pine-time-tui/internal/api"
	"github.com/kpdgayao/pine-time-tui/internal/tui/styles"
)

func itoaKey(id int) string {
	return strconv.Itoa(id)
}

// fitLine truncates a line to the given width with an ellipsis.
func fitLine(s string, width int) string {
	if width <= 0 {
		return ""
	}
	return runewidth.Truncate(s, width, "…")
}

// renderCard wraps three content lines in the card border, sized so the
// whole cell is exactly cellHeight rows and width columns.
func renderCard(width int, selected bool, lines ...string) string {
	style := styles.Card
	if selected {
		style = styles.CardSelected
	}

	// Border and horizontal padding take four columns, the border two rows.
	inner := width - 4
	for i := range lines {
		lines[i] = fitLine(lines[i], inner)
	}
	return style.Width(width - 2).Render(strings.Join(lines, "\n"))
}

func renderEventCell(e api.Event, _ int, width int, selected bool) string {
	title := styles.CardTitle.Render(e.Title)
	if !e.IsActive {
		title = styles.Inactive.Render(e.Title)
	}

	when := e.WhenDisplay()
	if e.Location != "" {
		when += " @ " + e.Location
	}

	meta := fmt.Sprintf("%d pts", e.PointsReward)
	if e.MaxParticipants > 0 {
		meta += fmt.Sprintf(" • %d/%d joined", e.RegistrationCount, e.MaxParticipants)
	} else {
		meta += fmt.Sprintf(" • %d joined", e.RegistrationCount)
	}
	if e.IsFull() {
		meta += " • " + styles.StatusBarError.Render("FULL")
	} else if !e.RegistrationOpen {
		meta += " • closed"
	}

	return renderCard(width, selected,
		title,
		styles.CardMeta.Render(when),
		meta,
	)
}

func renderUserCell(u api.User, _ int, width int, selected bool) string {
	name := styles.CardTitle.Render(u.DisplayName())
	if !u.IsActive {
		name = styles.Inactive.Render(u.DisplayName())
	}

	role := "member"
	if u.IsSuperuser {
		role = "admin"
	}

	return renderCard(width, selected,
		name,
		styles.CardMeta.Render(u.Email),
		fmt.Sprintf("%d pts • %s", u.Points, role),
	)
}

func renderBadgeCell(b api.BadgeType, _ int, width int, selected bool) string {
	level := b.Level
	if level == "" {
		level = "unranked"
	}

	return renderCard(width, selected,
		styles.CardTitle.Render(b.Name),
		styles.CardMeta.Render(b.Description),
		fmt.Sprintf("%s • %d pts to earn", level, b.CriteriaPoints),
	)
}

func renderRegistrationCell(r api.Registration, _ int, width int, selected bool) string {
	event := r.EventTitle
	if event == "" {
		event = "event #" + strconv.Itoa(r.EventID)
	}
	user := r.UserName
	if user == "" {
		user = "user #" + strconv.Itoa(r.UserID)
	}

	return renderCard(width, selected,
		styles.CardTitle.Render(event),
		styles.CardMeta.Render(user+" • "+r.RegistrationDate.Local().Format("Jan 2 15:04")),
		styles.GetStatusStyle(r.Status).Render(strings.ToUpper(r.Status)),
	)
}
