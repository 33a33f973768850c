package tui

import (
	"strconv"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/gen2brain/beeep"

	"github.com/kpdgayao/pine-time-tui/internal/api"
)

// loadEvents fetches one page of events. replace=true reloads from scratch
// (initial load, refresh, new search); replace=false appends (pagination).
func (a *App) loadEvents(page int, search string, replace bool) tea.Cmd {
	size := a.config.UI.PageSize
	return func() tea.Msg {
		result, err := a.client.ListEvents(api.EventFilter{
			Search: search,
			Page:   page,
			Size:   size,
		})
		if err != nil {
			return errMsg{err}
		}
		return eventsLoadedMsg{page: result, replace: replace}
	}
}

func (a *App) loadUsers(page int, search string, replace bool) tea.Cmd {
	size := a.config.UI.PageSize
	return func() tea.Msg {
		result, err := a.client.ListUsers(api.UserFilter{
			Search: search,
			Page:   page,
			Size:   size,
		})
		if err != nil {
			return errMsg{err}
		}
		return usersLoadedMsg{page: result, replace: replace}
	}
}

func (a *App) loadBadges(page int, replace bool) tea.Cmd {
	size := a.config.UI.PageSize
	return func() tea.Msg {
		result, err := a.client.ListBadgeTypes(page, size)
		if err != nil {
			return errMsg{err}
		}
		return badgesLoadedMsg{page: result, replace: replace}
	}
}

func (a *App) loadRegistrations(page int, replace bool) tea.Cmd {
	size := a.config.UI.PageSize
	return func() tea.Msg {
		result, err := a.client.ListRegistrations(api.RegistrationFilter{
			Page: page,
			Size: size,
		})
		if err != nil {
			return errMsg{err}
		}
		return registrationsLoadedMsg{page: result, replace: replace}
	}
}

// loadNextPage fetches the next page for the current tab, if one remains.
func (a *App) loadNextPage() tea.Cmd {
	tab := a.currentTab
	if a.loadingMore[tab] || !a.hasMore[tab] {
		return nil
	}
	a.loadingMore[tab] = true
	next := a.pageLoaded[tab] + 1

	switch tab {
	case TabUsers:
		return a.loadUsers(next, a.searchQuery, false)
	case TabBadges:
		return a.loadBadges(next, false)
	case TabRegistrations:
		return a.loadRegistrations(next, false)
	default:
		return a.loadEvents(next, a.searchQuery, false)
	}
}

func (a *App) createEvent(req api.CreateEventRequest) tea.Cmd {
	return func() tea.Msg {
		event, err := a.client.CreateEvent(req)
		if err != nil {
			return errMsg{err}
		}
		return eventSavedMsg{event: event, created: true}
	}
}

func (a *App) updateEvent(id int, req api.UpdateEventRequest) tea.Cmd {
	return func() tea.Msg {
		event, err := a.client.UpdateEvent(id, req)
		if err != nil {
			return errMsg{err}
		}
		return eventSavedMsg{event: event}
	}
}

func (a *App) createBadge(req api.CreateBadgeTypeRequest) tea.Cmd {
	return func() tea.Msg {
		badge, err := a.client.CreateBadgeType(req)
		if err != nil {
			return errMsg{err}
		}
		return badgeSavedMsg{badge: badge, created: true}
	}
}

func (a *App) updateBadge(id int, req api.UpdateBadgeTypeRequest) tea.Cmd {
	return func() tea.Msg {
		badge, err := a.client.UpdateBadgeType(id, req)
		if err != nil {
			return errMsg{err}
		}
		return badgeSavedMsg{badge: badge}
	}
}

func (a *App) toggleUserActive(u api.User) tea.Cmd {
	return func() tea.Msg {
		user, err := a.client.SetUserActive(u.ID, !u.IsActive)
		if err != nil {
			return errMsg{err}
		}
		return userUpdatedMsg{user: user}
	}
}

func (a *App) setRegistrationStatus(id int, status string) tea.Cmd {
	return func() tea.Msg {
		reg, err := a.client.SetRegistrationStatus(id, status)
		if err != nil {
			return errMsg{err}
		}
		return registrationUpdatedMsg{reg: reg}
	}
}

func (a *App) deleteEntity(tab Tab, id int) tea.Cmd {
	return func() tea.Msg {
		var err error
		switch tab {
		case TabUsers:
			err = a.client.DeleteUser(id)
		case TabBadges:
			err = a.client.DeleteBadgeType(id)
		case TabRegistrations:
			err = a.client.DeleteRegistration(id)
		default:
			err = a.client.DeleteEvent(id)
		}
		if err != nil {
			return errMsg{err}
		}
		return entityDeletedMsg{tab: tab, id: id}
	}
}

// yankID copies an entity ID to the system clipboard.
func yankID(id int) tea.Cmd {
	return func() tea.Msg {
		if err := clipboard.WriteAll(strconv.Itoa(id)); err != nil {
			return errMsg{err}
		}
		return statusMsg{msg: "Copied ID " + strconv.Itoa(id)}
	}
}

// notifyPending sends a desktop notification about newly pending
// registrations discovered during a refresh.
func notifyPending(count int) tea.Cmd {
	return func() tea.Msg {
		msg := strconv.Itoa(count) + " registrations awaiting approval"
		if count == 1 {
			msg = "1 registration awaiting approval"
		}
		// Best effort; notification failures are not surfaced.
		_ = beeep.Notify("Pine Time", msg, "")
		return nil
	}
}
