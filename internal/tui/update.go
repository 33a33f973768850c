package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpdgayao/pine-time-tui/internal/api"
	"github.com/kpdgayao/pine-time-tui/internal/tui/components"
	"github.com/kpdgayao/pine-time-tui/internal/tui/gridlist"
)

// Update implements tea.Model.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.applySizes()
		return a, nil

	case spinner.TickMsg:
		if a.loading() {
			var cmd tea.Cmd
			a.spinner, cmd = a.spinner.Update(msg)
			return a, cmd
		}
		return a, nil

	case errMsg:
		a.err = msg.err
		a.statusMsg = ""
		if a.loadsPending > 0 {
			a.loadsPending--
		}
		for tab := range a.loadingMore {
			a.loadingMore[tab] = false
		}
		a.log.Error().Err(msg.err).Msg("operation failed")
		return a, nil

	case statusMsg:
		a.statusMsg = msg.msg
		return a, nil

	case eventsLoadedMsg:
		return a, a.handleLoaded(TabEvents, msg.replace, msg.page.HasMore(), msg.page.Page, func() tea.Cmd {
			if msg.replace {
				return a.eventsGrid.SetItems(msg.page.Items)
			}
			return a.eventsGrid.Append(msg.page.Items)
		})

	case usersLoadedMsg:
		return a, a.handleLoaded(TabUsers, msg.replace, msg.page.HasMore(), msg.page.Page, func() tea.Cmd {
			if msg.replace {
				return a.usersGrid.SetItems(msg.page.Items)
			}
			return a.usersGrid.Append(msg.page.Items)
		})

	case badgesLoadedMsg:
		return a, a.handleLoaded(TabBadges, msg.replace, msg.page.HasMore(), msg.page.Page, func() tea.Cmd {
			if msg.replace {
				return a.badgesGrid.SetItems(msg.page.Items)
			}
			return a.badgesGrid.Append(msg.page.Items)
		})

	case registrationsLoadedMsg:
		cmd := a.handleLoaded(TabRegistrations, msg.replace, msg.page.HasMore(), msg.page.Page, func() tea.Cmd {
			if msg.replace {
				return a.regsGrid.SetItems(msg.page.Items)
			}
			return a.regsGrid.Append(msg.page.Items)
		})
		if notify := a.watchPending(); notify != nil {
			cmd = tea.Batch(cmd, notify)
		}
		return a, cmd

	case eventSavedMsg:
		a.currentView = ViewGrid
		a.form = nil
		a.statusMsg = "Event saved: " + msg.event.Title
		return a, a.loadTab(TabEvents)

	case badgeSavedMsg:
		a.currentView = ViewGrid
		a.form = nil
		a.statusMsg = "Badge type saved: " + msg.badge.Name
		return a, a.loadTab(TabBadges)

	case userUpdatedMsg:
		if msg.user.IsActive {
			a.statusMsg = "Activated " + msg.user.DisplayName()
		} else {
			a.statusMsg = "Deactivated " + msg.user.DisplayName()
		}
		return a, a.loadTab(TabUsers)

	case registrationUpdatedMsg:
		a.statusMsg = "Registration " + strconv.Itoa(msg.reg.ID) + " " + msg.reg.Status
		return a, a.loadTab(TabRegistrations)

	case entityDeletedMsg:
		a.statusMsg = "Deleted"
		if a.currentView == ViewDetail || a.currentView == ViewConfirmDelete {
			a.currentView = ViewGrid
		}
		return a, a.loadTab(msg.tab)

	case gridlist.EndReachedMsg:
		if a.currentView == ViewGrid {
			return a, a.loadNextPage()
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	return a, nil
}

// handleLoaded applies a loaded page to a tab's bookkeeping and grid.
// The grid's end-reached command is only propagated for the active tab,
// where it drives viewport-filling pagination.
func (a *App) handleLoaded(tab Tab, replace, hasMore bool, page int, apply func() tea.Cmd) tea.Cmd {
	cmd := apply()
	a.err = nil
	a.hasMore[tab] = hasMore
	a.pageLoaded[tab] = page
	if replace {
		if a.loadsPending > 0 {
			a.loadsPending--
		}
	} else {
		a.loadingMore[tab] = false
	}
	if tab != a.currentTab {
		return nil
	}
	return cmd
}

// watchPending compares the pending registration count against the last
// load and notifies when new pending registrations appeared.
func (a *App) watchPending() tea.Cmd {
	pending := 0
	for _, r := range a.regsGrid.Items() {
		if r.Status == api.RegistrationPending {
			pending++
		}
	}

	known := a.knownPending
	a.knownPending = pending
	if known >= 0 && pending > known {
		return notifyPending(pending)
	}
	return nil
}

func (a *App) loading() bool {
	return a.loadsPending > 0
}

// loadTab reloads a tab from its first page.
func (a *App) loadTab(tab Tab) tea.Cmd {
	search := ""
	if tab == a.currentTab {
		search = a.searchQuery
	}
	switch tab {
	case TabUsers:
		return a.loadUsers(1, search, true)
	case TabBadges:
		return a.loadBadges(1, true)
	case TabRegistrations:
		return a.loadRegistrations(1, true)
	default:
		return a.loadEvents(1, search, true)
	}
}

// applySizes distributes the window size to grids and components.
func (a *App) applySizes() {
	// App padding eats two columns each side and one row top/bottom; the
	// header and status area take two rows each.
	contentWidth := a.width - 4
	contentHeight := a.height - 2
	gridHeight := contentHeight - 4
	if gridHeight < 1 {
		gridHeight = 1
	}

	a.eventsGrid.SetSize(contentWidth, gridHeight)
	a.usersGrid.SetSize(contentWidth, gridHeight)
	a.badgesGrid.SetSize(contentWidth, gridHeight)
	a.regsGrid.SetSize(contentWidth, gridHeight)
	a.helpComp.SetSize(contentWidth, gridHeight)
	a.detailComp.SetSize(contentWidth, gridHeight)
}

func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if a.isSearching {
		return a.handleSearchKey(msg)
	}

	switch a.currentView {
	case ViewHelp:
		switch msg.String() {
		case "esc", "?", "q":
			a.currentView = a.previousView
		}
		return a, nil

	case ViewForm:
		return a.handleFormKey(msg)

	case ViewConfirmDelete:
		return a.handleConfirmKey(msg)

	case ViewDetail:
		return a.handleDetailKey(msg)

	default:
		return a.handleGridKey(msg)
	}
}

func (a *App) handleSearchKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "enter":
		a.isSearching = false
		a.searchQuery = a.searchInput.Value()
		return a, a.loadTab(a.currentTab)
	case "esc":
		a.isSearching = false
		a.searchInput.Reset()
		if a.searchQuery != "" {
			a.searchQuery = ""
			return a, a.loadTab(a.currentTab)
		}
		return a, nil
	}

	var cmd tea.Cmd
	a.searchInput, cmd = a.searchInput.Update(msg)
	return a, cmd
}

func (a *App) handleFormKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "esc" {
		a.form = nil
		a.currentView = ViewGrid
		return a, nil
	}

	submit, cmd := a.form.Update(msg)
	if submit {
		if saveCmd := a.form.submit(a); saveCmd != nil {
			a.statusMsg = "Saving..."
			return a, saveCmd
		}
		// Validation failed; errText is shown in the form.
	}
	return a, cmd
}

func (a *App) handleConfirmKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "enter":
		target := a.confirmDelete
		a.confirmDelete = nil
		a.currentView = ViewGrid
		if target != nil {
			return a, a.deleteEntity(target.tab, target.id)
		}
		return a, nil
	default:
		a.confirmDelete = nil
		a.currentView = ViewGrid
		return a, nil
	}
}

func (a *App) handleDetailKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "q":
		a.currentView = ViewGrid
		return a, nil
	case a.keymap.Edit.Key:
		return a, a.startEdit()
	case a.keymap.Delete.Key:
		a.startDelete()
		return a, nil
	case a.keymap.Yank.Key:
		if id, ok := a.selectedID(); ok {
			return a, yankID(id)
		}
		return a, nil
	}
	return a, nil
}

func (a *App) handleGridKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case a.keymap.Quit.Key, "ctrl+c":
		return a, tea.Quit

	case a.keymap.Help.Key:
		a.previousView = a.currentView
		a.currentView = ViewHelp
		return a, nil

	case a.keymap.NextTab.Key:
		a.setTab((a.currentTab + 1) % 4)
		return a, nil

	case a.keymap.PrevTab.Key:
		a.setTab((a.currentTab + 3) % 4)
		return a, nil

	case "1":
		a.setTab(TabEvents)
		return a, nil
	case "2":
		a.setTab(TabUsers)
		return a, nil
	case "3":
		a.setTab(TabBadges)
		return a, nil
	case "4":
		a.setTab(TabRegistrations)
		return a, nil

	case a.keymap.Back.Key:
		if a.searchQuery != "" {
			a.searchQuery = ""
			a.searchInput.Reset()
			return a, a.loadTab(a.currentTab)
		}
		return a, nil

	case a.keymap.Refresh.Key:
		a.statusMsg = "Refreshing..."
		return a, a.loadTab(a.currentTab)

	case a.keymap.Search.Key:
		a.isSearching = true
		a.searchInput.SetValue(a.searchQuery)
		a.searchInput.Focus()
		return a, nil

	case a.keymap.Select.Key:
		if a.openDetail() {
			a.currentView = ViewDetail
		}
		return a, nil

	case a.keymap.Add.Key:
		switch a.currentTab {
		case TabEvents:
			a.form = NewEventForm(nil)
			a.currentView = ViewForm
		case TabBadges:
			a.form = NewBadgeForm(nil)
			a.currentView = ViewForm
		}
		return a, nil

	case a.keymap.Edit.Key:
		return a, a.startEdit()

	case a.keymap.Delete.Key:
		a.startDelete()
		return a, nil

	case a.keymap.Yank.Key:
		if id, ok := a.selectedID(); ok {
			return a, yankID(id)
		}
		return a, nil

	case a.keymap.Approve.Key:
		switch a.currentTab {
		case TabUsers:
			if u := a.usersGrid.SelectedItem(); u != nil {
				return a, a.toggleUserActive(*u)
			}
		case TabRegistrations:
			if r := a.regsGrid.SelectedItem(); r != nil {
				return a, a.setRegistrationStatus(r.ID, api.RegistrationApproved)
			}
		}
		return a, nil

	case a.keymap.Reject.Key:
		if a.currentTab == TabRegistrations {
			if r := a.regsGrid.SelectedItem(); r != nil {
				return a, a.setRegistrationStatus(r.ID, api.RegistrationRejected)
			}
		}
		return a, nil

	case a.keymap.Attend.Key:
		if a.currentTab == TabRegistrations {
			if r := a.regsGrid.SelectedItem(); r != nil {
				return a, a.setRegistrationStatus(r.ID, api.RegistrationAttended)
			}
		}
		return a, nil
	}

	// Everything else is grid navigation.
	return a, a.updateFocusedGrid(msg)
}

// updateFocusedGrid forwards a message to the active tab's grid.
func (a *App) updateFocusedGrid(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch a.currentTab {
	case TabUsers:
		_, cmd = a.usersGrid.Update(msg)
	case TabBadges:
		_, cmd = a.badgesGrid.Update(msg)
	case TabRegistrations:
		_, cmd = a.regsGrid.Update(msg)
	default:
		_, cmd = a.eventsGrid.Update(msg)
	}
	return cmd
}

// selectedID returns the ID of the selected entity on the current tab.
func (a *App) selectedID() (int, bool) {
	switch a.currentTab {
	case TabUsers:
		if u := a.usersGrid.SelectedItem(); u != nil {
			return u.ID, true
		}
	case TabBadges:
		if b := a.badgesGrid.SelectedItem(); b != nil {
			return b.ID, true
		}
	case TabRegistrations:
		if r := a.regsGrid.SelectedItem(); r != nil {
			return r.ID, true
		}
	default:
		if e := a.eventsGrid.SelectedItem(); e != nil {
			return e.ID, true
		}
	}
	return 0, false
}

// startEdit opens the edit form for the selected entity, where supported.
func (a *App) startEdit() tea.Cmd {
	switch a.currentTab {
	case TabEvents:
		if e := a.eventsGrid.SelectedItem(); e != nil {
			a.form = NewEventForm(e)
			a.currentView = ViewForm
		}
	case TabBadges:
		if b := a.badgesGrid.SelectedItem(); b != nil {
			a.form = NewBadgeForm(b)
			a.currentView = ViewForm
		}
	case TabUsers:
		if u := a.usersGrid.SelectedItem(); u != nil {
			return a.toggleUserActive(*u)
		}
	}
	return nil
}

// startDelete arms the delete confirmation for the selected entity.
func (a *App) startDelete() {
	id, ok := a.selectedID()
	if !ok {
		return
	}

	label := tabNames[a.currentTab] + " #" + strconv.Itoa(id)
	switch a.currentTab {
	case TabEvents:
		if e := a.eventsGrid.SelectedItem(); e != nil {
			label = "event " + e.Title
		}
	case TabUsers:
		if u := a.usersGrid.SelectedItem(); u != nil {
			label = "user " + u.DisplayName()
		}
	case TabBadges:
		if b := a.badgesGrid.SelectedItem(); b != nil {
			label = "badge type " + b.Name
		}
	case TabRegistrations:
		label = "registration #" + strconv.Itoa(id)
	}

	a.confirmDelete = &pendingDelete{tab: a.currentTab, id: id, label: label}
	a.currentView = ViewConfirmDelete
}

// openDetail fills the detail component from the selected entity.
// Returns false when nothing is selected.
func (a *App) openDetail() bool {
	switch a.currentTab {
	case TabEvents:
		e := a.eventsGrid.SelectedItem()
		if e == nil {
			return false
		}
		a.detailComp.SetContent(e.Title, eventFields(e))
	case TabUsers:
		u := a.usersGrid.SelectedItem()
		if u == nil {
			return false
		}
		a.detailComp.SetContent(u.DisplayName(), userFields(u))
	case TabBadges:
		b := a.badgesGrid.SelectedItem()
		if b == nil {
			return false
		}
		a.detailComp.SetContent(b.Name, badgeFields(b))
	case TabRegistrations:
		r := a.regsGrid.SelectedItem()
		if r == nil {
			return false
		}
		a.detailComp.SetContent("Registration #"+strconv.Itoa(r.ID), registrationFields(r))
	}
	return true
}

func eventFields(e *api.Event) []components.Field {
	active := "yes"
	if !e.IsActive {
		active = "no"
	}
	open := "open"
	if !e.RegistrationOpen {
		open = "closed"
	}
	return []components.Field{
		{Label: "ID", Value: strconv.Itoa(e.ID)},
		{Label: "Type", Value: e.EventType},
		{Label: "Description", Value: e.Description},
		{Label: "Location", Value: e.Location},
		{Label: "Starts", Value: e.StartTime.Local().Format(timeLayout)},
		{Label: "Ends", Value: e.EndTime.Local().Format(timeLayout)},
		{Label: "Registrations", Value: strconv.Itoa(e.RegistrationCount) + " (" + open + ")"},
		{Label: "Max participants", Value: strconv.Itoa(e.MaxParticipants)},
		{Label: "Points reward", Value: strconv.Itoa(e.PointsReward)},
		{Label: "Active", Value: active},
	}
}

func userFields(u *api.User) []components.Field {
	active := "yes"
	if !u.IsActive {
		active = "no"
	}
	role := "member"
	if u.IsSuperuser {
		role = "admin"
	}
	return []components.Field{
		{Label: "ID", Value: strconv.Itoa(u.ID)},
		{Label: "Username", Value: u.Username},
		{Label: "Email", Value: u.Email},
		{Label: "Role", Value: role},
		{Label: "Points", Value: strconv.Itoa(u.Points)},
		{Label: "Active", Value: active},
		{Label: "Joined", Value: u.CreatedAt.Local().Format("Jan 2, 2006")},
	}
}

func badgeFields(b *api.BadgeType) []components.Field {
	return []components.Field{
		{Label: "ID", Value: strconv.Itoa(b.ID)},
		{Label: "Description", Value: b.Description},
		{Label: "Level", Value: b.Level},
		{Label: "Points to earn", Value: strconv.Itoa(b.CriteriaPoints)},
	}
}

func registrationFields(r *api.Registration) []components.Field {
	return []components.Field{
		{Label: "Event", Value: r.EventTitle + " (#" + strconv.Itoa(r.EventID) + ")"},
		{Label: "User", Value: r.UserName + " (#" + strconv.Itoa(r.UserID) + ")"},
		{Label: "Status", Value: r.Status},
		{Label: "Registered", Value: r.RegistrationDate.Local().Format("Jan 2, 2006 15:04")},
	}
}
