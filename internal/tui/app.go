package tui

import (
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/kpdgayao/pine-time-tui/internal/api"
	"github.com/kpdgayao/pine-time-tui/internal/config"
	"github.com/kpdgayao/pine-time-tui/internal/tui/components"
	"github.com/kpdgayao/pine-time-tui/internal/tui/gridlist"
	"github.com/kpdgayao/pine-time-tui/internal/tui/styles"
)

// View represents the current view/screen.
type View int

const (
	ViewGrid View = iota // The grid list of the current tab
	ViewDetail
	ViewForm
	ViewConfirmDelete
	ViewHelp
)

// Tab represents a top-level resource tab.
type Tab int

const (
	TabEvents Tab = iota
	TabUsers
	TabBadges
	TabRegistrations
)

var tabNames = map[Tab]string{
	TabEvents:        "Events",
	TabUsers:         "Users",
	TabBadges:        "Badges",
	TabRegistrations: "Registrations",
}

// Cell geometry in terminal rows: a bordered card with three content lines.
const (
	cellHeight   = 5
	cellGap      = 1
	cellOverscan = 6
	// End-reached threshold: about two rows from the bottom.
	endThreshold = 2 * (cellHeight + cellGap)
)

// pendingDelete tracks a delete awaiting confirmation.
type pendingDelete struct {
	tab   Tab
	id    int
	label string
}

// App is the main Bubble Tea model for the application.
type App struct {
	// Dependencies
	client *api.Client
	config *config.Config
	log    zerolog.Logger

	// View state
	currentView  View
	previousView View
	currentTab   Tab

	// Grids, one per resource
	eventsGrid *gridlist.Model[api.Event]
	usersGrid  *gridlist.Model[api.User]
	badgesGrid *gridlist.Model[api.BadgeType]
	regsGrid   *gridlist.Model[api.Registration]

	// Pagination state per tab
	pageLoaded  map[Tab]int
	hasMore     map[Tab]bool
	loadingMore map[Tab]bool

	// Search state
	searchInput textinput.Model
	isSearching bool
	searchQuery string

	// Form state (create/edit for events and badge types)
	form *EntityForm

	// Delete confirmation
	confirmDelete *pendingDelete

	// Registration watch: pending count from the previous load, for
	// desktop notifications. -1 until the first load.
	knownPending int

	// UI state
	spinner      spinner.Model
	loadsPending int
	err          error
	statusMsg    string
	width        int
	height       int
	showHints    bool
	keymap       Keymap

	// Components
	helpComp   *components.HelpModel
	detailComp *components.DetailModel
}

// NewApp creates a new App instance.
func NewApp(client *api.Client, cfg *config.Config, log zerolog.Logger, initialTab string) *App {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = styles.Spinner

	searchInput := textinput.New()
	searchInput.Placeholder = "Search..."
	searchInput.CharLimit = 100
	searchInput.Width = 40

	layout := gridLayout(cfg.UI.Columns)

	app := &App{
		client:       client,
		config:       cfg,
		log:          log,
		currentView:  ViewGrid,
		currentTab:   TabEvents,
		pageLoaded:   make(map[Tab]int),
		hasMore:      make(map[Tab]bool),
		loadingMore:  make(map[Tab]bool),
		searchInput:  searchInput,
		knownPending: -1,
		spinner:      s,
		showHints:    true,
		keymap:       DefaultKeymap(),
		helpComp:     components.NewHelp(),
		detailComp:   components.NewDetail(),
	}

	app.eventsGrid = gridlist.New[api.Event](renderEventCell, layout)
	app.eventsGrid.SetKeyFunc(func(e api.Event, _ int) string { return itoaKey(e.ID) })

	app.usersGrid = gridlist.New[api.User](renderUserCell, layout)
	app.usersGrid.SetKeyFunc(func(u api.User, _ int) string { return itoaKey(u.ID) })

	// Badges and registrations read better in a single column.
	listLayout := layout
	listLayout.Columns = gridlist.Columns{XS: 1, SM: 1, MD: 1, LG: 2, XL: 2}
	app.badgesGrid = gridlist.New[api.BadgeType](renderBadgeCell, listLayout)
	app.badgesGrid.SetKeyFunc(func(b api.BadgeType, _ int) string { return itoaKey(b.ID) })

	app.regsGrid = gridlist.New[api.Registration](renderRegistrationCell, listLayout)
	app.regsGrid.SetKeyFunc(func(r api.Registration, _ int) string { return itoaKey(r.ID) })

	app.eventsGrid.Focus()
	app.helpComp.SetItems(app.keymap.HelpItems())

	switch initialTab {
	case "users":
		app.setTab(TabUsers)
	case "badges":
		app.setTab(TabBadges)
	case "registrations":
		app.setTab(TabRegistrations)
	}

	return app
}

// gridLayout builds the shared grid geometry from the config overrides.
func gridLayout(cols config.ColumnsConfig) gridlist.Layout {
	return gridlist.Layout{
		ItemHeight:   cellHeight,
		Gap:          cellGap,
		Overscan:     cellOverscan,
		EndThreshold: endThreshold,
		Columns: gridlist.Columns{
			XS: cols.XS,
			SM: cols.SM,
			MD: cols.MD,
			LG: cols.LG,
			XL: cols.XL,
		},
	}
}

// Init implements tea.Model.
func (a *App) Init() tea.Cmd {
	a.loadsPending = 4
	return tea.Batch(
		a.spinner.Tick,
		a.loadEvents(1, "", true),
		a.loadUsers(1, "", true),
		a.loadBadges(1, true),
		a.loadRegistrations(1, true),
	)
}

// setTab switches the active resource tab and moves grid focus.
func (a *App) setTab(tab Tab) {
	a.focusedGrid().Blur()
	a.currentTab = tab
	a.currentView = ViewGrid
	a.searchQuery = ""
	a.focusedGrid().Focus()
}

// gridFor returns the grid backing a tab as a common interface for sizing
// and focus handling.
type grid interface {
	SetSize(width, height int)
	Focus()
	Blur()
	Focused() bool
	Len() int
	View() string
}

func (a *App) focusedGrid() grid {
	switch a.currentTab {
	case TabUsers:
		return a.usersGrid
	case TabBadges:
		return a.badgesGrid
	case TabRegistrations:
		return a.regsGrid
	default:
		return a.eventsGrid
	}
}

// Message types
type errMsg struct{ err error }
type statusMsg struct{ msg string }

type eventsLoadedMsg struct {
	page    api.Page[api.Event]
	replace bool
}

type usersLoadedMsg struct {
	page    api.Page[api.User]
	replace bool
}

type badgesLoadedMsg struct {
	page    api.Page[api.BadgeType]
	replace bool
}

type registrationsLoadedMsg struct {
	page    api.Page[api.Registration]
	replace bool
}

type eventSavedMsg struct {
	event   *api.Event
	created bool
}

type badgeSavedMsg struct {
	badge   *api.BadgeType
	created bool
}

type userUpdatedMsg struct{ user *api.User }

type registrationUpdatedMsg struct{ reg *api.Registration }

type entityDeletedMsg struct {
	tab Tab
	id  int
}
