// Package tui provides the terminal user interface for the Pine Time
// admin dashboard.
package tui

import "github.com/kpdgayao/pine-time-tui/internal/tui/components"

// Key represents a key binding.
type Key struct {
	Key  string
	Help string
}

// Keymap contains all key bindings for the application.
type Keymap struct {
	// Navigation
	Up       Key
	Down     Key
	Left     Key
	Right    Key
	Top      Key
	Bottom   Key
	HalfUp   Key
	HalfDown Key

	// Actions
	Select  Key
	Back    Key
	Quit    Key
	Help    Key
	Refresh Key
	Search  Key
	Yank    Key

	// Entity actions
	Add     Key
	Edit    Key
	Delete  Key
	Approve Key
	Reject  Key
	Attend  Key

	// Tabs
	NextTab Key
	PrevTab Key
}

// DefaultKeymap returns the default Vim-style key bindings.
func DefaultKeymap() Keymap {
	return Keymap{
		Up:       Key{Key: "k", Help: "up"},
		Down:     Key{Key: "j", Help: "down"},
		Left:     Key{Key: "h", Help: "left"},
		Right:    Key{Key: "l", Help: "right"},
		Top:      Key{Key: "g", Help: "top"},
		Bottom:   Key{Key: "G", Help: "bottom"},
		HalfUp:   Key{Key: "ctrl+u", Help: "page up"},
		HalfDown: Key{Key: "ctrl+d", Help: "page down"},

		Select:  Key{Key: "enter", Help: "details"},
		Back:    Key{Key: "esc", Help: "back"},
		Quit:    Key{Key: "q", Help: "quit"},
		Help:    Key{Key: "?", Help: "help"},
		Refresh: Key{Key: "r", Help: "refresh"},
		Search:  Key{Key: "/", Help: "search"},
		Yank:    Key{Key: "y", Help: "yank ID"},

		Add:     Key{Key: "a", Help: "add"},
		Edit:    Key{Key: "e", Help: "edit"},
		Delete:  Key{Key: "d", Help: "delete"},
		Approve: Key{Key: "x", Help: "approve / toggle active"},
		Reject:  Key{Key: "X", Help: "reject"},
		Attend:  Key{Key: "v", Help: "mark attended"},

		NextTab: Key{Key: "tab", Help: "next tab"},
		PrevTab: Key{Key: "shift+tab", Help: "previous tab"},
	}
}

// HelpItems returns the help entries grouped by section.
func (k Keymap) HelpItems() []components.HelpItem {
	return []components.HelpItem{
		{Desc: "Navigation"},
		{Key: k.Down.Key + "/" + k.Up.Key, Desc: "move down/up one row"},
		{Key: k.Left.Key + "/" + k.Right.Key, Desc: "move across columns"},
		{Key: k.Top.Key + "/" + k.Bottom.Key, Desc: "go to top/bottom"},
		{Key: k.HalfDown.Key, Desc: "page down"},
		{Key: k.HalfUp.Key, Desc: "page up"},
		{Key: k.NextTab.Key, Desc: "next resource tab"},
		{Key: "1-4", Desc: "jump to events/users/badges/registrations"},

		{Desc: "Actions"},
		{Key: k.Select.Key, Desc: "open details"},
		{Key: k.Add.Key, Desc: "add event or badge type"},
		{Key: k.Edit.Key, Desc: "edit selected"},
		{Key: k.Delete.Key, Desc: "delete selected (confirm)"},
		{Key: k.Approve.Key, Desc: "approve registration / toggle user active"},
		{Key: k.Reject.Key, Desc: "reject registration"},
		{Key: k.Attend.Key, Desc: "mark registration attended"},
		{Key: k.Yank.Key, Desc: "copy selected ID to clipboard"},

		{Desc: "General"},
		{Key: k.Search.Key, Desc: "search"},
		{Key: k.Refresh.Key, Desc: "refresh current tab"},
		{Key: k.Help.Key, Desc: "toggle help"},
		{Key: k.Quit.Key, Desc: "quit"},
	}
}
