package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpdgayao/pine-time-tui/internal/api"
)

func setField(t *testing.T, f *EntityForm, key, value string) {
	t.Helper()
	for i := range f.fields {
		if f.fields[i].key == key {
			f.fields[i].input.SetValue(value)
			return
		}
	}
	t.Fatalf("no field %q in form", key)
}

func TestEventFormValidation(t *testing.T) {
	f := NewEventForm(nil)

	// Empty form: the first required field is reported.
	if f.validate() {
		t.Error("empty form should not validate")
	}
	if f.errText != "Title is required" {
		t.Errorf("expected title error, got %q", f.errText)
	}

	setField(t, f, "title", "Trail Run")
	setField(t, f, "start_time", "not a time")
	setField(t, f, "end_time", "2026-09-01 18:00")
	if f.validate() {
		t.Error("bad start_time should not validate")
	}
	if !strings.Contains(f.errText, timeLayout) {
		t.Errorf("time error should show the expected layout, got %q", f.errText)
	}

	setField(t, f, "start_time", "2026-09-01 16:00")
	setField(t, f, "max_participants", "lots")
	if f.validate() {
		t.Error("non-numeric max_participants should not validate")
	}

	setField(t, f, "max_participants", "25")
	if !f.validate() {
		t.Errorf("form should validate, got error %q", f.errText)
	}
	if f.errText != "" {
		t.Errorf("errText should be cleared on success, got %q", f.errText)
	}
}

func TestEventFormPrefill(t *testing.T) {
	start := time.Date(2026, 9, 1, 16, 0, 0, 0, time.Local)
	e := &api.Event{
		ID:              42,
		Title:           "Trail Run",
		StartTime:       start,
		EndTime:         start.Add(2 * time.Hour),
		MaxParticipants: 25,
		PointsReward:    100,
	}

	f := NewEventForm(e)
	if !f.Editing() {
		t.Error("form for an existing event should be editing")
	}
	if got := f.value("title"); got != "Trail Run" {
		t.Errorf("title = %q, want Trail Run", got)
	}
	if got := f.value("start_time"); got != "2026-09-01 16:00" {
		t.Errorf("start_time = %q", got)
	}
	if got := f.intValue("points_reward"); got != 100 {
		t.Errorf("points_reward = %d, want 100", got)
	}
}

func TestBadgeFormValidation(t *testing.T) {
	f := NewBadgeForm(nil)
	if f.Editing() {
		t.Error("new badge form should not be editing")
	}
	if f.validate() {
		t.Error("empty badge form should not validate")
	}

	setField(t, f, "name", "Early Bird")
	setField(t, f, "criteria_points", "500")
	if !f.validate() {
		t.Errorf("badge form should validate, got error %q", f.errText)
	}
}

func TestFormFocusMovement(t *testing.T) {
	f := NewBadgeForm(nil)

	sendKey := func(key string) (bool, tea.Cmd) {
		msg := tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(key)}
		switch key {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "tab":
			msg = tea.KeyMsg{Type: tea.KeyTab}
		case "shift+tab":
			msg = tea.KeyMsg{Type: tea.KeyShiftTab}
		case "ctrl+s":
			msg = tea.KeyMsg{Type: tea.KeyCtrlS}
		}
		return f.Update(msg)
	}

	if f.focus != 0 {
		t.Fatalf("initial focus = %d, want 0", f.focus)
	}

	sendKey("tab")
	if f.focus != 1 {
		t.Errorf("focus after tab = %d, want 1", f.focus)
	}
	sendKey("shift+tab")
	sendKey("shift+tab")
	if f.focus != len(f.fields)-1 {
		t.Errorf("shift+tab from the top should wrap to %d, got %d", len(f.fields)-1, f.focus)
	}
	if !f.fields[f.focus].input.Focused() {
		t.Error("moved-to field should hold input focus")
	}

	// Enter on the last field submits; ctrl+s submits from anywhere.
	if submit, _ := sendKey("enter"); !submit {
		t.Error("enter on the last field should submit")
	}
	f.moveFocus(1)
	if submit, _ := sendKey("enter"); submit {
		t.Error("enter on a non-final field should not submit")
	}
	if submit, _ := sendKey("ctrl+s"); !submit {
		t.Error("ctrl+s should submit")
	}
}
