package tui

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/kpdgayao/pine-time-tui/internal/api"
	"github.com/kpdgayao/pine-time-tui/internal/tui/styles"
)

// timeLayout is the format used for event times in forms.
const timeLayout = "2006-01-02 15:04"

// formField is one labeled input in an entity form.
type formField struct {
	key      string
	label    string
	input    textinput.Model
	required bool
}

// EntityForm is a create/edit form for events and badge types.
type EntityForm struct {
	title   string
	tab     Tab
	editID  int // 0 means create
	fields  []formField
	focus   int
	errText string
}

func newField(key, label, value, placeholder string, required bool) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = 200
	in.Width = 48
	in.SetValue(value)
	return formField{key: key, label: label, input: in, required: required}
}

// NewEventForm builds a form for creating (e == nil) or editing an event.
func NewEventForm(e *api.Event) *EntityForm {
	f := &EntityForm{title: "New Event", tab: TabEvents}

	var title, desc, etype, loc, start, end, maxP, pts string
	if e != nil {
		f.title = "Edit Event"
		f.editID = e.ID
		title = e.Title
		desc = e.Description
		etype = e.EventType
		loc = e.Location
		start = e.StartTime.Local().Format(timeLayout)
		end = e.EndTime.Local().Format(timeLayout)
		maxP = strconv.Itoa(e.MaxParticipants)
		pts = strconv.Itoa(e.PointsReward)
	}

	f.fields = []formField{
		newField("title", "Title", title, "Trail Run", true),
		newField("description", "Description", desc, "", false),
		newField("event_type", "Type", etype, "sports / workshop / community", false),
		newField("location", "Location", loc, "", false),
		newField("start_time", "Starts", start, timeLayout, true),
		newField("end_time", "Ends", end, timeLayout, true),
		newField("max_participants", "Max participants", maxP, "0 = unlimited", false),
		newField("points_reward", "Points reward", pts, "0", false),
	}
	f.fields[0].input.Focus()
	return f
}

// NewBadgeForm builds a form for creating (b == nil) or editing a badge type.
func NewBadgeForm(b *api.BadgeType) *EntityForm {
	f := &EntityForm{title: "New Badge Type", tab: TabBadges}

	var name, desc, level, pts string
	if b != nil {
		f.title = "Edit Badge Type"
		f.editID = b.ID
		name = b.Name
		desc = b.Description
		level = b.Level
		pts = strconv.Itoa(b.CriteriaPoints)
	}

	f.fields = []formField{
		newField("name", "Name", name, "Early Bird", true),
		newField("description", "Description", desc, "", false),
		newField("level", "Level", level, "bronze / silver / gold", false),
		newField("criteria_points", "Points to earn", pts, "0", false),
	}
	f.fields[0].input.Focus()
	return f
}

// Editing reports whether the form updates an existing entity.
func (f *EntityForm) Editing() bool {
	return f.editID > 0
}

// value returns the trimmed input value for a field key.
func (f *EntityForm) value(key string) string {
	for i := range f.fields {
		if f.fields[i].key == key {
			return strings.TrimSpace(f.fields[i].input.Value())
		}
	}
	return ""
}

// Update routes a message to the focused input and handles field movement.
// Returns submit=true when the form was submitted with ctrl+s or enter on
// the last field.
func (f *EntityForm) Update(msg tea.Msg) (submit bool, cmd tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return false, f.updateFocused(msg)
	}

	switch keyMsg.String() {
	case "ctrl+s":
		return true, nil
	case "tab", "down":
		f.moveFocus(1)
		return false, nil
	case "shift+tab", "up":
		f.moveFocus(-1)
		return false, nil
	case "enter":
		if f.focus == len(f.fields)-1 {
			return true, nil
		}
		f.moveFocus(1)
		return false, nil
	}

	return false, f.updateFocused(msg)
}

func (f *EntityForm) updateFocused(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f *EntityForm) moveFocus(delta int) {
	f.fields[f.focus].input.Blur()
	f.focus += delta
	if f.focus < 0 {
		f.focus = len(f.fields) - 1
	}
	if f.focus >= len(f.fields) {
		f.focus = 0
	}
	f.fields[f.focus].input.Focus()
}

// validate checks required fields and field formats, recording the first
// problem in errText.
func (f *EntityForm) validate() bool {
	f.errText = ""
	for i := range f.fields {
		fld := &f.fields[i]
		val := strings.TrimSpace(fld.input.Value())
		if fld.required && val == "" {
			f.errText = fld.label + " is required"
			return false
		}
	}

	for _, key := range []string{"start_time", "end_time"} {
		if v := f.value(key); v != "" {
			if _, err := time.ParseInLocation(timeLayout, v, time.Local); err != nil {
				f.errText = "Times must look like " + timeLayout
				return false
			}
		}
	}

	for _, key := range []string{"max_participants", "points_reward", "criteria_points"} {
		if v := f.value(key); v != "" {
			if _, err := strconv.Atoi(v); err != nil {
				f.errText = "Numbers only for " + key
				return false
			}
		}
	}

	return true
}

func (f *EntityForm) timeValue(key string) time.Time {
	t, _ := time.ParseInLocation(timeLayout, f.value(key), time.Local)
	return t
}

func (f *EntityForm) intValue(key string) int {
	n, _ := strconv.Atoi(f.value(key))
	return n
}

// submit validates the form and returns the API command to run, or nil
// when validation failed (errText explains why).
func (f *EntityForm) submit(a *App) tea.Cmd {
	if !f.validate() {
		return nil
	}

	if f.tab == TabBadges {
		if f.Editing() {
			name := f.value("name")
			desc := f.value("description")
			level := f.value("level")
			pts := f.intValue("criteria_points")
			return a.updateBadge(f.editID, api.UpdateBadgeTypeRequest{
				Name:           &name,
				Description:    &desc,
				Level:          &level,
				CriteriaPoints: &pts,
			})
		}
		return a.createBadge(api.CreateBadgeTypeRequest{
			Name:           f.value("name"),
			Description:    f.value("description"),
			Level:          f.value("level"),
			CriteriaPoints: f.intValue("criteria_points"),
		})
	}

	if f.Editing() {
		title := f.value("title")
		desc := f.value("description")
		etype := f.value("event_type")
		loc := f.value("location")
		start := f.timeValue("start_time")
		end := f.timeValue("end_time")
		maxP := f.intValue("max_participants")
		pts := f.intValue("points_reward")
		return a.updateEvent(f.editID, api.UpdateEventRequest{
			Title:           &title,
			Description:     &desc,
			EventType:       &etype,
			Location:        &loc,
			StartTime:       &start,
			EndTime:         &end,
			MaxParticipants: &maxP,
			PointsReward:    &pts,
		})
	}
	return a.createEvent(api.CreateEventRequest{
		Title:           f.value("title"),
		Description:     f.value("description"),
		EventType:       f.value("event_type"),
		Location:        f.value("location"),
		StartTime:       f.timeValue("start_time"),
		EndTime:         f.timeValue("end_time"),
		MaxParticipants: f.intValue("max_participants"),
		PointsReward:    f.intValue("points_reward"),
	})
}

// View renders the form.
func (f *EntityForm) View() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render(f.title))
	b.WriteString("\n\n")

	for i := range f.fields {
		label := styles.FormLabel
		if i == f.focus {
			label = styles.FormLabelFocused
		}
		fmt.Fprintf(&b, "%s%s\n", label.Render(f.fields[i].label), f.fields[i].input.View())
	}

	if f.errText != "" {
		b.WriteString("\n" + styles.FormError.Render(f.errText))
	}

	b.WriteString("\n\n")
	b.WriteString(styles.Hints.Render("tab: next field • ctrl+s: save • esc: cancel"))
	return b.String()
}
