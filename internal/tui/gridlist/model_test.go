package gridlist

import (
	"fmt"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testLayout() Layout {
	return Layout{
		ItemHeight:   3,
		Gap:          1,
		Overscan:     2,
		EndThreshold: 2,
		Columns:      DefaultColumns(),
	}
}

func labels(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("item-%d", i)
	}
	return out
}

func newTestModel(n, width, height int) *Model[string] {
	m := New[string](func(item string, _ int, _ int, selected bool) string {
		if selected {
			return "> " + item
		}
		return item
	}, testLayout())
	m.SetSize(width, height)
	m.SetItems(labels(n))
	m.Focus()
	return m
}

func keyMsg(s string) tea.KeyMsg {
	switch s {
	case "ctrl+d":
		return tea.KeyMsg{Type: tea.KeyCtrlD}
	case "ctrl+u":
		return tea.KeyMsg{Type: tea.KeyCtrlU}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func TestGridNavigation(t *testing.T) {
	// Width 100 resolves to the md tier: 3 columns.
	m := newTestModel(10, 100, 12)
	require.Equal(t, 3, m.cols())

	m.Update(keyMsg("l"))
	assert.Equal(t, 1, m.Selected())

	m.Update(keyMsg("j")) // down one row
	assert.Equal(t, 4, m.Selected())

	m.Update(keyMsg("h"))
	assert.Equal(t, 3, m.Selected())

	m.Update(keyMsg("k")) // up one row
	assert.Equal(t, 0, m.Selected())

	m.Update(keyMsg("k")) // already at top, clamped
	assert.Equal(t, 0, m.Selected())

	m.Update(keyMsg("G"))
	assert.Equal(t, 9, m.Selected())

	m.Update(keyMsg("j")) // past the end, clamped
	assert.Equal(t, 9, m.Selected())

	m.Update(keyMsg("g"))
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.ScrollOffset())
}

func TestGridIgnoresKeysWhenBlurred(t *testing.T) {
	m := newTestModel(10, 100, 12)
	m.Blur()

	m.Update(keyMsg("j"))
	assert.Equal(t, 0, m.Selected())
}

func TestScrollFollowsSelection(t *testing.T) {
	// 1 column (xs width), row height 4, viewport 8 rows => 2 full rows visible.
	m := newTestModel(20, 40, 8)
	require.Equal(t, 1, m.cols())

	assert.Equal(t, 0, m.ScrollOffset())

	// Move below the fold: row 2 bottom is 11, viewport bottom is 8.
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	assert.Equal(t, 2, m.Selected())
	assert.Equal(t, 8+3-8, m.ScrollOffset()) // top(8)+itemHeight(3)-height(8)

	// Moving back up scrolls the viewport back.
	m.Update(keyMsg("k"))
	m.Update(keyMsg("k"))
	assert.Equal(t, 0, m.Selected())
	assert.Equal(t, 0, m.ScrollOffset())

	// Jump to the end: offset clamps to total-height.
	m.Update(keyMsg("G"))
	total := m.Layout().TotalHeight(20, 1)
	assert.Equal(t, total-8, m.ScrollOffset())
}

func TestSetItemsRestoresSelectionByKey(t *testing.T) {
	m := newTestModel(0, 40, 8)
	m.SetKeyFunc(func(item string, _ int) string { return item })

	m.SetItems([]string{"a", "b", "c", "d"})
	m.Update(keyMsg("j"))
	m.Update(keyMsg("j"))
	require.Equal(t, 2, m.Selected()) // "c"

	// "c" moved; selection follows it.
	m.SetItems([]string{"c", "a", "b"})
	assert.Equal(t, 0, m.Selected())

	// Selected item vanished; selection resets within bounds.
	m.SetItems([]string{"x", "y"})
	assert.Less(t, m.Selected(), 2)
}

func TestAppendKeepsSelectionAndScroll(t *testing.T) {
	m := newTestModel(6, 40, 8)
	m.Update(keyMsg("G"))
	sel, off := m.Selected(), m.ScrollOffset()

	m.Append(labels(6))
	assert.Equal(t, 12, m.Len())
	assert.Equal(t, sel, m.Selected())
	assert.Equal(t, off, m.ScrollOffset())
}

func TestEndReachedEmission(t *testing.T) {
	// Tall list, viewport far from the bottom: no emission.
	m := newTestModel(100, 40, 8)
	_, cmd := m.Update(keyMsg("j"))
	_, cmd = m.Update(keyMsg("j"))
	assert.Nil(t, cmd)

	// Jumping to the bottom emits EndReachedMsg.
	_, cmd = m.Update(keyMsg("G"))
	require.NotNil(t, cmd)
	assert.IsType(t, EndReachedMsg{}, cmd())

	// Level-triggered: staying near the bottom keeps emitting.
	_, cmd = m.Update(keyMsg("k"))
	require.NotNil(t, cmd)
	assert.IsType(t, EndReachedMsg{}, cmd())
}

func TestEndReachedShortList(t *testing.T) {
	// Content shorter than the viewport satisfies the predicate immediately;
	// the host's exhaustion check is what stops refetching.
	m := New[string](func(item string, _ int, _ int, _ bool) string { return item }, testLayout())
	m.SetSize(40, 20)
	cmd := m.SetItems(labels(2))
	require.NotNil(t, cmd)
	assert.IsType(t, EndReachedMsg{}, cmd())
}

func TestViewRendersOnlyVisibleRange(t *testing.T) {
	rendered := map[int]bool{}
	m := New[string](func(item string, index int, _ int, _ bool) string {
		rendered[index] = true
		return item
	}, testLayout())
	m.SetSize(40, 8)
	m.SetItems(labels(100))

	view := m.View()
	r := m.VisibleRange()

	assert.Equal(t, r.Len(), len(rendered), "render calls match the visible range")
	for i := range rendered {
		assert.True(t, i >= r.Start && i < r.End)
	}
	assert.Less(t, r.Len(), 100, "windowing renders a strict subset")

	lines := strings.Split(view, "\n")
	assert.LessOrEqual(t, len(lines), 8, "view trimmed to the viewport height")
	assert.Contains(t, view, "item-0")
}

func TestViewEmpty(t *testing.T) {
	m := newTestModel(0, 40, 8)
	assert.Equal(t, "", m.View())
}
