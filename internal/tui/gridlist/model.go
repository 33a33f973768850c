package gridlist

import (
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// RenderFunc renders one item into a cell of the given width. The selected
// flag marks the cell under the cursor.
type RenderFunc[T any] func(item T, index int, width int, selected bool) string

// KeyFunc derives a stable key for an item, used to restore the selection
// when the collection is replaced. The default keys by position.
type KeyFunc[T any] func(item T, index int) string

// EndReachedMsg is emitted when the scroll position nears the bottom of the
// content. Hosts use it to fetch the next page. Emission is level-triggered,
// so hosts must guard against acting on it repeatedly.
type EndReachedMsg struct{}

// Model is a windowed grid list of items of type T. It never inspects the
// items beyond handing them to the render and key functions.
type Model[T any] struct {
	items  []T
	render RenderFunc[T]
	key    KeyFunc[T]
	layout Layout

	width, height int
	scrollOffset  int
	selected      int
	focused       bool
}

// New creates a grid list with the given render function and layout.
func New[T any](render RenderFunc[T], layout Layout) *Model[T] {
	return &Model[T]{
		render: render,
		key:    func(_ T, index int) string { return "#" + strconv.Itoa(index) },
		layout: layout,
	}
}

// SetKeyFunc sets the key extraction function.
func (m *Model[T]) SetKeyFunc(key KeyFunc[T]) {
	if key != nil {
		m.key = key
	}
}

// Init implements tea.Model.
func (m *Model[T]) Init() tea.Cmd {
	return nil
}

// SetSize updates the viewport dimensions and re-clamps the scroll offset.
func (m *Model[T]) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.clampScroll()
}

// Focus sets keyboard focus on the grid.
func (m *Model[T]) Focus() { m.focused = true }

// Blur removes keyboard focus.
func (m *Model[T]) Blur() { m.focused = false }

// Focused returns the focus state.
func (m *Model[T]) Focused() bool { return m.focused }

// Items returns the backing item slice.
func (m *Model[T]) Items() []T { return m.items }

// Len returns the item count.
func (m *Model[T]) Len() int { return len(m.items) }

// Selected returns the selected item index.
func (m *Model[T]) Selected() int { return m.selected }

// SelectedItem returns the item under the cursor, or nil when empty.
func (m *Model[T]) SelectedItem() *T {
	if m.selected < 0 || m.selected >= len(m.items) {
		return nil
	}
	return &m.items[m.selected]
}

// ScrollOffset returns the current scroll offset in layout units.
func (m *Model[T]) ScrollOffset() int { return m.scrollOffset }

// Layout returns the grid geometry.
func (m *Model[T]) Layout() Layout { return m.layout }

// SetItems replaces the collection. The selection is restored to the item
// with the same key when it survives the replacement, otherwise clamped.
func (m *Model[T]) SetItems(items []T) tea.Cmd {
	var prevKey string
	if it := m.SelectedItem(); it != nil {
		prevKey = m.key(*it, m.selected)
	}

	m.items = items

	if prevKey != "" {
		for i := range items {
			if m.key(items[i], i) == prevKey {
				m.selected = i
				prevKey = ""
				break
			}
		}
	}
	if m.selected >= len(items) {
		m.selected = 0
	}

	m.ensureSelectedVisible()
	return m.afterRecompute()
}

// Append extends the collection, keeping selection and scroll position.
// Used by hosts when a further page of data arrives.
func (m *Model[T]) Append(items []T) tea.Cmd {
	m.items = append(m.items, items...)
	m.clampScroll()
	return m.afterRecompute()
}

// Update implements tea.Model for keyboard navigation.
func (m *Model[T]) Update(msg tea.Msg) (*Model[T], tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok || !m.focused {
		return m, nil
	}
	return m, m.handleKey(keyMsg)
}

func (m *Model[T]) handleKey(msg tea.KeyMsg) tea.Cmd {
	if len(m.items) == 0 {
		return nil
	}

	cols := m.cols()
	switch msg.String() {
	case "j", "down":
		m.moveSelection(cols)
	case "k", "up":
		m.moveSelection(-cols)
	case "h", "left":
		m.moveSelection(-1)
	case "l", "right":
		m.moveSelection(1)
	case "g", "home":
		m.selected = 0
		m.ensureSelectedVisible()
	case "G", "end":
		m.selected = len(m.items) - 1
		m.ensureSelectedVisible()
	case "ctrl+d", "pgdown":
		m.moveSelection(cols * m.pageRows())
	case "ctrl+u", "pgup":
		m.moveSelection(-cols * m.pageRows())
	default:
		return nil
	}
	return m.afterRecompute()
}

// pageRows returns how many full rows fit one viewport.
func (m *Model[T]) pageRows() int {
	rows := m.height / m.layout.RowHeight()
	if rows < 1 {
		rows = 1
	}
	return rows
}

func (m *Model[T]) moveSelection(delta int) {
	m.selected += delta
	if m.selected < 0 {
		m.selected = 0
	}
	if m.selected >= len(m.items) {
		m.selected = len(m.items) - 1
	}
	m.ensureSelectedVisible()
}

// cols resolves the current column count from the measured width.
func (m *Model[T]) cols() int {
	return m.layout.ColumnsFor(m.width)
}

// ensureSelectedVisible scrolls so the selected item's row lies fully
// inside the viewport. Offsets snap to row tops.
func (m *Model[T]) ensureSelectedVisible() {
	if len(m.items) == 0 {
		m.scrollOffset = 0
		return
	}

	_, _, top, _ := m.layout.Position(m.selected, m.cols(), 0)
	if top < m.scrollOffset {
		m.scrollOffset = top
	} else if bottom := top + m.layout.ItemHeight; bottom > m.scrollOffset+m.height {
		m.scrollOffset = bottom - m.height
	}
	m.clampScroll()
}

func (m *Model[T]) clampScroll() {
	max := m.layout.TotalHeight(len(m.items), m.cols()) - m.height
	if max < 0 {
		max = 0
	}
	if m.scrollOffset > max {
		m.scrollOffset = max
	}
	if m.scrollOffset < 0 {
		m.scrollOffset = 0
	}
}

// afterRecompute emits EndReachedMsg while the scroll position satisfies
// the end-reached predicate. Deduplication is the host's responsibility.
func (m *Model[T]) afterRecompute() tea.Cmd {
	total := m.layout.TotalHeight(len(m.items), m.cols())
	if total == 0 {
		return nil
	}
	if m.layout.EndReached(m.scrollOffset, m.height, total) {
		return func() tea.Msg { return EndReachedMsg{} }
	}
	return nil
}

// VisibleRange returns the current windowed index range.
func (m *Model[T]) VisibleRange() Range {
	return m.layout.VisibleRange(m.scrollOffset, m.height, len(m.items), m.cols())
}

// View renders only the items in the visible range, laid out in rows of
// cols cells, and trims the result to the viewport height.
func (m *Model[T]) View() string {
	if len(m.items) == 0 || m.height <= 0 {
		return ""
	}

	cols := m.cols()
	itemWidth := m.layout.ItemWidth(m.width, cols)
	if itemWidth == 0 {
		itemWidth = m.width
	}
	r := m.VisibleRange()

	gapRow := strings.Repeat("\n", m.layout.Gap)
	hGap := strings.Repeat(" ", m.layout.Gap)

	var rows []string
	for i := r.Start; i < r.End; {
		rowIdx := i / cols
		cells := make([]string, 0, cols)
		for ; i < r.End && i/cols == rowIdx; i++ {
			cell := m.render(m.items[i], i, itemWidth, i == m.selected)
			cells = append(cells, lipgloss.Place(itemWidth, m.layout.ItemHeight,
				lipgloss.Left, lipgloss.Top, cell))
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, interleave(cells, hGap)...))
	}

	content := strings.Join(rows, "\n"+gapRow)

	// The first rendered row may start above the viewport when overscan
	// pulled in earlier items; cut the lines outside the viewport.
	firstRow := r.Start / cols
	topOffset := m.scrollOffset - firstRow*m.layout.RowHeight()
	lines := strings.Split(content, "\n")
	if topOffset > 0 && topOffset < len(lines) {
		lines = lines[topOffset:]
	}
	if len(lines) > m.height {
		lines = lines[:m.height]
	}
	return strings.Join(lines, "\n")
}

func interleave(cells []string, sep string) []string {
	if len(cells) <= 1 || sep == "" {
		return cells
	}
	out := make([]string, 0, len(cells)*2-1)
	for i, c := range cells {
		if i > 0 {
			out = append(out, sep)
		}
		out = append(out, c)
	}
	return out
}
