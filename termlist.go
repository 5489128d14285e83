package lazykit

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// RenderFunc produces the single-line representation of an item. The result is
// treated as plain text; styling belongs to Styles.
type RenderFunc[T any] func(item T, index int, selected bool) string

// KeyMap defines the key bindings for a TermList.
type KeyMap struct {
	Up       key.Binding
	Down     key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding
	Quit     key.Binding
}

// DefaultKeyMap returns vi-flavored bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Up:       key.NewBinding(key.WithKeys("up", "k"), key.WithHelp("↑/k", "up")),
		Down:     key.NewBinding(key.WithKeys("down", "j"), key.WithHelp("↓/j", "down")),
		PageUp:   key.NewBinding(key.WithKeys("pgup", "b"), key.WithHelp("pgup/b", "page up")),
		PageDown: key.NewBinding(key.WithKeys("pgdown", "f"), key.WithHelp("pgdn/f", "page down")),
		Home:     key.NewBinding(key.WithKeys("home", "g"), key.WithHelp("g", "top")),
		End:      key.NewBinding(key.WithKeys("end", "G"), key.WithHelp("G", "bottom")),
		Quit:     key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
	}
}

// Styles collects the lipgloss styles a TermList renders with.
type Styles struct {
	Item        lipgloss.Style
	Selected    lipgloss.Style
	Placeholder lipgloss.Style
	Footer      lipgloss.Style
	Scrollbar   lipgloss.Style
}

// DefaultStyles returns a muted default look.
func DefaultStyles() Styles {
	return Styles{
		Item:        lipgloss.NewStyle(),
		Selected:    lipgloss.NewStyle().Reverse(true),
		Placeholder: lipgloss.NewStyle().Faint(true),
		Footer:      lipgloss.NewStyle().Faint(true),
		Scrollbar:   lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}

// TermList is a bubbletea model that renders a lazy list in a terminal. It is the
// reference ListView implementation: keyboard movement reports user scrolls into
// the tracker, and only the tracker's load range is ever materialized. Indices the
// loader has not produced yet render as placeholders.
type TermList[T any] struct {
	list   *WindowedList[T]
	render RenderFunc[T]
	keys   KeyMap
	styles Styles

	placeholderText string

	count  int // total items
	cursor int // selected index
	top    int // first visible index
	width  int
	height int   // list rows, excluding the footer line
	window Range // last materialized range, for the footer
}

// NewTermList creates a list over count items served by loader. The list attaches
// itself as the runtime's view.
func NewTermList[T any](count int, loader Loader[T], render RenderFunc[T]) *TermList[T] {
	m := &TermList[T]{
		list:            NewWindowedList(loader),
		render:          render,
		keys:            DefaultKeyMap(),
		styles:          DefaultStyles(),
		placeholderText: "…",
		count:           max(count, 0),
	}
	m.list.AttachView(m)
	return m
}

// Keys replaces the key bindings.
func (m *TermList[T]) Keys(k KeyMap) *TermList[T] {
	m.keys = k
	return m
}

// Style replaces the render styles.
func (m *TermList[T]) Style(s Styles) *TermList[T] {
	m.styles = s
	return m
}

// PlaceholderText sets the line shown for indices that are not materialized.
func (m *TermList[T]) PlaceholderText(s string) *TermList[T] {
	m.placeholderText = s
	return m
}

// StartAt restores a persisted scroll position. Call before the program starts;
// the view repositions itself on the first layout pass. A position the user has
// navigated away from is never clobbered.
func (m *TermList[T]) StartAt(firstIndex int) *TermList[T] {
	if firstIndex >= 0 {
		_ = m.list.Tracker().ProgrammaticScroll(firstIndex, false, false)
	}
	return m
}

// List returns the underlying runtime, for tests and for hosts that need the
// tracker or the materialized store.
func (m *TermList[T]) List() *WindowedList[T] {
	return m.list
}

// SetCount records a new total item count, for collections that grow as data
// arrives.
func (m *TermList[T]) SetCount(n int) {
	m.count = max(n, 0)
	if m.height > 0 {
		m.moveCursorTo(m.cursor)
	}
}

// JumpTo scrolls programmatically to index, clobbering any user position.
func (m *TermList[T]) JumpTo(index int, animated bool) {
	if err := m.list.ScrollTo(index, animated); err != nil {
		return
	}
	m.syncViewport()
}

// ScrollTo implements ListView. Terminal repositioning is instant; animated is
// accepted for contract compatibility.
func (m *TermList[T]) ScrollTo(index int, animated bool) {
	_ = animated
	if m.count == 0 {
		m.cursor, m.top = 0, 0
		return
	}
	m.cursor = min(max(index, 0), m.count-1)
	m.top = min(m.cursor, max(m.count-m.height, 0))
}

// ApplyWindow implements ListView.
func (m *TermList[T]) ApplyWindow(r Range) {
	m.window = r
}

// Init implements tea.Model.
func (m *TermList[T]) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *TermList[T]) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = max(msg.Height-1, 1)
		m.moveCursorTo(m.cursor)
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Up):
			m.moveCursorTo(m.cursor - 1)
		case key.Matches(msg, m.keys.Down):
			m.moveCursorTo(m.cursor + 1)
		case key.Matches(msg, m.keys.PageUp):
			m.moveCursorTo(m.cursor - m.height)
		case key.Matches(msg, m.keys.PageDown):
			m.moveCursorTo(m.cursor + m.height)
		case key.Matches(msg, m.keys.Home):
			m.moveCursorTo(0)
		case key.Matches(msg, m.keys.End):
			m.moveCursorTo(m.count - 1)
		}
	}
	return m, nil
}

// moveCursorTo clamps the cursor, keeps it visible, and reports the resulting
// viewport as a user scroll before laying out.
func (m *TermList[T]) moveCursorTo(i int) {
	if m.count == 0 {
		m.cursor, m.top = 0, 0
	} else {
		m.cursor = min(max(i, 0), m.count-1)
		if m.cursor < m.top {
			m.top = m.cursor
		}
		if m.cursor >= m.top+m.height {
			m.top = m.cursor - m.height + 1
		}
		m.top = min(max(m.top, 0), max(m.count-m.height, 0))
	}
	m.syncViewport()
}

// syncViewport reports the viewport to the tracker and lays the list out. A
// delivered scroll request repositions top mid-layout, so the settled viewport
// is reported and laid out once more.
func (m *TermList[T]) syncViewport() {
	top := m.top
	m.list.OnUserScroll(m.top, min(m.top+m.height, m.count))
	m.list.Layout(m.count)
	if m.top != top {
		m.list.OnUserScroll(m.top, min(m.top+m.height, m.count))
		m.list.Layout(m.count)
	}
}

// View implements tea.Model.
func (m *TermList[T]) View() string {
	if m.height <= 0 || m.width <= 0 {
		return ""
	}
	content := max(m.width-2, 1)
	lines := make([]string, 0, m.height+1)
	bottom := min(m.top+m.height, m.count)
	for i := m.top; i < bottom; i++ {
		item, ok := m.list.Items().At(i)
		var text string
		st := m.styles.Item
		switch {
		case !ok:
			text = m.placeholderText
			st = m.styles.Placeholder
		case i == m.cursor:
			text = m.render(item, i, true)
			st = m.styles.Selected
		default:
			text = m.render(item, i, false)
		}
		text = runewidth.FillRight(runewidth.Truncate(text, content, "…"), content)
		lines = append(lines, st.Render(text)+" "+m.styles.Scrollbar.Render(m.scrollbarAt(i-m.top)))
	}
	for len(lines) < m.height {
		lines = append(lines, "")
	}
	lines = append(lines, m.styles.Footer.Render(m.footer()))
	return strings.Join(lines, "\n")
}

func (m *TermList[T]) scrollbarAt(row int) string {
	if m.count <= m.height {
		return " "
	}
	thumb := max(m.height*m.height/m.count, 1)
	start := m.top * (m.height - thumb) / max(m.count-m.height, 1)
	if row >= start && row < start+thumb {
		return "█"
	}
	return "│"
}

func (m *TermList[T]) footer() string {
	pos := 0
	if m.count > 0 {
		pos = m.cursor + 1
	}
	return fmt.Sprintf("%d/%d  window %s  held %d", pos, m.count, m.window, m.list.Items().Materialized())
}
