// Package autocomplete implements a text field that suggests people by
// name. Filtering is debounced: the visible text follows every keystroke,
// while the query used to filter only changes once typing pauses for the
// configured delay. Choosing a suggestion with Enter or a mouse click
// bypasses the delay and reports the person to the caller.
package autocomplete

import (
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"

	"peoplepicker/internal/domain"
	"peoplepicker/internal/logic"
	uilogic "peoplepicker/internal/ui/logic"
	"peoplepicker/internal/ui/views"
)

// InputRow is the line, relative to the top of the picker view, that
// holds the text field. Suggestion i of the visible window is drawn on
// line InputRow+1+i.
const InputRow = 0

// DefaultPrompt is drawn in front of the text field
const DefaultPrompt = "› "

// Options configures a picker
type Options struct {
	Delay       time.Duration
	Prompt      string
	Placeholder string
	MaxVisible  int
	OnSelect    func(domain.Person) // called synchronously on selection
	Styles      *views.Styles
	KeyMap      *KeyMap
}

// Model is the picker state. It must only be used from the Bubble Tea
// event loop.
type Model struct {
	filter   *uilogic.SearchFilter
	nav      *uilogic.Navigator
	renderer *views.PickerRenderer
	keys     KeyMap
	input    textinput.Model
	onSelect func(domain.Person)
	delay    time.Duration
	width    int

	applied string          // debounced query used for filtering
	matches []domain.Person // people matching applied, in directory order
	open    bool            // dropdown visible
	seq     int             // latest debounce generation
}

// New creates a picker over the people in store
func New(store logic.PersonStore, opts Options) *Model {
	styles := opts.Styles
	if styles == nil {
		styles = views.NewStyles()
	}
	keys := DefaultKeyMap
	if opts.KeyMap != nil {
		keys = *opts.KeyMap
	}
	maxVisible := opts.MaxVisible
	if maxVisible < 1 {
		maxVisible = 8
	}

	prompt := opts.Prompt
	if prompt == "" {
		prompt = DefaultPrompt
	}

	ti := textinput.New()
	ti.Prompt = prompt
	ti.Placeholder = opts.Placeholder
	ti.PromptStyle = styles.Prompt
	ti.PlaceholderStyle = styles.Placeholder
	ti.Focus()

	m := &Model{
		filter:   uilogic.NewSearchFilter(store.All()),
		nav:      uilogic.NewNavigator(maxVisible),
		renderer: views.NewPickerRenderer(styles),
		keys:     keys,
		input:    ti,
		onSelect: opts.OnSelect,
		delay:    opts.Delay,
	}
	m.apply("")
	return m
}

// Init starts the cursor blinking
func (m *Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages. Mouse coordinates must be relative to the
// top-left corner of the picker view.
func (m *Model) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case applyQueryMsg:
		if msg.seq != m.seq {
			// Superseded by a later keystroke or a selection
			return nil
		}
		return m.apply(msg.query)

	case tea.WindowSizeMsg:
		m.SetWidth(msg.Width)
		return nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.MouseMsg:
		return m.handleMouse(msg)
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, m.keys.Down):
		m.open = true
		m.nav.MoveDown()
		return nil

	case key.Matches(msg, m.keys.Up):
		if m.open {
			m.nav.MoveUp()
		}
		return nil

	case key.Matches(msg, m.keys.Select):
		if p, ok := m.Highlighted(); ok {
			return m.Select(p)
		}
		return nil

	case key.Matches(msg, m.keys.Close):
		m.open = false
		m.nav.Reset(len(m.matches))
		return nil
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return cmd
	}

	m.open = true
	return tea.Batch(cmd, m.schedule(m.input.Value()))
}

func (m *Model) handleMouse(msg tea.MouseMsg) tea.Cmd {
	if msg.Action != tea.MouseActionPress {
		return nil
	}

	switch msg.Button {
	case tea.MouseButtonLeft:
		if msg.Y == InputRow {
			m.open = true
			return m.input.Focus()
		}
		if p, ok := m.ItemAt(msg.Y); ok {
			return m.Select(p)
		}
	case tea.MouseButtonWheelDown:
		if m.open {
			m.nav.MoveDown()
		}
	case tea.MouseButtonWheelUp:
		if m.open {
			m.nav.MoveUp()
		}
	}
	return nil
}

// schedule starts a new debounce generation for query. Any timer from an
// earlier generation is ignored when it fires.
func (m *Model) schedule(query string) tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.delay, func(time.Time) tea.Msg {
		return applyQueryMsg{seq: seq, query: query}
	})
}

// apply makes query the filter query and recomputes the matches. The
// highlight is kept when the query did not actually change.
func (m *Model) apply(query string) tea.Cmd {
	if query != m.applied || m.matches == nil {
		m.applied = query
		m.matches = m.filter.Filter(query)
		m.nav.Reset(len(m.matches))
	}

	count := len(m.matches)
	return func() tea.Msg {
		return QueryAppliedMsg{Query: query, Matches: count}
	}
}

// Select chooses p: both the visible text and the filter query become
// p's name at once, any pending debounce is dropped, and the selection
// callback runs before Select returns.
func (m *Model) Select(p domain.Person) tea.Cmd {
	m.input.SetValue(p.Name)
	m.input.CursorEnd()
	m.seq++
	applied := m.apply(p.Name)

	if m.onSelect != nil {
		m.onSelect(p)
	}

	return tea.Batch(applied, func() tea.Msg {
		return SelectedMsg{Person: p}
	})
}

// Highlighted returns the suggestion under the keyboard highlight
func (m *Model) Highlighted() (domain.Person, bool) {
	idx := m.nav.GetSelectedIndex()
	if !m.open || idx < 0 || idx >= len(m.matches) {
		return domain.Person{}, false
	}
	return m.matches[idx], true
}

// ItemAt returns the suggestion drawn on line y of the picker view
func (m *Model) ItemAt(y int) (domain.Person, bool) {
	if !m.open || len(m.matches) == 0 || y <= InputRow {
		return domain.Person{}, false
	}
	idx := m.nav.GetViewportOffset() + y - InputRow - 1
	if _, end := m.nav.VisibleRange(); idx >= end {
		return domain.Person{}, false
	}
	return m.matches[idx], true
}

// Value returns the text currently in the field
func (m *Model) Value() string {
	return m.input.Value()
}

// AppliedQuery returns the debounced query the list is filtered by
func (m *Model) AppliedQuery() string {
	return m.applied
}

// Matches returns the people currently listed
func (m *Model) Matches() []domain.Person {
	out := make([]domain.Person, len(m.matches))
	copy(out, m.matches)
	return out
}

// IsOpen reports whether the dropdown is visible
func (m *Model) IsOpen() bool {
	return m.open
}

// KeyMap returns the active key bindings, for help rendering
func (m *Model) KeyMap() KeyMap {
	return m.keys
}

// SetWidth sets the available width in cells
func (m *Model) SetWidth(width int) {
	m.width = width
	m.input.Width = width - ansi.StringWidth(m.input.Prompt) - 1
}

// View renders the text field and, when open, the suggestion list
func (m *Model) View() string {
	start, end := m.nav.VisibleRange()
	selected := m.nav.GetSelectedIndex()

	items := make([]views.PickerItem, 0, end-start)
	for i := start; i < end; i++ {
		p := m.matches[i]
		items = append(items, views.PickerItem{
			Name:      p.Name,
			Positions: m.filter.MatchPositions(p.Name, m.applied),
			Selected:  i == selected,
		})
	}

	return m.renderer.Render(views.PickerState{
		Width: m.width,
		Input: m.input.View(),
		Open:  m.open,
		Empty: len(m.matches) == 0,
		Items: items,
		Above: start,
		Below: len(m.matches) - end,
	})
}
