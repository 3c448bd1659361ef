package ui

import (
	"errors"
	"fmt"
	"log"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"peoplepicker/internal/config"
	"peoplepicker/internal/domain"
	"peoplepicker/internal/eventbus"
	"peoplepicker/internal/logic"
	"peoplepicker/internal/ui/autocomplete"
	"peoplepicker/internal/ui/views"
)

// Layout of the frame: Main's padding, then the two header lines and a
// blank line, then the picker
const (
	paddingTop   = 1
	paddingLeft  = 2
	headerHeight = 3
	pickerTop    = paddingTop + headerHeight
)

// ErrUnknownPerson is returned by Preselect when no person matches
var ErrUnknownPerson = errors.New("unknown person")

// Model represents the UI state
type Model struct {
	bus    eventbus.EventBus
	config *config.Config
	store  logic.PersonStore

	width  int
	height int
	help   help.Model
	keys   KeyMap
	styles *views.Styles

	picker       *autocomplete.Model
	header       *views.HeaderRenderer
	helpRenderer *HelpRenderer
	helpOps      *HelpOps

	selected *domain.Person // last person chosen in the picker
	startCmd tea.Cmd        // messages from a selection made before Init
}

// NewModel creates a new UI model
func NewModel(bus eventbus.EventBus, cfg *config.Config, store logic.PersonStore) *Model {
	styles := views.NewStyles()

	m := &Model{
		bus:          bus,
		config:       cfg,
		store:        store,
		help:         help.New(),
		keys:         DefaultKeyMap,
		styles:       styles,
		header:       views.NewHeaderRenderer(styles),
		helpRenderer: NewHelpRenderer(),
	}

	m.picker = autocomplete.New(store, autocomplete.Options{
		Delay:       cfg.Delay(),
		Prompt:      cfg.UISettings.Prompt,
		Placeholder: cfg.UISettings.Placeholder,
		MaxVisible:  cfg.UISettings.MaxVisible,
		OnSelect:    m.setSelectedPerson,
		Styles:      styles,
	})

	return m
}

// SetProgram sets the program reference for terminal management
func (m *Model) SetProgram(p *tea.Program) {
	m.helpOps = NewHelpOps(p)
}

// Selected returns the last chosen person, or nil
func (m *Model) Selected() *domain.Person {
	return m.selected
}

// Preselect chooses a person before the program starts. ref is a slug, or
// else an exact name, in which case the first person with that name wins.
func (m *Model) Preselect(ref string) error {
	p, ok := m.store.BySlug(ref)
	if !ok {
		p, ok = m.store.ByName(ref)
	}
	if !ok {
		return fmt.Errorf("%w: no slug or name %q", ErrUnknownPerson, ref)
	}
	m.startCmd = m.picker.Select(p)
	return nil
}

// setSelectedPerson is the picker's selection callback
func (m *Model) setSelectedPerson(p domain.Person) {
	m.selected = &p
	if m.bus != nil {
		m.bus.Publish(eventbus.PersonSelectedEvent{Person: p})
	}
}

// Init returns an initial command
func (m *Model) Init() tea.Cmd {
	return tea.Batch(m.picker.Init(), m.startCmd)
}

// Update handles messages
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		m.picker.SetWidth(msg.Width - 2*paddingLeft)
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Help):
			return m, m.showHelpPager()
		}
		return m, m.picker.Update(msg)

	case tea.MouseMsg:
		// Translate to picker coordinates
		msg.X -= paddingLeft
		msg.Y -= pickerTop
		return m, m.picker.Update(msg)

	case autocomplete.QueryAppliedMsg:
		if m.bus != nil {
			m.bus.Publish(eventbus.QueryAppliedEvent{Query: msg.Query, Matches: msg.Matches})
		}
		return m, nil

	case autocomplete.SelectedMsg:
		log.Printf("Selected %s (%s)", msg.Person.Name, msg.Person.Slug)
		return m, nil

	case helpPagerMsg:
		if msg.err != nil {
			log.Printf("Help pager failed: %v", msg.err)
		}
		return m, nil
	}

	// Debounce timers and cursor blinks belong to the picker
	return m, m.picker.Update(msg)
}

// showHelpPager returns a command that shows the key reference in ov
func (m *Model) showHelpPager() tea.Cmd {
	content := m.helpRenderer.RenderHelpContent(m.config.Delay())
	ops := m.helpOps
	return func() tea.Msg {
		return helpPagerMsg{err: ops.ShowHelpInPager(content)}
	}
}

// View renders the UI
func (m *Model) View() string {
	if m.width == 0 {
		return "Loading..."
	}

	var content strings.Builder
	content.WriteString(m.header.Render(m.selected))
	content.WriteString("\n\n")
	content.WriteString(m.picker.View())

	helpText := m.help.View(helpKeys{picker: m.picker.KeyMap(), app: m.keys})

	// Push the help bar to the bottom of the screen
	currentLines := strings.Count(content.String(), "\n") + 1
	availableLines := m.height - 2*paddingTop
	if padding := availableLines - currentLines - 1; padding > 0 {
		content.WriteString(strings.Repeat("\n", padding))
	}
	content.WriteString("\n")
	content.WriteString(m.styles.Help.Render(helpText))

	return m.styles.Main.Render(content.String())
}
