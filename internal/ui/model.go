package ui

import (
	"context"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"iconpick/internal/domain"
	"iconpick/internal/ui/grid"
	"iconpick/internal/ui/views"
)

// Model is the bubbletea model wrapping the picker controller
type Model struct {
	ctrl   *Controller
	input  textinput.Model
	styles *views.Styles

	title  string
	status string
	width  int
	height int

	// Set when the user picks an item; the host reads it after Run
	Chosen *domain.IconItem
}

// NewModel creates the picker UI model
func NewModel(ctrl *Controller, title string) Model {
	ti := textinput.New()
	ti.Placeholder = "Search icons and emojis"
	ti.Prompt = "> "
	ti.Focus()

	return Model{
		ctrl:   ctrl,
		input:  ti,
		styles: views.NewStyles(),
		title:  title,
	}
}

// Init implements tea.Model
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case searchDebounceMsg:
		// Superseded by a newer edit while the timer ran
		if msg.generation != m.ctrl.Generation() {
			return m, nil
		}
		if m.ctrl.BlankQuery() {
			m.ctrl.ApplyDefaultListing()
			return m, nil
		}
		return m, m.searchCmd(msg.generation)

	case searchResultMsg:
		m.ctrl.ApplyResult(msg.generation, msg.result)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m.updateInput(msg)
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	nav := m.ctrl.Navigator()

	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Non-blank query clears first; a second escape closes
		if !m.ctrl.BlankQuery() {
			m.input.SetValue("")
			m.ctrl.SetQuery("")
			m.ctrl.ApplyDefaultListing()
			m.focusInput()
			return m, nil
		}
		return m, tea.Quit

	case "shift+tab":
		m.ctrl.CycleTab()
		m.input.SetValue("")
		m.focusInput()
		return m, nil

	case "ctrl+o":
		preset := m.ctrl.CyclePreset()
		m.status = "Color preset: " + preset
		return m, nil

	case "tab", "down":
		if !nav.InGrid() {
			if nav.EnterFromInput() {
				m.input.Blur()
			}
			return m, nil
		}
		dir := grid.DirectionDown
		if msg.String() == "tab" {
			dir = grid.DirectionRight
		}
		return m.moveFocus(dir)

	case "up":
		if nav.InGrid() {
			return m.moveFocus(grid.DirectionUp)
		}

	case "left":
		if nav.InGrid() {
			return m.moveFocus(grid.DirectionLeft)
		}

	case "right":
		if nav.InGrid() {
			return m.moveFocus(grid.DirectionRight)
		}

	case "enter":
		if nav.InGrid() {
			if item := nav.Current(); item != nil {
				if chosen := m.ctrl.Select(*item); chosen != nil {
					m.Chosen = chosen
					return m, tea.Quit
				}
			}
			return m, nil
		}
		if m.ctrl.Tab() == domain.TabText {
			if chosen := m.ctrl.SelectText(); chosen != nil {
				m.Chosen = chosen
				return m, tea.Quit
			}
			return m, nil
		}
	}

	// Typing while the grid has focus hands the keystroke back to the
	// query input
	if nav.InGrid() {
		if len(msg.Runes) == 0 {
			return m, nil
		}
		m.focusInput()
	}

	return m.updateInput(msg)
}

func (m Model) moveFocus(dir grid.Direction) (tea.Model, tea.Cmd) {
	if !m.ctrl.Navigator().Move(dir) {
		// Crossed the grid boundary: focus returns to the query input
		m.focusInput()
	}
	return m, nil
}

func (m *Model) focusInput() {
	m.ctrl.Navigator().FocusInput()
	m.input.Focus()
}

// updateInput forwards a message to the text input and schedules a
// debounced search when the query text changed
func (m Model) updateInput(msg tea.Msg) (tea.Model, tea.Cmd) {
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)

	if value := m.input.Value(); value != before {
		generation := m.ctrl.SetQuery(value)
		debounce := tea.Tick(SearchDebounce, func(time.Time) tea.Msg {
			return searchDebounceMsg{generation: generation}
		})
		return m, tea.Batch(cmd, debounce)
	}
	return m, cmd
}

// searchCmd runs the search off the update loop; the result message
// carries the generation so stale completions are dropped on arrival
func (m Model) searchCmd(generation uint64) tea.Cmd {
	query := m.ctrl.Query()
	tab := m.ctrl.Tab()
	svc := m.ctrl.searchSvc
	return func() tea.Msg {
		result := svc.Search(context.Background(), query, tab)
		return searchResultMsg{generation: generation, result: result}
	}
}

// View implements tea.Model
func (m Model) View() string {
	return views.Render(views.PickerView{
		Title:     m.title,
		InputView: m.input.View(),
		ActiveTab: m.ctrl.Tab(),
		Sections:  m.ctrl.Sections(),
		Nav:       m.ctrl.Navigator(),
		Preset:    m.ctrl.PresetName(),
		Status:    m.status,
	}, m.styles)
}
