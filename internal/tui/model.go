// Package tui provides the terminal user interface for itinera.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/anachung/itinera/internal/advisor"
	"github.com/anachung/itinera/internal/config"
	"github.com/anachung/itinera/internal/llm"
	"github.com/anachung/itinera/internal/schedule"
	"github.com/anachung/itinera/internal/trip"
	"github.com/anachung/itinera/internal/tui/commands"
	"github.com/anachung/itinera/internal/tui/theme"
)

// Mode represents the current interaction mode.
type Mode int

const (
	ModeNormal  Mode = iota
	ModeMove         // Reordering an activity within its day
	ModeInput        // Typing into the prompt (add, ask, packing)
	ModeAnswer       // Viewing an assistant answer or alternatives
	ModePacking      // Browsing the packing checklist
)

// inputKind identifies what the prompt input is for.
type inputKind int

const (
	inputAdd inputKind = iota
	inputAsk
	inputPackingItem
)

// Model is the main TUI model.
type Model struct {
	// Dependencies
	engine *schedule.Engine
	repo   trip.Repository
	config *config.Config
	adv    *advisor.Advisor // created on demand

	// Theme and styles
	theme  *theme.Theme
	styles *Styles

	// State
	mode   Mode
	cursor int           // Selected activity on the active day
	drag   schedule.Drag // In-progress reorder gesture

	// Prompt state
	inputFor inputKind
	input    textinput.Model

	// Packing state
	packing    []trip.PackingItem
	packCursor int

	// Answer state
	answerTitle string
	answerBody  string

	// Terminal dimensions
	width  int
	height int

	// Messages
	busy       bool
	statusMsg  string
	statusErr  bool
	statusTime time.Time
}

// New creates a new TUI model over a loaded scheduling engine.
func New(eng *schedule.Engine, repo trip.Repository, cfg *config.Config) *Model {
	ti := textinput.New()
	ti.CharLimit = 512
	ti.Width = 60

	// Load theme from config
	t, err := theme.Load(cfg.UI.Theme)
	if err != nil {
		// Fallback to mocha on error
		t, _ = theme.Load("mocha")
	}

	return &Model{
		engine: eng,
		repo:   repo,
		config: cfg,
		theme:  t,
		styles: NewStyles(t),
		input:  ti,
	}
}

// Init initializes the model.
func (m Model) Init() tea.Cmd {
	return commands.LoadPacking(m.repo)
}

// ensureAdvisor builds the LLM-backed advisor on first use.
func (m *Model) ensureAdvisor() error {
	if m.adv != nil {
		return nil
	}
	client, err := llm.NewClient(m.config.LLM.Provider, m.config.LLM.Model, m.config.LLM.BaseURL)
	if err != nil {
		return err
	}
	m.adv = advisor.New(client, m.engine, m.repo)
	return nil
}

// activeDay returns the day under the cursor. Never nil for a seeded trip.
func (m Model) activeDay() *trip.DaySchedule {
	return m.engine.ActiveDay()
}

// clampCursor keeps the cursor inside the active day's activity list.
func (m *Model) clampCursor() {
	day := m.activeDay()
	if day == nil || len(day.Activities) == 0 {
		m.cursor = 0
		return
	}
	if m.cursor >= len(day.Activities) {
		m.cursor = len(day.Activities) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// setStatus records a transient status message.
func (m *Model) setStatus(msg string, isErr bool) {
	m.statusMsg = msg
	m.statusErr = isErr
	m.statusTime = time.Now()
}

// Run starts the TUI.
func Run(eng *schedule.Engine, repo trip.Repository, cfg *config.Config) error {
	return RunWithDebug(eng, repo, cfg, false)
}

// RunWithDebug starts the TUI with optional debug logging.
func RunWithDebug(eng *schedule.Engine, repo trip.Repository, cfg *config.Config, debug bool) error {
	if err := InitDebugLogger(debug); err != nil {
		return err
	}
	defer CloseDebugLogger()

	p := tea.NewProgram(*New(eng, repo, cfg), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
