package tui

import (
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/shapecli/internal/history"
	"github.com/studiowebux/shapecli/internal/keybinds"
	"github.com/studiowebux/shapecli/internal/logging"
	"github.com/studiowebux/shapecli/internal/types"
)

// Mode represents the current TUI mode
type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
	ModeFolder
	ModeModel
	ModeMatch
	ModeHelp
	ModeTenant
)

func (m Mode) String() string {
	switch m {
	case ModeNormal:
		return "Normal"
	case ModeSearch:
		return "Search"
	case ModeFolder:
		return "Folder"
	case ModeModel:
		return "Model"
	case ModeMatch:
		return "Match"
	case ModeHelp:
		return "Help"
	case ModeTenant:
		return "Tenant"
	default:
		return "Unknown"
	}
}

// Model represents the TUI state
type Model struct {
	// Collaborators
	service  Service
	keybinds *keybinds.Registry
	log      *logging.Logger
	searches *history.Manager // may be nil, history is best effort

	// Mode machine
	mode         Mode
	previousMode Mode // mode to restore when leaving Help
	statusMsg    string

	// Overlays
	helpVisible         bool
	helpText            string
	helpView            viewport.Model
	tenantPickerVisible bool

	// Collections
	folders *Selection[types.Folder]
	models  *Selection[types.Model]
	tenants *Selection[types.Tenant]

	// Search field
	searchField *TextField

	// Active selections
	activeTenant string
	activeFolder *types.Folder
	activeModel  *types.Model

	// Terminal dimensions
	width  int
	height int
}

// Options carries the collaborators New needs.
type Options struct {
	Service  Service
	Keybinds *keybinds.Registry
	Log      *logging.Logger
	Searches *history.Manager
	Tenants  []types.Tenant

	// ActiveTenant is the tenant of a restored session. When it names a
	// configured tenant the picker is skipped on startup.
	ActiveTenant string
}

// New creates the TUI model. A restored or sole configured tenant gets its
// session established immediately; otherwise the program starts in Tenant
// mode with the picker open so the user chooses first.
func New(opts Options) *Model {
	log := opts.Log
	if log == nil {
		log = logging.New(logging.LevelInfo, nil)
	}
	kb := opts.Keybinds
	if kb == nil {
		kb = keybinds.NewDefaultRegistry()
	}

	m := &Model{
		service:      opts.Service,
		keybinds:     kb,
		log:          log,
		searches:     opts.Searches,
		mode:         ModeNormal,
		previousMode: ModeNormal,
		statusMsg:    StatusHintNormal,
		helpView:     viewport.New(0, 0),
		folders:      NewSelection[types.Folder](),
		models:       NewSelection[types.Model](),
		tenants:      NewSelection[types.Tenant](),
		searchField:  NewTextField(),
	}
	m.tenants.ReplaceAll(opts.Tenants)

	switch {
	case len(opts.Tenants) == 0:
		m.statusMsg = "No tenants configured"
		m.log.Warnf("no tenants configured, backend calls will fail until one is added")
	case m.selectTenantByName(opts.ActiveTenant):
		m.switchTenant()
	case len(opts.Tenants) == 1:
		m.tenants.First()
		m.switchTenant()
	default:
		m.tenantPickerVisible = true
		m.changeMode(ModeTenant)
	}

	return m
}

// selectTenantByName moves the tenant selection to the named tenant and
// reports whether it is configured.
func (m *Model) selectTenantByName(name string) bool {
	if name == "" {
		return false
	}
	for i, t := range m.tenants.Items() {
		if t.Name == name {
			m.tenants.First()
			for j := 0; j < i; j++ {
				m.tenants.Next()
			}
			return true
		}
	}
	return false
}

// changeMode switches the active mode, remembers the one we came from and
// replaces the status line with the new mode's hint. Entering Help keeps
// the status line untouched; openHelp is used for that transition.
func (m *Model) changeMode(mode Mode) {
	m.previousMode = m.mode
	m.mode = mode
	m.statusMsg = Hint(mode)
	m.log.Debugf("change mode from %s to %s", m.previousMode, m.mode)
}

// openHelp shows the help overlay for the given topic. previousMode keeps
// the mode that was active so any key restores it.
func (m *Model) openHelp(topic Mode) {
	m.previousMode = m.mode
	m.mode = ModeHelp
	m.helpText = HelpBody(topic)
	m.helpView.SetContent(m.helpText)
	m.helpVisible = true
	m.log.Debugf("open help for %s mode", topic)
}

// closeHelp hides the overlay and restores the mode that was active before
// Help. previousMode is left alone so it can never point at Help.
func (m *Model) closeHelp() {
	m.helpVisible = false
	m.mode = m.previousMode
	m.statusMsg = Hint(m.mode)
	m.log.Debugf("close help, back to %s mode", m.mode)
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update handles messages and updates the model
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.KeyMsg:
		cmd = m.handleKeyPress(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.helpView.Width = max(msg.Width-8, 20)
		m.helpView.Height = max(msg.Height-8, 5)
	}

	return m, cmd
}

// Cleanup closes the resources the model owns.
func (m *Model) Cleanup() {
	if m.searches != nil {
		if err := m.searches.Close(); err != nil {
			m.log.Errorf("failed to close history database: %v", err)
		}
	}
}
