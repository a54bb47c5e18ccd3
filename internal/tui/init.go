package tui

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/shapecli/internal/config"
	"github.com/studiowebux/shapecli/internal/history"
	"github.com/studiowebux/shapecli/internal/keybinds"
	"github.com/studiowebux/shapecli/internal/logging"
	"github.com/studiowebux/shapecli/internal/session"
)

// Run wires the collaborators together and starts the TUI. Only event-loop
// failures surface as an error; backend problems stay inside the program as
// status/log output.
func Run() error {
	if err := config.Initialize(); err != nil {
		return err
	}

	log, err := logging.NewFile(logging.ParseLevel(os.Getenv("SHAPECLI_LOG_LEVEL")), config.LogFile)
	if err != nil {
		return err
	}
	defer log.Close()

	backend, err := config.LoadBackend()
	if err != nil {
		return err
	}

	tenants, err := config.LoadTenants()
	if err != nil {
		return err
	}

	registry, err := keybinds.LoadOrDefault(config.KeybindsFile)
	if err != nil {
		return err
	}

	sessions := session.NewManager(backend)
	if err := sessions.Load(); err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}

	// History is best effort: the TUI runs without it
	searches, err := history.NewManager(config.DatabasePath)
	if err != nil {
		log.Warnf("search history disabled: %v", err)
		searches = nil
	}

	m := New(Options{
		Service:      NewService(backend, sessions),
		Keybinds:     registry,
		Log:          log,
		Searches:     searches,
		Tenants:      tenants,
		ActiveTenant: sessions.ActiveTenant(),
	})

	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
