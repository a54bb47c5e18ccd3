package tui

import (
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/shapecli/internal/keybinds"
)

// handleKeyPress routes key presses based on current mode
func (m *Model) handleKeyPress(msg tea.KeyMsg) tea.Cmd {
	// Force quit works everywhere, even with the help overlay up
	if action, ok := m.keybinds.Match(keybinds.ContextGlobal, msg.String()); ok && action == keybinds.ActionQuitForce {
		m.Cleanup()
		return tea.Quit
	}

	switch m.mode {
	case ModeNormal:
		return m.handleNormalKeys(msg)
	case ModeSearch:
		return m.handleSearchKeys(msg)
	case ModeFolder:
		return m.handleFolderKeys(msg)
	case ModeModel:
		return m.handleModelKeys(msg)
	case ModeMatch:
		return m.handleMatchKeys(msg)
	case ModeHelp:
		return m.handleHelpKeys(msg)
	case ModeTenant:
		return m.handleTenantKeys(msg)
	}
	return nil
}

func (m *Model) handleNormalKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextNormal, msg.String())
	if !ok {
		m.log.Debugf("unbound key %q in Normal mode", msg.String())
		m.statusMsg = StatusHintNormal
		return nil
	}

	switch action {
	case keybinds.ActionQuit:
		m.Cleanup()
		return tea.Quit
	case keybinds.ActionEnterFolderMode:
		m.changeMode(ModeFolder)
	case keybinds.ActionEnterSearchMode:
		m.changeMode(ModeSearch)
	case keybinds.ActionEnterModelMode:
		m.changeMode(ModeModel)
	case keybinds.ActionEnterMatchMode:
		m.changeMode(ModeMatch)
	case keybinds.ActionOpenHelp:
		m.openHelp(ModeNormal)
	case keybinds.ActionOpenTenantPicker:
		m.tenantPickerVisible = true
		m.changeMode(ModeTenant)
	}
	return nil
}

func (m *Model) handleSearchKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextSearch, msg.String())
	if !ok {
		// Anything unbound is text input for the field
		switch msg.Type {
		case tea.KeyRunes:
			if msg.Alt {
				return nil
			}
			for _, r := range msg.Runes {
				m.searchField.InsertRune(r)
			}
		case tea.KeySpace:
			m.searchField.InsertRune(' ')
		}
		return nil
	}

	switch action {
	case keybinds.ActionClose:
		m.changeMode(ModeNormal)
	case keybinds.ActionSubmit:
		m.submitSearch()
	case keybinds.ActionOpenHelp:
		m.openHelp(ModeSearch)
	case keybinds.ActionTextBackspace:
		m.searchField.Backspace()
	case keybinds.ActionTextDelete:
		m.searchField.Delete()
	case keybinds.ActionTextMoveLeft:
		m.searchField.Left()
	case keybinds.ActionTextMoveRight:
		m.searchField.Right()
	case keybinds.ActionTextMoveHome:
		m.searchField.Home()
	case keybinds.ActionTextMoveEnd:
		m.searchField.End()
	case keybinds.ActionTextClear:
		m.searchField.Clear()
	case keybinds.ActionTextPaste:
		text, err := clipboard.ReadAll()
		if err != nil {
			m.statusMsg = "Failed to read clipboard"
			m.log.Warnf("clipboard read failed: %v", err)
			return nil
		}
		m.searchField.InsertString(text)
	}
	return nil
}

func (m *Model) handleFolderKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextFolder, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionClose:
		m.changeMode(ModeNormal)
	case keybinds.ActionNextPane:
		m.changeMode(ModeModel)
	case keybinds.ActionOpenHelp:
		m.openHelp(ModeFolder)
	case keybinds.ActionReload:
		m.reloadFolders()
	case keybinds.ActionNavigateUp:
		m.folders.Prev()
	case keybinds.ActionNavigateDown:
		m.folders.Next()
	case keybinds.ActionGoToFirst:
		m.folders.First()
	case keybinds.ActionGoToLast:
		m.folders.Last()
	case keybinds.ActionSubmit:
		m.openSelectedFolder()
	}
	return nil
}

func (m *Model) handleModelKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextModel, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionClose:
		m.changeMode(ModeNormal)
	case keybinds.ActionNextPane:
		m.changeMode(ModeFolder)
	case keybinds.ActionOpenHelp:
		m.openHelp(ModeModel)
	case keybinds.ActionCopyUUID:
		m.copyModelUUID()
	case keybinds.ActionNavigateUp:
		m.models.Prev()
	case keybinds.ActionNavigateDown:
		m.models.Next()
	case keybinds.ActionSubmit:
		m.selectModel()
	}
	return nil
}

func (m *Model) handleMatchKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextMatch, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionClose:
		m.changeMode(ModeNormal)
	case keybinds.ActionOpenHelp:
		m.openHelp(ModeMatch)
	}
	return nil
}

// handleHelpKeys closes the overlay on any key; help has no bindings of its
// own.
func (m *Model) handleHelpKeys(_ tea.KeyMsg) tea.Cmd {
	m.closeHelp()
	return nil
}

func (m *Model) handleTenantKeys(msg tea.KeyMsg) tea.Cmd {
	action, ok := m.keybinds.Match(keybinds.ContextTenant, msg.String())
	if !ok {
		return nil
	}

	switch action {
	case keybinds.ActionClose:
		m.tenantPickerVisible = false
		m.changeMode(ModeNormal)
	case keybinds.ActionOpenHelp:
		m.openHelp(ModeTenant)
	case keybinds.ActionNavigateUp:
		m.tenants.Prev()
	case keybinds.ActionNavigateDown:
		m.tenants.Next()
	case keybinds.ActionGoToFirst:
		m.tenants.First()
	case keybinds.ActionGoToLast:
		m.tenants.Last()
	case keybinds.ActionSubmit:
		m.switchTenant()
	}
	return nil
}
