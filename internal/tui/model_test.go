package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/shapecli/internal/types"
)

func TestModeTransitionsFromNormal(t *testing.T) {
	tests := []struct {
		key  rune
		want Mode
	}{
		{'f', ModeFolder},
		{'s', ModeSearch},
		{'m', ModeModel},
		{'c', ModeMatch},
		{'t', ModeTenant},
	}

	for _, tt := range tests {
		m, _ := CreateTestModel(t)
		pressRune(m, tt.key)
		if m.mode != tt.want {
			t.Errorf("key %q: mode = %s, want %s", tt.key, m.mode, tt.want)
		}
		if m.previousMode != ModeNormal {
			t.Errorf("key %q: previousMode = %s, want Normal", tt.key, m.previousMode)
		}
		if m.statusMsg != Hint(tt.want) {
			t.Errorf("key %q: status = %q, want the %s hint", tt.key, m.statusMsg, tt.want)
		}
	}
}

func TestTabEntersFolderMode(t *testing.T) {
	m, _ := CreateTestModel(t)
	press(m, tea.KeyTab)
	if m.mode != ModeFolder {
		t.Errorf("mode = %s, want Folder", m.mode)
	}
}

func TestUnboundKeyInNormalSetsGenericHint(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.statusMsg = ""
	pressRune(m, 'z')
	if m.mode != ModeNormal {
		t.Errorf("mode = %s, want Normal", m.mode)
	}
	if m.statusMsg != StatusHintNormal {
		t.Errorf("status = %q, want generic hint", m.statusMsg)
	}
}

func TestQuitKeyTerminates(t *testing.T) {
	m, _ := CreateTestModel(t)
	cmd := pressRune(m, 'q')
	if cmd == nil {
		t.Fatal("expected a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Error("expected tea.Quit")
	}
}

func TestForceQuitWorksInEveryMode(t *testing.T) {
	for _, mode := range []Mode{ModeNormal, ModeSearch, ModeFolder, ModeModel, ModeMatch, ModeHelp, ModeTenant} {
		m, _ := CreateTestModel(t)
		m.mode = mode
		cmd := pressKey(m, tea.KeyMsg{Type: tea.KeyCtrlC})
		if cmd == nil {
			t.Fatalf("mode %s: expected a quit command", mode)
		}
		if _, ok := cmd().(tea.QuitMsg); !ok {
			t.Errorf("mode %s: expected tea.Quit", mode)
		}
	}
}

func TestHelpRestoresPreviousMode(t *testing.T) {
	m, _ := CreateTestModel(t)

	pressRune(m, 'f')
	if m.mode != ModeFolder {
		t.Fatalf("mode = %s, want Folder", m.mode)
	}
	if m.statusMsg != Hint(ModeFolder) {
		t.Errorf("status = %q, want the Folder hint", m.statusMsg)
	}

	pressRune(m, 'h')
	if m.mode != ModeHelp {
		t.Fatalf("mode = %s, want Help", m.mode)
	}
	if m.previousMode != ModeFolder {
		t.Errorf("previousMode = %s, want Folder", m.previousMode)
	}
	if !m.helpVisible {
		t.Error("help should be visible")
	}
	if m.helpText != HelpBody(ModeFolder) {
		t.Error("help body should be the Folder help")
	}

	// Any key closes the overlay
	pressRune(m, 'x')
	if m.mode != ModeFolder {
		t.Errorf("mode = %s, want Folder restored", m.mode)
	}
	if m.helpVisible {
		t.Error("help should be hidden")
	}
}

func TestHelpFromEveryModeRestoresIt(t *testing.T) {
	openers := map[Mode]func(m *Model){
		ModeNormal: func(m *Model) { pressRune(m, 'h') },
		ModeSearch: func(m *Model) { pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'h'}, Alt: true}) },
		ModeFolder: func(m *Model) { pressRune(m, 'h') },
		ModeModel:  func(m *Model) { pressRune(m, 'h') },
		ModeMatch:  func(m *Model) { pressRune(m, 'h') },
		ModeTenant: func(m *Model) { pressRune(m, 'h') },
	}

	for mode, open := range openers {
		m, _ := CreateTestModel(t)
		m.mode = mode
		open(m)
		if m.mode != ModeHelp {
			t.Errorf("%s: opening help left mode %s", mode, m.mode)
			continue
		}
		press(m, tea.KeyEsc)
		if m.mode != mode {
			t.Errorf("%s: closing help restored %s", mode, m.mode)
		}
	}
}

func TestSearchTypingAndEscape(t *testing.T) {
	m, _ := CreateTestModel(t)
	pressRune(m, 's')

	for _, r := range "hélix" {
		pressRune(m, r)
	}
	press(m, tea.KeySpace)
	pressRune(m, '5')
	press(m, tea.KeyBackspace)

	if got := m.searchField.Text(); got != "hélix " {
		t.Errorf("field = %q, want %q", got, "hélix ")
	}

	press(m, tea.KeyEsc)
	if m.mode != ModeNormal {
		t.Errorf("mode = %s, want Normal", m.mode)
	}
	// Leaving Search keeps the buffer
	if got := m.searchField.Text(); got != "hélix " {
		t.Errorf("buffer cleared on mode switch: %q", got)
	}
}

func TestSearchSubmit(t *testing.T) {
	m, svc := CreateTestModel(t)
	svc.results = []types.Model{
		{UUID: "11111111-1111-1111-1111-111111111111", Name: "bracket", State: types.ModelStateReady},
	}

	pressRune(m, 's')
	for _, r := range "bracket" {
		pressRune(m, r)
	}
	press(m, tea.KeyEnter)

	if len(svc.searched) != 1 || svc.searched[0] != "bracket" {
		t.Fatalf("searched = %v, want [bracket]", svc.searched)
	}
	if m.mode != ModeSearch {
		t.Errorf("mode = %s, want Search", m.mode)
	}
	if m.models.Len() != 1 {
		t.Errorf("models = %d, want 1", m.models.Len())
	}
	if !strings.Contains(m.statusMsg, "bracket") {
		t.Errorf("status %q should name the query", m.statusMsg)
	}
}

func TestSearchSubmitEmptyBuffer(t *testing.T) {
	m, svc := CreateTestModel(t)
	pressRune(m, 's')
	press(m, tea.KeyEnter)

	if len(svc.searched) != 0 {
		t.Errorf("empty query must not reach the backend, got %v", svc.searched)
	}
	if m.statusMsg != "Nothing to search" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestSearchBackendErrorClearsModels(t *testing.T) {
	m, svc := CreateTestModel(t)
	svc.failSearch = true
	m.models.ReplaceAll([]types.Model{{UUID: "u", Name: "stale"}})

	pressRune(m, 's')
	pressRune(m, 'x')
	press(m, tea.KeyEnter)

	if m.models.Len() != 0 {
		t.Error("failed search should clear the model collection")
	}
	if m.mode != ModeSearch {
		t.Errorf("mode = %s, want Search unchanged", m.mode)
	}
}

func TestFolderNavigationAndOpen(t *testing.T) {
	m, svc := CreateTestModel(t)
	svc.folders = []types.Folder{{ID: 1, Name: "First"}, {ID: 2, Name: "Second"}}
	svc.models[2] = []types.Model{
		{UUID: "22222222-2222-2222-2222-222222222222", Name: "gear", State: types.ModelStateIndexing},
	}
	m.folders.ReplaceAll(svc.folders)

	pressRune(m, 'f')
	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	if idx, _ := m.folders.SelectedIndex(); idx != 1 {
		t.Fatalf("selected folder index = %d, want 1", idx)
	}

	press(m, tea.KeyEnter)
	if m.mode != ModeFolder {
		t.Errorf("mode = %s, want Folder", m.mode)
	}
	if m.activeFolder == nil || m.activeFolder.ID != 2 {
		t.Fatalf("activeFolder = %+v, want id 2", m.activeFolder)
	}
	if m.models.Len() != 1 {
		t.Errorf("models = %d, want 1", m.models.Len())
	}
}

func TestFolderOpenWithoutSelection(t *testing.T) {
	m, _ := CreateTestModel(t)
	pressRune(m, 'f')
	press(m, tea.KeyEnter)

	if m.statusMsg != "No folder selected" {
		t.Errorf("status = %q", m.statusMsg)
	}
	if m.models.Len() != 0 {
		t.Error("model collection should stay empty")
	}
	if m.mode != ModeFolder {
		t.Errorf("mode = %s, want Folder", m.mode)
	}
}

func TestFolderOpenBackendError(t *testing.T) {
	m, svc := CreateTestModel(t)
	svc.folders = []types.Folder{{ID: 1, Name: "First"}}
	svc.failModels = true
	m.folders.ReplaceAll(svc.folders)
	m.models.ReplaceAll([]types.Model{{UUID: "u", Name: "stale"}})

	pressRune(m, 'f')
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	if m.mode != ModeFolder {
		t.Errorf("mode = %s, want Folder unchanged", m.mode)
	}
	if m.models.Len() != 0 {
		t.Error("failed load should clear the model collection")
	}
	if m.activeFolder != nil {
		t.Error("failed load should clear the active folder")
	}
	if !strings.Contains(m.statusMsg, "Failed") {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestFolderReload(t *testing.T) {
	m, svc := CreateTestModel(t)
	svc.folders = []types.Folder{{ID: 7, Name: "Fresh"}}

	pressRune(m, 'f')
	pressRune(m, 'r')

	if m.folders.Len() != 1 {
		t.Fatalf("folders = %d, want 1", m.folders.Len())
	}
	if m.folders.Items()[0].ID != 7 {
		t.Errorf("folder = %+v", m.folders.Items()[0])
	}
}

func TestFolderModelPaneSwitch(t *testing.T) {
	m, _ := CreateTestModel(t)
	pressRune(m, 'f')
	press(m, tea.KeyTab)
	if m.mode != ModeModel {
		t.Fatalf("mode = %s, want Model", m.mode)
	}
	press(m, tea.KeyTab)
	if m.mode != ModeFolder {
		t.Errorf("mode = %s, want Folder", m.mode)
	}
}

func TestModelSelection(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.models.ReplaceAll([]types.Model{
		{UUID: "33333333-3333-3333-3333-333333333333", Name: "flange", State: types.ModelStateReady},
	})

	pressRune(m, 'm')
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	if m.activeModel == nil || m.activeModel.Name != "flange" {
		t.Fatalf("activeModel = %+v", m.activeModel)
	}
	if m.mode != ModeModel {
		t.Errorf("mode = %s, want Model", m.mode)
	}
}

func TestModelSelectionWithoutSelection(t *testing.T) {
	m, _ := CreateTestModel(t)
	pressRune(m, 'm')
	press(m, tea.KeyEnter)

	if m.activeModel != nil {
		t.Error("no selection should leave activeModel nil")
	}
	if m.statusMsg != "No model selected" {
		t.Errorf("status = %q", m.statusMsg)
	}
}

func TestTenantPickerSwitch(t *testing.T) {
	tenants := []types.Tenant{{Name: "acme"}, {Name: "globex"}}
	m, svc := CreateTestModel(t, tenants...)
	svc.folders = []types.Folder{{ID: 1, Name: "Shared"}}

	// Several tenants: the program starts in the picker
	if m.mode != ModeTenant || !m.tenantPickerVisible {
		t.Fatalf("mode = %s picker = %v, want Tenant with picker", m.mode, m.tenantPickerVisible)
	}

	press(m, tea.KeyDown)
	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	if len(svc.established) != 1 || svc.established[0] != "globex" {
		t.Fatalf("established = %v, want [globex]", svc.established)
	}
	if m.activeTenant != "globex" {
		t.Errorf("activeTenant = %q", m.activeTenant)
	}
	if m.mode != ModeNormal || m.tenantPickerVisible {
		t.Errorf("mode = %s picker = %v, want Normal with picker hidden", m.mode, m.tenantPickerVisible)
	}
	if m.folders.Len() != 1 {
		t.Errorf("folders = %d, want 1", m.folders.Len())
	}
}

func TestTenantPickerEscape(t *testing.T) {
	m, _ := CreateTestModel(t, types.Tenant{Name: "acme"}, types.Tenant{Name: "globex"})
	press(m, tea.KeyEsc)
	if m.mode != ModeNormal || m.tenantPickerVisible {
		t.Errorf("mode = %s picker = %v, want Normal with picker hidden", m.mode, m.tenantPickerVisible)
	}
}

func TestTenantSessionFailureKeepsMode(t *testing.T) {
	m, svc := CreateTestModel(t, types.Tenant{Name: "acme"}, types.Tenant{Name: "globex"})
	svc.failSession = true
	m.folders.ReplaceAll([]types.Folder{{ID: 1, Name: "stale"}})

	press(m, tea.KeyDown)
	press(m, tea.KeyEnter)

	if m.mode != ModeTenant || !m.tenantPickerVisible {
		t.Errorf("mode = %s picker = %v, want Tenant with picker still open", m.mode, m.tenantPickerVisible)
	}
	if m.folders.Len() != 0 {
		t.Error("failed session setup should clear the folder collection")
	}
	if m.activeTenant != "" {
		t.Errorf("activeTenant = %q, want empty", m.activeTenant)
	}
}

func TestSingleTenantAutoSelected(t *testing.T) {
	tenants := []types.Tenant{{Name: "acme"}}
	svc := &fakeService{
		models:  make(map[int][]types.Model),
		folders: []types.Folder{{ID: 1, Name: "Parts"}},
	}
	m := New(Options{Service: svc, Tenants: tenants})

	if len(svc.established) != 1 || svc.established[0] != "acme" {
		t.Fatalf("established = %v, want [acme]", svc.established)
	}
	if m.mode != ModeNormal {
		t.Errorf("mode = %s, want Normal", m.mode)
	}
	if m.folders.Len() != 1 {
		t.Errorf("folders = %d, want 1", m.folders.Len())
	}
}

func TestRestoredTenantSkipsPicker(t *testing.T) {
	tenants := []types.Tenant{{Name: "acme"}, {Name: "globex"}}
	svc := &fakeService{
		models:  make(map[int][]types.Model),
		folders: []types.Folder{{ID: 1, Name: "Parts"}},
	}
	m := New(Options{Service: svc, Tenants: tenants, ActiveTenant: "globex"})

	if len(svc.established) != 1 || svc.established[0] != "globex" {
		t.Fatalf("established = %v, want [globex]", svc.established)
	}
	if m.mode != ModeNormal || m.tenantPickerVisible {
		t.Errorf("mode = %s picker = %v, want Normal with picker hidden", m.mode, m.tenantPickerVisible)
	}
}

func TestUnknownRestoredTenantOpensPicker(t *testing.T) {
	tenants := []types.Tenant{{Name: "acme"}, {Name: "globex"}}
	svc := &fakeService{models: make(map[int][]types.Model)}
	m := New(Options{Service: svc, Tenants: tenants, ActiveTenant: "gone"})

	if m.mode != ModeTenant || !m.tenantPickerVisible {
		t.Errorf("mode = %s picker = %v, want Tenant with picker open", m.mode, m.tenantPickerVisible)
	}
	if len(svc.established) != 0 {
		t.Errorf("no session should be established, got %v", svc.established)
	}
}

func TestSnapshotReflectsState(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.folders.ReplaceAll([]types.Folder{{ID: 1, Name: "First"}})
	m.folders.First()
	m.searchField.SetText("qué")
	m.searchField.Left()

	snap := m.Snapshot()
	if snap.Mode != ModeNormal {
		t.Errorf("snapshot mode = %s", snap.Mode)
	}
	if snap.Folders.Selected != 0 || len(snap.Folders.Items) != 1 {
		t.Errorf("snapshot folders = %+v", snap.Folders)
	}
	if snap.SearchText != "qué" || snap.SearchCursor != 2 {
		t.Errorf("snapshot search = %q cursor %d", snap.SearchText, snap.SearchCursor)
	}

	// Mutating the snapshot must not touch the model
	snap.Folders.Items[0].Name = "changed"
	if m.folders.Items()[0].Name != "First" {
		t.Error("snapshot shares storage with the model")
	}
}

func TestViewRendersWithoutSize(t *testing.T) {
	m, _ := CreateTestModel(t)
	if got := m.View(); got != "Initializing..." {
		t.Errorf("View before first WindowSizeMsg = %q", got)
	}
}

func TestViewRendersMainLayout(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	m.folders.ReplaceAll([]types.Folder{{ID: 1, Name: "First"}})

	out := m.View()
	if !strings.Contains(out, "Folders") || !strings.Contains(out, "Models") {
		t.Error("main layout should contain the folder and model panes")
	}
	if !strings.Contains(out, "Normal") {
		t.Error("status bar should show the mode badge")
	}
}

func TestViewRendersHelpOverlay(t *testing.T) {
	m, _ := CreateTestModel(t)
	m.Update(tea.WindowSizeMsg{Width: 100, Height: 40})
	pressRune(m, 'h')

	out := m.View()
	if !strings.Contains(out, "Help") {
		t.Error("help overlay should be rendered")
	}
}
