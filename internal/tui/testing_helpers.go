package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/studiowebux/shapecli/internal/logging"
	"github.com/studiowebux/shapecli/internal/types"
)

// fakeService is an in-memory Service implementation for tests.
type fakeService struct {
	folders []types.Folder
	models  map[int][]types.Model
	results []types.Model

	failSession bool
	failFolders bool
	failModels  bool
	failSearch  bool

	established []string
	searched    []string
}

var errFakeBackend = errors.New("backend unavailable")

func (s *fakeService) EstablishSession(_ context.Context, tenant string) error {
	if s.failSession {
		return errFakeBackend
	}
	s.established = append(s.established, tenant)
	return nil
}

func (s *fakeService) ListFolders(context.Context) ([]types.Folder, error) {
	if s.failFolders {
		return nil, errFakeBackend
	}
	return s.folders, nil
}

func (s *fakeService) ListModels(_ context.Context, folderIDs []int) ([]types.Model, error) {
	if s.failModels {
		return nil, errFakeBackend
	}
	var out []types.Model
	for _, id := range folderIDs {
		out = append(out, s.models[id]...)
	}
	return out, nil
}

func (s *fakeService) Search(_ context.Context, query string) ([]types.Model, error) {
	if s.failSearch {
		return nil, errFakeBackend
	}
	s.searched = append(s.searched, query)
	return s.results, nil
}

// CreateTestModel creates a Model wired to a fake backend. The fake is
// returned alongside so tests can seed data and assert calls.
func CreateTestModel(t *testing.T, tenants ...types.Tenant) (*Model, *fakeService) {
	t.Helper()

	svc := &fakeService{models: make(map[int][]types.Model)}
	m := New(Options{
		Service: svc,
		Log:     logging.New(logging.LevelDebug, nil),
		Tenants: tenants,
	})
	return m, svc
}

// pressKey feeds one key event through the dispatch path.
func pressKey(m *Model, msg tea.KeyMsg) tea.Cmd {
	return m.handleKeyPress(msg)
}

// pressRune feeds a plain character key.
func pressRune(m *Model, r rune) tea.Cmd {
	return pressKey(m, tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
}

// press feeds a special key (esc, enter, tab, arrows).
func press(m *Model, key tea.KeyType) tea.Cmd {
	return pressKey(m, tea.KeyMsg{Type: key})
}
