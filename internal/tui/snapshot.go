package tui

import "github.com/studiowebux/shapecli/internal/types"

// ListView is the read-only projection of one Selection.
type ListView[T any] struct {
	Items    []T
	Selected int // -1 when nothing is selected
}

// Snapshot is the read-only view of the whole state handed to the renderer
// after each processed event. It carries copies and projections only, so
// the renderer cannot mutate the live model.
type Snapshot struct {
	Mode                Mode
	Status              string
	HelpVisible         bool
	HelpText            string
	TenantPickerVisible bool

	Folders ListView[types.Folder]
	Models  ListView[types.Model]
	Tenants ListView[types.Tenant]

	SearchText   string
	SearchCursor int

	ActiveTenant string
	ActiveFolder *types.Folder
	ActiveModel  *types.Model

	// LogLines are the most recent log records, oldest first, for the
	// log pane.
	LogLines []string
}

func listView[T any](s *Selection[T]) ListView[T] {
	items := make([]T, s.Len())
	copy(items, s.Items())
	selected := -1
	if i, ok := s.SelectedIndex(); ok {
		selected = i
	}
	return ListView[T]{Items: items, Selected: selected}
}

// Snapshot builds the current read-only state view.
func (m *Model) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:                m.mode,
		Status:              m.statusMsg,
		HelpVisible:         m.helpVisible,
		HelpText:            m.helpText,
		TenantPickerVisible: m.tenantPickerVisible,
		Folders:             listView(m.folders),
		Models:              listView(m.models),
		Tenants:             listView(m.tenants),
		SearchText:          m.searchField.Text(),
		SearchCursor:        m.searchField.Cursor(),
		ActiveTenant:        m.activeTenant,
	}
	for _, rec := range m.log.Recent(logPaneLines) {
		snap.LogLines = append(snap.LogLines,
			rec.Time.Format("15:04:05")+" "+rec.Level.String()+" "+rec.Message)
	}
	if m.activeFolder != nil {
		f := *m.activeFolder
		snap.ActiveFolder = &f
	}
	if m.activeModel != nil {
		mdl := *m.activeModel
		snap.ActiveModel = &mdl
	}
	return snap
}
