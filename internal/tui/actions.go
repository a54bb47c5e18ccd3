package tui

import (
	"context"
	"fmt"

	"github.com/atotto/clipboard"
)

// Backend-touching actions. All calls are synchronous and block the event
// loop; failures are recovered here into status/log output and a cleared
// collection, never a mode change and never a crash.

// switchTenant establishes a session for the selected tenant and loads its
// folder list. Used both at startup (single configured tenant) and from the
// tenant picker.
func (m *Model) switchTenant() {
	tenant, ok := m.tenants.Selected()
	if !ok {
		m.statusMsg = "No tenant selected"
		m.log.Warnf("tenant switch requested without a selection")
		return
	}

	ctx := context.Background()
	if err := m.service.EstablishSession(ctx, tenant.Name); err != nil {
		m.statusMsg = fmt.Sprintf("Failed to establish session for %q: %v", tenant.Name, err)
		m.log.Errorf("session setup for tenant %q failed: %v", tenant.Name, err)
		m.folders.Clear()
		return
	}

	folders, err := m.service.ListFolders(ctx)
	if err != nil {
		m.statusMsg = fmt.Sprintf("Failed to load folders: %v", err)
		m.log.Errorf("listing folders for tenant %q failed: %v", tenant.Name, err)
		m.folders.Clear()
		return
	}

	m.activeTenant = tenant.Name
	m.activeFolder = nil
	m.activeModel = nil
	m.folders.ReplaceAll(folders)
	m.models.Clear()
	m.tenantPickerVisible = false
	if m.mode == ModeTenant {
		m.changeMode(ModeNormal)
	}
	m.statusMsg = fmt.Sprintf("Tenant %q: %d folders", tenant.Name, len(folders))
	m.log.Infof("switched to tenant %q, %d folders", tenant.Name, len(folders))
}

// reloadFolders refreshes the folder list for the active tenant.
func (m *Model) reloadFolders() {
	folders, err := m.service.ListFolders(context.Background())
	if err != nil {
		m.statusMsg = fmt.Sprintf("Failed to reload folders: %v", err)
		m.log.Errorf("reloading folders failed: %v", err)
		m.folders.Clear()
		return
	}

	m.folders.ReplaceAll(folders)
	m.statusMsg = fmt.Sprintf("Reloaded %d folders", len(folders))
	m.log.Infof("reloaded %d folders", len(folders))
}

// openSelectedFolder loads the models of the selected folder into the model
// collection.
func (m *Model) openSelectedFolder() {
	folder, ok := m.folders.Selected()
	if !ok {
		m.activeFolder = nil
		m.models.Clear()
		m.statusMsg = "No folder selected"
		m.log.Warnf("folder open requested without a selection")
		return
	}

	models, err := m.service.ListModels(context.Background(), []int{folder.ID})
	if err != nil {
		m.activeFolder = nil
		m.models.Clear()
		m.statusMsg = fmt.Sprintf("Failed to load models for %q: %v", folder.Name, err)
		m.log.Errorf("listing models for folder %q (id %d) failed: %v", folder.Name, folder.ID, err)
		return
	}

	m.activeFolder = &folder
	m.models.ReplaceAll(models)
	m.statusMsg = fmt.Sprintf("Folder %q: %d models", folder.Name, len(models))
	m.log.Infof("loaded %d models from folder %q", len(models), folder.Name)
}

// selectModel records the selected model row as the active selection for
// the comparison workflow.
func (m *Model) selectModel() {
	model, ok := m.models.Selected()
	if !ok {
		m.statusMsg = "No model selected"
		m.log.Warnf("model select requested without a selection")
		return
	}

	m.activeModel = &model
	m.statusMsg = fmt.Sprintf("Selected model %q (%s)", model.Name, model.State.Display())
	m.log.Infof("selected model %q (%s)", model.Name, model.UUID)
}

// copyModelUUID puts the selected model's UUID on the system clipboard.
func (m *Model) copyModelUUID() {
	model, ok := m.models.Selected()
	if !ok {
		m.statusMsg = "No model selected"
		return
	}

	if err := clipboard.WriteAll(model.UUID); err != nil {
		m.statusMsg = fmt.Sprintf("Failed to copy UUID: %v", err)
		m.log.Errorf("clipboard write failed: %v", err)
		return
	}
	m.statusMsg = fmt.Sprintf("Copied UUID of %q", model.Name)
}

// submitSearch runs the current query against the backend and shows the
// matching models in the model collection. The result count is recorded in
// the search history when a history store is attached.
func (m *Model) submitSearch() {
	query := m.searchField.Text()
	if query == "" {
		m.statusMsg = "Nothing to search"
		return
	}

	m.log.Debugf("executing search on %q", query)
	models, err := m.service.Search(context.Background(), query)

	if m.searches != nil {
		if histErr := m.searches.Record(m.activeTenant, query, len(models), err); histErr != nil {
			m.log.Warnf("failed to record search history: %v", histErr)
		}
	}

	if err != nil {
		m.models.Clear()
		m.statusMsg = fmt.Sprintf("Search failed: %v", err)
		m.log.Errorf("search on %q failed: %v", query, err)
		return
	}

	m.models.ReplaceAll(models)
	m.statusMsg = fmt.Sprintf("Search on %q: %d models", query, len(models))
	m.log.Infof("search on %q returned %d models", query, len(models))
}
