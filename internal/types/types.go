package types

import (
	"fmt"

	"github.com/google/uuid"
)

// ModelState represents the indexing lifecycle of a model on the backend.
type ModelState string

const (
	ModelStateReceived ModelState = "received"
	ModelStateIndexing ModelState = "indexing"
	ModelStateReady    ModelState = "ready"
)

// Valid reports whether the state is one the backend is known to emit.
func (s ModelState) Valid() bool {
	switch s {
	case ModelStateReceived, ModelStateIndexing, ModelStateReady:
		return true
	}
	return false
}

// Display returns the state label shown in the models table.
func (s ModelState) Display() string {
	switch s {
	case ModelStateReceived:
		return "Received"
	case ModelStateIndexing:
		return "Indexing"
	case ModelStateReady:
		return "Ready"
	}
	return string(s)
}

// Folder is a backend container for models. The client never mutates it.
type Folder struct {
	ID   int    `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Model is a single geometry model record as returned by the backend.
type Model struct {
	UUID  string     `json:"uuid" yaml:"uuid"`
	Name  string     `json:"name" yaml:"name"`
	State ModelState `json:"state" yaml:"state"`
}

// Validate checks the fields the client relies on for display and selection.
func (m Model) Validate() error {
	if _, err := uuid.Parse(m.UUID); err != nil {
		return fmt.Errorf("model %q has invalid uuid %q: %w", m.Name, m.UUID, err)
	}
	if !m.State.Valid() {
		return fmt.Errorf("model %q has unknown state %q", m.Name, m.State)
	}
	return nil
}

// Tenant identifies one environment of the backend service. Each tenant has
// its own credential and its own folder tree.
type Tenant struct {
	Name string `json:"name" yaml:"name"`
}

// Session is the persisted credential cache, one token per tenant.
type Session struct {
	ActiveTenant string                 `json:"activeTenant,omitempty"`
	Tokens       map[string]TenantToken `json:"tokens,omitempty"`
}

// TenantToken is a cached bearer token for one tenant.
type TenantToken struct {
	AccessToken string `json:"accessToken"`
	ExpiresAt   int64  `json:"expiresAt,omitempty"` // unix seconds, 0 = unknown
}

// SearchRecord is one submitted search query as stored in the history
// database.
type SearchRecord struct {
	ID        int64  `json:"id" yaml:"id"`
	Timestamp string `json:"timestamp" yaml:"timestamp"`
	Tenant    string `json:"tenant" yaml:"tenant"`
	Query     string `json:"query" yaml:"query"`
	Results   int    `json:"results" yaml:"results"`
	Error     string `json:"error,omitempty" yaml:"error,omitempty"`
}
