package session

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/goccy/go-json"
	"golang.org/x/oauth2/clientcredentials"

	"github.com/studiowebux/shapecli/internal/config"
	"github.com/studiowebux/shapecli/internal/types"
)

// Manager handles the per-tenant credential cache. Establishing a session
// for a tenant always invalidates that tenant's cached token first, so a
// stale or revoked credential can never be reused by mistake.
type Manager struct {
	backend config.Backend
	session *types.Session
}

// NewManager creates a session manager for the given backend settings.
func NewManager(backend config.Backend) *Manager {
	return &Manager{
		backend: backend,
		session: &types.Session{Tokens: make(map[string]types.TenantToken)},
	}
}

// Load reads the session file. A missing or malformed file degrades to an
// empty cache; sessions are re-established on demand.
func (m *Manager) Load() error {
	data, err := os.ReadFile(config.GetSessionFilePath())
	if err != nil {
		m.session = &types.Session{Tokens: make(map[string]types.TenantToken)}
		return nil
	}

	var s types.Session
	if err := json.Unmarshal(data, &s); err != nil {
		m.session = &types.Session{Tokens: make(map[string]types.TenantToken)}
		return nil
	}
	if s.Tokens == nil {
		s.Tokens = make(map[string]types.TenantToken)
	}
	m.session = &s
	return nil
}

// Save writes the session file.
func (m *Manager) Save() error {
	data, err := json.MarshalIndent(m.session, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}
	if err := os.WriteFile(config.GetSessionFilePath(), data, config.FilePermissions); err != nil {
		return fmt.Errorf("failed to write session file: %w", err)
	}
	return nil
}

// ActiveTenant returns the tenant the session was last established for.
func (m *Manager) ActiveTenant() string {
	return m.session.ActiveTenant
}

// Token returns the cached bearer token for a tenant. Expired tokens are
// reported as absent.
func (m *Manager) Token(tenant string) (string, bool) {
	tok, ok := m.session.Tokens[tenant]
	if !ok || tok.AccessToken == "" {
		return "", false
	}
	if tok.ExpiresAt != 0 && time.Now().Unix() >= tok.ExpiresAt {
		return "", false
	}
	return tok.AccessToken, true
}

// Invalidate drops the cached token for a tenant.
func (m *Manager) Invalidate(tenant string) {
	delete(m.session.Tokens, tenant)
}

// Establish invalidates any cached credential for the tenant, runs a
// client-credentials exchange against the tenant's token endpoint, and
// records the new token as the active session.
func (m *Manager) Establish(ctx context.Context, tenant string) error {
	if tenant == "" {
		return fmt.Errorf("no tenant given")
	}

	m.Invalidate(tenant)

	cfg := clientcredentials.Config{
		ClientID:     m.backend.ClientID,
		ClientSecret: m.backend.ClientSecret,
		TokenURL:     config.ResolveURL(m.backend.TokenURL, tenant),
	}

	tok, err := cfg.Token(ctx)
	if err != nil {
		return fmt.Errorf("failed to establish session for tenant %q: %w", tenant, err)
	}

	m.session.Tokens[tenant] = types.TenantToken{
		AccessToken: tok.AccessToken,
		ExpiresAt:   expiryUnix(tok.Expiry),
	}
	m.session.ActiveTenant = tenant

	if err := m.Save(); err != nil {
		return err
	}
	return nil
}

func expiryUnix(t time.Time) int64 {
	if t.IsZero() {
		return 0
	}
	return t.Unix()
}
