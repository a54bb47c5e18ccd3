package tui

import (
	"context"

	"github.com/studiowebux/shapecli/internal/api"
	"github.com/studiowebux/shapecli/internal/config"
	"github.com/studiowebux/shapecli/internal/session"
	"github.com/studiowebux/shapecli/internal/types"
)

// Service is the backend boundary the key handlers call into. All four
// operations are synchronous; the handlers treat failures as non-fatal and
// turn them into status/log output.
type Service interface {
	ListFolders(ctx context.Context) ([]types.Folder, error)
	ListModels(ctx context.Context, folderIDs []int) ([]types.Model, error)
	Search(ctx context.Context, query string) ([]types.Model, error)
	EstablishSession(ctx context.Context, tenant string) error
}

// apiService binds the HTTP client and the session manager into one Service.
// EstablishSession rebuilds the client against the tenant's resolved base URL
// so every later call carries that tenant's bearer token.
type apiService struct {
	backend  config.Backend
	sessions *session.Manager
	client   *api.Client
	tenant   string
}

// NewService creates the production backend service.
func NewService(backend config.Backend, sessions *session.Manager) Service {
	s := &apiService{backend: backend, sessions: sessions}
	if tenant := sessions.ActiveTenant(); tenant != "" {
		s.bindTenant(tenant)
	}
	return s
}

func (s *apiService) bindTenant(tenant string) {
	s.tenant = tenant
	s.client = api.NewClient(config.ResolveURL(s.backend.BaseURL, tenant), func() (string, bool) {
		return s.sessions.Token(s.tenant)
	})
}

func (s *apiService) EstablishSession(ctx context.Context, tenant string) error {
	if err := s.sessions.Establish(ctx, tenant); err != nil {
		return err
	}
	s.bindTenant(tenant)
	return nil
}

func (s *apiService) ListFolders(ctx context.Context) ([]types.Folder, error) {
	if s.client == nil {
		return nil, api.ErrUnauthorized
	}
	return s.client.ListFolders(ctx)
}

func (s *apiService) ListModels(ctx context.Context, folderIDs []int) ([]types.Model, error) {
	if s.client == nil {
		return nil, api.ErrUnauthorized
	}
	return s.client.ListModels(ctx, folderIDs)
}

func (s *apiService) Search(ctx context.Context, query string) ([]types.Model, error) {
	if s.client == nil {
		return nil, api.ErrUnauthorized
	}
	return s.client.Search(ctx, query)
}
