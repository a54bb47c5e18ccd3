package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-json"

	"github.com/studiowebux/shapecli/internal/types"
)

const (
	// FilePermissions is the default permission mode for regular files
	FilePermissions = 0644
	// DirPermissions is the default permission mode for directories
	DirPermissions = 0755
)

var (
	// ConfigDir is the global configuration directory (~/.shapecli)
	ConfigDir string

	// DatabasePath is the SQLite database file for search history
	DatabasePath string

	// SessionFile is the per-tenant credential cache file
	SessionFile string

	// TenantsFile lists the tenants selectable in the tenant picker
	TenantsFile string

	// KeybindsFile is the optional user keybinding override file
	KeybindsFile string

	// LogFile receives the application log
	LogFile string
)

// Backend holds the connection settings for the model indexing service.
// Values come from environment variables so credentials stay out of files
// shared between machines.
type Backend struct {
	BaseURL      string // SHAPECLI_API_URL, e.g. https://%s.shapesearch.io (tenant slot)
	TokenURL     string // SHAPECLI_TOKEN_URL, same %s tenant slot
	ClientID     string // SHAPECLI_CLIENT_ID
	ClientSecret string // SHAPECLI_CLIENT_SECRET
}

// Initialize sets up the configuration directory and files.
// It creates ~/.shapecli/ if it doesn't exist.
func Initialize() error {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return fmt.Errorf("failed to get home directory: %w", err)
	}

	ConfigDir = filepath.Join(homeDir, ".shapecli")
	DatabasePath = filepath.Join(ConfigDir, "shapecli.db")
	SessionFile = filepath.Join(ConfigDir, ".session.json")
	TenantsFile = filepath.Join(ConfigDir, "tenants.json")
	KeybindsFile = filepath.Join(ConfigDir, "keybinds.json")
	LogFile = filepath.Join(ConfigDir, "shapecli.log")

	if err := os.MkdirAll(ConfigDir, DirPermissions); err != nil {
		return fmt.Errorf("failed to create directory %s: %w", ConfigDir, err)
	}

	// Create an empty session file if it doesn't exist
	if _, err := os.Stat(SessionFile); os.IsNotExist(err) {
		defaultSession := []byte(`{"tokens":{}}`)
		if err := os.WriteFile(SessionFile, defaultSession, FilePermissions); err != nil {
			return fmt.Errorf("failed to create session file: %w", err)
		}
	}

	return nil
}

// LoadBackend reads the backend settings from the environment.
// BaseURL is required for any command that talks to the service.
func LoadBackend() (Backend, error) {
	b := Backend{
		BaseURL:      strings.TrimRight(os.Getenv("SHAPECLI_API_URL"), "/"),
		TokenURL:     os.Getenv("SHAPECLI_TOKEN_URL"),
		ClientID:     os.Getenv("SHAPECLI_CLIENT_ID"),
		ClientSecret: os.Getenv("SHAPECLI_CLIENT_SECRET"),
	}
	if b.BaseURL == "" {
		return b, fmt.Errorf("SHAPECLI_API_URL is not set")
	}
	if b.TokenURL == "" {
		b.TokenURL = b.BaseURL + "/oauth2/token"
	}
	return b, nil
}

// ResolveURL substitutes the tenant into a templated URL. URLs without a
// tenant slot are returned unchanged.
func ResolveURL(template, tenant string) string {
	if strings.Contains(template, "%s") {
		return fmt.Sprintf(template, tenant)
	}
	return template
}

// LoadTenants reads the tenants file. A missing file yields an empty list
// so the TUI can still start and report the condition.
func LoadTenants() ([]types.Tenant, error) {
	data, err := os.ReadFile(TenantsFile)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read tenants file: %w", err)
	}

	var tenants []types.Tenant
	if err := json.Unmarshal(data, &tenants); err != nil {
		return nil, fmt.Errorf("failed to parse tenants file: %w", err)
	}
	return tenants, nil
}

// SaveTenants writes the tenants file.
func SaveTenants(tenants []types.Tenant) error {
	data, err := json.MarshalIndent(tenants, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal tenants: %w", err)
	}
	if err := os.WriteFile(TenantsFile, data, FilePermissions); err != nil {
		return fmt.Errorf("failed to write tenants file: %w", err)
	}
	return nil
}

// GetSessionFilePath returns the session file path (local or global).
// A .session.json in the working directory takes precedence, matching the
// local-override behavior of the other dotfiles.
func GetSessionFilePath() string {
	if _, err := os.Stat(".session.json"); err == nil {
		return ".session.json"
	}
	return SessionFile
}
