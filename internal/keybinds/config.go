package keybinds

import (
	"fmt"
	"os"

	"github.com/goccy/go-json"
)

// Config represents the user's keybinding configuration. Each section maps
// a key string (Bubble Tea key name) to an action name.
type Config struct {
	Version string            `json:"version"`
	Global  map[string]string `json:"global,omitempty"`
	Normal  map[string]string `json:"normal,omitempty"`
	Search  map[string]string `json:"search,omitempty"`
	Folder  map[string]string `json:"folder,omitempty"`
	Model   map[string]string `json:"model,omitempty"`
	Match   map[string]string `json:"match,omitempty"`
	Tenant  map[string]string `json:"tenant,omitempty"`
}

// LoadConfig loads keybinding configuration from a JSON file
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var config Config
	if err := json.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("invalid keybinds.json format: %w", err)
	}

	return &config, nil
}

// SaveConfig saves keybinding configuration to a JSON file
func SaveConfig(config *Config, path string) error {
	data, err := json.MarshalIndent(config, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// sections maps config sections to contexts.
func (c *Config) sections() map[Context]map[string]string {
	return map[Context]map[string]string{
		ContextGlobal: c.Global,
		ContextNormal: c.Normal,
		ContextSearch: c.Search,
		ContextFolder: c.Folder,
		ContextModel:  c.Model,
		ContextMatch:  c.Match,
		ContextTenant: c.Tenant,
	}
}

// ApplyConfig applies user configuration to a registry.
// User bindings override default bindings.
func ApplyConfig(registry *Registry, config *Config) error {
	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			registry.Register(context, key, Action(actionStr))
		}
	}
	return nil
}

// LoadOrDefault loads user config if it exists, otherwise returns the
// default registry. Invalid user config is an error, not a silent fallback:
// a half-applied keymap is worse than a startup failure.
func LoadOrDefault(configPath string) (*Registry, error) {
	registry := NewDefaultRegistry()

	if _, err := os.Stat(configPath); err != nil {
		return registry, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load keybinds.json: %w", err)
	}

	result := Validate(config)
	if result.HasErrors() {
		return nil, fmt.Errorf("invalid keybinds.json: %s", result.Error())
	}

	if err := ApplyConfig(registry, config); err != nil {
		return nil, err
	}

	return registry, nil
}
