package keybinds

import (
	"fmt"
	"strings"
)

// ValidationError represents a keybinding validation error
type ValidationError struct {
	Type    string // "invalid", "reserved"
	Context Context
	Key     string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s in context '%s': %s", e.Type, e.Key, e.Context, e.Message)
}

// ValidationResult contains all validation errors and warnings
type ValidationResult struct {
	Errors   []ValidationError
	Warnings []ValidationError
}

// HasErrors returns true if there are any errors
func (r *ValidationResult) HasErrors() bool {
	return len(r.Errors) > 0
}

// Error returns a human-readable summary of the errors
func (r *ValidationResult) Error() string {
	parts := make([]string, 0, len(r.Errors))
	for _, e := range r.Errors {
		parts = append(parts, e.Error())
	}
	return strings.Join(parts, "; ")
}

// reservedKeys are keys that must not be rebound. Force quit always works.
var reservedKeys = map[string]bool{
	"ctrl+c": true,
}

// Validate checks a user configuration before it is applied: unknown
// actions and attempts to rebind reserved keys are errors; shadowing a
// global binding from a specific context is a warning. Unknown contexts
// cannot occur since the config struct only has fields for known ones.
func Validate(config *Config) *ValidationResult {
	result := &ValidationResult{}

	for context, bindings := range config.sections() {
		for key, actionStr := range bindings {
			if reservedKeys[key] {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "reserved",
					Context: context,
					Key:     key,
					Message: "this key cannot be rebound",
				})
			}
			if !validActions[Action(actionStr)] {
				result.Errors = append(result.Errors, ValidationError{
					Type:    "invalid",
					Context: context,
					Key:     key,
					Message: fmt.Sprintf("unknown action %q", actionStr),
				})
			}
			if context != ContextGlobal && config.Global != nil {
				if _, shadowed := config.Global[key]; shadowed {
					result.Warnings = append(result.Warnings, ValidationError{
						Type:    "warning",
						Context: context,
						Key:     key,
						Message: "shadows a global binding",
					})
				}
			}
		}
	}

	return result
}
