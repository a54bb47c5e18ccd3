package keybinds

import (
	"path/filepath"
	"testing"
)

func TestRegistry_MatchSpecificBeforeGlobal(t *testing.T) {
	r := NewRegistry()
	r.Register(ContextGlobal, "x", ActionQuitForce)
	r.Register(ContextFolder, "x", ActionReload)

	action, ok := r.Match(ContextFolder, "x")
	if !ok || action != ActionReload {
		t.Errorf("expected folder binding to win, got %q (ok=%v)", action, ok)
	}

	action, ok = r.Match(ContextModel, "x")
	if !ok || action != ActionQuitForce {
		t.Errorf("expected global fallback, got %q (ok=%v)", action, ok)
	}

	if _, ok := r.Match(ContextModel, "unbound"); ok {
		t.Error("expected no match for unbound key")
	}
}

func TestDefaultRegistry_SpecTable(t *testing.T) {
	r := NewDefaultRegistry()

	cases := []struct {
		context Context
		key     string
		want    Action
	}{
		{ContextNormal, "q", ActionQuit},
		{ContextNormal, "f", ActionEnterFolderMode},
		{ContextNormal, "tab", ActionEnterFolderMode},
		{ContextNormal, "s", ActionEnterSearchMode},
		{ContextNormal, "m", ActionEnterModelMode},
		{ContextNormal, "c", ActionEnterMatchMode},
		{ContextNormal, "h", ActionOpenHelp},
		{ContextNormal, "t", ActionOpenTenantPicker},
		{ContextSearch, "esc", ActionClose},
		{ContextSearch, "enter", ActionSubmit},
		{ContextSearch, "alt+h", ActionOpenHelp},
		{ContextFolder, "tab", ActionNextPane},
		{ContextFolder, "r", ActionReload},
		{ContextFolder, "home", ActionGoToFirst},
		{ContextFolder, "end", ActionGoToLast},
		{ContextModel, "tab", ActionNextPane},
		{ContextModel, "y", ActionCopyUUID},
		{ContextMatch, "esc", ActionClose},
		{ContextTenant, "enter", ActionSubmit},
		{ContextTenant, "up", ActionNavigateUp},
		{ContextFolder, "ctrl+c", ActionQuitForce}, // global fallback
	}

	for _, tc := range cases {
		action, ok := r.Match(tc.context, tc.key)
		if !ok {
			t.Errorf("no binding for %q in %s", tc.key, tc.context)
			continue
		}
		if action != tc.want {
			t.Errorf("%s/%q = %q, want %q", tc.context, tc.key, action, tc.want)
		}
	}
}

func TestValidate_RejectsUnknownActionAndReservedKey(t *testing.T) {
	config := &Config{
		Normal: map[string]string{
			"z":      "fly_to_the_moon",
			"ctrl+c": string(ActionQuit),
		},
	}

	result := Validate(config)
	if !result.HasErrors() {
		t.Fatal("expected validation errors")
	}
	if len(result.Errors) != 2 {
		t.Errorf("expected 2 errors, got %d: %s", len(result.Errors), result.Error())
	}
}

func TestValidate_WarnsOnShadowing(t *testing.T) {
	config := &Config{
		Global: map[string]string{"x": string(ActionQuit)},
		Folder: map[string]string{"x": string(ActionReload)},
	}

	result := Validate(config)
	if result.HasErrors() {
		t.Fatalf("expected no errors, got %s", result.Error())
	}
	if len(result.Warnings) != 1 {
		t.Errorf("expected 1 shadowing warning, got %d", len(result.Warnings))
	}
}

func TestLoadOrDefault(t *testing.T) {
	// Missing file falls back to defaults
	r, err := LoadOrDefault(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("LoadOrDefault with missing file failed: %v", err)
	}
	if _, ok := r.Match(ContextNormal, "q"); !ok {
		t.Error("expected default bindings")
	}

	// User override wins
	path := filepath.Join(t.TempDir(), "keybinds.json")
	config := &Config{Normal: map[string]string{"x": string(ActionQuit)}}
	if err := SaveConfig(config, path); err != nil {
		t.Fatal(err)
	}
	r, err = LoadOrDefault(path)
	if err != nil {
		t.Fatalf("LoadOrDefault failed: %v", err)
	}
	if action, ok := r.Match(ContextNormal, "x"); !ok || action != ActionQuit {
		t.Errorf("expected user binding applied, got %q (ok=%v)", action, ok)
	}

	// Invalid config is a hard error
	bad := &Config{Normal: map[string]string{"x": "nonsense"}}
	if err := SaveConfig(bad, path); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadOrDefault(path); err == nil {
		t.Error("expected error for invalid config")
	}
}
