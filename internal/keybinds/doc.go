/*
Package keybinds provides customizable keyboard binding management.

# Overview

The keybinds package maps key names (as reported by Bubble Tea) to actions
within contexts. There is one context per interaction mode plus a global
fallback; keys bound in a specific context shadow the global binding.

# Components

Registry (registry.go):
  - Central storage for keybindings
  - Context-aware matching with global fallback

Defaults (defaults.go):
  - The stock keymap, one register function per mode

Config (config.go):
  - JSON user overrides loaded from ~/.shapecli/keybinds.json
  - User bindings are applied on top of the defaults

Validator (validator.go):
  - Rejects unknown actions and rebinding of reserved keys
  - Warns when a mode binding shadows a global one

# Customization

Example keybinds.json rebinding folder reload and adding a vim-style quit:

	{
	  "version": "1",
	  "normal": {"Q": "quit"},
	  "folder": {"F5": "reload"}
	}

ctrl+c is reserved: force quit must always work.
*/
package keybinds
