package keybinds

// Action represents a user action that can be triggered by a keybinding
type Action string

// Context represents the context in which keybindings are active
type Context string

const (
	// Contexts define where keybindings are active. There is one context
	// per interaction mode plus a global fallback.
	ContextGlobal Context = "global" // Available everywhere
	ContextNormal Context = "normal" // Normal mode
	ContextSearch Context = "search" // Search field editing
	ContextFolder Context = "folder" // Folder list navigation
	ContextModel  Context = "model"  // Model table navigation
	ContextMatch  Context = "match"  // Match results view
	ContextHelp   Context = "help"   // Help overlay
	ContextTenant Context = "tenant" // Tenant picker overlay
)

const (
	// Global actions
	ActionQuitForce Action = "quit_force" // Force quit (ctrl+c)

	// Normal mode actions
	ActionQuit             Action = "quit"               // Quit application
	ActionEnterFolderMode  Action = "enter_folder_mode"  // Switch to Folder mode
	ActionEnterSearchMode  Action = "enter_search_mode"  // Switch to Search mode
	ActionEnterModelMode   Action = "enter_model_mode"   // Switch to Model mode
	ActionEnterMatchMode   Action = "enter_match_mode"   // Switch to Match mode
	ActionOpenHelp         Action = "open_help"          // Show the help overlay
	ActionOpenTenantPicker Action = "open_tenant_picker" // Show the tenant picker

	// Shared mode actions
	ActionClose       Action = "close"        // Return to Normal mode (esc)
	ActionSubmit      Action = "submit"       // Act on the current selection/input (enter)
	ActionNextPane    Action = "next_pane"    // Folder <-> Model (tab)
	ActionNavigateUp   Action = "navigate_up"   // Select previous item
	ActionNavigateDown Action = "navigate_down" // Select next item
	ActionGoToFirst    Action = "go_to_first"   // Select first item
	ActionGoToLast     Action = "go_to_last"    // Select last item

	// Folder mode actions
	ActionReload Action = "reload" // Reload the folder list from the backend

	// Model mode actions
	ActionCopyUUID Action = "copy_uuid" // Copy selected model UUID to clipboard

	// Text input actions (Search mode)
	ActionTextBackspace Action = "text_backspace" // Delete char before cursor
	ActionTextDelete    Action = "text_delete"    // Delete char at cursor
	ActionTextMoveLeft  Action = "text_move_left" // Move cursor left
	ActionTextMoveRight Action = "text_move_right" // Move cursor right
	ActionTextMoveHome  Action = "text_move_home"  // Move cursor to start
	ActionTextMoveEnd   Action = "text_move_end"   // Move cursor to end
	ActionTextPaste     Action = "text_paste"      // Paste from clipboard
	ActionTextClear     Action = "text_clear"      // Clear the whole field
)

// validActions is the set accepted by the validator.
var validActions = map[Action]bool{
	ActionQuitForce:        true,
	ActionQuit:             true,
	ActionEnterFolderMode:  true,
	ActionEnterSearchMode:  true,
	ActionEnterModelMode:   true,
	ActionEnterMatchMode:   true,
	ActionOpenHelp:         true,
	ActionOpenTenantPicker: true,
	ActionClose:            true,
	ActionSubmit:           true,
	ActionNextPane:         true,
	ActionNavigateUp:       true,
	ActionNavigateDown:     true,
	ActionGoToFirst:        true,
	ActionGoToLast:         true,
	ActionReload:           true,
	ActionCopyUUID:         true,
	ActionTextBackspace:    true,
	ActionTextDelete:       true,
	ActionTextMoveLeft:     true,
	ActionTextMoveRight:    true,
	ActionTextMoveHome:     true,
	ActionTextMoveEnd:      true,
	ActionTextPaste:        true,
	ActionTextClear:        true,
}
