package keybinds

// NewDefaultRegistry creates a registry with all default keybindings
func NewDefaultRegistry() *Registry {
	r := NewRegistry()

	registerGlobalBindings(r)
	registerNormalModeBindings(r)
	registerSearchBindings(r)
	registerFolderBindings(r)
	registerModelBindings(r)
	registerMatchBindings(r)
	registerTenantBindings(r)

	// Help deliberately has no bindings: any key closes the overlay and
	// restores the previous mode, which is handled before registry lookup.

	return r
}

// registerGlobalBindings sets up bindings available in all modes
func registerGlobalBindings(r *Registry) {
	r.Register(ContextGlobal, "ctrl+c", ActionQuitForce)
}

// registerNormalModeBindings sets up keybindings for normal mode
func registerNormalModeBindings(r *Registry) {
	r.Register(ContextNormal, "q", ActionQuit)
	r.RegisterMultiple(ContextNormal, []string{"f", "tab"}, ActionEnterFolderMode)
	r.Register(ContextNormal, "s", ActionEnterSearchMode)
	r.Register(ContextNormal, "m", ActionEnterModelMode)
	r.Register(ContextNormal, "c", ActionEnterMatchMode)
	r.Register(ContextNormal, "h", ActionOpenHelp)
	r.Register(ContextNormal, "t", ActionOpenTenantPicker)
}

// registerSearchBindings sets up keybindings for the search field.
// Plain characters are inserted into the field and never reach the
// registry; the help chord therefore needs a modifier.
func registerSearchBindings(r *Registry) {
	r.Register(ContextSearch, "esc", ActionClose)
	r.Register(ContextSearch, "enter", ActionSubmit)
	r.Register(ContextSearch, "alt+h", ActionOpenHelp)
	r.Register(ContextSearch, "backspace", ActionTextBackspace)
	r.Register(ContextSearch, "delete", ActionTextDelete)
	r.Register(ContextSearch, "left", ActionTextMoveLeft)
	r.Register(ContextSearch, "right", ActionTextMoveRight)
	r.RegisterMultiple(ContextSearch, []string{"home", "ctrl+a"}, ActionTextMoveHome)
	r.RegisterMultiple(ContextSearch, []string{"end", "ctrl+e"}, ActionTextMoveEnd)
	r.RegisterMultiple(ContextSearch, []string{"ctrl+v", "shift+insert"}, ActionTextPaste)
	r.Register(ContextSearch, "ctrl+u", ActionTextClear)
}

// registerFolderBindings sets up keybindings for folder navigation
func registerFolderBindings(r *Registry) {
	r.Register(ContextFolder, "esc", ActionClose)
	r.Register(ContextFolder, "tab", ActionNextPane)
	r.Register(ContextFolder, "enter", ActionSubmit)
	r.Register(ContextFolder, "h", ActionOpenHelp)
	r.Register(ContextFolder, "r", ActionReload)
	r.RegisterMultiple(ContextFolder, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextFolder, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextFolder, "home", ActionGoToFirst)
	r.Register(ContextFolder, "end", ActionGoToLast)
}

// registerModelBindings sets up keybindings for model table navigation
func registerModelBindings(r *Registry) {
	r.Register(ContextModel, "esc", ActionClose)
	r.Register(ContextModel, "tab", ActionNextPane)
	r.Register(ContextModel, "enter", ActionSubmit)
	r.Register(ContextModel, "h", ActionOpenHelp)
	r.Register(ContextModel, "y", ActionCopyUUID)
	r.RegisterMultiple(ContextModel, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextModel, []string{"down", "j"}, ActionNavigateDown)
}

// registerMatchBindings sets up keybindings for the match view
func registerMatchBindings(r *Registry) {
	r.Register(ContextMatch, "esc", ActionClose)
	r.Register(ContextMatch, "h", ActionOpenHelp)
}

// registerTenantBindings sets up keybindings for the tenant picker
func registerTenantBindings(r *Registry) {
	r.Register(ContextTenant, "esc", ActionClose)
	r.Register(ContextTenant, "enter", ActionSubmit)
	r.Register(ContextTenant, "h", ActionOpenHelp)
	r.RegisterMultiple(ContextTenant, []string{"up", "k"}, ActionNavigateUp)
	r.RegisterMultiple(ContextTenant, []string{"down", "j"}, ActionNavigateDown)
	r.Register(ContextTenant, "home", ActionGoToFirst)
	r.Register(ContextTenant, "end", ActionGoToLast)
}
