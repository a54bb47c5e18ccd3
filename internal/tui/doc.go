/*
Package tui implements the interactive terminal client.

# Architecture

The package is a Bubble Tea program built around one Model owned by the
event loop. Each key event is routed by mode (keys.go) to a handler that
mutates the model; after the handler returns, View builds a read-only
Snapshot (snapshot.go) and renders it (render.go). The renderer never
touches live state.

Modes: Normal, Search, Folder, Model, Match, Help, Tenant. Help is a
one-level overlay: entering it remembers the previous mode and any key
restores it. The tenant picker is an overlay flag on top of Tenant mode.

# Building blocks

Selection (selection.go) is a generic ordered list with a single optional
selected index and cyclic navigation, used for folders, models and tenants.
TextField (textfield.go) is the rune-indexed editor behind the search box.
Presenter (presenter.go) holds the fixed per-mode hint and help strings.

Backend calls go through the Service interface (service.go); the production
implementation binds the HTTP client to the active tenant's session. All
calls are synchronous and failures are non-fatal: they are logged, surfaced
on the status line and the affected collection is cleared.
*/
package tui
