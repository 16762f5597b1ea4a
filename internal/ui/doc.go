// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// The TUI provides a two-view workflow for flight subscriptions:
//  1. [DashboardView] : Browse active subscriptions, refresh, and delete
//  2. [FormView] : Subscribe to a new flight by airline code, flight number, and date
//
// The (view) [Model] implements bubbletea/Elm's standard Init/Update/View pattern.
// Workflow outcomes arrive as messages from commands running the coordinator's
// refresh, subscribe, and unsubscribe workflows; busy indication is driven by
// the coordinator's loading-scope tracker rather than per-view flags.
//
// Keyboard navigation uses vim-style bindings (j/k, enter, esc, r, a, d, q)
// with contextual help displayed via charmbracelet/bubbles/help.
package ui
