// Package tasks coordinates the user-facing subscription workflows.
//
// The core abstraction is [Coordinator], which owns the in-memory
// subscription list as the single source of truth and runs the three
// workflows (refresh, subscribe, unsubscribe) against a [services.FlightAPI].
// Each workflow brackets its work in loading scopes on a [ScopeTracker] and
// releases them on every exit path. Workflows report outcomes as values;
// rendering them is the caller's concern.
package tasks
