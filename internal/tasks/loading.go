package tasks

import (
	"fmt"
	"sync"
)

// ScopeKind distinguishes the three loading scope flavors.
type ScopeKind int

const (
	KindPage ScopeKind = iota
	KindSection
	KindButton
)

// Scope names a region of the UI whose busy state is tracked independently:
// the whole page, a section, or a single button. The page scope is a
// singleton.
type Scope struct {
	Kind ScopeKind
	ID   string
}

func PageScope() Scope             { return Scope{Kind: KindPage} }
func SectionScope(id string) Scope { return Scope{Kind: KindSection, ID: id} }
func ButtonScope(id string) Scope  { return Scope{Kind: KindButton, ID: id} }

// Scope identifiers used by the coordinator's workflows.
const (
	SubscriptionsSection = "subscriptions"
	RefreshButton        = "refresh"
	SubscribeButton      = "subscribe"
)

// DeleteButton returns the per-row delete button identifier. The index only
// scopes the busy indicator; deletion identity is the subscription's natural
// key.
func DeleteButton(index int) string {
	return fmt.Sprintf("delete_%d", index)
}

// ControlState is the restorable visual state of a button-like control.
type ControlState struct {
	Label   string
	Enabled bool
}

// ScopeTracker tracks active loading scopes. Enter and Exit are idempotent
// per scope instance: entering an active scope or exiting an inactive one is
// a no-op, so double enter/exit never corrupts the saved state. Entering a
// button scope snapshots the registered control and disables it; exiting
// restores the snapshot exactly.
type ScopeTracker struct {
	mu       sync.Mutex
	active   map[Scope]struct{}
	controls map[string]ControlState
	saved    map[string]ControlState
}

func NewScopeTracker() *ScopeTracker {
	return &ScopeTracker{
		active:   make(map[Scope]struct{}),
		controls: make(map[string]ControlState),
		saved:    make(map[string]ControlState),
	}
}

// RegisterControl records the resting visual state of a button-like control.
func (t *ScopeTracker) RegisterControl(id string, state ControlState) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.controls[id] = state
}

// Control returns the current visual state of a registered control.
func (t *ScopeTracker) Control(id string) (ControlState, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	state, ok := t.controls[id]
	return state, ok
}

// Enter activates a scope. For button scopes the control's current state is
// snapshotted once and the control disabled.
func (t *ScopeTracker) Enter(s Scope) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.active[s]; ok {
		return
	}
	t.active[s] = struct{}{}

	if s.Kind == KindButton {
		if state, ok := t.controls[s.ID]; ok {
			t.saved[s.ID] = state
			state.Enabled = false
			t.controls[s.ID] = state
		}
	}
}

// Exit deactivates a scope, restoring any saved control state bit-for-bit.
func (t *ScopeTracker) Exit(s Scope) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.active[s]; !ok {
		return
	}
	delete(t.active, s)

	if s.Kind == KindButton {
		if state, ok := t.saved[s.ID]; ok {
			t.controls[s.ID] = state
			delete(t.saved, s.ID)
		}
	}
}

// Active reports whether a scope is currently entered.
func (t *ScopeTracker) Active(s Scope) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.active[s]
	return ok
}

// Busy reports whether any scope is active.
func (t *ScopeTracker) Busy() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active) > 0
}

// ActiveCount returns the number of active scopes.
func (t *ScopeTracker) ActiveCount() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.active)
}
