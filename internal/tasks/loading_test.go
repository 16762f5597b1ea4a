package tasks

import "testing"

func TestScopeTracker(t *testing.T) {
	t.Run("Enter And Exit Toggle Activity", func(t *testing.T) {
		tracker := NewScopeTracker()
		scope := SectionScope(SubscriptionsSection)

		tracker.Enter(scope)
		if !tracker.Active(scope) {
			t.Error("expected scope to be active after Enter")
		}

		tracker.Exit(scope)
		if tracker.Active(scope) {
			t.Error("expected scope to be inactive after Exit")
		}
	})

	t.Run("Scopes Are Independent", func(t *testing.T) {
		tracker := NewScopeTracker()

		tracker.Enter(SectionScope(SubscriptionsSection))
		tracker.Enter(ButtonScope(RefreshButton))
		tracker.Exit(ButtonScope(RefreshButton))

		if !tracker.Active(SectionScope(SubscriptionsSection)) {
			t.Error("exiting one scope must not affect another")
		}
		if tracker.ActiveCount() != 1 {
			t.Errorf("expected 1 active scope, got %d", tracker.ActiveCount())
		}
	})

	t.Run("Page Scope Is A Singleton", func(t *testing.T) {
		tracker := NewScopeTracker()

		tracker.Enter(PageScope())
		tracker.Enter(PageScope())
		if tracker.ActiveCount() != 1 {
			t.Errorf("expected single page scope, got %d active", tracker.ActiveCount())
		}

		tracker.Exit(PageScope())
		tracker.Exit(PageScope())
		if tracker.Busy() {
			t.Error("expected no active scopes after double exit")
		}
	})

	t.Run("Button Scope Restores Control State Exactly", func(t *testing.T) {
		tracker := NewScopeTracker()
		original := ControlState{Label: "Refresh", Enabled: true}
		tracker.RegisterControl(RefreshButton, original)

		tracker.Enter(ButtonScope(RefreshButton))
		state, _ := tracker.Control(RefreshButton)
		if state.Enabled {
			t.Error("expected control disabled while scope is active")
		}
		if state.Label != "Refresh" {
			t.Errorf("expected label preserved, got %q", state.Label)
		}

		tracker.Exit(ButtonScope(RefreshButton))
		state, _ = tracker.Control(RefreshButton)
		if state != original {
			t.Errorf("expected original state restored, got %+v", state)
		}
	})

	t.Run("Enter Exit Twice Is Idempotent", func(t *testing.T) {
		tracker := NewScopeTracker()
		original := ControlState{Label: "Subscribe", Enabled: true}
		tracker.RegisterControl(SubscribeButton, original)

		for i := 0; i < 2; i++ {
			tracker.Enter(ButtonScope(SubscribeButton))
			tracker.Exit(ButtonScope(SubscribeButton))
		}

		state, _ := tracker.Control(SubscribeButton)
		if state != original {
			t.Errorf("expected state unchanged after repeated enter/exit, got %+v", state)
		}
	})

	t.Run("Double Enter Keeps First Snapshot", func(t *testing.T) {
		tracker := NewScopeTracker()
		original := ControlState{Label: "Remove Subscription", Enabled: true}
		tracker.RegisterControl(DeleteButton(0), original)

		scope := ButtonScope(DeleteButton(0))
		tracker.Enter(scope)
		tracker.Enter(scope)
		tracker.Exit(scope)

		state, _ := tracker.Control(DeleteButton(0))
		if state != original {
			t.Errorf("expected original state after double enter, got %+v", state)
		}
	})

	t.Run("Exit Without Enter Is A No-Op", func(t *testing.T) {
		tracker := NewScopeTracker()
		original := ControlState{Label: "Refresh", Enabled: true}
		tracker.RegisterControl(RefreshButton, original)

		tracker.Exit(ButtonScope(RefreshButton))

		state, _ := tracker.Control(RefreshButton)
		if state != original {
			t.Errorf("expected state untouched by spurious exit, got %+v", state)
		}
	})
}

func TestDeleteButton(t *testing.T) {
	if DeleteButton(3) != "delete_3" {
		t.Errorf("expected 'delete_3', got %s", DeleteButton(3))
	}
}
