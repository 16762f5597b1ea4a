package tasks

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/models"
	"github.com/AryehRotberg/reactive-wings/internal/services"
	"github.com/AryehRotberg/reactive-wings/internal/shared"
	"github.com/charmbracelet/log"
)

// MessageTTL is how long a transient workflow message stays on screen before
// it is cleared. A newer message replaces the current one; nothing queues.
const MessageTTL = 5 * time.Second

// Coordinator orchestrates the refresh, subscribe, and unsubscribe
// workflows. It owns the in-memory subscription list; the list is wholly
// replaced on every successful refresh and cleared on refresh failure, and
// is only reachable through copying accessors.
//
// Workflows may overlap (a delete can still be in flight when a new refresh
// starts); the last completion wins on the shared list. No generation
// counter rejects stale completions.
type Coordinator struct {
	api    services.FlightAPI
	scopes *ScopeTracker
	logger *log.Logger
	now    func() time.Time

	mu    sync.RWMutex
	email string
	subs  []models.FlightSubscription
}

// NewCoordinator creates a Coordinator with the given dependencies. A nil
// tracker or logger gets a default.
func NewCoordinator(api services.FlightAPI, scopes *ScopeTracker, logger *log.Logger) *Coordinator {
	if scopes == nil {
		scopes = NewScopeTracker()
	}
	if logger == nil {
		logger = shared.NewLogger(nil)
	}
	return &Coordinator{
		api:    api,
		scopes: scopes,
		logger: logger,
		now:    time.Now,
	}
}

// Scopes returns the loading-scope tracker shared with the UI layer.
func (c *Coordinator) Scopes() *ScopeTracker {
	return c.scopes
}

// Subscriptions returns a copy of the current subscription list.
func (c *Coordinator) Subscriptions() []models.FlightSubscription {
	c.mu.RLock()
	defer c.mu.RUnlock()
	subs := make([]models.FlightSubscription, len(c.subs))
	copy(subs, c.subs)
	return subs
}

// Email returns the email from the last successful refresh.
func (c *Coordinator) Email() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.email
}

func (c *Coordinator) replace(email string, subs []models.FlightSubscription) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.email = email
	c.subs = subs
}

// RefreshResult is the outcome of a refresh workflow.
type RefreshResult struct {
	Email         string
	Subscriptions []models.FlightSubscription
	Err           error
}

// Message returns the transient text to display for this outcome, or "" for
// a silent success.
func (r RefreshResult) Message() string {
	if r.Err != nil {
		return fmt.Sprintf("Failed to load subscriptions: %v", r.Err)
	}
	return ""
}

// Refresh re-fetches the user context and wholly replaces the local list.
// On failure the list is cleared rather than left stale next to an error.
func (c *Coordinator) Refresh(ctx context.Context) RefreshResult {
	c.scopes.Enter(SectionScope(SubscriptionsSection))
	c.scopes.Enter(ButtonScope(RefreshButton))
	defer c.scopes.Exit(SectionScope(SubscriptionsSection))
	defer c.scopes.Exit(ButtonScope(RefreshButton))

	uc, err := c.api.FetchUserContext(ctx)
	if err != nil {
		c.logger.Error("failed to load subscriptions", "err", err)
		c.replace("", nil)
		return RefreshResult{Err: err}
	}

	c.replace(uc.Email, uc.Subscriptions)
	c.logger.Debug("subscriptions refreshed", "email", uc.Email, "count", len(uc.Subscriptions))
	return RefreshResult{Email: uc.Email, Subscriptions: c.Subscriptions()}
}

// SubscribeStatus classifies how a subscribe workflow ended.
type SubscribeStatus int

const (
	Subscribed SubscribeStatus = iota
	SubscribeInvalid
	SubscribeNoFlights
	SubscribeFailed
)

// SubscribeResult is the outcome of a subscribe workflow. A Subscribed
// status asks the caller to trigger a refresh and reset the form.
type SubscribeResult struct {
	Status  SubscribeStatus
	Message string
	Err     error
}

// Subscribe runs validation, flight search, and subscription submission as
// one workflow. Validation checks presence only. When several flights match,
// the first result wins; server-defined ordering is the tie-break, never a
// user prompt.
func (c *Coordinator) Subscribe(ctx context.Context, airlineCode, flightNumber, scheduledDate string) SubscribeResult {
	c.scopes.Enter(ButtonScope(SubscribeButton))
	defer c.scopes.Exit(ButtonScope(SubscribeButton))

	if airlineCode == "" || flightNumber == "" || scheduledDate == "" {
		return SubscribeResult{
			Status:  SubscribeInvalid,
			Message: "Please fill in all fields.",
			Err:     shared.ErrMissingField,
		}
	}

	results, err := c.api.SearchFlights(ctx, airlineCode, flightNumber, scheduledDate)
	if err != nil {
		c.logger.Error("flight search failed", "err", err)
		return SubscribeResult{
			Status:  SubscribeFailed,
			Message: fmt.Sprintf("Failed to subscribe: %v", err),
			Err:     err,
		}
	}

	if len(results) == 0 {
		return SubscribeResult{
			Status:  SubscribeNoFlights,
			Message: "No flights found with the specified criteria.",
			Err:     shared.ErrNoFlightsFound,
		}
	}

	sub := models.SubscriptionFromResult(results[0], c.now())
	if err := c.api.Subscribe(ctx, sub); err != nil {
		c.logger.Error("subscription failed", "err", err)
		return SubscribeResult{
			Status:  SubscribeFailed,
			Message: fmt.Sprintf("Failed to subscribe: %v", err),
			Err:     err,
		}
	}

	c.logger.Info("subscribed", "airline", sub.AirlineCode, "flight", sub.FlightNumber)
	return SubscribeResult{
		Status:  Subscribed,
		Message: "Flight subscription added successfully!",
	}
}

// UnsubscribeResult is the outcome of an unsubscribe workflow. On success
// the caller triggers a refresh; the client never edits the list locally.
type UnsubscribeResult struct {
	Message string
	Err     error
}

// Unsubscribe deletes a subscription by its natural key. The index
// parameter only names the per-row busy scope.
func (c *Coordinator) Unsubscribe(ctx context.Context, key models.SubscriptionKey, index int) UnsubscribeResult {
	scope := ButtonScope(DeleteButton(index))
	c.scopes.Enter(scope)
	defer c.scopes.Exit(scope)

	if err := c.api.Unsubscribe(ctx, key); err != nil {
		c.logger.Error("failed to delete subscription", "err", err)
		return UnsubscribeResult{
			Message: fmt.Sprintf("Failed to delete subscription: %v", err),
			Err:     err,
		}
	}

	c.logger.Info("unsubscribed", "airline", key.AirlineCode, "flight", key.FlightNumber, "date", key.ScheduledDate)
	return UnsubscribeResult{Message: "Subscription deleted successfully!"}
}
