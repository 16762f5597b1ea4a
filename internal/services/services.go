package services

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/models"
	"github.com/AryehRotberg/reactive-wings/internal/shared"
	"golang.org/x/oauth2"
)

// FlightAPI defines the four operations the client performs against the
// flight-subscription service.
type FlightAPI interface {
	// FetchUserContext retrieves the signed-in user's email and subscriptions
	// as one atomic unit.
	FetchUserContext(ctx context.Context) (*models.UserContext, error)

	// SearchFlights looks up candidate flights. The server-defined result
	// order is preserved; an empty slice is a normal outcome, not an error.
	SearchFlights(ctx context.Context, airlineCode, flightNumber, scheduledDate string) ([]models.SearchResult, error)

	// Subscribe creates a standing watch on a flight. The payload is not
	// validated here; presence checks happen upstream.
	Subscribe(ctx context.Context, sub models.FlightSubscription) error

	// Unsubscribe removes a subscription by its natural key. The key's
	// scheduled date must already be date-only.
	Unsubscribe(ctx context.Context, key models.SubscriptionKey) error
}

// StatusError reports a non-2xx response from the flight service. It carries
// the HTTP status and unwraps to [shared.ErrAPIRequest] so callers can test
// with errors.Is while extracting the status with errors.As.
type StatusError struct {
	Op     string
	Status int
}

func (e *StatusError) Error() string {
	return fmt.Sprintf("%s: status %d", e.Op, e.Status)
}

func (e *StatusError) Unwrap() error {
	return shared.ErrAPIRequest
}

// sessionTransport attaches an externally issued session cookie to every
// request. The cookie is sent verbatim; the service enforces authentication.
type sessionTransport struct {
	cookie string
	base   http.RoundTripper
}

func (t *sessionTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	clone := req.Clone(req.Context())
	clone.Header.Set("Cookie", t.cookie)
	base := t.base
	if base == nil {
		base = http.DefaultTransport
	}
	return base.RoundTrip(clone)
}

// NewSessionClient builds an *http.Client carrying the configured session
// credential. A bearer token is attached via [oauth2]; a raw cookie via a
// wrapping transport. With neither set, a plain client is returned and the
// service will answer 401s.
func NewSessionClient(ctx context.Context, auth shared.AuthConfig, timeout time.Duration) *http.Client {
	if auth.SessionToken != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: auth.SessionToken})
		client := oauth2.NewClient(ctx, src)
		client.Timeout = timeout
		return client
	}

	client := &http.Client{Timeout: timeout}
	if auth.SessionCookie != "" {
		client.Transport = &sessionTransport{cookie: auth.SessionCookie}
	}
	return client
}
