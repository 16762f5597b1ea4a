// package testing contains shared testing utilities
package testing

import (
	"context"
	"errors"
	"net/http"
	"sync"

	"github.com/AryehRotberg/reactive-wings/internal/models"
)

// MockFlightAPI is a test double for [services.FlightAPI]. Behavior is
// customized via the function fields; unset fields succeed with zero values.
// Calls are recorded for assertions.
type MockFlightAPI struct {
	FetchUserContextFunc func(ctx context.Context) (*models.UserContext, error)
	SearchFlightsFunc    func(ctx context.Context, airlineCode, flightNumber, scheduledDate string) ([]models.SearchResult, error)
	SubscribeFunc        func(ctx context.Context, sub models.FlightSubscription) error
	UnsubscribeFunc      func(ctx context.Context, key models.SubscriptionKey) error

	mu               sync.Mutex
	FetchCalls       int
	SearchCalls      int
	SubscribeCalls   []models.FlightSubscription
	UnsubscribeCalls []models.SubscriptionKey
}

func (m *MockFlightAPI) FetchUserContext(ctx context.Context) (*models.UserContext, error) {
	m.mu.Lock()
	m.FetchCalls++
	m.mu.Unlock()
	if m.FetchUserContextFunc != nil {
		return m.FetchUserContextFunc(ctx)
	}
	return &models.UserContext{}, nil
}

func (m *MockFlightAPI) SearchFlights(ctx context.Context, airlineCode, flightNumber, scheduledDate string) ([]models.SearchResult, error) {
	m.mu.Lock()
	m.SearchCalls++
	m.mu.Unlock()
	if m.SearchFlightsFunc != nil {
		return m.SearchFlightsFunc(ctx, airlineCode, flightNumber, scheduledDate)
	}
	return nil, nil
}

func (m *MockFlightAPI) Subscribe(ctx context.Context, sub models.FlightSubscription) error {
	m.mu.Lock()
	m.SubscribeCalls = append(m.SubscribeCalls, sub)
	m.mu.Unlock()
	if m.SubscribeFunc != nil {
		return m.SubscribeFunc(ctx, sub)
	}
	return nil
}

func (m *MockFlightAPI) Unsubscribe(ctx context.Context, key models.SubscriptionKey) error {
	m.mu.Lock()
	m.UnsubscribeCalls = append(m.UnsubscribeCalls, key)
	m.mu.Unlock()
	if m.UnsubscribeFunc != nil {
		return m.UnsubscribeFunc(ctx, key)
	}
	return nil
}

// MockRoundTripper allows custom HTTP responses for testing
type MockRoundTripper struct {
	response *http.Response
	err      error
}

func NewMockRoundTripper(r *http.Response, e error) *MockRoundTripper {
	return &MockRoundTripper{response: r, err: e}
}

func (m *MockRoundTripper) RoundTrip(*http.Request) (*http.Response, error) {
	return m.response, m.err
}

// FCloser simulates a failure when reading response body
type FCloser struct{}

func (f *FCloser) Read(p []byte) (n int, err error) {
	return 0, errors.New("read failed")
}

func (f *FCloser) Close() error {
	return nil
}
