package services

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/AryehRotberg/reactive-wings/internal/models"
	"golang.org/x/time/rate"
)

const defaultBaseURL = "http://localhost:8080/"

// FlightService implements [FlightAPI] against the REST endpoints of the
// flight-subscription service.
type FlightService struct {
	baseURL    string
	httpClient *http.Client
	limiter    *rate.Limiter
}

var _ FlightAPI = (*FlightService)(nil)

// NewFlightService creates a flight API client for the given base URL.
// A nil client falls back to [http.DefaultClient]. Requests are paced with a
// small client-side limiter so bursty UI interactions don't hammer the
// service.
func NewFlightService(baseURL string, client *http.Client) *FlightService {
	if baseURL == "" {
		baseURL = defaultBaseURL
	}
	if client == nil {
		client = http.DefaultClient
	}

	return &FlightService{
		baseURL:    strings.TrimSuffix(baseURL, "/"),
		httpClient: client,
		limiter:    rate.NewLimiter(rate.Limit(10), 10),
	}
}

// FetchUserContext retrieves the signed-in user's email and subscriptions.
func (s *FlightService) FetchUserContext(ctx context.Context) (*models.UserContext, error) {
	var payload userInfoPayload
	if err := s.doRequest(ctx, http.MethodGet, "users/user-info", nil, nil, &payload, "failed to fetch user info"); err != nil {
		return nil, err
	}
	return decodeUserContext(payload), nil
}

// SearchFlights looks up candidate flights for the given criteria. The
// scheduledDate parameter is the date-only form the search endpoint expects.
func (s *FlightService) SearchFlights(ctx context.Context, airlineCode, flightNumber, scheduledDate string) ([]models.SearchResult, error) {
	query := url.Values{}
	query.Set("airline_code", airlineCode)
	query.Set("flight_number", flightNumber)
	query.Set("scheduled_time", scheduledDate)

	var payload []searchResultPayload
	if err := s.doRequest(ctx, http.MethodGet, "flights/search", query, nil, &payload, "flight search failed"); err != nil {
		return nil, err
	}

	results := make([]models.SearchResult, 0, len(payload))
	for _, p := range payload {
		results = append(results, decodeSearchResult(p))
	}
	return results, nil
}

// Subscribe creates a standing watch on a flight.
func (s *FlightService) Subscribe(ctx context.Context, sub models.FlightSubscription) error {
	body, err := json.Marshal(encodeSubscription(sub))
	if err != nil {
		return fmt.Errorf("failed to encode subscription: %w", err)
	}
	return s.doRequest(ctx, http.MethodPost, "users/subscribe", nil, body, nil, "subscription failed")
}

// Unsubscribe removes a subscription by its natural key. Parameters travel
// as a form-encoded query string with no body, matching the service.
func (s *FlightService) Unsubscribe(ctx context.Context, key models.SubscriptionKey) error {
	query := url.Values{}
	query.Set("airline_code", key.AirlineCode)
	query.Set("flight_number", key.FlightNumber)
	query.Set("scheduled_date", key.ScheduledDate)

	endpoint := s.baseURL + "/users/unsubscribe?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	return s.send(req, nil, "failed to delete subscription")
}

// doRequest builds and sends a JSON request, decoding the response into
// result when given. Non-2xx statuses surface as [*StatusError] labeled with
// op.
func (s *FlightService) doRequest(ctx context.Context, method, path string, query url.Values, body []byte, result any, op string) error {
	endpoint := s.baseURL + "/" + path
	if len(query) > 0 {
		endpoint += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return s.send(req, result, op)
}

func (s *FlightService) send(req *http.Request, result any, op string) error {
	if err := s.limiter.Wait(req.Context()); err != nil {
		return fmt.Errorf("request canceled: %w", err)
	}

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &StatusError{Op: op, Status: resp.StatusCode}
	}

	if result != nil {
		if err := json.NewDecoder(resp.Body).Decode(result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
