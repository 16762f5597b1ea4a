package services

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/AryehRotberg/reactive-wings/internal/models"
	"github.com/AryehRotberg/reactive-wings/internal/shared"
	tu "github.com/AryehRotberg/reactive-wings/internal/testing"
)

func TestFlightService(t *testing.T) {
	t.Run("New", func(t *testing.T) {
		t.Run("With Empty BaseURL", func(t *testing.T) {
			srv := NewFlightService("", nil)
			if srv.baseURL != "http://localhost:8080" {
				t.Errorf("expected default base URL, got %s", srv.baseURL)
			}
			if srv.httpClient != http.DefaultClient {
				t.Error("expected http.DefaultClient to be used")
			}
		})

		t.Run("Trims Trailing Slash", func(t *testing.T) {
			srv := NewFlightService("http://example.com/", nil)
			if srv.baseURL != "http://example.com" {
				t.Errorf("expected trimmed base URL, got %s", srv.baseURL)
			}
		})
	})

	t.Run("FetchUserContext", func(t *testing.T) {
		t.Run("Decodes User And Subscriptions", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodGet {
					t.Errorf("expected GET method, got %s", r.Method)
				}
				if r.URL.Path != "/users/user-info" {
					t.Errorf("expected path '/users/user-info', got %s", r.URL.Path)
				}

				w.Header().Set("Content-Type", "application/json")
				io.WriteString(w, `{
					"email": "a@b.com",
					"subscriptions": [{
						"airline_code": "LY",
						"flight_number": "001",
						"scheduled_time": "2024-03-05T14:30:00Z",
						"last_status": "ON TIME",
						"terminal": 3
					}]
				}`)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			uc, err := srv.FetchUserContext(context.Background())

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if uc.Email != "a@b.com" {
				t.Errorf("expected email 'a@b.com', got %s", uc.Email)
			}
			if len(uc.Subscriptions) != 1 {
				t.Fatalf("expected 1 subscription, got %d", len(uc.Subscriptions))
			}
			sub := uc.Subscriptions[0]
			if sub.AirlineCode != "LY" || sub.FlightNumber != "001" {
				t.Errorf("expected identity fields decoded, got %+v", sub)
			}
			if sub.Terminal != "3" {
				t.Errorf("expected numeric terminal decoded as string, got %q", sub.Terminal)
			}
		})

		t.Run("Empty Subscription List", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `{"email": "a@b.com", "subscriptions": []}`)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			uc, err := srv.FetchUserContext(context.Background())

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(uc.Subscriptions) != 0 {
				t.Errorf("expected empty subscriptions, got %d", len(uc.Subscriptions))
			}
		})

		t.Run("Non-2xx Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusInternalServerError)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			_, err := srv.FetchUserContext(context.Background())

			if err == nil {
				t.Fatal("expected error for 500 response")
			}
			if !errors.Is(err, shared.ErrAPIRequest) {
				t.Errorf("expected error to unwrap to ErrAPIRequest, got %v", err)
			}
			var statusErr *StatusError
			if !errors.As(err, &statusErr) {
				t.Fatalf("expected StatusError, got %T", err)
			}
			if statusErr.Status != http.StatusInternalServerError {
				t.Errorf("expected status 500, got %d", statusErr.Status)
			}
		})

		t.Run("Transport Error", func(t *testing.T) {
			client := &http.Client{
				Transport: tu.NewMockRoundTripper(nil, errors.New("connection failed")),
			}

			srv := NewFlightService("http://example.com", client)
			_, err := srv.FetchUserContext(context.Background())

			if err == nil {
				t.Error("expected error for failed transport")
			}
			if errors.Is(err, shared.ErrAPIRequest) {
				t.Error("transport errors should not masquerade as status errors")
			}
		})
	})

	t.Run("SearchFlights", func(t *testing.T) {
		t.Run("Sends Query Parameters", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.URL.Path != "/flights/search" {
					t.Errorf("expected path '/flights/search', got %s", r.URL.Path)
				}
				q := r.URL.Query()
				if q.Get("airline_code") != "LY" {
					t.Errorf("expected airline_code 'LY', got %s", q.Get("airline_code"))
				}
				if q.Get("flight_number") != "001" {
					t.Errorf("expected flight_number '001', got %s", q.Get("flight_number"))
				}
				if q.Get("scheduled_time") != "2024-01-01" {
					t.Errorf("expected scheduled_time '2024-01-01', got %s", q.Get("scheduled_time"))
				}

				io.WriteString(w, `[{"airline_code": "LY", "flight_number": "001", "scheduled_time": "2024-01-01T10:00:00Z", "status_en": "ON TIME"}]`)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			results, err := srv.SearchFlights(context.Background(), "LY", "001", "2024-01-01")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 1 {
				t.Fatalf("expected 1 result, got %d", len(results))
			}
			if results[0].StatusEn != "ON TIME" {
				t.Errorf("expected status_en decoded, got %q", results[0].StatusEn)
			}
		})

		t.Run("Preserves Server Order", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `[
					{"airline_code": "LY", "flight_number": "002", "scheduled_time": "2024-01-01T12:00:00Z"},
					{"airline_code": "LY", "flight_number": "001", "scheduled_time": "2024-01-01T10:00:00Z"}
				]`)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			results, err := srv.SearchFlights(context.Background(), "LY", "", "2024-01-01")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if results[0].FlightNumber != "002" || results[1].FlightNumber != "001" {
				t.Errorf("expected server order preserved, got %+v", results)
			}
		})

		t.Run("Empty Results Are Not An Error", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				io.WriteString(w, `[]`)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			results, err := srv.SearchFlights(context.Background(), "LY", "999", "2024-01-01")

			if err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
			if len(results) != 0 {
				t.Errorf("expected no results, got %d", len(results))
			}
		})
	})

	t.Run("Subscribe", func(t *testing.T) {
		t.Run("Posts Snake Case Body", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.URL.Path != "/users/subscribe" {
					t.Errorf("expected path '/users/subscribe', got %s", r.URL.Path)
				}
				if r.Header.Get("Content-Type") != "application/json" {
					t.Errorf("expected JSON content type, got %s", r.Header.Get("Content-Type"))
				}

				body, _ := io.ReadAll(r.Body)
				var data map[string]any
				if err := json.Unmarshal(body, &data); err != nil {
					t.Fatalf("failed to unmarshal request body: %v", err)
				}
				if data["airline_code"] != "LY" {
					t.Errorf("expected airline_code 'LY' untransformed, got %v", data["airline_code"])
				}
				if data["flight_number"] != "001" {
					t.Errorf("expected flight_number '001' untransformed, got %v", data["flight_number"])
				}
				if data["scheduled_time"] != "2024-01-01T10:00:00Z" {
					t.Errorf("expected scheduled_time carried verbatim, got %v", data["scheduled_time"])
				}
				if data["last_status"] != "ON TIME" {
					t.Errorf("expected last_status field, got %v", data["last_status"])
				}

				io.WriteString(w, `{"detail": "ok"}`)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			sub := models.SubscriptionFromResult(models.SearchResult{
				AirlineCode:   "LY",
				FlightNumber:  "001",
				ScheduledTime: "2024-01-01T10:00:00Z",
				StatusEn:      "ON TIME",
			}, time.Now())

			if err := srv.Subscribe(context.Background(), sub); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Non-2xx Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusBadRequest)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			err := srv.Subscribe(context.Background(), models.FlightSubscription{AirlineCode: "LY"})

			var statusErr *StatusError
			if !errors.As(err, &statusErr) || statusErr.Status != http.StatusBadRequest {
				t.Errorf("expected StatusError with 400, got %v", err)
			}
		})
	})

	t.Run("Unsubscribe", func(t *testing.T) {
		t.Run("Sends Date-Only Key As Form Query", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				if r.Method != http.MethodPost {
					t.Errorf("expected POST method, got %s", r.Method)
				}
				if r.URL.Path != "/users/unsubscribe" {
					t.Errorf("expected path '/users/unsubscribe', got %s", r.URL.Path)
				}
				if r.Header.Get("Content-Type") != "application/x-www-form-urlencoded" {
					t.Errorf("expected form content type, got %s", r.Header.Get("Content-Type"))
				}
				if r.ContentLength > 0 {
					t.Errorf("expected empty body, got %d bytes", r.ContentLength)
				}

				q := r.URL.Query()
				if q.Get("scheduled_date") != "2024-03-05" {
					t.Errorf("expected date-only scheduled_date '2024-03-05', got %s", q.Get("scheduled_date"))
				}
				if q.Get("airline_code") != "LY" || q.Get("flight_number") != "001" {
					t.Errorf("expected key fields in query, got %v", q)
				}

				io.WriteString(w, `{"detail": "ok"}`)
			}))
			defer server.Close()

			sub := models.FlightSubscription{
				AirlineCode:   "LY",
				FlightNumber:  "001",
				ScheduledTime: "2024-03-05T14:30:00Z",
			}
			key, err := sub.Key()
			if err != nil {
				t.Fatalf("failed to derive key: %v", err)
			}

			srv := NewFlightService(server.URL, nil)
			if err := srv.Unsubscribe(context.Background(), key); err != nil {
				t.Fatalf("expected no error, got %v", err)
			}
		})

		t.Run("Non-2xx Response", func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(http.StatusNotFound)
			}))
			defer server.Close()

			srv := NewFlightService(server.URL, nil)
			err := srv.Unsubscribe(context.Background(), models.SubscriptionKey{AirlineCode: "LY", FlightNumber: "001", ScheduledDate: "2024-03-05"})

			var statusErr *StatusError
			if !errors.As(err, &statusErr) || statusErr.Status != http.StatusNotFound {
				t.Errorf("expected StatusError with 404, got %v", err)
			}
		})
	})

	t.Run("With Canceled Context", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusOK)
		}))
		defer server.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		srv := NewFlightService(server.URL, nil)
		if _, err := srv.FetchUserContext(ctx); err == nil {
			t.Error("expected error for canceled context")
		}
	})
}

func TestNewSessionClient(t *testing.T) {
	t.Run("Attaches Bearer Token", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Authorization") != "Bearer tok123" {
				t.Errorf("expected bearer token header, got %q", r.Header.Get("Authorization"))
			}
			io.WriteString(w, `{"email": "a@b.com", "subscriptions": []}`)
		}))
		defer server.Close()

		client := NewSessionClient(context.Background(), shared.AuthConfig{SessionToken: "tok123"}, 5*time.Second)
		srv := NewFlightService(server.URL, client)
		if _, err := srv.FetchUserContext(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Attaches Session Cookie", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Header.Get("Cookie") != "jwt=abc" {
				t.Errorf("expected session cookie header, got %q", r.Header.Get("Cookie"))
			}
			io.WriteString(w, `{"email": "a@b.com", "subscriptions": []}`)
		}))
		defer server.Close()

		client := NewSessionClient(context.Background(), shared.AuthConfig{SessionCookie: "jwt=abc"}, 5*time.Second)
		srv := NewFlightService(server.URL, client)
		if _, err := srv.FetchUserContext(context.Background()); err != nil {
			t.Fatalf("expected no error, got %v", err)
		}
	})

	t.Run("Plain Client Without Credentials", func(t *testing.T) {
		client := NewSessionClient(context.Background(), shared.AuthConfig{}, 5*time.Second)
		if client.Transport != nil {
			t.Error("expected plain transport without credentials")
		}
		if client.Timeout != 5*time.Second {
			t.Errorf("expected timeout to be set, got %v", client.Timeout)
		}
	})
}
