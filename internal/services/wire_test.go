package services

import (
	"encoding/json"
	"testing"

	"github.com/AryehRotberg/reactive-wings/internal/models"
)

// The field-name mapping between the service's snake_case vocabulary and the
// domain types lives in one place; these tests pin the full field list so
// drift shows up immediately.
func TestWireMapping(t *testing.T) {
	t.Run("Subscription Round Trip", func(t *testing.T) {
		sub := models.FlightSubscription{
			AirlineCode:   "LY",
			FlightNumber:  "001",
			ScheduledTime: "2024-03-05T14:30:00Z",
			EstimatedTime: "2024-03-05T14:55:00Z",
			LastStatus:    "DELAYED",
			AirlineName:   "EL AL",
			AirportCode:   "JFK",
			CityEn:        "New York",
			CityHe:        "ניו יורק",
			CountryEn:     "USA",
			CountryHe:     "ארהב",
			Terminal:      "3",
			Counters:      "61-68",
			CheckinZone:   "B",
			LastUpdated:   "2024-03-05T12:00:00Z",
		}

		decoded := decodeSubscription(encodeSubscription(sub))
		if decoded != sub {
			t.Errorf("round trip mutated subscription:\n got %+v\nwant %+v", decoded, sub)
		}
	})

	t.Run("Subscription JSON Field Names", func(t *testing.T) {
		data, err := json.Marshal(encodeSubscription(models.FlightSubscription{
			AirlineCode:   "LY",
			FlightNumber:  "001",
			ScheduledTime: "2024-03-05T14:30:00Z",
			EstimatedTime: "2024-03-05T14:55:00Z",
			LastStatus:    "DELAYED",
			AirlineName:   "EL AL",
			AirportCode:   "JFK",
			CityEn:        "New York",
			CityHe:        "ניו יורק",
			CountryEn:     "USA",
			CountryHe:     "ארהב",
			Terminal:      "3",
			Counters:      "61-68",
			CheckinZone:   "B",
			LastUpdated:   "2024-03-05T12:00:00Z",
		}))
		if err != nil {
			t.Fatalf("failed to marshal: %v", err)
		}

		var raw map[string]any
		if err := json.Unmarshal(data, &raw); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}

		for _, field := range []string{
			"airline_code", "flight_number", "scheduled_time", "estimated_time",
			"last_status", "airline_name", "airport_code", "city_en", "city_he",
			"country_en", "country_he", "terminal", "counters", "checkin_zone",
			"last_updated",
		} {
			if _, ok := raw[field]; !ok {
				t.Errorf("expected wire field %q to be present", field)
			}
		}
		if len(raw) != 15 {
			t.Errorf("expected exactly 15 wire fields, got %d: %v", len(raw), raw)
		}
	})

	t.Run("Search Result Uses status_en", func(t *testing.T) {
		var p searchResultPayload
		if err := json.Unmarshal([]byte(`{"airline_code": "LY", "status_en": "LANDED"}`), &p); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}

		result := decodeSearchResult(p)
		if result.StatusEn != "LANDED" {
			t.Errorf("expected status_en decoded, got %q", result.StatusEn)
		}
	})

	t.Run("Numeric Terminal And Counters", func(t *testing.T) {
		var p searchResultPayload
		if err := json.Unmarshal([]byte(`{"terminal": 3, "counters": 42}`), &p); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}

		if string(p.Terminal) != "3" {
			t.Errorf("expected terminal '3', got %q", p.Terminal)
		}
		if string(p.Counters) != "42" {
			t.Errorf("expected counters '42', got %q", p.Counters)
		}
	})

	t.Run("Null Terminal", func(t *testing.T) {
		var p searchResultPayload
		if err := json.Unmarshal([]byte(`{"terminal": null}`), &p); err != nil {
			t.Fatalf("failed to unmarshal: %v", err)
		}
		if string(p.Terminal) != "" {
			t.Errorf("expected empty terminal for null, got %q", p.Terminal)
		}
	})
}
