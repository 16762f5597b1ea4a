package models

import (
	"fmt"
	"strings"
	"time"
)

// flightTimeLayouts are the timestamp shapes the service has been observed
// emitting. The origin feed uses zone-less local datetimes.
var flightTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// FlightSubscription is one user's standing watch on a flight occurrence.
// Read-only from the client's perspective: it is created by subscribing,
// removed by unsubscribing, and never edited in place.
type FlightSubscription struct {
	AirlineCode   string
	FlightNumber  string
	ScheduledTime string
	EstimatedTime string
	LastStatus    string
	AirlineName   string
	AirportCode   string
	CityEn        string
	CityHe        string
	CountryEn     string
	CountryHe     string
	Terminal      string
	Counters      string
	CheckinZone   string
	LastUpdated   string
}

// SearchResult is a candidate flight returned by a search query. Same shape
// as FlightSubscription minus the client-stamped LastUpdated; the status
// field comes back under a different wire name (status_en).
type SearchResult struct {
	AirlineCode   string
	FlightNumber  string
	ScheduledTime string
	EstimatedTime string
	StatusEn      string
	AirlineName   string
	AirportCode   string
	CityEn        string
	CityHe        string
	CountryEn     string
	CountryHe     string
	Terminal      string
	Counters      string
	CheckinZone   string
}

// UserContext is the signed-in user's email plus their subscriptions,
// fetched as one atomic unit.
type UserContext struct {
	Email         string
	Subscriptions []FlightSubscription
}

// SubscriptionKey is the natural deletion identity of a subscription:
// airline code, flight number, and the scheduled date truncated to the day.
// The service stores the full scheduled time but keys deletes by date only,
// so the truncation is required, not incidental.
type SubscriptionKey struct {
	AirlineCode   string
	FlightNumber  string
	ScheduledDate string
}

// ParseFlightTime parses a timestamp string in any of the service's known
// layouts.
func ParseFlightTime(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("empty timestamp")
	}
	for _, layout := range flightTimeLayouts {
		if t, err := time.Parse(layout, value); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognized timestamp %q", value)
}

// ScheduledDateKey derives the calendar-day-only key (yyyy-mm-dd) from a
// scheduled time value.
func ScheduledDateKey(scheduledTime string) (string, error) {
	t, err := ParseFlightTime(scheduledTime)
	if err != nil {
		return "", fmt.Errorf("failed to derive scheduled date: %w", err)
	}
	return t.Format("2006-01-02"), nil
}

// Key returns the subscription's natural deletion identity.
func (s FlightSubscription) Key() (SubscriptionKey, error) {
	date, err := ScheduledDateKey(s.ScheduledTime)
	if err != nil {
		return SubscriptionKey{}, err
	}
	return SubscriptionKey{
		AirlineCode:   s.AirlineCode,
		FlightNumber:  s.FlightNumber,
		ScheduledDate: date,
	}, nil
}

// SubscriptionFromResult builds the subscription payload for a chosen search
// result. The airline code, flight number, and timestamps are carried over
// exactly as the service returned them; lastUpdated is stamped by the client
// at subscribe time.
func SubscriptionFromResult(r SearchResult, lastUpdated time.Time) FlightSubscription {
	return FlightSubscription{
		AirlineCode:   r.AirlineCode,
		FlightNumber:  r.FlightNumber,
		ScheduledTime: r.ScheduledTime,
		EstimatedTime: r.EstimatedTime,
		LastStatus:    r.StatusEn,
		AirlineName:   r.AirlineName,
		AirportCode:   r.AirportCode,
		CityEn:        r.CityEn,
		CityHe:        r.CityHe,
		CountryEn:     r.CountryEn,
		CountryHe:     r.CountryHe,
		Terminal:      r.Terminal,
		Counters:      r.Counters,
		CheckinZone:   r.CheckinZone,
		LastUpdated:   lastUpdated.UTC().Format(time.RFC3339),
	}
}
