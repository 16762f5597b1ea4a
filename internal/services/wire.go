// Wire format of the flight-subscription service.
//
// The service speaks snake_case; the rest of the client speaks the domain
// types in [models]. Every field crosses the boundary here and only here.
package services

import (
	"encoding/json"

	"github.com/AryehRotberg/reactive-wings/internal/models"
)

// subscriptionPayload is the wire shape of a stored subscription, used both
// in the user-info response and as the subscribe request body.
type subscriptionPayload struct {
	AirlineCode   string     `json:"airline_code"`
	FlightNumber  string     `json:"flight_number"`
	ScheduledTime string     `json:"scheduled_time"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
	LastStatus    string     `json:"last_status,omitempty"`
	AirlineName   string     `json:"airline_name,omitempty"`
	AirportCode   string     `json:"airport_code,omitempty"`
	CityEn        string     `json:"city_en,omitempty"`
	CityHe        string     `json:"city_he,omitempty"`
	CountryEn     string     `json:"country_en,omitempty"`
	CountryHe     string     `json:"country_he,omitempty"`
	Terminal      flexString `json:"terminal,omitempty"`
	Counters      flexString `json:"counters,omitempty"`
	CheckinZone   string     `json:"checkin_zone,omitempty"`
	LastUpdated   string     `json:"last_updated,omitempty"`
}

// searchResultPayload is the wire shape of a search hit. Identical to a
// subscription except the status arrives as status_en and there is no
// last_updated.
type searchResultPayload struct {
	AirlineCode   string     `json:"airline_code"`
	FlightNumber  string     `json:"flight_number"`
	ScheduledTime string     `json:"scheduled_time"`
	EstimatedTime string     `json:"estimated_time,omitempty"`
	StatusEn      string     `json:"status_en,omitempty"`
	AirlineName   string     `json:"airline_name,omitempty"`
	AirportCode   string     `json:"airport_code,omitempty"`
	CityEn        string     `json:"city_en,omitempty"`
	CityHe        string     `json:"city_he,omitempty"`
	CountryEn     string     `json:"country_en,omitempty"`
	CountryHe     string     `json:"country_he,omitempty"`
	Terminal      flexString `json:"terminal,omitempty"`
	Counters      flexString `json:"counters,omitempty"`
	CheckinZone   string     `json:"checkin_zone,omitempty"`
}

// userInfoPayload is the wire shape of GET users/user-info.
type userInfoPayload struct {
	Email         string                `json:"email"`
	Subscriptions []subscriptionPayload `json:"subscriptions"`
}

// flexString tolerates fields the upstream feed sometimes emits as numbers
// (terminal, counters) and sometimes as strings.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*f = flexString(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}

func (f flexString) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(f))
}

func decodeSubscription(p subscriptionPayload) models.FlightSubscription {
	return models.FlightSubscription{
		AirlineCode:   p.AirlineCode,
		FlightNumber:  p.FlightNumber,
		ScheduledTime: p.ScheduledTime,
		EstimatedTime: p.EstimatedTime,
		LastStatus:    p.LastStatus,
		AirlineName:   p.AirlineName,
		AirportCode:   p.AirportCode,
		CityEn:        p.CityEn,
		CityHe:        p.CityHe,
		CountryEn:     p.CountryEn,
		CountryHe:     p.CountryHe,
		Terminal:      string(p.Terminal),
		Counters:      string(p.Counters),
		CheckinZone:   p.CheckinZone,
		LastUpdated:   p.LastUpdated,
	}
}

func encodeSubscription(s models.FlightSubscription) subscriptionPayload {
	return subscriptionPayload{
		AirlineCode:   s.AirlineCode,
		FlightNumber:  s.FlightNumber,
		ScheduledTime: s.ScheduledTime,
		EstimatedTime: s.EstimatedTime,
		LastStatus:    s.LastStatus,
		AirlineName:   s.AirlineName,
		AirportCode:   s.AirportCode,
		CityEn:        s.CityEn,
		CityHe:        s.CityHe,
		CountryEn:     s.CountryEn,
		CountryHe:     s.CountryHe,
		Terminal:      flexString(s.Terminal),
		Counters:      flexString(s.Counters),
		CheckinZone:   s.CheckinZone,
		LastUpdated:   s.LastUpdated,
	}
}

func decodeSearchResult(p searchResultPayload) models.SearchResult {
	return models.SearchResult{
		AirlineCode:   p.AirlineCode,
		FlightNumber:  p.FlightNumber,
		ScheduledTime: p.ScheduledTime,
		EstimatedTime: p.EstimatedTime,
		StatusEn:      p.StatusEn,
		AirlineName:   p.AirlineName,
		AirportCode:   p.AirportCode,
		CityEn:        p.CityEn,
		CityHe:        p.CityHe,
		CountryEn:     p.CountryEn,
		CountryHe:     p.CountryHe,
		Terminal:      string(p.Terminal),
		Counters:      string(p.Counters),
		CheckinZone:   p.CheckinZone,
	}
}

func decodeUserContext(p userInfoPayload) *models.UserContext {
	subs := make([]models.FlightSubscription, 0, len(p.Subscriptions))
	for _, sp := range p.Subscriptions {
		subs = append(subs, decodeSubscription(sp))
	}
	return &models.UserContext{Email: p.Email, Subscriptions: subs}
}
