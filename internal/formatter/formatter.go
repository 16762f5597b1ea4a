// Package formatter renders subscription data into display form.
//
// Everything here is a pure function from domain values to strings or
// item-view descriptions: no network calls, no stored state, output
// recomputed from scratch on every call. Both the CLI and the TUI consume
// these renderers so placeholder and formatting rules live in one place.
package formatter

import (
	"fmt"
	"strings"

	"github.com/AryehRotberg/reactive-wings/internal/models"
)

const (
	placeholderNA  = "N/A"
	placeholderTBD = "TBD"
	statusUnknown  = "Unknown"
	displayLayout  = "Jan 2, 2006, 03:04 PM"
)

// SubscriptionItem is the renderable description of one subscription row.
// Key carries the deletion identity; Index is only a binding convenience for
// the per-row busy scope and must never be treated as identity.
type SubscriptionItem struct {
	Flight      string
	Airline     string
	Estimated   string
	Destination string
	Status      string
	Terminal    string
	Counters    string
	CheckinZone string
	Key         models.SubscriptionKey
	KeyErr      error
	Index       int
}

// FormatDisplayTime formats a wire timestamp for display, falling back to
// the N/A placeholder when the value is missing or unparseable.
func FormatDisplayTime(value string) string {
	t, err := models.ParseFlightTime(value)
	if err != nil {
		return placeholderNA
	}
	return t.Format(displayLayout)
}

func orElse(value, placeholder string) string {
	if strings.TrimSpace(value) == "" {
		return placeholder
	}
	return value
}

// BuildSubscriptionItems maps subscriptions to item views in list order.
func BuildSubscriptionItems(subs []models.FlightSubscription) []SubscriptionItem {
	items := make([]SubscriptionItem, 0, len(subs))
	for i, sub := range subs {
		key, err := sub.Key()
		items = append(items, SubscriptionItem{
			Flight:      fmt.Sprintf("%s %s", sub.AirlineCode, sub.FlightNumber),
			Airline:     orElse(sub.AirlineName, placeholderNA),
			Estimated:   FormatDisplayTime(sub.EstimatedTime),
			Destination: fmt.Sprintf("%s (%s)", orElse(sub.CityEn, placeholderNA), orElse(sub.CountryEn, placeholderNA)),
			Status:      orElse(sub.LastStatus, statusUnknown),
			Terminal:    orElse(sub.Terminal, placeholderTBD),
			Counters:    orElse(sub.Counters, placeholderTBD),
			CheckinZone: orElse(sub.CheckinZone, placeholderTBD),
			Key:         key,
			KeyErr:      err,
			Index:       i,
		})
	}
	return items
}

// RenderSubscriptionList renders the full list view: the empty state when
// there are no subscriptions, otherwise one block per subscription in list
// order.
func RenderSubscriptionList(subs []models.FlightSubscription) string {
	if len(subs) == 0 {
		return RenderEmptyState()
	}

	var b strings.Builder
	b.WriteString("Active Subscriptions\n")
	for _, item := range BuildSubscriptionItems(subs) {
		b.WriteString(fmt.Sprintf("\n%d. Flight %s - %s\n", item.Index+1, item.Flight, item.Airline))
		b.WriteString(fmt.Sprintf("   Estimated:     %s\n", item.Estimated))
		b.WriteString(fmt.Sprintf("   Destination:   %s\n", item.Destination))
		b.WriteString(fmt.Sprintf("   Status:        %s\n", item.Status))
		b.WriteString(fmt.Sprintf("   Terminal:      %s\n", item.Terminal))
		b.WriteString(fmt.Sprintf("   Counters:      %s\n", item.Counters))
		b.WriteString(fmt.Sprintf("   Check-in Zone: %s\n", item.CheckinZone))
	}
	return b.String()
}

// RenderEmptyState renders the view shown when no subscriptions exist.
func RenderEmptyState() string {
	return "No Active Subscriptions\nSubscribe to your first flight to get started!\n"
}

// RenderError renders a failure message.
func RenderError(message string) string {
	return fmt.Sprintf("Error: %s\n", message)
}

// RenderUserHeader renders the signed-in user line.
func RenderUserHeader(email string) string {
	return fmt.Sprintf("Signed in as %s\n", email)
}
