package ui

import (
	"fmt"

	"github.com/AryehRotberg/reactive-wings/internal/formatter"
	"github.com/charmbracelet/bubbles/list"
)

var _ list.Item = subscriptionItem{}

// subscriptionItem wraps [formatter.SubscriptionItem] to implement [list.Item].
type subscriptionItem struct {
	view formatter.SubscriptionItem
}

func (i subscriptionItem) FilterValue() string { return i.view.Flight }
func (i subscriptionItem) Title() string {
	return fmt.Sprintf("%s • %s", i.view.Flight, i.view.Airline)
}
func (i subscriptionItem) Description() string {
	return fmt.Sprintf("%s • %s • %s • Terminal %s", i.view.Status, i.view.Estimated, i.view.Destination, i.view.Terminal)
}
