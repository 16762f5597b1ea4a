package ui

import "github.com/AryehRotberg/reactive-wings/internal/tasks"

// refreshDoneMsg carries the outcome of a refresh workflow.
type refreshDoneMsg struct {
	res tasks.RefreshResult
}

// subscribeDoneMsg carries the outcome of a subscribe workflow.
type subscribeDoneMsg struct {
	res tasks.SubscribeResult
}

// unsubscribeDoneMsg carries the outcome of an unsubscribe workflow along
// with the row index whose delete action produced it.
type unsubscribeDoneMsg struct {
	res   tasks.UnsubscribeResult
	index int
}

// clearMessageMsg expires the transient message with the given sequence
// number. A stale sequence is ignored so a newer message is not cut short.
type clearMessageMsg struct {
	seq int
}
