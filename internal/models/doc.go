// Package models defines the domain types shared across the client.
//
// Types here are service-agnostic: the HTTP layer translates between the
// service's snake_case wire format and these structs in exactly one place
// (internal/services/wire.go). Timestamps are carried as the strings the
// service emitted; parsing happens only where a derived value is needed
// (date keys, display formatting).
package models
