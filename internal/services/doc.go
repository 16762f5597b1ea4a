// Package services implements the HTTP client for the flight-subscription
// REST service.
//
// The client is stateless and side-effect-only: each operation issues one
// request, returns a typed payload, and reports any non-2xx response as a
// [*StatusError]. Retry policy, if any, belongs to the caller. The service's
// snake_case wire format is translated to and from the domain types in
// wire.go and nowhere else.
package services
