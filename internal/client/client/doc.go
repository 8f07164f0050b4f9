// Package client talks to the SHIELD detection API.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface): login,
//     signup, current user, detection checks, dashboard data, feedback and
//     a liveness check.
//  2. An HTTP implementation (see HTTPClient) over a configurable base URL.
//     Each call is a single attempt; there is no retry and no client-side
//     timeout unless the caller's context carries a deadline.
//  3. Credential, the in-memory bearer token holder. A RoundTripper reads it
//     immediately before each request leaves the process and, when it is set,
//     adds "Authorization: Bearer <token>".
//
// # Error Handling
//
// Failures come in two kinds. A request that never got a response wraps
// ErrUnavailable. A response with a non-2xx status is a *RemoteError whose
// Detail is the server's human-readable message; 401 and 403 also match
// ErrUnauthorized with errors.Is. MessageFor renders either kind for users.
package client
