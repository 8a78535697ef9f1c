// Package client contains the Hack or Snooze API client.
//
// # Overview
//
// The package provides:
//  1. A transport-agnostic API contract (see the Client interface) covering
//     the story endpoints (list/get/create/edit/delete), the account
//     endpoints (signup/login/get user), and the favorite endpoints.
//  2. A concrete HTTP implementation (see HTTPClient) that speaks the
//     service's JSON-over-HTTPS protocol and maps response status codes to
//     sentinel errors.
//
// # Error Handling
//
// Failure conditions are exposed as sentinel errors that callers match with
// errors.Is: ErrDuplicateUsername, ErrInvalidCredentials, ErrNotFound, and
// the catch-all ErrRequestFailed. A single failed request is terminal for
// that user action; there are no retries.
//
// # Concurrency & Contexts
//
// HTTPClient is safe for concurrent use. All operations accept a
// context.Context and honor cancellation; no default timeouts are applied.
package client
