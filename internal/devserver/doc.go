// Package devserver is an in-memory implementation of the Hack or Snooze
// REST API for local development and end-to-end tests. It implements the
// same routes, envelopes, and status codes as the public service: story
// listing and CRUD, signup/login with JWT login tokens, per-user favorites,
// and token-in-body authentication on mutating requests.
//
// Nothing is persisted; the store lives for the lifetime of the process.
package devserver
