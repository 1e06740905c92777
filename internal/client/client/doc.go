// Package client contains the API Gateway Client: the single HTTP client every
// growlog feature talks to the backend through.
//
// # Overview
//
//  1. APIClient exposes Get/Post/Put/Patch/Delete against a fixed base URL
//     with a bounded timeout, plus the /auth/google exchange.
//  2. A bearer middleware (an http.RoundTripper registered once) reads the
//     current token from a TokenSource at send time. An empty token means no
//     Authorization header; there is nothing to set or unset on login/logout.
//  3. InitDatabase/RunMigrations bootstrap the local SQLite database used for
//     device-local storage.
//
// # Error Handling
//
// Failed responses are never retried or intercepted. Non-2xx responses become
// *APIError, transport failures *TransportError. Both match the sentinels
// ErrUnauthorized / ErrUnavailable with errors.Is where applicable, and
// ErrorMessage turns any of them into user-facing text.
package client
