// Package identity talks to the external identity provider and turns its
// sign-in result into an Assertion the backend can verify.
//
// SignIn never returns an error. Every way the handshake can end is encoded
// as one of the Outcome variants (Ok, Cancelled, Unavailable, InProgress,
// Failed), so callers switch on the type instead of inspecting error codes.
package identity
