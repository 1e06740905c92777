// Package cli provides the interactive growlog command-line client.
//
// It wires configuration, the local credential store, the session, the API
// client and the feature services, then runs a REPL. On start the persisted
// session is restored; anonymous users can only sign in.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
package cli
