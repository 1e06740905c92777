package identity

import "context"

// Provider is an external sign-in service.
type Provider interface {
	SignIn(ctx context.Context) Outcome
	SignOut(ctx context.Context) error
	CheckAvailability(ctx context.Context) error
}

// Outcome is the result of a sign-in attempt.
type Outcome interface {
	outcome()
}

// Assertion is what the provider says about the signed-in user. It is
// transient and only used to build the backend exchange request.
type Assertion struct {
	IDToken  string
	Email    string
	Name     string
	ImageURL string
}

// Ok is a completed handshake.
type Ok struct {
	Assertion Assertion
}

// Cancelled means the user backed out of the flow.
type Cancelled struct{}

// Unavailable means the provider cannot be used on this device right now.
type Unavailable struct {
	Reason string
}

// InProgress means another sign-in is already running.
type InProgress struct{}

// Failed is any other handshake failure.
type Failed struct {
	Message string
}

func (Ok) outcome()          {}
func (Cancelled) outcome()   {}
func (Unavailable) outcome() {}
func (InProgress) outcome()  {}
func (Failed) outcome()      {}
