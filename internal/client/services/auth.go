// Package services contains application services for the growlog client.
// This file defines the authentication service: Google sign-in exchanged for
// a backend session, and sign-out.
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/dmitrijs2005/growlog/internal/client/client"
	"github.com/dmitrijs2005/growlog/internal/client/identity"
	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/session"
	"github.com/dmitrijs2005/growlog/internal/logging"
)

// User-facing sign-in messages.
const (
	MsgSignInCancelled   = "Sign-in was cancelled."
	MsgSignInInProgress  = "Sign-in is already in progress."
	MsgSignInUnavailable = "Google sign-in is not available on this device."
	MsgSignInFailed      = "Google sign-in failed."
	MsgMalformedAccount  = "Could not read your Google account details."
	MsgAuthFailed        = "Authentication failed. Please try again."
	MsgSessionNotSaved   = "Could not save your session. Please try again."
)

// Result is the outcome of a sign-in as shown to the user.
type Result struct {
	Success bool
	Message string
}

// SessionWriter is the part of the session store the auth service mutates.
type SessionWriter interface {
	Commit(ctx context.Context, token string, user models.User) error
	Clear(ctx context.Context) error
}

// AuthService defines authentication operations for the CLI.
//
// Contract:
//   - SignIn: run the provider handshake, exchange the identity token with
//     the backend and commit the session. Expected failures are reported in
//     the Result, never as an error.
//   - SignOut: best-effort provider sign-out, then clear the session.
type AuthService interface {
	SignIn(ctx context.Context) Result
	SignOut(ctx context.Context) error
}

type authService struct {
	provider identity.Provider
	client   client.Client
	session  SessionWriter
	log      logging.Logger
}

func NewAuthService(provider identity.Provider, c client.Client, sess SessionWriter, log logging.Logger) AuthService {
	return &authService{
		provider: provider,
		client:   c,
		session:  sess,
		log:      log.With("component", "auth"),
	}
}

func (a *authService) SignIn(ctx context.Context) Result {
	if err := a.provider.CheckAvailability(ctx); err != nil {
		a.log.Warn(ctx, "identity provider unavailable", "error", err)
		return failure(MsgSignInUnavailable)
	}

	var assertion identity.Assertion

	switch out := a.provider.SignIn(ctx).(type) {
	case identity.Ok:
		assertion = out.Assertion
	case identity.Cancelled:
		return failure(MsgSignInCancelled)
	case identity.InProgress:
		return failure(MsgSignInInProgress)
	case identity.Unavailable:
		a.log.Warn(ctx, "identity provider unavailable", "reason", out.Reason)
		return failure(MsgSignInUnavailable)
	case identity.Failed:
		a.log.Warn(ctx, "identity provider failed", "message", out.Message)
		if out.Message != "" {
			return failure(MsgSignInFailed + " " + out.Message)
		}
		return failure(MsgSignInFailed)
	default:
		return failure(MsgSignInFailed)
	}

	if err := assertion.Validate(); err != nil {
		a.log.Warn(ctx, "rejected identity assertion", "error", err)
		return failure(MsgMalformedAccount)
	}

	resp, err := a.client.ExchangeGoogleToken(ctx, client.GoogleExchangeRequest{
		IDToken:  assertion.IDToken,
		Email:    assertion.Email,
		Name:     assertion.Name,
		ImageURL: assertion.ImageURL,
	})
	if err != nil {
		a.log.Warn(ctx, "google token exchange failed", "error", err)
		return failure(client.ErrorMessage(err, MsgAuthFailed))
	}

	if !resp.Success || strings.TrimSpace(resp.Token) == "" || resp.User == nil {
		a.log.Warn(ctx, "google token exchange rejected", "message", resp.Message)
		if resp.Message != "" {
			return failure(resp.Message)
		}
		return failure(MsgAuthFailed)
	}

	if err := a.session.Commit(ctx, resp.Token, resp.User.Normalize()); err != nil {
		if errors.Is(err, session.ErrInvalidSession) {
			a.log.Warn(ctx, "backend returned an incomplete session", "error", err)
			return failure(MsgAuthFailed)
		}
		a.log.Error(ctx, "commit session", "error", err)
		return failure(MsgSessionNotSaved)
	}

	return Result{Success: true}
}

func (a *authService) SignOut(ctx context.Context) error {
	if err := a.provider.SignOut(ctx); err != nil {
		a.log.Warn(ctx, "provider sign-out failed", "error", err)
	}
	if err := a.session.Clear(ctx); err != nil {
		return fmt.Errorf("sign out: %w", err)
	}
	return nil
}

func failure(msg string) Result {
	return Result{Success: false, Message: msg}
}
