// Package common contains shared constants used across growlog components.
package common

// Outbound HTTP header names set by the API client.
const (
	AuthorizationHeaderName = "Authorization"
	RequestIDHeaderName     = "X-Request-ID"
	BearerPrefix            = "Bearer "
)

// Keys of the persisted credential record in device-local storage.
//
// The token and user keys are written together on sign-in and removed together
// on logout. OnboardingCompleteKey is independent and survives logout.
const (
	TokenStorageKey       = "auth_token"
	UserStorageKey        = "auth_user"
	OnboardingCompleteKey = "onboarding_complete"
)

// OnboardingCompleteValue is the only value ever stored under
// OnboardingCompleteKey; an absent key means onboarding is not complete.
const OnboardingCompleteValue = "true"
