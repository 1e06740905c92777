package identity

import (
	"errors"
	"fmt"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// ErrMalformedAssertion is returned for an assertion without identity token
// or email, and for identity tokens whose claims cannot be read.
var ErrMalformedAssertion = errors.New("malformed identity assertion")

// Validate checks the fields the backend exchange cannot do without.
func (a Assertion) Validate() error {
	if strings.TrimSpace(a.IDToken) == "" {
		return fmt.Errorf("%w: missing identity token", ErrMalformedAssertion)
	}
	if strings.TrimSpace(a.Email) == "" {
		return fmt.Errorf("%w: missing email", ErrMalformedAssertion)
	}
	return nil
}

// AssertionFromIDToken reads the profile claims out of an OpenID Connect ID
// token. The signature is not checked here; the backend verifies the token
// when it is exchanged.
func AssertionFromIDToken(idToken string) (Assertion, error) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(idToken, claims); err != nil {
		return Assertion{}, fmt.Errorf("%w: %v", ErrMalformedAssertion, err)
	}

	return Assertion{
		IDToken:  idToken,
		Email:    claimString(claims, "email"),
		Name:     displayName(claims),
		ImageURL: firstClaim(claims, "picture", "photo", "image_url"),
	}, nil
}

// displayName prefers the full name, then given and family name joined,
// then the given name alone.
func displayName(claims jwt.MapClaims) string {
	if name := claimString(claims, "name"); name != "" {
		return name
	}
	given := claimString(claims, "given_name")
	family := claimString(claims, "family_name")
	if given != "" && family != "" {
		return given + " " + family
	}
	return given
}

func firstClaim(claims jwt.MapClaims, keys ...string) string {
	for _, k := range keys {
		if v := claimString(claims, k); v != "" {
			return v
		}
	}
	return ""
}

func claimString(claims jwt.MapClaims, key string) string {
	s, _ := claims[key].(string)
	return strings.TrimSpace(s)
}
