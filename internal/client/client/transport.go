package client

import (
	"net/http"

	"github.com/dmitrijs2005/growlog/internal/common"
	"github.com/google/uuid"
)

// TokenSource yields the current bearer token, or "" when anonymous.
// session.Store satisfies it.
type TokenSource interface {
	Token() string
}

// bearerTransport annotates every outgoing request with the token current at
// send time, a User-Agent and a fresh X-Request-ID.
type bearerTransport struct {
	base      http.RoundTripper
	tokens    TokenSource
	userAgent string
}

func (t *bearerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	r := req.Clone(req.Context())

	r.Header.Del(common.AuthorizationHeaderName)
	if t.tokens != nil {
		if token := t.tokens.Token(); token != "" {
			r.Header.Set(common.AuthorizationHeaderName, common.BearerPrefix+token)
		}
	}
	if r.Header.Get(common.RequestIDHeaderName) == "" {
		r.Header.Set(common.RequestIDHeaderName, uuid.NewString())
	}
	if t.userAgent != "" {
		r.Header.Set("User-Agent", t.userAgent)
	}

	return t.base.RoundTrip(r)
}
