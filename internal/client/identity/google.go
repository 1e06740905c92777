package identity

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net"
	"net/http"
	"net/url"
	"os"
	"strings"
	"sync"
	"time"

	"github.com/dmitrijs2005/growlog/internal/client/config"
	"github.com/dmitrijs2005/growlog/internal/common"
	"github.com/dmitrijs2005/growlog/internal/logging"
	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
)

const (
	GoogleRevokeURL = "https://oauth2.googleapis.com/revoke"
	callbackPath    = "/callback"
)

var (
	ErrNotConfigured = errors.New("google sign-in is not configured")
	ErrUnavailable   = errors.New("identity provider unavailable")
)

// Opener presents the authorization URL to the user, typically by opening
// a browser or printing it.
type Opener func(authURL string) error

// GoogleProvider runs the OAuth 2.0 authorization code flow with PKCE
// against Google, receiving the redirect on a loopback listener.
type GoogleProvider struct {
	conf       oauth2.Config
	host       string
	revokeURL  string
	open       Opener
	httpClient *http.Client
	log        logging.Logger

	// flow is held for the duration of a SignIn.
	flow sync.Mutex

	tokMu     sync.Mutex
	lastToken string
}

type GoogleOption func(*GoogleProvider)

func WithEndpoint(e oauth2.Endpoint) GoogleOption {
	return func(p *GoogleProvider) { p.conf.Endpoint = e }
}

func WithRevokeURL(u string) GoogleOption {
	return func(p *GoogleProvider) { p.revokeURL = u }
}

func WithOpener(o Opener) GoogleOption {
	return func(p *GoogleProvider) { p.open = o }
}

func WithHTTPClient(c *http.Client) GoogleOption {
	return func(p *GoogleProvider) { p.httpClient = c }
}

func WithLogger(l logging.Logger) GoogleOption {
	return func(p *GoogleProvider) { p.log = l }
}

func NewGoogleProvider(cfg config.GoogleConfig, opts ...GoogleOption) *GoogleProvider {
	host := cfg.RedirectHost
	if host == "" {
		host = "127.0.0.1"
	}

	p := &GoogleProvider{
		conf: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     google.Endpoint,
			Scopes:       []string{"openid", "email", "profile"},
		},
		host:       host,
		revokeURL:  GoogleRevokeURL,
		open:       printURL(os.Stderr),
		httpClient: &http.Client{Timeout: 30 * time.Second},
		log:        logging.Discard(),
	}
	for _, opt := range opts {
		opt(p)
	}
	p.log = p.log.With("component", "identity", "provider", "google")
	return p
}

func printURL(w io.Writer) Opener {
	return func(authURL string) error {
		_, err := fmt.Fprintf(w, "Open this link in your browser to sign in:\n%s\n", authURL)
		return err
	}
}

// CheckAvailability reports whether a sign-in could start: the client is
// configured and a loopback callback listener can be bound.
func (p *GoogleProvider) CheckAvailability(ctx context.Context) error {
	if p.conf.ClientID == "" {
		return ErrNotConfigured
	}
	ln, err := p.listen(ctx)
	if err != nil {
		return err
	}
	return ln.Close()
}

func (p *GoogleProvider) listen(ctx context.Context) (net.Listener, error) {
	var lc net.ListenConfig
	ln, err := lc.Listen(ctx, "tcp", net.JoinHostPort(p.host, "0"))
	if err != nil {
		return nil, fmt.Errorf("%w: bind callback listener: %v", ErrUnavailable, err)
	}
	return ln, nil
}

type callbackResult struct {
	code      string
	cancelled bool
	errMsg    string
}

// SignIn runs one interactive handshake. It blocks until the browser
// redirect arrives or ctx is done.
func (p *GoogleProvider) SignIn(ctx context.Context) Outcome {
	if !p.flow.TryLock() {
		return InProgress{}
	}
	defer p.flow.Unlock()

	if p.conf.ClientID == "" {
		return Unavailable{Reason: ErrNotConfigured.Error()}
	}

	ln, err := p.listen(ctx)
	if err != nil {
		p.log.Warn(ctx, "google sign-in unavailable", "error", err)
		return Unavailable{Reason: err.Error()}
	}

	state, err := common.MakeRandHexString(16)
	if err != nil {
		_ = ln.Close()
		return Failed{Message: "could not start sign-in"}
	}
	verifier := oauth2.GenerateVerifier()

	conf := p.conf
	conf.RedirectURL = "http://" + ln.Addr().String() + callbackPath

	results := make(chan callbackResult, 1)
	srv := &http.Server{
		Handler:           callbackHandler(state, results),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() { _ = srv.Serve(ln) }()
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	authURL := conf.AuthCodeURL(state,
		oauth2.S256ChallengeOption(verifier),
		oauth2.SetAuthURLParam("prompt", "select_account"))
	if err := p.open(authURL); err != nil {
		return Unavailable{Reason: fmt.Sprintf("could not open sign-in page: %v", err)}
	}

	var res callbackResult
	select {
	case <-ctx.Done():
		p.log.Info(ctx, "google sign-in cancelled", "reason", ctx.Err())
		return Cancelled{}
	case res = <-results:
	}

	switch {
	case res.cancelled:
		return Cancelled{}
	case res.errMsg != "":
		return Failed{Message: res.errMsg}
	}

	tok, err := conf.Exchange(context.WithValue(ctx, oauth2.HTTPClient, p.httpClient), res.code,
		oauth2.VerifierOption(verifier))
	if err != nil {
		if ctx.Err() != nil {
			return Cancelled{}
		}
		p.log.Warn(ctx, "google token exchange failed", "error", err)
		return Failed{Message: "Google token exchange failed"}
	}

	p.tokMu.Lock()
	p.lastToken = tok.AccessToken
	p.tokMu.Unlock()

	idToken, _ := tok.Extra("id_token").(string)
	if idToken == "" {
		// The caller rejects an assertion without identity token.
		return Ok{}
	}

	assertion, err := AssertionFromIDToken(idToken)
	if err != nil {
		// An unusable identity token is reported like missing account details.
		p.log.Warn(ctx, "google id token unreadable", "error", err)
		return Ok{Assertion: Assertion{IDToken: idToken}}
	}
	return Ok{Assertion: assertion}
}

func callbackHandler(state string, results chan<- callbackResult) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(callbackPath, func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()

		var res callbackResult
		switch {
		case q.Get("error") == "access_denied":
			res.cancelled = true
		case q.Get("error") != "":
			res.errMsg = firstNonEmpty(q.Get("error_description"), q.Get("error"))
		case q.Get("state") != state:
			res.errMsg = "sign-in state mismatch"
		case q.Get("code") == "":
			res.errMsg = "authorization code missing"
		default:
			res.code = q.Get("code")
		}

		w.Header().Set("Content-Type", "text/plain; charset=utf-8")
		if res.code != "" {
			_, _ = io.WriteString(w, "Signed in. You can close this window.\n")
		} else {
			_, _ = io.WriteString(w, "Sign-in did not complete. You can close this window.\n")
		}

		select {
		case results <- res:
		default:
		}
	})
	return mux
}

// SignOut revokes the token from the last successful sign-in. With nothing
// to revoke it is a no-op.
func (p *GoogleProvider) SignOut(ctx context.Context) error {
	p.tokMu.Lock()
	token := p.lastToken
	p.lastToken = ""
	p.tokMu.Unlock()

	if token == "" {
		return nil
	}

	form := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, p.revokeURL, strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("build revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := p.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("revoke google token: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("revoke google token: status %d", resp.StatusCode)
	}
	return nil
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
