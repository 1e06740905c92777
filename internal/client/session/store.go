// Package session is the single source of truth for "is the user logged in,
// and as whom".
//
// A Store is created once at the application root and injected into every
// consumer. Token and user only ever change together through Restore, Commit
// and Clear; the API client reads the bearer through Token at send time.
package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/dmitrijs2005/growlog/internal/client/models"
	"github.com/dmitrijs2005/growlog/internal/client/securestore"
	"github.com/dmitrijs2005/growlog/internal/common"
	"github.com/dmitrijs2005/growlog/internal/logging"
)

// ErrInvalidSession is returned by Commit for an empty token or a user
// without id or email.
var ErrInvalidSession = errors.New("invalid session")

// Session is an authenticated token/user pair.
type Session struct {
	Token string
	User  models.User
}

type Store struct {
	storage securestore.Store
	log     logging.Logger

	mu        sync.RWMutex
	state     State
	current   *Session
	listeners []func(State)
}

func NewStore(storage securestore.Store, log logging.Logger) *Store {
	return &Store{
		storage: storage,
		log:     log.With("component", "session"),
		state:   StateUninitialized,
	}
}

// Restore loads the persisted credential record. A complete, decodable
// record makes the store AUTHENTICATED; anything else, including storage
// errors, leaves it ANONYMOUS. Restore never fails.
func (s *Store) Restore(ctx context.Context) State {
	s.transition(StateRestoring, nil)

	sess, err := s.load(ctx)
	if err != nil {
		s.log.Warn(ctx, "session restore failed, continuing anonymous", "error", err)
	}
	if sess == nil {
		s.transition(StateAnonymous, nil)
		return StateAnonymous
	}

	s.log.Info(ctx, "session restored", "user_id", sess.User.ID.String())
	s.transition(StateAuthenticated, sess)
	return StateAuthenticated
}

func (s *Store) load(ctx context.Context) (*Session, error) {
	token, ok, err := s.storage.Get(ctx, common.TokenStorageKey)
	if err != nil || !ok {
		return nil, err
	}
	rawUser, ok, err := s.storage.Get(ctx, common.UserStorageKey)
	if err != nil || !ok {
		return nil, err
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		return nil, fmt.Errorf("decode stored user: %w", err)
	}
	if err := validate(token, user); err != nil {
		return nil, fmt.Errorf("stored session: %w", err)
	}
	return &Session{Token: token, User: user}, nil
}

// Commit persists token and user as one record, then makes them current.
// Once Commit returns nil every request made through the API client carries
// the new token.
func (s *Store) Commit(ctx context.Context, token string, user models.User) error {
	if err := validate(token, user); err != nil {
		return err
	}

	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encode user: %w", err)
	}

	err = s.storage.SetAll(ctx, map[string]string{
		common.TokenStorageKey: token,
		common.UserStorageKey:  string(rawUser),
	})
	if err != nil {
		return fmt.Errorf("persist session: %w", err)
	}

	s.transition(StateAuthenticated, &Session{Token: token, User: user})
	s.log.Info(ctx, "session committed", "user_id", user.ID.String())
	return nil
}

// Clear drops the in-memory session and removes the persisted token and
// user. The onboarding flag is left alone. Memory is cleared even when the
// storage delete fails; that error is returned.
func (s *Store) Clear(ctx context.Context) error {
	s.transition(StateAnonymous, nil)

	if err := s.storage.Delete(ctx, common.TokenStorageKey, common.UserStorageKey); err != nil {
		return fmt.Errorf("remove persisted session: %w", err)
	}
	return nil
}

// Current returns the active session, if any.
func (s *Store) Current() (Session, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return Session{}, false
	}
	return *s.current, true
}

// Token returns the current bearer token or "" when anonymous.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.current == nil {
		return ""
	}
	return s.current.Token
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

// IsAuthenticated is shorthand for State() == StateAuthenticated.
func (s *Store) IsAuthenticated() bool {
	return s.State() == StateAuthenticated
}

// OnChange registers fn to be called after every state transition.
// Listeners run on the goroutine that caused the transition.
func (s *Store) OnChange(fn func(State)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.listeners = append(s.listeners, fn)
}

// OnboardingComplete reports the persisted onboarding flag. Read errors are
// logged and reported as false.
func (s *Store) OnboardingComplete(ctx context.Context) bool {
	v, ok, err := s.storage.Get(ctx, common.OnboardingCompleteKey)
	if err != nil {
		s.log.Warn(ctx, "read onboarding flag", "error", err)
		return false
	}
	return ok && v == common.OnboardingCompleteValue
}

// CompleteOnboarding persists the onboarding flag.
func (s *Store) CompleteOnboarding(ctx context.Context) error {
	err := s.storage.SetAll(ctx, map[string]string{
		common.OnboardingCompleteKey: common.OnboardingCompleteValue,
	})
	if err != nil {
		return fmt.Errorf("persist onboarding flag: %w", err)
	}
	return nil
}

func (s *Store) transition(to State, sess *Session) {
	s.mu.Lock()
	s.state = to
	s.current = sess
	listeners := slices.Clone(s.listeners)
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(to)
	}
}

func validate(token string, user models.User) error {
	switch {
	case strings.TrimSpace(token) == "":
		return fmt.Errorf("%w: empty token", ErrInvalidSession)
	case user.ID.IsZero():
		return fmt.Errorf("%w: user id is required", ErrInvalidSession)
	case user.Email == "":
		return fmt.Errorf("%w: user email is required", ErrInvalidSession)
	}
	return nil
}
