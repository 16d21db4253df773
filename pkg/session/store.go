// Package session owns the client's belief about who is signed in: the
// persisted bearer token and the resolved user identity. One Store exists
// per process; it is injected into every component that needs it, and no
// caller mutates session state except through its operations.
package session

import (
	"context"
	"fmt"
	"sync"

	validator "github.com/go-playground/validator/v10"

	"github.com/kerbaras/anitrack/pkg/api"
	"github.com/kerbaras/anitrack/pkg/logger"
)

// State is the session lifecycle position.
//
//	Anonymous:     no token
//	PendingUser:   token present, identity not yet resolved
//	Authenticated: token and user present
type State int

const (
	Anonymous State = iota
	PendingUser
	Authenticated
)

func (s State) String() string {
	switch s {
	case PendingUser:
		return "pending"
	case Authenticated:
		return "authenticated"
	default:
		return "anonymous"
	}
}

// Snapshot is an immutable view of the session, delivered to subscribers
// on every state change.
type Snapshot struct {
	State State
	User  *api.User
}

// RegistrationError carries the backend's detail message for a failed
// sign-up, shown verbatim on the signup page.
type RegistrationError struct {
	Detail string
}

func (e *RegistrationError) Error() string {
	return e.Detail
}

type Store struct {
	client *api.Client
	tokens *TokenFile

	mu    sync.RWMutex
	state State
	user  *api.User
	subs  []chan Snapshot
}

// NewStore derives the initial state from whether a token survived the
// previous run. A present token starts the session in PendingUser; the
// identity is re-fetched, never persisted.
func NewStore(client *api.Client, tokens *TokenFile) *Store {
	s := &Store{client: client, tokens: tokens}
	if tokens.Current() != "" {
		s.state = PendingUser
	}
	return s
}

func (s *Store) State() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state
}

func (s *Store) User() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// IsAuthenticated holds exactly when an identity has been resolved.
// A pending token does not count until /auth/me confirms it.
func (s *Store) IsAuthenticated() bool {
	return s.User() != nil
}

func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return Snapshot{State: s.state, User: s.user}
}

// Subscribe returns a channel receiving a Snapshot after every change.
// The channel is buffered; a subscriber that stops draining loses
// notifications rather than blocking the store.
func (s *Store) Subscribe() <-chan Snapshot {
	ch := make(chan Snapshot, 16)
	s.mu.Lock()
	s.subs = append(s.subs, ch)
	s.mu.Unlock()
	return ch
}

func (s *Store) set(state State, user *api.User) {
	s.mu.Lock()
	s.state = state
	s.user = user
	snap := Snapshot{State: state, User: user}
	subs := s.subs
	s.mu.Unlock()

	for _, ch := range subs {
		select {
		case ch <- snap:
		default:
		}
	}
}

// Login persists the token and resolves the identity behind it. A token
// that fails to resolve is discarded again by FetchUser.
func (s *Store) Login(ctx context.Context, token string) error {
	if err := s.tokens.Save(token); err != nil {
		return fmt.Errorf("persisting token: %w", err)
	}
	s.set(PendingUser, nil)
	s.FetchUser(ctx)
	return nil
}

// Logout clears the persisted token and the in-memory user. No network
// call; it always succeeds.
func (s *Store) Logout() {
	if err := s.tokens.Clear(); err != nil {
		logger.Log.Warnw("clearing token file", "error", err)
	}
	s.set(Anonymous, nil)
}

// FetchUser resolves the current user from the persisted token. Failure
// means the token is invalid or the backend unreachable; either way the
// session self-heals to Anonymous and the error is not surfaced.
func (s *Store) FetchUser(ctx context.Context) {
	if s.tokens.Current() == "" {
		s.set(Anonymous, nil)
		return
	}

	user, err := s.client.Me(ctx)
	if err != nil {
		logger.Log.Infow("fetch current user failed, clearing session", "error", err)
		s.Logout()
		return
	}
	s.set(Authenticated, user)
}

type registration struct {
	Username string `validate:"required,min=3,max=50"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=6"`
}

var validate = validator.New()

// Register creates an account. It does not authenticate the caller: the
// new user still signs in through Login. Validation and backend failures
// both come back as *RegistrationError with a displayable detail.
func (s *Store) Register(ctx context.Context, username, email, password string) (*api.User, error) {
	input := registration{Username: username, Email: email, Password: password}
	if err := validate.Struct(input); err != nil {
		return nil, &RegistrationError{Detail: registrationDetail(err)}
	}

	user, err := s.client.Register(ctx, username, email, password)
	if err != nil {
		return nil, &RegistrationError{Detail: err.Error()}
	}
	return user, nil
}

func registrationDetail(err error) string {
	errs, ok := err.(validator.ValidationErrors)
	if !ok || len(errs) == 0 {
		return err.Error()
	}
	switch errs[0].Field() {
	case "Username":
		return "username must be between 3 and 50 characters"
	case "Email":
		return "a valid email address is required"
	default:
		return "password must be at least 6 characters"
	}
}
