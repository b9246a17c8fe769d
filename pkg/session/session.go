// Package session owns the bearer credential and the verified identity. It is
// the single writer of session state; everything else reads snapshots.
package session

import (
	"context"
	"fmt"
	"os"
	"strings"
	"sync"
	"time"

	"tableflip.dev/eventscout/pkg/api"
	"tableflip.dev/eventscout/pkg/store"
)

// State describes where the session is in its lifecycle.
type State string

const (
	// Anonymous means no usable credential is held.
	Anonymous State = "anonymous"
	// Verifying means a token is present but the identity endpoint has not
	// confirmed it yet.
	Verifying State = "verifying"
	// Authenticated means the identity endpoint accepted the token.
	Authenticated State = "authenticated"
)

// Identity is the part of the API client Verify needs.
type Identity interface {
	Me(ctx context.Context) (*api.Profile, error)
}

// Store holds the token, its decoded claims, and the verified user. All
// access is serialized behind the mutex; Verify never holds it across the
// network call.
type Store struct {
	mu     sync.Mutex
	creds  store.CredentialStore
	state  State
	token  string
	claims *Claims
	user   *api.Profile
}

// Load hydrates the session from the persisted credential. A non-empty token
// starts in Verifying; callers are expected to Verify before trusting it.
func Load(creds store.CredentialStore) (*Store, error) {
	s := &Store{creds: creds, state: Anonymous}
	if creds == nil {
		return s, nil
	}
	token, err := creds.Token()
	if err != nil {
		return nil, fmt.Errorf("session: read credential: %w", err)
	}
	if tokenUsable(token) {
		s.token = token
		s.state = Verifying
	}
	return s, nil
}

// tokenUsable rejects empty tokens and the stringified-nil sentinels a buggy
// callback redirect can hand us.
func tokenUsable(token string) bool {
	token = strings.TrimSpace(token)
	return token != "" && token != "null" && token != "undefined"
}

// Login stores a new token and moves to Verifying. An unusable token is a
// warned no-op, leaving the current state untouched.
func (s *Store) Login(token string) {
	token = strings.TrimSpace(token)
	if !tokenUsable(token) {
		fmt.Fprintf(os.Stderr, "session: ignoring invalid login token\n")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds != nil {
		if err := s.creds.SetToken(token); err != nil {
			fmt.Fprintf(os.Stderr, "session: persist token: %v\n", err)
		}
	}
	s.token = token
	s.claims = nil
	s.user = nil
	s.state = Verifying
}

// Logout clears the persisted token and all in-memory state. Idempotent.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.logoutLocked()
}

func (s *Store) logoutLocked() {
	if s.creds != nil {
		if err := s.creds.Clear(); err != nil {
			fmt.Fprintf(os.Stderr, "session: clear credential: %v\n", err)
		}
	}
	s.token = ""
	s.claims = nil
	s.user = nil
	s.state = Anonymous
}

// Verify decodes the token locally, then confirms it with the identity
// endpoint. Every failure path ends in a clean Anonymous state.
func (s *Store) Verify(ctx context.Context, identity Identity) error {
	s.mu.Lock()
	token := s.token
	if !tokenUsable(token) {
		s.logoutLocked()
		s.mu.Unlock()
		return fmt.Errorf("session: no token")
	}

	claims, err := DecodeClaims(token)
	if err != nil {
		s.logoutLocked()
		s.mu.Unlock()
		return fmt.Errorf("session: decode token: %w", err)
	}
	if !claims.Expiry.IsZero() && claims.Expiry.Before(time.Now()) {
		s.logoutLocked()
		s.mu.Unlock()
		return fmt.Errorf("session: token expired %s", claims.Expiry.Format(time.RFC3339))
	}
	s.claims = claims
	s.state = Verifying
	s.mu.Unlock()

	user, err := identity.Me(ctx)
	if err != nil {
		s.Logout()
		return fmt.Errorf("session: verification failed: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.token != token {
		// the session changed hands while we were on the wire
		return nil
	}
	s.user = user
	s.state = Authenticated
	return nil
}

// Token implements api.TokenSource.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

// IsAuthenticated is true iff a verified user is present.
func (s *Store) IsAuthenticated() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user != nil
}

// User returns the verified profile, or nil.
func (s *Store) User() *api.Profile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.user
}

// State returns the current lifecycle state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// ClaimsSnapshot returns the last decoded claims, or nil.
func (s *Store) ClaimsSnapshot() *Claims {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.claims
}
