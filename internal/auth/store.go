// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package auth holds the persisted authentication state: one opaque bearer
// token and the small profile decoded from it.
//
// Token presence is the sole signal of "logged in". The profile is a
// client-side convenience decoded from the token payload; it is never
// verified here — signature and expiry checks belong to the backend on
// every authenticated request. The store has a single-writer rule: only
// the login and logout flows mutate it.
package auth

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/golang-jwt/jwt/v5"
	log "github.com/sirupsen/logrus"
)

// stateFileName is the auth state file inside the config directory.
const stateFileName = "auth.json"

// ErrInvalidToken indicates a token whose payload could not be decoded.
// An undecodable token is treated as invalid, not as "unknown profile",
// and forces a logout.
var ErrInvalidToken = errors.New("invalid token")

// Profile is the display identity decoded from the token payload.
type Profile struct {
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// state is the persisted shape of the store.
type state struct {
	Token   string  `json:"token"`
	Profile Profile `json:"profile"`
}

// Store persists the bearer token and derived profile in a JSON file.
// Safe for concurrent reads; writes happen only through SaveUserAndToken
// and Logout.
type Store struct {
	mu   sync.RWMutex
	path string
	st   state
}

// NewStore creates a store backed by the given directory, loading any
// previously persisted state.
func NewStore(dir string) (*Store, error) {
	s := &Store{path: filepath.Join(dir, stateFileName)}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

// load reads persisted state; a missing file means logged out.
func (s *Store) load() error {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read auth state: %w", err)
	}
	if err := json.Unmarshal(data, &s.st); err != nil {
		// A corrupt state file is equivalent to logged out.
		log.WithError(err).Warn("auth state unreadable, treating as logged out")
		s.st = state{}
	}
	return nil
}

// persist writes the current state with owner-only permissions.
func (s *Store) persist() error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	data, err := json.Marshal(s.st)
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o600)
}

// SaveUserAndToken persists the token and decodes its payload into the
// profile. A token whose payload cannot be decoded forces an immediate
// logout and returns ErrInvalidToken.
func (s *Store) SaveUserAndToken(token string) error {
	profile, err := decodeProfile(token)
	if err != nil {
		if logoutErr := s.Logout(); logoutErr != nil {
			log.WithError(logoutErr).Warn("logout after invalid token failed")
		}
		return fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.st = state{Token: token, Profile: profile}
	return s.persist()
}

// Logout clears the persisted token and the in-memory profile together;
// a profile never survives the token. Calling it while logged out is a
// no-op.
func (s *Store) Logout() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.st.Token == "" && s.st.Profile == (Profile{}) {
		return nil
	}
	s.st = state{}

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to clear auth state: %w", err)
	}
	return nil
}

// IsLoggedIn reports whether a token is present. No client-side expiry or
// signature validation is performed.
func (s *Store) IsLoggedIn() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Token != ""
}

// Token returns the persisted bearer token, or "" when logged out.
// Implements the api.TokenSource interface.
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Token
}

// Profile returns the decoded profile and whether one is present.
func (s *Store) Profile() (Profile, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.st.Profile, s.st.Token != ""
}

// decodeProfile decodes the middle (claims) segment of the token without
// verifying the signature.
func decodeProfile(token string) (Profile, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return Profile{}, err
	}

	var p Profile
	if name, ok := claims["name"].(string); ok {
		p.Name = name
	}
	if picture, ok := claims["picture"].(string); ok {
		p.Picture = picture
	}
	return p, nil
}
