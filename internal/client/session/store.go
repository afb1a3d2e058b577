// Package session owns the persisted client session: the auth token and the
// cached user profile. It is the single writer for both; the HTTP layer and
// the auth provider mutate session state only through it.
package session

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/lifementor/lifementor-cli/internal/client/models"
	"github.com/lifementor/lifementor-cli/internal/common"
	"github.com/lifementor/lifementor-cli/internal/filex"
)

// undefinedSentinel sometimes ends up persisted by buggy writers upstream
// (the literal string, not an absent value). Reads must treat it as absent.
const undefinedSentinel = "undefined"

// Session is the client-held pair of auth token and cached user profile.
// Either part may be absent; normal flows set and clear them together, but
// reads tolerate the two entries drifting apart.
type Session struct {
	Token string
	User  *models.UserProfile
}

// Store persists the session as two independent entries under a state
// directory, one file per entry. All methods are safe for concurrent use.
type Store struct {
	mu  sync.Mutex
	dir string
}

// NewStore ensures dir exists and returns a store rooted there.
func NewStore(dir string) (*Store, error) {
	if _, err := filex.EnsureDir(dir); err != nil {
		return nil, fmt.Errorf("session dir: %w", err)
	}
	return &Store{dir: dir}, nil
}

// Get returns the current session. Malformed or sentinel entries are removed
// and reported as absent; Get never fails on corrupted state.
func (s *Store) Get() Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	sess := Session{Token: s.readToken()}

	raw, ok := s.readEntry(common.SessionUserKey)
	if !ok {
		return sess
	}
	var user models.UserProfile
	if err := json.Unmarshal(raw, &user); err != nil {
		s.removeEntry(common.SessionUserKey)
		return sess
	}
	sess.User = &user
	return sess
}

// Token returns the stored token, or "" when absent.
func (s *Store) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.readToken()
}

// IsAuthenticated reports whether a usable token is present. The "undefined"
// sentinel never counts as authenticated.
func (s *Store) IsAuthenticated() bool {
	return s.Token() != ""
}

// Set stores token and user together. It is the only writer on successful
// register, login and reset-password.
func (s *Store) Set(token string, user *models.UserProfile) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.writeEntry(common.SessionTokenKey, []byte(token)); err != nil {
		return err
	}
	raw, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("encoding user: %w", err)
	}
	return s.writeEntry(common.SessionUserKey, raw)
}

// Clear removes both entries. Invoked by logout, forced-401 handling and
// delete-account.
func (s *Store) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	errToken := s.removeEntry(common.SessionTokenKey)
	errUser := s.removeEntry(common.SessionUserKey)
	return errors.Join(errToken, errUser)
}

// ApplyUserPatch merges patch keys into the cached user at the JSON level and
// persists the result. Keys present in the patch overwrite the cached value;
// a nil value clears the field. Every write-through path goes through here so
// merge semantics stay identical. Returns the merged profile.
func (s *Store) ApplyUserPatch(patch map[string]any) (*models.UserProfile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	current := map[string]any{}
	if raw, ok := s.readEntry(common.SessionUserKey); ok {
		// Corrupt cache degrades to an empty base, same as a missing one.
		_ = json.Unmarshal(raw, &current)
	}

	for k, v := range patch {
		current[k] = v
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("encoding merged user: %w", err)
	}

	var user models.UserProfile
	if err := json.Unmarshal(merged, &user); err != nil {
		return nil, fmt.Errorf("decoding merged user: %w", err)
	}

	raw, err := json.Marshal(&user)
	if err != nil {
		return nil, fmt.Errorf("encoding user: %w", err)
	}
	if err := s.writeEntry(common.SessionUserKey, raw); err != nil {
		return nil, err
	}
	return &user, nil
}

// readToken applies the defensive-read rules for the token entry.
func (s *Store) readToken() string {
	raw, ok := s.readEntry(common.SessionTokenKey)
	if !ok {
		return ""
	}
	token := strings.TrimSpace(string(raw))
	if token == "" || token == undefinedSentinel || token == "null" {
		s.removeEntry(common.SessionTokenKey)
		return ""
	}
	return token
}

// readEntry returns the raw entry contents. Absent, empty and sentinel
// entries report !ok; sentinel entries are removed on sight.
func (s *Store) readEntry(name string) ([]byte, bool) {
	raw, err := os.ReadFile(s.entryPath(name))
	if err != nil {
		return nil, false
	}
	trimmed := strings.TrimSpace(string(raw))
	if trimmed == "" || trimmed == undefinedSentinel || trimmed == "null" {
		s.removeEntry(name)
		return nil, false
	}
	return []byte(trimmed), true
}

func (s *Store) writeEntry(name string, data []byte) error {
	if err := os.WriteFile(s.entryPath(name), data, 0o600); err != nil {
		return fmt.Errorf("writing %s: %w", name, err)
	}
	return nil
}

func (s *Store) removeEntry(name string) error {
	err := os.Remove(s.entryPath(name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("removing %s: %w", name, err)
	}
	return nil
}

func (s *Store) entryPath(name string) string {
	return filepath.Join(s.dir, name)
}
