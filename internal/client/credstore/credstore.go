// Package credstore holds the session credentials: access/refresh tokens
// and the signed-in user. Credentials are all-or-nothing: a present access
// token means the session counts as authenticated, and any irrecoverable
// refresh failure purges everything.
package credstore

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"emojournal/internal/client/models"
	"emojournal/internal/client/repositories/kv"
	"emojournal/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// Store keeps the credentials in memory and mirrors them to the durable
// key/value layer under the access_token, refresh_token, auth_token
// (legacy alias) and user keys.
type Store struct {
	mu      sync.RWMutex
	access  string
	refresh string
	user    *models.User

	db   *sql.DB
	repo kv.Repository
}

// New constructs a Store over db and loads any persisted session. A nil db
// yields a memory-only store.
func New(ctx context.Context, db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if db == nil {
		return s, nil
	}
	s.repo = kv.NewSQLiteRepository(db)

	access, err := s.repo.Get(ctx, common.KeyAccessToken)
	if err != nil {
		return nil, fmt.Errorf("error loading access token: %w", err)
	}
	if access == nil {
		// Fall back to the legacy key written by earlier versions.
		access, err = s.repo.Get(ctx, common.KeyLegacyToken)
		if err != nil {
			return nil, fmt.Errorf("error loading legacy token: %w", err)
		}
	}
	refresh, err := s.repo.Get(ctx, common.KeyRefreshToken)
	if err != nil {
		return nil, fmt.Errorf("error loading refresh token: %w", err)
	}
	userData, err := s.repo.Get(ctx, common.KeyUser)
	if err != nil {
		return nil, fmt.Errorf("error loading user: %w", err)
	}

	s.access = string(access)
	s.refresh = string(refresh)
	if userData != nil {
		var u models.User
		if err := json.Unmarshal(userData, &u); err != nil {
			return nil, fmt.Errorf("error decoding user: %w", err)
		}
		s.user = &u
	}
	return s, nil
}

func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access
}

func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refresh
}

func (s *Store) User() (models.User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return models.User{}, false
	}
	return *s.user, true
}

// IsAuthenticated reports whether a session is present. Token validity is
// only discovered when the backend rejects a call.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.access != ""
}

// SetTokens stores a new access token and, when non-empty, a new refresh
// token. The refresh exchange may omit the refresh token, in which case the
// stored one is kept.
func (s *Store) SetTokens(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = access
	if refresh != "" {
		s.refresh = refresh
	}

	if s.repo == nil {
		return nil
	}
	if err := s.repo.Set(ctx, common.KeyAccessToken, []byte(access)); err != nil {
		return err
	}
	if err := s.repo.Set(ctx, common.KeyLegacyToken, []byte(access)); err != nil {
		return err
	}
	if refresh != "" {
		if err := s.repo.Set(ctx, common.KeyRefreshToken, []byte(refresh)); err != nil {
			return err
		}
	}
	return nil
}

// SetUser stores the signed-in user.
func (s *Store) SetUser(ctx context.Context, u models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.user = &u

	if s.repo == nil {
		return nil
	}
	data, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("error encoding user: %w", err)
	}
	return s.repo.Set(ctx, common.KeyUser, data)
}

// Clear purges the whole session. All durable keys are deleted in one
// transaction so a crash cannot leave a half-cleared session behind.
func (s *Store) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.access = ""
	s.refresh = ""
	s.user = nil

	if s.db == nil {
		return nil
	}
	return dbxClear(ctx, s.db)
}

// TokenExpiry returns the exp claim of the stored access token. The token
// is parsed without signature verification: the client only schedules
// around expiry, it never trusts the claims. Returns false for an absent or
// non-JWT token.
func (s *Store) TokenExpiry() (time.Time, bool) {
	s.mu.RLock()
	access := s.access
	s.mu.RUnlock()

	if access == "" {
		return time.Time{}, false
	}

	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(access, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
