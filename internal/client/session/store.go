// Package session persists the admin session (bearer token plus user) in the
// local store and mirrors it in memory.
//
// The persisted pair lives under two metadata keys. Load restores it into the
// mirror; ClearInMemory drops only the mirror so a later Load can restore the
// same session, while Clear wipes both.
package session

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/eduhub/eduhub/internal/client/models"
	"github.com/eduhub/eduhub/internal/client/repositories/metadata"
	"github.com/eduhub/eduhub/internal/common"
	"github.com/eduhub/eduhub/internal/dbx"
	"github.com/eduhub/eduhub/internal/logging"
)

// TokenClaims is what can be read from a JWT bearer token without its key.
type TokenClaims struct {
	Subject   string
	UserID    string
	ExpiresAt time.Time
}

// Expired reports whether the token carries an expiry that has passed.
func (c TokenClaims) Expired(now time.Time) bool {
	return !c.ExpiresAt.IsZero() && !now.Before(c.ExpiresAt)
}

type Store struct {
	mu      sync.RWMutex
	db      *sql.DB
	log     logging.Logger
	current models.Session
}

func NewStore(db *sql.DB, logger logging.Logger) *Store {
	if logger == nil {
		logger = logging.Discard()
	}
	return &Store{db: db, log: logger}
}

// Load reads the persisted pair into the mirror and returns it. Missing or
// unreadable entries yield an empty session; Load never fails.
func (s *Store) Load(ctx context.Context) models.Session {
	sess := s.read(ctx)

	s.mu.Lock()
	s.current = sess
	s.mu.Unlock()
	return sess
}

func (s *Store) read(ctx context.Context) models.Session {
	repo := metadata.NewSQLiteRepository(s.db)

	token, err := repo.Get(ctx, common.StorageKeyToken)
	if err != nil {
		s.log.Warn(ctx, "session token unreadable", "error", err)
		return models.Session{}
	}
	rawUser, err := repo.Get(ctx, common.StorageKeyUser)
	if err != nil {
		s.log.Warn(ctx, "session user unreadable", "error", err)
		return models.Session{}
	}
	if token == "" || rawUser == "" {
		return models.Session{}
	}

	var user models.User
	if err := json.Unmarshal([]byte(rawUser), &user); err != nil {
		s.log.Warn(ctx, "stored session user is corrupt", "error", err)
		return models.Session{}
	}
	return models.Session{Token: token, User: &user}
}

// Save persists token and user in one transaction, then updates the mirror.
func (s *Store) Save(ctx context.Context, token string, user *models.User) error {
	if token == "" || user == nil {
		return fmt.Errorf("save session: token and user are both required")
	}
	rawUser, err := json.Marshal(user)
	if err != nil {
		return fmt.Errorf("save session: encode user: %w", err)
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := metadata.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, common.StorageKeyToken, token); err != nil {
			return err
		}
		return repo.Set(ctx, common.StorageKeyUser, string(rawUser))
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	u := *user
	s.mu.Lock()
	s.current = models.Session{Token: token, User: &u}
	s.mu.Unlock()
	return nil
}

// Clear removes both persisted entries and resets the mirror. The mirror is
// reset even when the delete fails.
func (s *Store) Clear(ctx context.Context) error {
	s.ClearInMemory()

	err := dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return metadata.NewSQLiteRepository(tx).Delete(ctx, common.StorageKeyToken, common.StorageKeyUser)
	})
	if err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	return nil
}

// ClearInMemory forgets the mirrored session and keeps the persisted copy.
func (s *Store) ClearInMemory() {
	s.mu.Lock()
	s.current = models.Session{}
	s.mu.Unlock()
}

// Get returns a copy of the mirrored session.
func (s *Store) Get() models.Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	sess := s.current
	if sess.User != nil {
		u := *sess.User
		sess.User = &u
	}
	return sess
}

func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.current.Token
}

// Claims decodes the mirrored token without checking its signature. ok is
// false when there is no token or it is not a JWT.
func (s *Store) Claims() (TokenClaims, bool) {
	return ParseClaims(s.Token())
}

type eduhubClaims struct {
	jwt.RegisteredClaims
	UserID  string `json:"userId,omitempty"`
	AdminID string `json:"id,omitempty"`
}

// ParseClaims reads token's claims without verification. Only the backend
// can validate a token; the client uses the expiry as a hint.
func ParseClaims(token string) (TokenClaims, bool) {
	if token == "" {
		return TokenClaims{}, false
	}
	var claims eduhubClaims
	if _, _, err := jwt.NewParser().ParseUnverified(token, &claims); err != nil {
		return TokenClaims{}, false
	}

	out := TokenClaims{Subject: claims.Subject, UserID: claims.UserID}
	if out.UserID == "" {
		out.UserID = claims.AdminID
	}
	if claims.ExpiresAt != nil {
		out.ExpiresAt = claims.ExpiresAt.Time
	}
	return out, true
}
