// Package session owns the single mutable session slot: the current
// identity, the persisted session record that survives restarts, and
// the closed set of transitions that may touch either.
package session

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dorixona/pharmacy-api/internal/domain/entity"
	"github.com/dorixona/pharmacy-api/internal/domain/repository"
	"github.com/dorixona/pharmacy-api/pkg/logger"
	"github.com/dorixona/pharmacy-api/pkg/token"
)

// Vault keys of the persisted session record. Always written and
// deleted together; one without the other means no session.
const (
	KeyUser  = "user"
	KeyToken = "token"
)

// Authenticator is the minimal contract the store needs from the demo
// account directory. seed.Directory implements it.
type Authenticator interface {
	Authenticate(email, password string) (*entity.User, error)
}

// Config store settings.
type Config struct {
	Secret     string        // token signing secret
	Issuer     string        // token issuer
	ExpMinutes int           // token lifetime
	LoginDelay time.Duration // simulated login round trip
}

// Profile is the register input. The form layer enforces presence of
// the fields; the store takes them as given.
type Profile struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// Store is the single source of truth for "who is logged in" and the
// only component allowed to mutate session state. It is constructed by
// the composition root and injected, never a package global.
type Store struct {
	vault repository.SessionVault
	dir   Authenticator
	cfg   Config
	log   *logger.Logger

	mu    sync.Mutex
	state State
}

// New builds a session store in the logged-out state. Call Restore
// before serving traffic.
func New(vault repository.SessionVault, dir Authenticator, cfg Config, log *logger.Logger) *Store {
	return &Store{vault: vault, dir: dir, cfg: cfg, log: log}
}

// Snapshot returns a copy of the current state. The identity is copied
// so callers cannot mutate the slot through the pointer.
func (s *Store) Snapshot() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	st := s.state
	if st.Identity != nil {
		u := *st.Identity
		st.Identity = &u
	}
	return st
}

// ── transitions ──────────────────────────────────────────────────────
// Each transition is total: defined for every current state. Later
// resolutions overwrite earlier ones, which gives the last-write-wins
// behavior concurrent logins require.

func (s *Store) loginStart() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state.Loading = true
}

func (s *Store) loginSuccess(u entity.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{Identity: &u, Loading: false}
}

func (s *Store) loginFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

func (s *Store) logoutDone() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = State{}
}

// ── operations ───────────────────────────────────────────────────────

// Restore reads the persisted session record once at startup. Any
// malformed or partial record is treated as "no session": the store
// stays logged out and nothing is surfaced to the user.
func (s *Store) Restore(ctx context.Context) {
	userRaw, errU := s.vault.Get(ctx, KeyUser)
	tok, errT := s.vault.Get(ctx, KeyToken)
	if errU != nil || errT != nil {
		s.log.Debug().Msg("session restore: no persisted record")
		return
	}

	var u entity.User
	if err := json.Unmarshal([]byte(userRaw), &u); err != nil {
		s.log.Debug().Err(err).Msg("session restore: malformed identity, treating as absent")
		return
	}
	if u.ID == "" || !u.Role.Valid() {
		s.log.Debug().Str("role", u.Role.String()).Msg("session restore: invalid identity, treating as absent")
		return
	}
	if _, err := token.Parse(s.cfg.Secret, tok); err != nil {
		s.log.Debug().Err(err).Msg("session restore: token rejected, treating as absent")
		return
	}

	s.loginSuccess(u)
	s.log.Info().Str("email", u.Email).Str("role", u.Role.String()).Msg("session restored")
}

// Login checks the credentials against the account directory after the
// simulated round trip. On a match the identity and a fresh token are
// persisted together and the state becomes authenticated. On a miss the
// state is logged out, nothing is written, and the caller gets
// domain.ErrInvalidCredentials to display.
func (s *Store) Login(ctx context.Context, email, password string) (*entity.User, error) {
	s.loginStart()

	select {
	case <-time.After(s.cfg.LoginDelay):
	case <-ctx.Done():
		s.loginFailure()
		return nil, ctx.Err()
	}

	user, err := s.dir.Authenticate(email, password)
	if err != nil {
		s.loginFailure()
		s.log.Warn().Str("email", email).Msg("login rejected")
		return nil, err
	}

	if err := s.persist(ctx, *user); err != nil {
		s.loginFailure()
		return nil, err
	}

	s.loginSuccess(*user)
	s.log.Info().Str("email", user.Email).Str("role", user.Role.String()).Msg("login ok")
	return user, nil
}

// Register synthesizes a fresh customer identity from the profile and
// signs it in immediately. There is no uniqueness check against the
// demo directory and no loading phase; registration is synchronous.
func (s *Store) Register(ctx context.Context, p Profile) (*entity.User, error) {
	user := entity.User{
		ID:        uuid.New().String(),
		Name:      p.Name,
		Email:     p.Email,
		Phone:     p.Phone,
		Role:      entity.RoleCustomer,
		CreatedAt: time.Now().UTC().Format(time.RFC3339),
	}

	if err := s.persist(ctx, user); err != nil {
		return nil, err
	}

	s.loginSuccess(user)
	s.log.Info().Str("email", user.Email).Msg("registered")
	return &user, nil
}

// Logout clears the persisted record and resets the state. Idempotent:
// logging out while logged out is a no-op.
func (s *Store) Logout(ctx context.Context) error {
	s.logoutDone()
	if err := s.vault.Del(ctx, KeyUser, KeyToken); err != nil {
		return fmt.Errorf("clear session record: %w", err)
	}
	return nil
}

// persist writes both vault keys for the given identity: the identity
// JSON and a freshly minted token.
func (s *Store) persist(ctx context.Context, u entity.User) error {
	raw, err := json.Marshal(u)
	if err != nil {
		return fmt.Errorf("marshal identity: %w", err)
	}
	tok, err := token.Generate(s.cfg.Secret, u.ID, u.Email, u.Role.String(), s.cfg.Issuer, s.cfg.ExpMinutes)
	if err != nil {
		return fmt.Errorf("mint token: %w", err)
	}
	if err := s.vault.Set(ctx, KeyUser, string(raw)); err != nil {
		return fmt.Errorf("persist identity: %w", err)
	}
	if err := s.vault.Set(ctx, KeyToken, tok); err != nil {
		return fmt.Errorf("persist token: %w", err)
	}
	return nil
}
