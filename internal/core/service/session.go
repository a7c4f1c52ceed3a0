package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
	"github.com/comite-ambiental/consola-admin/internal/pkg/token"
)

// SessionService owns the process-wide authentication state. All reads of
// the token store go through here; resource clients only ever see the store,
// never the decoded claims.
type SessionService struct {
	store  ports.TokenStore
	auth   ports.AuthClient
	logger zerolog.Logger

	claims   *domain.Claims
	loggedIn bool
	ready    bool

	now func() time.Time
}

func NewSessionService(store ports.TokenStore, auth ports.AuthClient, logger zerolog.Logger) *SessionService {
	return &SessionService{
		store:  store,
		auth:   auth,
		logger: logger,
		now:    time.Now,
	}
}

// Bootstrap initialises the session from the token store. A missing,
// undecodable or expired credential leaves the session logged-out and clears
// the store so the bad credential is not retried on the next run.
func (s *SessionService) Bootstrap() {
	defer func() { s.ready = true }()

	raw, ok := s.store.Read()
	if !ok {
		s.reset()
		return
	}

	claims, err := token.Decode(raw)
	if err != nil {
		s.logger.Warn().Err(err).Msg("stored credential is malformed, forcing logout")
		s.Logout()
		return
	}
	if claims.Expired(s.now()) {
		s.logger.Info().Str("subject", claims.Subject).Msg("stored credential expired")
		s.Logout()
		return
	}

	s.claims = &claims
	s.loggedIn = true
}

// Ready reports whether Bootstrap has completed.
func (s *SessionService) Ready() bool { return s.ready }

// Login authenticates against the backend, stores the returned token and
// adopts its claims.
func (s *SessionService) Login(ctx context.Context, username, password string) error {
	raw, err := s.auth.Login(ctx, username, password)
	if err != nil {
		return err
	}
	return s.LoginWithToken(raw)
}

// LoginWithToken adopts a pre-issued token. The token is stored before
// decoding so behaviour matches the legacy console; a failed decode leaves
// the session logged-out with the store cleared again.
func (s *SessionService) LoginWithToken(raw string) error {
	if err := s.store.Save(raw); err != nil {
		return err
	}
	claims, err := token.Decode(raw)
	if err != nil {
		s.Logout()
		return err
	}
	s.claims = &claims
	s.loggedIn = true
	s.logger.Info().Str("subject", claims.Subject).Str("role", string(claims.Role)).Msg("session started")
	return nil
}

// Logout clears the stored token and resets the session.
func (s *SessionService) Logout() {
	if err := s.store.Clear(); err != nil {
		s.logger.Warn().Err(err).Msg("could not clear stored credential")
	}
	s.reset()
}

func (s *SessionService) reset() {
	s.claims = nil
	s.loggedIn = false
}

func (s *SessionService) IsLoggedIn() bool { return s.loggedIn }

// CurrentUser returns the decoded claims of the active session.
func (s *SessionService) CurrentUser() (domain.Claims, bool) {
	if s.claims == nil {
		return domain.Claims{}, false
	}
	return *s.claims, true
}

// HasRole reports whether the session's subject holds the given role. Role
// normalisation already happened at decode time, so this is a single
// comparison regardless of which historical token shape was presented.
func (s *SessionService) HasRole(role domain.Role) bool {
	if s.claims == nil {
		return false
	}
	return s.claims.Role == role
}

func (s *SessionService) IsAdmin() bool      { return s.HasRole(domain.RoleAdmin) }
func (s *SessionService) IsAdminGroup() bool { return s.HasRole(domain.RoleAdminGroup) }
func (s *SessionService) IsMember() bool     { return s.HasRole(domain.RoleMember) }
