package service

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

type memStore struct {
	token string
}

func (m *memStore) Save(token string) error { m.token = token; return nil }
func (m *memStore) Read() (string, bool)    { return m.token, m.token != "" }
func (m *memStore) Clear() error            { m.token = ""; return nil }

type stubAuthClient struct {
	token string
	err   error
}

func (s *stubAuthClient) Login(_ context.Context, _, _ string) (string, error) {
	return s.token, s.err
}

func (s *stubAuthClient) Register(_ context.Context, _ ports.RegisterInput) (*domain.User, error) {
	return nil, nil
}

func (s *stubAuthClient) ListUsers(_ context.Context) ([]domain.User, error) {
	return nil, nil
}

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func newSession(store ports.TokenStore, auth ports.AuthClient) *SessionService {
	return NewSessionService(store, auth, zerolog.Nop())
}

func TestBootstrap_EmptyStore(t *testing.T) {
	sess := newSession(&memStore{}, &stubAuthClient{})
	sess.Bootstrap()

	if !sess.Ready() {
		t.Fatalf("session should be ready after bootstrap")
	}
	if sess.IsLoggedIn() {
		t.Fatalf("empty store should bootstrap logged-out")
	}
}

func TestBootstrap_ValidToken(t *testing.T) {
	store := &memStore{token: signToken(t, jwt.MapClaims{
		"sub":    "admin",
		"rol_id": 1,
		"exp":    time.Now().Add(time.Hour).Unix(),
	})}
	sess := newSession(store, &stubAuthClient{})
	sess.Bootstrap()

	if !sess.IsLoggedIn() {
		t.Fatalf("expected logged-in session")
	}
	if !sess.IsAdmin() {
		t.Fatalf("rol_id 1 should derive admin")
	}
	if sess.IsMember() || sess.IsAdminGroup() {
		t.Fatalf("roles must be disjoint")
	}
	claims, ok := sess.CurrentUser()
	if !ok || claims.Subject != "admin" {
		t.Fatalf("unexpected current user %+v ok=%v", claims, ok)
	}
}

func TestBootstrap_ExpiredTokenClearsStore(t *testing.T) {
	store := &memStore{token: signToken(t, jwt.MapClaims{
		"sub": "maria",
		"exp": time.Now().Add(-time.Minute).Unix(),
	})}
	sess := newSession(store, &stubAuthClient{})
	sess.Bootstrap()

	if sess.IsLoggedIn() {
		t.Fatalf("expired credential should bootstrap logged-out")
	}
	if _, ok := store.Read(); ok {
		t.Fatalf("expired credential should be cleared from the store")
	}
}

func TestBootstrap_MalformedTokenClearsStore(t *testing.T) {
	store := &memStore{token: "not-a-token"}
	sess := newSession(store, &stubAuthClient{})
	sess.Bootstrap()

	if sess.IsLoggedIn() {
		t.Fatalf("malformed credential should bootstrap logged-out")
	}
	if _, ok := store.Read(); ok {
		t.Fatalf("malformed credential should be cleared from the store")
	}
}

func TestLogin_StoresTokenAndDerivesRole(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "lupe", "roles": "ROLE_ADMINGROUP"})
	store := &memStore{}
	sess := newSession(store, &stubAuthClient{token: raw})
	sess.Bootstrap()

	if err := sess.Login(context.Background(), "lupe", "s3cret"); err != nil {
		t.Fatalf("login: %v", err)
	}
	if !sess.IsLoggedIn() || !sess.IsAdminGroup() {
		t.Fatalf("expected logged-in adminGroup session")
	}
	if stored, _ := store.Read(); stored != raw {
		t.Fatalf("token not persisted")
	}
}

func TestLoginWithToken_DecodeFailureLeavesLoggedOut(t *testing.T) {
	store := &memStore{}
	sess := newSession(store, &stubAuthClient{})
	sess.Bootstrap()

	if err := sess.LoginWithToken("garbage"); err == nil {
		t.Fatalf("expected decode error")
	}
	if sess.IsLoggedIn() {
		t.Fatalf("session should remain logged-out")
	}
	if _, ok := store.Read(); ok {
		t.Fatalf("bad token should not stay in the store")
	}
}

func TestLogout(t *testing.T) {
	store := &memStore{token: signToken(t, jwt.MapClaims{"sub": "maria", "rol_id": 3})}
	sess := newSession(store, &stubAuthClient{})
	sess.Bootstrap()

	if !sess.IsLoggedIn() {
		t.Fatalf("precondition: logged in")
	}
	sess.Logout()
	if sess.IsLoggedIn() {
		t.Fatalf("logout should reset the session")
	}
	if _, ok := store.Read(); ok {
		t.Fatalf("logout should clear the store")
	}
	if sess.HasRole(domain.RoleMember) {
		t.Fatalf("no role without claims")
	}
}
