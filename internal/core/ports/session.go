package ports

import (
	"context"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// Session is the process-wide authentication state: the decoded claims of
// the stored credential plus the role predicates derived from them.
type Session interface {
	// Bootstrap initialises the session from the token store. An absent,
	// undecodable or expired credential resets the session to logged-out
	// and clears the store.
	Bootstrap()
	// Ready reports whether Bootstrap has completed.
	Ready() bool

	// Login authenticates against the backend and stores the returned token.
	Login(ctx context.Context, username, password string) error
	// LoginWithToken adopts a pre-issued token without calling the backend.
	LoginWithToken(raw string) error
	// Logout clears the stored token and resets the session.
	Logout()

	IsLoggedIn() bool
	CurrentUser() (domain.Claims, bool)
	HasRole(role domain.Role) bool
	IsAdmin() bool
	IsAdminGroup() bool
	IsMember() bool
}
