package ports

import (
	"context"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// AuthClient talks to the backend's /api/auth endpoints.
type AuthClient interface {
	// Login exchanges credentials for a signed token.
	Login(ctx context.Context, username, password string) (string, error)
	// Register creates a user account. RoleID selects the backend role
	// (3 = member for self-registration, 2 = group administrator).
	Register(ctx context.Context, input RegisterInput) (*domain.User, error)
	// ListUsers returns every registered user. Requires administrator rights
	// server-side.
	ListUsers(ctx context.Context) ([]domain.User, error)
}

// RegisterInput carries the console's registration form. The client maps it
// to the backend's wire shape (rol as an `{"id": n}` object, "correo" for
// the e-mail).
type RegisterInput struct {
	Username       string
	Password       string
	NombreCompleto string
	Telefono       string
	Correo         string
	RoleID         int
}
