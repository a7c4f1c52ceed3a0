package ports

import (
	"context"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// AdminGroupClient manages group-administrator accounts. The backend exposes
// no dedicated endpoint: registration goes through /api/auth with role id 2,
// and listings are the full user list filtered client-side.
type AdminGroupClient interface {
	Register(ctx context.Context, input AdminGroupInput) (*domain.User, error)
	// List returns every group administrator.
	List(ctx context.Context) ([]domain.User, error)
	// ListAvailable returns group administrators that do not yet hold a
	// group (the relation is one-to-one).
	ListAvailable(ctx context.Context) ([]domain.User, error)
}

// AdminGroupInput carries the admin registration form. The full name is
// assembled from its three parts before hitting the wire.
type AdminGroupInput struct {
	Username        string
	Password        string
	Nombre          string
	ApellidoPaterno string
	ApellidoMaterno string
	Telefono        string
	Correo          string
}
