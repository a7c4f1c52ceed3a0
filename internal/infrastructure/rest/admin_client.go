package rest

import (
	"context"
	"strings"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

// AdminGroupClient implements ports.AdminGroupClient. Group administrators
// live in the same user table as everyone else; this client composes the
// auth endpoints and filters by role client-side.
type AdminGroupClient struct {
	auth ports.AuthClient
}

func NewAdminGroupClient(auth ports.AuthClient) *AdminGroupClient {
	return &AdminGroupClient{auth: auth}
}

// Register creates a group-administrator account (role id 2). The full name
// is assembled from its parts; empty parts are dropped.
func (c *AdminGroupClient) Register(ctx context.Context, input ports.AdminGroupInput) (*domain.User, error) {
	parts := make([]string, 0, 3)
	for _, part := range []string{input.Nombre, input.ApellidoPaterno, input.ApellidoMaterno} {
		if strings.TrimSpace(part) != "" {
			parts = append(parts, strings.TrimSpace(part))
		}
	}
	return c.auth.Register(ctx, ports.RegisterInput{
		Username:       input.Username,
		Password:       input.Password,
		NombreCompleto: strings.Join(parts, " "),
		Telefono:       input.Telefono,
		Correo:         input.Correo,
		RoleID:         domain.RoleAdminGroup.ID(),
	})
}

func (c *AdminGroupClient) List(ctx context.Context) ([]domain.User, error) {
	return c.listFiltered(ctx, func(u domain.User) bool {
		return u.Role() == domain.RoleAdminGroup
	})
}

// ListAvailable returns group administrators without a group; the relation
// is one-to-one, so an assigned admin cannot take a second group.
func (c *AdminGroupClient) ListAvailable(ctx context.Context) ([]domain.User, error) {
	return c.listFiltered(ctx, func(u domain.User) bool {
		return u.Role() == domain.RoleAdminGroup && !u.HasGroup()
	})
}

func (c *AdminGroupClient) listFiltered(ctx context.Context, keep func(domain.User) bool) ([]domain.User, error) {
	users, err := c.auth.ListUsers(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.User, 0, len(users))
	for _, u := range users {
		if keep(u) {
			out = append(out, u)
		}
	}
	return out, nil
}
