package ports

import (
	"context"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// GroupClient talks to the backend's /api/group endpoints.
//
// The backend routes update and delete on the collection path with the id in
// the request body rather than the URL.
type GroupClient interface {
	List(ctx context.Context) ([]domain.Group, error)
	GetByID(ctx context.Context, id int) (*domain.Group, error)
	Create(ctx context.Context, input GroupInput) (*domain.Group, error)
	Update(ctx context.Context, id int, input GroupInput) (*domain.Group, error)
	Delete(ctx context.Context, id int) (*MutationResult, error)
}

// GroupInput is the console's group form. SelectedUsers holds bare user ids;
// the client expands them into the backend's `users: [{"id": n}, ...]` shape.
type GroupInput struct {
	Name          string
	Municipio     string
	Colonia       string
	SelectedUsers []int
}

// MutationResult is the acknowledgment of a mutation whose reply carries no
// entity, including synthesized acknowledgments for empty 2xx bodies.
type MutationResult struct {
	Status  int
	Message string
}
