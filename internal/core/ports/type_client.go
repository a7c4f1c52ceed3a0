package ports

import (
	"context"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// TypeClient talks to the backend's /api/types endpoints.
type TypeClient interface {
	List(ctx context.Context) ([]domain.EventType, error)
	GetByID(ctx context.Context, id int) (*domain.EventType, error)
	GetByName(ctx context.Context, name string) (*domain.EventType, error)
	Create(ctx context.Context, input TypeInput) (*domain.EventType, error)
}

// TypeInput is the console's event-type form.
type TypeInput struct {
	Name        string
	Description string
}
