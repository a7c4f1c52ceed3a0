package ports

import (
	"context"
	"time"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// EventClient talks to the backend's /api/events endpoints.
//
// Full updates address events by id; status updates and deletes use the
// compound {title, creatorUsername} key as query parameters.
type EventClient interface {
	List(ctx context.Context) ([]domain.Event, error)
	Upcoming(ctx context.Context) ([]domain.Event, error)
	ByStatus(ctx context.Context, status domain.EventStatus) ([]domain.Event, error)
	ByCreator(ctx context.Context, username string) ([]domain.Event, error)
	ByType(ctx context.Context, typeName string) ([]domain.Event, error)
	Find(ctx context.Context, title, creator string) (*domain.Event, error)
	MyEvents(ctx context.Context) ([]domain.Event, error)

	Create(ctx context.Context, input EventInput) (*domain.Event, error)
	Update(ctx context.Context, id int, input EventInput) (*domain.Event, error)
	UpdateStatus(ctx context.Context, title, creator string, status domain.EventStatus) (*MutationResult, error)
	Delete(ctx context.Context, title, creator string) (*MutationResult, error)
}

// EventInput is the console's event form. EventType carries the type *name*;
// the backend does not accept ids here.
type EventInput struct {
	Title       string
	EventDate   time.Time
	EventType   string
	Description string
}
