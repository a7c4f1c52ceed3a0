package console

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
	"github.com/comite-ambiental/consola-admin/internal/core/service"
)

// EventScope selects which event listing the screen loads.
type EventScope string

const (
	ScopeAll      EventScope = "all"
	ScopeUpcoming EventScope = "upcoming"
	ScopeMine     EventScope = "mine"
)

// EventListOptions are the screen's derived-view controls: a status filter
// and a free-text search over title, type and creator. Both are applied
// locally, never against the backend.
type EventListOptions struct {
	Scope   EventScope
	Status  domain.EventStatus
	Search  string
	Creator string // non-empty narrows the fetch to /creator/{name}
	Type    string // non-empty narrows the fetch to /type/{name}
}

// EventsScreen lists events for any signed-in user; mutations are gated to
// administrators and group administrators.
type EventsScreen struct {
	session ports.Session
	client  ports.EventClient
	store   *service.CollectionStore[domain.Event]
	forms   *FormValidator
	out     io.Writer
	logger  zerolog.Logger
}

func NewEventsScreen(session ports.Session, client ports.EventClient, forms *FormValidator, out io.Writer, logger zerolog.Logger) *EventsScreen {
	return &EventsScreen{
		session: session,
		client:  client,
		store:   service.NewCollectionStore[domain.Event](),
		forms:   forms,
		out:     out,
		logger:  logger,
	}
}

func (s *EventsScreen) guardView() error {
	decision := Gate(s.session)
	if decision.Allowed() {
		return nil
	}
	fmt.Fprintln(s.out, decision.Message())
	return domain.ErrNotAuthenticated
}

func (s *EventsScreen) guardManage() error {
	decision := Gate(s.session, domain.RoleAdmin, domain.RoleAdminGroup)
	if decision.Allowed() {
		return nil
	}
	fmt.Fprintln(s.out, decision.Message())
	if decision == GateDeniedLoggedOut {
		return domain.ErrNotAuthenticated
	}
	return domain.ErrAccessDenied
}

func (s *EventsScreen) List(ctx context.Context, opts EventListOptions) error {
	if err := s.guardView(); err != nil {
		return err
	}
	if err := s.load(ctx, opts); err != nil {
		return err
	}
	renderEvents(s.out, filterEvents(s.store.Items(), opts.Status, opts.Search))
	return nil
}

func (s *EventsScreen) load(ctx context.Context, opts EventListOptions) error {
	fetch := func() ([]domain.Event, error) {
		switch {
		case opts.Creator != "":
			return s.client.ByCreator(ctx, opts.Creator)
		case opts.Type != "":
			return s.client.ByType(ctx, opts.Type)
		case opts.Scope == ScopeUpcoming:
			return s.client.Upcoming(ctx)
		case opts.Scope == ScopeMine:
			return s.client.MyEvents(ctx)
		default:
			return s.client.List(ctx)
		}
	}
	if err := s.store.Load(fetch); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	return nil
}

func (s *EventsScreen) ensureLoaded(ctx context.Context) error {
	if s.store.State() == service.StateLoaded {
		return nil
	}
	return s.load(ctx, EventListOptions{Scope: ScopeAll})
}

// filterEvents is a pure derived view; the source collection is untouched.
func filterEvents(events []domain.Event, status domain.EventStatus, term string) []domain.Event {
	view := events
	if status != "" {
		view = service.FilterView(view, func(e domain.Event) bool { return e.Status == status })
	}
	if term != "" {
		needle := strings.ToLower(term)
		view = service.FilterView(view, func(e domain.Event) bool {
			return strings.Contains(strings.ToLower(e.Title), needle) ||
				strings.Contains(strings.ToLower(e.EventType), needle) ||
				strings.Contains(strings.ToLower(e.CreatorUsername), needle)
		})
	}
	return view
}

func (s *EventsScreen) Create(ctx context.Context, form EventForm) error {
	if err := s.guardManage(); err != nil {
		return err
	}
	if err := s.forms.Validate(form); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	input := ports.EventInput{
		Title:       form.Title,
		EventDate:   form.Date,
		EventType:   form.TypeName,
		Description: form.Description,
	}
	echoed, err := s.store.Create(func() (*domain.Event, error) { return s.client.Create(ctx, input) })
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if !echoed {
		if err := s.load(ctx, EventListOptions{Scope: ScopeAll}); err != nil {
			return err
		}
	}
	fmt.Fprintln(s.out, "Evento creado exitosamente.")
	return nil
}

func (s *EventsScreen) Update(ctx context.Context, id int, form EventForm) error {
	if err := s.guardManage(); err != nil {
		return err
	}
	if err := s.forms.Validate(form); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	input := ports.EventInput{
		Title:       form.Title,
		EventDate:   form.Date,
		EventType:   form.TypeName,
		Description: form.Description,
	}
	var updated *domain.Event
	err := s.store.Patch(
		func(e domain.Event) bool { return e.ID == id },
		func(e *domain.Event) {
			if updated != nil {
				*e = *updated
				return
			}
			e.Title = form.Title
			e.EventDate = form.Date
			e.EventType = form.TypeName
			e.Description = form.Description
		},
		func() error {
			var err error
			updated, err = s.client.Update(ctx, id, input)
			return err
		},
	)
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	fmt.Fprintln(s.out, "Evento actualizado exitosamente.")
	return nil
}

// SetStatus changes an event's status. The event is addressed by the
// compound {title, creator} key and the local record is patched in place;
// the endpoint usually answers with an empty body, so there is nothing to
// re-fetch from the reply.
func (s *EventsScreen) SetStatus(ctx context.Context, title, creator string, status domain.EventStatus) error {
	if err := s.guardManage(); err != nil {
		return err
	}
	if !status.Valid() {
		err := &domain.ValidationError{Messages: []string{"estado desconocido: " + string(status)}}
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	key := domain.Event{Title: title, CreatorUsername: creator}
	err := s.store.Patch(
		key.SameEvent,
		func(e *domain.Event) { e.Status = status },
		func() error {
			_, err := s.client.UpdateStatus(ctx, title, creator, status)
			return err
		},
	)
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	fmt.Fprintln(s.out, "El estado del evento ha sido actualizado exitosamente.")
	return nil
}

func (s *EventsScreen) Delete(ctx context.Context, title, creator string) error {
	if err := s.guardManage(); err != nil {
		return err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	key := domain.Event{Title: title, CreatorUsername: creator}
	err := s.store.Remove(
		key.SameEvent,
		func() error {
			_, err := s.client.Delete(ctx, title, creator)
			return err
		},
	)
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	fmt.Fprintln(s.out, "El evento ha sido eliminado exitosamente.")
	return nil
}
