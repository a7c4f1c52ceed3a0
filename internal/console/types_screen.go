package console

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
	"github.com/comite-ambiental/consola-admin/internal/core/service"
)

// TypesScreen manages the event-type catalog. Administrators and group
// administrators only.
type TypesScreen struct {
	session ports.Session
	client  ports.TypeClient
	store   *service.CollectionStore[domain.EventType]
	forms   *FormValidator
	out     io.Writer
	logger  zerolog.Logger
}

func NewTypesScreen(session ports.Session, client ports.TypeClient, forms *FormValidator, out io.Writer, logger zerolog.Logger) *TypesScreen {
	return &TypesScreen{
		session: session,
		client:  client,
		store:   service.NewCollectionStore[domain.EventType](),
		forms:   forms,
		out:     out,
		logger:  logger,
	}
}

func (s *TypesScreen) guard() error {
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

func (s *TypesScreen) List(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}
	err := s.store.Load(func() ([]domain.EventType, error) { return s.client.List(ctx) })
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	renderTypes(s.out, s.store.Items())
	return nil
}

func (s *TypesScreen) Create(ctx context.Context, form TypeForm) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.forms.Validate(form); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if s.store.State() != service.StateLoaded {
		if err := s.store.Load(func() ([]domain.EventType, error) { return s.client.List(ctx) }); err != nil {
			fmt.Fprintln(s.out, UserMessage(err))
			return err
		}
	}

	input := ports.TypeInput{Name: form.Name, Description: form.Description}
	echoed, err := s.store.Create(func() (*domain.EventType, error) { return s.client.Create(ctx, input) })
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if !echoed {
		if err := s.store.Load(func() ([]domain.EventType, error) { return s.client.List(ctx) }); err != nil {
			fmt.Fprintln(s.out, UserMessage(err))
			return err
		}
	}
	fmt.Fprintln(s.out, "Tipo de evento creado exitosamente.")
	return nil
}

// Show looks a type up by numeric id or, failing that, by name.
func (s *TypesScreen) Show(ctx context.Context, ref string) error {
	if err := s.guard(); err != nil {
		return err
	}
	var t *domain.EventType
	var err error
	if id, convErr := strconv.Atoi(ref); convErr == nil {
		t, err = s.client.GetByID(ctx, id)
	} else {
		t, err = s.client.GetByName(ctx, ref)
	}
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	renderTypes(s.out, []domain.EventType{*t})
	return nil
}
