package console

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
	"github.com/comite-ambiental/consola-admin/internal/core/service"
)

// GroupsScreen is the group management screen. Administrator only.
type GroupsScreen struct {
	session ports.Session
	client  ports.GroupClient
	store   *service.CollectionStore[domain.Group]
	forms   *FormValidator
	out     io.Writer
	logger  zerolog.Logger
}

func NewGroupsScreen(session ports.Session, client ports.GroupClient, forms *FormValidator, out io.Writer, logger zerolog.Logger) *GroupsScreen {
	return &GroupsScreen{
		session: session,
		client:  client,
		store:   service.NewCollectionStore[domain.Group](),
		forms:   forms,
		out:     out,
		logger:  logger,
	}
}

func (s *GroupsScreen) guard() error {
	decision := Gate(s.session, domain.RoleAdmin)
	if decision.Allowed() {
		return nil
	}
	fmt.Fprintln(s.out, decision.Message())
	if decision == GateDeniedLoggedOut {
		return domain.ErrNotAuthenticated
	}
	return domain.ErrAccessDenied
}

func (s *GroupsScreen) List(ctx context.Context) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.load(ctx); err != nil {
		return err
	}
	renderGroups(s.out, s.store.Items())
	return nil
}

func (s *GroupsScreen) load(ctx context.Context) error {
	err := s.store.Load(func() ([]domain.Group, error) { return s.client.List(ctx) })
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
	}
	return err
}

// ensureLoaded fills the local collection before a mutation so the
// optimistic patch has something to patch.
func (s *GroupsScreen) ensureLoaded(ctx context.Context) error {
	if s.store.State() == service.StateLoaded {
		return nil
	}
	return s.load(ctx)
}

func (s *GroupsScreen) Create(ctx context.Context, form GroupForm) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.forms.Validate(form); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	input := ports.GroupInput{
		Name:          form.Name,
		Municipio:     form.Municipio,
		Colonia:       form.Colonia,
		SelectedUsers: form.SelectedUsers,
	}
	echoed, err := s.store.Create(func() (*domain.Group, error) { return s.client.Create(ctx, input) })
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if !echoed {
		// The backend acknowledged without the created record; re-fetch to
		// pick up the server-assigned id.
		if err := s.load(ctx); err != nil {
			return err
		}
	}
	fmt.Fprintln(s.out, "Grupo creado exitosamente.")
	return nil
}

func (s *GroupsScreen) Update(ctx context.Context, id int, form GroupForm) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.forms.Validate(form); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	input := ports.GroupInput{
		Name:          form.Name,
		Municipio:     form.Municipio,
		Colonia:       form.Colonia,
		SelectedUsers: form.SelectedUsers,
	}
	var updated *domain.Group
	err := s.store.Patch(
		func(g domain.Group) bool { return g.ID == id },
		func(g *domain.Group) {
			if updated != nil {
				*g = *updated
				return
			}
			g.Name = form.Name
			g.Municipio = form.Municipio
			g.Colonia = form.Colonia
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
	fmt.Fprintln(s.out, "Grupo actualizado exitosamente.")
	return nil
}

func (s *GroupsScreen) Delete(ctx context.Context, id int) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.ensureLoaded(ctx); err != nil {
		return err
	}

	err := s.store.Remove(
		func(g domain.Group) bool { return g.ID == id },
		func() error {
			_, err := s.client.Delete(ctx, id)
			return err
		},
	)
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	fmt.Fprintln(s.out, "El grupo ha sido eliminado exitosamente.")
	return nil
}
