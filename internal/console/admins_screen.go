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

// AdminsScreen manages group-administrator accounts. Administrator only.
type AdminsScreen struct {
	session ports.Session
	client  ports.AdminGroupClient
	store   *service.CollectionStore[domain.User]
	forms   *FormValidator
	out     io.Writer
	logger  zerolog.Logger
}

func NewAdminsScreen(session ports.Session, client ports.AdminGroupClient, forms *FormValidator, out io.Writer, logger zerolog.Logger) *AdminsScreen {
	return &AdminsScreen{
		session: session,
		client:  client,
		store:   service.NewCollectionStore[domain.User](),
		forms:   forms,
		out:     out,
		logger:  logger,
	}
}

func (s *AdminsScreen) guard() error {
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

// List shows every group administrator; with availableOnly, just the ones
// not yet assigned to a group.
func (s *AdminsScreen) List(ctx context.Context, availableOnly bool) error {
	if err := s.guard(); err != nil {
		return err
	}
	fetch := func() ([]domain.User, error) {
		if availableOnly {
			return s.client.ListAvailable(ctx)
		}
		return s.client.List(ctx)
	}
	if err := s.store.Load(fetch); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	renderUsers(s.out, s.store.Items())
	return nil
}

func (s *AdminsScreen) Register(ctx context.Context, form AdminGroupForm) error {
	if err := s.guard(); err != nil {
		return err
	}
	if err := s.forms.Validate(form); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	_, err := s.client.Register(ctx, ports.AdminGroupInput{
		Username:        form.Username,
		Password:        form.Password,
		Nombre:          form.Nombre,
		ApellidoPaterno: form.ApellidoPaterno,
		ApellidoMaterno: form.ApellidoMaterno,
		Telefono:        form.Telefono,
		Correo:          form.Correo,
	})
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	fmt.Fprintln(s.out, "Administrador de grupo registrado exitosamente.")
	return nil
}
