package console

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

// AuthScreen covers login, logout, member self-registration and the
// current-session view.
type AuthScreen struct {
	session ports.Session
	auth    ports.AuthClient
	forms   *FormValidator
	out     io.Writer
	logger  zerolog.Logger
}

func NewAuthScreen(session ports.Session, auth ports.AuthClient, forms *FormValidator, out io.Writer, logger zerolog.Logger) *AuthScreen {
	return &AuthScreen{session: session, auth: auth, forms: forms, out: out, logger: logger}
}

func (s *AuthScreen) Login(ctx context.Context, username, password string) error {
	if username == "" || password == "" {
		err := &domain.ValidationError{Messages: []string{"usuario y contraseña son obligatorios"}}
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	if err := s.session.Login(ctx, username, password); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	fmt.Fprintln(s.out, "¡Inicio de sesión exitoso!")
	return nil
}

func (s *AuthScreen) Logout() {
	s.session.Logout()
	fmt.Fprintln(s.out, "Sesión cerrada.")
}

// Register self-registers a committee member (role id 3). No session needed.
func (s *AuthScreen) Register(ctx context.Context, form RegisterForm) error {
	if err := s.forms.Validate(form); err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	_, err := s.auth.Register(ctx, ports.RegisterInput{
		Username:       form.Username,
		Password:       form.Password,
		NombreCompleto: form.NombreCompleto,
		Telefono:       form.Telefono,
		Correo:         form.Correo,
		RoleID:         domain.RoleMember.ID(),
	})
	if err != nil {
		fmt.Fprintln(s.out, UserMessage(err))
		return err
	}
	fmt.Fprintln(s.out, "Usuario registrado exitosamente. Puedes iniciar sesión ahora.")
	return nil
}

// WhoAmI prints the active session's subject and derived role.
func (s *AuthScreen) WhoAmI() {
	claims, ok := s.session.CurrentUser()
	if !ok {
		fmt.Fprintln(s.out, "No hay sesión activa.")
		return
	}
	fmt.Fprintf(s.out, "Usuario: %s\n", claims.Name())
	if claims.Role != "" {
		fmt.Fprintf(s.out, "Rol: %s (%s)\n", claims.Role, claims.Role.Tag())
	} else {
		fmt.Fprintln(s.out, "Rol: sin rol atribuido")
	}
}
