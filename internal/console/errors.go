package console

import (
	"errors"
	"fmt"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// UserMessage resolves the error taxonomy into the line a screen prints.
// Authentication failures ask for a fresh login and are never retried;
// everything else recoverable carries an explicit retry hint.
func UserMessage(err error) string {
	var decodeErr *domain.TokenDecodeError
	var reqErr *domain.RequestError
	var connErr *domain.ConnectionError
	var valErr *domain.ValidationError

	switch {
	case errors.As(err, &valErr):
		return valErr.Error()
	case errors.As(err, &decodeErr), errors.Is(err, domain.ErrTokenExpired):
		return "Tu sesión no es válida. Inicia sesión de nuevo."
	case errors.As(err, &reqErr) && reqErr.AuthFailure():
		return "No autorizado. Inicia sesión de nuevo."
	case errors.As(err, &reqErr):
		return fmt.Sprintf("El servidor respondió con un error (%d). Intenta de nuevo.", reqErr.StatusCode)
	case errors.As(err, &connErr):
		return "No se pudo conectar con el servidor. Intenta de nuevo más tarde."
	case errors.Is(err, domain.ErrNotAuthenticated):
		return "Debes iniciar sesión para continuar."
	case errors.Is(err, domain.ErrAccessDenied):
		return "No tienes permisos para realizar esta acción."
	default:
		return fmt.Sprintf("Error inesperado: %v. Intenta de nuevo.", err)
	}
}
