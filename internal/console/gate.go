package console

import (
	"github.com/comite-ambiental/consola-admin/internal/core/domain"
	"github.com/comite-ambiental/consola-admin/internal/core/ports"
)

// GateDecision is the outcome of a capability check in front of a screen.
type GateDecision int

const (
	// GatePending: session bootstrap has not completed yet.
	GatePending GateDecision = iota
	GateAllowed
	GateDeniedLoggedOut
	GateDeniedRole
)

// Gate decides whether the protected content behind it may render. With no
// required roles, any logged-in user passes; otherwise any one of the given
// roles suffices. This is a UX convenience only; the backend enforces
// authorization independently and nothing stops a caller from hitting the
// resource clients directly.
func Gate(sess ports.Session, required ...domain.Role) GateDecision {
	if !sess.Ready() {
		return GatePending
	}
	if !sess.IsLoggedIn() {
		return GateDeniedLoggedOut
	}
	if len(required) == 0 {
		return GateAllowed
	}
	for _, role := range required {
		if sess.HasRole(role) {
			return GateAllowed
		}
	}
	return GateDeniedRole
}

func (d GateDecision) Allowed() bool { return d == GateAllowed }

// Message returns the placeholder text rendered instead of the protected
// content. User-facing strings stay Spanish for parity with the web console.
func (d GateDecision) Message() string {
	switch d {
	case GatePending:
		return "Verificando permisos..."
	case GateDeniedLoggedOut:
		return "Acceso Denegado: debes iniciar sesión para acceder a esta sección."
	case GateDeniedRole:
		return "Acceso Denegado: no tienes permisos suficientes para acceder a esta sección."
	default:
		return ""
	}
}
