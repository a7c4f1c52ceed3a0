// Package token decodes the backend's compact signed credential.
//
// Decoding is deliberately unverified: the console only needs the claims
// payload, and the backend re-validates the signature on every protected
// call. The signature segment is never consulted here.
package token

import (
	"github.com/golang-jwt/jwt/v5"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

var parser = jwt.NewParser(jwt.WithoutClaimsValidation())

// Decode splits the three-segment token, base64-decodes the claims segment
// and normalises it into domain.Claims. Malformed tokens (wrong segment
// count, bad base64, invalid JSON) fail with a domain.TokenDecodeError.
func Decode(raw string) (domain.Claims, error) {
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return domain.Claims{}, &domain.TokenDecodeError{Err: err}
	}
	return domain.ClaimsFromMap(claims), nil
}
