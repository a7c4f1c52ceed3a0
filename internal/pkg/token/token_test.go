package token

import (
	"errors"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

func signToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	raw, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte("test-secret"))
	if err != nil {
		t.Fatalf("sign token: %v", err)
	}
	return raw
}

func TestDecode_ValidToken(t *testing.T) {
	exp := time.Now().Add(time.Hour).Unix()
	raw := signToken(t, jwt.MapClaims{"sub": "maria", "roles": "ROLE_ADMIN", "exp": exp})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Subject != "maria" {
		t.Fatalf("unexpected subject %q", claims.Subject)
	}
	if claims.Role != domain.RoleAdmin {
		t.Fatalf("unexpected role %q", claims.Role)
	}
	if claims.ExpiresAt != exp {
		t.Fatalf("unexpected exp %d", claims.ExpiresAt)
	}
	if claims.Expired(time.Now()) {
		t.Fatalf("future exp reported expired")
	}
}

func TestDecode_LegacyNumericShape(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "pedro", "rol_id": 3})

	claims, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}
	if claims.Role != domain.RoleMember {
		t.Fatalf("expected member, got %q", claims.Role)
	}
}

func TestDecode_SignatureNotVerified(t *testing.T) {
	raw := signToken(t, jwt.MapClaims{"sub": "maria"})
	// Corrupt the signature segment only; decoding must still succeed.
	tampered := raw[:len(raw)-4] + "AAAA"

	if _, err := Decode(tampered); err != nil {
		t.Fatalf("signature segment should not be consulted: %v", err)
	}
}

func TestDecode_Malformed(t *testing.T) {
	for _, raw := range []string{"", "no-dots", "a.b", "a.!!!not-base64!!!.c"} {
		_, err := Decode(raw)
		if err == nil {
			t.Fatalf("expected decode error for %q", raw)
		}
		var decodeErr *domain.TokenDecodeError
		if !errors.As(err, &decodeErr) {
			t.Fatalf("expected TokenDecodeError, got %T", err)
		}
	}
}
