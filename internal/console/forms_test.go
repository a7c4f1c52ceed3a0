package console

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

func validationMessages(t *testing.T, err error) []string {
	t.Helper()
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected ValidationError, got %v", err)
	}
	return ve.Messages
}

func validRegisterForm() RegisterForm {
	return RegisterForm{
		Username:        "maria_99",
		Password:        "s3creta",
		ConfirmPassword: "s3creta",
		NombreCompleto:  "María López",
		Telefono:        "55 1234 5678",
		Correo:          "maria@example.com",
	}
}

func TestRegisterForm_Valid(t *testing.T) {
	fv := NewFormValidator()
	if err := fv.Validate(validRegisterForm()); err != nil {
		t.Fatalf("valid form rejected: %v", err)
	}
}

func TestRegisterForm_UsernameRules(t *testing.T) {
	fv := NewFormValidator()

	form := validRegisterForm()
	form.Username = "ab"
	msgs := validationMessages(t, fv.Validate(form))
	if !strings.Contains(strings.Join(msgs, "; "), "al menos 3") {
		t.Fatalf("expected min-length message, got %v", msgs)
	}

	form = validRegisterForm()
	form.Username = "maría!"
	msgs = validationMessages(t, fv.Validate(form))
	if !strings.Contains(strings.Join(msgs, "; "), "guiones bajos") {
		t.Fatalf("expected character-set message, got %v", msgs)
	}
}

func TestRegisterForm_PasswordConfirmation(t *testing.T) {
	fv := NewFormValidator()
	form := validRegisterForm()
	form.ConfirmPassword = "otra-cosa"

	msgs := validationMessages(t, fv.Validate(form))
	if !strings.Contains(strings.Join(msgs, "; "), "no coinciden") {
		t.Fatalf("expected mismatch message, got %v", msgs)
	}
}

func TestRegisterForm_NombreAcceptsAccents(t *testing.T) {
	fv := NewFormValidator()

	form := validRegisterForm()
	form.NombreCompleto = "Ángel Muñoz Peña"
	if err := fv.Validate(form); err != nil {
		t.Fatalf("accented name rejected: %v", err)
	}

	form.NombreCompleto = "R2-D2"
	if err := fv.Validate(form); err == nil {
		t.Fatalf("digits in a name should be rejected")
	}
}

func TestRegisterForm_TelefonoIgnoresSpaces(t *testing.T) {
	fv := NewFormValidator()

	form := validRegisterForm()
	form.Telefono = "55 12 34 56 78"
	if err := fv.Validate(form); err != nil {
		t.Fatalf("spaced phone rejected: %v", err)
	}

	form.Telefono = "12345"
	msgs := validationMessages(t, fv.Validate(form))
	if !strings.Contains(strings.Join(msgs, "; "), "10 dígitos") {
		t.Fatalf("expected digit-count message, got %v", msgs)
	}
}

func TestGroupForm_RequiredFields(t *testing.T) {
	fv := NewFormValidator()

	err := fv.Validate(GroupForm{})
	msgs := validationMessages(t, err)
	if len(msgs) != 3 {
		t.Fatalf("expected 3 required failures, got %v", msgs)
	}

	if err := fv.Validate(GroupForm{Name: "Norte", Municipio: "Centro", Colonia: "Juárez", SelectedUsers: []int{4, 7}}); err != nil {
		t.Fatalf("valid group form rejected: %v", err)
	}
}

func TestEventForm_RequiresDate(t *testing.T) {
	fv := NewFormValidator()

	form := EventForm{Title: "Reforestación", TypeName: "Limpieza"}
	if err := fv.Validate(form); err == nil {
		t.Fatalf("zero date should be rejected")
	}

	form.Date = time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC)
	if err := fv.Validate(form); err != nil {
		t.Fatalf("valid event form rejected: %v", err)
	}
}

func TestAdminGroupForm_OptionalSurnames(t *testing.T) {
	fv := NewFormValidator()

	form := AdminGroupForm{
		Username: "lupe_adm",
		Password: "s3creta",
		Nombre:   "Lupe",
		Correo:   "lupe@example.com",
	}
	if err := fv.Validate(form); err != nil {
		t.Fatalf("surnames are optional: %v", err)
	}

	form.ApellidoPaterno = "123"
	if err := fv.Validate(form); err == nil {
		t.Fatalf("present surname must still match the name pattern")
	}
}
