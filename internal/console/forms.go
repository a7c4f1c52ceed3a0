package console

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/comite-ambiental/consola-admin/internal/core/domain"
)

// --- Form schemas ---
//
// These mirror the web console's form fields and its validation rules; they
// are validated before any network call.

type RegisterForm struct {
	Username        string `validate:"required,min=3,username"`
	Password        string `validate:"required,min=6"`
	ConfirmPassword string `validate:"required,eqfield=Password"`
	NombreCompleto  string `validate:"required,min=2,nombre"`
	Telefono        string `validate:"required,telefono"`
	Correo          string `validate:"required,email"`
}

type GroupForm struct {
	Name          string `validate:"required"`
	Municipio     string `validate:"required"`
	Colonia       string `validate:"required"`
	SelectedUsers []int  `validate:"dive,gt=0"`
}

type EventForm struct {
	Title       string    `validate:"required"`
	Date        time.Time `validate:"required"`
	TypeName    string    `validate:"required"`
	Description string
}

type TypeForm struct {
	Name        string `validate:"required"`
	Description string
}

type AdminGroupForm struct {
	Username        string `validate:"required,min=3,username"`
	Password        string `validate:"required,min=6"`
	Nombre          string `validate:"required,nombre"`
	ApellidoPaterno string `validate:"omitempty,nombre"`
	ApellidoMaterno string `validate:"omitempty,nombre"`
	Telefono        string `validate:"omitempty,telefono"`
	Correo          string `validate:"required,email"`
}

// --- Validation ---

var (
	usernamePattern = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	nombrePattern   = regexp.MustCompile(`^[a-zA-ZáéíóúÁÉÍÓÚñÑ\s]+$`)
	telefonoPattern = regexp.MustCompile(`^\d{10}$`)
)

// FormValidator wraps go-playground/validator with the console's legacy
// field rules registered as custom tags.
type FormValidator struct {
	v *validator.Validate
}

func NewFormValidator() *FormValidator {
	v := validator.New()
	_ = v.RegisterValidation("username", func(fl validator.FieldLevel) bool {
		return usernamePattern.MatchString(fl.Field().String())
	})
	_ = v.RegisterValidation("nombre", func(fl validator.FieldLevel) bool {
		return nombrePattern.MatchString(strings.TrimSpace(fl.Field().String()))
	})
	_ = v.RegisterValidation("telefono", func(fl validator.FieldLevel) bool {
		return telefonoPattern.MatchString(strings.ReplaceAll(fl.Field().String(), " ", ""))
	})
	return &FormValidator{v: v}
}

// Validate checks a form and returns a *domain.ValidationError listing every
// failing field in a human-readable message.
func (fv *FormValidator) Validate(form any) error {
	err := fv.v.Struct(form)
	if err == nil {
		return nil
	}
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		return err
	}
	msgs := make([]string, 0, len(ve))
	for _, fe := range ve {
		msgs = append(msgs, fieldError(fe))
	}
	return &domain.ValidationError{Messages: msgs}
}

// fieldError converts a single failure into the web console's Spanish
// wording.
func fieldError(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("el campo %s es obligatorio", field)
	case "min":
		return fmt.Sprintf("%s debe tener al menos %s caracteres", field, fe.Param())
	case "email":
		return "ingresa un correo válido"
	case "eqfield":
		return "las contraseñas no coinciden"
	case "username":
		return "solo se permiten letras, números y guiones bajos"
	case "nombre":
		return "solo se permiten letras y espacios"
	case "telefono":
		return "el teléfono debe tener 10 dígitos"
	case "gt":
		return fmt.Sprintf("%s debe ser mayor que %s", field, fe.Param())
	default:
		return fmt.Sprintf("%s no pasó la validación (%s)", field, fe.Tag())
	}
}
