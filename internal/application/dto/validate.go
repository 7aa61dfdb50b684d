package dto

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/jhoicas/marketplace-api/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	mustRegister(v, "uuid15", func(fl validator.FieldLevel) bool {
		return domain.IsValidUUID(fl.Field().String())
	})
	mustRegister(v, "shopemail", func(fl validator.FieldLevel) bool {
		return domain.IsValidEmail(fl.Field().String())
	})
	mustRegister(v, "posint", func(fl validator.FieldLevel) bool {
		n, err := parseInt(fl.Field().String())
		return err == nil && n > 0
	})
	mustRegister(v, "nonnegint", func(fl validator.FieldLevel) bool {
		n, err := parseInt(fl.Field().String())
		return err == nil && n >= 0
	})
	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(fmt.Sprintf("registrar validación %s: %v", tag, err))
	}
}

// Orden de prioridad: primero campos faltantes, luego IDs, emails y números.
var tagErrors = []struct {
	tags []string
	err  error
}{
	{[]string{"required"}, domain.ErrMissingFields},
	{[]string{"uuid15"}, domain.ErrInvalidID},
	{[]string{"shopemail"}, domain.ErrInvalidEmail},
	{[]string{"posint", "nonnegint"}, domain.ErrInvalidNumeric},
}

// ValidationError primer fallo de validación: el error de dominio y el campo (nombre JSON).
type ValidationError struct {
	Err   error
	Field string
}

func (e *ValidationError) Error() string { return fmt.Sprintf("%v: %s", e.Err, e.Field) }

func (e *ValidationError) Unwrap() error { return e.Err }

// FieldOf devuelve el campo de un *ValidationError, o "" si err no lo es.
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}

// Validate valida una petición según sus tags y traduce el primer fallo (por prioridad)
// al error de dominio correspondiente, como *ValidationError.
func Validate(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return &ValidationError{Err: domain.ErrInvalidInput}
	}
	for _, te := range tagErrors {
		for _, fe := range verrs {
			for _, tag := range te.tags {
				if fe.Tag() == tag {
					return &ValidationError{Err: te.err, Field: fe.Field()}
				}
			}
		}
	}
	return &ValidationError{Err: domain.ErrInvalidInput, Field: verrs[0].Field()}
}

// Int64 convierte un json.Number entero (o texto numérico) a int64.
func Int64(n json.Number) (int64, error) {
	v, err := parseInt(n.String())
	if err != nil {
		return 0, fmt.Errorf("%w: %q", domain.ErrInvalidNumeric, n.String())
	}
	return v, nil
}

// OptionalInt64 devuelve nil si n está vacío.
func OptionalInt64(n json.Number) (*int64, error) {
	if strings.TrimSpace(n.String()) == "" {
		return nil, nil
	}
	v, err := Int64(n)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

// OptionalString devuelve nil si s está vacío, para no sobrescribir columnas con "".
func OptionalString(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

func parseInt(s string) (int64, error) {
	return strconv.ParseInt(strings.TrimSpace(s), 10, 64)
}
