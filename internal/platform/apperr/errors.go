// Package apperr define los tipos de error compartidos por services, adapters
// de storage y handlers HTTP. Se envuelven con fmt.Errorf("%w") y se comparan
// con errors.Is.
package apperr

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrInvalidInput = errors.New("invalid input")
	ErrConflict     = errors.New("conflict")
	ErrUnauthorized = errors.New("unauthorized")
	ErrForbidden    = errors.New("forbidden")
	ErrNotFound     = errors.New("not found")
)

// Invalid crea un error de validación; el mensaje se muestra al cliente.
func Invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalidInput, fmt.Sprintf(format, args...))
}

// Conflict crea un error de conflicto; el mensaje se muestra al cliente.
func Conflict(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrConflict, fmt.Sprintf(format, args...))
}

// MissingReference: FK que apunta a una fila inexistente.
func MissingReference(field string) error {
	return Invalid("%s references a missing row", field)
}

// Detail quita el prefijo del tipo: "invalid input: name is required" se
// muestra como "name is required".
func Detail(err error) string {
	if err == nil {
		return ""
	}
	msg := err.Error()
	for _, kind := range []error{ErrInvalidInput, ErrConflict, ErrUnauthorized, ErrForbidden, ErrNotFound} {
		if rest, ok := strings.CutPrefix(msg, kind.Error()+": "); ok && rest != "" {
			return rest
		}
	}
	return msg
}
