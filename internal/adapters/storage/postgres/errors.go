package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"vet-clinic/internal/platform/apperr"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
	codeCheckViolation      = "23514"
	codeNumericOutOfRange   = "22003"
)

// translate convierte errores del driver en los de apperr. Lo que no se
// reconoce se envuelve como "db error" (=> 500).
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.ErrNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case codeUniqueViolation:
			return apperr.Conflict("%s already exists", constraintField(pgErr, "_key"))
		case codeForeignKeyViolation:
			return apperr.MissingReference(constraintField(pgErr, "_fkey"))
		case codeCheckViolation:
			return apperr.Invalid("%s is out of range", constraintField(pgErr, "_check"))
		case codeNumericOutOfRange:
			return apperr.Invalid("numeric value is out of range")
		}
	}

	return fmt.Errorf("db error: %w", err)
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == codeForeignKeyViolation
}

// constraintField saca la columna del nombre del constraint:
// "pets_breed_id_fkey" => "breed_id".
func constraintField(pgErr *pgconn.PgError, suffix string) string {
	name := strings.TrimSuffix(pgErr.ConstraintName, suffix)
	if pgErr.TableName != "" {
		name = strings.TrimPrefix(name, pgErr.TableName+"_")
	}
	if name == "" {
		return "value"
	}
	return name
}

// expectOne traduce "0 filas afectadas" a ErrNotFound.
func expectOne(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if n == 0 {
		return apperr.ErrNotFound
	}
	return nil
}
