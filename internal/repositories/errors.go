package repositories

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicateEmail is returned when an insert hits the email unique constraint.
var ErrDuplicateEmail = errors.New("email already exists")

const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolation
}
