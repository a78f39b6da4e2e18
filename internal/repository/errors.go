package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

var (
	// ErrNotFound is returned when no record matches the query.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateIdentity is returned when a unique constraint on username
	// or email rejects an insert. Concurrent registrations racing on the same
	// identity are serialized by the database, and the loser surfaces this
	// error.
	ErrDuplicateIdentity = errors.New("username or email already exists")
)

const uniqueViolationCode = "23505"

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
