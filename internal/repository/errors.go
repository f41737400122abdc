package repository

import (
	"errors"

	"github.com/lib/pq"
)

// ErrDuplicateEmail is returned when an insert or update collides with the
// UNIQUE constraint on students.email. Callers classify it with errors.Is.
var ErrDuplicateEmail = errors.New("email already exists")

// uniqueViolation is the Postgres error code for a violated UNIQUE
// constraint.
const uniqueViolation = "23505"

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == uniqueViolation
}
