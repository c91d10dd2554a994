// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrNotFound is returned by update and delete operations that target an
// id with no matching row. Lookups return (nil, nil) instead.
var ErrNotFound = errors.New("record not found")

// ConstraintError reports a database constraint violation: a duplicate
// value on a unique column, a reference to a nonexistent row, or a missing
// required column. It is distinguishable from ErrNotFound so handlers can
// map the two to different responses.
type ConstraintError struct {
	Constraint string // Constraint name reported by PostgreSQL, may be empty
	Column     string // Offending column for not-null violations, may be empty
	msg        string
	err        error
}

func (e *ConstraintError) Error() string { return e.msg }

func (e *ConstraintError) Unwrap() error { return e.err }

// PostgreSQL error codes for integrity constraint violations.
const (
	pgErrNotNull    = "23502"
	pgErrForeignKey = "23503"
	pgErrUnique     = "23505"
)

// wrapConstraint converts integrity violations reported by PostgreSQL into
// a *ConstraintError. Any other error is wrapped with the given operation
// name unchanged.
func wrapConstraint(op string, err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgErrUnique:
			return &ConstraintError{
				Constraint: pgErr.ConstraintName,
				msg:        fmt.Sprintf("%s: duplicate value violates %s", op, pgErr.ConstraintName),
				err:        err,
			}
		case pgErrForeignKey:
			return &ConstraintError{
				Constraint: pgErr.ConstraintName,
				msg:        fmt.Sprintf("%s: referenced record does not exist (%s)", op, pgErr.ConstraintName),
				err:        err,
			}
		case pgErrNotNull:
			return &ConstraintError{
				Column: pgErr.ColumnName,
				msg:    fmt.Sprintf("%s: required column %s is missing", op, pgErr.ColumnName),
				err:    err,
			}
		}
	}
	return fmt.Errorf("%s: %w", op, err)
}

// IsConstraint reports whether err is (or wraps) a ConstraintError.
func IsConstraint(err error) bool {
	var ce *ConstraintError
	return errors.As(err, &ce)
}
