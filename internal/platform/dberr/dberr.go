// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

// Package dberr provides a bridge between low-level database errors and
// higher-level application errors.
//
// # Defensive Fallback
//
// Uniqueness and referential invariants are checked explicitly in the service
// layer before any mutation. The SQLSTATE mapping here is the secondary line
// of defense for races that slip past those guards: a constraint violation
// surfaces to the client as the same outcome the pre-check would have produced.
package dberr

import (
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/cinelog/cinelog/internal/platform/apperr"
)

// Postgres SQLSTATE codes handled explicitly.
const (
	codeUniqueViolation     = "23505"
	codeForeignKeyViolation = "23503"
)

// ErrNotFound is a standard error returned when a queried row doesn't exist.
var ErrNotFound = apperr.NotFound("Resource")

// Wrap inspects a database error and wraps it into a meaningful [apperr.AppError].
// It hides internal database details from the client while classifying the error type.
func Wrap(err error, action string) error {
	if err == nil {
		return nil
	}

	// 1. Not Found mapping
	if errors.Is(err, pgx.ErrNoRows) {
		return ErrNotFound
	}

	// 2. Constraint violations that raced past a service-layer guard
	var pgError *pgconn.PgError
	if errors.As(err, &pgError) {
		switch pgError.Code {
		case codeUniqueViolation:
			return apperr.Conflict("A record with the same unique value already exists")
		case codeForeignKeyViolation:
			return apperr.ValidationError("A referenced record does not exist")
		}
	}

	// 3. Unknown query errors become Internal Server Errors
	return apperr.Internal(err)
}
