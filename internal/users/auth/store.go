// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package auth

import (
	"context"
	"time"
)

// UserRepository defines the data access contract for user accounts.
//
// # Domain Ownership
//
// This interface is the single source of account storage for the whole
// users area: the account service consumes it for administrative CRUD,
// and the HTTP middleware consumes [UserRepository.Exists] for
// principal checks on authenticated requests.
//
// # Implementations
//
// The canonical implementation for Cinelog is PostgreSQL.
type UserRepository interface {
	// FindByID returns the account with the given ID.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	FindByID(ctx context.Context, id int64) (*User, error)

	// FindByEmail returns the account with the given email.
	//
	// Returns [apperr.NotFound] if no user is registered with this email.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// List returns every registered account ordered by creation time.
	List(ctx context.Context) ([]User, error)

	// Create persists a brand-new user account to the storage and
	// populates the generated ID and timestamps on the given entity.
	//
	// Returns a wrapped error if the email unique constraint fails.
	Create(ctx context.Context, user *User) error

	// Update rewrites the mutable columns of an existing account.
	//
	// Returns [apperr.NotFound] if the account does not exist.
	Update(ctx context.Context, user *User) error

	// DeleteWithReviews removes the account and every review it authored
	// inside a single transaction.
	//
	// Returns [apperr.NotFound] if the account does not exist; the
	// review table is left untouched in that case.
	DeleteWithReviews(ctx context.Context, id int64) error

	// Exists reports whether an account with the given ID is present.
	Exists(ctx context.Context, id int64) (bool, error)
}

// RevokedTokenRepository defines the contract for the access-token denylist.
//
// # Domain Ownership
//
// Revocation is kept alongside [UserRepository] because denylisted tokens
// are owned entirely by the users' domain, despite serving authentication
// security.
type RevokedTokenRepository interface {
	// Revoke denylists an access token by its JTI for the given duration.
	// The duration should cover the token's remaining lifetime.
	Revoke(ctx context.Context, jti string, ttl time.Duration) error

	// IsRevoked reports whether the given JTI has been denylisted.
	IsRevoked(ctx context.Context, jti string) (bool, error)
}
