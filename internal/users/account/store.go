// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

/*
Package account handles administrative management of user accounts.

It provides the endpoints operators use to create, inspect, update, and
remove member accounts, including the cascading cleanup of a removed
member's reviews.

# Architecture

  - Domain: This package depends on the auth package for the User entity.
  - Security: Every route requires authentication; all but the single-account
    read require the admin role.
*/
package account

import (
	"context"

	"github.com/cinelog/cinelog/internal/users/auth"
)

// # Repository Contracts

// AccountRepository defines the persistence contract this service consumes.
//
// The canonical implementation is the auth package's PostgreSQL user
// repository; the interface is declared here so the service depends only
// on the behavior it uses.
type AccountRepository interface {
	/*
		FindByID retrieves a user record by their unique ID.

		Parameters:
		  - context: context.Context
		  - id: int64

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByID(context context.Context, id int64) (*auth.User, error)

	/*
		FindByEmail retrieves a user record by email address.

		Parameters:
		  - context: context.Context
		  - email: string

		Returns:
		  - *auth.User: Loaded account entity
		  - error: apperr.NotFound or storage failures
	*/
	FindByEmail(context context.Context, email string) (*auth.User, error)

	// List returns every registered account ordered by creation time.
	List(context context.Context) ([]auth.User, error)

	// Create persists a new account and populates its generated ID.
	Create(context context.Context, user *auth.User) error

	// Update rewrites the mutable columns of an existing account.
	Update(context context.Context, user *auth.User) error

	// DeleteWithReviews removes the account and its authored reviews
	// in a single transaction.
	DeleteWithReviews(context context.Context, id int64) error
}
