// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genremovie

import "context"

// Repository defines the data access contract for genre-movie links.
type Repository interface {
	// FindByID returns the link with the given ID.
	//
	// Returns [apperr.NotFound] if the link does not exist.
	FindByID(ctx context.Context, id int64) (*Link, error)

	// List returns every link ordered by ID.
	List(ctx context.Context) ([]Link, error)

	// ListByMovie returns the links of one movie ordered by ID.
	ListByMovie(ctx context.Context, movieID int64) ([]Link, error)

	// Create persists a new link and populates its generated ID.
	Create(ctx context.Context, link *Link) error

	// Update rewrites an existing link.
	//
	// Returns [apperr.NotFound] if the link does not exist.
	Update(ctx context.Context, link *Link) error

	// Delete removes the link.
	//
	// Returns [apperr.NotFound] if the link does not exist.
	Delete(ctx context.Context, id int64) error
}
