// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genre

import "context"

// Repository defines the data access contract for genres.
type Repository interface {
	// FindByID returns the genre with the given ID.
	//
	// Returns [apperr.NotFound] if the genre does not exist.
	FindByID(ctx context.Context, id int64) (*Genre, error)

	// List returns every genre ordered by description.
	List(ctx context.Context) ([]Genre, error)

	// Create persists a new genre and populates its generated ID.
	Create(ctx context.Context, genre *Genre) error

	// Update rewrites the description of an existing genre.
	//
	// Returns [apperr.NotFound] if the genre does not exist.
	Update(ctx context.Context, genre *Genre) error

	// Delete removes the genre.
	//
	// Returns [apperr.NotFound] if the genre does not exist. Genres still
	// referenced by a movie fail the foreign key and surface as a
	// validation error.
	Delete(ctx context.Context, id int64) error

	// Exists reports whether a genre with the given ID is present.
	Exists(ctx context.Context, id int64) (bool, error)
}
