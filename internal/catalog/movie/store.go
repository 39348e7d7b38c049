// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package movie

import (
	"context"

	"github.com/cinelog/cinelog/internal/catalog/genre"
)

// Repository defines the data access contract for movies.
//
// # Atomicity
//
// Create and Update rewrite the secondary-genre links in the same
// transaction as the movie row; DeleteCascade removes reviews, links,
// and the movie together. A failure anywhere rolls the whole mutation
// back.
type Repository interface {
	// FindByID returns the movie row with the given ID.
	//
	// Returns [apperr.NotFound] if the movie does not exist.
	FindByID(ctx context.Context, id int64) (*Movie, error)

	// List returns every movie ordered by name.
	List(ctx context.Context) ([]Movie, error)

	// ListByPrimaryGenre returns movies whose primary genre matches.
	ListByPrimaryGenre(ctx context.Context, genreID int64) ([]Movie, error)

	// ListBySecondaryGenre returns movies linked to the genre through
	// the junction table.
	ListBySecondaryGenre(ctx context.Context, genreID int64) ([]Movie, error)

	// ListGenres returns a movie's genres with the primary one first,
	// secondary links following in insertion order.
	ListGenres(ctx context.Context, movieID int64) ([]genre.Genre, error)

	// Create persists the movie and its secondary-genre links in one
	// transaction, populating the generated ID.
	Create(ctx context.Context, movie *Movie, additionalGenres []int64) error

	// Update rewrites the movie row and replaces its secondary-genre
	// links in one transaction.
	//
	// Returns [apperr.NotFound] if the movie does not exist.
	Update(ctx context.Context, movie *Movie, additionalGenres []int64) error

	// DeleteCascade removes the movie's reviews, its genre links, and
	// the movie row in one transaction.
	//
	// Returns [apperr.NotFound] if the movie does not exist; nothing is
	// deleted in that case.
	DeleteCascade(ctx context.Context, id int64) error

	// Exists reports whether a movie with the given ID is present.
	Exists(ctx context.Context, id int64) (bool, error)
}
