// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package review

import "context"

// Repository defines the data access contract for reviews.
type Repository interface {
	// FindByID returns the review with the given ID.
	//
	// Returns [apperr.NotFound] if the review does not exist.
	FindByID(ctx context.Context, id int64) (*Review, error)

	// List returns every review ordered by ID.
	List(ctx context.Context) ([]Review, error)

	// ListByMovie returns a movie's reviews joined with reviewer
	// identity, ordered by ID.
	ListByMovie(ctx context.Context, movieID int64) ([]RatedReview, error)

	// FindByMovieAndUser returns the review one member wrote for one
	// movie, joined with reviewer identity.
	//
	// Returns [apperr.NotFound] if the member has not reviewed the movie.
	FindByMovieAndUser(ctx context.Context, movieID, userID int64) (*RatedReview, error)

	// Create persists a new review and populates its generated ID.
	Create(ctx context.Context, review *Review) error

	// Update rewrites the rating and comment of an existing review.
	//
	// Returns [apperr.NotFound] if the review does not exist.
	Update(ctx context.Context, review *Review) error

	// Delete removes the review.
	//
	// Returns [apperr.NotFound] if the review does not exist.
	Delete(ctx context.Context, id int64) error
}
