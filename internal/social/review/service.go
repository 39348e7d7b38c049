// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package review

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog/internal/platform/apperr"
	"github.com/cinelog/cinelog/internal/platform/sec"
)

// # Contracts & Types

// UserChecker reports whether a user account exists. Satisfied by the
// auth package's user repository.
type UserChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// MovieChecker reports whether a movie exists. Satisfied by the movie
// repository.
type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service implements review use cases.
//
// # Ownership
//
// Members operate on their own reviews only; the admin role may modify
// or remove any review. Every write guards the referenced user and movie
// before touching the table.
type Service struct {
	repository   Repository
	userChecker  UserChecker
	movieChecker MovieChecker
}

// NewService constructs a new [Service].
func NewService(repository Repository, userChecker UserChecker, movieChecker MovieChecker) *Service {
	return &Service{
		repository:   repository,
		userChecker:  userChecker,
		movieChecker: movieChecker,
	}
}

// canModify reports whether the principal may touch the given review.
func canModify(principal *sec.AuthClaims, review *Review) bool {
	if principal == nil {
		return false
	}
	if sec.UserRole(principal.Role) == sec.RoleAdmin {
		return true
	}
	return principal.UserID == review.UserID
}

// # Write Operations

// CreateInput holds the data for a new review.
type CreateInput struct {
	MovieID int64
	Rating  float64
	Comment *string
}

/*
Create persists a new review authored by the calling principal.

Description: The author is always the authenticated caller; the movie
existence guard runs before the write.

Parameters:
  - context: context.Context
  - principal: *sec.AuthClaims
  - input: CreateInput

Returns:
  - *Review: The created review
  - error: NotFound (movie or author gone) or storage failures
*/
func (service *Service) Create(context context.Context, principal *sec.AuthClaims, input CreateInput) (*Review, error) {

	// The author must still exist; a token can outlive its account
	userExists, err := service.userChecker.Exists(context, principal.UserID)
	if err != nil {
		return nil, fmt.Errorf("review_service_user_guard_failed: %w", err)
	}
	if !userExists {
		return nil, apperr.NotFound("User")
	}

	// Reviews can only target movies that exist
	movieExists, err := service.movieChecker.Exists(context, input.MovieID)
	if err != nil {
		return nil, fmt.Errorf("review_service_movie_guard_failed: %w", err)
	}
	if !movieExists {
		return nil, apperr.NotFound("Movie")
	}

	review := &Review{
		UserID:  principal.UserID,
		MovieID: input.MovieID,
		Rating:  input.Rating,
		Comment: input.Comment,
	}

	if err := service.repository.Create(context, review); err != nil {
		return nil, fmt.Errorf("review_service_create_failed: %w", err)
	}

	return review, nil
}

// UpdateInput holds the mutable fields of a review.
type UpdateInput struct {
	ID      int64
	Rating  float64
	Comment *string
}

/*
Update rewrites the rating and comment of an existing review.

Description: The existence guard runs first; the ownership check keeps
members inside their own reviews while admins may edit any.

Parameters:
  - context: context.Context
  - principal: *sec.AuthClaims
  - input: UpdateInput

Returns:
  - *Review: The updated review
  - error: NotFound, Forbidden, or storage failures
*/
func (service *Service) Update(context context.Context, principal *sec.AuthClaims, input UpdateInput) (*Review, error) {
	review, err := service.repository.FindByID(context, input.ID)
	if err != nil {
		return nil, err
	}

	if !canModify(principal, review) {
		return nil, apperr.Forbidden("You can only modify your own reviews")
	}

	review.Rating = input.Rating
	review.Comment = input.Comment
	if err := service.repository.Update(context, review); err != nil {
		return nil, fmt.Errorf("review_service_update_failed: %w", err)
	}

	return review, nil
}

// Delete removes a review, subject to the same ownership rule as Update.
func (service *Service) Delete(context context.Context, principal *sec.AuthClaims, id int64) error {
	review, err := service.repository.FindByID(context, id)
	if err != nil {
		return err
	}

	if !canModify(principal, review) {
		return apperr.Forbidden("You can only modify your own reviews")
	}

	return service.repository.Delete(context, id)
}

// # Read Operations

// Get returns the review with the given ID.
func (service *Service) Get(context context.Context, id int64) (*Review, error) {
	return service.repository.FindByID(context, id)
}

// List returns every review.
func (service *Service) List(context context.Context) ([]Review, error) {
	reviews, err := service.repository.List(context)
	if err != nil {
		return nil, fmt.Errorf("review_service_list_failed: %w", err)
	}
	return reviews, nil
}

// ListByMovie returns a movie's reviews with reviewer identity. The
// movie existence guard distinguishes "no reviews yet" from "no such
// movie".
func (service *Service) ListByMovie(context context.Context, movieID int64) ([]RatedReview, error) {
	movieExists, err := service.movieChecker.Exists(context, movieID)
	if err != nil {
		return nil, fmt.Errorf("review_service_movie_guard_failed: %w", err)
	}
	if !movieExists {
		return nil, apperr.NotFound("Movie")
	}

	reviews, err := service.repository.ListByMovie(context, movieID)
	if err != nil {
		return nil, fmt.Errorf("review_service_list_by_movie_failed: %w", err)
	}
	return reviews, nil
}

// GetByMovieAndUser returns the review one member wrote for one movie.
func (service *Service) GetByMovieAndUser(context context.Context, movieID, userID int64) (*RatedReview, error) {
	return service.repository.FindByMovieAndUser(context, movieID, userID)
}
