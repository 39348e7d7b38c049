// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package movie

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog/internal/platform/apperr"
	"github.com/cinelog/cinelog/internal/social/review"
	"github.com/cinelog/cinelog/pkg/slice"
)

// # Contracts & Types

// GenreChecker reports whether a genre exists. Satisfied by the genre
// repository.
type GenreChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// ReviewReader supplies a movie's reviews for the read aggregations.
// Satisfied by the review repository.
type ReviewReader interface {
	ListByMovie(ctx context.Context, movieID int64) ([]review.RatedReview, error)
}

// Service implements movie catalog use cases.
//
// Every genre referenced by a write, primary and secondary alike, is
// guarded before the transaction starts so a failed request leaves no
// partial state behind.
type Service struct {
	repository   Repository
	genreChecker GenreChecker
	reviewReader ReviewReader
}

// NewService constructs a new [Service].
func NewService(repository Repository, genreChecker GenreChecker, reviewReader ReviewReader) *Service {
	return &Service{
		repository:   repository,
		genreChecker: genreChecker,
		reviewReader: reviewReader,
	}
}

// guardGenres verifies the primary and every secondary genre exist.
func (service *Service) guardGenres(context context.Context, primary int64, additional []int64) error {
	exists, err := service.genreChecker.Exists(context, primary)
	if err != nil {
		return fmt.Errorf("movie_service_genre_guard_failed: %w", err)
	}
	if !exists {
		return apperr.NotFound("Genre")
	}

	for _, genreID := range additional {
		exists, err := service.genreChecker.Exists(context, genreID)
		if err != nil {
			return fmt.Errorf("movie_service_genre_guard_failed: %w", err)
		}
		if !exists {
			return apperr.NotFound("Genre")
		}
	}

	return nil
}

// averageRating computes the mean of a movie's ratings, 0 when there
// are none.
func averageRating(reviews []review.RatedReview) float64 {
	if len(reviews) == 0 {
		return 0
	}

	var sum float64
	for _, r := range reviews {
		sum += r.Rating
	}
	return sum / float64(len(reviews))
}

// # Write Operations

/*
Create persists a new movie together with its secondary-genre links.

Description: All referenced genres are guarded first; the movie row and
the junction rows are then written in one transaction.

Parameters:
  - context: context.Context
  - movie: *Movie (ReleaseYear already coerced by the handler)
  - additionalGenres: []int64

Returns:
  - *Movie: The created movie
  - error: NotFound (unknown genre) or storage failures
*/
func (service *Service) Create(context context.Context, movie *Movie, additionalGenres []int64) (*Movie, error) {
	if err := service.guardGenres(context, movie.GenreID, additionalGenres); err != nil {
		return nil, err
	}

	if err := service.repository.Create(context, movie, additionalGenres); err != nil {
		return nil, fmt.Errorf("movie_service_create_failed: %w", err)
	}

	return movie, nil
}

/*
Update rewrites an existing movie and replaces its secondary-genre links.

Description: The existence guard keeps updates from ever creating a row;
the genre guards run before the transaction; the link set sent with the
request wholly replaces the stored one.

Parameters:
  - context: context.Context
  - movie: *Movie (hydrated with the new field values)
  - additionalGenres: []int64

Returns:
  - *Movie: The updated movie
  - error: NotFound or storage failures
*/
func (service *Service) Update(context context.Context, movie *Movie, additionalGenres []int64) (*Movie, error) {
	if _, err := service.repository.FindByID(context, movie.ID); err != nil {
		return nil, err
	}

	if err := service.guardGenres(context, movie.GenreID, additionalGenres); err != nil {
		return nil, err
	}

	if err := service.repository.Update(context, movie, additionalGenres); err != nil {
		return nil, fmt.Errorf("movie_service_update_failed: %w", err)
	}

	return movie, nil
}

// Delete removes a movie, cascading over its reviews and genre links.
func (service *Service) Delete(context context.Context, id int64) error {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return err
	}

	if err := service.repository.DeleteCascade(context, id); err != nil {
		return fmt.Errorf("movie_service_delete_failed: %w", err)
	}

	return nil
}

// # Read Operations

/*
Get assembles the full read model of one movie.

Description: The genre list comes back with the primary genre first, the
reviews carry reviewer identity, and the average rating is the plain mean
of the ratings (0 when the movie has none).

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - *MovieDetails: The aggregated movie
  - error: NotFound or storage failures
*/
func (service *Service) Get(context context.Context, id int64) (*MovieDetails, error) {
	m, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	genres, err := service.repository.ListGenres(context, id)
	if err != nil {
		return nil, fmt.Errorf("movie_service_genres_failed: %w", err)
	}

	reviews, err := service.reviewReader.ListByMovie(context, id)
	if err != nil {
		return nil, fmt.Errorf("movie_service_reviews_failed: %w", err)
	}

	return &MovieDetails{
		Movie:         *m,
		Genres:        genres,
		Reviews:       reviews,
		AverageRating: averageRating(reviews),
	}, nil
}

// List returns every movie with its average rating attached.
func (service *Service) List(context context.Context) ([]MovieSummary, error) {
	movies, err := service.repository.List(context)
	if err != nil {
		return nil, fmt.Errorf("movie_service_list_failed: %w", err)
	}

	return service.summarize(context, movies)
}

/*
ListByGenre returns the movies matching a genre in either position.

Description: Movies naming the genre as primary come first, those linked
through the junction follow, and a movie matching both ways appears once.

Parameters:
  - context: context.Context
  - genreID: int64

Returns:
  - []MovieSummary: Deduplicated union with average ratings
  - error: NotFound (unknown genre) or storage failures
*/
func (service *Service) ListByGenre(context context.Context, genreID int64) ([]MovieSummary, error) {
	exists, err := service.genreChecker.Exists(context, genreID)
	if err != nil {
		return nil, fmt.Errorf("movie_service_genre_guard_failed: %w", err)
	}
	if !exists {
		return nil, apperr.NotFound("Genre")
	}

	primary, err := service.repository.ListByPrimaryGenre(context, genreID)
	if err != nil {
		return nil, fmt.Errorf("movie_service_list_by_genre_failed: %w", err)
	}

	secondary, err := service.repository.ListBySecondaryGenre(context, genreID)
	if err != nil {
		return nil, fmt.Errorf("movie_service_list_by_genre_failed: %w", err)
	}

	combined := slice.Dedupe(append(primary, secondary...), func(m Movie) int64 { return m.ID })

	return service.summarize(context, combined)
}

// summarize attaches the average rating to each movie.
func (service *Service) summarize(context context.Context, movies []Movie) ([]MovieSummary, error) {
	summaries := make([]MovieSummary, 0, len(movies))
	for _, m := range movies {
		reviews, err := service.reviewReader.ListByMovie(context, m.ID)
		if err != nil {
			return nil, fmt.Errorf("movie_service_reviews_failed: %w", err)
		}
		summaries = append(summaries, MovieSummary{
			Movie:         m,
			AverageRating: averageRating(reviews),
		})
	}
	return summaries, nil
}
