// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genremovie

import (
	"context"
	"fmt"

	"github.com/cinelog/cinelog/internal/platform/apperr"
)

// GenreChecker reports whether a genre exists. Satisfied by the genre
// repository.
type GenreChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// MovieChecker reports whether a movie exists. Satisfied by the movie
// repository.
type MovieChecker interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// Service implements genre-movie link use cases.
//
// Both referenced entities are guarded before any mutation so a failed
// request never leaves a dangling link behind.
type Service struct {
	repository   Repository
	genreChecker GenreChecker
	movieChecker MovieChecker
}

// NewService constructs a new [Service].
func NewService(repository Repository, genreChecker GenreChecker, movieChecker MovieChecker) *Service {
	return &Service{
		repository:   repository,
		genreChecker: genreChecker,
		movieChecker: movieChecker,
	}
}

// guardReferences verifies that both ends of a link exist.
func (service *Service) guardReferences(context context.Context, genreID, movieID int64) error {
	genreExists, err := service.genreChecker.Exists(context, genreID)
	if err != nil {
		return fmt.Errorf("genre_movie_service_genre_guard_failed: %w", err)
	}
	if !genreExists {
		return apperr.NotFound("Genre")
	}

	movieExists, err := service.movieChecker.Exists(context, movieID)
	if err != nil {
		return fmt.Errorf("genre_movie_service_movie_guard_failed: %w", err)
	}
	if !movieExists {
		return apperr.NotFound("Movie")
	}

	return nil
}

// Create links a movie to a secondary genre.
func (service *Service) Create(context context.Context, genreID, movieID int64) (*Link, error) {
	if err := service.guardReferences(context, genreID, movieID); err != nil {
		return nil, err
	}

	link := &Link{GenreID: genreID, MovieID: movieID}
	if err := service.repository.Create(context, link); err != nil {
		return nil, fmt.Errorf("genre_movie_service_create_failed: %w", err)
	}

	return link, nil
}

// Get returns the link with the given ID.
func (service *Service) Get(context context.Context, id int64) (*Link, error) {
	return service.repository.FindByID(context, id)
}

// List returns every genre-movie link.
func (service *Service) List(context context.Context) ([]Link, error) {
	links, err := service.repository.List(context)
	if err != nil {
		return nil, fmt.Errorf("genre_movie_service_list_failed: %w", err)
	}
	return links, nil
}

// Update repoints an existing link at a new genre and movie pair.
func (service *Service) Update(context context.Context, id, genreID, movieID int64) (*Link, error) {
	link, err := service.repository.FindByID(context, id)
	if err != nil {
		return nil, err
	}

	if err := service.guardReferences(context, genreID, movieID); err != nil {
		return nil, err
	}

	link.GenreID = genreID
	link.MovieID = movieID
	if err := service.repository.Update(context, link); err != nil {
		return nil, fmt.Errorf("genre_movie_service_update_failed: %w", err)
	}

	return link, nil
}

// Delete removes a link.
func (service *Service) Delete(context context.Context, id int64) error {
	if _, err := service.repository.FindByID(context, id); err != nil {
		return err
	}

	return service.repository.Delete(context, id)
}
