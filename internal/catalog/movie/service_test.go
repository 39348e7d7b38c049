// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package movie_test

import (
	"context"
	"slices"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/catalog/genre"
	"github.com/cinelog/cinelog/internal/catalog/movie"
	"github.com/cinelog/cinelog/internal/platform/apperr"
	"github.com/cinelog/cinelog/internal/social/review"
	"github.com/cinelog/cinelog/internal/users/auth"
)

// memoryMovies is an in-memory movie.Repository. Secondary-genre links
// and per-movie review counts are tracked so atomicity-adjacent behavior
// (link replacement, delete cascade) can be asserted.
type memoryMovies struct {
	movies  map[int64]*movie.Movie
	links   map[int64][]int64
	reviews map[int64]int
	genres  map[int64]genre.Genre
	nextID  int64
}

func newMemoryMovies(genres map[int64]genre.Genre) *memoryMovies {
	return &memoryMovies{
		movies:  make(map[int64]*movie.Movie),
		links:   make(map[int64][]int64),
		reviews: make(map[int64]int),
		genres:  genres,
		nextID:  1,
	}
}

func (r *memoryMovies) FindByID(_ context.Context, id int64) (*movie.Movie, error) {
	m, ok := r.movies[id]
	if !ok {
		return nil, apperr.NotFound("Movie")
	}
	copied := *m
	return &copied, nil
}

func (r *memoryMovies) List(_ context.Context) ([]movie.Movie, error) {
	list := make([]movie.Movie, 0, len(r.movies))
	for _, m := range r.movies {
		list = append(list, *m)
	}
	return list, nil
}

func (r *memoryMovies) ListByPrimaryGenre(_ context.Context, genreID int64) ([]movie.Movie, error) {
	list := make([]movie.Movie, 0)
	for _, m := range r.movies {
		if m.GenreID == genreID {
			list = append(list, *m)
		}
	}
	return list, nil
}

func (r *memoryMovies) ListBySecondaryGenre(_ context.Context, genreID int64) ([]movie.Movie, error) {
	list := make([]movie.Movie, 0)
	for movieID, genreIDs := range r.links {
		if slices.Contains(genreIDs, genreID) {
			list = append(list, *r.movies[movieID])
		}
	}
	return list, nil
}

func (r *memoryMovies) ListGenres(_ context.Context, movieID int64) ([]genre.Genre, error) {
	m, ok := r.movies[movieID]
	if !ok {
		return nil, apperr.NotFound("Movie")
	}

	genres := []genre.Genre{r.genres[m.GenreID]}
	for _, genreID := range r.links[movieID] {
		if genreID == m.GenreID {
			continue
		}
		genres = append(genres, r.genres[genreID])
	}
	return genres, nil
}

func (r *memoryMovies) Create(_ context.Context, m *movie.Movie, additionalGenres []int64) error {
	m.ID = r.nextID
	r.nextID++
	copied := *m
	r.movies[m.ID] = &copied
	r.links[m.ID] = slices.Clone(additionalGenres)
	return nil
}

func (r *memoryMovies) Update(_ context.Context, m *movie.Movie, additionalGenres []int64) error {
	if _, ok := r.movies[m.ID]; !ok {
		return apperr.NotFound("Movie")
	}
	copied := *m
	r.movies[m.ID] = &copied
	r.links[m.ID] = slices.Clone(additionalGenres)
	return nil
}

func (r *memoryMovies) DeleteCascade(_ context.Context, id int64) error {
	if _, ok := r.movies[id]; !ok {
		return apperr.NotFound("Movie")
	}
	delete(r.reviews, id)
	delete(r.links, id)
	delete(r.movies, id)
	return nil
}

func (r *memoryMovies) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.movies[id]
	return ok, nil
}

// genreSetChecker satisfies GenreChecker with a fixed ID set.
type genreSetChecker map[int64]bool

func (c genreSetChecker) Exists(_ context.Context, id int64) (bool, error) {
	return c[id], nil
}

// fixedReviews satisfies ReviewReader with a canned rating list per movie.
type fixedReviews map[int64][]float64

func (f fixedReviews) ListByMovie(_ context.Context, movieID int64) ([]review.RatedReview, error) {
	ratings := f[movieID]
	reviews := make([]review.RatedReview, 0, len(ratings))
	for i, rating := range ratings {
		reviews = append(reviews, review.RatedReview{
			Review: review.Review{ID: int64(i + 1), UserID: 10, MovieID: movieID, Rating: rating},
			User:   auth.Reviewer{ID: 10, Name: "Reviewer", Nickname: "rev"},
		})
	}
	return reviews, nil
}

func catalogGenres() map[int64]genre.Genre {
	return map[int64]genre.Genre{
		1: {ID: 1, Description: "Action"},
		2: {ID: 2, Description: "Drama"},
		3: {ID: 3, Description: "Sci-Fi"},
	}
}

func sampleMovie(genreID int64) *movie.Movie {
	return &movie.Movie{
		Name:           "Blade Runner",
		Director:       "Ridley Scott",
		ReleaseYear:    time.Date(1982, 6, 25, 0, 0, 0, 0, time.UTC),
		GenreID:        genreID,
		Duration:       "1h57m",
		Classification: 14,
	}
}

/*
TestService_Create verifies genre guards and link persistence.
*/
func TestService_Create(t *testing.T) {
	repo := newMemoryMovies(catalogGenres())
	service := movie.NewService(repo, genreSetChecker{1: true, 2: true, 3: true}, fixedReviews{})
	ctx := context.Background()

	// 1. Valid genres create the movie with its links
	created, err := service.Create(ctx, sampleMovie(3), []int64{1, 2})
	require.NoError(t, err)
	assert.NotZero(t, created.ID)
	assert.Equal(t, []int64{1, 2}, repo.links[created.ID])

	// 2. An unknown primary genre blocks the whole write
	_, err = service.Create(ctx, sampleMovie(99), nil)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// 3. An unknown secondary genre does too
	_, err = service.Create(ctx, sampleMovie(3), []int64{1, 99})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	assert.Len(t, repo.movies, 1)
}

/*
TestService_Update verifies the existence guard and link replacement.
*/
func TestService_Update(t *testing.T) {
	repo := newMemoryMovies(catalogGenres())
	service := movie.NewService(repo, genreSetChecker{1: true, 2: true, 3: true}, fixedReviews{})
	ctx := context.Background()

	created, err := service.Create(ctx, sampleMovie(3), []int64{1, 2})
	require.NoError(t, err)

	// 1. The submitted link set wholly replaces the stored one
	created.Name = "Blade Runner (Final Cut)"
	_, err = service.Update(ctx, created, []int64{2})
	require.NoError(t, err)
	assert.Equal(t, []int64{2}, repo.links[created.ID])
	assert.Equal(t, "Blade Runner (Final Cut)", repo.movies[created.ID].Name)

	// 2. Updating an unknown movie returns NotFound and creates nothing
	ghost := sampleMovie(3)
	ghost.ID = 404
	_, err = service.Update(ctx, ghost, nil)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Len(t, repo.movies, 1)
}

/*
TestService_Delete verifies the cascade over reviews and links.
*/
func TestService_Delete(t *testing.T) {
	repo := newMemoryMovies(catalogGenres())
	service := movie.NewService(repo, genreSetChecker{1: true, 2: true, 3: true}, fixedReviews{})
	ctx := context.Background()

	created, err := service.Create(ctx, sampleMovie(3), []int64{1})
	require.NoError(t, err)
	repo.reviews[created.ID] = 2

	// 1. The movie, its links and its reviews disappear together
	require.NoError(t, service.Delete(ctx, created.ID))
	assert.Empty(t, repo.movies)
	assert.Empty(t, repo.links)
	assert.Empty(t, repo.reviews)

	// 2. Deleting again reports NotFound
	err = service.Delete(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Get verifies the aggregated read model.
*/
func TestService_Get(t *testing.T) {
	repo := newMemoryMovies(catalogGenres())
	reviews := fixedReviews{}
	service := movie.NewService(repo, genreSetChecker{1: true, 2: true, 3: true}, reviews)
	ctx := context.Background()

	created, err := service.Create(ctx, sampleMovie(3), []int64{1, 2})
	require.NoError(t, err)
	reviews[created.ID] = []float64{4.8, 4.5}

	details, err := service.Get(ctx, created.ID)
	require.NoError(t, err)

	// 1. Primary genre leads the list, secondary links follow
	require.Len(t, details.Genres, 3)
	assert.Equal(t, "Sci-Fi", details.Genres[0].Description)

	// 2. Reviews carry reviewer identity
	require.Len(t, details.Reviews, 2)
	assert.Equal(t, "Reviewer", details.Reviews[0].User.Name)

	// 3. Average is the plain mean
	assert.InDelta(t, 4.65, details.AverageRating, 1e-9)

	// 4. A movie without reviews averages 0
	bare, err := service.Create(ctx, sampleMovie(1), nil)
	require.NoError(t, err)
	bareDetails, err := service.Get(ctx, bare.ID)
	require.NoError(t, err)
	assert.Zero(t, bareDetails.AverageRating)
	assert.Empty(t, bareDetails.Reviews)
}

/*
TestService_ListByGenre verifies the primary/secondary union and its
deduplication.
*/
func TestService_ListByGenre(t *testing.T) {
	repo := newMemoryMovies(catalogGenres())
	service := movie.NewService(repo, genreSetChecker{1: true, 2: true, 3: true}, fixedReviews{})
	ctx := context.Background()

	// primaryOnly names genre 1 as primary; both names it both ways;
	// secondaryOnly reaches genre 1 through the junction alone
	primaryOnly, err := service.Create(ctx, sampleMovie(1), nil)
	require.NoError(t, err)
	both, err := service.Create(ctx, sampleMovie(1), []int64{1, 2})
	require.NoError(t, err)
	secondaryOnly, err := service.Create(ctx, sampleMovie(3), []int64{1})
	require.NoError(t, err)

	summaries, err := service.ListByGenre(ctx, 1)
	require.NoError(t, err)

	// 1. Each movie appears exactly once
	require.Len(t, summaries, 3)
	seen := make(map[int64]bool)
	for _, summary := range summaries {
		assert.False(t, seen[summary.ID])
		seen[summary.ID] = true
	}
	assert.True(t, seen[primaryOnly.ID])
	assert.True(t, seen[both.ID])
	assert.True(t, seen[secondaryOnly.ID])

	// 2. An unknown genre returns NotFound, not an empty list
	_, err = service.ListByGenre(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// 3. A secondary-only match is still found
	summaries, err = service.ListByGenre(ctx, 2)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, both.ID, summaries[0].ID)
}
