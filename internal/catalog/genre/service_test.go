// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genre_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/catalog/genre"
	"github.com/cinelog/cinelog/internal/platform/apperr"
)

// memoryGenres is an in-memory genre.Repository.
type memoryGenres struct {
	genres map[int64]*genre.Genre
	nextID int64
}

func newMemoryGenres() *memoryGenres {
	return &memoryGenres{genres: make(map[int64]*genre.Genre), nextID: 1}
}

func (r *memoryGenres) FindByID(_ context.Context, id int64) (*genre.Genre, error) {
	g, ok := r.genres[id]
	if !ok {
		return nil, apperr.NotFound("Genre")
	}
	copied := *g
	return &copied, nil
}

func (r *memoryGenres) List(_ context.Context) ([]genre.Genre, error) {
	list := make([]genre.Genre, 0, len(r.genres))
	for _, g := range r.genres {
		list = append(list, *g)
	}
	return list, nil
}

func (r *memoryGenres) Create(_ context.Context, g *genre.Genre) error {
	g.ID = r.nextID
	r.nextID++
	copied := *g
	r.genres[g.ID] = &copied
	return nil
}

func (r *memoryGenres) Update(_ context.Context, g *genre.Genre) error {
	if _, ok := r.genres[g.ID]; !ok {
		return apperr.NotFound("Genre")
	}
	copied := *g
	r.genres[g.ID] = &copied
	return nil
}

func (r *memoryGenres) Delete(_ context.Context, id int64) error {
	if _, ok := r.genres[id]; !ok {
		return apperr.NotFound("Genre")
	}
	delete(r.genres, id)
	return nil
}

func (r *memoryGenres) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.genres[id]
	return ok, nil
}

/*
TestService_CRUD walks a genre through its full lifecycle.
*/
func TestService_CRUD(t *testing.T) {
	repo := newMemoryGenres()
	service := genre.NewService(repo)
	ctx := context.Background()

	// 1. Create assigns an ID
	created, err := service.Create(ctx, "Terror")
	require.NoError(t, err)
	assert.NotZero(t, created.ID)

	// 2. Get returns the stored entity
	found, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Terror", found.Description)

	// 3. Update rewrites the description
	updated, err := service.Update(ctx, created.ID, "Horror")
	require.NoError(t, err)
	assert.Equal(t, "Horror", updated.Description)

	// 4. Delete removes it
	require.NoError(t, service.Delete(ctx, created.ID))
	_, err = service.Get(ctx, created.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_Update_NotFound checks that updating an unknown genre never
creates a row.
*/
func TestService_Update_NotFound(t *testing.T) {
	repo := newMemoryGenres()
	service := genre.NewService(repo)
	ctx := context.Background()

	_, err := service.Update(ctx, 404, "Suspense")
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	genres, err := service.List(ctx)
	require.NoError(t, err)
	assert.Empty(t, genres)
}
