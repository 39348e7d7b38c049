// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genremovie_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/catalog/genremovie"
	"github.com/cinelog/cinelog/internal/platform/apperr"
)

// memoryLinks is an in-memory genremovie.Repository.
type memoryLinks struct {
	links  map[int64]*genremovie.Link
	nextID int64
}

func newMemoryLinks() *memoryLinks {
	return &memoryLinks{links: make(map[int64]*genremovie.Link), nextID: 1}
}

func (r *memoryLinks) FindByID(_ context.Context, id int64) (*genremovie.Link, error) {
	link, ok := r.links[id]
	if !ok {
		return nil, apperr.NotFound("Genre Movie")
	}
	copied := *link
	return &copied, nil
}

func (r *memoryLinks) List(_ context.Context) ([]genremovie.Link, error) {
	list := make([]genremovie.Link, 0, len(r.links))
	for _, link := range r.links {
		list = append(list, *link)
	}
	return list, nil
}

func (r *memoryLinks) ListByMovie(_ context.Context, movieID int64) ([]genremovie.Link, error) {
	list := make([]genremovie.Link, 0)
	for _, link := range r.links {
		if link.MovieID == movieID {
			list = append(list, *link)
		}
	}
	return list, nil
}

func (r *memoryLinks) Create(_ context.Context, link *genremovie.Link) error {
	link.ID = r.nextID
	r.nextID++
	copied := *link
	r.links[link.ID] = &copied
	return nil
}

func (r *memoryLinks) Update(_ context.Context, link *genremovie.Link) error {
	if _, ok := r.links[link.ID]; !ok {
		return apperr.NotFound("Genre Movie")
	}
	copied := *link
	r.links[link.ID] = &copied
	return nil
}

func (r *memoryLinks) Delete(_ context.Context, id int64) error {
	if _, ok := r.links[id]; !ok {
		return apperr.NotFound("Genre Movie")
	}
	delete(r.links, id)
	return nil
}

// existsSet satisfies both checker interfaces with a fixed ID set.
type existsSet map[int64]bool

func (c existsSet) Exists(_ context.Context, id int64) (bool, error) {
	return c[id], nil
}

/*
TestService_Create verifies the reference guards on both ends of a link.
*/
func TestService_Create(t *testing.T) {
	repo := newMemoryLinks()
	service := genremovie.NewService(repo, existsSet{1: true}, existsSet{5: true})
	ctx := context.Background()

	// 1. Both references exist
	link, err := service.Create(ctx, 1, 5)
	require.NoError(t, err)
	assert.NotZero(t, link.ID)

	// 2. Unknown genre
	_, err = service.Create(ctx, 99, 5)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Contains(t, ae.Message, "Genre")

	// 3. Unknown movie
	_, err = service.Create(ctx, 1, 99)
	require.Error(t, err)
	ae = apperr.As(err)
	require.NotNil(t, ae)
	assert.Contains(t, ae.Message, "Movie")

	assert.Len(t, repo.links, 1)
}

/*
TestService_Update verifies repointing and the existence guard.
*/
func TestService_Update(t *testing.T) {
	repo := newMemoryLinks()
	service := genremovie.NewService(repo, existsSet{1: true, 2: true}, existsSet{5: true})
	ctx := context.Background()

	link, err := service.Create(ctx, 1, 5)
	require.NoError(t, err)

	// 1. Repoint at a new genre
	updated, err := service.Update(ctx, link.ID, 2, 5)
	require.NoError(t, err)
	assert.Equal(t, int64(2), updated.GenreID)

	// 2. Updating an unknown link never creates one
	_, err = service.Update(ctx, 404, 1, 5)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
	assert.Len(t, repo.links, 1)

	// 3. Repointing at an unknown genre leaves the link untouched
	_, err = service.Update(ctx, link.ID, 99, 5)
	require.Error(t, err)
	stored, err := service.Get(ctx, link.ID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), stored.GenreID)
}
