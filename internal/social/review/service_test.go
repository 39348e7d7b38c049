// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package review_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/platform/apperr"
	"github.com/cinelog/cinelog/internal/platform/sec"
	"github.com/cinelog/cinelog/internal/social/review"
	"github.com/cinelog/cinelog/internal/users/auth"
	"github.com/cinelog/cinelog/pkg/pointer"
)

// memoryReviews is an in-memory review.Repository.
type memoryReviews struct {
	reviews map[int64]*review.Review
	nextID  int64
}

func newMemoryReviews() *memoryReviews {
	return &memoryReviews{reviews: make(map[int64]*review.Review), nextID: 1}
}

func (r *memoryReviews) FindByID(_ context.Context, id int64) (*review.Review, error) {
	rev, ok := r.reviews[id]
	if !ok {
		return nil, apperr.NotFound("Review")
	}
	copied := *rev
	return &copied, nil
}

func (r *memoryReviews) List(_ context.Context) ([]review.Review, error) {
	list := make([]review.Review, 0, len(r.reviews))
	for _, rev := range r.reviews {
		list = append(list, *rev)
	}
	return list, nil
}

func (r *memoryReviews) ListByMovie(_ context.Context, movieID int64) ([]review.RatedReview, error) {
	list := make([]review.RatedReview, 0)
	for _, rev := range r.reviews {
		if rev.MovieID == movieID {
			list = append(list, review.RatedReview{
				Review: *rev,
				User:   auth.Reviewer{ID: rev.UserID, Name: "Reviewer", Nickname: "rev"},
			})
		}
	}
	return list, nil
}

func (r *memoryReviews) FindByMovieAndUser(_ context.Context, movieID, userID int64) (*review.RatedReview, error) {
	for _, rev := range r.reviews {
		if rev.MovieID == movieID && rev.UserID == userID {
			return &review.RatedReview{
				Review: *rev,
				User:   auth.Reviewer{ID: rev.UserID, Name: "Reviewer", Nickname: "rev"},
			}, nil
		}
	}
	return nil, apperr.NotFound("Review")
}

func (r *memoryReviews) Create(_ context.Context, rev *review.Review) error {
	rev.ID = r.nextID
	r.nextID++
	copied := *rev
	r.reviews[rev.ID] = &copied
	return nil
}

func (r *memoryReviews) Update(_ context.Context, rev *review.Review) error {
	if _, ok := r.reviews[rev.ID]; !ok {
		return apperr.NotFound("Review")
	}
	copied := *rev
	r.reviews[rev.ID] = &copied
	return nil
}

func (r *memoryReviews) Delete(_ context.Context, id int64) error {
	if _, ok := r.reviews[id]; !ok {
		return apperr.NotFound("Review")
	}
	delete(r.reviews, id)
	return nil
}

// idSetChecker satisfies UserChecker and MovieChecker with a fixed ID set.
type idSetChecker map[int64]bool

func (c idSetChecker) Exists(_ context.Context, id int64) (bool, error) {
	return c[id], nil
}

func claimsFor(userID int64, role sec.UserRole) *sec.AuthClaims {
	return &sec.AuthClaims{UserID: userID, Name: "Member", Role: string(role)}
}

/*
TestService_Create verifies authorship and both reference guards.
*/
func TestService_Create(t *testing.T) {
	repo := newMemoryReviews()
	service := review.NewService(repo, idSetChecker{10: true}, idSetChecker{1: true})
	ctx := context.Background()

	// 1. The review is always authored by the caller
	created, err := service.Create(ctx, claimsFor(10, sec.RoleCommon), review.CreateInput{
		MovieID: 1,
		Rating:  4.5,
		Comment: pointer.To("Great movie"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(10), created.UserID)
	assert.Equal(t, 4.5, created.Rating)

	// 2. Unknown movie is rejected before any write
	_, err = service.Create(ctx, claimsFor(10, sec.RoleCommon), review.CreateInput{MovieID: 99, Rating: 3})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	// 3. A token whose account is gone cannot create
	_, err = service.Create(ctx, claimsFor(77, sec.RoleCommon), review.CreateInput{MovieID: 1, Rating: 3})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

/*
TestService_Ownership verifies the member/admin modification rules.
*/
func TestService_Ownership(t *testing.T) {
	repo := newMemoryReviews()
	service := review.NewService(repo, idSetChecker{10: true, 20: true}, idSetChecker{1: true})
	ctx := context.Background()

	owned, err := service.Create(ctx, claimsFor(10, sec.RoleCommon), review.CreateInput{MovieID: 1, Rating: 4})
	require.NoError(t, err)

	// 1. Another member cannot edit someone else's review
	_, err = service.Update(ctx, claimsFor(20, sec.RoleCommon), review.UpdateInput{ID: owned.ID, Rating: 1})
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// 2. Nor delete it
	err = service.Delete(ctx, claimsFor(20, sec.RoleCommon), owned.ID)
	require.Error(t, err)
	assert.Equal(t, "FORBIDDEN", apperr.As(err).Code)

	// 3. The owner can edit
	updated, err := service.Update(ctx, claimsFor(10, sec.RoleCommon), review.UpdateInput{
		ID:      owned.ID,
		Rating:  3.5,
		Comment: pointer.To("Rewatched, still good"),
	})
	require.NoError(t, err)
	assert.Equal(t, 3.5, updated.Rating)

	// 4. An admin can remove any review
	require.NoError(t, service.Delete(ctx, claimsFor(20, sec.RoleAdmin), owned.ID))
	_, err = service.Get(ctx, owned.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}

/*
TestService_ListByMovie distinguishes an unreviewed movie from a missing
one.
*/
func TestService_ListByMovie(t *testing.T) {
	repo := newMemoryReviews()
	service := review.NewService(repo, idSetChecker{10: true}, idSetChecker{1: true, 2: true})
	ctx := context.Background()

	_, err := service.Create(ctx, claimsFor(10, sec.RoleCommon), review.CreateInput{MovieID: 1, Rating: 5})
	require.NoError(t, err)

	// 1. Reviews come back with reviewer identity
	reviews, err := service.ListByMovie(ctx, 1)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, int64(10), reviews[0].User.ID)

	// 2. A movie without reviews yields an empty list, not an error
	reviews, err = service.ListByMovie(ctx, 2)
	require.NoError(t, err)
	assert.Empty(t, reviews)

	// 3. A missing movie yields NotFound
	_, err = service.ListByMovie(ctx, 99)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
