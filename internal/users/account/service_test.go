// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package account_test

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/platform/apperr"
	"github.com/cinelog/cinelog/internal/platform/sec"
	"github.com/cinelog/cinelog/internal/users/account"
	"github.com/cinelog/cinelog/internal/users/auth"
	"github.com/cinelog/cinelog/pkg/pointer"
)

// memoryAccounts is an in-memory AccountRepository. It also tracks reviews
// per user so the cascade behavior of DeleteWithReviews can be observed.
type memoryAccounts struct {
	users   map[int64]*auth.User
	reviews map[int64]int
	nextID  int64
}

func newMemoryAccounts() *memoryAccounts {
	return &memoryAccounts{
		users:   make(map[int64]*auth.User),
		reviews: make(map[int64]int),
		nextID:  1,
	}
}

func (r *memoryAccounts) FindByID(_ context.Context, id int64) (*auth.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (r *memoryAccounts) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryAccounts) List(_ context.Context) ([]auth.User, error) {
	list := make([]auth.User, 0, len(r.users))
	for _, user := range r.users {
		list = append(list, *user)
	}
	return list, nil
}

func (r *memoryAccounts) Create(_ context.Context, user *auth.User) error {
	user.ID = r.nextID
	r.nextID++
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryAccounts) Update(_ context.Context, user *auth.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryAccounts) DeleteWithReviews(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(r.users, id)
	delete(r.reviews, id)
	return nil
}

func newAccountService(repo *memoryAccounts) *account.Service {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	return account.NewService(repo, logger)
}

func seedAccount(t *testing.T, repo *memoryAccounts, email string, role sec.UserRole) *auth.User {
	t.Helper()

	user := &auth.User{
		Name:         "Bruno Lima",
		Email:        email,
		PasswordHash: "$2a$10$fakehashfakehashfakehash",
		Nickname:     "bruno",
		BirthDate:    time.Date(1990, 1, 15, 0, 0, 0, 0, time.UTC),
		Active:       true,
		Role:         role,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

/*
TestService_Create verifies admin provisioning and the email conflict guard.
*/
func TestService_Create(t *testing.T) {
	repo := newMemoryAccounts()
	service := newAccountService(repo)
	ctx := context.Background()

	// 1. Admin may pick role and activation state
	user, err := service.Create(ctx, account.CreateInput{
		Name:      "Carla Dias",
		Email:     "carla@cinelog.app",
		Password:  "secret123",
		Nickname:  "carla",
		BirthDate: time.Date(1988, 3, 2, 0, 0, 0, 0, time.UTC),
		Active:    false,
		Role:      sec.RoleAdmin,
	})
	require.NoError(t, err)
	assert.Equal(t, sec.RoleAdmin, user.Role)
	assert.False(t, user.Active)

	// 2. Duplicate email is rejected without a write
	_, err = service.Create(ctx, account.CreateInput{
		Name:     "Impostor",
		Email:    "carla@cinelog.app",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

/*
TestService_Update verifies delta application and both update guards.
*/
func TestService_Update(t *testing.T) {
	repo := newMemoryAccounts()
	service := newAccountService(repo)
	ctx := context.Background()

	user := seedAccount(t, repo, "bruno@cinelog.app", sec.RoleCommon)
	other := seedAccount(t, repo, "taken@cinelog.app", sec.RoleCommon)

	// 1. Partial update touches only the provided fields
	updated, err := service.Update(ctx, account.UpdateInput{
		ID:       user.ID,
		Nickname: pointer.To("brunão"),
		Active:   pointer.To(false),
	})
	require.NoError(t, err)
	assert.Equal(t, "brunão", updated.Nickname)
	assert.False(t, updated.Active)
	assert.Equal(t, "bruno@cinelog.app", updated.Email)
	assert.Equal(t, "Bruno Lima", updated.Name)

	// 2. Changing email to one owned by another account conflicts
	_, err = service.Update(ctx, account.UpdateInput{
		ID:    user.ID,
		Email: pointer.To(other.Email),
	})
	require.Error(t, err)
	assert.Equal(t, "CONFLICT", apperr.As(err).Code)

	// 3. Re-submitting the account's own email is not a conflict
	_, err = service.Update(ctx, account.UpdateInput{
		ID:    user.ID,
		Email: pointer.To("bruno@cinelog.app"),
	})
	require.NoError(t, err)

	// 4. Updating a missing account returns NotFound and creates nothing
	_, err = service.Update(ctx, account.UpdateInput{
		ID:   999,
		Name: pointer.To("Ghost"),
	})
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)

	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 2)
}

/*
TestService_Delete verifies the existence guard and review cascade.
*/
func TestService_Delete(t *testing.T) {
	repo := newMemoryAccounts()
	service := newAccountService(repo)
	ctx := context.Background()

	user := seedAccount(t, repo, "bruno@cinelog.app", sec.RoleCommon)
	repo.reviews[user.ID] = 3

	// 1. Deleting removes the account and its reviews together
	require.NoError(t, service.Delete(ctx, user.ID))
	_, ok := repo.users[user.ID]
	assert.False(t, ok)
	_, ok = repo.reviews[user.ID]
	assert.False(t, ok)

	// 2. Deleting again reports NotFound
	err := service.Delete(ctx, user.ID)
	require.Error(t, err)
	assert.Equal(t, "NOT_FOUND", apperr.As(err).Code)
}
