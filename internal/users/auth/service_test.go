// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package auth_test

import (
	"context"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/platform/apperr"
	"github.com/cinelog/cinelog/internal/platform/sec"
	"github.com/cinelog/cinelog/internal/users/auth"
)

// memoryUserRepository is an in-memory UserRepository for service tests.
type memoryUserRepository struct {
	users  map[int64]*auth.User
	nextID int64
}

func newMemoryUserRepository() *memoryUserRepository {
	return &memoryUserRepository{users: make(map[int64]*auth.User), nextID: 1}
}

func (r *memoryUserRepository) FindByID(_ context.Context, id int64) (*auth.User, error) {
	user, ok := r.users[id]
	if !ok {
		return nil, apperr.NotFound("User")
	}
	copied := *user
	return &copied, nil
}

func (r *memoryUserRepository) FindByEmail(_ context.Context, email string) (*auth.User, error) {
	for _, user := range r.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, apperr.NotFound("User")
}

func (r *memoryUserRepository) List(_ context.Context) ([]auth.User, error) {
	list := make([]auth.User, 0, len(r.users))
	for _, user := range r.users {
		list = append(list, *user)
	}
	return list, nil
}

func (r *memoryUserRepository) Create(_ context.Context, user *auth.User) error {
	user.ID = r.nextID
	r.nextID++
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) Update(_ context.Context, user *auth.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return apperr.NotFound("User")
	}
	user.UpdatedAt = time.Now()
	copied := *user
	r.users[user.ID] = &copied
	return nil
}

func (r *memoryUserRepository) DeleteWithReviews(_ context.Context, id int64) error {
	if _, ok := r.users[id]; !ok {
		return apperr.NotFound("User")
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepository) Exists(_ context.Context, id int64) (bool, error) {
	_, ok := r.users[id]
	return ok, nil
}

// memoryRevokedTokens records revoked JTIs with their TTLs.
type memoryRevokedTokens struct {
	revoked map[string]time.Duration
}

func newMemoryRevokedTokens() *memoryRevokedTokens {
	return &memoryRevokedTokens{revoked: make(map[string]time.Duration)}
}

func (r *memoryRevokedTokens) Revoke(_ context.Context, jti string, ttl time.Duration) error {
	r.revoked[jti] = ttl
	return nil
}

func (r *memoryRevokedTokens) IsRevoked(_ context.Context, jti string) (bool, error) {
	_, ok := r.revoked[jti]
	return ok, nil
}

// staticTokenProvider always issues the same opaque token.
type staticTokenProvider struct{}

func (staticTokenProvider) GenerateAccessToken(int64, string, string, time.Duration) (string, error) {
	return "signed-access-token", nil
}

func newAuthService(repo *memoryUserRepository, revoked *memoryRevokedTokens) *auth.Service {
	return auth.NewService(repo, revoked, staticTokenProvider{})
}

// seedUser registers an account directly in the repository with a real
// bcrypt hash so Login can verify the password.
func seedUser(t *testing.T, repo *memoryUserRepository, email, password string, active bool) *auth.User {
	t.Helper()

	hash, err := sec.HashPassword(password)
	require.NoError(t, err)

	user := &auth.User{
		Name:         "Ana Souza",
		Email:        email,
		PasswordHash: hash,
		Nickname:     "ana",
		BirthDate:    time.Date(1994, 5, 20, 0, 0, 0, 0, time.UTC),
		Active:       active,
		Role:         sec.RoleCommon,
	}
	require.NoError(t, repo.Create(context.Background(), user))
	return user
}

/*
TestService_Register verifies enrollment defaults and the email conflict guard.
*/
func TestService_Register(t *testing.T) {
	repo := newMemoryUserRepository()
	service := newAuthService(repo, newMemoryRevokedTokens())
	ctx := context.Background()

	input := auth.RegisterInput{
		Name:      "Ana Souza",
		Email:     "ana@cinelog.app",
		Password:  "secret123",
		Nickname:  "ana",
		BirthDate: time.Date(1994, 5, 20, 0, 0, 0, 0, time.UTC),
	}

	// 1. First registration succeeds with forced defaults
	user, err := service.Register(ctx, input)
	require.NoError(t, err)
	assert.NotZero(t, user.ID)
	assert.True(t, user.Active)
	assert.Equal(t, sec.RoleCommon, user.Role)
	assert.NotEqual(t, "secret123", user.PasswordHash)

	// 2. Same email again is rejected with Conflict
	_, err = service.Register(ctx, input)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)

	// 3. The failed attempt must not have created a second row
	all, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

/*
TestService_Login verifies credential checks and enumeration resistance.
*/
func TestService_Login(t *testing.T) {
	repo := newMemoryUserRepository()
	service := newAuthService(repo, newMemoryRevokedTokens())
	ctx := context.Background()

	seedUser(t, repo, "ana@cinelog.app", "secret123", true)
	seedUser(t, repo, "inactive@cinelog.app", "secret123", false)

	// 1. Valid credentials produce a session
	session, err := service.Login(ctx, auth.LoginInput{Email: "ana@cinelog.app", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "signed-access-token", session.AccessToken)
	assert.Equal(t, "ana@cinelog.app", session.User.Email)

	// 2. Unknown email, wrong password and inactive account all fail with
	//    the same generic message
	failures := []auth.LoginInput{
		{Email: "ghost@cinelog.app", Password: "secret123"},
		{Email: "ana@cinelog.app", Password: "wrong-password"},
		{Email: "inactive@cinelog.app", Password: "secret123"},
	}
	for _, input := range failures {
		_, err := service.Login(ctx, input)
		require.Error(t, err)
		ae := apperr.As(err)
		require.NotNil(t, ae)
		assert.Equal(t, "UNAUTHORIZED", ae.Code)
		assert.Equal(t, "Invalid credentials", ae.Message)
	}
}

/*
TestService_Logout verifies denylisting and its idempotent edge cases.
*/
func TestService_Logout(t *testing.T) {
	repo := newMemoryUserRepository()
	revoked := newMemoryRevokedTokens()
	service := newAuthService(repo, revoked)
	ctx := context.Background()

	// 1. A live token gets denylisted for its remaining lifetime
	claims := &sec.AuthClaims{UserID: 1, Name: "Ana", Role: "common"}
	claims.ID = "jti-live"
	claims.ExpiresAt = jwt.NewNumericDate(time.Now().Add(time.Hour))

	require.NoError(t, service.Logout(ctx, claims))
	isRevoked, err := revoked.IsRevoked(ctx, "jti-live")
	require.NoError(t, err)
	assert.True(t, isRevoked)

	// 2. An expired token is a no-op
	expired := &sec.AuthClaims{UserID: 1}
	expired.ID = "jti-expired"
	expired.ExpiresAt = jwt.NewNumericDate(time.Now().Add(-time.Minute))

	require.NoError(t, service.Logout(ctx, expired))
	isRevoked, err = revoked.IsRevoked(ctx, "jti-expired")
	require.NoError(t, err)
	assert.False(t, isRevoked)

	// 3. Nil claims and missing JTI also succeed silently
	require.NoError(t, service.Logout(ctx, nil))
	require.NoError(t, service.Logout(ctx, &sec.AuthClaims{UserID: 1}))
}
