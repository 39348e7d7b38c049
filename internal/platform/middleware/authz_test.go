// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package middleware_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cinelog/cinelog/internal/platform/middleware"
	"github.com/cinelog/cinelog/internal/platform/respond"
	"github.com/cinelog/cinelog/internal/platform/sec"
)

// stubVerifier resolves a fixed token string to fixed claims.
type stubVerifier struct {
	token  string
	claims *sec.AuthClaims
}

func (s *stubVerifier) VerifyToken(tokenStr string) (*sec.AuthClaims, error) {
	if tokenStr != s.token {
		return nil, errors.New("token is malformed")
	}
	return s.claims, nil
}

// stubRevoker marks a single JTI as revoked.
type stubRevoker struct {
	revokedJTI string
}

func (s *stubRevoker) IsRevoked(_ context.Context, jti string) (bool, error) {
	return jti == s.revokedJTI, nil
}

// stubChecker knows a fixed set of live account IDs.
type stubChecker struct {
	existing map[int64]bool
}

func (s *stubChecker) Exists(_ context.Context, userID int64) (bool, error) {
	return s.existing[userID], nil
}

// echoUser terminates the chain and reports the authenticated user ID, or -1
// for anonymous requests.
func echoUser() http.Handler {
	return http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		userID := int64(-1)
		if claims := middleware.GetUser(request.Context()); claims != nil {
			userID = claims.UserID
		}
		respond.OK(writer, "ok", userID)
	})
}

func validClaims(userID int64, role string, jti string) *sec.AuthClaims {
	claims := &sec.AuthClaims{
		UserID: userID,
		Name:   "Ana",
		Role:   role,
	}
	claims.ID = jti
	return claims
}

/*
TestAuthenticate covers the full credential pipeline: anonymous passthrough,
signature verification, revocation denylist and principal existence.
*/
func TestAuthenticate(t *testing.T) {
	verifier := &stubVerifier{token: "good-token", claims: validClaims(42, "common", "jti-live")}

	tests := []struct {
		name       string
		header     string
		value      string
		revoker    *stubRevoker
		checker    *stubChecker
		wantStatus int
		wantUserID int64
	}{
		{
			name:       "no_header_is_anonymous",
			wantStatus: http.StatusOK,
			wantUserID: -1,
		},
		{
			name:       "bearer_token_authenticates",
			header:     "Authorization",
			value:      "Bearer good-token",
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "legacy_x_access_token_authenticates",
			header:     "x-access-token",
			value:      "good-token",
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
		{
			name:       "invalid_token_rejected",
			header:     "Authorization",
			value:      "Bearer forged-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "malformed_scheme_rejected",
			header:     "Authorization",
			value:      "Basic good-token",
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "revoked_token_rejected",
			header:     "Authorization",
			value:      "Bearer good-token",
			revoker:    &stubRevoker{revokedJTI: "jti-live"},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "deleted_account_rejected",
			header:     "Authorization",
			value:      "Bearer good-token",
			checker:    &stubChecker{existing: map[int64]bool{}},
			wantStatus: http.StatusUnauthorized,
		},
		{
			name:       "live_account_accepted",
			header:     "Authorization",
			value:      "Bearer good-token",
			checker:    &stubChecker{existing: map[int64]bool{42: true}},
			wantStatus: http.StatusOK,
			wantUserID: 42,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var revoker middleware.TokenRevoker
			if tt.revoker != nil {
				revoker = tt.revoker
			}
			var checker middleware.PrincipalChecker
			if tt.checker != nil {
				checker = tt.checker
			}

			handler := middleware.Authenticate(verifier, revoker, checker)(echoUser())

			request := httptest.NewRequest(http.MethodGet, "/movies", nil)
			if tt.header != "" {
				request.Header.Set(tt.header, tt.value)
			}
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)

			var envelope respond.Envelope
			require.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &envelope))

			if tt.wantStatus == http.StatusOK {
				assert.True(t, envelope.Success)
				assert.Equal(t, float64(tt.wantUserID), envelope.Data)
			} else {
				assert.False(t, envelope.Success)
			}
		})
	}
}

/*
TestRequireAuth verifies that unauthenticated requests are blocked with 401.
*/
func TestRequireAuth(t *testing.T) {
	handler := middleware.RequireAuth(echoUser())

	// 1. Anonymous request is rejected
	request := httptest.NewRequest(http.MethodGet, "/reviews", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)

	// 2. Authenticated request passes through
	verifier := &stubVerifier{token: "good-token", claims: validClaims(7, "common", "jti-7")}
	chain := middleware.Authenticate(verifier, nil, nil)(handler)

	request = httptest.NewRequest(http.MethodGet, "/reviews", nil)
	request.Header.Set("Authorization", "Bearer good-token")
	recorder = httptest.NewRecorder()
	chain.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusOK, recorder.Code)
}

/*
TestRequireRole verifies the role hierarchy enforcement.
*/
func TestRequireRole(t *testing.T) {
	tests := []struct {
		name       string
		role       string
		required   sec.UserRole
		wantStatus int
	}{
		{"admin_accesses_admin_route", "admin", sec.RoleAdmin, http.StatusOK},
		{"common_blocked_from_admin_route", "common", sec.RoleAdmin, http.StatusForbidden},
		{"admin_accesses_common_route", "admin", sec.RoleCommon, http.StatusOK},
		{"common_accesses_common_route", "common", sec.RoleCommon, http.StatusOK},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			verifier := &stubVerifier{token: "good-token", claims: validClaims(9, tt.role, "jti-9")}
			handler := middleware.Authenticate(verifier, nil, nil)(
				middleware.RequireRole(tt.required)(echoUser()),
			)

			request := httptest.NewRequest(http.MethodDelete, "/user/1", nil)
			request.Header.Set("Authorization", "Bearer good-token")
			recorder := httptest.NewRecorder()

			handler.ServeHTTP(recorder, request)

			assert.Equal(t, tt.wantStatus, recorder.Code)
		})
	}

	// Unauthenticated requests get 401, not 403
	handler := middleware.RequireRole(sec.RoleAdmin)(echoUser())
	request := httptest.NewRequest(http.MethodDelete, "/user/1", nil)
	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, request)
	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}
