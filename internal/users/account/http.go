// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package account

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/cinelog/cinelog/internal/platform/middleware"
	requestutil "github.com/cinelog/cinelog/internal/platform/request"
	"github.com/cinelog/cinelog/internal/platform/respond"
	"github.com/cinelog/cinelog/internal/platform/sec"
	"github.com/cinelog/cinelog/internal/platform/validate"
	"github.com/cinelog/cinelog/internal/users/auth"
)

// Handler implements the HTTP layer for administrative account management.
type Handler struct {
	accountService *Service
}

// NewHandler constructs a new account [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{accountService: service}
}

// Register mounts the account domain's endpoints on the given router.
//
// # Security
//
// Reading a single account requires authentication; everything else is
// restricted to administrators.
func (handler *Handler) Register(router chi.Router) {

	// Any authenticated principal
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/user/{id}", handler.getUser)
	})

	// Administrators only
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireRole(sec.RoleAdmin))
		r.Post("/user", handler.createUser)
		r.Get("/users", handler.listUsers)
		r.Put("/user", handler.updateUser)
		r.Delete("/user/{id}", handler.deleteUser)
	})
}

// # Request Payloads

type createUserRequest struct {
	Name      string  `json:"name"`
	Email     string  `json:"email"`
	Password  string  `json:"password"`
	Nickname  string  `json:"nickname"`
	BirthDate string  `json:"birthDate"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}

type updateUserRequest struct {
	ID        int64   `json:"id"`
	Name      *string `json:"name"`
	Email     *string `json:"email"`
	Password  *string `json:"password"`
	Nickname  *string `json:"nickname"`
	BirthDate *string `json:"birthDate"`
	Active    *bool   `json:"active"`
	Role      *string `json:"role"`
}

/*
POST /api/v1/user.

Description: Provisions a new account with an operator-chosen role and
activation state. Activation defaults to true and the role to common
when omitted.

Request:
  - Body: createUserRequest

Response:
  - 201: int64: ID of the created account
  - 400: Validation failure
  - 409: ErrConflict: Email already registered
*/
func (handler *Handler) createUser(writer http.ResponseWriter, request *http.Request) {
	var input createUserRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Required(auth.FieldName, input.Name).
		MinLen(auth.FieldName, input.Name, auth.NameMinLen).
		MaxLen(auth.FieldName, input.Name, auth.NameMaxLen).
		Required(auth.FieldEmail, input.Email).
		Email(auth.FieldEmail, input.Email).
		Required(auth.FieldPassword, input.Password).
		MinLen(auth.FieldPassword, input.Password, auth.PasswordMinLen).
		Required(auth.FieldNickname, input.Nickname).
		MaxLen(auth.FieldNickname, input.Nickname, auth.NicknameMaxLen).
		Required(auth.FieldBirthDate, input.BirthDate)

	birthDate, parsed := auth.ParseBirthDate(input.BirthDate)
	if input.BirthDate != "" {
		validator.Custom(auth.FieldBirthDate, !parsed, "Must be a valid date (YYYY-MM-DD)")
	}

	role := sec.RoleCommon
	if input.Role != nil {
		role = sec.UserRole(*input.Role)
		validator.Custom(auth.FieldRole, !role.Valid(), "Must be one of: admin, common")
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	active := true
	if input.Active != nil {
		active = *input.Active
	}

	user, err := handler.accountService.Create(request.Context(), CreateInput{
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Nickname:  input.Nickname,
		BirthDate: birthDate,
		Active:    active,
		Role:      role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "User created!", user.ID)
}

/*
GET /api/v1/user/{id}.

Description: Retrieves a single account by ID.

Response:
  - 200: auth.User: The account
  - 400: Invalid params
  - 404: ErrNotFound: No such account
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Get(request.Context(), userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "User found!", user)
}

/*
GET /api/v1/users.

Description: Lists every registered account. An empty catalog yields an
empty array, not an error.

Response:
  - 200: []auth.User: All accounts
*/
func (handler *Handler) listUsers(writer http.ResponseWriter, request *http.Request) {
	users, err := handler.accountService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Users found!", users)
}

/*
PUT /api/v1/user.

Description: Applies partial updates to an existing account. The target ID
travels in the body; absent fields keep their stored values. The creation
timestamp is server-managed and ignored if sent.

Request:
  - Body: updateUserRequest

Response:
  - 200: auth.User: The updated account
  - 400: Validation failure
  - 404: ErrNotFound: No such account
  - 409: ErrConflict: Email already registered to another account
*/
func (handler *Handler) updateUser(writer http.ResponseWriter, request *http.Request) {
	var input updateUserRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive("id", input.ID)

	if input.Name != nil {
		validator.MinLen(auth.FieldName, *input.Name, auth.NameMinLen).
			MaxLen(auth.FieldName, *input.Name, auth.NameMaxLen)
	}
	if input.Email != nil {
		validator.Email(auth.FieldEmail, *input.Email)
	}
	if input.Password != nil {
		validator.MinLen(auth.FieldPassword, *input.Password, auth.PasswordMinLen)
	}
	if input.Nickname != nil {
		validator.Required(auth.FieldNickname, *input.Nickname).
			MaxLen(auth.FieldNickname, *input.Nickname, auth.NicknameMaxLen)
	}

	var birthDate *time.Time
	if input.BirthDate != nil {
		parsedDate, parsed := auth.ParseBirthDate(*input.BirthDate)
		validator.Custom(auth.FieldBirthDate, !parsed, "Must be a valid date (YYYY-MM-DD)")
		birthDate = &parsedDate
	}

	var role *sec.UserRole
	if input.Role != nil {
		candidate := sec.UserRole(*input.Role)
		validator.Custom(auth.FieldRole, !candidate.Valid(), "Must be one of: admin, common")
		role = &candidate
	}

	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.accountService.Update(request.Context(), UpdateInput{
		ID:        input.ID,
		Name:      input.Name,
		Email:     input.Email,
		Password:  input.Password,
		Nickname:  input.Nickname,
		BirthDate: birthDate,
		Active:    input.Active,
		Role:      role,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "User updated!", user)
}

/*
DELETE /api/v1/user/{id}.

Description: Removes an account together with every review it authored.

Response:
  - 200: true: Account and reviews deleted
  - 400: Invalid params
  - 404: ErrNotFound: No such account
*/
func (handler *Handler) deleteUser(writer http.ResponseWriter, request *http.Request) {
	userID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.accountService.Delete(request.Context(), userID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "User deleted!", true)
}
