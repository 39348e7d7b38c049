// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genre

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cinelog/cinelog/internal/platform/request"
	"github.com/cinelog/cinelog/internal/platform/respond"
	"github.com/cinelog/cinelog/internal/platform/validate"
)

// Handler implements the HTTP layer for genre management.
type Handler struct {
	genreService *Service
}

// NewHandler constructs a new genre [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{genreService: service}
}

// Register mounts the genre endpoints on the given router.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/genre", handler.create)
	router.Get("/genre/{id}", handler.get)
	router.Get("/genres", handler.list)
	router.Put("/genre", handler.update)
	router.Delete("/genre/{id}", handler.delete)
}

// # Request Payloads

type genreRequest struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// validateDescription applies the shared description constraints.
func validateDescription(validator *validate.Validator, description string) {
	validator.Required(FieldDescription, description).
		MinLen(FieldDescription, description, DescriptionMinLen).
		MaxLen(FieldDescription, description, DescriptionMaxLen)
}

/*
POST /api/v1/genre.

Response:
  - 201: int64: ID of the created genre
  - 400: Validation failure
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input genreRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validateDescription(validator, input.Description)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.genreService.Create(request.Context(), input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Genre created!", genre.ID)
}

/*
GET /api/v1/genre/{id}.

Response:
  - 200: Genre: The genre
  - 400: Invalid params
  - 404: ErrNotFound: No such genre
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.genreService.Get(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genre found!", genre)
}

/*
GET /api/v1/genres.

Description: An empty catalog yields an empty array, not an error.

Response:
  - 200: []Genre: All genres
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	genres, err := handler.genreService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genres found!", genres)
}

/*
PUT /api/v1/genre.

Description: The target ID travels in the body.

Response:
  - 200: Genre: The updated genre
  - 400: Validation failure
  - 404: ErrNotFound: No such genre
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input genreRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive("id", input.ID)
	validateDescription(validator, input.Description)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	genre, err := handler.genreService.Update(request.Context(), input.ID, input.Description)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genre updated!", genre)
}

/*
DELETE /api/v1/genre/{id}.

Response:
  - 200: true: Genre deleted
  - 400: Invalid params, or genre still referenced by a movie
  - 404: ErrNotFound: No such genre
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.genreService.Delete(request.Context(), genreID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genre deleted!", true)
}
