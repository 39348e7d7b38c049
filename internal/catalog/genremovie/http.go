// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genremovie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cinelog/cinelog/internal/platform/request"
	"github.com/cinelog/cinelog/internal/platform/respond"
	"github.com/cinelog/cinelog/internal/platform/validate"
)

// Handler implements the HTTP layer for genre-movie link management.
type Handler struct {
	linkService *Service
}

// NewHandler constructs a new genre-movie [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{linkService: service}
}

// Register mounts the link endpoints on the given router.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/genreMovie", handler.create)
	router.Get("/genreMovie/{id}", handler.get)
	router.Get("/genreMovies", handler.list)
	router.Put("/genreMovie", handler.update)
	router.Delete("/genreMovie/{id}", handler.delete)
}

// # Request Payloads

type linkRequest struct {
	ID      int64 `json:"id"`
	GenreID int64 `json:"genreId"`
	MovieID int64 `json:"movieId"`
}

/*
POST /api/v1/genreMovie.

Response:
  - 201: int64: ID of the created link
  - 400: Validation failure
  - 404: ErrNotFound: Referenced genre or movie missing
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input linkRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldGenreID, input.GenreID)
	validator.Positive(FieldMovieID, input.MovieID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.linkService.Create(request.Context(), input.GenreID, input.MovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Genre Movie created!", link.ID)
}

/*
GET /api/v1/genreMovie/{id}.

Response:
  - 200: Link: The link
  - 400: Invalid params
  - 404: ErrNotFound: No such link
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.linkService.Get(request.Context(), linkID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genre Movie found!", link)
}

/*
GET /api/v1/genreMovies.

Response:
  - 200: []Link: All links
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	links, err := handler.linkService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genre Movies found!", links)
}

/*
PUT /api/v1/genreMovie.

Description: The target ID travels in the body.

Response:
  - 200: Link: The updated link
  - 400: Validation failure
  - 404: ErrNotFound: Link, genre, or movie missing
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input linkRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive("id", input.ID)
	validator.Positive(FieldGenreID, input.GenreID)
	validator.Positive(FieldMovieID, input.MovieID)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	link, err := handler.linkService.Update(request.Context(), input.ID, input.GenreID, input.MovieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genre Movie updated!", link)
}

/*
DELETE /api/v1/genreMovie/{id}.

Response:
  - 200: true: Link deleted
  - 400: Invalid params
  - 404: ErrNotFound: No such link
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	linkID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.linkService.Delete(request.Context(), linkID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Genre Movie deleted!", true)
}
