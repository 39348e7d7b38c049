// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package movie

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/cinelog/cinelog/internal/platform/request"
	"github.com/cinelog/cinelog/internal/platform/respond"
	"github.com/cinelog/cinelog/internal/platform/validate"
)

// Handler implements the HTTP layer for the movie catalog.
type Handler struct {
	movieService *Service
}

// NewHandler constructs a new movie [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{movieService: service}
}

// Register mounts the movie endpoints on the given router.
func (handler *Handler) Register(router chi.Router) {
	router.Post("/movie", handler.create)
	router.Get("/movie/{id}", handler.get)
	router.Get("/movies", handler.list)
	router.Put("/movie", handler.update)
	router.Delete("/movie/{id}", handler.delete)

	router.Get("/movies/genre/{genreId}", handler.listByGenre)
}

// # Request Payloads

type movieRequest struct {
	ID               int64   `json:"id"`
	Name             string  `json:"name"`
	Director         string  `json:"director"`
	ReleaseYear      string  `json:"releaseYear"`
	GenreID          int64   `json:"genreId"`
	Duration         string  `json:"duration"`
	Production       *string `json:"production"`
	Classification   int     `json:"classification"`
	Poster           *string `json:"poster"`
	AdditionalGenres []int64 `json:"additionalGenres"`
}

// validateMovie applies the shared write constraints and coerces the
// release date.
func validateMovie(validator *validate.Validator, input movieRequest) (time.Time, bool) {
	validator.Required(FieldName, input.Name).
		Required(FieldDirector, input.Director).
		Required(FieldReleaseYear, input.ReleaseYear).
		Positive(FieldGenreID, input.GenreID).
		Required(FieldDuration, input.Duration).
		Custom(FieldClassification, input.Classification < 0, "Must be zero or positive")

	releaseYear, parsed := ParseReleaseYear(input.ReleaseYear)
	if input.ReleaseYear != "" {
		validator.Custom(FieldReleaseYear, !parsed, "Must be a valid date (YYYY-MM-DD)")
	}

	for _, genreID := range input.AdditionalGenres {
		if genreID <= 0 {
			validator.Custom(FieldAdditionalGenres, true, "Must contain positive genre IDs")
			break
		}
	}

	return releaseYear, parsed
}

/*
POST /api/v1/movie.

Description: Creates a movie and its secondary-genre links in one
transaction. Every referenced genre must exist.

Request:
  - Body: movieRequest

Response:
  - 201: int64: ID of the created movie
  - 400: Validation failure
  - 404: ErrNotFound: Referenced genre missing
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	var input movieRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	releaseYear, _ := validateMovie(validator, input)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	created, err := handler.movieService.Create(request.Context(), &Movie{
		Name:           input.Name,
		Director:       input.Director,
		ReleaseYear:    releaseYear,
		GenreID:        input.GenreID,
		Duration:       input.Duration,
		Production:     input.Production,
		Classification: input.Classification,
		Poster:         input.Poster,
	}, input.AdditionalGenres)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Movie created!", created.ID)
}

/*
GET /api/v1/movie/{id}.

Description: Returns the aggregated movie: genres with the primary one
first, reviews with reviewer identity, and the average rating.

Response:
  - 200: MovieDetails: The aggregated movie
  - 400: Invalid params
  - 404: ErrNotFound: No such movie
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	details, err := handler.movieService.Get(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Movie found!", details)
}

/*
GET /api/v1/movies.

Description: Lists every movie with its average rating. An empty catalog
yields an empty array.

Response:
  - 200: []MovieSummary: All movies
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.movieService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Movies found!", movies)
}

/*
PUT /api/v1/movie.

Description: The target ID travels in the body. The additionalGenres set
sent with the request wholly replaces the stored links, inside the same
transaction as the row update.

Request:
  - Body: movieRequest

Response:
  - 200: Movie: The updated movie
  - 400: Validation failure
  - 404: ErrNotFound: Movie or referenced genre missing
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	var input movieRequest

	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive("id", input.ID)
	releaseYear, _ := validateMovie(validator, input)
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	updated, err := handler.movieService.Update(request.Context(), &Movie{
		ID:             input.ID,
		Name:           input.Name,
		Director:       input.Director,
		ReleaseYear:    releaseYear,
		GenreID:        input.GenreID,
		Duration:       input.Duration,
		Production:     input.Production,
		Classification: input.Classification,
		Poster:         input.Poster,
	}, input.AdditionalGenres)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Movie updated!", updated)
}

/*
DELETE /api/v1/movie/{id}.

Description: Removes the movie, its reviews, and its genre links in one
transaction.

Response:
  - 200: true: Movie and dependents deleted
  - 400: Invalid params
  - 404: ErrNotFound: No such movie
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.movieService.Delete(request.Context(), movieID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Movie deleted!", true)
}

/*
GET /api/v1/movies/genre/{genreId}.

Description: Returns the union of movies naming the genre as primary and
movies linked to it as secondary, deduplicated, with average ratings.

Response:
  - 200: []MovieSummary: Matching movies
  - 400: Invalid params
  - 404: ErrNotFound: No such genre
*/
func (handler *Handler) listByGenre(writer http.ResponseWriter, request *http.Request) {
	genreID, err := requestutil.IntParam(request, "genreId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	movies, err := handler.movieService.ListByGenre(request.Context(), genreID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Movies found by genre!", movies)
}
