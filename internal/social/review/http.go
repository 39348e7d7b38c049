// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package review

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/cinelog/cinelog/internal/platform/middleware"
	requestutil "github.com/cinelog/cinelog/internal/platform/request"
	"github.com/cinelog/cinelog/internal/platform/respond"
	"github.com/cinelog/cinelog/internal/platform/validate"
)

// Handler implements the HTTP layer for reviews.
type Handler struct {
	reviewService *Service
}

// NewHandler constructs a new review [Handler].
func NewHandler(service *Service) *Handler {
	return &Handler{reviewService: service}
}

// Register mounts the review endpoints on the given router.
//
// # Security
//
// Every review route requires an authenticated principal.
func (handler *Handler) Register(router chi.Router) {
	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Post("/review", handler.create)
		r.Get("/review/{id}", handler.get)
		r.Get("/reviews", handler.list)
		r.Put("/review", handler.update)
		r.Delete("/review/{id}", handler.delete)

		r.Get("/reviews/movie/{movieId}", handler.listByMovie)
		r.Get("/reviews/movie/{movieId}/user/{userId}", handler.getByMovieAndUser)
	})
}

// # Request Payloads

type createReviewRequest struct {
	MovieID int64   `json:"movieId"`
	Rating  float64 `json:"rating"`
	Comment *string `json:"comment"`
}

type updateReviewRequest struct {
	ID      int64   `json:"id"`
	Rating  float64 `json:"rating"`
	Comment *string `json:"comment"`
}

// validateRating applies the half-step rating constraints.
func validateRating(validator *validate.Validator, rating float64) {
	validator.FloatRange(FieldRating, rating, RatingMin, RatingMax).
		HalfStep(FieldRating, rating)
}

/*
POST /api/v1/review.

Description: Creates a review authored by the calling principal. The
rating must fall between 0 and 5 in steps of 0.5.

Request:
  - Body: createReviewRequest

Response:
  - 201: int64: ID of the created review
  - 400: Validation failure
  - 404: ErrNotFound: Movie does not exist
*/
func (handler *Handler) create(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input createReviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive(FieldMovieID, input.MovieID)
	validateRating(validator, input.Rating)
	if input.Comment != nil {
		validator.MaxLen(FieldComment, *input.Comment, CommentMaxLen)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.Create(request.Context(), claims, CreateInput{
		MovieID: input.MovieID,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, "Review created!", review.ID)
}

/*
GET /api/v1/review/{id}.

Response:
  - 200: Review: The review
  - 400: Invalid params
  - 404: ErrNotFound: No such review
*/
func (handler *Handler) get(writer http.ResponseWriter, request *http.Request) {
	reviewID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.Get(request.Context(), reviewID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Review found!", review)
}

/*
GET /api/v1/reviews.

Response:
  - 200: []Review: All reviews
*/
func (handler *Handler) list(writer http.ResponseWriter, request *http.Request) {
	reviews, err := handler.reviewService.List(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Reviews found!", reviews)
}

/*
PUT /api/v1/review.

Description: The target ID travels in the body. Members may update their
own reviews only; administrators may update any.

Request:
  - Body: updateReviewRequest

Response:
  - 200: Review: The updated review
  - 400: Validation failure
  - 403: ErrForbidden: Review belongs to someone else
  - 404: ErrNotFound: No such review
*/
func (handler *Handler) update(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input updateReviewRequest
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, validate.ErrInvalidJSON)
		return
	}

	validator := &validate.Validator{}
	validator.Positive("id", input.ID)
	validateRating(validator, input.Rating)
	if input.Comment != nil {
		validator.MaxLen(FieldComment, *input.Comment, CommentMaxLen)
	}
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.Update(request.Context(), claims, UpdateInput{
		ID:      input.ID,
		Rating:  input.Rating,
		Comment: input.Comment,
	})
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Review updated!", review)
}

/*
DELETE /api/v1/review/{id}.

Response:
  - 200: true: Review deleted
  - 400: Invalid params
  - 403: ErrForbidden: Review belongs to someone else
  - 404: ErrNotFound: No such review
*/
func (handler *Handler) delete(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviewID, err := requestutil.IntParam(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.reviewService.Delete(request.Context(), claims, reviewID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Review deleted!", true)
}

/*
GET /api/v1/reviews/movie/{movieId}.

Description: Lists a movie's reviews with reviewer identity. A movie
without reviews yields an empty array.

Response:
  - 200: []RatedReview: The movie's reviews
  - 400: Invalid params
  - 404: ErrNotFound: No such movie
*/
func (handler *Handler) listByMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, "movieId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	reviews, err := handler.reviewService.ListByMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Reviews found!", reviews)
}

/*
GET /api/v1/reviews/movie/{movieId}/user/{userId}.

Response:
  - 200: RatedReview: The member's review of the movie
  - 400: Invalid params
  - 404: ErrNotFound: No review by that member for that movie
*/
func (handler *Handler) getByMovieAndUser(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.IntParam(request, "movieId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.IntParam(request, "userId")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	review, err := handler.reviewService.GetByMovieAndUser(request.Context(), movieID, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, "Review found!", review)
}
