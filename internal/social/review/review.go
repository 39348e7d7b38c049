// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

/*
Package review implements movie reviews, the social core of Cinelog.

A review ties one member to one movie with a half-step rating and an
optional comment. Ratings feed the averages shown on the movie read
endpoints.

# Architecture

  - Entities: Review, RatedReview (read model with reviewer identity).
  - Security: Every endpoint requires authentication; members operate on
    their own reviews, administrators on any.
*/
package review

import "github.com/cinelog/cinelog/internal/users/auth"

// # Domain Entities

// Review expresses one member's opinion of one movie.
type Review struct {
	ID      int64   `json:"id"`
	UserID  int64   `json:"userId"`
	MovieID int64   `json:"movieId"`
	Rating  float64 `json:"rating"`
	Comment *string `json:"comment"`
}

// RatedReview is the transport view of a review joined with its author.
type RatedReview struct {
	Review
	User auth.Reviewer `json:"user"`
}

// # Field Identifiers

const (
	FieldUserID  = "userId"
	FieldMovieID = "movieId"
	FieldRating  = "rating"
	FieldComment = "comment"
)

// # Validation Bounds

const (
	RatingMin     = 0.0
	RatingMax     = 5.0
	CommentMaxLen = 500
)
