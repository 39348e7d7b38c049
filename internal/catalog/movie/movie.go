// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

/*
Package movie implements the movie catalog, the centerpiece of Cinelog.

A movie names one primary genre directly and any number of secondary
genres through the genremovie junction. Read endpoints aggregate the
genre list, the reviews with reviewer identity, and the average rating.

# Architecture

  - Entities: Movie, MovieSummary, MovieDetails (read models).
  - Writes: creation and update rewrite the secondary-genre links inside
    the same transaction as the movie row.
  - Deletes: cascade over reviews and links in one transaction.
*/
package movie

import (
	"time"

	"github.com/cinelog/cinelog/internal/catalog/genre"
	"github.com/cinelog/cinelog/internal/social/review"
)

// # Domain Entities

// Movie is a catalog entry.
type Movie struct {
	ID             int64     `json:"id"`
	Name           string    `json:"name"`
	Director       string    `json:"director"`
	ReleaseYear    time.Time `json:"releaseYear"`
	GenreID        int64     `json:"genreId"`
	Duration       string    `json:"duration"`
	Production     *string   `json:"production"`
	Classification int       `json:"classification"`
	Poster         *string   `json:"poster"`
}

// MovieSummary is the list view of a movie with its aggregated rating.
type MovieSummary struct {
	Movie
	AverageRating float64 `json:"averageRating"`
}

// MovieDetails is the full read model of a single movie: its genres with
// the primary one first, its reviews with reviewer identity, and the
// mean rating (0 when unreviewed).
type MovieDetails struct {
	Movie
	Genres        []genre.Genre        `json:"genres"`
	Reviews       []review.RatedReview `json:"reviews"`
	AverageRating float64              `json:"averageRating"`
}

// # Field Identifiers

const (
	FieldName             = "name"
	FieldDirector         = "director"
	FieldReleaseYear      = "releaseYear"
	FieldGenreID          = "genreId"
	FieldDuration         = "duration"
	FieldClassification   = "classification"
	FieldAdditionalGenres = "additionalGenres"
)

// ReleaseYearLayouts are the accepted wire formats for releaseYear.
var ReleaseYearLayouts = []string{"2006-01-02", time.RFC3339, "2006"}

// ParseReleaseYear coerces a string-encoded release date into a time.Time.
func ParseReleaseYear(raw string) (time.Time, bool) {
	for _, layout := range ReleaseYearLayouts {
		if parsed, err := time.Parse(layout, raw); err == nil {
			return parsed, true
		}
	}
	return time.Time{}, false
}
