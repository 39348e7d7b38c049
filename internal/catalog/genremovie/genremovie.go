// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

/*
Package genremovie manages the links between movies and their secondary genres.

A movie's primary genre lives on the movie row itself; every additional
genre is a Link in this package's junction table. The movie package
rewrites these links wholesale when a movie is created or updated, while
the endpoints here allow individual link management.
*/
package genremovie

// Link associates a movie with one secondary genre.
type Link struct {
	ID      int64 `json:"id"`
	GenreID int64 `json:"genreId"`
	MovieID int64 `json:"movieId"`
}

// # Field Identifiers

const (
	FieldGenreID = "genreId"
	FieldMovieID = "movieId"
)
