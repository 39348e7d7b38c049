// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

/*
Package genre manages the catalog's genre taxonomy.

Genres are the classification backbone of the catalog: every movie names
one primary genre and may link any number of secondary genres through the
genremovie package.
*/
package genre

// Genre classifies movies in the catalog.
type Genre struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
}

// # Field Identifiers

const (
	FieldDescription = "description"
)

// # Validation Bounds

const (
	DescriptionMinLen = 3
	DescriptionMaxLen = 50
)
