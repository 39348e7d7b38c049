package schema

// RefGenreMovieTable represents the 'catalog.genremovie' junction table
type RefGenreMovieTable struct {
	Table   string
	ID      string
	GenreID string
	MovieID string
}

// RefGenreMovie is the schema definition for catalog.genremovie
var RefGenreMovie = RefGenreMovieTable{
	Table:   "catalog.genremovie",
	ID:      "id",
	GenreID: "genreid",
	MovieID: "movieid",
}

func (t RefGenreMovieTable) Columns() []string {
	return []string{t.ID, t.GenreID, t.MovieID}
}
