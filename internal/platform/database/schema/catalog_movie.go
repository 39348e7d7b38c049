package schema

// RefMovieTable represents the 'catalog.movie' table
type RefMovieTable struct {
	Table          string
	ID             string
	Name           string
	Director       string
	ReleaseYear    string
	GenreID        string
	Duration       string
	Production     string
	Classification string
	Poster         string
}

// RefMovie is the schema definition for catalog.movie
var RefMovie = RefMovieTable{
	Table:          "catalog.movie",
	ID:             "id",
	Name:           "name",
	Director:       "director",
	ReleaseYear:    "releaseyear",
	GenreID:        "genreid",
	Duration:       "duration",
	Production:     "production",
	Classification: "classification",
	Poster:         "poster",
}

func (t RefMovieTable) Columns() []string {
	return []string{t.ID, t.Name, t.Director, t.ReleaseYear, t.GenreID, t.Duration, t.Production, t.Classification, t.Poster}
}
