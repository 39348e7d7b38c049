// Package schema centralizes physical table and column names so that
// dynamically assembled queries (junction syncs, cascades) never embed
// raw string literals.
package schema

// RefGenreTable represents the 'catalog.genre' table
type RefGenreTable struct {
	Table       string
	ID          string
	Description string
}

// RefGenre is the schema definition for catalog.genre
var RefGenre = RefGenreTable{
	Table:       "catalog.genre",
	ID:          "id",
	Description: "description",
}

func (t RefGenreTable) Columns() []string {
	return []string{t.ID, t.Description}
}
