// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package movie

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/catalog/genre"
	"github.com/cinelog/cinelog/internal/platform/database/schema"
	"github.com/cinelog/cinelog/internal/platform/dberr"
)

// PostgresRepository implements Repository backed by catalog.movie and
// its catalog.genremovie junction.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// movieColumns renders the projection shared by every movie read.
func movieColumns(alias string) string {
	columns := schema.RefMovie.Columns()
	prefixed := make([]string, len(columns))
	for index, column := range columns {
		prefixed[index] = alias + column
	}
	return strings.Join(prefixed, ", ")
}

func scanMovie(row pgx.Row, m *Movie) error {
	return row.Scan(
		&m.ID, &m.Name, &m.Director, &m.ReleaseYear, &m.GenreID,
		&m.Duration, &m.Production, &m.Classification, &m.Poster,
	)
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1`,
		movieColumns(""), schema.RefMovie.Table, schema.RefMovie.ID,
	)
	m := &Movie{}

	if err := scanMovie(repository.db.QueryRow(context, query, id), m); err != nil {
		return nil, dberr.Wrap(err, "find_movie")
	}

	return m, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s ORDER BY %s ASC`,
		movieColumns(""), schema.RefMovie.Table, schema.RefMovie.Name,
	)

	return repository.queryMovies(context, query)
}

func (repository *PostgresRepository) ListByPrimaryGenre(context context.Context, genreID int64) ([]Movie, error) {
	query := fmt.Sprintf(`SELECT %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		movieColumns(""), schema.RefMovie.Table, schema.RefMovie.GenreID, schema.RefMovie.Name,
	)

	return repository.queryMovies(context, query, genreID)
}

func (repository *PostgresRepository) ListBySecondaryGenre(context context.Context, genreID int64) ([]Movie, error) {
	query := fmt.Sprintf(`
		SELECT %s
		FROM %s m
		JOIN %s gm ON gm.%s = m.%s
		WHERE gm.%s = $1
		ORDER BY m.%s ASC
	`,
		movieColumns("m."),
		schema.RefMovie.Table,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.MovieID, schema.RefMovie.ID,
		schema.RefGenreMovie.GenreID,
		schema.RefMovie.Name,
	)

	return repository.queryMovies(context, query, genreID)
}

func (repository *PostgresRepository) queryMovies(context context.Context, query string, args ...any) ([]Movie, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_movies")
	}
	defer rows.Close()

	movies := make([]Movie, 0)
	for rows.Next() {
		var m Movie
		if err := scanMovie(rows, &m); err != nil {
			return nil, dberr.Wrap(err, "scan_movie")
		}
		movies = append(movies, m)
	}

	return movies, dberr.Wrap(rows.Err(), "list_movies_rows")
}

/*
ListGenres assembles a movie's full genre list.

Description: The primary genre comes from the movie row itself; secondary
genres follow from the junction table in link insertion order. A genre
linked both ways appears once, in the primary position.

Parameters:
  - context: context.Context
  - movieID: int64

Returns:
  - []genre.Genre: Primary genre first, then secondary genres
  - error: NotFound (unknown movie) or storage failures
*/
func (repository *PostgresRepository) ListGenres(context context.Context, movieID int64) ([]genre.Genre, error) {
	primaryQuery := fmt.Sprintf(`
		SELECT g.%s, g.%s
		FROM %s g
		JOIN %s m ON m.%s = g.%s
		WHERE m.%s = $1
	`,
		schema.RefGenre.ID, schema.RefGenre.Description,
		schema.RefGenre.Table,
		schema.RefMovie.Table, schema.RefMovie.GenreID, schema.RefGenre.ID,
		schema.RefMovie.ID,
	)

	var primary genre.Genre
	err := repository.db.QueryRow(context, primaryQuery, movieID).Scan(&primary.ID, &primary.Description)
	if err != nil {
		return nil, dberr.Wrap(err, "find_movie_primary_genre")
	}

	secondaryQuery := fmt.Sprintf(`
		SELECT g.%s, g.%s
		FROM %s g
		JOIN %s gm ON gm.%s = g.%s
		WHERE gm.%s = $1
		ORDER BY gm.%s ASC
	`,
		schema.RefGenre.ID, schema.RefGenre.Description,
		schema.RefGenre.Table,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.GenreID, schema.RefGenre.ID,
		schema.RefGenreMovie.MovieID,
		schema.RefGenreMovie.ID,
	)

	rows, err := repository.db.Query(context, secondaryQuery, movieID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_movie_genres")
	}
	defer rows.Close()

	genres := []genre.Genre{primary}
	for rows.Next() {
		var g genre.Genre
		if err := rows.Scan(&g.ID, &g.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_movie_genre")
		}
		if g.ID == primary.ID {
			continue
		}
		genres = append(genres, g)
	}

	return genres, dberr.Wrap(rows.Err(), "list_movie_genres_rows")
}

func (repository *PostgresRepository) Create(context context.Context, movie *Movie, additionalGenres []int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "create_movie_begin")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING %s
	`,
		schema.RefMovie.Table,
		schema.RefMovie.Name, schema.RefMovie.Director, schema.RefMovie.ReleaseYear,
		schema.RefMovie.GenreID, schema.RefMovie.Duration, schema.RefMovie.Production,
		schema.RefMovie.Classification, schema.RefMovie.Poster,
		schema.RefMovie.ID,
	)

	err = transaction.QueryRow(context, query,
		movie.Name, movie.Director, movie.ReleaseYear, movie.GenreID,
		movie.Duration, movie.Production, movie.Classification, movie.Poster,
	).Scan(&movie.ID)
	if err != nil {
		return dberr.Wrap(err, "create_movie")
	}

	if err := repository.syncGenreLinks(context, transaction, movie.ID, additionalGenres); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "create_movie_commit")
}

func (repository *PostgresRepository) Update(context context.Context, movie *Movie, additionalGenres []int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "update_movie_begin")
	}
	defer transaction.Rollback(context)

	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = $9
		WHERE %s = $1
	`,
		schema.RefMovie.Table,
		schema.RefMovie.Name, schema.RefMovie.Director, schema.RefMovie.ReleaseYear,
		schema.RefMovie.GenreID, schema.RefMovie.Duration, schema.RefMovie.Production,
		schema.RefMovie.Classification, schema.RefMovie.Poster,
		schema.RefMovie.ID,
	)

	cmd, err := transaction.Exec(context, query,
		movie.ID, movie.Name, movie.Director, movie.ReleaseYear, movie.GenreID,
		movie.Duration, movie.Production, movie.Classification, movie.Poster,
	)
	if err != nil {
		return dberr.Wrap(err, "update_movie")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	if err := repository.syncGenreLinks(context, transaction, movie.ID, additionalGenres); err != nil {
		return err
	}

	return dberr.Wrap(transaction.Commit(context), "update_movie_commit")
}

/*
syncGenreLinks replaces the secondary-genre links of a movie.

Description: Clears the junction rows of the movie first, then queues the
new links through the native `pgx.Batch` pipeline inside the caller's
transaction, bounding the rewrite to a single network round trip.

Parameters:
  - context: context.Context
  - transaction: pgx.Tx (The active transaction boundary)
  - movieID: int64
  - genreIDs: []int64 (The replacement set of secondary genres)

Returns:
  - error: Clear or batch insert failures
*/
func (repository *PostgresRepository) syncGenreLinks(context context.Context, transaction pgx.Tx, movieID int64, genreIDs []int64) error {

	// Clear previous links
	deleteQuery := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.MovieID,
	)
	if _, err := transaction.Exec(context, deleteQuery, movieID); err != nil {
		return dberr.Wrap(err, "clear_movie_genre_links")
	}

	if len(genreIDs) == 0 {
		return nil
	}

	// Queue the replacement links
	insertQuery := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2)`,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.MovieID, schema.RefGenreMovie.GenreID,
	)
	batch := &pgx.Batch{}
	for _, genreID := range genreIDs {
		batch.Queue(insertQuery, movieID, genreID)
	}

	response := transaction.SendBatch(context, batch)
	if err := response.Close(); err != nil {
		return dberr.Wrap(err, "insert_movie_genre_links")
	}

	return nil
}

/*
DeleteCascade removes a movie and everything hanging off it.

Description: Reviews go first, then the genre links, then the movie row,
all inside one transaction. An unknown movie rolls the whole thing back
with nothing deleted.

Parameters:
  - context: context.Context
  - id: int64

Returns:
  - error: NotFound or storage failures
*/
func (repository *PostgresRepository) DeleteCascade(context context.Context, id int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "delete_movie_begin")
	}
	defer transaction.Rollback(context)

	deleteReviews := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefReview.Table, schema.RefReview.MovieID,
	)
	if _, err := transaction.Exec(context, deleteReviews, id); err != nil {
		return dberr.Wrap(err, "delete_movie_reviews")
	}

	deleteLinks := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.MovieID,
	)
	if _, err := transaction.Exec(context, deleteLinks, id); err != nil {
		return dberr.Wrap(err, "delete_movie_genre_links")
	}

	deleteMovie := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefMovie.Table, schema.RefMovie.ID,
	)
	cmd, err := transaction.Exec(context, deleteMovie, id)
	if err != nil {
		return dberr.Wrap(err, "delete_movie")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(transaction.Commit(context), "delete_movie_commit")
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.RefMovie.Table, schema.RefMovie.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_movie_exists")
	}

	return exists, nil
}
