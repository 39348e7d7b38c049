// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genremovie

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/platform/database/schema"
	"github.com/cinelog/cinelog/internal/platform/dberr"
)

// PostgresRepository implements Repository backed by catalog.genremovie.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Link, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1`,
		schema.RefGenreMovie.ID, schema.RefGenreMovie.GenreID, schema.RefGenreMovie.MovieID,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.ID,
	)
	link := &Link{}

	err := repository.db.QueryRow(context, query, id).Scan(&link.ID, &link.GenreID, &link.MovieID)
	if err != nil {
		return nil, dberr.Wrap(err, "find_genre_movie")
	}

	return link, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]Link, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefGenreMovie.ID, schema.RefGenreMovie.GenreID, schema.RefGenreMovie.MovieID,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.ID,
	)

	return repository.queryLinks(context, query)
}

func (repository *PostgresRepository) ListByMovie(context context.Context, movieID int64) ([]Link, error) {
	query := fmt.Sprintf(`SELECT %s, %s, %s FROM %s WHERE %s = $1 ORDER BY %s ASC`,
		schema.RefGenreMovie.ID, schema.RefGenreMovie.GenreID, schema.RefGenreMovie.MovieID,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.MovieID, schema.RefGenreMovie.ID,
	)

	return repository.queryLinks(context, query, movieID)
}

func (repository *PostgresRepository) queryLinks(context context.Context, query string, args ...any) ([]Link, error) {
	rows, err := repository.db.Query(context, query, args...)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genre_movies")
	}
	defer rows.Close()

	links := make([]Link, 0)
	for rows.Next() {
		var link Link
		if err := rows.Scan(&link.ID, &link.GenreID, &link.MovieID); err != nil {
			return nil, dberr.Wrap(err, "scan_genre_movie")
		}
		links = append(links, link)
	}

	return links, dberr.Wrap(rows.Err(), "list_genre_movies_rows")
}

func (repository *PostgresRepository) Create(context context.Context, link *Link) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s, %s) VALUES ($1, $2) RETURNING %s`,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.GenreID, schema.RefGenreMovie.MovieID,
		schema.RefGenreMovie.ID,
	)

	err := repository.db.QueryRow(context, query, link.GenreID, link.MovieID).Scan(&link.ID)
	return dberr.Wrap(err, "create_genre_movie")
}

func (repository *PostgresRepository) Update(context context.Context, link *Link) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2, %s = $3 WHERE %s = $1`,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.GenreID, schema.RefGenreMovie.MovieID,
		schema.RefGenreMovie.ID,
	)

	cmd, err := repository.db.Exec(context, query, link.ID, link.GenreID, link.MovieID)
	if err != nil {
		return dberr.Wrap(err, "update_genre_movie")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefGenreMovie.Table, schema.RefGenreMovie.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre_movie")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
