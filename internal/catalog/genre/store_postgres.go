// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package genre

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/platform/database/schema"
	"github.com/cinelog/cinelog/internal/platform/dberr"
)

// PostgresRepository implements Repository backed by catalog.genre.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s WHERE %s = $1`,
		schema.RefGenre.ID, schema.RefGenre.Description,
		schema.RefGenre.Table, schema.RefGenre.ID,
	)
	g := &Genre{}

	err := repository.db.QueryRow(context, query, id).Scan(&g.ID, &g.Description)
	if err != nil {
		return nil, dberr.Wrap(err, "find_genre")
	}

	return g, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]Genre, error) {
	query := fmt.Sprintf(`SELECT %s, %s FROM %s ORDER BY %s ASC`,
		schema.RefGenre.ID, schema.RefGenre.Description,
		schema.RefGenre.Table, schema.RefGenre.Description,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_genres")
	}
	defer rows.Close()

	genres := make([]Genre, 0)
	for rows.Next() {
		var g Genre
		if err := rows.Scan(&g.ID, &g.Description); err != nil {
			return nil, dberr.Wrap(err, "scan_genre")
		}
		genres = append(genres, g)
	}

	return genres, dberr.Wrap(rows.Err(), "list_genres_rows")
}

func (repository *PostgresRepository) Create(context context.Context, genre *Genre) error {
	query := fmt.Sprintf(`INSERT INTO %s (%s) VALUES ($1) RETURNING %s`,
		schema.RefGenre.Table, schema.RefGenre.Description, schema.RefGenre.ID,
	)

	err := repository.db.QueryRow(context, query, genre.Description).Scan(&genre.ID)
	return dberr.Wrap(err, "create_genre")
}

func (repository *PostgresRepository) Update(context context.Context, genre *Genre) error {
	query := fmt.Sprintf(`UPDATE %s SET %s = $2 WHERE %s = $1`,
		schema.RefGenre.Table, schema.RefGenre.Description, schema.RefGenre.ID,
	)

	cmd, err := repository.db.Exec(context, query, genre.ID, genre.Description)
	if err != nil {
		return dberr.Wrap(err, "update_genre")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefGenre.Table, schema.RefGenre.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_genre")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.RefGenre.Table, schema.RefGenre.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_genre_exists")
	}

	return exists, nil
}
