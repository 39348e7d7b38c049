// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package review

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/platform/database/schema"
	"github.com/cinelog/cinelog/internal/platform/dberr"
)

// PostgresRepository implements Repository backed by social.review.
type PostgresRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) FindByID(context context.Context, id int64) (*Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefReview.ID, schema.RefReview.UserID, schema.RefReview.MovieID,
		schema.RefReview.Rating, schema.RefReview.Comment,
		schema.RefReview.Table, schema.RefReview.ID,
	)
	r := &Review{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&r.ID, &r.UserID, &r.MovieID, &r.Rating, &r.Comment,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_review")
	}

	return r, nil
}

func (repository *PostgresRepository) List(context context.Context) ([]Review, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.RefReview.ID, schema.RefReview.UserID, schema.RefReview.MovieID,
		schema.RefReview.Rating, schema.RefReview.Comment,
		schema.RefReview.Table, schema.RefReview.ID,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_reviews")
	}
	defer rows.Close()

	reviews := make([]Review, 0)
	for rows.Next() {
		var r Review
		if err := rows.Scan(&r.ID, &r.UserID, &r.MovieID, &r.Rating, &r.Comment); err != nil {
			return nil, dberr.Wrap(err, "scan_review")
		}
		reviews = append(reviews, r)
	}

	return reviews, dberr.Wrap(rows.Err(), "list_reviews_rows")
}

// ratedReviewQuery joins reviews with their author's public identity.
func ratedReviewQuery(condition string) string {
	return fmt.Sprintf(`
		SELECT r.%s, r.%s, r.%s, r.%s, r.%s, a.%s, a.%s, a.%s
		FROM %s r
		JOIN %s a ON a.%s = r.%s
		WHERE %s
		ORDER BY r.%s ASC
	`,
		schema.RefReview.ID, schema.RefReview.UserID, schema.RefReview.MovieID,
		schema.RefReview.Rating, schema.RefReview.Comment,
		schema.RefAccount.ID, schema.RefAccount.Name, schema.RefAccount.Nickname,
		schema.RefReview.Table,
		schema.RefAccount.Table, schema.RefAccount.ID, schema.RefReview.UserID,
		condition,
		schema.RefReview.ID,
	)
}

func (repository *PostgresRepository) ListByMovie(context context.Context, movieID int64) ([]RatedReview, error) {
	query := ratedReviewQuery(fmt.Sprintf("r.%s = $1", schema.RefReview.MovieID))

	rows, err := repository.db.Query(context, query, movieID)
	if err != nil {
		return nil, dberr.Wrap(err, "list_movie_reviews")
	}
	defer rows.Close()

	reviews := make([]RatedReview, 0)
	for rows.Next() {
		var r RatedReview
		if err := rows.Scan(
			&r.ID, &r.UserID, &r.MovieID, &r.Rating, &r.Comment,
			&r.User.ID, &r.User.Name, &r.User.Nickname,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_movie_review")
		}
		reviews = append(reviews, r)
	}

	return reviews, dberr.Wrap(rows.Err(), "list_movie_reviews_rows")
}

func (repository *PostgresRepository) FindByMovieAndUser(context context.Context, movieID, userID int64) (*RatedReview, error) {
	query := ratedReviewQuery(fmt.Sprintf(
		"r.%s = $1 AND r.%s = $2",
		schema.RefReview.MovieID, schema.RefReview.UserID,
	))
	r := &RatedReview{}

	err := repository.db.QueryRow(context, query, movieID, userID).Scan(
		&r.ID, &r.UserID, &r.MovieID, &r.Rating, &r.Comment,
		&r.User.ID, &r.User.Name, &r.User.Nickname,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_movie_user_review")
	}

	return r, nil
}

func (repository *PostgresRepository) Create(context context.Context, review *Review) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s)
		VALUES ($1, $2, $3, $4)
		RETURNING %s
	`,
		schema.RefReview.Table,
		schema.RefReview.UserID, schema.RefReview.MovieID, schema.RefReview.Rating, schema.RefReview.Comment,
		schema.RefReview.ID,
	)

	err := repository.db.QueryRow(context, query,
		review.UserID, review.MovieID, review.Rating, review.Comment,
	).Scan(&review.ID)
	return dberr.Wrap(err, "create_review")
}

func (repository *PostgresRepository) Update(context context.Context, review *Review) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3
		WHERE %s = $1
	`,
		schema.RefReview.Table,
		schema.RefReview.Rating, schema.RefReview.Comment,
		schema.RefReview.ID,
	)

	cmd, err := repository.db.Exec(context, query, review.ID, review.Rating, review.Comment)
	if err != nil {
		return dberr.Wrap(err, "update_review")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefReview.Table, schema.RefReview.ID,
	)

	cmd, err := repository.db.Exec(context, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete_review")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return nil
}
