// Copyright (c) 2026 Cinelog. All rights reserved.
// Author: dev@cinelog.app

package auth

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/cinelog/cinelog/internal/platform/database/schema"
	"github.com/cinelog/cinelog/internal/platform/dberr"
)

// # PostgreSQL Implementation

// PostgresUserRepository implements UserRepository backed by users.account.
type PostgresUserRepository struct {
	db *pgxpool.Pool
}

func NewPostgresRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{db: db}
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefAccount.ID, schema.RefAccount.Name, schema.RefAccount.Email, schema.RefAccount.PasswordHash,
		schema.RefAccount.Nickname, schema.RefAccount.BirthDate, schema.RefAccount.Active, schema.RefAccount.Role,
		schema.RefAccount.CreatedAt, schema.RefAccount.UpdatedAt,
		schema.RefAccount.Table, schema.RefAccount.ID,
	)
	u := &User{}

	err := repository.db.QueryRow(context, query, id).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Nickname, &u.BirthDate,
		&u.Active, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_id")
	}

	return u, nil
}

func (repository *PostgresUserRepository) FindByEmail(context context.Context, email string) (*User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		WHERE %s = $1
	`,
		schema.RefAccount.ID, schema.RefAccount.Name, schema.RefAccount.Email, schema.RefAccount.PasswordHash,
		schema.RefAccount.Nickname, schema.RefAccount.BirthDate, schema.RefAccount.Active, schema.RefAccount.Role,
		schema.RefAccount.CreatedAt, schema.RefAccount.UpdatedAt,
		schema.RefAccount.Table, schema.RefAccount.Email,
	)
	u := &User{}

	err := repository.db.QueryRow(context, query, email).Scan(
		&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Nickname, &u.BirthDate,
		&u.Active, &u.Role, &u.CreatedAt, &u.UpdatedAt,
	)
	if err != nil {
		return nil, dberr.Wrap(err, "find_user_by_email")
	}

	return u, nil
}

func (repository *PostgresUserRepository) List(context context.Context) ([]User, error) {
	query := fmt.Sprintf(`
		SELECT %s, %s, %s, %s, %s, %s, %s, %s, %s, %s
		FROM %s
		ORDER BY %s ASC
	`,
		schema.RefAccount.ID, schema.RefAccount.Name, schema.RefAccount.Email, schema.RefAccount.PasswordHash,
		schema.RefAccount.Nickname, schema.RefAccount.BirthDate, schema.RefAccount.Active, schema.RefAccount.Role,
		schema.RefAccount.CreatedAt, schema.RefAccount.UpdatedAt,
		schema.RefAccount.Table, schema.RefAccount.CreatedAt,
	)

	rows, err := repository.db.Query(context, query)
	if err != nil {
		return nil, dberr.Wrap(err, "list_users")
	}
	defer rows.Close()

	users := make([]User, 0)
	for rows.Next() {
		var u User
		if err := rows.Scan(
			&u.ID, &u.Name, &u.Email, &u.PasswordHash, &u.Nickname, &u.BirthDate,
			&u.Active, &u.Role, &u.CreatedAt, &u.UpdatedAt,
		); err != nil {
			return nil, dberr.Wrap(err, "scan_user")
		}
		users = append(users, u)
	}

	return users, dberr.Wrap(rows.Err(), "list_users_rows")
}

func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		INSERT INTO %s (%s, %s, %s, %s, %s, %s, %s)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING %s, %s, %s
	`,
		schema.RefAccount.Table,
		schema.RefAccount.Name, schema.RefAccount.Email, schema.RefAccount.PasswordHash,
		schema.RefAccount.Nickname, schema.RefAccount.BirthDate, schema.RefAccount.Active, schema.RefAccount.Role,
		schema.RefAccount.ID, schema.RefAccount.CreatedAt, schema.RefAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.Name, user.Email, user.PasswordHash, user.Nickname, user.BirthDate, user.Active, user.Role,
	).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	return dberr.Wrap(err, "create_user")
}

func (repository *PostgresUserRepository) Update(context context.Context, user *User) error {
	query := fmt.Sprintf(`
		UPDATE %s
		SET %s = $2, %s = $3, %s = $4, %s = $5, %s = $6, %s = $7, %s = $8, %s = NOW()
		WHERE %s = $1
		RETURNING %s
	`,
		schema.RefAccount.Table,
		schema.RefAccount.Name, schema.RefAccount.Email, schema.RefAccount.PasswordHash,
		schema.RefAccount.Nickname, schema.RefAccount.BirthDate, schema.RefAccount.Active, schema.RefAccount.Role,
		schema.RefAccount.UpdatedAt,
		schema.RefAccount.ID,
		schema.RefAccount.UpdatedAt,
	)

	err := repository.db.QueryRow(context, query,
		user.ID, user.Name, user.Email, user.PasswordHash, user.Nickname, user.BirthDate, user.Active, user.Role,
	).Scan(&user.UpdatedAt)
	return dberr.Wrap(err, "update_user")
}

/*
DeleteWithReviews removes an account together with every review it authored.

Both deletes run in a single transaction so a failure on either side
leaves the database untouched.
*/
func (repository *PostgresUserRepository) DeleteWithReviews(context context.Context, id int64) error {
	transaction, err := repository.db.Begin(context)
	if err != nil {
		return dberr.Wrap(err, "delete_user_begin")
	}
	defer transaction.Rollback(context)

	deleteReviews := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefReview.Table, schema.RefReview.UserID,
	)
	if _, err := transaction.Exec(context, deleteReviews, id); err != nil {
		return dberr.Wrap(err, "delete_user_reviews")
	}

	deleteAccount := fmt.Sprintf(`DELETE FROM %s WHERE %s = $1`,
		schema.RefAccount.Table, schema.RefAccount.ID,
	)
	cmd, err := transaction.Exec(context, deleteAccount, id)
	if err != nil {
		return dberr.Wrap(err, "delete_user")
	}
	if cmd.RowsAffected() == 0 {
		return dberr.ErrNotFound
	}

	return dberr.Wrap(transaction.Commit(context), "delete_user_commit")
}

func (repository *PostgresUserRepository) Exists(context context.Context, id int64) (bool, error) {
	query := fmt.Sprintf(`SELECT EXISTS (SELECT 1 FROM %s WHERE %s = $1)`,
		schema.RefAccount.Table, schema.RefAccount.ID,
	)

	var exists bool
	if err := repository.db.QueryRow(context, query, id).Scan(&exists); err != nil {
		return false, dberr.Wrap(err, "check_user_exists")
	}

	return exists, nil
}
