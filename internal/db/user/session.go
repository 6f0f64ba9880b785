package user

import (
	"context"
	"errors"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/db"

	"github.com/jackc/pgx/v4"
)

type PgxSessionRepository struct {
	db db.DBTX
}

func NewPgxSessionRepository(db db.DBTX) *PgxSessionRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxSessionRepository{db: db}
}

func (r *PgxSessionRepository) Create(ctx context.Context, input user.CreateSessionInput) error {
	_, err := r.db.Exec(
		ctx,
		`INSERT INTO session (token, account_id, created_at) VALUES ($1, $2, $3)`,
		string(input.Token),
		int64(input.UserID),
		input.CreatedAt,
	)
	return err
}

func (r *PgxSessionRepository) GetUserByToken(ctx context.Context, token user.SessionToken) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT a.id, a.email, a.password_hash, a.first_name, a.last_name, a.role,
		        a.created_at, a.updated_at, a.activated_at
		 FROM account a
		 JOIN session s ON s.account_id = a.id
		 WHERE s.token = $1`,
		string(token),
	)
	dbu, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbu), nil
}

func (r *PgxSessionRepository) Delete(ctx context.Context, token user.SessionToken) (userID user.ID, err error) {
	row := r.db.QueryRow(
		ctx,
		`DELETE FROM session WHERE token = $1 RETURNING account_id`,
		string(token),
	)
	var rawUserID int64
	err = row.Scan(&rawUserID)
	if errors.Is(err, pgx.ErrNoRows) {
		return userID, user.ErrSessionDoesNotExist
	}
	if err != nil {
		return userID, err
	}
	return user.ID(rawUserID), nil
}
