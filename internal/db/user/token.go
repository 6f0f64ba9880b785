package user

import (
	"context"
	"errors"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/db"
	"time"

	"github.com/jackc/pgx/v4"
)

const tokenColumns = `value, account_id, purpose, expires_at, created_at`

type PgxTokenRepository struct {
	db db.DBTX
}

func NewPgxTokenRepository(db db.DBTX) *PgxTokenRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxTokenRepository{db: db}
}

func (r *PgxTokenRepository) Create(ctx context.Context, input user.CreateTokenInput) (t user.Token, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account_token (value, account_id, purpose, expires_at, created_at)
		 VALUES ($1, $2, $3, $4, $5)
		 RETURNING `+tokenColumns,
		string(input.Value),
		int64(input.UserID),
		string(input.Purpose),
		input.ExpiresAt,
		input.CreatedAt,
	)
	return scanToken(row)
}

func (r *PgxTokenRepository) GetValid(
	ctx context.Context,
	value user.TokenValue,
	purpose user.TokenPurpose,
	now time.Time,
) (t user.Token, err error) {
	row := r.db.QueryRow(
		ctx,
		`SELECT `+tokenColumns+`
		 FROM account_token
		 WHERE value = $1 AND purpose = $2 AND expires_at > $3`,
		string(value),
		string(purpose),
		now,
	)
	t, err = scanToken(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return t, user.ErrInvalidOrExpiredToken
	}
	return t, err
}

func (r *PgxTokenRepository) Delete(ctx context.Context, value user.TokenValue) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM account_token WHERE value = $1`, string(value))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrInvalidOrExpiredToken
	}
	return nil
}

func (r *PgxTokenRepository) DeleteByUserAndPurpose(
	ctx context.Context,
	userID user.ID,
	purpose user.TokenPurpose,
) error {
	_, err := r.db.Exec(
		ctx,
		`DELETE FROM account_token WHERE account_id = $1 AND purpose = $2`,
		int64(userID),
		string(purpose),
	)
	return err
}

func scanToken(row pgx.Row) (t user.Token, err error) {
	var (
		value     string
		accountID int64
		purpose   string
		expiresAt time.Time
		createdAt time.Time
	)
	err = row.Scan(&value, &accountID, &purpose, &expiresAt, &createdAt)
	if err != nil {
		return t, err
	}
	return user.Token{
		Value:     user.TokenValue(value),
		UserID:    user.ID(accountID),
		Purpose:   user.TokenPurpose(purpose),
		ExpiresAt: expiresAt,
		CreatedAt: createdAt,
	}, nil
}
