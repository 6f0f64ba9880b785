package user

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/db"
	"strings"
	"time"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgx/v4"
)

const EMAIL_CONSTRAINT_NAME = "account_email_idx"

const userColumns = `id, email, password_hash, first_name, last_name, role, created_at, updated_at, activated_at`

type dbUser struct {
	ID           int64
	Email        string
	PasswordHash string
	FirstName    string
	LastName     string
	Role         string
	CreatedAt    time.Time
	UpdatedAt    sql.NullTime
	ActivatedAt  sql.NullTime
}

type PgxUserRepository struct {
	db db.DBTX
}

func NewPgxRepository(db db.DBTX) *PgxUserRepository {
	if db == nil {
		panic(e.NewNilArgumentError("db"))
	}
	return &PgxUserRepository{db: db}
}

func (r *PgxUserRepository) Create(ctx context.Context, input user.CreateUserInput) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`INSERT INTO account (email, password_hash, first_name, last_name, role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING `+userColumns,
		string(input.Email),
		string(input.PasswordHash),
		input.FirstName,
		input.LastName,
		string(input.Role),
		input.CreatedAt,
	)
	dbu, err := scanUser(row)
	if isEmailConstraintViolation(err) {
		return u, user.ErrEmailAlreadyExists
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbu), nil
}

func (r *PgxUserRepository) GetByID(ctx context.Context, id user.ID) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM account WHERE id = $1`, int64(id))
	dbu, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbu), nil
}

func (r *PgxUserRepository) GetByEmail(ctx context.Context, email c.Email) (u user.User, err error) {
	row := r.db.QueryRow(ctx, `SELECT `+userColumns+` FROM account WHERE email = $1`, string(email))
	dbu, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbu), nil
}

func (r *PgxUserRepository) List(ctx context.Context) ([]user.User, error) {
	rows, err := r.db.Query(ctx, `SELECT `+userColumns+` FROM account ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := make([]user.User, 0)
	for rows.Next() {
		dbu, err := scanUser(rows)
		if err != nil {
			return nil, err
		}
		users = append(users, decodeUser(dbu))
	}
	return users, rows.Err()
}

func (r *PgxUserRepository) Activate(ctx context.Context, id user.ID, at time.Time) (u user.User, err error) {
	row := r.db.QueryRow(
		ctx,
		`UPDATE account SET activated_at = $2, updated_at = $2 WHERE id = $1 RETURNING `+userColumns,
		int64(id),
		at,
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

func (r *PgxUserRepository) SetPassword(
	ctx context.Context,
	id user.ID,
	password user.PasswordHash,
	at time.Time,
) error {
	tag, err := r.db.Exec(
		ctx,
		`UPDATE account SET password_hash = $2, updated_at = $3 WHERE id = $1`,
		int64(id),
		string(password),
		at,
	)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func (r *PgxUserRepository) Update(ctx context.Context, input user.UpdateUserInput) (u user.User, err error) {
	assignments := make([]string, 0, 6)
	args := make([]interface{}, 0, 7)
	args = append(args, int64(input.ID))
	addAssignment := func(column string, value interface{}) {
		args = append(args, value)
		assignments = append(assignments, fmt.Sprintf("%s = $%d", column, len(args)))
	}

	if input.DoEmailUpdate {
		addAssignment("email", string(input.Email))
	}
	if input.DoFirstNameUpdate {
		addAssignment("first_name", input.FirstName)
	}
	if input.DoLastNameUpdate {
		addAssignment("last_name", input.LastName)
	}
	if input.DoRoleUpdate {
		addAssignment("role", string(input.Role))
	}
	if input.DoActiveUpdate {
		activatedAt := sql.NullTime{Time: input.UpdatedAt, Valid: input.IsActive}
		addAssignment("activated_at", activatedAt)
	}
	addAssignment("updated_at", input.UpdatedAt)

	query := fmt.Sprintf(
		`UPDATE account SET %s WHERE id = $1 RETURNING %s`,
		strings.Join(assignments, ", "),
		userColumns,
	)
	row := r.db.QueryRow(ctx, query, args...)
	dbu, err := scanUser(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return u, user.ErrUserDoesNotExist
	}
	if isEmailConstraintViolation(err) {
		return u, user.ErrEmailAlreadyExists
	}
	if err != nil {
		return u, err
	}
	return decodeUser(dbu), nil
}

func (r *PgxUserRepository) Delete(ctx context.Context, id user.ID) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM account WHERE id = $1`, int64(id))
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return user.ErrUserDoesNotExist
	}
	return nil
}

func isEmailConstraintViolation(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == db.PG_UNIQUE_CONSTRAINT_ERR_CODE && pgErr.ConstraintName == EMAIL_CONSTRAINT_NAME
}

func scanUser(row pgx.Row) (u dbUser, err error) {
	err = row.Scan(
		&u.ID,
		&u.Email,
		&u.PasswordHash,
		&u.FirstName,
		&u.LastName,
		&u.Role,
		&u.CreatedAt,
		&u.UpdatedAt,
		&u.ActivatedAt,
	)
	return u, err
}

func decodeUser(u dbUser) user.User {
	return user.User{
		ID:           user.ID(u.ID),
		Email:        c.Email(u.Email),
		PasswordHash: user.PasswordHash(u.PasswordHash),
		FirstName:    u.FirstName,
		LastName:     u.LastName,
		Role:         user.Role(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    c.NewOptional(u.UpdatedAt.Time, u.UpdatedAt.Valid),
		ActivatedAt:  c.NewOptional(u.ActivatedAt.Time, u.ActivatedAt.Valid),
	}
}
