package user

import (
	"context"
	c "pagecms/internal/core/domain/common"
	"time"
)

type CreateUserInput struct {
	Email        c.Email
	PasswordHash PasswordHash
	FirstName    string
	LastName     string
	Role         Role
	CreatedAt    time.Time
}

type UpdateUserInput struct {
	ID                ID
	DoEmailUpdate     bool
	Email             c.Email
	DoFirstNameUpdate bool
	FirstName         string
	DoLastNameUpdate  bool
	LastName          string
	DoRoleUpdate      bool
	Role              Role
	DoActiveUpdate    bool
	IsActive          bool
	UpdatedAt         time.Time
}

type UserRepository interface {
	Create(ctx context.Context, input CreateUserInput) (User, error)
	GetByID(ctx context.Context, id ID) (User, error)
	GetByEmail(ctx context.Context, email c.Email) (User, error)
	List(ctx context.Context) ([]User, error)
	Activate(ctx context.Context, id ID, at time.Time) (User, error)
	SetPassword(ctx context.Context, id ID, password PasswordHash, at time.Time) error
	Update(ctx context.Context, input UpdateUserInput) (User, error)
	Delete(ctx context.Context, id ID) error
}

type CreateTokenInput struct {
	UserID    ID
	Value     TokenValue
	Purpose   TokenPurpose
	ExpiresAt time.Time
	CreatedAt time.Time
}

type TokenRepository interface {
	Create(ctx context.Context, input CreateTokenInput) (Token, error)
	// GetValid returns the token only if it exists with the given purpose
	// and has not expired at the given instant, ErrInvalidOrExpiredToken
	// otherwise.
	GetValid(ctx context.Context, value TokenValue, purpose TokenPurpose, now time.Time) (Token, error)
	Delete(ctx context.Context, value TokenValue) error
	DeleteByUserAndPurpose(ctx context.Context, userID ID, purpose TokenPurpose) error
}

type CreateSessionInput struct {
	UserID    ID
	Token     SessionToken
	CreatedAt time.Time
}

type SessionRepository interface {
	Create(ctx context.Context, input CreateSessionInput) error
	GetUserByToken(ctx context.Context, token SessionToken) (User, error)
	Delete(ctx context.Context, token SessionToken) (userID ID, err error)
}
