package uow

import (
	"context"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/domain/user"
)

// Context is one request-scoped transaction over the stores. Every
// lifecycle operation runs inside exactly one Context, partial states are
// never observable outside of it.
type Context interface {
	Rollback(ctx context.Context) error
	Commit(ctx context.Context) error

	Users() user.UserRepository
	Tokens() user.TokenRepository
	Sessions() user.SessionRepository
	Pages() page.Repository
}

type UnitOfWork interface {
	Begin(ctx context.Context) (Context, error)
}
