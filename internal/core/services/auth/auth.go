package auth

import (
	"context"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
)

type contextAuthToken string

const CONTEXT_AUTH_TOKEN_KEY = contextAuthToken("authToken")

type Input interface {
	WithAuthenticatedUser(u user.User) Input
}

type service[T Input, S any] struct {
	sessionRepository user.SessionRepository
	inner             services.Service[T, S]
}

// WithAuthentication resolves the session token from the request context
// and injects the authenticated user into the input.
func WithAuthentication[T Input, S any](
	sessionRepository user.SessionRepository,
	inner services.Service[T, S],
) services.Service[T, S] {
	if sessionRepository == nil {
		panic(e.NewNilArgumentError("sessionRepository"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &service[T, S]{
		sessionRepository: sessionRepository,
		inner:             inner,
	}
}

func (s *service[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	authToken, ok := ctx.Value(CONTEXT_AUTH_TOKEN_KEY).(user.SessionToken)
	if !ok {
		return result, user.ErrUserDoesNotExist
	}
	u, err := s.sessionRepository.GetUserByToken(ctx, authToken)
	if err != nil {
		return result, err
	}
	return s.inner.Run(ctx, input.WithAuthenticatedUser(u).(T))
}

type HasAuthenticatedUser interface {
	AuthenticatedUser() user.User
}

type adminService[T HasAuthenticatedUser, S any] struct {
	inner services.Service[T, S]
}

// WithAdminRole rejects inputs whose authenticated user is not an admin.
// It composes after WithAuthentication.
func WithAdminRole[T HasAuthenticatedUser, S any](
	inner services.Service[T, S],
) services.Service[T, S] {
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &adminService[T, S]{inner: inner}
}

func (s *adminService[T, S]) Run(ctx context.Context, input T) (result S, err error) {
	u := input.AuthenticatedUser()
	if !u.IsAdmin() {
		return result, user.ErrPermissionDenied
	}
	return s.inner.Run(ctx, input)
}
