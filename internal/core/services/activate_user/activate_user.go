package activateuser

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	uow "pagecms/internal/core/domain/unit_of_work"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"time"
)

type Input struct {
	ValidationToken user.TokenValue
}

type Result struct {
	User user.User
}

type service struct {
	log logging.Logger
	uow uow.UnitOfWork
	now func() time.Time
}

func New(
	log logging.Logger,
	uow uow.UnitOfWork,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if uow == nil {
		panic(e.NewNilArgumentError("uow"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log: log,
		uow: uow,
		now: now,
	}
}

// Run exchanges a validation token for account activation. The activation
// and the token deletion commit together, so after a transient failure the
// same token can still be retried.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.uow.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, c.ErrStorage
	}
	defer uow.Rollback(ctx)

	token, err := uow.Tokens().GetValid(ctx, input.ValidationToken, user.PurposeValidation, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidOrExpiredToken) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not look up validation token.", logging.Entry("err", err))
		return result, c.ErrStorage
	}

	u, err := uow.Users().Activate(ctx, token.UserID, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not activate user.",
			logging.Entry("userId", token.UserID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	if err = uow.Tokens().Delete(ctx, token.Value); err != nil {
		s.log.Error(
			ctx,
			"Could not delete consumed validation token.",
			logging.Entry("userId", token.UserID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, c.ErrStorage
	}

	s.log.Info(ctx, "User successfully activated.", logging.Entry("userId", u.ID))
	return Result{User: u}, nil
}
