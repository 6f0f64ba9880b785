package sendpasswordresettoken

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
	Email c.Email
}

func (i Input) GetRateLimitKey() string {
	return "send-password-reset-token::" + string(i.Email)
}

// Result is empty for unknown emails. Callers must not let the requester
// distinguish that case from a created token, only the mailing step cares.
type Result struct {
	User       user.User
	ResetToken user.TokenValue
}

func (r Result) TokenCreated() bool {
	return r.ResetToken != ""
}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	tokenGenerator user.TokenGenerator
	resetTokenTTL  time.Duration
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	tokenGenerator user.TokenGenerator,
	resetTokenTTL time.Duration,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		tokenGenerator: tokenGenerator,
		resetTokenTTL:  resetTokenTTL,
		now:            now,
	}
}

// Run supersedes any outstanding reset tokens for the account: the delete
// and the insert commit together, after which exactly one reset token
// exists for the account.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, c.ErrStorage
	}
	defer uow.Rollback(ctx)

	u, err := uow.Users().GetByEmail(ctx, input.Email)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		s.log.Info(
			ctx,
			"Password reset requested for unknown email.",
			logging.Entry("email", input.Email),
		)
		return result, nil
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get user by email.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	if err = uow.Tokens().DeleteByUserAndPurpose(ctx, u.ID, user.PurposeReset); err != nil {
		s.log.Error(
			ctx,
			"Could not delete previous password reset tokens.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	resetToken, err := uow.Tokens().Create(ctx, user.CreateTokenInput{
		UserID:    u.ID,
		Value:     s.tokenGenerator.GenerateToken(),
		Purpose:   user.PurposeReset,
		ExpiresAt: s.now().Add(s.resetTokenTTL),
		CreatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create password reset token.",
			logging.Entry("userId", u.ID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, c.ErrStorage
	}

	s.log.Info(ctx, "Password reset token created.", logging.Entry("userId", u.ID))
	return Result{User: u, ResetToken: resetToken.Value}, nil
}
