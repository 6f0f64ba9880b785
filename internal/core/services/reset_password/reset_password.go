package resetpassword

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
	ResetToken  user.TokenValue
	NewPassword user.RawPassword
}

type Result struct{}

type service struct {
	log            logging.Logger
	unitOfWork     uow.UnitOfWork
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if unitOfWork == nil {
		panic(e.NewNilArgumentError("unitOfWork"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		unitOfWork:     unitOfWork,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

// Run exchanges a reset token for a new credential hash. The password
// update and the token deletion commit together.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not begin unit of work.", logging.Entry("err", err))
		return result, c.ErrStorage
	}
	defer uow.Rollback(ctx)

	token, err := uow.Tokens().GetValid(ctx, input.ResetToken, user.PurposeReset, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrInvalidOrExpiredToken) {
		return result, err
	}
	if err != nil {
		s.log.Error(ctx, "Could not look up password reset token.", logging.Entry("err", err))
		return result, c.ErrStorage
	}

	if err = uow.Users().SetPassword(ctx, token.UserID, newPasswordHash, s.now()); err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userId", token.UserID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	if err = uow.Tokens().Delete(ctx, token.Value); err != nil {
		s.log.Error(
			ctx,
			"Could not delete consumed password reset token.",
			logging.Entry("userId", token.UserID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(ctx, "Could not commit unit of work.", logging.Entry("err", err))
		return result, c.ErrStorage
	}

	s.log.Info(
		ctx,
		"New password has been successfully set.",
		logging.Entry("userId", token.UserID),
	)
	return result, nil
}
