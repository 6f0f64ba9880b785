package changepassword

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"pagecms/internal/core/services/auth"
	"time"
)

type Input struct {
	User        user.User
	OldPassword user.RawPassword
	NewPassword user.RawPassword
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	passwordHasher user.PasswordHasher
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	passwordHasher user.PasswordHasher,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if passwordHasher == nil {
		panic(e.NewNilArgumentError("passwordHasher"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		passwordHasher: passwordHasher,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if !s.passwordHasher.ValidatePassword(input.OldPassword, input.User.PasswordHash) {
		return result, user.ErrInvalidCredentials
	}

	newPasswordHash, err := s.passwordHasher.HashPassword(input.NewPassword)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	err = s.userRepository.SetPassword(ctx, input.User.ID, newPasswordHash, s.now())
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user password.",
			logging.Entry("userId", input.User.ID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	s.log.Info(ctx, "User password has been changed.", logging.Entry("userId", input.User.ID))
	return result, nil
}
