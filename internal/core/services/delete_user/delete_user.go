package deleteuser

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"pagecms/internal/core/services/auth"
)

type Input struct {
	User   user.User
	UserID user.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct{}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
	}
}

// Run removes the account. Users cannot delete themselves.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	if input.User.ID == input.UserID {
		return result, user.ErrPermissionDenied
	}

	err = s.userRepository.Delete(ctx, input.UserID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete user.",
			logging.Entry("userId", input.UserID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	s.log.Info(ctx, "User has been deleted.", logging.Entry("userId", input.UserID))
	return result, nil
}
