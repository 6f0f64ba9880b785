package updateuser

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
	User      user.User
	UserID    user.ID
	Email     c.Optional[c.Email]
	FirstName c.Optional[string]
	LastName  c.Optional[string]
	Role      c.Optional[user.Role]
	IsActive  c.Optional[bool]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct {
	User user.User
}

type service struct {
	log            logging.Logger
	userRepository user.UserRepository
	now            func() time.Time
}

func New(
	log logging.Logger,
	userRepository user.UserRepository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if userRepository == nil {
		panic(e.NewNilArgumentError("userRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		userRepository: userRepository,
		now:            now,
	}
}

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updateInput := user.UpdateUserInput{
		ID:        input.UserID,
		UpdatedAt: s.now(),
	}
	if input.Email.IsPresent {
		updateInput.DoEmailUpdate = true
		updateInput.Email = input.Email.Value
	}
	if input.FirstName.IsPresent {
		updateInput.DoFirstNameUpdate = true
		updateInput.FirstName = input.FirstName.Value
	}
	if input.LastName.IsPresent {
		updateInput.DoLastNameUpdate = true
		updateInput.LastName = input.LastName.Value
	}
	if input.Role.IsPresent {
		updateInput.DoRoleUpdate = true
		updateInput.Role = input.Role.Value
	}
	if input.IsActive.IsPresent {
		updateInput.DoActiveUpdate = true
		updateInput.IsActive = input.IsActive.Value
	}

	updatedUser, err := s.userRepository.Update(ctx, updateInput)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, user.ErrUserDoesNotExist) {
		return result, err
	}
	if errors.Is(err, user.ErrEmailAlreadyExists) {
		s.log.Info(
			ctx,
			"User with the email already exists.",
			logging.Entry("email", input.Email),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update user.",
			logging.Entry("userId", input.UserID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	s.log.Info(ctx, "User has been updated.", logging.Entry("userId", updatedUser.ID))
	return Result{User: updatedUser}, nil
}
