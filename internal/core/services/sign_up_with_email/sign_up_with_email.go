package signupwithemail

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
	Email     c.Email
	Password  user.RawPassword
	FirstName string
	LastName  string
}

type Result struct {
	User            user.User
	ValidationToken user.TokenValue
}

type service struct {
	log                logging.Logger
	unitOfWork         uow.UnitOfWork
	passwordHasher     user.PasswordHasher
	tokenGenerator     user.TokenGenerator
	validationTokenTTL time.Duration
	now                func() time.Time
}

func New(
	log logging.Logger,
	unitOfWork uow.UnitOfWork,
	passwordHasher user.PasswordHasher,
	tokenGenerator user.TokenGenerator,
	validationTokenTTL time.Duration,
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
	if tokenGenerator == nil {
		panic(e.NewNilArgumentError("tokenGenerator"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:                log,
		unitOfWork:         unitOfWork,
		passwordHasher:     passwordHasher,
		tokenGenerator:     tokenGenerator,
		validationTokenTTL: validationTokenTTL,
		now:                now,
	}
}

// Run creates an inactive account together with its validation token.
// Both rows commit together or not at all.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	passwordHash, err := s.passwordHasher.HashPassword(input.Password)
	if err != nil {
		s.log.Error(ctx, "Could not hash password.", logging.Entry("err", err))
		return result, err
	}

	uow, err := s.unitOfWork.Begin(ctx)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not begin unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}
	defer uow.Rollback(ctx)

	createdUser, err := uow.Users().Create(ctx, user.CreateUserInput{
		Email:        input.Email,
		PasswordHash: passwordHash,
		FirstName:    input.FirstName,
		LastName:     input.LastName,
		Role:         user.RoleMember,
		CreatedAt:    s.now(),
	})
	if errors.Is(err, context.Canceled) {
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
			"Could not create new user.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	validationToken, err := uow.Tokens().Create(ctx, user.CreateTokenInput{
		UserID:    createdUser.ID,
		Value:     s.tokenGenerator.GenerateToken(),
		Purpose:   user.PurposeValidation,
		ExpiresAt: s.now().Add(s.validationTokenTTL),
		CreatedAt: s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create validation token.",
			logging.Entry("userId", createdUser.ID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	if err = uow.Commit(ctx); err != nil {
		s.log.Error(
			ctx,
			"Could not commit unit of work.",
			logging.Entry("email", input.Email),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	s.log.Info(
		ctx,
		"New user has been created.",
		logging.Entry("userId", createdUser.ID),
		logging.Entry("email", createdUser.Email),
	)
	return Result{User: createdUser, ValidationToken: validationToken.Value}, nil
}
