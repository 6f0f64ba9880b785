package services_test

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/logging"
	uow "pagecms/internal/core/domain/unit_of_work"
	"pagecms/internal/core/domain/user"
	activateuser "pagecms/internal/core/services/activate_user"
	loginwithemail "pagecms/internal/core/services/log_in_with_email"
	resetpassword "pagecms/internal/core/services/reset_password"
	sendpasswordresettoken "pagecms/internal/core/services/send_password_reset_token"
	signupwithemail "pagecms/internal/core/services/sign_up_with_email"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL            = c.Email("jamie@test.test")
	PASSWORD         = user.RawPassword("initial-password")
	NEW_PASSWORD     = user.RawPassword("changed-password")
	VALIDATION_TOKEN = "validation-token"
	RESET_TOKEN      = "reset-token"
	SESSION_TOKEN    = "session-token"
)

var NOW time.Time = time.Now().UTC()

// lifecycleSuite drives one account through the whole lifecycle with the
// real services wired together over in-memory repositories.
type lifecycleSuite struct {
	suite.Suite
	UnitOfWork *uow.FakeUnitOfWork
	SignUp     func(ctx context.Context) (signupwithemail.Result, error)
	Activate   func(ctx context.Context, token user.TokenValue) (activateuser.Result, error)
	LogIn      func(ctx context.Context, password user.RawPassword) (loginwithemail.Result, error)
	SendReset  func(ctx context.Context) (sendpasswordresettoken.Result, error)
	Reset      func(ctx context.Context, token user.TokenValue, password user.RawPassword) error
}

func (suite *lifecycleSuite) SetupTest() {
	log := logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	passwordHasher := user.NewFakePasswordHasher()
	now := func() time.Time { return NOW }

	signUp := signupwithemail.New(
		log,
		suite.UnitOfWork,
		passwordHasher,
		user.NewFakeTokenGenerator(VALIDATION_TOKEN),
		24*time.Hour,
		now,
	)
	suite.SignUp = func(ctx context.Context) (signupwithemail.Result, error) {
		return signUp.Run(ctx, signupwithemail.Input{
			Email:     EMAIL,
			Password:  PASSWORD,
			FirstName: "Jamie",
		})
	}

	activate := activateuser.New(log, suite.UnitOfWork, now)
	suite.Activate = func(ctx context.Context, token user.TokenValue) (activateuser.Result, error) {
		return activate.Run(ctx, activateuser.Input{ValidationToken: token})
	}

	logIn := loginwithemail.New(
		log,
		suite.UnitOfWork.Context.UserRepository,
		suite.UnitOfWork.Context.SessionRepository,
		passwordHasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		now,
	)
	suite.LogIn = func(ctx context.Context, password user.RawPassword) (loginwithemail.Result, error) {
		return logIn.Run(ctx, loginwithemail.Input{Email: EMAIL, Password: password})
	}

	sendReset := sendpasswordresettoken.New(
		log,
		suite.UnitOfWork,
		user.NewFakeTokenGenerator(RESET_TOKEN),
		time.Hour,
		now,
	)
	suite.SendReset = func(ctx context.Context) (sendpasswordresettoken.Result, error) {
		return sendReset.Run(ctx, sendpasswordresettoken.Input{Email: EMAIL})
	}

	reset := resetpassword.New(log, suite.UnitOfWork, passwordHasher, now)
	suite.Reset = func(ctx context.Context, token user.TokenValue, password user.RawPassword) error {
		_, err := reset.Run(ctx, resetpassword.Input{ResetToken: token, NewPassword: password})
		return err
	}
}

func TestAccountLifecycle(t *testing.T) {
	suite.Run(t, new(lifecycleSuite))
}

func (suite *lifecycleSuite) TestFullLifecycle() {
	ctx := context.Background()
	assert := suite.Require()

	signUpResult, err := suite.SignUp(ctx)
	assert.Nil(err)
	assert.False(signUpResult.User.IsActive())

	// A fresh account cannot log in before activation.
	_, err = suite.LogIn(ctx, PASSWORD)
	assert.True(errors.Is(err, user.ErrUserIsNotActive))

	_, err = suite.Activate(ctx, signUpResult.ValidationToken)
	assert.Nil(err)

	logInResult, err := suite.LogIn(ctx, PASSWORD)
	assert.Nil(err)
	assert.Equal(user.SessionToken(SESSION_TOKEN), logInResult.Token)

	resetResult, err := suite.SendReset(ctx)
	assert.Nil(err)
	assert.True(resetResult.TokenCreated())

	err = suite.Reset(ctx, resetResult.ResetToken, NEW_PASSWORD)
	assert.Nil(err)

	// The old password no longer works, the new one does.
	_, err = suite.LogIn(ctx, PASSWORD)
	assert.True(errors.Is(err, user.ErrInvalidCredentials))
	_, err = suite.LogIn(ctx, NEW_PASSWORD)
	assert.Nil(err)
}

func (suite *lifecycleSuite) TestValidationTokenCannotResetPassword() {
	ctx := context.Background()
	assert := suite.Require()

	signUpResult, err := suite.SignUp(ctx)
	assert.Nil(err)

	err = suite.Reset(ctx, signUpResult.ValidationToken, NEW_PASSWORD)
	assert.True(errors.Is(err, user.ErrInvalidOrExpiredToken))
}

func (suite *lifecycleSuite) TestResetTokenCannotActivate() {
	ctx := context.Background()
	assert := suite.Require()

	signUpResult, err := suite.SignUp(ctx)
	assert.Nil(err)
	_, err = suite.Activate(ctx, signUpResult.ValidationToken)
	assert.Nil(err)

	resetResult, err := suite.SendReset(ctx)
	assert.Nil(err)

	_, err = suite.Activate(ctx, resetResult.ResetToken)
	assert.True(errors.Is(err, user.ErrInvalidOrExpiredToken))
}
