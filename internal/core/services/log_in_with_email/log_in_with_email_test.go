package loginwithemail

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = c.Email("test@test.test")
	RAW_PASSWORD  = user.RawPassword("test-password")
	SESSION_TOKEN = "test-session-token"
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger            *logging.FakeLogger
	UserRepository    *user.FakeUserRepository
	SessionRepository *user.FakeSessionRepository
	PasswordHasher    *user.FakePasswordHasher
	Service           services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UserRepository = user.NewFakeUserRepository()
	suite.SessionRepository = user.NewFakeSessionRepository(suite.UserRepository)
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.Service = New(
		suite.Logger,
		suite.UserRepository,
		suite.SessionRepository,
		suite.PasswordHasher,
		user.NewFakeSessionTokenGenerator(SESSION_TOKEN),
		func() time.Time { return NOW },
	)
}

func TestLogInWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createUser(activate bool) user.User {
	ctx := context.Background()
	hash, err := suite.PasswordHasher.HashPassword(RAW_PASSWORD)
	suite.Require().Nil(err)
	u, err := suite.UserRepository.Create(ctx, user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: hash,
		Role:         user.RoleMember,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	if activate {
		u, err = suite.UserRepository.Activate(ctx, u.ID, NOW)
		suite.Require().Nil(err)
	}
	return u
}

func (suite *testSuite) TestSuccess() {
	u := suite.createUser(true)

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(u.ID, result.User.ID)
	assert.Equal(user.SessionToken(SESSION_TOKEN), result.Token)

	sessionUser, err := suite.SessionRepository.GetUserByToken(context.Background(), result.Token)
	assert.Nil(err)
	assert.Equal(u.ID, sessionUser.ID)
}

func (suite *testSuite) TestUnknownEmail() {
	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	suite.Require().True(errors.Is(err, user.ErrInvalidCredentials))
}

func (suite *testSuite) TestWrongPassword() {
	suite.createUser(true)

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: "wrong-password"})

	suite.Require().True(errors.Is(err, user.ErrInvalidCredentials))
}

func (suite *testSuite) TestInactiveUser() {
	suite.createUser(false)

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	suite.Require().True(errors.Is(err, user.ErrUserIsNotActive))
}
