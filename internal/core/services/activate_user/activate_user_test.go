package activateuser

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/logging"
	uow "pagecms/internal/core/domain/unit_of_work"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	VALIDATION_TOKEN = user.TokenValue("test-validation-token")
	EMAIL            = c.Email("test@test.test")
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	Service    services.Service[Input, Result]
	User       user.User
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		func() time.Time { return NOW },
	)

	ctx := context.Background()
	u, err := suite.UnitOfWork.Context.UserRepository.Create(ctx, user.CreateUserInput{
		Email:        EMAIL,
		PasswordHash: user.PasswordHash("test"),
		Role:         user.RoleMember,
		CreatedAt:    NOW,
	})
	suite.Require().Nil(err)
	suite.User = u
}

func TestActivateUserService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) createToken(expiresAt time.Time) {
	_, err := suite.UnitOfWork.Context.TokenRepository.Create(context.Background(), user.CreateTokenInput{
		UserID:    suite.User.ID,
		Value:     VALIDATION_TOKEN,
		Purpose:   user.PurposeValidation,
		ExpiresAt: expiresAt,
		CreatedAt: NOW,
	})
	suite.Require().Nil(err)
}

func (suite *testSuite) TestSuccess() {
	suite.createToken(NOW.Add(time.Hour))

	result, err := suite.Service.Run(context.Background(), Input{ValidationToken: VALIDATION_TOKEN})

	assert := suite.Require()
	assert.Nil(err)
	assert.True(result.User.IsActive())
	assert.Equal(NOW, result.User.ActivatedAt.Value)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)
	assert.Equal(0, suite.UnitOfWork.Context.TokenRepository.TokenCount())
}

func (suite *testSuite) TestConsumedTokenCannotBeReused() {
	suite.createToken(NOW.Add(time.Hour))
	ctx := context.Background()

	_, err := suite.Service.Run(ctx, Input{ValidationToken: VALIDATION_TOKEN})
	suite.Require().Nil(err)

	_, err = suite.Service.Run(ctx, Input{ValidationToken: VALIDATION_TOKEN})
	suite.Require().True(errors.Is(err, user.ErrInvalidOrExpiredToken))
}

func (suite *testSuite) TestExpiredToken() {
	suite.createToken(NOW.Add(-time.Second))

	_, err := suite.Service.Run(context.Background(), Input{ValidationToken: VALIDATION_TOKEN})

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrInvalidOrExpiredToken))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)

	u, getErr := suite.UnitOfWork.Context.UserRepository.GetByID(context.Background(), suite.User.ID)
	assert.Nil(getErr)
	assert.False(u.IsActive())
	assert.Equal(1, suite.UnitOfWork.Context.TokenRepository.TokenCount())
}

func (suite *testSuite) TestUnknownToken() {
	_, err := suite.Service.Run(context.Background(), Input{ValidationToken: "no-such-token"})

	suite.Require().True(errors.Is(err, user.ErrInvalidOrExpiredToken))
}

func (suite *testSuite) TestActivationFailureKeepsToken() {
	suite.createToken(NOW.Add(time.Hour))
	suite.UnitOfWork.Context.UserRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{ValidationToken: VALIDATION_TOKEN})

	assert := suite.Require()
	assert.True(errors.Is(err, c.ErrStorage))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
	assert.Equal(1, suite.UnitOfWork.Context.TokenRepository.TokenCount())
}
