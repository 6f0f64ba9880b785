package signupwithemail

import (
	"context"
	"errors"
	"pagecms/internal/core/domain/logging"
	uow "pagecms/internal/core/domain/unit_of_work"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

type sendingTestSuite struct {
	suite.Suite
	Logger     *logging.FakeLogger
	UnitOfWork *uow.FakeUnitOfWork
	Sender     *user.FakeValidationTokenSender
	Service    services.Service[Input, Result]
}

func (suite *sendingTestSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.Sender = user.NewFakeValidationTokenSender()
	suite.Service = NewWithValidationTokenSending(
		suite.Logger,
		suite.Sender,
		New(
			suite.Logger,
			suite.UnitOfWork,
			user.NewFakePasswordHasher(),
			user.NewFakeTokenGenerator(VALIDATION_TOKEN),
			TOKEN_TTL,
			func() time.Time { return NOW },
		),
	)
}

func TestSignUpWithValidationTokenSending(t *testing.T) {
	suite.Run(t, new(sendingTestSuite))
}

func (suite *sendingTestSuite) TestTokenSentOnSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(1, suite.Sender.SentCount())
	assert.Equal(result.User.ID, suite.Sender.Sent[0].User.ID)
	assert.Equal(user.TokenValue(VALIDATION_TOKEN), suite.Sender.Sent[0].Token)
}

func (suite *sendingTestSuite) TestSendFailureDoesNotUndoRegistration() {
	suite.Sender.ReturnError = true

	result, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrTokenSendingFailed))
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	_, getErr := suite.UnitOfWork.Context.UserRepository.GetByEmail(context.Background(), EMAIL)
	assert.Nil(getErr)
}

func (suite *sendingTestSuite) TestNoSendOnInnerFailure() {
	suite.UnitOfWork.Context.UserRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.NotNil(err)
	assert.Equal(0, suite.Sender.SentCount())
}
