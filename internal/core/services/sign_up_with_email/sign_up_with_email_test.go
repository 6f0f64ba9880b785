package signupwithemail

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
	VALIDATION_TOKEN = "test-validation-token"
	EMAIL            = c.Email("test@test.test")
	RAW_PASSWORD     = user.RawPassword("test-password")
	TOKEN_TTL        = 24 * time.Hour
)

var NOW time.Time = time.Now().UTC()

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	UnitOfWork     *uow.FakeUnitOfWork
	PasswordHasher *user.FakePasswordHasher
	TokenGenerator *user.FakeTokenGenerator
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.UnitOfWork = uow.NewFakeUnitOfWork()
	suite.PasswordHasher = user.NewFakePasswordHasher()
	suite.TokenGenerator = user.NewFakeTokenGenerator(VALIDATION_TOKEN)
	suite.Service = New(
		suite.Logger,
		suite.UnitOfWork,
		suite.PasswordHasher,
		suite.TokenGenerator,
		TOKEN_TTL,
		func() time.Time { return NOW },
	)
}

func TestSignUpWithEmailService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	ctx := context.Background()
	result, err := suite.Service.Run(
		ctx,
		Input{Email: EMAIL, Password: RAW_PASSWORD, FirstName: "Test", LastName: "User"},
	)

	assert := suite.Require()
	assert.Nil(err)
	assert.NotEqual(user.ID(0), result.User.ID)
	assert.Equal(EMAIL, result.User.Email)
	assert.Equal("Test", result.User.FirstName)
	assert.Equal("User", result.User.LastName)
	assert.Equal(user.RoleMember, result.User.Role)
	assert.Equal(NOW, result.User.CreatedAt)
	assert.False(result.User.IsActive())
	assert.NotEqual(string(RAW_PASSWORD), string(result.User.PasswordHash))
	assert.Equal(user.TokenValue(VALIDATION_TOKEN), result.ValidationToken)
	assert.True(suite.UnitOfWork.Context.WasCommitCalled)

	tokens := suite.UnitOfWork.Context.TokenRepository
	assert.Equal(1, tokens.TokenCount())
	token, err := tokens.GetValid(ctx, result.ValidationToken, user.PurposeValidation, NOW)
	assert.Nil(err)
	assert.Equal(result.User.ID, token.UserID)
	assert.Equal(NOW.Add(TOKEN_TTL), token.ExpiresAt)
}

func (suite *testSuite) TestEmailAlreadyExistsError() {
	ctx := context.Background()
	suite.UnitOfWork.Context.UserRepository.Create(
		ctx,
		user.CreateUserInput{
			Email:        EMAIL,
			PasswordHash: user.PasswordHash("test"),
			Role:         user.RoleMember,
			CreatedAt:    NOW,
		},
	)

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.True(errors.Is(err, user.ErrEmailAlreadyExists))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
	assert.Equal(0, suite.UnitOfWork.Context.TokenRepository.TokenCount())
}

func (suite *testSuite) TestTokenCreationFailureRollsBack() {
	ctx := context.Background()
	suite.UnitOfWork.Context.TokenRepository.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.True(errors.Is(err, c.ErrStorage))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
	assert.True(suite.UnitOfWork.Context.WasRollbackCalled)
}

func (suite *testSuite) TestUserCreationFailureIsOpaque() {
	ctx := context.Background()
	suite.UnitOfWork.Context.UserRepository.ReturnError = true

	_, err := suite.Service.Run(ctx, Input{Email: EMAIL, Password: RAW_PASSWORD})

	assert := suite.Require()
	assert.True(errors.Is(err, c.ErrStorage))
	assert.False(suite.UnitOfWork.Context.WasCommitCalled)
}
