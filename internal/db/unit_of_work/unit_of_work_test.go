package uow

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	domainuow "pagecms/internal/core/domain/unit_of_work"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/db"
	dbuser "pagecms/internal/db/user"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL = "test@test.test"
	TOKEN = "test-token-value"
)

var NOW time.Time = time.Now().UTC().Truncate(time.Millisecond)

type testSuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	unitOfWork *PgxUnitOfWork
}

func (suite *testSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.unitOfWork = NewPgxUnitOfWork(suite.pool)
}

func (suite *testSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUnitOfWork(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (s *testSuite) createUserAndToken(ctx context.Context, uowCtx domainuow.Context) {
	s.T().Helper()
	u, err := uowCtx.Users().Create(ctx, user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash("test-hash"),
		Role:         user.RoleMember,
		CreatedAt:    NOW,
	})
	s.Require().Nil(err)
	_, err = uowCtx.Tokens().Create(ctx, user.CreateTokenInput{
		UserID:    u.ID,
		Value:     user.TokenValue(TOKEN),
		Purpose:   user.PurposeValidation,
		ExpiresAt: NOW.Add(time.Hour),
		CreatedAt: NOW,
	})
	s.Require().Nil(err)
}

func (s *testSuite) TestCommit() {
	ctx := context.Background()
	uowCtx, err := s.unitOfWork.Begin(ctx)
	s.Require().Nil(err)
	defer uowCtx.Rollback(ctx)

	s.createUserAndToken(ctx, uowCtx)
	s.Require().Nil(uowCtx.Commit(ctx))

	userRepository := dbuser.NewPgxRepository(s.pool)
	_, err = userRepository.GetByEmail(ctx, c.Email(EMAIL))
	s.Nil(err)
	tokenRepository := dbuser.NewPgxTokenRepository(s.pool)
	_, err = tokenRepository.GetValid(ctx, user.TokenValue(TOKEN), user.PurposeValidation, NOW)
	s.Nil(err)
}

func (s *testSuite) TestRollback() {
	ctx := context.Background()
	uowCtx, err := s.unitOfWork.Begin(ctx)
	s.Require().Nil(err)

	s.createUserAndToken(ctx, uowCtx)
	s.Require().Nil(uowCtx.Rollback(ctx))

	userRepository := dbuser.NewPgxRepository(s.pool)
	_, err = userRepository.GetByEmail(ctx, c.Email(EMAIL))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
	tokenRepository := dbuser.NewPgxTokenRepository(s.pool)
	_, err = tokenRepository.GetValid(ctx, user.TokenValue(TOKEN), user.PurposeValidation, NOW)
	s.True(errors.Is(err, user.ErrInvalidOrExpiredToken))
}
