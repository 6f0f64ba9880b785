package user

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/db"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const SESSION_TOKEN = "test-session-token"

type testSessionSuite struct {
	suite.Suite
	pool              *pgxpool.Pool
	userRepository    *PgxUserRepository
	sessionRepository *PgxSessionRepository
}

func (suite *testSessionSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.userRepository = NewPgxRepository(suite.pool)
	suite.sessionRepository = NewPgxSessionRepository(suite.pool)
}

func (suite *testSessionSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testSessionSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxSessionRepository(t *testing.T) {
	suite.Run(t, new(testSessionSuite))
}

func (s *testSessionSuite) createActiveUser() user.User {
	s.T().Helper()
	u, err := s.userRepository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		Role:         user.RoleMember,
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNow(err.Error())
	}
	u, err = s.userRepository.Activate(context.Background(), u.ID, NOW)
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}

func (s *testSessionSuite) TestCreateAndGetUser() {
	activeUser := s.createActiveUser()

	err := s.sessionRepository.Create(context.Background(), user.CreateSessionInput{
		UserID:    activeUser.ID,
		Token:     user.SessionToken(SESSION_TOKEN),
		CreatedAt: NOW,
	})
	s.Nil(err)

	u, err := s.sessionRepository.GetUserByToken(context.Background(), user.SessionToken(SESSION_TOKEN))
	s.Nil(err)
	s.Equal(activeUser.ID, u.ID)
	s.True(u.IsActive())
}

func (s *testSessionSuite) TestGetUserByUnknownToken() {
	_, err := s.sessionRepository.GetUserByToken(context.Background(), user.SessionToken(SESSION_TOKEN))

	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSessionSuite) TestDelete() {
	activeUser := s.createActiveUser()
	err := s.sessionRepository.Create(context.Background(), user.CreateSessionInput{
		UserID:    activeUser.ID,
		Token:     user.SessionToken(SESSION_TOKEN),
		CreatedAt: NOW,
	})
	s.Nil(err)

	userID, err := s.sessionRepository.Delete(context.Background(), user.SessionToken(SESSION_TOKEN))
	s.Nil(err)
	s.Equal(activeUser.ID, userID)

	_, err = s.sessionRepository.GetUserByToken(context.Background(), user.SessionToken(SESSION_TOKEN))
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testSessionSuite) TestDeleteUnknownToken() {
	_, err := s.sessionRepository.Delete(context.Background(), user.SessionToken(SESSION_TOKEN))

	s.True(errors.Is(err, user.ErrSessionDoesNotExist))
}
