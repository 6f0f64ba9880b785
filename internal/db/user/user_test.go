package user

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/db"
	"testing"
	"time"

	"github.com/jackc/pgx/v4/pgxpool"
	"github.com/stretchr/testify/suite"
)

const (
	EMAIL         = "test@test.test"
	ANOTHER_EMAIL = "another@test.test"
	PASSWORD_HASH = "test-password-hash"
)

var NOW time.Time = time.Now().UTC().Truncate(time.Millisecond)

type testUserSuite struct {
	suite.Suite
	pool       *pgxpool.Pool
	repository *PgxUserRepository
}

func (suite *testUserSuite) SetupSuite() {
	suite.pool = db.CreateTestPool(suite.T())
	suite.repository = NewPgxRepository(suite.pool)
}

func (suite *testUserSuite) TearDownSuite() {
	if suite.pool != nil {
		suite.pool.Close()
	}
}

func (suite *testUserSuite) TearDownTest() {
	db.TruncateTables(suite.pool)
}

func TestPgxUserRepository(t *testing.T) {
	suite.Run(t, new(testUserSuite))
}

func (s *testUserSuite) createUser(email string) user.User {
	s.T().Helper()
	u, err := s.repository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(email),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		FirstName:    "Jamie",
		Role:         user.RoleMember,
		CreatedAt:    NOW,
	})
	if err != nil {
		s.FailNow(err.Error())
	}
	return u
}

func (s *testUserSuite) TestCreate() {
	u := s.createUser(EMAIL)

	s.Equal(c.Email(EMAIL), u.Email)
	s.Equal(user.PasswordHash(PASSWORD_HASH), u.PasswordHash)
	s.Equal(user.RoleMember, u.Role)
	s.True(NOW.Equal(u.CreatedAt))
	s.False(u.IsActive())
}

func (s *testUserSuite) TestCreateDuplicateEmail() {
	s.createUser(EMAIL)

	_, err := s.repository.Create(context.Background(), user.CreateUserInput{
		Email:        c.NewEmail(EMAIL),
		PasswordHash: user.PasswordHash(PASSWORD_HASH),
		Role:         user.RoleMember,
		CreatedAt:    NOW,
	})

	s.True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (s *testUserSuite) TestGetByEmail() {
	created := s.createUser(EMAIL)

	u, err := s.repository.GetByEmail(context.Background(), c.Email(EMAIL))

	s.Nil(err)
	s.Equal(created.ID, u.ID)
}

func (s *testUserSuite) TestGetByEmailUnknown() {
	_, err := s.repository.GetByEmail(context.Background(), c.Email(EMAIL))

	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testUserSuite) TestList() {
	s.createUser(EMAIL)
	s.createUser(ANOTHER_EMAIL)

	users, err := s.repository.List(context.Background())

	s.Nil(err)
	s.Len(users, 2)
}

func (s *testUserSuite) TestActivate() {
	created := s.createUser(EMAIL)

	u, err := s.repository.Activate(context.Background(), created.ID, NOW)

	s.Nil(err)
	s.True(u.IsActive())
	s.True(NOW.Equal(u.ActivatedAt.Value))
}

func (s *testUserSuite) TestSetPassword() {
	created := s.createUser(EMAIL)

	err := s.repository.SetPassword(context.Background(), created.ID, user.PasswordHash("new-hash"), NOW)
	s.Nil(err)

	u, err := s.repository.GetByID(context.Background(), created.ID)
	s.Nil(err)
	s.Equal(user.PasswordHash("new-hash"), u.PasswordHash)
	s.True(NOW.Equal(u.UpdatedAt.Value))
}

func (s *testUserSuite) TestSetPasswordUnknownUser() {
	err := s.repository.SetPassword(context.Background(), user.ID(42), user.PasswordHash("new-hash"), NOW)

	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testUserSuite) TestUpdate() {
	created := s.createUser(EMAIL)

	u, err := s.repository.Update(context.Background(), user.UpdateUserInput{
		ID:               created.ID,
		DoLastNameUpdate: true,
		LastName:         "Doe",
		DoRoleUpdate:     true,
		Role:             user.RoleAdmin,
		DoActiveUpdate:   true,
		IsActive:         true,
		UpdatedAt:        NOW,
	})

	s.Nil(err)
	s.Equal("Jamie", u.FirstName)
	s.Equal("Doe", u.LastName)
	s.Equal(user.RoleAdmin, u.Role)
	s.True(u.IsActive())
}

func (s *testUserSuite) TestUpdateDuplicateEmail() {
	s.createUser(EMAIL)
	other := s.createUser(ANOTHER_EMAIL)

	_, err := s.repository.Update(context.Background(), user.UpdateUserInput{
		ID:            other.ID,
		DoEmailUpdate: true,
		Email:         c.Email(EMAIL),
		UpdatedAt:     NOW,
	})

	s.True(errors.Is(err, user.ErrEmailAlreadyExists))
}

func (s *testUserSuite) TestDelete() {
	created := s.createUser(EMAIL)

	err := s.repository.Delete(context.Background(), created.ID)
	s.Nil(err)

	_, err = s.repository.GetByID(context.Background(), created.ID)
	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}

func (s *testUserSuite) TestDeleteUnknownUser() {
	err := s.repository.Delete(context.Background(), user.ID(42))

	s.True(errors.Is(err, user.ErrUserDoesNotExist))
}
