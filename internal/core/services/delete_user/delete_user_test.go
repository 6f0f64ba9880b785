package deleteuser

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/user"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func setUp(t *testing.T) (*user.FakeUserRepository, user.User, user.User) {
	t.Helper()
	repository := user.NewFakeUserRepository()
	ctx := context.Background()
	admin, err := repository.Create(ctx, user.CreateUserInput{
		Email:     c.Email("admin@test.test"),
		Role:      user.RoleAdmin,
		CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)
	member, err := repository.Create(ctx, user.CreateUserInput{
		Email:     c.Email("member@test.test"),
		Role:      user.RoleMember,
		CreatedAt: time.Now().UTC(),
	})
	require.Nil(t, err)
	return repository, admin, member
}

func TestSuccess(t *testing.T) {
	repository, admin, member := setUp(t)
	service := New(logging.NewFakeLogger(), repository)

	_, err := service.Run(context.Background(), Input{User: admin, UserID: member.ID})

	require.Nil(t, err)
	_, err = repository.GetByID(context.Background(), member.ID)
	require.True(t, errors.Is(err, user.ErrUserDoesNotExist))
}

func TestCannotDeleteSelf(t *testing.T) {
	repository, admin, _ := setUp(t)
	service := New(logging.NewFakeLogger(), repository)

	_, err := service.Run(context.Background(), Input{User: admin, UserID: admin.ID})

	require.True(t, errors.Is(err, user.ErrPermissionDenied))
	_, err = repository.GetByID(context.Background(), admin.ID)
	require.Nil(t, err)
}

func TestUnknownUser(t *testing.T) {
	repository, admin, _ := setUp(t)
	service := New(logging.NewFakeLogger(), repository)

	_, err := service.Run(context.Background(), Input{User: admin, UserID: user.ID(42)})

	require.True(t, errors.Is(err, user.ErrUserDoesNotExist))
}
