package getpagebyslug

import (
	"context"
	"errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/page"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func newService(t *testing.T) (*page.FakeRepository, *service) {
	t.Helper()
	repository := page.NewFakeRepository()
	s := New(logging.NewFakeLogger(), repository).(*service)
	return repository, s
}

func TestPublishedPageIsFound(t *testing.T) {
	repository, service := newService(t)
	created, err := repository.Create(context.Background(), page.CreateInput{
		Title:       "About",
		Slug:        "about",
		Content:     "<p>About</p>",
		IsPublished: true,
		CreatedAt:   time.Now().UTC(),
	})
	require.Nil(t, err)

	result, err := service.Run(context.Background(), Input{Slug: "about"})

	require.Nil(t, err)
	require.Equal(t, created, result.Page)
}

func TestUnpublishedPageIsMissing(t *testing.T) {
	repository, service := newService(t)
	_, err := repository.Create(context.Background(), page.CreateInput{
		Title: "Draft",
		Slug:  "draft",
	})
	require.Nil(t, err)

	_, err = service.Run(context.Background(), Input{Slug: "draft"})

	require.True(t, errors.Is(err, page.ErrPageDoesNotExist))
}

func TestUnknownSlug(t *testing.T) {
	_, service := newService(t)

	_, err := service.Run(context.Background(), Input{Slug: "no-such-page"})

	require.True(t, errors.Is(err, page.ErrPageDoesNotExist))
}
