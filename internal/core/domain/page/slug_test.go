package page

import (
	"context"
	"testing"

	c "pagecms/internal/core/domain/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	cases := []struct {
		id       string
		title    string
		expected string
	}{
		{id: "simple", title: "About", expected: "about"},
		{id: "spaces", title: "About Our Team", expected: "about-our-team"},
		{id: "punctuation", title: "Hello, World!", expected: "hello-world"},
		{id: "accents", title: "Café & Thé", expected: "caf-th"},
		{id: "dash runs", title: "a -- b", expected: "a-b"},
		{id: "surrounding junk", title: "  ?About?  ", expected: "about"},
		{id: "digits kept", title: "Top 10 Pages", expected: "top-10-pages"},
		{id: "empty", title: "???", expected: ""},
	}
	for _, c := range cases {
		c := c
		t.Run(c.id, func(t *testing.T) {
			assert.Equal(t, c.expected, Slugify(c.title))
		})
	}
}

func TestFreeSlug(t *testing.T) {
	repository := NewFakeRepository()
	for _, slug := range []string{"about", "about-1", "about-2"} {
		_, err := repository.Create(context.Background(), CreateInput{Title: "About", Slug: slug})
		require.Nil(t, err)
	}

	slug, err := FreeSlug(context.Background(), repository, "about", c.Optional[ID]{})

	require.Nil(t, err)
	assert.Equal(t, "about-3", slug)
}

func TestFreeSlugBaseIsFree(t *testing.T) {
	repository := NewFakeRepository()

	slug, err := FreeSlug(context.Background(), repository, "about", c.Optional[ID]{})

	require.Nil(t, err)
	assert.Equal(t, "about", slug)
}

func TestFreeSlugExcludesOwnPage(t *testing.T) {
	repository := NewFakeRepository()
	created, err := repository.Create(context.Background(), CreateInput{Title: "About", Slug: "about"})
	require.Nil(t, err)

	slug, err := FreeSlug(context.Background(), repository, "about", c.NewOptional(created.ID, true))

	require.Nil(t, err)
	assert.Equal(t, "about", slug)
}

func TestFreeSlugEmptyBase(t *testing.T) {
	repository := NewFakeRepository()

	slug, err := FreeSlug(context.Background(), repository, "", c.Optional[ID]{})

	require.Nil(t, err)
	assert.Equal(t, "page", slug)
}
