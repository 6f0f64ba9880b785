package createpage

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const (
	TITLE   = "About Our Team"
	CONTENT = "<p>Hello</p>"
)

var NOW time.Time = time.Now().UTC()

var ADMIN = user.User{
	ID:    user.ID(1),
	Email: c.Email("admin@test.test"),
	Role:  user.RoleAdmin,
}

type testSuite struct {
	suite.Suite
	Logger         *logging.FakeLogger
	PageRepository *page.FakeRepository
	Service        services.Service[Input, Result]
}

func (suite *testSuite) SetupTest() {
	suite.Logger = logging.NewFakeLogger()
	suite.PageRepository = page.NewFakeRepository()
	suite.Service = New(
		suite.Logger,
		suite.PageRepository,
		func() time.Time { return NOW },
	)
}

func TestCreatePageService(t *testing.T) {
	suite.Run(t, new(testSuite))
}

func (suite *testSuite) TestSuccess() {
	result, err := suite.Service.Run(context.Background(), Input{
		User:        ADMIN,
		Title:       TITLE,
		Content:     CONTENT,
		Meta:        page.Meta{Description: "about us"},
		IsPublished: true,
	})

	assert := suite.Require()
	assert.Nil(err)
	assert.Equal(TITLE, result.Page.Title)
	assert.Equal("about-our-team", result.Page.Slug)
	assert.Equal(CONTENT, result.Page.Content)
	assert.Equal("about us", result.Page.Meta.Description)
	assert.True(result.Page.IsPublished)
	assert.Equal(ADMIN.ID, result.Page.AuthorID.Value)
	assert.Equal(NOW, result.Page.CreatedAt)
}

func (suite *testSuite) TestExplicitSlugIsSlugified() {
	result, err := suite.Service.Run(context.Background(), Input{
		User:  ADMIN,
		Title: TITLE,
		Slug:  c.NewOptional("My Custom Slug!", true),
	})

	suite.Require().Nil(err)
	suite.Require().Equal("my-custom-slug", result.Page.Slug)
}

func (suite *testSuite) TestTakenSlugGetsSuffixed() {
	ctx := context.Background()
	input := Input{User: ADMIN, Title: TITLE}

	first, err := suite.Service.Run(ctx, input)
	suite.Require().Nil(err)
	second, err := suite.Service.Run(ctx, input)
	suite.Require().Nil(err)
	third, err := suite.Service.Run(ctx, input)
	suite.Require().Nil(err)

	assert := suite.Require()
	assert.Equal("about-our-team", first.Page.Slug)
	assert.Equal("about-our-team-1", second.Page.Slug)
	assert.Equal("about-our-team-2", third.Page.Slug)
}

func (suite *testSuite) TestSuffixSkipsTakenCandidates() {
	ctx := context.Background()
	_, err := suite.Service.Run(ctx, Input{User: ADMIN, Title: "About"})
	suite.Require().Nil(err)
	_, err = suite.Service.Run(ctx, Input{User: ADMIN, Slug: c.NewOptional("about-1", true)})
	suite.Require().Nil(err)

	result, err := suite.Service.Run(ctx, Input{User: ADMIN, Title: "About"})

	suite.Require().Nil(err)
	suite.Require().Equal("about-2", result.Page.Slug)
}

func (suite *testSuite) TestStorageFailure() {
	suite.PageRepository.ReturnError = true

	_, err := suite.Service.Run(context.Background(), Input{User: ADMIN, Title: TITLE})

	suite.Require().True(errors.Is(err, c.ErrStorage))
}
