package updatepage

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
	"pagecms/internal/core/services/auth"
	"time"
)

type Input struct {
	User        user.User
	PageID      page.ID
	Title       c.Optional[string]
	Slug        c.Optional[string]
	Content     c.Optional[string]
	Meta        c.Optional[page.Meta]
	IsPublished c.Optional[bool]
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct {
	Page page.Page
}

type service struct {
	log            logging.Logger
	pageRepository page.Repository
	now            func() time.Time
}

func New(
	log logging.Logger,
	pageRepository page.Repository,
	now func() time.Time,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if pageRepository == nil {
		panic(e.NewNilArgumentError("pageRepository"))
	}
	if now == nil {
		panic(e.NewNilArgumentError("now"))
	}
	return &service{
		log:            log,
		pageRepository: pageRepository,
		now:            now,
	}
}

// Run applies the requested field updates. A new slug is probed against
// every other page, the page keeping its current slug is never a conflict.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	updateInput := page.UpdateInput{
		ID:        input.PageID,
		UpdatedAt: s.now(),
	}
	if input.Title.IsPresent {
		updateInput.DoTitleUpdate = true
		updateInput.Title = input.Title.Value
	}
	if input.Content.IsPresent {
		updateInput.DoContentUpdate = true
		updateInput.Content = input.Content.Value
	}
	if input.Meta.IsPresent {
		updateInput.DoMetaUpdate = true
		updateInput.Meta = input.Meta.Value
	}
	if input.IsPublished.IsPresent {
		updateInput.DoIsPublishedUpdate = true
		updateInput.IsPublished = input.IsPublished.Value
	}
	if input.Slug.IsPresent {
		base := page.Slugify(input.Slug.Value)
		slug, err := page.FreeSlug(ctx, s.pageRepository, base, c.NewOptional(input.PageID, true))
		if errors.Is(err, context.Canceled) {
			return result, err
		}
		if err != nil {
			s.log.Error(
				ctx,
				"Could not find a free slug.",
				logging.Entry("pageId", input.PageID),
				logging.Entry("base", base),
				logging.Entry("err", err),
			)
			return result, c.ErrStorage
		}
		updateInput.DoSlugUpdate = true
		updateInput.Slug = slug
	}

	updatedPage, err := s.pageRepository.Update(ctx, updateInput)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, page.ErrPageDoesNotExist) {
		return result, err
	}
	if errors.Is(err, page.ErrSlugAlreadyExists) {
		s.log.Info(
			ctx,
			"Slug has been taken concurrently.",
			logging.Entry("pageId", input.PageID),
		)
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not update page.",
			logging.Entry("pageId", input.PageID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	s.log.Info(
		ctx,
		"Page has been updated.",
		logging.Entry("pageId", updatedPage.ID),
		logging.Entry("slug", updatedPage.Slug),
	)
	return Result{Page: updatedPage}, nil
}
