package createpage

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
	Title       string
	Slug        c.Optional[string]
	Content     string
	Meta        page.Meta
	IsPublished bool
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

// Run creates a page under the first free slug. The requested slug (or the
// one derived from the title) is probed as is, then with "-1", "-2", ...
// appended until an unused one is found.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	base := page.Slugify(input.Title)
	if input.Slug.IsPresent {
		base = page.Slugify(input.Slug.Value)
	}
	slug, err := page.FreeSlug(ctx, s.pageRepository, base, c.Optional[page.ID]{})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not find a free slug.",
			logging.Entry("base", base),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	createdPage, err := s.pageRepository.Create(ctx, page.CreateInput{
		Title:       input.Title,
		Slug:        slug,
		Content:     input.Content,
		Meta:        input.Meta,
		IsPublished: input.IsPublished,
		AuthorID:    c.NewOptional(input.User.ID, true),
		CreatedAt:   s.now(),
	})
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, page.ErrSlugAlreadyExists) {
		// Lost a race for the slug, surface it rather than retry.
		s.log.Info(ctx, "Slug has been taken concurrently.", logging.Entry("slug", slug))
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not create page.",
			logging.Entry("slug", slug),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	s.log.Info(
		ctx,
		"New page has been created.",
		logging.Entry("pageId", createdPage.ID),
		logging.Entry("slug", createdPage.Slug),
	)
	return Result{Page: createdPage}, nil
}
