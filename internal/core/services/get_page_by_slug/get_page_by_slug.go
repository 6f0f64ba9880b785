package getpagebyslug

import (
	"context"
	"errors"
	c "pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/page"
	"pagecms/internal/core/services"
)

type Input struct {
	Slug string
}

type Result struct {
	Page page.Page
}

type service struct {
	log            logging.Logger
	pageRepository page.Repository
}

func New(
	log logging.Logger,
	pageRepository page.Repository,
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if pageRepository == nil {
		panic(e.NewNilArgumentError("pageRepository"))
	}
	return &service{
		log:            log,
		pageRepository: pageRepository,
	}
}

// Run looks a page up by slug for the public site. Unpublished pages are
// reported as missing.
func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	p, err := s.pageRepository.GetPublishedBySlug(ctx, input.Slug)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, page.ErrPageDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not get page by slug.",
			logging.Entry("slug", input.Slug),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}
	return Result{Page: p}, nil
}
