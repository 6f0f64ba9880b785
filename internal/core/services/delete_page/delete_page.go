package deletepage

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
)

type Input struct {
	User   user.User
	PageID page.ID
}

func (i Input) WithAuthenticatedUser(u user.User) auth.Input {
	i.User = u
	return i
}

func (i Input) AuthenticatedUser() user.User {
	return i.User
}

type Result struct{}

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

func (s *service) Run(ctx context.Context, input Input) (result Result, err error) {
	err = s.pageRepository.Delete(ctx, input.PageID)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if errors.Is(err, page.ErrPageDoesNotExist) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not delete page.",
			logging.Entry("pageId", input.PageID),
			logging.Entry("err", err),
		)
		return result, c.ErrStorage
	}

	s.log.Info(ctx, "Page has been deleted.", logging.Entry("pageId", input.PageID))
	return result, nil
}
