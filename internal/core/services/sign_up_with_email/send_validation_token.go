package signupwithemail

import (
	"context"
	"errors"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/core/services"
)

type serviceWithValidationTokenSending struct {
	log    logging.Logger
	sender user.ValidationTokenSender
	inner  services.Service[Input, Result]
}

func NewWithValidationTokenSending(
	log logging.Logger,
	sender user.ValidationTokenSender,
	inner services.Service[Input, Result],
) services.Service[Input, Result] {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if sender == nil {
		panic(e.NewNilArgumentError("sender"))
	}
	if inner == nil {
		panic(e.NewNilArgumentError("inner"))
	}
	return &serviceWithValidationTokenSending{
		log:    log,
		sender: sender,
		inner:  inner,
	}
}

// Run sends the activation email strictly after the registration has
// committed. A dispatch failure does not undo the registration, it is
// reported as ErrTokenSendingFailed alongside the successful result.
func (s *serviceWithValidationTokenSending) Run(ctx context.Context, input Input) (result Result, err error) {
	result, err = s.inner.Run(ctx, input)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Info(ctx, "Skip sending validation token.", logging.Entry("err", err))
		return result, err
	}

	err = s.sender.SendValidationToken(ctx, result.User, result.ValidationToken)
	if errors.Is(err, context.Canceled) {
		return result, err
	}
	if err != nil {
		s.log.Error(
			ctx,
			"Could not send validation token.",
			logging.Entry("userId", result.User.ID),
			logging.Entry("err", err),
		)
		return result, user.ErrTokenSendingFailed
	}

	s.log.Info(
		ctx,
		"Validation token has been sent to the user.",
		logging.Entry("userId", result.User.ID),
	)
	return result, nil
}
