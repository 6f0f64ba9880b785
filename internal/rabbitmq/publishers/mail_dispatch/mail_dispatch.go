package maildispatch

import (
	"context"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/rabbitmq"
	"pagecms/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// RabbitMQ queues account emails for the mailer worker. It implements
// both token sender interfaces of the user domain.
type RabbitMQ struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	exchange   string
	routingKey string
}

func NewRabbitMQ(log logging.Logger, channel *rabbitmq.Channel, exchange string, routingKey string) *RabbitMQ {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	return &RabbitMQ{log: log, channel: channel, exchange: exchange, routingKey: routingKey}
}

func (s *RabbitMQ) SendValidationToken(ctx context.Context, u user.User, token user.TokenValue) error {
	return s.publish(ctx, schema.OutgoingMail{
		Kind:      schema.MailKindValidation,
		Email:     string(u.Email),
		FirstName: u.FirstName,
		Token:     string(token),
	})
}

func (s *RabbitMQ) SendPasswordResetToken(ctx context.Context, u user.User, token user.TokenValue) error {
	return s.publish(ctx, schema.OutgoingMail{
		Kind:      schema.MailKindPasswordReset,
		Email:     string(u.Email),
		FirstName: u.FirstName,
		Token:     string(token),
	})
}

func (s *RabbitMQ) publish(ctx context.Context, mail schema.OutgoingMail) error {
	body, err := mail.Marshal()
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	err = s.channel.PublishWithContext(ctx, s.exchange, s.routingKey, false, false, amqp091.Publishing{
		ContentType: "application/json",
		Body:        body,
	})
	if err != nil {
		logging.Error(ctx, s.log, err)
		return err
	}
	s.log.Info(
		ctx,
		"AMQP message has been successfully published.",
		logging.Entry("exchange", s.exchange),
		logging.Entry("RK", s.routingKey),
		logging.Entry("kind", mail.Kind),
	)
	return nil
}
