package outgoingmail

import (
	"context"
	"pagecms/internal/core/domain/common"
	e "pagecms/internal/core/domain/errors"
	"pagecms/internal/core/domain/logging"
	"pagecms/internal/core/domain/user"
	"pagecms/internal/rabbitmq"
	"pagecms/internal/rabbitmq/schema"

	"github.com/rabbitmq/amqp091-go"
)

// MailSender delivers both kinds of account email. The SES sender
// satisfies it.
type MailSender interface {
	user.ValidationTokenSender
	user.PasswordResetTokenSender
}

type Consumer struct {
	log        logging.Logger
	channel    *rabbitmq.Channel
	queue      string
	mailSender MailSender
}

func New(
	log logging.Logger,
	channel *rabbitmq.Channel,
	queue string,
	mailSender MailSender,
) *Consumer {
	if log == nil {
		panic(e.NewNilArgumentError("log"))
	}
	if channel == nil {
		panic(e.NewNilArgumentError("channel"))
	}
	if queue == "" {
		panic("queue name must not be empty")
	}
	if mailSender == nil {
		panic(e.NewNilArgumentError("mailSender"))
	}

	return &Consumer{log: log, channel: channel, queue: queue, mailSender: mailSender}
}

func (c *Consumer) Consume() error {
	deliveries, err := c.channel.Consume(c.queue, "", false, false, false, false, nil)
	if err != nil {
		c.log.Error(context.Background(), "Could not start consuming.", logging.Entry("err", err))
		return err
	}

	go func() {
		for delivery := range deliveries {
			mail := &schema.OutgoingMail{}
			if err := mail.Unmarshal(delivery.Body); err != nil {
				c.log.Error(
					context.Background(),
					"Could not unmarshal outgoing mail.",
					logging.Entry("err", err),
					logging.Entry("delivery", delivery),
				)
				c.Ack(delivery)
				continue
			}

			c.log.Info(
				context.Background(),
				"Got outgoing mail.",
				logging.Entry("kind", mail.Kind),
			)
			if err := c.send(context.Background(), mail); err != nil {
				c.log.Error(
					context.Background(),
					"Could not send mail.",
					logging.Entry("kind", mail.Kind),
					logging.Entry("err", err),
				)
			}
			c.Ack(delivery)
		}
	}()
	return nil
}

func (c *Consumer) send(ctx context.Context, mail *schema.OutgoingMail) error {
	u := user.User{Email: common.NewEmail(mail.Email), FirstName: mail.FirstName}
	switch mail.Kind {
	case schema.MailKindValidation:
		return c.mailSender.SendValidationToken(ctx, u, user.TokenValue(mail.Token))
	case schema.MailKindPasswordReset:
		return c.mailSender.SendPasswordResetToken(ctx, u, user.TokenValue(mail.Token))
	default:
		c.log.Warning(ctx, "Unknown mail kind.", logging.Entry("kind", mail.Kind))
		return nil
	}
}

func (c *Consumer) Ack(delivery amqp091.Delivery) {
	if err := delivery.Ack(true); err != nil {
		c.log.Error(context.Background(), "Could not ACK AMQP message.", logging.Entry("err", err))
	}
}
