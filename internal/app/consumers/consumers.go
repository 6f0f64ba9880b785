package consumers

import (
	"context"
	"pagecms/internal/app/deps"
	dl "pagecms/internal/core/domain/logging"
	outgoingmail "pagecms/internal/rabbitmq/consumers/outgoing_mail"
)

func initOutgoingMailConsumer(deps *deps.Deps) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.RabbitmqOutgoingMailQueue
	outgoingMailConsumer := outgoingmail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		deps.EmailSender,
	)
	if err = outgoingMailConsumer.Consume(); err != nil {
		deps.Logger.Error(
			context.Background(),
			"Could not start RabbitMQ consuming.",
			dl.Entry("err", err),
			dl.Entry("queue", queue),
		)
		panic(err)
	}

	deps.Logger.Info(context.Background(), "Consumer has started.", dl.Entry("queue", queue))
	return func() { rabbitmqChannel.Close() }
}

func InitConsumers(deps *deps.Deps) func() {
	shutdownOutgoingMailConsumer := initOutgoingMailConsumer(deps)

	return func() {
		shutdownOutgoingMailConsumer()
	}
}
