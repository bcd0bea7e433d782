package consumers

import (
	"blog/internal/app/deps"
	"blog/internal/app/services"
	dl "blog/internal/core/domain/logging"
	sendemail "blog/internal/rabbitmq/consumers/send_email"
	"context"
)

func initSendEmailConsumer(deps *deps.Deps, services *services.Services) func() {
	rabbitmqChannel, err := deps.Rabbitmq.Channel()
	if err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ channel.", dl.Entry("err", err))
		panic(err)
	}

	queue := deps.Config.EmailQueue
	if err := rabbitmqChannel.DeclareQueue(queue); err != nil {
		deps.Logger.Error(context.Background(), "Could not create RabbitMQ queue.", dl.Entry("err", err))
		panic(err)
	}

	sendEmailConsumer := sendemail.New(
		deps.Logger,
		rabbitmqChannel,
		queue,
		services.SendEmail,
	)
	if err = sendEmailConsumer.Consume(); err != nil {
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

func InitConsumers(deps *deps.Deps, services *services.Services) func() {
	if deps.Rabbitmq == nil {
		panic("RABBITMQ_URL must be set to consume emails")
	}
	shutdownSendEmailConsumer := initSendEmailConsumer(deps, services)

	return func() {
		shutdownSendEmailConsumer()
	}
}
