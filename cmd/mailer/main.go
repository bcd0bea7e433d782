package main

import (
	"blog/internal/app/consumers"
	"blog/internal/app/deps"
	"blog/internal/app/services"
	"blog/internal/core/domain/logging"
	"context"
	"os"
	"os/signal"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	defer shutdownDeps()

	services := services.InitServices(deps)
	shutdownConsumers := consumers.InitConsumers(deps, services)

	stopCh, closeCh := createChannel()
	defer closeCh()

	deps.Logger.Info(
		context.Background(),
		"Mailer has started.",
		logging.Entry("queue", deps.Config.EmailQueue),
		logging.Entry("emailTransport", deps.Config.EmailTransport),
	)
	<-stopCh

	deps.Logger.Info(context.Background(), "Stopping mailer.")
	shutdownConsumers()
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
