package main

import (
	"context"
	"os"
	"os/signal"
	"pagecms/internal/app/consumers"
	"pagecms/internal/app/deps"
	"syscall"
)

func main() {
	deps, shutdownDeps := deps.InitDeps()
	log := deps.Logger
	defer shutdownDeps()

	shutdownConsumers := consumers.InitConsumers(deps)
	defer shutdownConsumers()

	stopCh, closeCh := createChannel()
	defer closeCh()

	log.Info(context.Background(), "Outgoing mail worker has started.")
	<-stopCh
	log.Info(context.Background(), "Stopping outgoing mail worker.")
}

func createChannel() (chan os.Signal, func()) {
	stopCh := make(chan os.Signal, 1)
	signal.Notify(stopCh, os.Interrupt, syscall.SIGTERM, syscall.SIGINT)

	return stopCh, func() {
		close(stopCh)
	}
}
