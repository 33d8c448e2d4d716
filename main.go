package main

import (
	"fmt"
	"os"

	"go.uber.org/zap"

	"trip-planner/config"
	"trip-planner/di"
	"trip-planner/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log := logger.New(cfg)
	defer log.Sync()

	container, err := di.NewContainer(cfg, log)
	if err != nil {
		log.Fatal("Failed to initialize container", zap.Error(err))
	}

	if err := container.ItineraryHttpServer.Start(); err != nil {
		log.Fatal("Server stopped with error", zap.Error(err))
	}
}
