package main

import (
	"fmt"
	"log"

	"github.com/blaisecz/schedule-builder/internal/config"
	"github.com/blaisecz/schedule-builder/internal/logging"
	"github.com/blaisecz/schedule-builder/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg := config.Load()

	logger, err := logging.New(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()

	db, err := config.NewDatabase(cfg)
	if err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}

	if err := seed.Run(db); err != nil {
		logger.Fatal("Failed to seed database", zap.Error(err))
	}

	fmt.Println("\nSample schedule IDs for testing:")
	for _, id := range []string{seed.WorkWeekID, seed.ExamWeekID, seed.NightShiftID} {
		fmt.Printf("  %s\n", id)
	}
}
