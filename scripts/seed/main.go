package main

import (
	"fmt"
	"os"

	"github.com/blaisecz/sleep-diary/internal/config"
	"github.com/blaisecz/sleep-diary/internal/seed"
	"go.uber.org/zap"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := config.NewLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	db, err := config.NewDatabase(cfg, log)
	if err != nil {
		log.Fatal("failed to connect to database", zap.Error(err))
	}

	if err := seed.Run(db, log); err != nil {
		log.Fatal("failed to seed database", zap.Error(err))
	}

	fmt.Println("\nSample user IDs for testing:")
	for _, user := range seed.Users {
		fmt.Printf("  %s (%s)\n", user.ID, user.Timezone)
	}
}
