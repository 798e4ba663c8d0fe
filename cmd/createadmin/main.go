// Command createadmin provisions an admin account for the management
// dashboard: createadmin <username> <password>
package main

import (
	"context"
	"fmt"
	"os"

	"github.com/mjdigitalmedia/agency-api/internal/config"
	"github.com/mjdigitalmedia/agency-api/internal/database"
	"github.com/mjdigitalmedia/agency-api/internal/logger"
	"github.com/mjdigitalmedia/agency-api/internal/repository"
	"github.com/mjdigitalmedia/agency-api/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	if len(os.Args) != 3 {
		return fmt.Errorf("usage: createadmin <username> <password>")
	}
	username, password := os.Args[1], os.Args[2]

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging, &cfg.App)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer func() { _ = log.Sync() }()

	db, err := database.NewDatabase(&cfg.Database)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	userRepo := repository.NewUserRepository(db)
	authService := service.NewAuthService(userRepo, nil, log)

	user, err := authService.Register(context.Background(), username, password)
	if err != nil {
		return err
	}

	fmt.Printf("Admin account created: %s (%s)\n", user.Username, user.ID)
	return nil
}
