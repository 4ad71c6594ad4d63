package main

import (
	"os"

	"github.com/sarah-brisson/keyhook-code-test/internal/pkg/logger"
	"github.com/sarah-brisson/keyhook-code-test/internal/server"
)

// @title Employee Directory API
// @version 1.0
// @description JSON API exposing department and employee records with filtering, sorting and pagination

// @host localhost:8080
// @BasePath /api/v1
// @schemes http

func main() {
	srv, err := server.NewServer()
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize server")
		os.Exit(1)
	}

	if err := srv.Run(); err != nil {
		logger.Error().Err(err).Msg("Server execution failed or shutdown encountered errors")
		os.Exit(1)
	}

	logger.Info().Msg("Application finished gracefully.")
	os.Exit(0)
}
