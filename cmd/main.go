// Package main starts the personal finance ledger API server.
package main

import (
	"github.com/rs/zerolog/log"

	"github.com/ledgerlite/ledgerlite/cmd/httpserver"
	"github.com/ledgerlite/ledgerlite/internal/middleware"
	"github.com/ledgerlite/ledgerlite/pkg/configpkg"
)

func main() {
	config, err := configpkg.Load("./configs")
	if err != nil {
		log.Fatal().Err(err).Msg("cannot load config")
	}

	logger := middleware.CreateLogger(config)

	server, err := httpserver.New(logger, config)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot create server")
	}

	logger.Info().Msg("LEDGER API SERVER HAS STARTED")

	err = server.Engine.Run(config.ServerAddress)
	if err != nil {
		logger.Fatal().Err(err).Msg("cannot start server")
	}
}
