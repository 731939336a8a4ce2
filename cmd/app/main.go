package main

//go:generate go run github.com/swaggo/swag/cmd/swag init -g cmd/app/main.go -d ../../ -o ../../docs

import (
	"courtbook/config"
	"courtbook/di"
	"courtbook/helper"
	"courtbook/shared/logger"

	"github.com/rs/zerolog/log"
)

// @title courtbook API
// @version 1.0
// @description Multi-court reservation service.
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	if cfg.DB.Postgres.AutoMigrate {
		if err := helper.Up(cfg); err != nil {
			log.Fatal().Err(err).Msg("Failed to run database migrations")
		}
	}

	http := di.InitializeService()
	http.Serve()
}
