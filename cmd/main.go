// Package main is the entry point for the shiprate-service application.
//
// @title           ShipRate Service API
// @version         1.0.0
// @description     Live USPS and UPS shipping rates for storefront checkouts, quoted through ShipStation.
//
//	Carts are consolidated into one package, quoted per carrier and filtered by the services the store has enabled.
//
// @termsOfService  http://swagger.io/terms/
//
// @contact.name   API Support
// @contact.email  support@example.com
// @contact.url    https://github.com/guttosm/shiprate-service
//
// @license.name  MIT
// @license.url   https://opensource.org/licenses/MIT
//
// @host      localhost:8080
// @BasePath  /
//
// @securityDefinitions.apikey  ApiKeyAuth
// @in                          header
// @name                        X-API-Key
// @description                 Administrator API key. Required for every /api/admin route.
//
// @tag.name        Rates
// @tag.description Checkout rate calculation
//
// @tag.name        Admin
// @tag.description Settings, credential checks and service discovery
//
// @tag.name        Health
// @tag.description Health check endpoints
package main

import (
	"context"
	"errors"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	_ "github.com/guttosm/shiprate-service/docs" // swagger docs

	"github.com/guttosm/shiprate-service/config"
	"github.com/guttosm/shiprate-service/internal/app"
)

const closeTimeout = 10 * time.Second

func main() {
	envErr := godotenv.Load()

	cfg := config.Load()
	app.InitializeLogger(cfg.Log)

	if envErr != nil && !errors.Is(envErr, fs.ErrNotExist) {
		log.Warn().Err(envErr).Msg("Failed to read .env file")
	}

	application := app.InitializeApp(cfg)
	server := app.NewServer(application.Router, cfg.Server.Port, cfg.Server.RequestTimeout)

	runErr := server.Run(context.Background())

	ctx, cancel := context.WithTimeout(context.Background(), closeTimeout)
	if err := application.Close(ctx); err != nil {
		log.Error().Err(err).Msg("Failed to release connections")
	}
	cancel()

	if runErr != nil {
		log.Fatal().Err(runErr).Msg("Server error")
	}
}
