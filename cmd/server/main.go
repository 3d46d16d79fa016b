package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	_ "github.com/amirasaad/priceconv/cmd/server/swagger"
	"github.com/amirasaad/priceconv/infra/initializer"
	"github.com/amirasaad/priceconv/pkg/config"
	"github.com/amirasaad/priceconv/webapi"
	log "github.com/charmbracelet/log"
)

// @title Price Converter API
// @version 1.0.0
// @description ILS ⇄ CAD price converter with per-weight pricing and live exchange rates
// @termsOfService http://swagger.io/terms/
// @contact.name API Support
// @contact.email fiber@swagger.io
// @license.name MIT
// @license.url https://opensource.org/licenses/MIT
// @host localhost:3000
// @BasePath /
func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	// Builds dependencies and starts the first rate fetch
	a, err := initializer.InitializeApp(context.Background(), cfg, os.Stderr)
	if err != nil {
		return fmt.Errorf("failed to initialize application: %w", err)
	}
	logger := slog.Default()

	fiberApp := webapi.SetupApp(a)

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	logger.Info("Starting server",
		"env", cfg.Env,
		"address", addr,
		"scheme", cfg.Server.Scheme,
		"pair", a.Pair.String(),
	)

	return fiberApp.Listen(addr)
}
