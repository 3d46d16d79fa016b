package config

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/priceconv/pkg/converter"
	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

func Load(envFilePath ...string) (*App, error) {
	logger := slog.Default()
	logger.Debug("Loading environment variables")

	// If no specific paths provided, try default .env
	if len(envFilePath) == 0 {
		if err := godotenv.Load(); err != nil {
			logger.Debug("No .env file found in current directory")
		}
		return loadFromEnv()
	}

	// Try each provided path until we find a valid one
	for _, path := range envFilePath {
		foundPath, err := FindEnvFile(path)
		if err != nil {
			logger.Debug("Environment file not found", "path", path, "error", err)
			continue
		}

		logger.Info("Loading environment from file", "path", foundPath)
		if err := godotenv.Load(foundPath); err != nil {
			logger.Error("Failed to load environment file", "path", foundPath, "error", err)
			continue
		}
		return loadFromEnv()
	}

	logger.Debug("No environment files found, using process environment")
	return loadFromEnv()
}

func loadFromEnv() (*App, error) {
	var cfg App
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	slog.Default().Debug("App config loaded",
		"env", cfg.Env,
		"provider", cfg.ExchangeRateProvider.Name,
		"api_url", cfg.ExchangeRateProvider.ApiUrl,
		"http_timeout", cfg.ExchangeRateProvider.HTTPTimeout,
		"pair", cfg.Converter.Base+"/"+cfg.Converter.Quote,
		"fallback_rate", cfg.Converter.FallbackRate,
	)
	return &cfg, nil
}

func (cfg *App) validate() error {
	if !converter.ValidRate(cfg.Converter.FallbackRate) {
		return fmt.Errorf("CONVERTER_FALLBACK_RATE=%v: must be a positive number", cfg.Converter.FallbackRate)
	}
	switch cfg.ExchangeRateProvider.Name {
	case "frankfurter":
	case "stub":
		if !converter.ValidRate(cfg.ExchangeRateProvider.StubRate) {
			return fmt.Errorf("EXCHANGE_RATE_PROVIDER_STUB_RATE=%v: must be a positive number", cfg.ExchangeRateProvider.StubRate)
		}
	default:
		return fmt.Errorf("EXCHANGE_RATE_PROVIDER_NAME=%q: must be one of frankfurter, stub", cfg.ExchangeRateProvider.Name)
	}
	return nil
}
