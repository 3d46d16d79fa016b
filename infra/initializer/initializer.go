package initializer

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	infra_eventbus "github.com/amirasaad/priceconv/infra/eventbus"
	infra_provider "github.com/amirasaad/priceconv/infra/provider"
	"github.com/amirasaad/priceconv/pkg/app"
	"github.com/amirasaad/priceconv/pkg/config"
	"github.com/amirasaad/priceconv/pkg/currency"
	"github.com/amirasaad/priceconv/pkg/provider"
)

// InitializeDependencies initializes all the application dependencies.
// Logs are written to logOut.
func InitializeDependencies(cfg *config.App, logOut io.Writer) (
	deps *app.Deps,
	err error,
) {
	deps = &app.Deps{}
	logger := SetupLogger(cfg.Log, logOut)
	deps.Logger = logger

	deps.RateFetcher, err = NewRateFetcher(cfg, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize exchange rate provider: %w", err)
	}

	deps.EventBus = infra_eventbus.NewWithMemory(logger)
	return deps, nil
}

// NewRateFetcher selects the rate provider named in the configuration.
func NewRateFetcher(cfg *config.App, logger *slog.Logger) (provider.RateFetcher, error) {
	providers := map[string]func() (provider.RateFetcher, error){
		"frankfurter": func() (provider.RateFetcher, error) {
			return infra_provider.NewFrankfurterProvider(cfg.ExchangeRateProvider, logger), nil
		},
		"stub": func() (provider.RateFetcher, error) {
			pair, err := currency.NewPair(cfg.Converter.Base, cfg.Converter.Quote)
			if err != nil {
				return nil, err
			}
			return infra_provider.NewStubRateProvider(pair, cfg.ExchangeRateProvider.StubRate), nil
		},
	}
	factory, ok := providers[cfg.ExchangeRateProvider.Name]
	if !ok {
		return nil, fmt.Errorf("unknown exchange rate provider %q", cfg.ExchangeRateProvider.Name)
	}
	p, err := factory()
	if err != nil {
		return nil, err
	}
	logger.Info("Exchange rate provider ready", "provider", p.Name())
	return p, nil
}

// InitializeApp builds the application and performs the startup fetch in the
// background. A failed startup fetch only leaves the fallback rate in place.
func InitializeApp(ctx context.Context, cfg *config.App, logOut io.Writer) (*app.App, error) {
	deps, err := InitializeDependencies(cfg, logOut)
	if err != nil {
		return nil, err
	}
	a, err := app.New(deps, cfg)
	if err != nil {
		return nil, err
	}
	if err := a.Widget.TriggerRefresh(ctx); err != nil {
		deps.Logger.Warn("Startup rate refresh not started", "error", err)
	}
	return a, nil
}
