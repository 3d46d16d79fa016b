package app

import (
	"fmt"
	"log/slog"

	"github.com/amirasaad/priceconv/pkg/config"
	"github.com/amirasaad/priceconv/pkg/currency"
	"github.com/amirasaad/priceconv/pkg/eventbus"
	"github.com/amirasaad/priceconv/pkg/provider"
	"github.com/amirasaad/priceconv/pkg/widget"
)

// Deps contains the infrastructure the application is built from
type Deps struct {
	RateFetcher provider.RateFetcher
	EventBus    eventbus.Bus
	Logger      *slog.Logger
}

type App struct {
	Deps   *Deps
	Config *config.App
	Pair   currency.Pair
	Widget *widget.Widget
}

func New(deps *Deps, cfg *config.App) (*App, error) {
	pair, err := currency.NewPair(cfg.Converter.Base, cfg.Converter.Quote)
	if err != nil {
		return nil, fmt.Errorf("invalid converter pair: %w", err)
	}
	w, err := widget.New(deps.RateFetcher, deps.EventBus, pair, cfg.Converter.FallbackRate, deps.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create widget: %w", err)
	}
	return &App{
		Deps:   deps,
		Config: cfg,
		Pair:   pair,
		Widget: w,
	}, nil
}
