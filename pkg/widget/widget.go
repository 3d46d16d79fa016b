// Package widget holds the state of the price converter: the raw input, the
// weight-mode and direction flags and the exchange rate, together with the
// derived result. Front ends (terminal, HTTP) call the action methods and
// render View.
package widget

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/amirasaad/priceconv/pkg/converter"
	"github.com/amirasaad/priceconv/pkg/currency"
	"github.com/amirasaad/priceconv/pkg/domain"
	"github.com/amirasaad/priceconv/pkg/domain/events"
	"github.com/amirasaad/priceconv/pkg/eventbus"
	"github.com/amirasaad/priceconv/pkg/provider"
	"github.com/google/uuid"
)

// FallbackWarning is shown while the last fetch failed.
const FallbackWarning = "Could not update live rate. Using fallback."

// State is a snapshot of the widget.
type State struct {
	Input      string    `json:"input"`
	WeightMode bool      `json:"weight_mode"`
	Inverted   bool      `json:"inverted"`
	Rate       float64   `json:"rate"` // quote units per one base unit
	Result     float64   `json:"result"`
	Loading    bool      `json:"loading"`
	Error      string    `json:"error,omitempty"`
	RateSource string    `json:"rate_source"`
	RateDate   string    `json:"rate_date,omitempty"`
	UpdatedAt  time.Time `json:"updated_at,omitzero"`
}

// Direction returns the conversion direction encoded by Inverted.
func (s State) Direction() converter.Direction {
	if s.Inverted {
		return converter.Reverse
	}
	return converter.Forward
}

// Mode returns the conversion mode encoded by WeightMode.
func (s State) Mode() converter.Mode {
	if s.WeightMode {
		return converter.PerWeight
	}
	return converter.Total
}

// Widget is safe for concurrent use.
type Widget struct {
	fetcher provider.RateFetcher
	bus     eventbus.Bus
	pair    currency.Pair
	logger  *slog.Logger

	mu       sync.Mutex
	state    State
	inflight int
	wg       sync.WaitGroup
}

// New creates a widget quoting pair at fallbackRate until a fetch succeeds.
// bus may be nil.
func New(
	fetcher provider.RateFetcher,
	bus eventbus.Bus,
	pair currency.Pair,
	fallbackRate float64,
	logger *slog.Logger,
) (*Widget, error) {
	if !converter.ValidRate(fallbackRate) {
		return nil, fmt.Errorf("fallback rate %v: %w", fallbackRate, domain.ErrInvalidRate)
	}
	w := &Widget{
		fetcher: fetcher,
		bus:     bus,
		pair:    pair,
		logger:  logger.With("widget", pair.String()),
		state: State{
			Rate:       fallbackRate,
			RateSource: "fallback",
		},
	}
	w.recompute()
	return w, nil
}

// Pair returns the base/quote pair the widget converts between.
func (w *Widget) Pair() currency.Pair { return w.pair }

// State returns a snapshot of the current state.
func (w *Widget) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.state
}

// SetInput replaces the raw input text.
func (w *Widget) SetInput(input string) State {
	return w.update(func(s *State) { s.Input = input })
}

// Clear empties the input, which resets the result to zero.
func (w *Widget) Clear() State {
	return w.update(func(s *State) { s.Input = "" })
}

// SetWeightMode switches between total price and per-weight price.
func (w *Widget) SetWeightMode(on bool) State {
	return w.update(func(s *State) { s.WeightMode = on })
}

// SetMode is SetWeightMode expressed as a converter.Mode.
func (w *Widget) SetMode(m converter.Mode) State {
	return w.SetWeightMode(m == converter.PerWeight)
}

// Flip inverts the conversion direction.
func (w *Widget) Flip() State {
	return w.update(func(s *State) { s.Inverted = !s.Inverted })
}

// Quote converts amount at the current rate without touching the state.
func (w *Widget) Quote(amount float64, dir converter.Direction, mode converter.Mode) (result, rate float64) {
	w.mu.Lock()
	rate = w.state.Rate
	w.mu.Unlock()
	return converter.Convert(amount, dir, mode == converter.PerWeight, rate), rate
}

func (w *Widget) update(fn func(s *State)) State {
	w.mu.Lock()
	defer w.mu.Unlock()
	fn(&w.state)
	w.recompute()
	return w.state
}

// recompute derives Result; callers hold mu.
func (w *Widget) recompute() {
	s := &w.state
	s.Result = converter.Convert(converter.ParseAmount(s.Input), s.Direction(), s.WeightMode, s.Rate)
}

// Refresh fetches the live rate once and waits for the answer. On failure the
// previous rate is kept and the warning is set. Calls are not deduplicated.
func (w *Widget) Refresh(ctx context.Context) error {
	w.mu.Lock()
	started := w.beginFetch()
	w.mu.Unlock()
	return w.fetch(ctx, started)
}

// TriggerRefresh is the refresh control: it starts a fetch in the background
// and returns immediately, or returns domain.ErrRefreshInProgress while a
// fetch is pending.
func (w *Widget) TriggerRefresh(ctx context.Context) error {
	w.mu.Lock()
	if w.inflight > 0 {
		w.mu.Unlock()
		return domain.ErrRefreshInProgress
	}
	started := w.beginFetch()
	w.mu.Unlock()

	ctx = context.WithoutCancel(ctx)
	w.wg.Add(1)
	go func() {
		defer w.wg.Done()
		_ = w.fetch(ctx, started) //nolint:errcheck
	}()
	return nil
}

// Wait blocks until every fetch started by TriggerRefresh has finished.
func (w *Widget) Wait() {
	w.wg.Wait()
}

// beginFetch marks a fetch as pending; callers hold mu.
func (w *Widget) beginFetch() events.RateRefreshStarted {
	w.inflight++
	w.state.Loading = true
	w.state.Error = ""
	return events.RateRefreshStarted{FlowEvent: events.FlowEvent{
		FetchID:   uuid.New(),
		From:      w.pair.Base.Code,
		To:        w.pair.Quote.Code,
		Timestamp: time.Now(),
	}}
}

func (w *Widget) fetch(ctx context.Context, started events.RateRefreshStarted) error {
	logger := w.logger.With("fetch_id", started.FetchID)
	logger.Debug("Refreshing exchange rate", "provider", w.fetcher.Name())
	w.emit(ctx, started)

	info, err := w.fetcher.FetchRate(ctx, w.pair.Base.Code, w.pair.Quote.Code)
	if err == nil && info == nil {
		err = domain.ErrRateUnavailable
	} else if err == nil && !converter.ValidRate(info.Rate) {
		err = fmt.Errorf("%w: %v", domain.ErrInvalidRate, info.Rate)
	}

	w.mu.Lock()
	w.inflight--
	w.state.Loading = w.inflight > 0
	flow := started.FlowEvent
	flow.Timestamp = time.Now()
	if err != nil {
		w.state.Error = FallbackWarning
		kept := w.state.Rate
		w.mu.Unlock()

		logger.Error("Failed to refresh exchange rate", "error", err, "kept_rate", kept)
		w.emit(ctx, events.RateRefreshFailed{FlowEvent: flow, Rate: kept, Reason: err.Error()})
		return fmt.Errorf("refresh %s rate: %w", w.pair, err)
	}

	previous := w.state.Rate
	w.state.Rate = info.Rate
	w.state.RateSource = info.Provider
	w.state.RateDate = info.Date
	w.state.UpdatedAt = info.Timestamp
	w.recompute()
	w.mu.Unlock()

	logger.Info("Exchange rate updated", "rate", info.Rate, "previous", previous, "date", info.Date)
	w.emit(ctx, events.RateUpdated{FlowEvent: flow, Rate: info.Rate, Previous: previous, Provider: info.Provider})
	return nil
}

func (w *Widget) emit(ctx context.Context, e events.Event) {
	if w.bus == nil {
		return
	}
	if err := w.bus.Emit(ctx, e); err != nil {
		w.logger.Warn("Failed to emit event", "type", e.Type(), "error", err)
	}
}
