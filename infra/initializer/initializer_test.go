package initializer

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	infra_provider "github.com/amirasaad/priceconv/infra/provider"
	"github.com/amirasaad/priceconv/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(providerName string) *config.App {
	return &config.App{
		Env: "test",
		Log: &config.Log{Format: "text", TimeFormat: time.Kitchen, Prefix: "[test]"},
		ExchangeRateProvider: &config.ExchangeRateProvider{
			Name:        providerName,
			ApiUrl:      "http://127.0.0.1:0",
			HTTPTimeout: time.Second,
			StubRate:    0.5,
		},
		Converter: &config.Converter{Base: "ILS", Quote: "CAD", FallbackRate: 0.4366},
	}
}

func TestNewRateFetcher(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	p, err := NewRateFetcher(testConfig("frankfurter"), logger)
	require.NoError(t, err)
	assert.IsType(t, &infra_provider.FrankfurterProvider{}, p)

	p, err = NewRateFetcher(testConfig("stub"), logger)
	require.NoError(t, err)
	assert.Equal(t, "stub", p.Name())

	_, err = NewRateFetcher(testConfig("ecb"), logger)
	require.Error(t, err)
}

func TestInitializeApp_StartupFetch(t *testing.T) {
	var logs bytes.Buffer
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	a, err := InitializeApp(context.Background(), testConfig("stub"), &logs)
	require.NoError(t, err)
	a.Widget.Wait()

	assert.InDelta(t, 0.5, a.Widget.State().Rate, 1e-12)
	assert.Contains(t, logs.String(), "Exchange rate updated")
}

func TestInitializeApp_StartupFetchFailureKeepsFallback(t *testing.T) {
	defaultLogger := slog.Default()
	t.Cleanup(func() { slog.SetDefault(defaultLogger) })

	a, err := InitializeApp(context.Background(), testConfig("frankfurter"), io.Discard)
	require.NoError(t, err)
	a.Widget.Wait()

	s := a.Widget.State()
	assert.InDelta(t, 0.4366, s.Rate, 1e-12)
	assert.NotEmpty(t, s.Error)
}
