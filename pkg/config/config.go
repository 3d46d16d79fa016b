package config

import (
	"time"
)

type Log struct {
	Level      int    `envconfig:"LEVEL" default:"0"`
	Format     string `envconfig:"FORMAT" default:"text"`
	TimeFormat string `envconfig:"TIME_FORMAT" default:"2006-01-02 15:04:05"`
	Prefix     string `envconfig:"PREFIX" default:"[priceconv]"`
}

type Server struct {
	Scheme string `envconfig:"SCHEME" default:"http"`
	Host   string `envconfig:"HOST" default:"localhost"`
	Port   int    `envconfig:"PORT" default:"3000"`
}

type RateLimit struct {
	MaxRequests int           `envconfig:"MAX_REQUESTS" default:"100"`
	Window      time.Duration `envconfig:"WINDOW" default:"1m"`
}

// ExchangeRateProvider selects and configures the live rate source.
// Name is "frankfurter" or "stub"; the stub answers with StubRate and never
// touches the network.
type ExchangeRateProvider struct {
	Name        string        `envconfig:"NAME" default:"frankfurter"`
	ApiUrl      string        `envconfig:"API_URL" default:"https://api.frankfurter.dev/v1"`
	HTTPTimeout time.Duration `envconfig:"HTTP_TIMEOUT" default:"10s"`
	StubRate    float64       `envconfig:"STUB_RATE" default:"0.4366"`
}

type Converter struct {
	Base         string  `envconfig:"BASE" default:"ILS"`
	Quote        string  `envconfig:"QUOTE" default:"CAD"`
	FallbackRate float64 `envconfig:"FALLBACK_RATE" default:"0.4366"`
}

type App struct {
	Env                  string                `envconfig:"APP_ENV" default:"development"`
	Server               *Server               `envconfig:"SERVER"`
	Log                  *Log                  `envconfig:"LOG"`
	RateLimit            *RateLimit            `envconfig:"RATE_LIMIT"`
	ExchangeRateProvider *ExchangeRateProvider `envconfig:"EXCHANGE_RATE_PROVIDER"`
	Converter            *Converter            `envconfig:"CONVERTER"`
}
