package main

import (
	"context"
	"os"
	"os/signal"
	"time"

	"github.com/cheikhn414/currency-converter/controller/converter"
	"github.com/cheikhn414/currency-converter/controller/currency"
	"github.com/cheikhn414/currency-converter/metrics"
	"github.com/cheikhn414/currency-converter/service/conversion"
	"github.com/cheikhn414/currency-converter/service/provider"
	"github.com/cheikhn414/currency-converter/service/rates"
	"github.com/cheikhn414/currency-converter/storage"
	"github.com/cheikhn414/currency-converter/storage/cache"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"gopkg.in/yaml.v3"
)

const (
	defaultPrimaryEndpoint  = "https://api.fxratesapi.com/latest?base="
	defaultFallbackEndpoint = "https://api.exchangerate-api.com/v4/latest/"
	defaultRequestTimeout   = 10 * time.Second
)

func main() {
	content, err := os.ReadFile("config.yaml")
	if err != nil {
		log.Error().Err(err).Msg("unable to read configuration file")
		os.Exit(1)
	}

	cfg := Config{}
	if err := yaml.Unmarshal(content, &cfg); err != nil {
		log.Error().Err(err).Msg("unable to parse configuration file")
		os.Exit(1)
	}

	if err := New(cfg); err != nil {
		log.Error().Err(err).Msg("unable to initialize application")
		os.Exit(1)
	}
}

func New(cfg Config) error {
	a := Application{cfg: cfg}
	return a.init()
}

type Application struct {
	cfg       Config                // application configuration
	fiberApp  *fiber.App            // underlying fiber application
	cache     storage.Cache         // cache provider for rates
	exchange  *rates.Service        // exchange rates orchestrator
	converter *conversion.Converter // conversion calculator
	stopC     chan os.Signal        // handle interrupt for clean up
}

func (a *Application) init() error {
	// amounts and rates serialize as JSON numbers, matching the providers
	decimal.MarshalJSONWithoutQuotes = true

	a.fiberApp = fiber.New()
	a.fiberApp.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET, POST, DELETE, OPTIONS",
		AllowHeaders: "Content-Type",
	}))

	a.stopC = make(chan os.Signal)
	signal.Notify(a.stopC, os.Interrupt)

	if a.cfg.PrimaryEndpoint == "" {
		a.cfg.PrimaryEndpoint = defaultPrimaryEndpoint
	}
	if a.cfg.FallbackEndpoint == "" {
		a.cfg.FallbackEndpoint = defaultFallbackEndpoint
	}

	timeout := time.Duration(a.cfg.RequestTimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = defaultRequestTimeout
	}

	primary, err := provider.New("primary", a.cfg.PrimaryEndpoint, timeout)
	if err != nil {
		log.Error().Err(err).Msg("unable to create primary provider")
		return err
	}

	fallback, err := provider.New("fallback", a.cfg.FallbackEndpoint, timeout)
	if err != nil {
		log.Error().Err(err).Msg("unable to create fallback provider")
		return err
	}

	a.cache = cache.New(time.Duration(a.cfg.CacheTTLMinutes) * time.Minute)

	m := metrics.New(prometheus.DefaultRegisterer)
	a.exchange = rates.New(a.cache, m, a.cfg.Retries, primary, fallback)
	a.converter = conversion.New(a.exchange, m)

	if len(a.cfg.WarmBases) > 0 {
		go a.exchange.Warm(context.Background(), a.cfg.WarmBases)
	}

	a.buildRoutes()
	go a.stop()
	log.Debug().Msg("preparing fiber http server")

	if err := a.fiberApp.Listen(a.cfg.HTTPPort); err != nil {
		log.Error().Err(err).Msg("unable to start http server")
		return err
	}

	return nil
}

func (a *Application) buildRoutes() {
	conv := converter.New(a.converter)

	a.fiberApp.Get("/api/convert", conv.Convert)
	a.fiberApp.Get("/api/currencies", currency.List)
	a.fiberApp.Delete("/api/cache", conv.ClearCache)
	a.fiberApp.Get("/metrics", adaptor.HTTPHandler(promhttp.Handler()))
}

func (a *Application) stop() {
	<-a.stopC
	a.fiberApp.Shutdown()
	os.Exit(0)
}
