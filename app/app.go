package app

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
	"github.com/sygmaprotocol/sygma-core/observability"
	"github.com/sygmaprotocol/sygma-core/store/lvldb"

	"github.com/sweeplabs/sweep-bridging/api"
	"github.com/sweeplabs/sweep-bridging/api/handlers"
	"github.com/sweeplabs/sweep-bridging/bridge"
	"github.com/sweeplabs/sweep-bridging/bridge/across"
	"github.com/sweeplabs/sweep-bridging/bridge/cbridge"
	"github.com/sweeplabs/sweep-bridging/bridge/hop"
	"github.com/sweeplabs/sweep-bridging/bridge/socket"
	"github.com/sweeplabs/sweep-bridging/bridge/stargate"
	"github.com/sweeplabs/sweep-bridging/config"
	"github.com/sweeplabs/sweep-bridging/health"
	"github.com/sweeplabs/sweep-bridging/jobs"
	"github.com/sweeplabs/sweep-bridging/metrics"
	"github.com/sweeplabs/sweep-bridging/price"
	"github.com/sweeplabs/sweep-bridging/store"
	"github.com/sweeplabs/sweep-bridging/sweep"
)

var Version string

func Run() error {
	var err error

	configFlag := viper.GetString(config.ConfigFlagName)

	var configuration *config.Config
	if strings.ToLower(configFlag) == "env" {
		configuration, err = config.GetConfigFromENV()
		panicOnError(err)
	} else {
		configuration, err = config.GetConfigFromFile(configFlag)
		panicOnError(err)
	}

	logLevel, err := zerolog.ParseLevel(configuration.LogLevel)
	panicOnError(err)
	observability.ConfigureLogger(logLevel, os.Stdout)

	log.Info().Msg("Successfully loaded configuration")

	go func() {
		if err := health.StartHealthEndpoint(configuration.HealthPort, Version); err != nil {
			log.Err(err).Msgf("Failed starting health server")
		}
	}()

	db, err := lvldb.NewLvlDB(configuration.BlockstorePath)
	panicOnError(err)
	bridgeStore := store.NewBridgeStore(db)

	mp, err := observability.InitMetricProvider(context.Background(), configuration.OpenTelemetryCollectorURL)
	panicOnError(err)
	defer func() {
		if err := mp.Shutdown(context.Background()); err != nil {
			log.Error().Msgf("Error shutting down meter provider: %v", err)
		}
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	serviceMetrics, err := metrics.NewServiceMetrics(ctx, mp.Meter("bridge-metric-provider"), configuration.Env, configuration.Id, Version)
	panicOnError(err)

	tokenStore := config.DefaultTokenStore()
	providers := []bridge.Provider{
		across.NewAcrossProvider(across.NewAcrossAPI(), tokenStore),
		stargate.NewStargateProvider(stargate.NewStargateAPI(), tokenStore),
		cbridge.NewCbridgeProvider(cbridge.NewCbridgeAPI()),
		hop.NewHopProvider(hop.NewHopAPI(), tokenStore),
		socket.NewSocketProvider(socket.NewSocketAPI(configuration.Socket.ApiKey)),
	}
	providers = excludeProviders(providers, configuration.ExcludedProviders)

	priceAPI := price.NewCoinmarketcapAPI(
		configuration.Coinmarketcap.Url,
		configuration.Coinmarketcap.ApiKey)
	pricer := price.NewCachedPricer(priceAPI)
	defer pricer.Stop()

	quoteCache := bridge.NewQuoteCache()
	defer quoteCache.Stop()

	aggregator := bridge.NewAggregator(providers, quoteCache, pricer).
		WithMetrics(serviceMetrics.BridgeMetrics)
	builder := bridge.NewBuilder(providers, aggregator)
	tracker := bridge.NewTracker(providers, bridgeStore)
	trackingJobs := jobs.NewTrackingJobs(tracker).
		WithMetrics(serviceMetrics.BridgeMetrics)
	planBuilder := sweep.NewPlanBuilder(aggregator, bridgeStore, tokenStore)

	routesHandler := handlers.NewRoutesHandler(aggregator)
	transactionsHandler := handlers.NewTransactionsHandler(builder)
	statusHandler := handlers.NewStatusHandler(tracker).
		WithTracking(trackingJobs)
	sweepHandler := handlers.NewSweepHandler(planBuilder)
	go api.Serve(ctx, configuration.ApiAddr, routesHandler, transactionsHandler, statusHandler, sweepHandler)

	sysErr := make(chan os.Signal, 1)
	signal.Notify(sysErr,
		syscall.SIGTERM,
		syscall.SIGINT,
		syscall.SIGHUP,
		syscall.SIGQUIT)

	log.Info().Msgf("Started bridge aggregation service. Version: v%s", Version)

	sig := <-sysErr
	log.Info().Msgf("terminating got ` [%v] signal", sig)
	return nil
}

func excludeProviders(providers []bridge.Provider, excluded []string) []bridge.Provider {
	if len(excluded) == 0 {
		return providers
	}

	kept := make([]bridge.Provider, 0, len(providers))
	for _, p := range providers {
		skip := false
		for _, name := range excluded {
			if string(p.Name()) == name {
				skip = true
				break
			}
		}
		if skip {
			log.Info().Msgf("Excluding provider %s", p.Name())
			continue
		}

		kept = append(kept, p)
	}
	return kept
}

func panicOnError(err error) {
	if err != nil {
		panic(err)
	}
}
