package app

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/pulsopublico/pulso-api/external/postgrest"
	"github.com/pulsopublico/pulso-api/internal/config"
	cacherepo "github.com/pulsopublico/pulso-api/internal/infrastructure/repository/cache"
	"github.com/pulsopublico/pulso-api/internal/infrastructure/repository/supabase"
	"github.com/pulsopublico/pulso-api/internal/interfaces/httpapi"
	basecache "github.com/pulsopublico/pulso-api/internal/platform/cache"
	"github.com/pulsopublico/pulso-api/internal/platform/logging"
	"github.com/pulsopublico/pulso-api/internal/platform/resilience"
	"github.com/pulsopublico/pulso-api/internal/usecase"
)

func NewHTTPServer(cfg config.Config, logger *slog.Logger, zapLogger *logging.Logger) (*http.Server, error) {
	if logger == nil {
		logger = slog.Default()
	}

	client := postgrest.NewClient(postgrest.ClientConfig{
		BaseURL:    cfg.SupabaseURL,
		ServiceKey: cfg.SupabaseServiceKey,
		Timeout:    cfg.SupabaseTimeout,
		MaxRetries: cfg.SupabaseMaxRetries,
		Logger:     zapLogger,
		CircuitBreaker: resilience.CircuitBreakerConfig{
			Enabled:          cfg.SupabaseCircuitEnabled,
			FailureThreshold: cfg.SupabaseCircuitFailures,
			OpenTimeout:      cfg.SupabaseCircuitOpenTimeout,
			HalfOpenMaxReq:   cfg.SupabaseCircuitHalfOpenReq,
		},
	})
	if !client.Configured() {
		logger.Warn("supabase backend not configured: data routes will answer with a diagnostic",
			"hint", "set SUPABASE_URL and SUPABASE_SERVICE_KEY",
		)
	}

	var store *basecache.Store
	if cfg.CacheEnabled {
		store = basecache.NewStore(cfg.CacheTTL)
	}

	clubRepo := cacherepo.NewClubRepository(supabase.NewClubRepository(client), store)
	rankingRepo := supabase.NewRankingRepository(client, cfg.RankingResources)
	metricsRepo := supabase.NewMetricsRepository(client)
	sourceRepo := cacherepo.NewSourceRepository(supabase.NewSourceRepository(client), store)

	handler := httpapi.NewHandler(
		usecase.NewSnapshotService(clubRepo, rankingRepo),
		usecase.NewSeriesService(clubRepo, rankingRepo),
		usecase.NewSourcesService(clubRepo, rankingRepo, metricsRepo, sourceRepo),
		usecase.NewRankingService(rankingRepo),
		logger,
	)
	router := httpapi.NewRouter(handler, logger, cfg.CORSAllowedOrigins)

	server := &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}

	if server.Addr == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	return server, nil
}
