package main

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wikizero/twin-gateway/internal/ai"
	"github.com/wikizero/twin-gateway/internal/config"
	"github.com/wikizero/twin-gateway/internal/logger"
	"github.com/wikizero/twin-gateway/internal/twin"
)

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		bootLog := logger.Get()
		bootLog.Fatal().Err(err).Msg("config load failed")
	}

	log, err := logger.New(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		bootLog := logger.Get()
		bootLog.Fatal().Err(err).Msg("logger init failed")
	}

	// --- DB ---
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("db open failed")
	}
	defer db.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := db.PingContext(ctx); err != nil {
		log.Fatal().Err(err).Msg("db ping failed")
	}

	// --- Router ---
	// The chat endpoint is embedded in third-party pages, so preflight must
	// be answered permissively for any origin.
	r := chi.NewRouter()
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders: []string{"Accept", "Authorization", "Content-Type"},
	}))

	// --- Twin module wiring ---
	store := twin.NewPostgresStore(db)
	provider := ai.NewGeminiClient(cfg.GeminiBaseURL, cfg.GeminiModel)
	svc := twin.NewService(store, provider, twin.Options{
		HistoryMaxTurns: cfg.HistoryMaxTurns,
		LookupTimeout:   cfg.StoreLookupTimeout,
		ProviderTimeout: cfg.ProviderTimeout,
	})
	handler := twin.NewHandler(svc, cfg.OwnerAPISecret)

	twin.RegisterRoutes(r, handler)

	// --- health + metrics ---
	r.Get("/ping", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("pong"))
	})
	r.Handle("/metrics", promhttp.Handler())

	log.Info().Str("port", cfg.Port).Msg("listening")
	if err := http.ListenAndServe(":"+cfg.Port, r); err != nil {
		log.Fatal().Err(err).Msg("server error")
	}
}
