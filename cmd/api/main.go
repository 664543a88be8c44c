// Command api starts the scenario engine's HTTP server: chi router, cors
// middleware, and the six scenario endpoints backed by an in-memory store.
// Entrypoint wiring follows the teacher's cmd/api/main.go (godotenv.Load
// before reading configuration), adapted from raw http.HandleFunc and
// fmt.Println logging to chi routing and structured zap logging per
// SPEC_FULL.md §2.2 and §2.4.
package main

import (
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"valuationengine/internal/config"
	"valuationengine/pkg/api/scenario"
	"valuationengine/pkg/store"
)

func main() {
	godotenv.Load()

	cfg := config.Load()

	logger, err := buildLogger(cfg.LogLevel)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	scenarioStore := store.New()
	handlers := scenario.NewHandler(scenarioStore, logger)

	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           300,
	}))

	handlers.Routes(r)

	logger.Info("scenario engine starting", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, r); err != nil {
		logger.Error("server failed to start", zap.Error(err))
		os.Exit(1)
	}
}

func buildLogger(level string) (*zap.Logger, error) {
	zapCfg := zap.NewProductionConfig()
	zapLevel, err := zap.ParseAtomicLevel(level)
	if err != nil {
		zapLevel = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	zapCfg.Level = zapLevel
	return zapCfg.Build()
}
