package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/healthtrack-labs/healthtrack/internal/adherence"
	"github.com/healthtrack-labs/healthtrack/internal/async"
	"github.com/healthtrack-labs/healthtrack/internal/common"
	"github.com/healthtrack-labs/healthtrack/internal/convert"
	"github.com/healthtrack-labs/healthtrack/internal/export"
	"github.com/healthtrack-labs/healthtrack/internal/llm/openai"
	"github.com/healthtrack-labs/healthtrack/internal/pipeline"
	"github.com/healthtrack-labs/healthtrack/internal/server"
	"github.com/healthtrack-labs/healthtrack/internal/storage"
	"github.com/healthtrack-labs/healthtrack/internal/whatsapp"

	"github.com/google/uuid"

	repo "github.com/healthtrack-labs/healthtrack/internal/repository"
)

func main() {
	// Setup structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			// Remove time and level attributes, keep message and other variables
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	if err := godotenv.Load(); err != nil {
		logger.Info("no .env file found, using environment")
	}

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	dbConfig := repo.Config{
		DSN:             cfg.Database.DSN,
		MaxConns:        cfg.Database.MaxConns,
		MinConns:        cfg.Database.MinConns,
		MaxConnLifetime: cfg.Database.MaxConnLifetime,
		MaxConnIdleTime: cfg.Database.MaxConnIdleTime,
		DialTimeout:     cfg.Database.DialTimeout,
	}
	entc, pool, err := repo.Open(ctx, dbConfig, logger)
	if err != nil {
		logger.Error("failed to open database", "error", err)
		os.Exit(1)
	}
	defer repo.Close(entc, pool, logger)

	// Ping DB to ensure connectivity
	if err := repo.HealthCheck(ctx, pool, 5*time.Second, logger); err != nil {
		logger.Error("failed to ping database", "error", err)
		os.Exit(1)
	}

	resultsRepo := repo.NewTestResultRepository(entc, logger)
	imagingRepo := repo.NewImagingResultRepository(entc, logger)
	prescriptionsRepo := repo.NewPrescriptionRepository(entc, logger)
	adherenceRepo := repo.NewAdherenceRepository(entc, logger)

	media, err := storage.NewS3Store(ctx, cfg.Storage, logger)
	if err != nil {
		logger.Error("failed to init media storage", "error", err)
		os.Exit(1)
	}

	rasterizer := convert.NewHTTPRasterizer(cfg.Converter.BaseURL, cfg.Converter.APIKey, logger)
	normalizer := convert.NewNormalizer(rasterizer, logger)

	extractor := openai.NewClient(openai.Config{
		BaseURL:     cfg.LLM.BaseURL,
		Model:       cfg.LLM.Model,
		APIKey:      cfg.LLM.APIKey,
		Temperature: cfg.LLM.Temperature,
		Timeout:     cfg.LLM.Timeout,
	}, logger)

	extractStage := pipeline.NewExtractStage(extractor, logger)
	storeStage := pipeline.NewStoreStage(resultsRepo, imagingRepo, prescriptionsRepo, logger)
	processor := pipeline.NewProcessor(media, normalizer, extractor, extractStage, storeStage, logger)

	chat := whatsapp.NewClient(cfg.WhatsApp, logger)

	// Single-tenant phone resolution: every stored row belongs to the
	// configured patient.
	resolvePhone := func(patientID uuid.UUID) (string, bool) {
		if patientID == cfg.Patient.ID && cfg.Patient.Phone != "" {
			return cfg.Patient.Phone, true
		}
		return "", false
	}
	engine := adherence.NewEngine(prescriptionsRepo, adherenceRepo, chat, resolvePhone, logger)

	queue := async.NewDocumentQueue(processor, chat, logger,
		async.WithWorkers(4),
		async.WithQueueSize(256),
		async.WithProcessTimeout(3*time.Minute),
	)

	exporter := export.NewService(resultsRepo, logger)

	srv := server.New(server.Deps{
		Config:        cfg,
		Processor:     processor,
		Queue:         queue,
		Engine:        engine,
		Chat:          chat,
		Classifier:    extractor,
		Seen:          whatsapp.NewRecentSet(cfg.WhatsApp.DedupCapacity),
		Results:       resultsRepo,
		Imaging:       imagingRepo,
		Prescriptions: prescriptionsRepo,
		Adherence:     adherenceRepo,
		Exporter:      exporter,
	}, logger)

	httpServer := &http.Server{
		Addr:    cfg.Server.HTTPAddr,
		Handler: srv.Router(),
	}

	logger.Info("healthtrack listening", "addr", cfg.Server.HTTPAddr)
	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("http serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	queue.Shutdown(shutdownCtx)
	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		logger.Error("http shutdown error", "error", err)
	}
}
