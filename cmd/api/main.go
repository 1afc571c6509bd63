package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reminder-nlp-service/config"
	_ "reminder-nlp-service/docs" // Swagger docs
	"reminder-nlp-service/internal/extractor"
	"reminder-nlp-service/internal/httpserver"
	"reminder-nlp-service/internal/middleware"
	"reminder-nlp-service/internal/model"
	reminderHTTP "reminder-nlp-service/internal/reminder/delivery/http"
	"reminder-nlp-service/internal/reminder/usecase"
	"reminder-nlp-service/pkg/datemath"
	"reminder-nlp-service/pkg/log"
)

// @title       Reminder NLP Service API
// @description Parses natural-language reminder text into structured reminder records, with a BERT-backed NER model and a rule-based fallback.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Reminder NLP Service...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Extraction backend — selected once for the process lifetime
	ext := extractor.New(ctx, extractor.Config{
		Enabled: cfg.NER.Enabled,
		APIKey:  cfg.NER.APIKey,
		APIURL:  cfg.NER.APIURL,
		Model:   cfg.NER.Model,
	}, logger)
	bertAvailable := ext.Parser() == model.ParserModel

	// 4. DateTime resolver
	timezone := cfg.Parser.Timezone
	resolver, dtErr := datemath.NewResolver(timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", timezone, dtErr)
		resolver, _ = datemath.NewResolver("UTC")
	}

	// 5. Reminder domain
	reminderUC := usecase.New(logger, ext, resolver)
	reminderHandler := reminderHTTP.New(logger, reminderUC)

	mw := middleware.New(logger, middleware.Config{
		RateLimitPerMin: cfg.RateLimit.PerMin,
	})

	// 6. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		ReminderHandler: reminderHandler,
		Middleware:      mw,
		BERTAvailable:   bertAvailable,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 7. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
