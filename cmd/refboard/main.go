package main

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/compress"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/sirupsen/logrus"

	"github.com/terraincognita07/refboard/internal/ai"
	"github.com/terraincognita07/refboard/internal/api"
	"github.com/terraincognita07/refboard/internal/catalog"
	"github.com/terraincognita07/refboard/internal/config"
	"github.com/terraincognita07/refboard/internal/db"
	"github.com/terraincognita07/refboard/internal/i18n"
	"github.com/terraincognita07/refboard/internal/services"
	"github.com/terraincognita07/refboard/internal/store"
)

func main() {
	cfg := config.Load()

	logger := logrus.New()
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		logger.SetLevel(level)
	}

	database, err := db.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.WithError(err).Fatal("database init failed")
	}
	repositories := db.NewRepositories(database)

	propertyCatalog, err := catalog.Load()
	if err != nil {
		logger.WithError(err).Fatal("property catalog init failed")
	}

	i18nManager, err := i18n.NewManager(cfg.DefaultLanguage)
	if err != nil {
		logger.WithError(err).Fatal("i18n init failed")
	}

	stores := store.NewStores(repositories.KV, logger)

	var aiClient *ai.Client
	if cfg.GeminiAPIKey != "" {
		aiClient, err = ai.NewClient(ai.Options{
			APIKey:     cfg.GeminiAPIKey,
			TextModel:  cfg.GeminiTextModel,
			ImageModel: cfg.GeminiImageModel,
			Logger:     logger,
		})
		if err != nil {
			logger.WithError(err).Fatal("AI client init failed")
		}
	} else {
		logger.Warn("GEMINI_API_KEY not set, AI endpoints disabled")
	}

	analytics := services.NewAnalyticsService(stores.Clicks, propertyCatalog)
	earnings := services.NewEarningsService(stores.Clicks, stores.Leads, stores.Conversions, propertyCatalog)
	achievements := services.NewAchievementService(stores.AchievementsSeen)
	exports := services.NewExportService(stores.Clicks, stores.Leads, stores.Conversions)
	referrals := services.NewReferralService(stores.ReferralCode, cfg.ReferralBaseURL)
	library := services.NewLibraryService(stores.Library, propertyCatalog)
	settings := services.NewSettingsService(stores)

	var assistant *services.AssistantService
	if aiClient != nil {
		assistant = services.NewAssistantService(
			aiClient,
			stores.Clicks,
			stores.Leads,
			stores.Conversions,
			stores.Library,
			stores.ReferralCode,
			stores.DismissedTips,
			propertyCatalog,
			cfg.TipMinInterval,
			logger,
		)
	}

	handler := api.NewHandler(api.Dependencies{
		Stores:       stores,
		Catalog:      propertyCatalog,
		Analytics:    analytics,
		Earnings:     earnings,
		Achievements: achievements,
		Exports:      exports,
		Referrals:    referrals,
		Library:      library,
		Settings:     settings,
		Assistant:    assistant,
		AI:           aiClient,
		I18n:         i18nManager,
		Logger:       logger,
	})

	app := fiber.New(fiber.Config{
		AppName:               "Refboard",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(fiberlogger.New())
	app.Use(compress.New())
	app.Use(handler.LanguageMiddleware)

	api.RegisterRoutes(app, handler)

	lifecycleCtx, cancelLifecycle := context.WithCancel(context.Background())
	defer cancelLifecycle()
	if assistant != nil {
		go assistant.Run(lifecycleCtx, cfg.TipCheckInterval, i18nManager.DefaultLanguage())
	}

	sigCtx, stopSignals := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		cancelLifecycle()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			logger.WithError(err).Error("server shutdown failed")
		}
	}()

	logger.WithFields(logrus.Fields{
		"port": cfg.Port,
		"db":   cfg.DBPath,
	}).Info("refboard listening")
	if err := app.Listen(":" + cfg.Port); err != nil {
		logger.WithError(err).Fatal("server exited")
	}
}
