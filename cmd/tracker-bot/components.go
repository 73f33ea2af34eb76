package main

import (
	"context"
	"fmt"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/americanglobalgroup/parcel-tracker/internal/events"
	"github.com/americanglobalgroup/parcel-tracker/internal/i18n"
	"github.com/americanglobalgroup/parcel-tracker/internal/service"
	"github.com/americanglobalgroup/parcel-tracker/internal/sheet"
	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"go.uber.org/zap"
)

func newStore(cfg *config.Config) (store.Store, error) {
	zap.S().Info("Initializing data store")
	db, err := store.InitDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("initializing data store: %w", err)
	}

	s := store.NewStore(db)
	// postgres is migrated with the migrate command
	if cfg.Database.Type != "pgsql" {
		if err := s.InitialMigration(); err != nil {
			s.Close()
			return nil, fmt.Errorf("running initial migration: %w", err)
		}
	}
	return s, nil
}

func newExtractor(cfg *config.Config) (*tracking.Extractor, error) {
	extra, err := i18n.LoadStatusTranslations(cfg.Service.TranslationsFile)
	if err != nil {
		return nil, err
	}
	return tracking.NewExtractor(
		tracking.DefaultRules(extra),
		i18n.DefaultCatalog(),
		tracking.WithVerboseErrors(cfg.Service.VerboseErrors),
	), nil
}

func newTracker(ctx context.Context, cfg *config.Config) (*service.TrackingService, sheet.Provider, *tracking.Extractor, error) {
	extractor, err := newExtractor(cfg)
	if err != nil {
		return nil, nil, nil, err
	}

	provider, err := sheet.NewProvider(ctx, cfg)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("creating sheets provider: %w", err)
	}

	return service.NewTrackingService(provider, extractor, service.WithLookupTimeout(cfg.Service.LookupTimeout)), provider, extractor, nil
}

func newTelegramAPI(cfg *config.Config) (*tgbotapi.BotAPI, error) {
	if cfg.Telegram.Token == "" {
		return nil, fmt.Errorf("TELEGRAM_BOT_TOKEN is not set")
	}
	api, err := tgbotapi.NewBotAPI(cfg.Telegram.Token)
	if err != nil {
		return nil, fmt.Errorf("connecting to telegram: %w", err)
	}
	api.Debug = cfg.Telegram.Debug
	zap.S().Infof("Authorized on account %s", api.Self.UserName)
	return api, nil
}

func newAuditWriter(cfg *config.Config, s store.Store) events.Writer {
	if cfg.Service.AuditSink == "stdout" {
		return &events.StdoutWriter{}
	}
	return events.NewStoreWriter(s)
}
