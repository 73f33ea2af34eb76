package main

import (
	"context"
	"net"
	"os"
	"os/signal"
	"syscall"
	"time"

	apiserver "github.com/americanglobalgroup/parcel-tracker/internal/api_server"
	"github.com/americanglobalgroup/parcel-tracker/internal/bot"
	"github.com/americanglobalgroup/parcel-tracker/internal/broadcast"
	"github.com/americanglobalgroup/parcel-tracker/internal/events"
	"github.com/americanglobalgroup/parcel-tracker/pkg/log"
	"github.com/americanglobalgroup/parcel-tracker/pkg/metrics"
	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the bot and the metrics server",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		zap.S().Info("Starting tracker bot")
		defer zap.S().Info("Tracker bot stopped")
		zap.S().Infof("Using config: %s", cfg)

		ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGHUP, syscall.SIGTERM, syscall.SIGQUIT)
		defer cancel()

		s, err := newStore(cfg)
		if err != nil {
			zap.S().Fatalw("initializing data store", "error", err)
		}
		defer s.Close()

		tracker, _, extractor, err := newTracker(ctx, cfg)
		if err != nil {
			zap.S().Fatalw("initializing tracker", "error", err)
		}

		api, err := newTelegramAPI(cfg)
		if err != nil {
			zap.S().Fatalw("initializing telegram", "error", err)
		}

		producer := events.NewEventProducer(newAuditWriter(cfg, s))
		defer producer.Close()

		b := bot.New(api, tracker, s,
			bot.WithRules(extractor.Rules()),
			bot.WithRecorder(producer),
			bot.WithDispatcher(broadcast.NewDispatcher(s, bot.NewClient(api), cfg.Service.BroadcastWorkers)),
			bot.WithAdmins(cfg.Service.AdminIDs),
			bot.WithVerboseErrors(cfg.Service.VerboseErrors),
		)

		listener, err := newListener(cfg.Service.MetricsAddress)
		if err != nil {
			zap.S().Fatalw("creating listener", "error", err)
		}

		g, gctx := errgroup.WithContext(ctx)
		g.Go(func() error {
			return apiserver.New(s, listener, prometheus.DefaultRegisterer).Run(gctx)
		})
		g.Go(func() error {
			metrics.NewUsersRefresher(s, cfg.Service.StatsInterval).Run(gctx)
			return nil
		})
		g.Go(func() error {
			metrics.UniqueUsersPerDay.ResetEvery(gctx, 24*time.Hour)
			return nil
		})
		g.Go(func() error {
			u := tgbotapi.NewUpdate(0)
			u.Timeout = cfg.Telegram.PollTimeout
			updates := api.GetUpdatesChan(u)
			go func() {
				<-gctx.Done()
				api.StopReceivingUpdates()
			}()

			err := b.Run(gctx, updates)
			// the bot stops only on shutdown, take the other components down with it
			cancel()
			return err
		})

		if err := g.Wait(); err != nil {
			zap.S().Errorw("tracker bot stopped with error", "error", err)
			return err
		}
		return nil
	},
}

func newListener(address string) (net.Listener, error) {
	if address == "" {
		address = "localhost:0"
	}
	return net.Listen("tcp", address)
}
