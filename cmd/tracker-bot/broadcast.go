package main

import (
	"fmt"
	"strings"

	"github.com/americanglobalgroup/parcel-tracker/internal/bot"
	"github.com/americanglobalgroup/parcel-tracker/internal/broadcast"
	"github.com/americanglobalgroup/parcel-tracker/internal/events"
	"github.com/americanglobalgroup/parcel-tracker/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var broadcastAdminID int64

var broadcastCmd = &cobra.Command{
	Use:   "broadcast [@all|@hy|@en|@<id>,...] <text>[ || <english text>][ | <image url>]",
	Short: "Send a message to the bot users",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		req, err := broadcast.Parse(strings.Join(args, " "))
		if err != nil {
			return err
		}

		s, err := newStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		api, err := newTelegramAPI(cfg)
		if err != nil {
			return err
		}

		producer := events.NewEventProducer(newAuditWriter(cfg, s))
		defer producer.Close()

		ctx := cmd.Context()
		dispatcher := broadcast.NewDispatcher(s, bot.NewClient(api), cfg.Service.BroadcastWorkers)
		result, err := dispatcher.Dispatch(ctx, broadcastAdminID, req)
		if err != nil {
			return err
		}

		if err := producer.Write(ctx, events.NewSystemEvent(events.ActionBroadcast, req.Audience.String())); err != nil {
			zap.S().Warnw("failed to record broadcast", "error", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "broadcast %d: %d delivered, %d failed\n", result.Broadcast.ID, len(result.Delivered), len(result.Failed))
		return nil
	},
}

func init() {
	broadcastCmd.Flags().Int64Var(&broadcastAdminID, "admin-id", 0, "Id stored as the author of the broadcast")
}
