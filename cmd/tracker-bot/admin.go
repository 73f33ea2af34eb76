package main

import (
	"context"
	"fmt"
	"strconv"

	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/pkg/log"
	"github.com/spf13/cobra"
)

var adminCmd = &cobra.Command{
	Use:   "admin",
	Short: "Manage the users allowed to broadcast",
}

var adminAddCmd = &cobra.Command{
	Use:   "add <user id>...",
	Short: "Allow users to broadcast",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		ids := make([]int64, 0, len(args))
		for _, a := range args {
			id, err := strconv.ParseInt(a, 10, 64)
			if err != nil || id <= 0 {
				return fmt.Errorf("invalid user id %q", a)
			}
			ids = append(ids, id)
		}

		s, err := newStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		// all or nothing
		return store.WithTx(cmd.Context(), s, func(ctx context.Context) error {
			for _, id := range ids {
				if err := s.Admin().Add(ctx, id); err != nil {
					return err
				}
			}
			return nil
		})
	},
}

var adminListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the users allowed to broadcast",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		s, err := newStore(cfg)
		if err != nil {
			return err
		}
		defer s.Close()

		admins, err := s.Admin().List(cmd.Context())
		if err != nil {
			return err
		}
		for _, a := range admins {
			fmt.Fprintln(cmd.OutOrStdout(), a.ID)
		}
		for _, id := range cfg.Service.AdminIDs {
			fmt.Fprintf(cmd.OutOrStdout(), "%d (environment)\n", id)
		}
		return nil
	},
}

func init() {
	adminCmd.AddCommand(adminAddCmd)
	adminCmd.AddCommand(adminListCmd)
}
