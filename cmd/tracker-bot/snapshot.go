package main

import (
	"fmt"
	"path/filepath"

	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/americanglobalgroup/parcel-tracker/internal/sheet"
	"github.com/americanglobalgroup/parcel-tracker/internal/tracking"
	"github.com/americanglobalgroup/parcel-tracker/pkg/log"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var snapshotDir string

var snapshotCmd = &cobra.Command{
	Use:   "snapshot",
	Short: "Save the route tables as local workbooks readable by the workbook provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		ctx := cmd.Context()
		provider, err := sheet.NewProvider(ctx, cfg)
		if err != nil {
			return err
		}

		for _, route := range tracking.Routes() {
			loc, ok := routeSheet(cfg, route)
			if !ok {
				continue
			}

			table, err := provider.Fetch(ctx, route.String())
			if err != nil {
				zap.S().Warnw("skipping route", "route", route, "error", err)
				continue
			}

			path := filepath.Join(snapshotDir, loc.SpreadsheetID+".xlsx")
			values := append([][]string{table.Header}, table.Rows...)
			if err := sheet.WriteWorkbook(path, loc.SheetName, values); err != nil {
				return fmt.Errorf("writing %s: %w", path, err)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s: %d rows -> %s\n", route, len(table.Rows), path)
		}
		return nil
	},
}

func routeSheet(cfg *config.Config, route tracking.Route) (config.RouteSheet, bool) {
	for _, r := range cfg.Sheets.Routes {
		if r.Route == route.String() {
			return r, true
		}
	}
	return config.RouteSheet{}, false
}

func init() {
	snapshotCmd.Flags().StringVarP(&snapshotDir, "out", "o", ".", "Directory the workbooks are written to")
}
