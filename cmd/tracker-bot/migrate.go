package main

import (
	"fmt"

	"github.com/americanglobalgroup/parcel-tracker/internal/store"
	"github.com/americanglobalgroup/parcel-tracker/pkg/log"
	"github.com/americanglobalgroup/parcel-tracker/pkg/migrations"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Migrate the db",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		undo := log.Setup(cfg.Service.LogLevel)
		defer undo()

		zap.S().Info("Starting db migration")
		defer zap.S().Info("Db migrated")

		if cfg.Database.Type != "pgsql" {
			db, err := store.InitDB(cfg)
			if err != nil {
				return fmt.Errorf("initializing data store: %w", err)
			}
			s := store.NewStore(db)
			defer s.Close()
			return s.InitialMigration()
		}

		sqlDB, err := migrations.OpenPostgres(store.DSN(cfg))
		if err != nil {
			return err
		}
		defer sqlDB.Close()

		if err := migrations.MigrateStore(sqlDB, "postgres", cfg.Service.MigrationFolder); err != nil {
			return fmt.Errorf("running migrations: %w", err)
		}
		return nil
	},
}
