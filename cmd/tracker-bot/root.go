package main

import (
	"github.com/americanglobalgroup/parcel-tracker/internal/config"
	"github.com/spf13/cobra"
)

var (
	configFile string
)

var rootCmd = &cobra.Command{
	Use:          "tracker-bot",
	Short:        "Parcel tracking Telegram bot",
	SilenceUsage: true,
}

func init() {
	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(NewCmdLookup())
	rootCmd.AddCommand(broadcastCmd)
	rootCmd.AddCommand(adminCmd)
	rootCmd.AddCommand(snapshotCmd)

	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "Path to an env file (KEY=VALUE lines) read before the environment")
}

func loadConfig() (*config.Config, error) {
	if configFile != "" {
		if err := config.LoadEnvFile(configFile); err != nil {
			return nil, err
		}
	}
	return config.New()
}
