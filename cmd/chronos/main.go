// Command chronos is a thin CLI over the chronos calendar and time-zone
// library: it exposes a handful of subcommands for poking at instants,
// zones, and calendar arithmetic from a shell.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/pachecot/chronos/config"
)

var configPath string

var rootCmd = &cobra.Command{
	Use:               "chronos",
	Short:             "Calendar and time-zone arithmetic from the command line",
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error { initLogging(); return nil },
}

func loadConfig() *config.Config {
	return config.LoadOrDefault(configPath)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "path to a chronos.yaml config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug-level structured logging")
	rootCmd.AddCommand(nowCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(addCmd)
	rootCmd.AddCommand(diffCmd)
	rootCmd.AddCommand(zoneCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.WithError(err).Error("chronos command failed")
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
