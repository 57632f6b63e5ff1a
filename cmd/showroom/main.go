// Package main provides the showroom CLI and server entry point.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "showroom",
		Short: "Vehicle matching and financing service",
		Long: `Showroom ranks a vehicle catalog against a shopper's quiz answers and
compares finance, lease and used-car payment options.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file")

	rootCmd.AddCommand(
		newServeCmd(&configPath),
		newMatchCmd(&configPath),
		newFinanceCmd(&configPath),
		newEventsCmd(&configPath),
	)
	return rootCmd
}
