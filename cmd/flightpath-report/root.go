package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "flightpath-report",
	Short: "Airport simulator flight log reports",
	Long: "flightpath-report draws the per-aircraft logs written by the airport simulator onto one chart\n" +
		"together with the airport zone, the runway and the enter routes.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the root command.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := rootCmd.ExecuteContext(ctx)
	stop()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	registerCommonFlags(rootCmd, &common)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(transitionsCmd)
}
