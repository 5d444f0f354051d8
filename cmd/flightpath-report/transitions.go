package main

import (
	"github.com/spf13/cobra"

	"flightpath-report/internal/report"
	"flightpath-report/internal/trajectory"
)

var (
	transitionsExt     string
	transitionsHeading bool
)

var transitionsCmd = &cobra.Command{
	Use:   "transitions DIR",
	Short: "List status transitions of every aircraft log without drawing",
	Long:  "transitions loads the logs in DIR and prints each sample at which an aircraft's status (and optionally heading) changes.",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(&common)
		if err != nil {
			return err
		}
		if cmd.Flags().Changed("ext") {
			cfg.LogExtension = transitionsExt
		}
		ctx, closeLog, err := newLogContext(cmd.Context(), cmd, &common, cfg)
		if err != nil {
			return err
		}
		defer closeLog()

		trajs, err := trajectory.LoadDir(ctx, args[0], trajectory.LoadOptions{
			Extension: cfg.LogExtension,
			Workers:   cfg.Workers,
		})
		if err != nil {
			return err
		}
		return report.WriteTransitions(cmd.OutOrStdout(), trajs, transitionsHeading)
	},
}

func init() {
	transitionsCmd.Flags().StringVar(&transitionsExt, "ext", ".csv", "Extension of the aircraft log files")
	transitionsCmd.Flags().BoolVar(&transitionsHeading, "heading", false, "Also list heading transitions")
}
