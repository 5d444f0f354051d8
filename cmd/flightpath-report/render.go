package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pkg/browser"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"flightpath-report/internal/logging"
	"flightpath-report/internal/prompt"
	"flightpath-report/internal/report"
)

var renderOpts renderFlags

var renderCmd = &cobra.Command{
	Use:   "render [DIR [AIRSTRIP_LEN AIRPORT_ZONE ENTER_ROUTES]]",
	Short: "Draw all aircraft logs of one run and the airport onto a chart",
	Long: "render loads every log file in DIR, marks the samples where an aircraft changes status,\n" +
		"overlays the airport zone, runway and enter routes and saves the chart.\n" +
		"With all four arguments nothing is asked and further arguments are ignored;\n" +
		"otherwise missing values are prompted for.",
	Args: func(cmd *cobra.Command, args []string) error {
		if len(args) == 2 || len(args) == 3 {
			return fmt.Errorf("accepts 0, 1 or at least 4 args, received %d", len(args))
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(&common)
		if err != nil {
			return err
		}
		applyRenderFlags(cmd, &renderOpts, cfg)

		ctx, closeLog, err := newLogContext(cmd.Context(), cmd, &common, cfg)
		if err != nil {
			return err
		}
		defer closeLog()
		log := logging.FromContext(ctx)

		interactive := !renderOpts.noInput
		if err := resolveParams(cfg, args, cmd.InOrStdin(), cmd.OutOrStdout(), interactive, log); err != nil {
			return err
		}

		res, err := report.Generate(ctx, cfg)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if err := report.WriteSummary(out, res, consoleStyle(out)); err != nil {
			return err
		}
		if cfg.Show {
			if err := browser.OpenFile(res.Output); err != nil {
				log.Warn("could not open the chart", "path", res.Output, "err", err)
			}
		}
		return nil
	},
}

// consoleStyle colours the summary only on a terminal and wraps it to the
// terminal width.
func consoleStyle(w io.Writer) report.Style {
	f, ok := w.(*os.File)
	if !ok || !prompt.IsTerminal(f) {
		return report.Style{}
	}
	st := report.Style{Color: true}
	if width, _, err := term.GetSize(int(f.Fd())); err == nil {
		st.Width = width
	}
	return st
}

func init() {
	registerRenderFlags(renderCmd, &renderOpts)
}
