package main

import (
	"context"
	"io"
	"log/slog"
	"strconv"

	"github.com/spf13/cobra"

	"flightpath-report/internal/config"
	"flightpath-report/internal/logging"
	"flightpath-report/internal/prompt"
)

// commonFlags are shared by every subcommand.
type commonFlags struct {
	configPath string
	schemaPath string
	logLevel   string
	logFormat  string
	logFile    string
}

var common commonFlags

func registerCommonFlags(cmd *cobra.Command, f *commonFlags) {
	pf := cmd.PersistentFlags()
	pf.StringVar(&f.configPath, "config", "", "Path to a YAML or TOML configuration file")
	pf.StringVar(&f.schemaPath, "schema", "", "Path to a CUE schema overriding the built-in one")
	pf.StringVar(&f.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	pf.StringVar(&f.logFormat, "log-format", "text", "Log format (text or json)")
	pf.StringVar(&f.logFile, "log-file", "", "Write logs to this rotated file instead of stderr")
}

// loadConfig returns the file configuration, or the defaults when no file
// was given.
func loadConfig(f *commonFlags) (*config.RenderConfig, error) {
	if f.configPath == "" {
		cfg := config.Defaults()
		return &cfg, nil
	}
	return config.Load(f.configPath, f.schemaPath)
}

// newLogContext builds the run logger from the config file's logging
// section, overridden by any logging flag set on the command line.
func newLogContext(ctx context.Context, cmd *cobra.Command, f *commonFlags, cfg *config.RenderConfig) (context.Context, func() error, error) {
	opts := logging.Options{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	}
	fs := cmd.Flags()
	if fs.Changed("log-level") {
		opts.Level = f.logLevel
	}
	if fs.Changed("log-format") {
		opts.Format = f.logFormat
	}
	if fs.Changed("log-file") {
		opts.File = f.logFile
	}
	l, closeLog, err := logging.New(opts)
	if err != nil {
		return nil, nil, &config.ConfigError{Field: "logging.level", Value: opts.Level, Err: err}
	}
	return logging.NewContext(ctx, l), closeLog, nil
}

// renderFlags override the configuration file when set explicitly.
type renderFlags struct {
	dir            string
	output         string
	ext            string
	bearingUnits   string
	headingChanges bool
	workers        int
	show           bool
	noInput        bool
}

func registerRenderFlags(cmd *cobra.Command, f *renderFlags) {
	fl := cmd.Flags()
	fl.StringVar(&f.dir, "dir", "", "Directory holding the aircraft logs")
	fl.StringVar(&f.output, "output", config.DefaultOutput, "Chart file; the extension selects png, svg or pdf")
	fl.StringVar(&f.ext, "ext", config.DefaultLogExtension, "Extension of the aircraft log files")
	fl.StringVar(&f.bearingUnits, "bearing-units", "degrees", "How route bearings reach cos/sin (degrees or radians)")
	fl.BoolVar(&f.headingChanges, "heading-changes", false, "Also mark samples where the heading changes")
	fl.IntVar(&f.workers, "workers", 1, "Number of log files read concurrently")
	fl.BoolVar(&f.show, "show", false, "Open the saved chart with the system viewer")
	fl.BoolVar(&f.noInput, "no-input", false, "Never prompt; use arguments, flags and config only")
}

// applyRenderFlags copies every explicitly set flag into cfg.
func applyRenderFlags(cmd *cobra.Command, f *renderFlags, cfg *config.RenderConfig) {
	fs := cmd.Flags()
	if fs.Changed("dir") {
		cfg.SourceDir = f.dir
	}
	if fs.Changed("output") {
		cfg.Output = f.output
	}
	if fs.Changed("ext") {
		cfg.LogExtension = f.ext
	}
	if fs.Changed("bearing-units") {
		cfg.BearingUnits = f.bearingUnits
	}
	if fs.Changed("heading-changes") {
		cfg.DrawHeadingChanges = f.headingChanges
	}
	if fs.Changed("workers") {
		cfg.Workers = f.workers
	}
	if fs.Changed("show") {
		cfg.Show = f.show
	}
}

var numericParams = []struct {
	field string
	label string
	value func(*config.RenderConfig) string
}{
	{"airstrip_len", "Airstrip length, m", func(c *config.RenderConfig) string { return formatFloat(c.AirstripLen) }},
	{"airport_zone", "Airport zone radius, m", func(c *config.RenderConfig) string { return formatFloat(c.AirportZone) }},
	{"enter_routes", "Number of enter routes", func(c *config.RenderConfig) string { return strconv.Itoa(c.EnterRoutes) }},
}

// resolveParams fills the airport parameters and the log directory.
// Four or more arguments supply everything, extras being ignored; otherwise
// the operator is asked for what is missing, with the current values as
// defaults.
func resolveParams(cfg *config.RenderConfig, args []string, in io.Reader, out io.Writer, interactive bool, log *slog.Logger) error {
	if len(args) >= 4 {
		if extra := args[4:]; len(extra) > 0 {
			log.Warn("ignoring extra arguments", "args", extra)
		}
		if err := cfg.Set("source_dir", args[0]); err != nil {
			return err
		}
		for i, p := range numericParams {
			if err := cfg.Set(p.field, args[i+1]); err != nil {
				return err
			}
		}
		log.Info("using CLI parameters",
			"dir", cfg.SourceDir,
			"airstrip_len", cfg.AirstripLen,
			"airport_zone", cfg.AirportZone,
			"enter_routes", cfg.EnterRoutes)
		return nil
	}
	if len(args) == 1 {
		if err := cfg.Set("source_dir", args[0]); err != nil {
			return err
		}
	}
	if !interactive {
		return nil
	}

	var fields []string
	var qs []prompt.Question
	if cfg.SourceDir == "" {
		fields = append(fields, "source_dir")
		qs = append(qs, prompt.Question{Label: "Logs directory"})
	}
	for _, p := range numericParams {
		fields = append(fields, p.field)
		qs = append(qs, prompt.Question{Label: p.label, Default: p.value(cfg)})
	}
	answers, err := prompt.Ask(in, out, qs)
	if err != nil {
		return err
	}
	for i, a := range answers {
		if err := cfg.Set(fields[i], a); err != nil {
			return err
		}
	}
	log.Debug("parameters from prompt",
		"dir", cfg.SourceDir,
		"airstrip_len", cfg.AirstripLen,
		"airport_zone", cfg.AirportZone,
		"enter_routes", cfg.EnterRoutes)
	return nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
