// YAML/TOML config loader with CUE validation integration
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"flightpath-report/internal/airport"
)

// Defaults used when neither a config file, a flag nor a prompt answer
// supplies a value.
const (
	DefaultAirstripLen  = 300.0
	DefaultAirportZone  = 1000.0
	DefaultEnterRoutes  = 3
	DefaultOutput       = "report.png"
	DefaultLogExtension = ".csv"
)

// LoggingConfig defines log output
type LoggingConfig struct {
	Level  string `yaml:"level" toml:"level"`
	Format string `yaml:"format" toml:"format"`
	File   string `yaml:"file" toml:"file"`
}

// RenderConfig is the root configuration of one report run
type RenderConfig struct {
	SourceDir          string        `yaml:"source_dir" toml:"source_dir"`
	AirstripLen        float64       `yaml:"airstrip_len" toml:"airstrip_len"`
	AirportZone        float64       `yaml:"airport_zone" toml:"airport_zone"`
	EnterRoutes        int           `yaml:"enter_routes" toml:"enter_routes"`
	BearingUnits       string        `yaml:"bearing_units" toml:"bearing_units"`
	Output             string        `yaml:"output" toml:"output"`
	LogExtension       string        `yaml:"log_extension" toml:"log_extension"`
	DrawHeadingChanges bool          `yaml:"draw_heading_changes" toml:"draw_heading_changes"`
	Workers            int           `yaml:"workers" toml:"workers"`
	Show               bool          `yaml:"show" toml:"show"`
	Logging            LoggingConfig `yaml:"logging" toml:"logging"`
}

// Defaults returns the configuration used without a config file. SourceDir
// is deliberately empty: the log directory must always be supplied.
func Defaults() RenderConfig {
	return RenderConfig{
		AirstripLen:  DefaultAirstripLen,
		AirportZone:  DefaultAirportZone,
		EnterRoutes:  DefaultEnterRoutes,
		BearingUnits: string(airport.Degrees),
		Output:       DefaultOutput,
		LogExtension: DefaultLogExtension,
		Workers:      1,
		Logging:      LoggingConfig{Level: "info", Format: "text"},
	}
}

// Load reads a YAML or TOML (by .toml extension) config over the defaults
// and validates it against the CUE schema. An empty schemaPath selects the
// built-in schema.
func Load(configPath, cueSchemaPath string) (*RenderConfig, error) {
	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cannot read config: %w", err)}
	}
	isTOML := strings.EqualFold(filepath.Ext(configPath), ".toml")

	values := map[string]any{}
	if isTOML {
		_, err = toml.Decode(string(data), &values)
	} else {
		err = yaml.Unmarshal(data, &values)
	}
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cannot parse %s: %w", configPath, err)}
	}

	schema := defaultSchema
	if cueSchemaPath != "" {
		if schema, err = os.ReadFile(cueSchemaPath); err != nil {
			return nil, &ConfigError{Err: fmt.Errorf("cannot read CUE schema: %w", err)}
		}
	}
	if err := ValidateWithCue(values, schema); err != nil {
		return nil, &ConfigError{Err: err}
	}

	cfg := Defaults()
	if isTOML {
		_, err = toml.Decode(string(data), &cfg)
	} else {
		err = yaml.Unmarshal(data, &cfg)
	}
	if err != nil {
		return nil, &ConfigError{Err: fmt.Errorf("cannot decode %s: %w", configPath, err)}
	}
	return &cfg, nil
}

// Set assigns one of the positional/prompted parameters from its textual
// form.
func (c *RenderConfig) Set(field, raw string) error {
	raw = strings.TrimSpace(raw)
	switch field {
	case "source_dir":
		c.SourceDir = raw
	case "airstrip_len":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &ConfigError{Field: field, Value: raw, Err: err}
		}
		c.AirstripLen = v
	case "airport_zone":
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &ConfigError{Field: field, Value: raw, Err: err}
		}
		c.AirportZone = v
	case "enter_routes":
		v, err := strconv.Atoi(raw)
		if err != nil {
			return &ConfigError{Field: field, Value: raw, Err: err}
		}
		c.EnterRoutes = v
	default:
		return &ConfigError{Field: field, Value: raw, Err: fmt.Errorf("unknown parameter")}
	}
	return nil
}

// Validate checks the settled configuration before a run.
func (c *RenderConfig) Validate() error {
	if c.SourceDir == "" {
		return &ConfigError{Field: "source_dir", Err: fmt.Errorf("log directory must be provided")}
	}
	if _, err := airport.ParseBearingUnits(c.BearingUnits); err != nil {
		return &ConfigError{Field: "bearing_units", Value: c.BearingUnits, Err: err}
	}
	if c.Output == "" {
		return &ConfigError{Field: "output", Err: fmt.Errorf("output path must not be empty")}
	}
	if err := airport.Validate(c.AirstripLen, c.AirportZone, c.EnterRoutes); err != nil {
		return &ConfigError{Err: err}
	}
	return nil
}
