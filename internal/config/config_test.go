package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"flightpath-report/internal/airport"
)

func TestDefaults(t *testing.T) {
	cfg := Defaults()
	if cfg.AirstripLen != 300 || cfg.AirportZone != 1000 || cfg.EnterRoutes != 3 {
		t.Fatalf("unexpected numeric defaults: %+v", cfg)
	}
	if cfg.SourceDir != "" {
		t.Fatalf("source dir must not have a default, got %q", cfg.SourceDir)
	}
	if cfg.Output != "report.png" || cfg.LogExtension != ".csv" {
		t.Fatalf("unexpected output defaults: %+v", cfg)
	}
}

func TestLoadConfig_YAML(t *testing.T) {
	cfg, err := Load("testdata/render.yaml", "")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.SourceDir != "logs/run-42" || cfg.AirstripLen != 400 || cfg.AirportZone != 900.5 || cfg.EnterRoutes != 5 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.BearingUnits != "radians" || !cfg.DrawHeadingChanges || cfg.Workers != 4 {
		t.Errorf("unexpected options: %+v", cfg)
	}
	if cfg.Logging.Level != "debug" || cfg.Logging.Format != "json" {
		t.Errorf("unexpected logging: %+v", cfg.Logging)
	}
	if cfg.Output != DefaultOutput {
		t.Errorf("expected default output to survive, got %q", cfg.Output)
	}
}

func TestLoadConfig_TOML(t *testing.T) {
	cfg, err := Load("testdata/render.toml", "")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if cfg.SourceDir != "logs/run-43" || cfg.AirstripLen != 250 || cfg.EnterRoutes != 6 {
		t.Errorf("unexpected values: %+v", cfg)
	}
	if cfg.AirportZone != DefaultAirportZone {
		t.Errorf("expected default zone, got %v", cfg.AirportZone)
	}
	if cfg.Output != "overview.svg" || cfg.Logging.Level != "warn" || cfg.Logging.Format != "text" {
		t.Errorf("unexpected output/logging: %+v", cfg)
	}
}

func TestLoadConfig_SchemaViolations(t *testing.T) {
	for _, name := range []string{"unknown_key.yaml", "negative_zone.yaml", "fractional_routes.yaml"} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(filepath.Join("testdata", name), "")
			var ce *ConfigError
			if !errors.As(err, &ce) {
				t.Fatalf("expected *ConfigError, got %v", err)
			}
		})
	}
}

func TestLoadConfig_EmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.yaml")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	cfg, err := Load(path, "")
	if err != nil {
		t.Fatalf("Load() returned error: %v", err)
	}
	if *cfg != Defaults() {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
}

func TestLoadConfig_CustomSchema(t *testing.T) {
	dir := t.TempDir()
	schema := filepath.Join(dir, "strict.cue")
	if err := os.WriteFile(schema, []byte("#Config: {enter_routes: int & <=10, ...}\n"), 0o644); err != nil {
		t.Fatalf("write schema: %v", err)
	}
	cfgPath := filepath.Join(dir, "c.yaml")
	if err := os.WriteFile(cfgPath, []byte("enter_routes: 12\n"), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	if _, err := Load(cfgPath, schema); err == nil {
		t.Fatalf("expected custom schema to reject 12 routes")
	}
	if _, err := Load(cfgPath, filepath.Join(dir, "missing.cue")); err == nil {
		t.Fatalf("expected error for missing schema")
	}
}

func TestLoadConfig_Missing(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "none.yaml"), "")
	var ce *ConfigError
	if !errors.As(err, &ce) {
		t.Fatalf("expected *ConfigError, got %v", err)
	}
}

func TestSet(t *testing.T) {
	cfg := Defaults()
	for field, raw := range map[string]string{
		"source_dir":   " logs ",
		"airstrip_len": "450",
		"airport_zone": "1200.5",
		"enter_routes": "4",
	} {
		if err := cfg.Set(field, raw); err != nil {
			t.Fatalf("Set(%s): %v", field, err)
		}
	}
	if cfg.SourceDir != "logs" || cfg.AirstripLen != 450 || cfg.AirportZone != 1200.5 || cfg.EnterRoutes != 4 {
		t.Fatalf("unexpected config %+v", cfg)
	}
}

func TestSetRejectsBadNumbers(t *testing.T) {
	cases := []struct{ field, raw string }{
		{"airstrip_len", "long"},
		{"airport_zone", ""},
		{"enter_routes", "3.5"},
		{"runway", "1"},
	}
	for _, tc := range cases {
		cfg := Defaults()
		err := cfg.Set(tc.field, tc.raw)
		var ce *ConfigError
		if !errors.As(err, &ce) || ce.Field != tc.field {
			t.Fatalf("Set(%s, %q): expected ConfigError, got %v", tc.field, tc.raw, err)
		}
	}
}

func TestValidate(t *testing.T) {
	cfg := Defaults()
	var ce *ConfigError
	if err := cfg.Validate(); !errors.As(err, &ce) || ce.Field != "source_dir" {
		t.Fatalf("expected missing source_dir error, got %v", err)
	}

	cfg.SourceDir = "logs"
	if err := cfg.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}

	cfg.EnterRoutes = 0
	err := cfg.Validate()
	var re *airport.RangeError
	if !errors.As(err, &re) || re.Name != "enter_routes" {
		t.Fatalf("expected RangeError for enter_routes, got %v", err)
	}

	cfg = Defaults()
	cfg.SourceDir = "logs"
	cfg.BearingUnits = "gradians"
	if err := cfg.Validate(); !errors.As(err, &ce) || ce.Field != "bearing_units" {
		t.Fatalf("expected bearing_units error, got %v", err)
	}
}
