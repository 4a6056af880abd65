package config

import (
	"os"
	"path/filepath"
	"testing"
)

// TestOptions mirrors the option struct the CLI feeds to LoadConfig.
type TestOptions struct {
	Config string `help:"Config file path"`

	Device        string `toml:"device.path" env:"DEVICE_PATH"`
	Target        string `toml:"device.target" env:"DEVICE_TARGET"`
	LoggingLevel  string `toml:"logging.level" env:"LOGGING_LEVEL"`
	LoggingFormat string `toml:"logging.format" env:"LOGGING_FORMAT"`
	Timeout       int    `toml:"device.timeout" env:"DEVICE_TIMEOUT"`
	Verbose       bool   `toml:"logging.verbose" env:"VERBOSE"`
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nucledctl.toml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("Failed to write config file: %v", err)
	}
	return path
}

func TestLoadConfigFromTOML(t *testing.T) {
	path := writeConfig(t, `
[device]
path = "/tmp/fake_nuc_led"
target = "power"
timeout = 42

[logging]
level = "debug"
verbose = true
`)

	opts := &TestOptions{Config: path}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Device != "/tmp/fake_nuc_led" {
		t.Errorf("Device = %q, want /tmp/fake_nuc_led", opts.Device)
	}
	if opts.Target != "power" {
		t.Errorf("Target = %q, want power", opts.Target)
	}
	if opts.Timeout != 42 {
		t.Errorf("Timeout = %d, want 42", opts.Timeout)
	}
	if opts.LoggingLevel != "debug" {
		t.Errorf("LoggingLevel = %q, want debug", opts.LoggingLevel)
	}
	if !opts.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestLoadConfigFromEnvVars(t *testing.T) {
	t.Setenv("NUCLED_DEVICE_PATH", "/tmp/env_nuc_led")
	t.Setenv("NUCLED_LOGGING_LEVEL", "warn")
	t.Setenv("NUCLED_DEVICE_TIMEOUT", "7")
	t.Setenv("NUCLED_VERBOSE", "true")

	opts := &TestOptions{}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Device != "/tmp/env_nuc_led" {
		t.Errorf("Device = %q, want /tmp/env_nuc_led", opts.Device)
	}
	if opts.LoggingLevel != "warn" {
		t.Errorf("LoggingLevel = %q, want warn", opts.LoggingLevel)
	}
	if opts.Timeout != 7 {
		t.Errorf("Timeout = %d, want 7", opts.Timeout)
	}
	if !opts.Verbose {
		t.Error("Verbose = false, want true")
	}
}

func TestEnvOverridesTOML(t *testing.T) {
	path := writeConfig(t, `
[device]
path = "/tmp/from_toml"
`)
	t.Setenv("NUCLED_DEVICE_PATH", "/tmp/from_env")

	opts := &TestOptions{Config: path}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if opts.Device != "/tmp/from_env" {
		t.Errorf("Device = %q, want env value to win over TOML", opts.Device)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	opts := &TestOptions{Config: "/nonexistent/nucledctl.toml", Device: "/default"}
	if err := LoadConfig(opts, nil); err != nil {
		t.Fatalf("LoadConfig with missing file should not fail: %v", err)
	}
	if opts.Device != "/default" {
		t.Errorf("Device = %q, want untouched default", opts.Device)
	}
}

func TestLoadConfigInvalidTOML(t *testing.T) {
	path := writeConfig(t, "not [valid toml")

	opts := &TestOptions{Config: path}
	if err := LoadConfig(opts, nil); err == nil {
		t.Error("LoadConfig should fail on unparseable TOML")
	}
}

func TestFieldNameToFlag(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"Device", "device"},
		{"LoggingLevel", "logging-level"},
		{"Config", "config"},
	}
	for _, tt := range tests {
		if got := fieldNameToFlag(tt.in); got != tt.want {
			t.Errorf("fieldNameToFlag(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLoadLoggingConfig(t *testing.T) {
	path := writeConfig(t, `
[logging]
level = "debug"
format = "json"

[logging.modules]
led = "debug"
config = "error"
`)

	cfg := LoadLoggingConfig(path)
	if cfg.Level != "debug" {
		t.Errorf("Level = %q, want debug", cfg.Level)
	}
	if cfg.Format != "json" {
		t.Errorf("Format = %q, want json", cfg.Format)
	}
	if cfg.Modules["led"] != "debug" || cfg.Modules["config"] != "error" {
		t.Errorf("Modules = %v, want led=debug config=error", cfg.Modules)
	}
}

func TestLoadLoggingConfigDefaults(t *testing.T) {
	cfg := LoadLoggingConfig("/nonexistent/nucledctl.toml")
	if cfg.Level != "info" || cfg.Format != "text" {
		t.Errorf("defaults = %q/%q, want info/text", cfg.Level, cfg.Format)
	}
}
