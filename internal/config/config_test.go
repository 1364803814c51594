package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hktkzyx/engineering-toolbox/pkg/constants"
)

func TestLoadConfiguration(t *testing.T) {
	content := `logging:
  level: debug
  format: console
defaults:
  series: E12
  mode: floor
  ledKind: r
`
	path := filepath.Join(t.TempDir(), "engineering-toolbox.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("writing config fixture: %v", err)
	}

	conf, err := LoadConfiguration(path)
	if err != nil {
		t.Fatalf("LoadConfiguration error: %v", err)
	}
	if conf.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, expected debug", conf.Logging.Level)
	}
	if conf.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, expected console", conf.Logging.Format)
	}
	if conf.Defaults.Series != "E12" {
		t.Errorf("Defaults.Series = %q, expected E12", conf.Defaults.Series)
	}
	if conf.Defaults.Mode != "floor" {
		t.Errorf("Defaults.Mode = %q, expected floor", conf.Defaults.Mode)
	}
	if conf.Defaults.LEDKind != "r" {
		t.Errorf("Defaults.LEDKind = %q, expected r", conf.Defaults.LEDKind)
	}
}

func TestLoadConfigurationMissingDefaultFile(t *testing.T) {
	// The default path is relative; run from a directory that has no config.
	cwd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(t.TempDir()); err != nil {
		t.Fatal(err)
	}
	defer func() {
		_ = os.Chdir(cwd)
	}()

	conf, err := LoadConfiguration(constants.DefaultConfigFile)
	if err != nil {
		t.Fatalf("LoadConfiguration error: %v", err)
	}
	if conf.Defaults.Series != "E24" || conf.Defaults.Mode != "nearest" || conf.Defaults.LEDKind != "o" {
		t.Errorf("built-in defaults not applied: %+v", conf.Defaults)
	}
}

func TestLoadConfigurationMissingExplicitFile(t *testing.T) {
	if _, err := LoadConfiguration(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for a missing explicitly-named config file")
	}
}
