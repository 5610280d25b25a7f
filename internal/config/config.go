package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

// Output formats the CLI can produce.
const (
	FormatJSON  = "json"
	FormatXLSX  = "xlsx"
	FormatTable = "table"
)

// Config holds the CLI defaults. Flags override whatever the config
// file provides.
type Config struct {
	// Format selects the output renderer: json, xlsx or table.
	Format string `mapstructure:"format"`

	// Pretty indents JSON output.
	Pretty bool `mapstructure:"pretty"`

	// ProbeDimensions probes EMF/WMF headers for pixel sizes when the
	// drawing markup carried none.
	ProbeDimensions bool `mapstructure:"probe_dimensions"`

	// Debug enables debug-level logging.
	Debug bool `mapstructure:"debug"`
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Format: FormatJSON,
	}
}

// Load reads the configuration file. With an empty path it searches the
// home directory and the working directory for .docxtract.yaml; a
// missing file yields the defaults.
func Load(configPath string) (*Config, error) {
	v := viper.New()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, err
		}
		v.AddConfigPath(home)
		v.AddConfigPath(".")
		v.SetConfigName(".docxtract")
		v.SetConfigType("yaml")
	}

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); ok {
			return Default(), nil
		}
		return nil, err
	}

	cfg := Default()
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", v.ConfigFileUsed(), err)
	}

	if err := ValidateFormat(cfg.Format); err != nil {
		return nil, err
	}

	return cfg, nil
}

// ValidateFormat rejects output formats the CLI does not know.
func ValidateFormat(format string) error {
	switch format {
	case FormatJSON, FormatXLSX, FormatTable:
		return nil
	default:
		return fmt.Errorf("unsupported output format %q (expected json, xlsx or table)", format)
	}
}
