package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	OutputFormat  string   `mapstructure:"output_format" yaml:"output_format"`
	TopValues     int      `mapstructure:"top_values" yaml:"top_values"`
	IQRMultiplier float64  `mapstructure:"iqr_multiplier" yaml:"iqr_multiplier"`
	Delimiter     string   `mapstructure:"delimiter" yaml:"delimiter"`
	NullValues    []string `mapstructure:"null_values" yaml:"null_values"`
	MaxRows       int      `mapstructure:"max_rows" yaml:"max_rows"`
	LogLevel      string   `mapstructure:"log_level" yaml:"log_level"`
}

// Defaults is the configuration used when neither a file nor the environment
// sets a key.
func Defaults() *Global {
	return &Global{
		OutputFormat:  "text",
		TopValues:     5,
		IQRMultiplier: 1.5,
		NullValues:    []string{"", "NA", "NaN", "null", "NULL", "<nil>"},
		LogLevel:      "warn",
	}
}

// DefaultPath returns ~/.eda/config.yaml.
func DefaultPath() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("resolve home dir: %w", err)
	}
	return filepath.Join(home, ".eda", "config.yaml"), nil
}

// Save writes the given configuration to the cfgFile path. If cfgFile is empty,
// it writes to ~/.eda/config.yaml, creating the directory if necessary.
func Save(c *Global, cfgFile string) error {
	path := cfgFile
	if path == "" {
		p, err := DefaultPath()
		if err != nil {
			return err
		}
		path = p
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: env > config file > defaults; command flags are applied by the caller.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("EDA")
	v.AutomaticEnv()

	d := Defaults()
	v.SetDefault("output_format", d.OutputFormat)
	v.SetDefault("top_values", d.TopValues)
	v.SetDefault("iqr_multiplier", d.IQRMultiplier)
	v.SetDefault("delimiter", d.Delimiter)
	v.SetDefault("null_values", d.NullValues)
	v.SetDefault("max_rows", d.MaxRows)
	v.SetDefault("log_level", d.LogLevel)

	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		v.AddConfigPath(filepath.Join(home, ".eda"))
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if cfgFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	return &c, nil
}
