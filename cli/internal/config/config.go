// Package config loads CLI configuration from config files, .env files
// and the environment.
package config

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/joho/godotenv"
	"github.com/mitchellh/go-homedir"
	"github.com/spf13/afero"
	"github.com/spf13/viper"

	"github.com/datagrove-io/impala-dialect/dialect/impala"
)

var AppFs = afero.NewOsFs()

// Config holds the application configuration.
type Config struct {
	Host            string
	Port            int
	Database        string
	Flags           string
	ResultsTimezone string
	Debug           bool
}

// Load reads configuration from .impala-dialect.yaml (working directory,
// home, or ~/.config/impala-dialect), .env files and IMPALA_DIALECT_*
// environment variables, in increasing priority.
func Load() (*Config, error) {
	home, err := homedir.Dir()
	if err != nil {
		return nil, err
	}

	v := viper.New()
	v.SetConfigName(".impala-dialect")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")
	v.AddConfigPath(home)
	v.AddConfigPath(filepath.Join(home, ".config", "impala-dialect"))

	v.SetEnvPrefix("IMPALA_DIALECT")
	v.AutomaticEnv()

	v.SetDefault("host", impala.DefaultHost)
	v.SetDefault("port", impala.DefaultPort)
	v.SetDefault("database", impala.DefaultDatabase)
	v.SetDefault("results_timezone", "")
	v.SetDefault("debug", false)

	// Missing config file is fine, defaults apply.
	_ = v.ReadInConfig()

	if _, err := AppFs.Stat(".env"); err == nil {
		_ = godotenv.Load()
	}
	// .env.local wins over .env
	if _, err := AppFs.Stat(".env.local"); err == nil {
		_ = godotenv.Overload(".env.local")
	}

	cfg := &Config{
		Host:            v.GetString("host"),
		Port:            v.GetInt("port"),
		Database:        v.GetString("database"),
		Flags:           v.GetString("flags"),
		ResultsTimezone: v.GetString("results_timezone"),
		Debug:           v.GetBool("debug"),
	}

	return cfg, nil
}

// Save writes the configuration to ~/.config/impala-dialect.
func Save(cfg *Config) error {
	v := viper.New()
	v.Set("host", cfg.Host)
	v.Set("port", cfg.Port)
	v.Set("database", cfg.Database)
	v.Set("flags", cfg.Flags)
	v.Set("results_timezone", cfg.ResultsTimezone)
	v.Set("debug", cfg.Debug)

	home, err := homedir.Dir()
	if err != nil {
		return err
	}

	configDir := filepath.Join(home, ".config", "impala-dialect")
	if err := AppFs.MkdirAll(configDir, 0755); err != nil {
		return err
	}

	return v.WriteConfigAs(filepath.Join(configDir, ".impala-dialect.yaml"))
}

// ConnectionDetails converts the configuration into connection details.
func (c *Config) ConnectionDetails() impala.ConnectionDetails {
	return impala.ConnectionDetails{
		Host:     c.Host,
		Port:     c.Port,
		Database: c.Database,
		Flags:    c.Flags,
	}
}

// Location resolves the configured results timezone. An empty setting
// means the process-local zone.
func (c *Config) Location() (*time.Location, error) {
	if c.ResultsTimezone == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.ResultsTimezone)
	if err != nil {
		return nil, fmt.Errorf("results_timezone: %w", err)
	}
	return loc, nil
}

// Dialect builds an Impala dialect from the configuration.
func (c *Config) Dialect() (*impala.Dialect, error) {
	loc, err := c.Location()
	if err != nil {
		return nil, err
	}
	return impala.NewWithConfig(impala.Config{ResultsLocation: loc}), nil
}
