/*
 * Copyright © 2025 Suparena Software Inc., All rights reserved.
 */

package config

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

// Config is the YAML configuration for a registry deployment.
type Config struct {
	Registry RegistryConfig `yaml:"registry"`
	AWS      AWSConfig      `yaml:"aws"`
	Log      LogConfig      `yaml:"log"`
}

// RegistryConfig configures one registry instance.
type RegistryConfig struct {
	// Address is the deployment address consumers use to resolve this
	// instance.
	Address string `yaml:"address"`
	// InitialCounter is the counter value for a fresh deployment.
	// Ignored once the backing store is initialized.
	InitialCounter string `yaml:"initialCounter"`
}

// AWSConfig configures the DynamoDB backend.
type AWSConfig struct {
	Region string `yaml:"region"`
	Table  string `yaml:"table"`
}

// LogConfig configures logging output.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// Credentials carries AWS credentials resolved from the environment.
type Credentials struct {
	AccessKey string
	SecretKey string
}

// Load reads and validates a YAML configuration file.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}
	cfg := &Config{}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Registry.InitialCounter == "" {
		c.Registry.InitialCounter = "0"
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = "text"
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.AWS.Region == "" {
		return fmt.Errorf("aws.region is required")
	}
	if c.AWS.Table == "" {
		return fmt.Errorf("aws.table is required")
	}
	for _, ch := range c.Registry.InitialCounter {
		if ch < '0' || ch > '9' {
			return fmt.Errorf("registry.initialCounter must be a non-negative decimal integer")
		}
	}
	return nil
}

// LoadCredentials resolves AWS credentials from a .env file if one is
// present, falling back to the process environment.
func LoadCredentials() (Credentials, error) {
	if err := godotenv.Load(); err != nil {
		slog.Debug("no .env file found, using environment variables")
	}

	creds := Credentials{
		AccessKey: os.Getenv("AWS_ACCESS_KEY"),
		SecretKey: os.Getenv("AWS_SECRET_KEY"),
	}
	if creds.AccessKey == "" || creds.SecretKey == "" {
		return Credentials{}, fmt.Errorf("AWS_ACCESS_KEY and AWS_SECRET_KEY must be set")
	}
	return creds, nil
}
