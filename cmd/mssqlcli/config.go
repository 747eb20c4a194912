package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/ruslano69/mssql-connect/pkg/profile"
)

// PasswordEnvVar fills the connection password when the config omits it,
// keeping the secret out of the yaml file.
const PasswordEnvVar = "MSSQL_PASSWORD"

// Config represents the main configuration structure
type Config struct {
	Connection ConnectionConfig `yaml:"connection"`
	Connector  string           `yaml:"connector,omitempty"` // odbc (default) or native
}

// ConnectionConfig contains SQL Server connection settings
type ConnectionConfig struct {
	Server     string `yaml:"server"`                // Server address
	Port       int    `yaml:"port,omitempty"`        // Port (default: 1433)
	Database   string `yaml:"database"`              // Database name
	User       string `yaml:"user,omitempty"`        // User name
	Password   string `yaml:"password,omitempty"`    // Password (prefer MSSQL_PASSWORD env)
	Domain     string `yaml:"domain,omitempty"`      // Windows domain
	Auth       string `yaml:"auth,omitempty"`        // sql, domain, windows (default: sql)
	Driver     string `yaml:"driver,omitempty"`      // odbc17, freetds (default: odbc17)
	TDSVersion string `yaml:"tds_version,omitempty"` // TDS version for FreeTDS (default: 8.0)
}

// LoadConfig loads configuration from a YAML file. A .env file next to the
// working directory is loaded first so MSSQL_PASSWORD can come from it.
func LoadConfig(filename string) (*Config, error) {
	// Missing .env is fine; only explicit values are used.
	_ = godotenv.Load()

	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	if config.Connection.Password == "" {
		config.Connection.Password = os.Getenv(PasswordEnvVar)
	}

	return &config, nil
}

// SaveConfig saves configuration to a YAML file
func SaveConfig(filename string, config *Config) error {
	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(filename, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

// CreateSampleConfig returns a config template with placeholder credentials
func CreateSampleConfig() *Config {
	return &Config{
		Connection: ConnectionConfig{
			Server:   "localhost",
			Port:     1433,
			Database: "mydb",
			User:     "sa",
			Password: "YourPassword123",
			Auth:     "sql",
			Driver:   "odbc17",
		},
		Connector: "odbc",
	}
}

// BuildRequest converts the config into a connection request for the
// resolver. Enum fields are parsed here so a typo fails before any
// connection attempt.
func (c *Config) BuildRequest() (profile.ConnectionRequest, error) {
	auth, err := profile.ParseAuthMode(c.Connection.Auth)
	if err != nil {
		return profile.ConnectionRequest{}, err
	}

	driver, err := profile.ParseDriverKind(c.Connection.Driver)
	if err != nil {
		return profile.ConnectionRequest{}, err
	}

	return profile.ConnectionRequest{
		Server:     c.Connection.Server,
		User:       c.Connection.User,
		Domain:     c.Connection.Domain,
		Password:   c.Connection.Password,
		Database:   c.Connection.Database,
		Port:       c.Connection.Port,
		Driver:     driver,
		TDSVersion: c.Connection.TDSVersion,
		Auth:       auth,
	}, nil
}

// ConnectorName returns the configured connector backend, defaulting to odbc.
func (c *Config) ConnectorName() string {
	if c.Connector == "" {
		return "odbc"
	}
	return c.Connector
}
