package main

import "flag"

// Flags holds all command-line flags
type Flags struct {
	// Commands
	Test         *bool
	Tables       *bool
	Show         *bool
	CreateConfig *bool

	// Options
	Config    *string
	Connector *string
	Quick     *bool

	// Connection overrides (take precedence over the config file)
	Server     *string
	Port       *int
	Database   *string
	User       *string
	Password   *string
	Domain     *string
	Auth       *string
	Driver     *string
	TDSVersion *string

	// Misc
	Help    *bool
	Version *bool
}

// ParseFlags defines and parses all command-line flags
func ParseFlags() *Flags {
	f := &Flags{}

	// Commands
	f.Test = flag.Bool("test", false, "Resolve the profile, open a connection and ping the server")
	f.Tables = flag.Bool("tables", false, "Connect and list tables and views")
	f.Show = flag.Bool("show", false, "Print the resolved connection profile (password redacted)")
	f.CreateConfig = flag.Bool("create-config", false, "Write a sample config.yaml and exit")

	// Options
	f.Config = flag.String("config", "config.yaml", "Configuration file path")
	f.Connector = flag.String("connector", "", "Connector backend: odbc, native (default: odbc)")
	f.Quick = flag.Bool("quick", false, "Skip table/view listing during -test")

	// Connection overrides
	f.Server = flag.String("server", "", "Server address (overrides config)")
	f.Port = flag.Int("port", 0, "Server port (overrides config, default 1433)")
	f.Database = flag.String("database", "", "Database name (overrides config)")
	f.User = flag.String("user", "", "User name (overrides config)")
	f.Password = flag.String("password", "", "Password (overrides config; prefer MSSQL_PASSWORD)")
	f.Domain = flag.String("domain", "", "Windows domain (overrides config)")
	f.Auth = flag.String("auth", "", "Auth mode: sql, domain, windows (overrides config)")
	f.Driver = flag.String("driver", "", "Driver kind: odbc17, freetds (overrides config)")
	f.TDSVersion = flag.String("tds-version", "", "TDS protocol version for FreeTDS (default 8.0)")

	// Misc
	f.Help = flag.Bool("help", false, "Show help")
	f.Version = flag.Bool("version", false, "Show version")

	flag.Parse()
	return f
}

// applyOverrides copies non-empty flag values over the config.
func (f *Flags) applyOverrides(cfg *Config) {
	if *f.Server != "" {
		cfg.Connection.Server = *f.Server
	}
	if *f.Port != 0 {
		cfg.Connection.Port = *f.Port
	}
	if *f.Database != "" {
		cfg.Connection.Database = *f.Database
	}
	if *f.User != "" {
		cfg.Connection.User = *f.User
	}
	if *f.Password != "" {
		cfg.Connection.Password = *f.Password
	}
	if *f.Domain != "" {
		cfg.Connection.Domain = *f.Domain
	}
	if *f.Auth != "" {
		cfg.Connection.Auth = *f.Auth
	}
	if *f.Driver != "" {
		cfg.Connection.Driver = *f.Driver
	}
	if *f.TDSVersion != "" {
		cfg.Connection.TDSVersion = *f.TDSVersion
	}
	if *f.Connector != "" {
		cfg.Connector = *f.Connector
	}
}
