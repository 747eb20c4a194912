package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/ruslano69/mssql-connect/pkg/connector"
	_ "github.com/ruslano69/mssql-connect/pkg/connector/native" // Register native
	_ "github.com/ruslano69/mssql-connect/pkg/connector/odbc"   // Register odbc
	"github.com/ruslano69/mssql-connect/pkg/profile"
)

func main() {
	ctx := context.Background()

	// Parse flags
	flags := ParseFlags()

	// Handle version
	if *flags.Version {
		PrintVersion()
		os.Exit(0)
	}

	// Handle help
	if *flags.Help {
		PrintHelp()
		os.Exit(0)
	}

	// Handle config creation
	if *flags.CreateConfig {
		createConfigTemplate()
		return
	}

	// Load configuration; a missing file is fine when the connection is
	// fully described by flags.
	config, err := LoadConfig(*flags.Config)
	if err != nil {
		if !errors.Is(err, os.ErrNotExist) {
			fatal("Failed to load config: %v", err)
		}
		config = &Config{}
	}
	flags.applyOverrides(config)

	// Resolve the connection profile
	req, err := config.BuildRequest()
	if err != nil {
		fatal("Invalid connection settings: %v", err)
	}

	p, warnings, err := profile.Resolve(req)
	if err != nil {
		fatal("Failed to resolve connection profile: %v", err)
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w.Message)
	}

	// Route commands
	switch {
	case *flags.Show:
		fmt.Println(p.Redacted())

	case *flags.Test:
		var result connector.TestResult
		if *flags.Quick {
			result = connector.QuickTest(ctx, config.ConnectorName(), p)
		} else {
			result = connector.Test(ctx, config.ConnectorName(), p)
		}
		printTestResult(result)
		if !result.Success {
			os.Exit(1)
		}

	case *flags.Tables:
		result := connector.Test(ctx, config.ConnectorName(), p)
		if !result.Success {
			fatal("%s", result.Message)
		}
		printNames("Tables", result.Tables)
		printNames("Views", result.Views)

	default:
		PrintHelp()
		os.Exit(1)
	}
}

func printTestResult(result connector.TestResult) {
	if result.Success {
		fmt.Printf("✓ %s\n", result.Message)
		if len(result.Tables) > 0 || len(result.Views) > 0 {
			fmt.Printf("  %d tables, %d views visible\n", len(result.Tables), len(result.Views))
		}
	} else {
		fmt.Fprintf(os.Stderr, "✗ %s\n", result.Message)
	}
}

func printNames(kind string, names []string) {
	fmt.Printf("%s (%d):\n", kind, len(names))
	for _, name := range names {
		fmt.Printf("  %s\n", name)
	}
}

func createConfigTemplate() {
	config := CreateSampleConfig()

	if err := SaveConfig("config.yaml", config); err != nil {
		fatal("Failed to save config: %v", err)
	}

	fmt.Println("✓ Created sample config: config.yaml")
	fmt.Println("Edit the file with your server details and run:")
	fmt.Println("  mssqlcli -test -config config.yaml")
}

func fatal(format string, args ...interface{}) {
	fmt.Fprintf(os.Stderr, "Error: "+format+"\n", args...)
	os.Exit(1)
}
