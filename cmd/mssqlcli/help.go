package main

import "fmt"

const version = "1.0.0"

// PrintVersion prints version information
func PrintVersion() {
	fmt.Printf("mssqlcli version %s\n", version)
	fmt.Println("mssql-connect - SQL Server connection profile resolver")
	fmt.Println("https://github.com/ruslano69/mssql-connect")
}

// PrintHelp prints comprehensive help information
func PrintHelp() {
	fmt.Println("MSSQL CLI - SQL Server connection tester")
	fmt.Printf("Version: %s\n\n", version)

	fmt.Println("USAGE:")
	fmt.Println("  mssqlcli [command] [options]")
	fmt.Println()

	fmt.Println("COMMANDS:")
	fmt.Println("    -test                      Resolve profile, connect and ping the server")
	fmt.Println("    -tables                    Connect and list tables and views")
	fmt.Println("    -show                      Print the resolved profile (password redacted)")
	fmt.Println("    -create-config             Write a sample config.yaml")
	fmt.Println()

	fmt.Println("OPTIONS:")
	fmt.Println("    -config <file>             Configuration file (default: config.yaml)")
	fmt.Println("    -connector <name>          Backend: odbc, native (default: odbc)")
	fmt.Println("    -quick                     Skip table/view listing during -test")
	fmt.Println()

	fmt.Println("  Connection (override config values):")
	fmt.Println("    -server <addr>             Server address")
	fmt.Println("    -port <n>                  Port (default: 1433)")
	fmt.Println("    -database <name>           Database name")
	fmt.Println("    -user <name>               User name")
	fmt.Println("    -password <pwd>            Password (prefer the MSSQL_PASSWORD env var)")
	fmt.Println("    -domain <name>             Windows domain")
	fmt.Println("    -auth <mode>               Auth mode: sql, domain, windows")
	fmt.Println("    -driver <kind>             Driver: odbc17, freetds")
	fmt.Println("    -tds-version <v>           TDS version for FreeTDS (default: 8.0)")
	fmt.Println()

	fmt.Println("EXAMPLES:")
	fmt.Println("  mssqlcli -test -server db01 -database billing -user alice -password s3cret")
	fmt.Println("  mssqlcli -test -auth domain -server db01.corp.local -database billing")
	fmt.Println("  mssqlcli -show -auth windows -driver freetds -server 10.0.0.5 \\")
	fmt.Println("           -database billing -domain WORKGROUP -user svc -password s3cret")
	fmt.Println("  MSSQL_PASSWORD=s3cret mssqlcli -tables -config prod.yaml")
}
