// Package odbc opens SQL Server sessions through the ODBC driver manager.
// It is the only backend that can drive FreeTDS and honor TDS_Version.
package odbc

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	_ "github.com/alexbrainman/odbc" // ODBC driver manager bridge

	"github.com/ruslano69/mssql-connect/pkg/connector"
	"github.com/ruslano69/mssql-connect/pkg/profile"
)

// Name is the registry name of this connector.
const Name = "odbc"

func init() {
	// Register ODBC connector in the global registry
	connector.Register(Name, func() connector.Connector {
		return &Connector{}
	})
}

// Connector implements connector.Connector on top of the ODBC bridge.
type Connector struct {
	db      *sql.DB
	profile profile.ConnectionProfile
}

// Open renders the profile to an ODBC connection string and establishes
// the session.
func (c *Connector) Open(ctx context.Context, p profile.ConnectionProfile) error {
	db, err := sql.Open("odbc", BuildConnString(p))
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return fmt.Errorf("failed to ping database: %w", err)
	}

	c.db = db
	c.profile = p
	return nil
}

// Ping tests the session.
func (c *Connector) Ping(ctx context.Context) error {
	return c.db.PingContext(ctx)
}

// DB exposes the underlying handle.
func (c *Connector) DB() *sql.DB {
	return c.db
}

// Name returns the registry name.
func (c *Connector) Name() string {
	return Name
}

// Close releases the session.
func (c *Connector) Close(ctx context.Context) error {
	if c.db != nil {
		return c.db.Close()
	}
	return nil
}

// odbcDriverName maps a driver kind to the name the driver manager knows it
// by (odbcinst.ini on unixODBC).
func odbcDriverName(d profile.DriverKind) string {
	switch d {
	case profile.FreeTDS:
		return "FreeTDS"
	default:
		return "ODBC Driver 17 for SQL Server"
	}
}

// BuildConnString renders a resolved profile to an ODBC connection string.
//
// The two driver families address the endpoint differently: ODBC Driver 17
// takes "Server=host,port" while FreeTDS takes separate Server and Port
// attributes. Credential and encryption attributes come straight from the
// profile; rendering adds no decisions of its own.
func BuildConnString(p profile.ConnectionProfile) string {
	parts := []string{fmt.Sprintf("Driver={%s}", odbcDriverName(p.Driver))}

	switch p.Driver {
	case profile.FreeTDS:
		parts = append(parts,
			fmt.Sprintf("Server=%s", p.Server),
			fmt.Sprintf("Port=%d", p.Port))
	default:
		parts = append(parts, fmt.Sprintf("Server=%s,%d", p.Server, p.Port))
	}

	if p.Database != "" {
		parts = append(parts, fmt.Sprintf("Database=%s", p.Database))
	}

	if p.TrustedConnection {
		parts = append(parts, "Trusted_Connection=yes")
	} else {
		parts = append(parts,
			fmt.Sprintf("UID=%s", p.UID),
			fmt.Sprintf("PWD=%s", p.PWD))
	}

	if p.Encryption != "" {
		parts = append(parts, fmt.Sprintf("Encryption=%s", p.Encryption))
	}
	if p.TDSVersion != "" {
		parts = append(parts, fmt.Sprintf("TDS_Version=%s", p.TDSVersion))
	}

	return strings.Join(parts, ";")
}
