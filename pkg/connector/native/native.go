// Package native opens SQL Server sessions through go-mssqldb, which speaks
// TDS directly and needs no driver manager. FreeTDS profiles are not
// expressible here and must go through the odbc connector.
package native

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/url"

	_ "github.com/denisenkom/go-mssqldb" // MS SQL Server driver

	"github.com/ruslano69/mssql-connect/pkg/connector"
	"github.com/ruslano69/mssql-connect/pkg/profile"
)

// Name is the registry name of this connector.
const Name = "native"

// ErrFreeTDSProfile is returned for profiles resolved for the FreeTDS
// driver; their attributes (TDS_Version, required encryption fallback) only
// exist in the ODBC world.
var ErrFreeTDSProfile = errors.New("freetds profiles require the odbc connector")

func init() {
	// Register native connector in the global registry
	connector.Register(Name, func() connector.Connector {
		return &Connector{}
	})
}

// Connector implements connector.Connector on top of go-mssqldb.
type Connector struct {
	db      *sql.DB
	profile profile.ConnectionProfile
}

// Open renders the profile to a sqlserver:// DSN and establishes the session.
func (c *Connector) Open(ctx context.Context, p profile.ConnectionProfile) error {
	dsn, err := BuildDSN(p)
	if err != nil {
		return err
	}

	db, err := sql.Open("mssql", dsn)
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

// BuildDSN renders a resolved profile to a go-mssqldb URL.
func BuildDSN(p profile.ConnectionProfile) (string, error) {
	if p.Driver == profile.FreeTDS {
		return "", ErrFreeTDSProfile
	}

	if p.TrustedConnection {
		return fmt.Sprintf("sqlserver://%s:%d?database=%s&integrated security=SSPI",
			p.Server, p.Port, p.Database), nil
	}

	u := url.URL{
		Scheme: "sqlserver",
		User:   url.UserPassword(p.UID, p.PWD),
		Host:   fmt.Sprintf("%s:%d", p.Server, p.Port),
	}
	q := url.Values{}
	q.Set("database", p.Database)
	u.RawQuery = q.Encode()
	return u.String(), nil
}
