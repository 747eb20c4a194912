/*
Package connector opens SQL Server sessions from resolved connection
profiles.

The package defines the Connector interface and a registry keyed by
connector name; implementations register themselves from init():

	import (
		"github.com/ruslano69/mssql-connect/pkg/connector"
		_ "github.com/ruslano69/mssql-connect/pkg/connector/odbc"   // Register odbc
		_ "github.com/ruslano69/mssql-connect/pkg/connector/native" // Register native
	)

	c, err := connector.New(ctx, "odbc", p)
	if err != nil {
		return err
	}
	defer c.Close(ctx)

Two implementations exist:

  - odbc: renders the profile to an ODBC connection string and opens it
    through the unixODBC/odbc32 driver manager. Required for FreeTDS
    profiles and the only backend that honors TDS_Version.
  - native: speaks TDS directly through go-mssqldb, no driver manager
    needed. Handles SQL-login and integrated-auth profiles; rejects
    FreeTDS-specific profiles.

Connectors open exactly one session and add no pooling, retry or
reconnection behavior. Failures from the driver propagate wrapped and
unmodified in meaning.
*/
package connector
