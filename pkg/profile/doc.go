/*
Package profile resolves SQL Server connection requests into normalized
connection profiles.

The resolver is the decision core of this repository: it picks an
authentication strategy (SQL login, domain login, standalone Windows login),
validates the request against the capabilities of the chosen driver backend
(ODBC Driver 17 or FreeTDS) and produces an immutable ConnectionProfile that
a connector can turn into a live session.

	req := profile.ConnectionRequest{
		Server:   "db01.corp.local",
		Database: "billing",
		User:     "alice",
		Password: "secret",
		Auth:     profile.SQLLogin,
	}

	p, warnings, err := profile.Resolve(req)
	if err != nil {
		return err
	}
	for _, w := range warnings {
		fmt.Fprintf(os.Stderr, "WARNING: %s\n", w.Message)
	}

Resolution is a pure function: no I/O, no shared state, identical requests
produce identical profiles. Opening the actual connection is the job of
pkg/connector.

# Authentication modes

  - SQLLogin: database-local account, works with both drivers.
  - DomainLogin: directory account. ODBC Driver 17 always uses the ambient
    security context (supplied credentials are ignored with a warning);
    FreeTDS uses DOMAIN\user credentials when complete and falls back to
    integrated authentication when they are not.
  - StandaloneWindowsLogin: Windows credentials against a server outside a
    domain. FreeTDS only; any other driver is rejected.

# Error taxonomy

Validation failures are typed: ErrUnsupportedDriver for a mode/driver
combination that can never work, MissingFieldError for an absent required
field. Non-fatal conditions are reported as Warning values alongside a
successful profile, never as errors.
*/
package profile
