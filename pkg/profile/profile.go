package profile

import "fmt"

// AuthMode selects the authentication strategy for a connection request.
type AuthMode int

const (
	// SQLLogin authenticates with a database-local account (uid/pwd).
	SQLLogin AuthMode = iota

	// DomainLogin authenticates against the domain directory.
	DomainLogin

	// StandaloneWindowsLogin authenticates with Windows credentials against
	// a server that is not joined to a domain. Requires the FreeTDS driver.
	StandaloneWindowsLogin
)

// String returns the canonical name used in configs and error messages.
func (m AuthMode) String() string {
	switch m {
	case SQLLogin:
		return "sql"
	case DomainLogin:
		return "domain"
	case StandaloneWindowsLogin:
		return "windows"
	default:
		return fmt.Sprintf("authmode(%d)", int(m))
	}
}

// ParseAuthMode maps a config value to an AuthMode.
// Accepts the canonical names plus common aliases.
func ParseAuthMode(s string) (AuthMode, error) {
	switch s {
	case "", "sql", "sql_login":
		return SQLLogin, nil
	case "domain", "domain_login", "kerberos":
		return DomainLogin, nil
	case "windows", "windows_login", "standalone":
		return StandaloneWindowsLogin, nil
	default:
		return 0, fmt.Errorf("unknown auth mode: %q (expected: sql, domain, windows)", s)
	}
}

// DriverKind selects the driver backend the profile is rendered for.
type DriverKind int

const (
	// ODBCDriver17 is Microsoft's "ODBC Driver 17 for SQL Server".
	ODBCDriver17 DriverKind = iota

	// FreeTDS is the FreeTDS ODBC driver.
	FreeTDS
)

// String returns the canonical name used in configs and error messages.
func (d DriverKind) String() string {
	switch d {
	case ODBCDriver17:
		return "odbc17"
	case FreeTDS:
		return "freetds"
	default:
		return fmt.Sprintf("driver(%d)", int(d))
	}
}

// ParseDriverKind maps a config value to a DriverKind.
func ParseDriverKind(s string) (DriverKind, error) {
	switch s {
	case "", "odbc17", "odbc", "msodbc17":
		return ODBCDriver17, nil
	case "freetds", "tds":
		return FreeTDS, nil
	default:
		return 0, fmt.Errorf("unknown driver kind: %q (expected: odbc17, freetds)", s)
	}
}

// Default values applied before validation. Port and TDS version therefore
// never show up as missing fields.
const (
	DefaultPort       = 1433
	DefaultTDSVersion = "8.0"
)

// ConnectionRequest is the raw input to Resolve. Optional string fields use
// the empty string for "not supplied"; an explicitly empty value and an
// absent one are treated identically.
type ConnectionRequest struct {
	Server   string
	User     string
	Domain   string
	Password string
	Database string

	// Port of the server endpoint. 0 means DefaultPort.
	Port int

	// Driver selects the backend the profile is rendered for.
	Driver DriverKind

	// TDSVersion is the TDS protocol version requested from FreeTDS.
	// Empty means DefaultTDSVersion. Ignored by ODBC Driver 17.
	TDSVersion string

	Auth AuthMode
}

// withDefaults returns a copy with port and TDS version filled in.
func (r ConnectionRequest) withDefaults() ConnectionRequest {
	if r.Port == 0 {
		r.Port = DefaultPort
	}
	if r.TDSVersion == "" {
		r.TDSVersion = DefaultTDSVersion
	}
	return r
}

// ConnectionProfile is a fully-resolved, driver-specific parameter set ready
// to hand to a connector. Profiles are only produced by Resolve and must be
// treated as immutable by callers.
type ConnectionProfile struct {
	Driver   DriverKind
	Server   string
	Database string
	Port     int

	// UID and PWD are set for credential-based strategies. For domain
	// credentials on FreeTDS, UID carries the DOMAIN\user form.
	UID string
	PWD string

	// TrustedConnection marks integrated (SSPI) authentication; UID/PWD are
	// empty when it is set.
	TrustedConnection bool

	// Encryption is set to "require" on the FreeTDS integrated-auth
	// fallback, empty otherwise.
	Encryption string

	// TDSVersion is set only for FreeTDS profiles.
	TDSVersion string
}

// Redacted returns a printable summary with the password masked.
func (p ConnectionProfile) Redacted() string {
	auth := "trusted_connection=yes"
	if !p.TrustedConnection {
		auth = fmt.Sprintf("uid=%s pwd=****", p.UID)
	}
	s := fmt.Sprintf("driver=%s server=%s port=%d database=%s %s",
		p.Driver, p.Server, p.Port, p.Database, auth)
	if p.Encryption != "" {
		s += " encryption=" + p.Encryption
	}
	if p.TDSVersion != "" {
		s += " tds_version=" + p.TDSVersion
	}
	return s
}
