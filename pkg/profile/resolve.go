package profile

import "fmt"

// Resolve validates a connection request against the chosen driver's
// capabilities and produces a normalized profile for it.
//
// Resolution is pure: it performs no I/O and identical requests yield
// structurally identical profiles. Non-fatal advisories are returned as
// warnings next to a valid profile; a non-nil error means no connection
// attempt must be made with the (zero) profile.
func Resolve(req ConnectionRequest) (ConnectionProfile, []Warning, error) {
	req = req.withDefaults()

	switch req.Auth {
	case SQLLogin:
		return resolveSQLLogin(req)
	case DomainLogin:
		return resolveDomainLogin(req)
	case StandaloneWindowsLogin:
		return resolveStandaloneWindowsLogin(req)
	default:
		return ConnectionProfile{}, nil, fmt.Errorf("unknown auth mode: %d", int(req.Auth))
	}
}

// baseProfile carries the fields shared by every strategy.
func baseProfile(req ConnectionRequest) ConnectionProfile {
	return ConnectionProfile{
		Driver:   req.Driver,
		Server:   req.Server,
		Database: req.Database,
		Port:     req.Port,
	}
}

// resolveSQLLogin handles database-local accounts. Works with both drivers;
// only FreeTDS profiles carry a TDS version.
func resolveSQLLogin(req ConnectionRequest) (ConnectionProfile, []Warning, error) {
	for _, f := range []struct{ name, value string }{
		{"user", req.User},
		{"password", req.Password},
		{"database", req.Database},
	} {
		if f.value == "" {
			return ConnectionProfile{}, nil, missingField(SQLLogin, f.name)
		}
	}

	p := baseProfile(req)
	p.UID = req.User
	p.PWD = req.Password
	if req.Driver == FreeTDS {
		p.TDSVersion = req.TDSVersion
	}
	return p, nil, nil
}

// resolveDomainLogin handles directory accounts. The branching is
// driver-dependent:
//
//   - ODBC Driver 17 performs integrated authentication with the ambient
//     security context; supplied credentials cannot be used and are reported
//     as a warning, not an error.
//   - FreeTDS uses explicit DOMAIN\user credentials when user, domain and
//     password are all present, and falls back to integrated authentication
//     (with required encryption) when any of them is missing.
func resolveDomainLogin(req ConnectionRequest) (ConnectionProfile, []Warning, error) {
	switch req.Driver {
	case ODBCDriver17:
		var warnings []Warning
		if req.User != "" || req.Domain != "" || req.Password != "" {
			warnings = append(warnings, Warning{
				Code:    WarningCredentialsIgnored,
				Message: "credentials ignored; falling back to integrated authentication",
			})
		}
		p := baseProfile(req)
		p.TrustedConnection = true
		return p, warnings, nil

	case FreeTDS:
		p := baseProfile(req)
		p.TDSVersion = req.TDSVersion
		if req.User != "" && req.Domain != "" && req.Password != "" {
			p.UID = req.Domain + `\` + req.User
			p.PWD = req.Password
			return p, nil, nil
		}
		// Incomplete credentials select the integrated path instead of
		// failing: the server still authenticates the ambient context.
		p.TrustedConnection = true
		p.Encryption = "require"
		return p, nil, nil

	default:
		return ConnectionProfile{}, nil, fmt.Errorf("%w: domain login with %s", ErrUnsupportedDriver, req.Driver)
	}
}

// resolveStandaloneWindowsLogin handles Windows accounts on servers outside
// a domain. Only FreeTDS can express this; the driver check runs before any
// field validation so the combination fails the same way regardless of what
// else was supplied.
func resolveStandaloneWindowsLogin(req ConnectionRequest) (ConnectionProfile, []Warning, error) {
	if req.Driver != FreeTDS {
		return ConnectionProfile{}, nil, fmt.Errorf("%w: standalone windows login requires freetds, got %s",
			ErrUnsupportedDriver, req.Driver)
	}

	for _, f := range []struct{ name, value string }{
		{"user", req.User},
		{"domain", req.Domain},
		{"password", req.Password},
		{"database", req.Database},
	} {
		if f.value == "" {
			return ConnectionProfile{}, nil, missingField(StandaloneWindowsLogin, f.name)
		}
	}

	p := baseProfile(req)
	p.UID = req.Domain + `\` + req.User
	p.PWD = req.Password
	p.TDSVersion = req.TDSVersion
	return p, nil, nil
}
