package profile

import (
	"strings"
	"testing"
)

func TestParseAuthMode(t *testing.T) {
	tests := []struct {
		input   string
		want    AuthMode
		wantErr bool
	}{
		{"", SQLLogin, false},
		{"sql", SQLLogin, false},
		{"sql_login", SQLLogin, false},
		{"domain", DomainLogin, false},
		{"kerberos", DomainLogin, false},
		{"windows", StandaloneWindowsLogin, false},
		{"standalone", StandaloneWindowsLogin, false},
		{"ntlm", 0, true},
		{"SQL", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseAuthMode(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseAuthMode(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseAuthMode(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestParseDriverKind(t *testing.T) {
	tests := []struct {
		input   string
		want    DriverKind
		wantErr bool
	}{
		{"", ODBCDriver17, false},
		{"odbc17", ODBCDriver17, false},
		{"odbc", ODBCDriver17, false},
		{"freetds", FreeTDS, false},
		{"tds", FreeTDS, false},
		{"sybase", 0, true},
	}

	for _, tt := range tests {
		got, err := ParseDriverKind(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseDriverKind(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseDriverKind(%q) = %v, want %v", tt.input, got, tt.want)
		}
	}
}

func TestWithDefaults(t *testing.T) {
	r := ConnectionRequest{}.withDefaults()
	if r.Port != DefaultPort {
		t.Errorf("Expected port %d, got %d", DefaultPort, r.Port)
	}
	if r.TDSVersion != DefaultTDSVersion {
		t.Errorf("Expected TDS version %s, got %s", DefaultTDSVersion, r.TDSVersion)
	}

	r = ConnectionRequest{Port: 5000, TDSVersion: "7.3"}.withDefaults()
	if r.Port != 5000 || r.TDSVersion != "7.3" {
		t.Errorf("Explicit values overwritten: port=%d tds=%s", r.Port, r.TDSVersion)
	}
}

func TestRedacted(t *testing.T) {
	p := ConnectionProfile{
		Driver:   FreeTDS,
		Server:   "db01",
		Database: "billing",
		Port:     1433,
		UID:      `CORP\alice`,
		PWD:      "topsecret",
	}

	s := p.Redacted()
	if strings.Contains(s, "topsecret") {
		t.Errorf("Redacted output leaks password: %s", s)
	}
	if !strings.Contains(s, `CORP\alice`) {
		t.Errorf("Redacted output should keep uid: %s", s)
	}
}

func TestMissingFieldError_Message(t *testing.T) {
	err := &MissingFieldError{Mode: StandaloneWindowsLogin, Field: "domain"}
	if got := err.Error(); got != "windows authentication requires domain" {
		t.Errorf("Unexpected message: %s", got)
	}
}
