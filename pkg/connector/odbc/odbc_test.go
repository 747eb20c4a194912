package odbc_test

import (
	"strings"
	"testing"

	"github.com/ruslano69/mssql-connect/pkg/connector/odbc"
	"github.com/ruslano69/mssql-connect/pkg/profile"
)

// resolve is a test helper that fails on validation errors.
func resolve(t *testing.T, req profile.ConnectionRequest) profile.ConnectionProfile {
	t.Helper()
	p, _, err := profile.Resolve(req)
	if err != nil {
		t.Fatalf("Failed to resolve profile: %v", err)
	}
	return p
}

func TestBuildConnString_SQLLogin_ODBC17(t *testing.T) {
	p := resolve(t, profile.ConnectionRequest{
		Server:   "db01",
		Database: "billing",
		User:     "alice",
		Password: "secret",
		Auth:     profile.SQLLogin,
	})

	got := odbc.BuildConnString(p)
	want := "Driver={ODBC Driver 17 for SQL Server};Server=db01,1433;Database=billing;UID=alice;PWD=secret"
	if got != want {
		t.Errorf("Connection string mismatch:\n got:  %s\n want: %s", got, want)
	}
}

func TestBuildConnString_SQLLogin_FreeTDS(t *testing.T) {
	p := resolve(t, profile.ConnectionRequest{
		Server:   "db01",
		Database: "billing",
		User:     "alice",
		Password: "secret",
		Driver:   profile.FreeTDS,
		Auth:     profile.SQLLogin,
	})

	got := odbc.BuildConnString(p)
	want := "Driver={FreeTDS};Server=db01;Port=1433;Database=billing;UID=alice;PWD=secret;TDS_Version=8.0"
	if got != want {
		t.Errorf("Connection string mismatch:\n got:  %s\n want: %s", got, want)
	}
}

func TestBuildConnString_DomainLogin_ODBC17(t *testing.T) {
	p := resolve(t, profile.ConnectionRequest{
		Server:   "db01",
		Database: "billing",
		Auth:     profile.DomainLogin,
	})

	got := odbc.BuildConnString(p)
	want := "Driver={ODBC Driver 17 for SQL Server};Server=db01,1433;Database=billing;Trusted_Connection=yes"
	if got != want {
		t.Errorf("Connection string mismatch:\n got:  %s\n want: %s", got, want)
	}
}

func TestBuildConnString_DomainLogin_FreeTDS_Credentials(t *testing.T) {
	p := resolve(t, profile.ConnectionRequest{
		Server:   "db01",
		Database: "billing",
		User:     "alice",
		Domain:   "CORP",
		Password: "p",
		Driver:   profile.FreeTDS,
		Auth:     profile.DomainLogin,
	})

	got := odbc.BuildConnString(p)
	if !strings.Contains(got, `UID=CORP\alice`) {
		t.Errorf("Expected domain-qualified uid, got: %s", got)
	}
	if !strings.Contains(got, "TDS_Version=8.0") {
		t.Errorf("Expected TDS version attribute, got: %s", got)
	}
}

func TestBuildConnString_DomainLogin_FreeTDS_Fallback(t *testing.T) {
	p := resolve(t, profile.ConnectionRequest{
		Server:   "db01",
		Database: "billing",
		Driver:   profile.FreeTDS,
		Auth:     profile.DomainLogin,
	})

	got := odbc.BuildConnString(p)
	want := "Driver={FreeTDS};Server=db01;Port=1433;Database=billing;Trusted_Connection=yes;Encryption=require;TDS_Version=8.0"
	if got != want {
		t.Errorf("Connection string mismatch:\n got:  %s\n want: %s", got, want)
	}
}

func TestBuildConnString_StandaloneWindowsLogin(t *testing.T) {
	p := resolve(t, profile.ConnectionRequest{
		Server:   "db01",
		Database: "billing",
		User:     "svc_backup",
		Domain:   "WORKGROUP",
		Password: "secret",
		Driver:   profile.FreeTDS,
		Auth:     profile.StandaloneWindowsLogin,
	})

	got := odbc.BuildConnString(p)
	if !strings.Contains(got, `UID=WORKGROUP\svc_backup`) {
		t.Errorf("Expected workgroup-qualified uid, got: %s", got)
	}
	if strings.Contains(got, "Trusted_Connection") {
		t.Errorf("Explicit credentials must not render a trusted connection: %s", got)
	}
}

func TestBuildConnString_NoPasswordLeakOnTrusted(t *testing.T) {
	// Trusted profiles carry no credentials at all.
	p := resolve(t, profile.ConnectionRequest{
		Server:   "db01",
		Database: "billing",
		Password: "should-not-appear",
		Auth:     profile.DomainLogin,
	})

	got := odbc.BuildConnString(p)
	if strings.Contains(got, "should-not-appear") || strings.Contains(got, "PWD=") {
		t.Errorf("Trusted connection string leaks credentials: %s", got)
	}
}
