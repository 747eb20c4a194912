package connector

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/ruslano69/mssql-connect/pkg/profile"
)

// TestResult represents the outcome of a connection test.
type TestResult struct {
	Success  bool     `json:"success"`
	Message  string   `json:"message"`
	Duration int64    `json:"duration"` // milliseconds
	Tables   []string `json:"tables"`   // Available tables (if successful)
	Views    []string `json:"views"`    // Available views (if successful)
}

// Test opens a session with the named connector, pings it and lists the
// tables and views visible to the authenticated principal.
func Test(ctx context.Context, name string, p profile.ConnectionProfile) TestResult {
	startTime := time.Now()

	c, err := New(ctx, name, p)
	if err != nil {
		return TestResult{
			Success:  false,
			Message:  fmt.Sprintf("Failed to open connection: %v", err),
			Duration: time.Since(startTime).Milliseconds(),
		}
	}
	defer c.Close(ctx)

	if err := c.Ping(ctx); err != nil {
		return TestResult{
			Success:  false,
			Message:  fmt.Sprintf("Connection ping failed: %v", err),
			Duration: time.Since(startTime).Milliseconds(),
		}
	}

	tables, views := listTablesAndViews(ctx, c.DB())

	duration := time.Since(startTime).Milliseconds()

	return TestResult{
		Success:  true,
		Message:  fmt.Sprintf("Connected successfully (%dms)", duration),
		Duration: duration,
		Tables:   tables,
		Views:    views,
	}
}

// QuickTest performs a fast connection test without metadata retrieval.
func QuickTest(ctx context.Context, name string, p profile.ConnectionProfile) TestResult {
	startTime := time.Now()

	c, err := New(ctx, name, p)
	if err != nil {
		return TestResult{
			Success:  false,
			Message:  fmt.Sprintf("Failed to open connection: %v", err),
			Duration: time.Since(startTime).Milliseconds(),
		}
	}
	defer c.Close(ctx)

	if err := c.Ping(ctx); err != nil {
		return TestResult{
			Success:  false,
			Message:  fmt.Sprintf("Connection ping failed: %v", err),
			Duration: time.Since(startTime).Milliseconds(),
		}
	}

	duration := time.Since(startTime).Milliseconds()

	return TestResult{
		Success:  true,
		Message:  fmt.Sprintf("Connected successfully (%dms)", duration),
		Duration: duration,
	}
}

const (
	tablesQuery = `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_TYPE = 'BASE TABLE'
		ORDER BY TABLE_NAME
	`
	viewsQuery = `
		SELECT TABLE_NAME
		FROM INFORMATION_SCHEMA.TABLES
		WHERE TABLE_TYPE = 'VIEW'
		ORDER BY TABLE_NAME
	`
)

// listTablesAndViews retrieves table and view names. Errors are tolerated:
// a reachable server with a restricted principal still counts as connected.
func listTablesAndViews(ctx context.Context, db *sql.DB) ([]string, []string) {
	return queryNames(ctx, db, tablesQuery), queryNames(ctx, db, viewsQuery)
}

func queryNames(ctx context.Context, db *sql.DB, query string) []string {
	rows, err := db.QueryContext(ctx, query)
	if err != nil {
		return nil
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err == nil {
			names = append(names, name)
		}
	}
	return names
}
