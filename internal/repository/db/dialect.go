package db

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect hides the SQL differences between the supported backends.
// Repositories write queries with '?' placeholders and pass them through Rebind.
type Dialect interface {
	// DriverName is the database/sql driver name.
	DriverName() string
	// Placeholder returns the parameter marker for the 1-based index.
	Placeholder(index int) string
	// Rebind rewrites '?' markers into the dialect's form.
	Rebind(query string) string
	// Schema returns the DDL statements applied at startup, in order.
	Schema() []string
	// LockSuffix is appended to a SELECT that reads a row about to be rewritten.
	LockSuffix() string
}

func DialectFor(driver string) (Dialect, error) {
	switch strings.ToLower(driver) {
	case "sqlite", "sqlite3":
		return SQLite{}, nil
	case "postgres", "postgresql", "pgx":
		return Postgres{}, nil
	default:
		return nil, fmt.Errorf("unsupported sql driver %q", driver)
	}
}

// SQLite is the embedded default backend (modernc.org/sqlite).
type SQLite struct{}

func (SQLite) DriverName() string         { return "sqlite" }
func (SQLite) Placeholder(int) string     { return "?" }
func (SQLite) Rebind(query string) string { return query }
func (SQLite) Schema() []string           { return schema(sqliteTypes) }
func (SQLite) LockSuffix() string         { return "" }

// Postgres goes through pgx's database/sql adapter.
type Postgres struct{}

func (Postgres) DriverName() string           { return "pgx" }
func (Postgres) Placeholder(index int) string { return "$" + strconv.Itoa(index) }
func (Postgres) Schema() []string             { return schema(postgresTypes) }
func (Postgres) LockSuffix() string           { return " FOR UPDATE" }

// Rebind numbers '?' markers left to right. Markers inside quoted
// literals are left alone.
func (p Postgres) Rebind(query string) string {
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	inQuote := false
	for _, r := range query {
		switch {
		case r == '\'':
			inQuote = !inQuote
			b.WriteRune(r)
		case r == '?' && !inQuote:
			n++
			b.WriteString(p.Placeholder(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}
