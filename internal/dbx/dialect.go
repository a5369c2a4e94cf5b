package dbx

import (
	"fmt"
	"strconv"
	"strings"
)

// Dialect captures the differences between the SQL engines the portal
// supports. Queries are written with '?' placeholders and rebound per
// dialect.
type Dialect struct {
	// Name is the user-facing driver name accepted in configuration.
	Name string
	// DriverName is the database/sql driver registered by the import.
	DriverName string
	// GooseDialect is the dialect name understood by goose.
	GooseDialect string

	numbered  bool
	forUpdate string
}

var (
	// SQLite is the embedded engine used by single-node deployments.
	SQLite = Dialect{Name: "sqlite", DriverName: "sqlite", GooseDialect: "sqlite3"}

	// Postgres is used for shared deployments; row locks are taken with
	// SELECT ... FOR UPDATE.
	Postgres = Dialect{Name: "postgres", DriverName: "pgx", GooseDialect: "postgres", numbered: true, forUpdate: " FOR UPDATE"}
)

// DialectFor resolves a configured driver name.
func DialectFor(name string) (Dialect, error) {
	switch strings.ToLower(name) {
	case "sqlite", "sqlite3":
		return SQLite, nil
	case "postgres", "postgresql", "pgx":
		return Postgres, nil
	default:
		return Dialect{}, fmt.Errorf("unsupported database driver %q", name)
	}
}

// Rebind converts '?' placeholders to the dialect's native form.
// Question marks inside single-quoted literals are left alone.
func (d Dialect) Rebind(query string) string {
	if !d.numbered {
		return query
	}

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
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ForUpdate returns the row-locking suffix for SELECT statements, or an
// empty string when the engine serializes writers on its own.
func (d Dialect) ForUpdate() string {
	return d.forUpdate
}
