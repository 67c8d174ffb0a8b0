// Package sqlstore implements the identity and recipe repositories on
// database/sql. One code path serves both embedded SQLite (modernc.org/sqlite)
// and PostgreSQL (pgx stdlib); queries are written with ? placeholders and
// rebound for the target dialect.
package sqlstore

import (
	"context"
	"database/sql"
	"fmt"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	_ "modernc.org/sqlite"
)

const defaultTimeout = 5 * time.Second

// Dialect selects the SQL flavour and the database/sql driver.
type Dialect string

const (
	DialectSQLite   Dialect = "sqlite"
	DialectPostgres Dialect = "postgres"
)

func (d Dialect) driverName() string {
	if d == DialectPostgres {
		return "pgx"
	}
	return "sqlite"
}

// Config captures the settings required to open the database.
type Config struct {
	Dialect Dialect
	DSN     string
	Timeout time.Duration
}

// DB is a database handle bound to a dialect.
type DB struct {
	sql     *sql.DB
	dialect Dialect
	timeout time.Duration
}

// Open connects, verifies connectivity with a ping and applies migrations.
func Open(ctx context.Context, cfg Config) (*DB, error) {
	dialect := cfg.Dialect
	if dialect == "" {
		dialect = DialectSQLite
	}
	dsn := cfg.DSN
	if dialect == DialectSQLite {
		dsn = sqliteDSN(dsn)
	}

	sqlDB, err := sql.Open(dialect.driverName(), dsn)
	if err != nil {
		return nil, fmt.Errorf("sql open: %w", err)
	}
	if dialect == DialectSQLite {
		// SQLite allows one writer; a single connection turns lock
		// contention into queueing inside database/sql.
		sqlDB.SetMaxOpenConns(1)
	}

	db := New(sqlDB, dialect)
	if cfg.Timeout > 0 {
		db.timeout = cfg.Timeout
	}

	pingCtx, cancel := context.WithTimeout(ctx, db.timeout)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("sql ping: %w", err)
	}

	if err := db.Migrate(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

// New wraps an existing handle without pinging or migrating it.
func New(sqlDB *sql.DB, dialect Dialect) *DB {
	return &DB{sql: sqlDB, dialect: dialect, timeout: defaultTimeout}
}

// Ping reports whether the database is reachable.
func (d *DB) Ping(ctx context.Context) error {
	return d.sql.PingContext(ctx)
}

func (d *DB) Close() error {
	return d.sql.Close()
}

// rebind rewrites ? placeholders to $1, $2, ... for PostgreSQL.
func (d *DB) rebind(query string) string {
	if d.dialect != DialectPostgres {
		return query
	}
	var b strings.Builder
	b.Grow(len(query) + 8)
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			b.WriteByte('$')
			b.WriteString(strconv.Itoa(n))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func sqliteDSN(dsn string) string {
	if dsn == "" {
		dsn = "file:moodrecipes.db"
	}
	if strings.Contains(dsn, "busy_timeout") {
		return dsn
	}
	sep := "?"
	if strings.Contains(dsn, "?") {
		sep = "&"
	}
	return dsn + sep + "_pragma=busy_timeout(5000)"
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}
