package sqldb

import (
	"context"
	"fmt"
	"strings"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	qb "github.com/riskibarqy/draft-prospects/internal/platform/querybuilder"
	"github.com/uptrace/opentelemetry-go-extra/otelsql"
	"github.com/uptrace/opentelemetry-go-extra/otelsqlx"
	_ "modernc.org/sqlite"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
)

const tableName = "nba_draft"

// createTableQuery is valid for both SQLite and Postgres. The table has no
// key; ID uniqueness is a convention only.
const createTableQuery = `
CREATE TABLE IF NOT EXISTS nba_draft (
    Player VARCHAR(50),
    Position VARCHAR(5),
    ID VARCHAR(100),
    Draft_Year INT,
    Projected_SPM FLOAT,
    Superstar FLOAT,
    Starter FLOAT,
    Role_Player FLOAT,
    Bust FLOAT
)`

// Open connects to the store for driver and dsn. For sqlite the dsn is a file
// path and the file is created on first use. No schema is enforced here.
func Open(ctx context.Context, driver, dsn string) (*sqlx.DB, error) {
	driver = strings.ToLower(strings.TrimSpace(driver))
	if driver != DriverSQLite && driver != DriverPostgres {
		return nil, fmt.Errorf("unsupported driver %q", driver)
	}
	if strings.TrimSpace(dsn) == "" {
		return nil, fmt.Errorf("%s dsn is required", driver)
	}

	db, err := otelsqlx.Open(driver, dsn,
		otelsql.WithDBSystem(driver),
		otelsql.WithQueryFormatter(formatQueryForTrace),
	)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}
	if driver == DriverSQLite {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("ping %s: %w", driver, err)
	}

	return db, nil
}

// EnsureSchema creates the prospect table when it does not exist yet.
func EnsureSchema(ctx context.Context, db *sqlx.DB) error {
	if _, err := db.ExecContext(ctx, createTableQuery); err != nil {
		return fmt.Errorf("create %s table: %w", tableName, err)
	}
	return nil
}

func placeholderFormat(driverName string) qb.PlaceholderFormat {
	if driverName == DriverPostgres {
		return qb.Dollar
	}
	return qb.Question
}
