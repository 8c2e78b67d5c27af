package database

import (
	"context"
	"database/sql/driver"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"modernc.org/sqlite"
)

const (
	DriverPostgres = "postgres"
	DriverSQLite   = "sqlite"

	// SQLiteLower is a Unicode aware LOWER registered on every SQLite
	// connection. The built-in one folds ASCII only.
	SQLiteLower = "ulower"
)

var (
	registerOnce sync.Once
	registerErr  error
)

// LowerFunc names the SQL function that lowercases text for the driver a
// sqlx handle was opened with.
func LowerFunc(driverName string) string {
	if driverName == "sqlite3" {
		return SQLiteLower
	}
	return "LOWER"
}

func registerFunctions() error {
	registerOnce.Do(func() {
		registerErr = sqlite.RegisterDeterministicScalarFunction(SQLiteLower, 1, unicodeLower)
	})
	return registerErr
}

func unicodeLower(_ *sqlite.FunctionContext, args []driver.Value) (driver.Value, error) {
	switch v := args[0].(type) {
	case nil:
		return nil, nil
	case string:
		return strings.ToLower(v), nil
	case []byte:
		return strings.ToLower(string(v)), nil
	default:
		return v, nil
	}
}

type Config struct {
	Driver          string
	Host            string
	Port            string
	User            string
	Password        string
	DBName          string
	SSLMode         string
	SQLitePath      string
	MaxOpenConns    int
	MaxIdleConns    int
	ConnMaxLifetime time.Duration
	ConnMaxIdleTime time.Duration
}

// Open connects to the configured driver and pings it.
func Open(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	switch cfg.Driver {
	case DriverSQLite:
		return NewSQLite(ctx, cfg.SQLitePath)
	case DriverPostgres, "":
		return NewPostgres(ctx, cfg)
	default:
		return nil, fmt.Errorf("unsupported database driver %q", cfg.Driver)
	}
}

func NewPostgres(ctx context.Context, cfg *Config) (*sqlx.DB, error) {
	dsn := fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
		cfg.Host, cfg.Port, cfg.User, cfg.Password, cfg.DBName, cfg.SSLMode)

	// pgx registers itself as "pgx"; sqlx needs the postgres name for $n bindvars.
	db, err := sqlx.Open("pgx", dsn)
	if err != nil {
		return nil, fmt.Errorf("open postgres: %w", err)
	}
	db = sqlx.NewDb(db.DB, "postgres")

	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)
	db.SetConnMaxLifetime(cfg.ConnMaxLifetime)
	db.SetConnMaxIdleTime(cfg.ConnMaxIdleTime)

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping postgres: %w", err)
	}
	return db, nil
}

// NewSQLite opens a file backed SQLite database with foreign keys on.
// Bindvars are "?" so the handle is registered under the sqlite3 name.
func NewSQLite(ctx context.Context, path string) (*sqlx.DB, error) {
	if err := registerFunctions(); err != nil {
		return nil, fmt.Errorf("register sqlite functions: %w", err)
	}

	raw, err := sqlx.Open("sqlite", path+"?_pragma=foreign_keys(1)&_pragma=busy_timeout(5000)&_time_format=sqlite")
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	db := sqlx.NewDb(raw.DB, "sqlite3")

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("ping sqlite: %w", err)
	}
	return db, nil
}
