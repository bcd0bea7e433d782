package db

import (
	"context"
	"fmt"
	"os"
	"testing"

	"github.com/jackc/pgx/v4/pgxpool"
)

const (
	TEST_DB_URL_ENV          = "TEST_POSTGRESQL_URL"
	TEST_MIGRATIONS_PATH_ENV = "TEST_MIGRATIONS_PATH"
)

// SkipWithoutTestDB skips database suites unless a test database is configured.
func SkipWithoutTestDB(t *testing.T) {
	t.Helper()
	if os.Getenv(TEST_DB_URL_ENV) == "" {
		t.Skipf("%s is not set.", TEST_DB_URL_ENV)
	}
}

func applyMigrations(connString string) {
	migrationsPath := os.Getenv(TEST_MIGRATIONS_PATH_ENV)
	if migrationsPath == "" {
		panic(TEST_MIGRATIONS_PATH_ENV + " must be set.")
	}
	m, err := NewMigrator(connString, migrationsPath)
	if err != nil {
		panic("Could not connect to DB for applying migrations.")
	}
	defer m.Close()
	if err := m.Up(); err != nil {
		panic(fmt.Sprintf("Could not apply DB migrations %v.", err))
	}
}

func CreateTestPool() *pgxpool.Pool {
	connString := os.Getenv(TEST_DB_URL_ENV)
	if connString == "" {
		panic(TEST_DB_URL_ENV + " must be set.")
	}
	applyMigrations(connString)

	ctx := context.Background()
	pool, err := pgxpool.Connect(ctx, connString)
	if err != nil {
		panic("Could not connect to the database.")
	}

	return pool
}

func TruncateTables(pool *pgxpool.Pool) {
	_, err := pool.Exec(context.Background(), `TRUNCATE "user", session, post RESTART IDENTITY CASCADE`)
	if err != nil {
		panic("Could not truncate DB tables.")
	}
}
