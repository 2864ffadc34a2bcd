package database

import (
	"context"
	"database/sql"
	"errors"
	"io/fs"
	"strings"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	dbdriver "github.com/golang-migrate/migrate/v4/database"
	"github.com/golang-migrate/migrate/v4/database/postgres"
	src "github.com/golang-migrate/migrate/v4/source"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"
)

type fakeMigrator struct{ upErr, downErr error }

func (f fakeMigrator) Up() error   { return f.upErr }
func (f fakeMigrator) Down() error { return f.downErr }

func restore() {
	pgxpoolNew = pgxpool.New
	sqlOpenDB = sql.Open
	postgresWithInstanceFn = postgres.WithInstance
	iofsNewFn = iofs.New
	migrateNewWithInstance = func(sourceName string, sourceDriver src.Driver, databaseName string, databaseDriver dbdriver.Driver) (migrateInstance, error) {
		m, err := migrate.NewWithInstance(sourceName, sourceDriver, databaseName, databaseDriver)
		if err != nil {
			return nil, err
		}
		return m, nil
	}
}

// stubMigrationChain 讓 newMigrator 每一步都成功，並回傳指定的 migrator
func stubMigrationChain(m migrateInstance) {
	sqlOpenDB = func(string, string) (*sql.DB, error) { return sql.Open("pgx", "") }
	postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, nil }
	iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, nil }
	migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) { return m, nil }
}

func TestNewPgxPool(t *testing.T) {
	t.Cleanup(restore)
	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return nil, errors.New("bad") }
	_, err := NewPgxPool(context.Background(), "url")
	require.Error(t, err)

	pgxpoolNew = func(context.Context, string) (*pgxpool.Pool, error) { return &pgxpool.Pool{}, nil }
	db, err := NewPgxPool(context.Background(), "url")
	require.NoError(t, err)
	require.NotNil(t, db)
}

func TestMigratorSetupErrors(t *testing.T) {
	steps := []struct {
		name      string
		breakStep func()
	}{
		{"open", func() { sqlOpenDB = func(string, string) (*sql.DB, error) { return nil, errors.New("open") } }},
		{"driver", func() {
			postgresWithInstanceFn = func(*sql.DB, *postgres.Config) (dbdriver.Driver, error) { return nil, errors.New("drv") }
		}},
		{"source", func() { iofsNewFn = func(fs.FS, string) (src.Driver, error) { return nil, errors.New("src") } }},
		{"migrate", func() {
			migrateNewWithInstance = func(string, src.Driver, string, dbdriver.Driver) (migrateInstance, error) {
				return nil, errors.New("mig")
			}
		}},
	}
	for _, s := range steps {
		t.Run(s.name, func(t *testing.T) {
			t.Cleanup(restore)
			stubMigrationChain(fakeMigrator{})
			s.breakStep()
			require.Error(t, RunMigrations("url"))
			require.Error(t, RollbackAll("url"))
		})
	}
}

func TestRunMigrations(t *testing.T) {
	t.Cleanup(restore)

	stubMigrationChain(fakeMigrator{})
	require.NoError(t, RunMigrations("url"))

	stubMigrationChain(fakeMigrator{upErr: migrate.ErrNoChange})
	require.NoError(t, RunMigrations("url"))

	stubMigrationChain(fakeMigrator{upErr: errors.New("u")})
	require.Error(t, RunMigrations("url"))
}

func TestRollbackAll(t *testing.T) {
	t.Cleanup(restore)

	stubMigrationChain(fakeMigrator{})
	require.NoError(t, RollbackAll("url"))

	stubMigrationChain(fakeMigrator{downErr: migrate.ErrNoChange})
	require.NoError(t, RollbackAll("url"))

	stubMigrationChain(fakeMigrator{downErr: errors.New("d")})
	require.Error(t, RollbackAll("url"))
}

func TestEmbeddedMigrations(t *testing.T) {
	entries, err := fs.ReadDir(migrationsFS, "migrations")
	require.NoError(t, err)

	for _, table := range []string{"users", "food", "rentals", "activity_logs"} {
		up, down := false, false
		for _, e := range entries {
			up = up || strings.HasSuffix(e.Name(), "_create_"+table+".up.sql")
			down = down || strings.HasSuffix(e.Name(), "_create_"+table+".down.sql")
		}
		require.True(t, up, "missing up migration for %s", table)
		require.True(t, down, "missing down migration for %s", table)
	}
}
