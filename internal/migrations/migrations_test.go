package migrations

import (
	"context"
	"fmt"
	"io"
	"strings"
	"testing"
	"time"

	"github.com/golang-migrate/migrate/v4/source/iofs"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	tc "github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

func TestEmbeddedMigrations(t *testing.T) {
	src, err := iofs.New(files, "sql")
	require.NoError(t, err)
	defer src.Close()

	first, err := src.First()
	require.NoError(t, err)
	assert.Equal(t, uint(1), first)

	up, _, err := src.ReadUp(first)
	require.NoError(t, err)
	body, err := io.ReadAll(up)
	require.NoError(t, err)
	up.Close()

	for _, table := range []string{"hosts", "clients", "cars", "payment_methods"} {
		assert.True(t, strings.Contains(string(body), "CREATE TABLE IF NOT EXISTS "+table), table)
	}
	assert.Contains(t, string(body), "uq_payment_methods_default")

	down, _, err := src.ReadDown(first)
	require.NoError(t, err)
	down.Close()
}

func TestUp_InvalidDSN(t *testing.T) {
	err := Up("not a url")
	assert.Error(t, err)
}

func TestDown_InvalidDSN(t *testing.T) {
	err := Down("not a url")
	assert.Error(t, err)
}

func TestUpDown(t *testing.T) {
	ctx := context.Background()

	container, err := tc.GenericContainer(ctx, tc.GenericContainerRequest{
		ContainerRequest: tc.ContainerRequest{
			Image:        "postgres:15-alpine",
			Env:          map[string]string{"POSTGRES_PASSWORD": "password", "POSTGRES_DB": "testdb", "POSTGRES_USER": "postgres"},
			ExposedPorts: []string{"5432/tcp"},
			WaitingFor:   wait.ForListeningPort("5432/tcp"),
		},
		Started: true,
	})
	require.NoError(t, err)
	t.Cleanup(func() { container.Terminate(context.Background()) })

	host, err := container.Host(ctx)
	require.NoError(t, err)
	port, err := container.MappedPort(ctx, "5432")
	require.NoError(t, err)
	dsn := fmt.Sprintf("postgres://postgres:password@%s:%d/testdb?sslmode=disable", host, port.Int())

	var db *sqlx.DB
	require.Eventually(t, func() bool {
		db, err = sqlx.Connect("pgx", dsn)
		return err == nil
	}, 30*time.Second, 500*time.Millisecond)
	t.Cleanup(func() { db.Close() })

	tableExists := func(name string) bool {
		var exists bool
		require.NoError(t, db.GetContext(ctx, &exists, "SELECT to_regclass($1) IS NOT NULL", "public."+name))
		return exists
	}

	require.NoError(t, Up(dsn))
	assert.True(t, tableExists("cars"))

	// a second run is a no-op
	require.NoError(t, Up(dsn))

	require.NoError(t, Down(dsn))
	for _, table := range []string{"hosts", "clients", "cars", "payment_methods"} {
		assert.False(t, tableExists(table), table)
	}

	require.NoError(t, Up(dsn))
	assert.True(t, tableExists("payment_methods"))
}
