//go:build database

package integration

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// exerciseBackend runs the store-backed commands against one database.
func exerciseBackend(t *testing.T, backend, connStr string) {
	t.Helper()
	env := []string{
		"HEROTIER_PROFILE_BACKEND=" + backend,
		"HEROTIER_PROFILE_DB_CONNECT=" + connStr,
		"HEROTIER_HISTORY_BACKEND=" + backend,
		"HEROTIER_HISTORY_DB_CONNECT=" + connStr,
	}

	// Start from empty tables
	_, err := runHerotier(t, env, "profile", "clear")
	require.NoError(t, err)
	_, err = runHerotier(t, env, "history", "clear")
	require.NoError(t, err)

	_, err = runHerotier(t, env, "history", "migrate")
	require.NoError(t, err)

	_, err = runHerotier(t, env, "profile", "save", "party", "--preset", "multiplayer", "--weights-override", "economy:9")
	require.NoError(t, err)

	_, err = runHerotier(t, env, "tiers", "--profile", "party", "--preset", "multiplayer", "--limit", "5")
	require.NoError(t, err)

	out, err := runHerotier(t, env, "profile", "list")
	require.NoError(t, err)
	assert.Contains(t, out, "party")

	out, err = runHerotier(t, env, "profile", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Profiles: 1")

	out, err = runHerotier(t, env, "history", "status")
	require.NoError(t, err)
	assert.Contains(t, out, "Total Runs: 1")
}

// TestHerotierWithMySQL tests the herotier CLI with a MySQL backend.
func TestHerotierWithMySQL(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "herotier",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(60 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/herotier", host, port.Port())
	exerciseBackend(t, "mysql", connStr)
}

// TestHerotierWithPostgres tests the herotier CLI with a PostgreSQL backend.
func TestHerotierWithPostgres(t *testing.T) {
	ctx := context.Background()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()

	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())
	exerciseBackend(t, "postgresql", connStr)
}
