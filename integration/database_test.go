//go:build database

package integration

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
)

// TestQuizstatsWithMySQL tests the quizstats CLI with a MySQL backend.
func TestQuizstatsWithMySQL(t *testing.T) {
	ctx := context.Background()

	// Start MySQL container
	req := testcontainers.ContainerRequest{
		Image:        "mysql:8",
		ExposedPorts: []string{"3306:3306/tcp"},
		Env: map[string]string{
			"MYSQL_ROOT_PASSWORD": "secret123",
			"MYSQL_DATABASE":      "quizstats",
		},
		WaitingFor: wait.ForLog("port: 3306  MySQL Community Server").WithStartupTimeout(30 * time.Second),
	}
	mysqlC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = mysqlC.Terminate(ctx) }()

	// Get connection details
	host, err := mysqlC.Host(ctx)
	require.NoError(t, err)
	port, err := mysqlC.MappedPort(ctx, "3306")
	require.NoError(t, err)

	connStr := fmt.Sprintf("root:secret123@tcp(%s:%s)/quizstats?parseTime=true", host, port.Port())

	// Set environment variables
	_ = os.Setenv("QUIZSTATS_STORE_BACKEND", "mysql")
	_ = os.Setenv("QUIZSTATS_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("QUIZSTATS_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("QUIZSTATS_STORE_DB_CONNECT") }()

	runStoreLifecycle(t)
}

// TestQuizstatsWithPostgres tests the quizstats CLI with a PostgreSQL backend.
func TestQuizstatsWithPostgres(t *testing.T) {
	ctx := context.Background()

	// Start Postgres container
	req := testcontainers.ContainerRequest{
		Image:        "postgres:18-alpine",
		ExposedPorts: []string{"5432:5432/tcp"},
		Env: map[string]string{
			"POSTGRES_HOST_AUTH_METHOD": "trust",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").WithStartupTimeout(30 * time.Second),
	}
	pgC, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	require.NoError(t, err)
	defer func() { _ = pgC.Terminate(ctx) }()
	time.Sleep(5 * time.Second)

	// Get connection details
	host, err := pgC.Host(ctx)
	require.NoError(t, err)
	port, err := pgC.MappedPort(ctx, "5432")
	require.NoError(t, err)

	connStr := fmt.Sprintf("host=%s port=%s user=postgres dbname=postgres", host, port.Port())

	// Set environment variables
	_ = os.Setenv("QUIZSTATS_STORE_BACKEND", "postgresql")
	_ = os.Setenv("QUIZSTATS_STORE_DB_CONNECT", connStr)
	defer func() { _ = os.Unsetenv("QUIZSTATS_STORE_BACKEND") }()
	defer func() { _ = os.Unsetenv("QUIZSTATS_STORE_DB_CONNECT") }()

	runStoreLifecycle(t)
}

// runStoreLifecycle exercises the full clear/analyze/status flow against
// whatever backend the environment points at.
func runStoreLifecycle(t *testing.T) {
	t.Helper()

	batch := writeSampleBatch(t)

	// Run quizstats store clear
	err := runQuizstatsCommand(t, "store", "clear")
	require.NoError(t, err)

	// Run quizstats analyze with run tracking enabled
	err = runQuizstatsCommand(t, "analyze", batch, "--type", "essay_question")
	require.NoError(t, err)

	// Run quizstats store status
	err = runQuizstatsCommand(t, "store", "status")
	require.NoError(t, err)
}

func runQuizstatsCommand(t *testing.T, args ...string) error {
	quizstatsPath := getQuizstatsBinary()
	cmd := exec.Command(quizstatsPath, args...)
	cmd.Dir = "../" // Run from project root
	output, err := cmd.CombinedOutput()
	if err != nil {
		t.Logf("Command failed: %s\nOutput: %s", cmd.String(), string(output))
		return err
	}
	return nil
}
