package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/intervals/db"
	"github.com/iotaledger/intervals/interval"
	"github.com/iotaledger/intervals/sql"
)

func runCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()

	var stdout bytes.Buffer
	err := run(context.Background(), append([]string{"--logger.level=error"}, args...), &stdout)

	return stdout.String(), err
}

func TestRun(t *testing.T) {
	tests := []struct {
		name     string
		args     []string
		expected string
	}{
		{
			name:     "defaults",
			args:     []string{"[1,4]", "(1,7)"},
			expected: "[1, 5)\n[2, 7)\n",
		},
		{
			name:     "closed",
			args:     []string{"--interval.upperInclusive", "(1,7)"},
			expected: "[2, 6]\n",
		},
		{
			name:     "open-closed",
			args:     []string{"--interval.lowerInclusive=false", "--interval.upperInclusive=true", "[1,7]"},
			expected: "(0, 7]\n",
		},
		{
			name:     "dates",
			args:     []string{"--interval.type", "date", "week=[2000-02-02, 2000-02-06]"},
			expected: "week=[2000-02-02, 2000-02-07)\n",
		},
		{
			name:     "custom step",
			args:     []string{"--interval.type", "decimal", "--interval.steps", "decimal=0.01", "[1.00, 1.99]"},
			expected: "[1, 2)\n",
		},
		{
			name:     "continuous",
			args:     []string{"--interval.type", "float64", "[0.5, 1.5]"},
			expected: "[0.5, 1.5)\n",
		},
		{
			name:     "unbounded",
			args:     []string{"(-inf, 3]"},
			expected: "(-inf, 4)\n",
		},
		{
			name:     "empty",
			args:     []string{"--interval.upperInclusive", "(3,4)", "[4, 3]"},
			expected: "[4, 3]\n[4, 3]\n",
		},
		{
			name:     "empty half-open",
			args:     []string{"[4, 3]"},
			expected: "[4, 4)\n",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			output, err := runCommand(t, test.args...)
			require.NoError(t, err)
			require.Equal(t, test.expected, output)
		})
	}
}

func TestRun_Errors(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"--unknown"},
		{"[1, 2"},
		{"[1, 2, 3]"},
		{"--interval.type", "string", "[1, 2]"},
		{"--interval.steps", "decimal", "[1, 2]"},
		{"--config", "missing.json", "[1, 2]"},
	} {
		_, err := runCommand(t, args...)
		require.Error(t, err, "%v", args)
	}
}

func TestRun_ConfigurationSources(t *testing.T) {
	configFilePath := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(configFilePath, []byte(`{"interval": {"type": "date", "upperInclusive": true}}`), 0600))

	output, err := runCommand(t, "--config", configFilePath, "[2000-02-02, 2000-02-06)")
	require.NoError(t, err)
	require.Equal(t, "[2000-02-02, 2000-02-05]\n", output)

	// explicit flags win over the configuration file
	output, err = runCommand(t, "--config", configFilePath, "--interval.upperInclusive=false", "[2000-02-02, 2000-02-06]")
	require.NoError(t, err)
	require.Equal(t, "[2000-02-02, 2000-02-07)\n", output)

	t.Setenv("INTERVALS_INTERVAL_TYPE", "uint64")
	output, err = runCommand(t, "(0, 9]")
	require.NoError(t, err)
	require.Equal(t, "[1, 10)\n", output)
}

func TestRun_Store(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "db")

	output, err := runCommand(t, "--store.enabled", "--store.sqlite.path", dbPath, "closed=[1,4]", "[7,9]")
	require.NoError(t, err)
	require.Equal(t, "closed=[1, 5)\n[7, 10)\n", output)

	store, err := sql.New(sql.DatabaseParameters{Engine: db.EngineSQLite, Path: dbPath, Filename: "intervals.db"})
	require.NoError(t, err)
	defer store.Close()

	names, err := store.Names(context.Background())
	require.NoError(t, err)
	require.Equal(t, []string{"closed"}, names)

	stored, err := store.Load(context.Background(), "closed")
	require.NoError(t, err)
	require.True(t, interval.Closed(interval.Int64Value(1), interval.Int64Value(4)).Equal(stored))
}
