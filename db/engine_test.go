package db

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

var allowedEngines = []Engine{EngineAuto, EngineSQLite, EnginePostgreSQL}

func TestEngineFromString(t *testing.T) {
	require.Equal(t, EngineAuto, EngineFromString(""))
	require.Equal(t, EngineSQLite, EngineFromString("SQLite"))
	require.Equal(t, "auto/sqlite/postgresql", GetSupportedEnginesString(allowedEngines))

	engine, err := EngineFromStringAllowed("postgresql", allowedEngines)
	require.NoError(t, err)
	require.Equal(t, EnginePostgreSQL, engine)

	_, err = EngineFromStringAllowed("rocksdb", allowedEngines)
	require.ErrorIs(t, err, ErrEngineNotAllowed)
}

func TestCheckEngine(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "intervals")

	_, err := CheckEngine(dbPath, false, EngineSQLite, allowedEngines)
	require.ErrorIs(t, err, ErrDatabaseNotFound)

	_, err = CheckEngine(dbPath, true, EngineAuto, allowedEngines)
	require.Error(t, err)

	engine, err := CheckEngine(dbPath, true, EngineSQLite, allowedEngines)
	require.NoError(t, err)
	require.Equal(t, EngineSQLite, engine)
	require.FileExists(t, filepath.Join(dbPath, databaseInfoFilename))

	// the info file pins the engine of an existing database
	engine, err = CheckEngine(dbPath, false, EngineAuto, allowedEngines)
	require.NoError(t, err)
	require.Equal(t, EngineSQLite, engine)

	engine, err = LoadEngineFromFile(filepath.Join(dbPath, databaseInfoFilename), allowedEngines)
	require.NoError(t, err)
	require.Equal(t, EngineSQLite, engine)

	require.NoError(t, os.WriteFile(filepath.Join(dbPath, databaseInfoFilename), []byte(`databaseEngine = "postgresql"`), 0600))
	engine, err = CheckEngine(dbPath, false, EngineSQLite, allowedEngines)
	require.ErrorIs(t, err, ErrEngineMismatch)
	require.Equal(t, EnginePostgreSQL, engine)

	// external databases do not touch the file system
	engine, err = CheckEngine(filepath.Join(t.TempDir(), "missing"), false, EnginePostgreSQL, allowedEngines)
	require.NoError(t, err)
	require.Equal(t, EnginePostgreSQL, engine)

	_, err = CheckEngine(dbPath, true, EngineUnknown, []Engine{EngineUnknown})
	require.Error(t, err)
}
