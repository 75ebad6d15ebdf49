package db

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"github.com/iotaledger/hive.go/ierrors"
)

// Engine is the database backend of the interval store.
type Engine string

const (
	EngineUnknown    Engine = "unknown"
	EngineAuto       Engine = "auto"
	EngineSQLite     Engine = "sqlite"
	EnginePostgreSQL Engine = "postgresql"
)

const databaseInfoFilename = "dbinfo"

var (
	// ErrEngineMismatch is returned if the database folder was created with another engine.
	ErrEngineMismatch = ierrors.New("database engine mismatch")

	// ErrDatabaseNotFound is returned if the database folder does not exist and should not be created.
	ErrDatabaseNotFound = ierrors.New("database not found")

	// ErrEngineNotAllowed is returned for engines that are not in the list of allowed engines.
	ErrEngineNotAllowed = ierrors.New("database engine not allowed")
)

type databaseInfo struct {
	Engine string `toml:"databaseEngine"`
}

// EngineFromString parses an engine from a string.
func EngineFromString(engineStr string) Engine {
	if engineStr == "" {
		// no engine specified
		return EngineAuto
	}

	return Engine(strings.ToLower(engineStr))
}

// GetSupportedEnginesString returns a string containing all supported engines separated by "/".
func GetSupportedEnginesString(supportedEngines []Engine) string {
	supportedEngineStrings := make([]string, len(supportedEngines))
	for i, supportedEngine := range supportedEngines {
		supportedEngineStrings[i] = string(supportedEngine)
	}

	return strings.Join(supportedEngineStrings, "/")
}

// EngineAllowed checks if the database engine is allowed.
func EngineAllowed(dbEngine Engine, allowedEngines []Engine) (Engine, error) {
	for _, allowedEngine := range allowedEngines {
		if dbEngine == allowedEngine {
			return dbEngine, nil
		}
	}

	return EngineUnknown, ierrors.Wrapf(ErrEngineNotAllowed, "unknown database engine: %s, supported engines: %s", dbEngine, GetSupportedEnginesString(allowedEngines))
}

// EngineFromStringAllowed parses an engine from a string and checks if the database engine is allowed.
func EngineFromStringAllowed(dbEngineStr string, allowedEngines []Engine) (Engine, error) {
	return EngineAllowed(EngineFromString(dbEngineStr), allowedEngines)
}

// CheckEngine checks if the correct database engine is used.
// This function stores a so called "database info file" in the database folder or
// checks if an existing "database info file" contains the correct engine.
// Otherwise the files in the database folder are not compatible.
func CheckEngine(dbPath string, createDatabaseIfNotExists bool, dbEngine Engine, allowedEngines []Engine) (Engine, error) {
	// check if the given target engine is allowed
	if _, err := EngineAllowed(dbEngine, allowedEngines); err != nil {
		return EngineUnknown, err
	}

	switch dbEngine {
	case EngineUnknown:
		return dbEngine, ierrors.New("the database engine must not be EngineUnknown")
	case EnginePostgreSQL:
		// no need to create or access a "database info file" in case of an external database
		return dbEngine, nil
	}

	dbEngineSpecified := dbEngine != EngineAuto

	dbExists, err := dirExistsAndIsNotEmpty(dbPath)
	if err != nil {
		return EngineUnknown, err
	}

	if !dbExists {
		if !createDatabaseIfNotExists {
			return EngineUnknown, ierrors.Wrapf(ErrDatabaseNotFound, "path: %s", dbPath)
		}

		if !dbEngineSpecified {
			return EngineUnknown, ierrors.New("the database engine must be specified if the database should be newly created")
		}
	}

	dbInfoFilePath := filepath.Join(dbPath, databaseInfoFilename)
	if _, err = os.Stat(dbInfoFilePath); err != nil {
		if !os.IsNotExist(err) {
			return EngineUnknown, ierrors.Wrapf(err, "unable to check database info file (%s)", dbInfoFilePath)
		}

		if !dbEngineSpecified {
			return EngineUnknown, ierrors.Errorf("database info file not found (%s)", dbInfoFilePath)
		}

		// if the dbInfo file does not exist and the dbEngine is given, create the dbInfo file.
		if err := storeDatabaseInfoToFile(dbInfoFilePath, dbEngine); err != nil {
			return EngineUnknown, err
		}

		return dbEngine, nil
	}

	dbEngineFromInfoFile, err := LoadEngineFromFile(dbInfoFilePath, allowedEngines)
	if err != nil {
		return EngineUnknown, err
	}

	// if the dbInfo file exists and the dbEngine is given, compare the engines.
	if dbEngineSpecified && dbEngineFromInfoFile != dbEngine {
		return dbEngineFromInfoFile, ErrEngineMismatch
	}

	return dbEngineFromInfoFile, nil
}

// LoadEngineFromFile returns the engine from the "database info file".
func LoadEngineFromFile(path string, allowedEngines []Engine) (Engine, error) {
	infoBytes, err := os.ReadFile(path)
	if err != nil {
		return EngineUnknown, ierrors.Wrap(err, "unable to read database info file")
	}

	var info databaseInfo
	if err := toml.Unmarshal(infoBytes, &info); err != nil {
		return EngineUnknown, ierrors.Wrap(err, "unable to parse database info file")
	}

	return EngineFromStringAllowed(info.Engine, allowedEngines)
}

// storeDatabaseInfoToFile stores the used engine in a "database info file".
func storeDatabaseInfoToFile(filePath string, engine Engine) error {
	dirPath := filepath.Dir(filePath)

	if err := os.MkdirAll(dirPath, 0700); err != nil {
		return ierrors.Wrapf(err, "could not create database dir '%s'", dirPath)
	}

	infoBytes, err := toml.Marshal(&databaseInfo{
		Engine: string(engine),
	})
	if err != nil {
		return ierrors.Wrap(err, "unable to marshal database info")
	}

	header := []byte("# auto-generated\n# !!! do not modify this file !!!\n")

	return os.WriteFile(filePath, append(header, infoBytes...), 0600)
}

func dirExistsAndIsNotEmpty(dirPath string) (bool, error) {
	entries, err := os.ReadDir(dirPath)
	if err != nil {
		if os.IsNotExist(err) {
			return false, nil
		}

		return false, ierrors.Wrapf(err, "unable to read database dir '%s'", dirPath)
	}

	return len(entries) > 0, nil
}
