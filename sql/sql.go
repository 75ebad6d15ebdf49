package sql

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormLogger "gorm.io/gorm/logger"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/runtime/options"
	"github.com/iotaledger/intervals/db"
	"github.com/iotaledger/intervals/logger"
)

// DatabaseParameters selects the engine and the location of the database.
type DatabaseParameters struct {
	Engine db.Engine

	// SQLite
	Path     string
	Filename string

	// PostgreSQL
	Host     string
	Port     uint
	Database string
	Username string
	Password string
}

// AllowedEngines contains the engines the store can be used with.
var AllowedEngines = []db.Engine{db.EngineAuto, db.EngineSQLite, db.EnginePostgreSQL}

type gormDatabaseOptions struct {
	gormConfig       *gorm.Config
	gormLoggerConfig gormLogger.Config
	pingTimeout      time.Duration
}

// WithGormConfig allows to set the gorm config.
// HINT: The Logger setting will be overwritten by the internal default value or by the value set by WithGormLoggerConfig.
func WithGormConfig(config *gorm.Config) options.Option[gormDatabaseOptions] {
	return func(o *gormDatabaseOptions) {
		o.gormConfig = config
	}
}

// WithGormLoggerConfig allows to set the gorm logger config.
func WithGormLoggerConfig(config gormLogger.Config) options.Option[gormDatabaseOptions] {
	return func(o *gormDatabaseOptions) {
		o.gormLoggerConfig = config
	}
}

// WithPingTimeout sets how long opening the database waits for the first successful ping.
func WithPingTimeout(timeout time.Duration) options.Option[gormDatabaseOptions] {
	return func(o *gormDatabaseOptions) {
		o.pingTimeout = timeout
	}
}

// NewDatabase opens the gorm database described by the parameters. The engine of an existing SQLite database is taken
// from its database info file.
func NewDatabase(log *logger.Logger, dbParams DatabaseParameters, createDatabaseIfNotExists bool, allowedEngines []db.Engine, opts ...options.Option[gormDatabaseOptions]) (*gorm.DB, db.Engine, error) {
	targetEngine, err := db.CheckEngine(dbParams.Path, createDatabaseIfNotExists, dbParams.Engine, allowedEngines)
	if err != nil {
		return nil, db.EngineUnknown, err
	}

	dbDialector, err := dialector(targetEngine, dbParams)
	if err != nil {
		return nil, db.EngineUnknown, ierrors.Wrapf(err, "supported engines: %s", db.GetSupportedEnginesString(allowedEngines))
	}

	gormDBOptions := options.Apply(&gormDatabaseOptions{
		gormConfig: &gorm.Config{},
		gormLoggerConfig: gormLogger.Config{
			SlowThreshold:             100 * time.Millisecond,
			LogLevel:                  gormLogger.Warn,
			IgnoreRecordNotFoundError: true,
			Colorful:                  false,
		},
		pingTimeout: 10 * time.Second,
	}, opts,
		func(o *gormDatabaseOptions) {
			// gorm messages end up in the logger of the store
			o.gormConfig.Logger = gormLogger.New(newLogger(log), o.gormLoggerConfig)
		},
	)

	database, err := gorm.Open(dbDialector, gormDBOptions.gormConfig)
	if err != nil {
		return nil, db.EngineUnknown, err
	}

	sqlDB, err := database.DB()
	if err != nil {
		return nil, db.EngineUnknown, ierrors.Wrap(err, "failed to access database connection")
	}

	if targetEngine != db.EnginePostgreSQL {
		// sqlite serializes writers anyway, a single connection avoids "database is locked" errors
		sqlDB.SetMaxOpenConns(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), gormDBOptions.pingTimeout)
	defer cancel()

	if err = sqlDB.PingContext(ctx); err != nil {
		_ = sqlDB.Close()

		return nil, db.EngineUnknown, ierrors.Wrapf(err, "failed to reach %s database", targetEngine)
	}

	return database, targetEngine, nil
}

func dialector(engine db.Engine, dbParams DatabaseParameters) (gorm.Dialector, error) {
	//nolint:exhaustive // only the engines of AllowedEngines can reach this point
	switch engine {
	case db.EngineSQLite, db.EngineAuto:
		return sqlite.Open(fmt.Sprintf("file:%s?&_journal_mode=WAL&_busy_timeout=60000", filepath.Join(dbParams.Path, dbParams.Filename))), nil
	case db.EnginePostgreSQL:
		return postgres.Open(fmt.Sprintf("host='%s' user='%s' password='%s' dbname='%s' port=%d", dbParams.Host, dbParams.Username, dbParams.Password, dbParams.Database, dbParams.Port)), nil
	default:
		return nil, ierrors.Errorf("unknown database engine: %s", engine)
	}
}
