package main

import (
	"github.com/iotaledger/intervals/db"
	"github.com/iotaledger/intervals/logger"
	"github.com/iotaledger/intervals/sql"
)

// ParametersInterval contains the definition of the parameters used by the canonicalization.
type ParametersInterval struct {
	// Type is the name of the value type of the bounds.
	Type string `default:"int64" usage:"the value type of the bounds (int64/uint64/float64/decimal/date/time)"`
	// LowerInclusive defines the inclusivity of the canonical lower bound.
	LowerInclusive bool `default:"true" usage:"whether the canonical lower bound is inclusive"`
	// UpperInclusive defines the inclusivity of the canonical upper bound.
	UpperInclusive bool `default:"false" usage:"whether the canonical upper bound is inclusive"`
	// Steps overrides or adds step sizes of value types.
	Steps []string `usage:"step sizes in the form type=size, i.e. decimal=0.01 or time=1s"`
}

// ParametersStore contains the definition of the parameters used by the interval store.
type ParametersStore struct {
	// Enabled defines whether named intervals are saved.
	Enabled bool `default:"false" usage:"whether named intervals are saved to the interval store"`
	// Engine is the database engine.
	Engine string `default:"sqlite" usage:"the database engine (sqlite/postgresql)"`

	SQLite struct {
		Path     string `default:"intervalsdb" usage:"the path to the database folder"`
		Filename string `default:"intervals.db" usage:"the name of the database file"`
	} `name:"sqlite"`

	PostgreSQL struct {
		Host     string `default:"localhost" usage:"the host of the postgresql server"`
		Port     int    `default:"5432" usage:"the port of the postgresql server"`
		Database string `default:"intervals" usage:"the name of the database"`
		Username string `default:"intervals" usage:"the name of the database user"`
		Password string `default:"" usage:"the password of the database user"`
	} `name:"postgresql"`
}

// Parameters contains all parameters of the command.
type Parameters struct {
	Interval ParametersInterval
	Store    ParametersStore
	Logger   logger.Config
}

// DatabaseParameters returns the parameters of the interval store database.
func (p *ParametersStore) DatabaseParameters() sql.DatabaseParameters {
	return sql.DatabaseParameters{
		Engine:   db.EngineFromString(p.Engine),
		Path:     p.SQLite.Path,
		Filename: p.SQLite.Filename,
		Host:     p.PostgreSQL.Host,
		Port:     uint(p.PostgreSQL.Port),
		Database: p.PostgreSQL.Database,
		Username: p.PostgreSQL.Username,
		Password: p.PostgreSQL.Password,
	}
}
