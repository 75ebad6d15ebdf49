package sql

import (
	"github.com/iotaledger/intervals/logger"
)

// sqlLogger forwards the messages of gorm to the logger of the store.
type sqlLogger struct {
	*logger.WrappedLogger
}

func newLogger(log *logger.Logger) *sqlLogger {
	return &sqlLogger{
		WrappedLogger: logger.NewWrappedLogger(log),
	}
}

func (l *sqlLogger) Printf(t string, args ...interface{}) {
	l.LogWarnf(t, args...)
}
