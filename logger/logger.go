package logger

import (
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/configuration"
)

// Logger is the underlying logger used by all components.
type Logger = zap.SugaredLogger

// NewRootLogger creates a new root logger from the provided configuration.
func NewRootLogger(cfg Config) (*Logger, error) {
	var level zapcore.Level
	if err := level.UnmarshalText([]byte(cfg.Level)); err != nil {
		return nil, ierrors.Wrapf(err, "invalid log level %q", cfg.Level)
	}

	zapCfg := zap.Config{
		Level:             zap.NewAtomicLevelAt(level),
		DisableCaller:     cfg.DisableCaller,
		DisableStacktrace: cfg.DisableStacktrace,
		Encoding:          cfg.Encoding,
		EncoderConfig:     defaultEncoderConfig,
		OutputPaths:       cfg.OutputPaths,
		ErrorOutputPaths:  []string{"stderr"},
	}

	logger, err := zapCfg.Build()
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to build zap logger")
	}

	return logger.Sugar(), nil
}

// NewRootLoggerFromConfiguration creates a new root logger from the values found in the configuration. Keys that are
// missing fall back to DefaultCfg.
func NewRootLoggerFromConfiguration(config *configuration.Configuration) (*Logger, error) {
	cfg := DefaultCfg

	// get config values one by one, nested groups defined with pflags are not unmarshaled as a struct
	if val := config.String(ConfigurationKeyLevel); val != "" {
		cfg.Level = val
	}
	if config.Exists(ConfigurationKeyDisableCaller) {
		cfg.DisableCaller = config.Bool(ConfigurationKeyDisableCaller)
	}
	if config.Exists(ConfigurationKeyDisableStacktrace) {
		cfg.DisableStacktrace = config.Bool(ConfigurationKeyDisableStacktrace)
	}
	if val := config.String(ConfigurationKeyEncoding); val != "" {
		cfg.Encoding = val
	}
	if val := config.Strings(ConfigurationKeyOutputPaths); len(val) > 0 {
		cfg.OutputPaths = val
	}

	return NewRootLogger(cfg)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() *Logger {
	return zap.NewNop().Sugar()
}
