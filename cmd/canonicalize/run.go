package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/configuration"
	"github.com/iotaledger/intervals/interval"
	"github.com/iotaledger/intervals/logger"
	"github.com/iotaledger/intervals/sql"
)

const (
	// envPrefix is the prefix of the environment variables that override the configuration.
	envPrefix = "INTERVALS"

	// nameSeparator separates the name of an interval from its textual form.
	nameSeparator = "="
)

// run parses the arguments, canonicalizes every given interval and writes the results to the writer.
func run(ctx context.Context, args []string, stdout io.Writer) error {
	params := &Parameters{}
	config := configuration.New()

	flagSet := configuration.NewUnsortedFlagSet("canonicalize", flag.ContinueOnError)
	configFilePath := flagSet.StringP("config", "c", "", "file path of the configuration file (json/yaml/toml)")
	config.BindParameters(flagSet, "interval", &params.Interval)
	config.BindParameters(flagSet, "store", &params.Store)
	config.BindParameters(flagSet, "logger", &params.Logger)

	if err := flagSet.Parse(args); err != nil {
		return ierrors.Wrap(err, "failed to parse flags")
	}

	if err := loadConfiguration(config, flagSet, *configFilePath); err != nil {
		return err
	}
	config.UpdateBoundParameters()

	log, err := logger.NewRootLoggerFromConfiguration(config)
	if err != nil {
		return ierrors.Wrap(err, "failed to create logger")
	}
	//nolint:errcheck // syncing stderr fails on some platforms
	defer log.Sync()

	if flagSet.NArg() == 0 {
		return ierrors.New("no intervals given")
	}

	valueType, err := interval.ValueTypeFromName(params.Interval.Type)
	if err != nil {
		return err
	}

	parser, err := valueType.Parser()
	if err != nil {
		return err
	}

	stepRegistry, err := newStepRegistry(params.Interval.Steps, log)
	if err != nil {
		return err
	}

	var store *sql.Store
	if params.Store.Enabled {
		if store, err = sql.New(params.Store.DatabaseParameters(), sql.WithLogger(log), sql.WithStepRegistry(stepRegistry)); err != nil {
			return ierrors.Wrap(err, "failed to open interval store")
		}
		defer func() {
			if closeErr := store.Close(); closeErr != nil {
				log.Warnf("failed to close interval store: %s", closeErr)
			}
		}()
	}

	for _, arg := range flagSet.Args() {
		name, text, named := strings.Cut(arg, nameSeparator)
		if !named {
			text = arg
		}

		parsedInterval, err := interval.FromString(text, parser)
		if err != nil {
			return ierrors.Wrapf(err, "invalid interval %q", arg)
		}

		canonical := interval.CanonicalizeTo(parsedInterval, params.Interval.LowerInclusive, params.Interval.UpperInclusive, interval.WithStepRegistry(stepRegistry))
		log.Debugf("canonicalized %s to %s", parsedInterval, canonical)

		if named {
			fmt.Fprintf(stdout, "%s%s%s\n", name, nameSeparator, canonical)
		} else {
			fmt.Fprintln(stdout, canonical)
		}

		if named && store != nil {
			if err := store.Save(ctx, name, parsedInterval); err != nil {
				return err
			}
		}
	}

	return nil
}

// loadConfiguration merges the configuration file, the flags and the environment variables. Flags that were set
// explicitly win over environment variables, environment variables win over the configuration file.
func loadConfiguration(config *configuration.Configuration, flagSet *flag.FlagSet, configFilePath string) error {
	if configFilePath != "" {
		if err := config.LoadFile(configFilePath); err != nil {
			return ierrors.Wrap(err, "failed to load configuration file")
		}
	}

	if err := config.LoadFlagSet(flagSet); err != nil {
		return ierrors.Wrap(err, "failed to load flags")
	}

	if err := config.LoadEnvironmentVars(envPrefix); err != nil {
		return ierrors.Wrap(err, "failed to load environment variables")
	}

	// load the flags again to overwrite env vars that were also set via command line
	if err := config.LoadFlagSet(flagSet); err != nil {
		return ierrors.Wrap(err, "failed to load flags")
	}

	return nil
}

// newStepRegistry creates a StepRegistry with the default steps and the ones given as "type=size".
func newStepRegistry(stepDefinitions []string, log *logger.Logger) (*interval.StepRegistry, error) {
	stepRegistry := interval.NewDefaultStepRegistry(interval.WithLogger(log))

	for _, stepDefinition := range stepDefinitions {
		if stepDefinition == "" {
			continue
		}

		typeName, size, found := strings.Cut(stepDefinition, nameSeparator)
		if !found {
			return nil, ierrors.Errorf("invalid step %q, expected type=size", stepDefinition)
		}

		valueType, err := interval.ValueTypeFromName(strings.TrimSpace(typeName))
		if err != nil {
			return nil, err
		}

		sample, step, err := interval.ParseStep(valueType, strings.TrimSpace(size))
		if err != nil {
			return nil, err
		}

		stepRegistry.Register(sample, step)
	}

	return stepRegistry, nil
}
