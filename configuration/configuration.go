package configuration

import (
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"time"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	flag "github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	// ErrUnknownConfigFormat is returned if the format of the config file is unknown.
	ErrUnknownConfigFormat = ierrors.New("unknown config file format")
)

// Configuration holds config parameters from several sources (file, env vars, flags).
type Configuration struct {
	config *koanf.Koanf
	// boundParameters keeps track of all parameters that were bound using the BindParameters function.
	boundParameters map[string]*BoundParameter
}

// New returns a new configuration.
func New() *Configuration {
	return &Configuration{
		config:          koanf.New("."),
		boundParameters: make(map[string]*BoundParameter),
	}
}

// NewUnsortedFlagSet creates a FlagSet that prints its flags in the order of their definition.
func NewUnsortedFlagSet(name string, errorHandling flag.ErrorHandling) *flag.FlagSet {
	flagSet := flag.NewFlagSet(name, errorHandling)
	flagSet.SortFlags = false

	return flagSet
}

// LoadFile loads parameters from a JSON, YAML or TOML file and merges them into the loaded config.
// Existing keys will be overwritten.
func (c *Configuration) LoadFile(filePath string) error {
	if _, err := os.Stat(filePath); err != nil {
		return ierrors.Wrapf(err, "unable to access config file %s", filePath)
	}

	parser, err := parserForFile(filePath)
	if err != nil {
		return err
	}

	if err := c.config.Load(file.Provider(filePath), parser); err != nil {
		return ierrors.Wrapf(err, "unable to load config file %s", filePath)
	}

	return nil
}

// LoadFlagSet loads parameters from a FlagSet (spf13/pflag lib) including
// default values and merges them into the loaded config.
// Existing keys will only be overwritten, if they were set via command line.
// If not given via command line, default values will only be used if they did not exist beforehand.
func (c *Configuration) LoadFlagSet(flagSet *flag.FlagSet) error {
	return c.config.Load(newFlagProvider(flagSet, ".", c.config), nil)
}

// LoadEnvironmentVars loads parameters from env vars and merges them into the loaded config.
// The prefix is used to filter the env vars.
// Only existing keys will be overwritten, all other keys are ignored.
func (c *Configuration) LoadEnvironmentVars(prefix string) error {
	if prefix != "" {
		prefix += "_"
	}

	return c.config.Load(env.Provider(prefix, ".", func(s string) string {
		mapKey := strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, prefix)), "_", ".")
		if !c.config.Exists(mapKey) {
			// only accept values from env vars that already exist in the config
			return ""
		}

		return mapKey
	}), nil)
}

// Load takes a Provider that either provides a parsed config map[string]interface{}
// in which case pa (Parser) can be nil, or raw bytes to be parsed, where a Parser
// can be provided to parse.
func (c *Configuration) Load(p koanf.Provider, pa koanf.Parser, opts ...koanf.Option) error {
	return c.config.Load(p, pa, opts...)
}

// Koanf returns the underlying Koanf instance.
func (c *Configuration) Koanf() *koanf.Koanf {
	return c.config
}

// All returns the flattened map of all loaded parameters.
func (c *Configuration) All() map[string]interface{} {
	return c.config.All()
}

// Exists returns true if the given key is present in the configuration.
func (c *Configuration) Exists(key string) bool {
	return c.config.Exists(strings.ToLower(key))
}

// Get returns the raw value of the given key or nil.
func (c *Configuration) Get(key string) interface{} {
	return c.config.Get(strings.ToLower(key))
}

// String returns the string value of the given key.
func (c *Configuration) String(key string) string {
	return c.config.String(strings.ToLower(key))
}

// Strings returns the string slice value of the given key.
func (c *Configuration) Strings(key string) []string {
	return c.config.Strings(strings.ToLower(key))
}

// Bool returns the bool value of the given key.
func (c *Configuration) Bool(key string) bool {
	return c.config.Bool(strings.ToLower(key))
}

// Int returns the int value of the given key.
func (c *Configuration) Int(key string) int {
	return c.config.Int(strings.ToLower(key))
}

// Int64 returns the int64 value of the given key.
func (c *Configuration) Int64(key string) int64 {
	return c.config.Int64(strings.ToLower(key))
}

// Duration returns the time.Duration value of the given key.
func (c *Configuration) Duration(key string) time.Duration {
	return c.config.Duration(strings.ToLower(key))
}

// BoundParameter stores the pointer and the type of values that were bound using the BindParameters function.
type BoundParameter struct {
	boundPointer interface{}
	boundType    reflect.Type
}

// BindParameters defines and binds a set of parameters in a single step by using a struct as the registry and
// definition for the created flags. The flag names are "<namespace>.<lowerCamelCaseFieldName>" unless a name tag is
// given. Defaults are taken from the field values or the default tag, usage information from the usage tag.
// Nested structs extend the namespace.
func (c *Configuration) BindParameters(flagSet *flag.FlagSet, namespace string, pointerToStruct interface{}) {
	val := reflect.ValueOf(pointerToStruct).Elem()
	for i := 0; i < val.NumField(); i++ {
		valueField := val.Field(i)
		typeField := val.Type().Field(i)

		name := namespace + "."
		if tagName, exists := typeField.Tag.Lookup("name"); exists {
			name += tagName
		} else {
			name += lowerCamelCase(typeField.Name)
		}

		shortHand := typeField.Tag.Get("shorthand")
		usage := typeField.Tag.Get("usage")
		tagDefaultValue, hasTagDefault := typeField.Tag.Lookup("default")

		switch defaultValue := valueField.Interface().(type) {
		case bool:
			if hasTagDefault {
				defaultValue = tagDefaultValue == "true"
			}

			flagSet.BoolVarP(valueField.Addr().Interface().(*bool), name, shortHand, defaultValue, usage)
		case time.Duration:
			if hasTagDefault {
				parsedDuration, err := time.ParseDuration(tagDefaultValue)
				if err != nil {
					panic(ierrors.Wrapf(err, "invalid default value for parameter %s", name))
				}
				defaultValue = parsedDuration
			}

			flagSet.DurationVarP(valueField.Addr().Interface().(*time.Duration), name, shortHand, defaultValue, usage)
		case int:
			if hasTagDefault {
				defaultValue = int(mustParseInt(name, tagDefaultValue))
			}

			flagSet.IntVarP(valueField.Addr().Interface().(*int), name, shortHand, defaultValue, usage)
		case int64:
			if hasTagDefault {
				defaultValue = mustParseInt(name, tagDefaultValue)
			}

			flagSet.Int64VarP(valueField.Addr().Interface().(*int64), name, shortHand, defaultValue, usage)
		case string:
			if hasTagDefault {
				defaultValue = tagDefaultValue
			}

			flagSet.StringVarP(valueField.Addr().Interface().(*string), name, shortHand, defaultValue, usage)
		case []string:
			if hasTagDefault {
				defaultValue = strings.Split(tagDefaultValue, ",")
			}

			flagSet.StringSliceVarP(valueField.Addr().Interface().(*[]string), name, shortHand, defaultValue, usage)
		default:
			c.BindParameters(flagSet, name, valueField.Addr().Interface())

			continue
		}

		c.boundParameters[name] = &BoundParameter{
			boundPointer: valueField.Addr().Interface(),
			boundType:    valueField.Type(),
		}
	}
}

// UpdateBoundParameters updates parameters that were bound using the BindParameters method with the current values in
// the configuration.
func (c *Configuration) UpdateBoundParameters() {
	for parameterName, boundParameter := range c.boundParameters {
		if !c.Exists(parameterName) {
			continue
		}

		switch boundParameter.boundType {
		case boolType:
			*(boundParameter.boundPointer.(*bool)) = c.Bool(parameterName)
		case durationType:
			*(boundParameter.boundPointer.(*time.Duration)) = c.Duration(parameterName)
		case intType:
			*(boundParameter.boundPointer.(*int)) = c.Int(parameterName)
		case int64Type:
			*(boundParameter.boundPointer.(*int64)) = c.Int64(parameterName)
		case stringType:
			*(boundParameter.boundPointer.(*string)) = c.String(parameterName)
		case stringSliceType:
			*(boundParameter.boundPointer.(*[]string)) = c.Strings(parameterName)
		}
	}
}

func parserForFile(filePath string) (koanf.Parser, error) {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".json":
		return &JSONLowerParser{}, nil
	case ".yaml", ".yml":
		return &YAMLLowerParser{}, nil
	case ".toml":
		return &TOMLLowerParser{}, nil
	default:
		return nil, ierrors.Wrapf(ErrUnknownConfigFormat, "unsupported extension of %s", filePath)
	}
}
