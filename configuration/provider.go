package configuration

import (
	"strings"

	"github.com/knadh/koanf"
	"github.com/knadh/koanf/maps"
	"github.com/spf13/pflag"

	"github.com/iotaledger/hive.go/ierrors"
)

// ErrUnsupportedProviderMethod is returned by provider methods that are not implemented.
var ErrUnsupportedProviderMethod = ierrors.New("flag provider does not support this method")

// flagProvider is a koanf.Provider that reads the flags of a pflag.FlagSet with lower case keys.
//
// Flags that were not set on the command line only contribute their default value if the key is not known to the
// Koanf instance yet, so defaults never overwrite values of config files or env vars.
type flagProvider struct {
	flagSet *pflag.FlagSet
	delim   string
	ko      *koanf.Koanf
}

func newFlagProvider(flagSet *pflag.FlagSet, delim string, ko *koanf.Koanf) *flagProvider {
	return &flagProvider{
		flagSet: flagSet,
		delim:   delim,
		ko:      ko,
	}
}

// Read returns the flag values as a nested map (the key "a.b" becomes {a: {b: value}}).
func (p *flagProvider) Read() (map[string]interface{}, error) {
	values := make(map[string]interface{})
	p.flagSet.VisitAll(func(f *pflag.Flag) {
		key := strings.ToLower(f.Name)
		if !f.Changed && (p.ko == nil || p.ko.Exists(key)) {
			return
		}

		values[key] = p.typedValue(f)
	})

	return maps.Unflatten(values, p.delim), nil
}

// typedValue returns the value of the flag as the type koanf expects for it.
func (p *flagProvider) typedValue(f *pflag.Flag) interface{} {
	switch f.Value.Type() {
	case "int":
		value, _ := p.flagSet.GetInt(f.Name)

		return int64(value)
	case "int64":
		value, _ := p.flagSet.GetInt64(f.Name)

		return value
	case "float64":
		value, _ := p.flagSet.GetFloat64(f.Name)

		return value
	case "bool":
		value, _ := p.flagSet.GetBool(f.Name)

		return value
	case "duration":
		value, _ := p.flagSet.GetDuration(f.Name)

		return value
	case "stringSlice":
		value, _ := p.flagSet.GetStringSlice(f.Name)

		return value
	default:
		return f.Value.String()
	}
}

// ReadBytes is not supported by the flag provider.
func (p *flagProvider) ReadBytes() ([]byte, error) {
	return nil, ErrUnsupportedProviderMethod
}

// Watch is not supported by the flag provider.
func (p *flagProvider) Watch(_ func(event interface{}, err error)) error {
	return ErrUnsupportedProviderMethod
}
