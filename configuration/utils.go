package configuration

import (
	"reflect"
	"strconv"
	"time"
	"unicode"

	"github.com/iotaledger/hive.go/ierrors"
)

var (
	boolType        = reflect.TypeOf(false)
	durationType    = reflect.TypeOf(time.Duration(0))
	intType         = reflect.TypeOf(int(0))
	int64Type       = reflect.TypeOf(int64(0))
	stringType      = reflect.TypeOf("")
	stringSliceType = reflect.TypeOf([]string{})
)

func mustParseInt(name string, value string) int64 {
	parsedValue, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		panic(ierrors.Wrapf(err, "invalid default value for parameter %s", name))
	}

	return parsedValue
}

func lowerCamelCase(str string) string {
	runes := []rune(str)
	runeCount := len(runes)

	if runeCount == 0 || unicode.IsLower(runes[0]) {
		return str
	}

	runes[0] = unicode.ToLower(runes[0])
	if runeCount == 1 || unicode.IsLower(runes[1]) {
		return string(runes)
	}

	for i := 1; i < runeCount; i++ {
		if i+1 < runeCount && unicode.IsLower(runes[i+1]) {
			break
		}

		runes[i] = unicode.ToLower(runes[i])
	}

	return string(runes)
}
