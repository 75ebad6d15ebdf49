package interval

import (
	"cmp"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/marshalutil"
)

// Float64Value is a wrapper for float64 values that makes these values compatible with the Value interface so they can
// be used in Intervals. Float64Values are continuous: no step is registered for them by default. NaN orders before every
// other value.
type Float64Value float64

// ParseFloat64 parses a Float64Value from its textual representation.
func ParseFloat64(text string) (Value, error) {
	parsed, err := strconv.ParseFloat(text, 64)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "invalid float64 %q: %w", text, err)
	}

	return Float64Value(parsed), nil
}

func float64ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Value, error) {
	value, err := marshalUtil.ReadFloat64()
	if err != nil {
		return nil, err
	}

	return Float64Value(value), nil
}

// Type returns the type of the Value. It can be used to tell different ValueTypes apart and write polymorphic code.
func (f Float64Value) Type() ValueType {
	return Float64ValueType
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (f Float64Value) Compare(other Value) int {
	return compareTyped(f, other, cmp.Compare[Float64Value])
}

// Bytes returns a marshaled version of the Value.
func (f Float64Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Float64Size).
		Write(Float64ValueType).
		WriteFloat64(float64(f)).
		Bytes()
}

// String returns a human-readable version of the Value.
func (f Float64Value) String() string {
	return strconv.FormatFloat(float64(f), 'g', -1, 64)
}

// code contract (make sure the type implements all required methods).
var _ Value = Float64Value(0)
