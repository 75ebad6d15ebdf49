package interval

import (
	"fmt"
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/marshalutil"
)

// region ValueType ////////////////////////////////////////////////////////////////////////////////////////////////////

const (
	// Int64ValueType represents the type of Int64Values.
	Int64ValueType ValueType = iota

	// Uint64ValueType represents the type of Uint64Values.
	Uint64ValueType

	// Float64ValueType represents the type of Float64Values.
	Float64ValueType

	// DecimalValueType represents the type of DecimalValues.
	DecimalValueType

	// DateValueType represents the type of DateValues.
	DateValueType

	// TimeValueType represents the type of TimeValues.
	TimeValueType
)

// ValueTypeNames contains a dictionary of the names of ValueTypes.
var ValueTypeNames = [...]string{
	"int64",
	"uint64",
	"float64",
	"decimal",
	"date",
	"time",
}

// ValueType represents the type different kinds of Values.
type ValueType int8

// ValueTypeFromName returns the ValueType with the given name (as returned by ValueType.String).
func ValueTypeFromName(name string) (ValueType, error) {
	for valueType, valueTypeName := range ValueTypeNames {
		if strings.EqualFold(valueTypeName, name) {
			return ValueType(valueType), nil
		}
	}

	return 0, ierrors.Wrapf(ErrUnsupportedValueType, "unknown value type name %q", name)
}

// ValueTypeFromMarshalUtil unmarshals a ValueType using a MarshalUtil (for easier unmarshalling).
func ValueTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (valueType ValueType, err error) {
	valueTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		return 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read ValueType: %w", err)
	}

	if valueType = ValueType(valueTypeByte); valueType < 0 || int(valueType) >= len(ValueTypeNames) {
		return valueType, ierrors.Wrapf(ErrUnsupportedValueType, "unknown ValueType (%X)", valueTypeByte)
	}

	return valueType, nil
}

// Parser returns the ValueParser for Values of this type.
func (v ValueType) Parser() (ValueParser, error) {
	switch v {
	case Int64ValueType:
		return ParseInt64, nil
	case Uint64ValueType:
		return ParseUint64, nil
	case Float64ValueType:
		return ParseFloat64, nil
	case DecimalValueType:
		return ParseDecimal, nil
	case DateValueType:
		return ParseDate, nil
	case TimeValueType:
		return ParseTime, nil
	default:
		return nil, ierrors.Wrapf(ErrUnsupportedValueType, "no parser for %s", v)
	}
}

// Bytes returns a marshaled version of the ValueType.
func (v ValueType) Bytes() []byte {
	return []byte{byte(v)}
}

// String returns a human-readable representation of the ValueType.
func (v ValueType) String() string {
	if v < 0 || int(v) >= len(ValueTypeNames) {
		return fmt.Sprintf("ValueType(%X)", uint8(v))
	}

	return ValueTypeNames[v]
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Value ////////////////////////////////////////////////////////////////////////////////////////////////////////

// Value is an interface that is used by the Intervals to compare different Values. It is required to keep the Interval
// generic.
type Value interface {
	// Type returns the type of the Value. It can be used to tell different ValueTypes apart and write polymorphic code.
	Type() ValueType

	// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
	Compare(other Value) int

	// Bytes returns a marshaled version of the Value.
	Bytes() []byte

	// String returns the natural textual form of the Value.
	String() string
}

// ValueParser parses a Value from its textual form.
type ValueParser func(text string) (Value, error)

// ValueFromMarshalUtil unmarshals a Value using a MarshalUtil (for easier unmarshalling).
func ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (value Value, err error) {
	valueType, err := ValueTypeFromMarshalUtil(marshalUtil)
	if err != nil {
		return nil, ierrors.Wrap(err, "failed to parse ValueType from MarshalUtil")
	}

	switch valueType {
	case Int64ValueType:
		value, err = int64ValueFromMarshalUtil(marshalUtil)
	case Uint64ValueType:
		value, err = uint64ValueFromMarshalUtil(marshalUtil)
	case Float64ValueType:
		value, err = float64ValueFromMarshalUtil(marshalUtil)
	case DecimalValueType:
		value, err = decimalValueFromMarshalUtil(marshalUtil)
	case DateValueType:
		value, err = dateValueFromMarshalUtil(marshalUtil)
	case TimeValueType:
		value, err = timeValueFromMarshalUtil(marshalUtil)
	}
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to parse %s: %w", valueType, err)
	}

	return value, nil
}

// compareTyped is the shared implementation of Value.Compare. It panics if the other Value has a different type.
func compareTyped[V Value](value V, other Value, compare func(a, b V) int) int {
	typeCastedOtherValue, typeCastOK := other.(V)
	if !typeCastOK {
		panic(fmt.Sprintf("can only compare a %s value to another %s value (got %T)", value.Type(), value.Type(), other))
	}

	return compare(value, typeCastedOtherValue)
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
