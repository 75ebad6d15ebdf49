package interval

import (
	"cmp"
	"strconv"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/marshalutil"
)

// region Int64Value ///////////////////////////////////////////////////////////////////////////////////////////////////

// Int64Value is a wrapper for int64 values that makes these values compatible with the Value interface, so they can be
// used in Intervals.
type Int64Value int64

// ParseInt64 parses an Int64Value from its decimal representation.
func ParseInt64(text string) (Value, error) {
	parsed, err := strconv.ParseInt(text, 10, 64)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "invalid int64 %q: %w", text, err)
	}

	return Int64Value(parsed), nil
}

func int64ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Value, error) {
	value, err := marshalUtil.ReadInt64()
	if err != nil {
		return nil, err
	}

	return Int64Value(value), nil
}

// Type returns the type of the Value. It can be used to tell different ValueTypes apart and write polymorphic code.
func (i Int64Value) Type() ValueType {
	return Int64ValueType
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Int64Value) Compare(other Value) int {
	return compareTyped(i, other, cmp.Compare[Int64Value])
}

// Bytes returns a marshaled version of the Value.
func (i Int64Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Int64Size).
		Write(Int64ValueType).
		WriteInt64(int64(i)).
		Bytes()
}

// String returns a human-readable version of the Value.
func (i Int64Value) String() string {
	return strconv.FormatInt(int64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value = Int64Value(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region Uint64Value //////////////////////////////////////////////////////////////////////////////////////////////////

// Uint64Value is a wrapper for uint64 values that makes these values compatible with the Value interface so they can be
// used in Intervals.
type Uint64Value uint64

// ParseUint64 parses an Uint64Value from its decimal representation.
func ParseUint64(text string) (Value, error) {
	parsed, err := strconv.ParseUint(text, 10, 64)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "invalid uint64 %q: %w", text, err)
	}

	return Uint64Value(parsed), nil
}

func uint64ValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Value, error) {
	value, err := marshalUtil.ReadUint64()
	if err != nil {
		return nil, err
	}

	return Uint64Value(value), nil
}

// Type returns the type of the Value. It can be used to tell different ValueTypes apart and write polymorphic code.
func (i Uint64Value) Type() ValueType {
	return Uint64ValueType
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (i Uint64Value) Compare(other Value) int {
	return compareTyped(i, other, cmp.Compare[Uint64Value])
}

// Bytes returns a marshaled version of the Value.
func (i Uint64Value) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Uint64Size).
		Write(Uint64ValueType).
		WriteUint64(uint64(i)).
		Bytes()
}

// String returns a human-readable version of the Value.
func (i Uint64Value) String() string {
	return strconv.FormatUint(uint64(i), 10)
}

// code contract (make sure the type implements all required methods).
var _ Value = Uint64Value(0)

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
