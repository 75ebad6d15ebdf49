package interval

import (
	"github.com/shopspring/decimal"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/marshalutil"
)

// DecimalValue wraps an arbitrary precision decimal. DecimalValues are continuous unless a tick size is registered for
// them (see NewDecimalStep).
type DecimalValue struct {
	decimal decimal.Decimal
}

// NewDecimalValue creates a DecimalValue from the given decimal.
func NewDecimalValue(value decimal.Decimal) DecimalValue {
	return DecimalValue{decimal: value}
}

// ParseDecimal parses a DecimalValue from its textual representation.
func ParseDecimal(text string) (Value, error) {
	parsed, err := decimal.NewFromString(text)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "invalid decimal %q: %w", text, err)
	}

	return NewDecimalValue(parsed), nil
}

// MustParseDecimal parses a DecimalValue and panics on error.
func MustParseDecimal(text string) DecimalValue {
	value, err := ParseDecimal(text)
	if err != nil {
		panic(err)
	}

	return value.(DecimalValue)
}

func decimalValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Value, error) {
	text, err := marshalUtil.ReadString()
	if err != nil {
		return nil, err
	}

	return ParseDecimal(text)
}

// Decimal returns the wrapped decimal.
func (d DecimalValue) Decimal() decimal.Decimal {
	return d.decimal
}

// Type returns the type of the Value. It can be used to tell different ValueTypes apart and write polymorphic code.
func (d DecimalValue) Type() ValueType {
	return DecimalValueType
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d DecimalValue) Compare(other Value) int {
	return compareTyped(d, other, func(a, b DecimalValue) int {
		return a.decimal.Cmp(b.decimal)
	})
}

// Bytes returns a marshaled version of the Value.
func (d DecimalValue) Bytes() []byte {
	return marshalutil.New().
		Write(DecimalValueType).
		WriteString(d.decimal.String()).
		Bytes()
}

// String returns a human-readable version of the Value.
func (d DecimalValue) String() string {
	return d.decimal.String()
}

// code contract (make sure the type implements all required methods).
var _ Value = DecimalValue{}
