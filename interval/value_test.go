package interval

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/intervals/marshalutil"
)

func TestValue_Compare(t *testing.T) {
	require.Equal(t, -1, Int64Value(1).Compare(Int64Value(2)))
	require.Equal(t, 0, Int64Value(2).Compare(Int64Value(2)))
	require.Equal(t, 1, Int64Value(3).Compare(Int64Value(2)))
	require.Equal(t, 1, Uint64Value(math.MaxUint64).Compare(Uint64Value(0)))
	require.Equal(t, -1, Float64Value(-0.5).Compare(Float64Value(0.25)))
	require.Equal(t, 0, MustParseDecimal("1.50").Compare(MustParseDecimal("1.5")))
	require.Equal(t, -1, NewDateValue(2000, 2, 2).Compare(NewDateValue(2000, 2, 3)))
	require.Equal(t, 1, NewTimeValue(time.Unix(10, 1)).Compare(NewTimeValue(time.Unix(10, 0))))

	require.Panics(t, func() {
		Int64Value(1).Compare(Uint64Value(1))
	})
}

func TestValue_String(t *testing.T) {
	require.Equal(t, "-3", Int64Value(-3).String())
	require.Equal(t, "18446744073709551615", Uint64Value(math.MaxUint64).String())
	require.Equal(t, "0.25", Float64Value(0.25).String())
	require.Equal(t, "12.345", MustParseDecimal("12.345").String())
	require.Equal(t, "2000-02-29", NewDateValue(2000, 2, 29).String())
	require.Equal(t, "2000-03-01", NewDateValue(2000, 2, 30).String())
	require.Equal(t, "2024-01-02T03:04:05.5Z", NewTimeValue(time.Date(2024, 1, 2, 3, 4, 5, 500000000, time.UTC)).String())
}

func TestValue_Parse(t *testing.T) {
	tests := []struct {
		valueType ValueType
		text      string
		expected  string
		wantErr   bool
	}{
		{valueType: Int64ValueType, text: "-42", expected: "-42"},
		{valueType: Int64ValueType, text: "4.2", wantErr: true},
		{valueType: Uint64ValueType, text: "42", expected: "42"},
		{valueType: Uint64ValueType, text: "-1", wantErr: true},
		{valueType: Float64ValueType, text: "1e3", expected: "1000"},
		{valueType: DecimalValueType, text: "0.010", expected: "0.01"},
		{valueType: DecimalValueType, text: "one", wantErr: true},
		{valueType: DateValueType, text: "2000-02-02", expected: "2000-02-02"},
		{valueType: DateValueType, text: "2000-02-30", wantErr: true},
		{valueType: TimeValueType, text: "2024-01-02T03:04:05+01:00", expected: "2024-01-02T02:04:05Z"},
		{valueType: TimeValueType, text: "yesterday", wantErr: true},
	}

	for _, test := range tests {
		t.Run(test.valueType.String()+"/"+test.text, func(t *testing.T) {
			parser, err := test.valueType.Parser()
			require.NoError(t, err)

			value, err := parser(test.text)
			if test.wantErr {
				require.ErrorIs(t, err, ErrParseStringFailed)

				return
			}

			require.NoError(t, err)
			require.Equal(t, test.valueType, value.Type())
			require.Equal(t, test.expected, value.String())
		})
	}
}

func TestValueType(t *testing.T) {
	for _, name := range ValueTypeNames {
		valueType, err := ValueTypeFromName(name)
		require.NoError(t, err)
		require.Equal(t, name, valueType.String())
	}

	valueType, err := ValueTypeFromName("DATE")
	require.NoError(t, err)
	require.Equal(t, DateValueType, valueType)

	_, err = ValueTypeFromName("string")
	require.ErrorIs(t, err, ErrUnsupportedValueType)

	_, err = ValueType(42).Parser()
	require.ErrorIs(t, err, ErrUnsupportedValueType)
	require.Equal(t, "ValueType(2A)", ValueType(42).String())
}

func TestValue_MarshalUnmarshal(t *testing.T) {
	for _, value := range []Value{
		Int64Value(math.MinInt64),
		Uint64Value(math.MaxUint64),
		Float64Value(-1.25),
		MustParseDecimal("-123456789.000000001"),
		NewDateValue(1969, 12, 31),
		NewDateValue(2000, 2, 2),
		NewTimeValue(time.Date(2024, 1, 2, 3, 4, 5, 6, time.UTC)),
	} {
		t.Run(value.Type().String(), func(t *testing.T) {
			marshalUtil := marshalutil.New(value.Bytes())

			unmarshaledValue, err := ValueFromMarshalUtil(marshalUtil)
			require.NoError(t, err)
			require.Equal(t, len(value.Bytes()), marshalUtil.ReadOffset())
			require.Equal(t, value.Type(), unmarshaledValue.Type())
			require.Equal(t, 0, value.Compare(unmarshaledValue))
			require.Equal(t, value.String(), unmarshaledValue.String())
		})
	}

	_, err := ValueFromMarshalUtil(marshalutil.New([]byte{byte(Int64ValueType), 1, 2}))
	require.ErrorIs(t, err, ErrParseBytesFailed)

	_, err = ValueFromMarshalUtil(marshalutil.New([]byte{42}))
	require.ErrorIs(t, err, ErrUnsupportedValueType)
}
