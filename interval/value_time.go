package interval

import (
	"time"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/marshalutil"
)

// region DateValue ////////////////////////////////////////////////////////////////////////////////////////////////////

// DateLayout is the textual form of DateValues.
const DateLayout = "2006-01-02"

// DateValue is a calendar day. It is discrete with a default step of one day.
type DateValue struct {
	// midnight UTC of the day
	time time.Time
}

// NewDateValue creates the DateValue of the given calendar day. Out of range days and months are normalized the way
// time.Date does it.
func NewDateValue(year int, month time.Month, day int) DateValue {
	return DateValue{time: time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// DateValueFromTime returns the calendar day of the given time in its own location.
func DateValueFromTime(t time.Time) DateValue {
	year, month, day := t.Date()

	return NewDateValue(year, month, day)
}

// ParseDate parses a DateValue in the form "2006-01-02".
func ParseDate(text string) (Value, error) {
	parsed, err := time.Parse(DateLayout, text)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "invalid date %q: %w", text, err)
	}

	return DateValueFromTime(parsed), nil
}

func dateValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Value, error) {
	days, err := marshalUtil.ReadInt64()
	if err != nil {
		return nil, err
	}

	return DateValue{time: time.Unix(days*secondsPerDay, 0).UTC()}, nil
}

const secondsPerDay = 24 * 60 * 60

// Year returns the year of the DateValue.
func (d DateValue) Year() int {
	return d.time.Year()
}

// Month returns the month of the DateValue.
func (d DateValue) Month() time.Month {
	return d.time.Month()
}

// Day returns the day of the month of the DateValue.
func (d DateValue) Day() int {
	return d.time.Day()
}

// Time returns midnight UTC of the DateValue.
func (d DateValue) Time() time.Time {
	return d.time
}

// AddDays returns the DateValue the given number of days later (or earlier for negative days).
func (d DateValue) AddDays(days int) DateValue {
	return DateValue{time: d.time.AddDate(0, 0, days)}
}

// Type returns the type of the Value. It can be used to tell different ValueTypes apart and write polymorphic code.
func (d DateValue) Type() ValueType {
	return DateValueType
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (d DateValue) Compare(other Value) int {
	return compareTyped(d, other, func(a, b DateValue) int {
		return a.time.Compare(b.time)
	})
}

// Bytes returns a marshaled version of the Value.
func (d DateValue) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.Int64Size).
		Write(DateValueType).
		WriteInt64(d.time.Unix() / secondsPerDay).
		Bytes()
}

// String returns a human-readable version of the Value.
func (d DateValue) String() string {
	return d.time.Format(DateLayout)
}

// code contract (make sure the type implements all required methods).
var _ Value = DateValue{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region TimeValue ////////////////////////////////////////////////////////////////////////////////////////////////////

// TimeValue is a point in time with nanosecond precision. TimeValues are continuous unless a tick duration is registered
// for them (see NewDurationStep).
type TimeValue struct {
	time time.Time
}

// NewTimeValue creates a TimeValue. The location of the time is dropped, TimeValues are kept in UTC.
func NewTimeValue(t time.Time) TimeValue {
	return TimeValue{time: t.UTC()}
}

// ParseTime parses a TimeValue in RFC3339 form (fractional seconds are optional).
func ParseTime(text string) (Value, error) {
	parsed, err := time.Parse(time.RFC3339Nano, text)
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseStringFailed, "invalid time %q: %w", text, err)
	}

	return NewTimeValue(parsed), nil
}

func timeValueFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (Value, error) {
	t, err := marshalUtil.ReadTime()
	if err != nil {
		return nil, err
	}

	return NewTimeValue(t), nil
}

// Time returns the wrapped time in UTC.
func (t TimeValue) Time() time.Time {
	return t.time
}

// Type returns the type of the Value. It can be used to tell different ValueTypes apart and write polymorphic code.
func (t TimeValue) Type() ValueType {
	return TimeValueType
}

// Compare return 0 if the other Value is identical, -1 if it is bigger and 1 if it is smaller.
func (t TimeValue) Compare(other Value) int {
	return compareTyped(t, other, func(a, b TimeValue) int {
		return a.time.Compare(b.time)
	})
}

// Bytes returns a marshaled version of the Value.
func (t TimeValue) Bytes() []byte {
	return marshalutil.New(1 + marshalutil.TimeSize).
		Write(TimeValueType).
		WriteTime(t.time).
		Bytes()
}

// String returns a human-readable version of the Value.
func (t TimeValue) String() string {
	return t.time.Format(time.RFC3339Nano)
}

// code contract (make sure the type implements all required methods).
var _ Value = TimeValue{}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////
