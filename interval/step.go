package interval

import (
	"fmt"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cast"

	"github.com/iotaledger/hive.go/constraints"
	"github.com/iotaledger/hive.go/ierrors"
)

// Step is the successor/predecessor capability of a discrete ValueType.
//
// Next and Prev return false if the Value has no neighbor in the domain of the type (i.e. Next(MaxInt64)).
type Step interface {
	// Next returns the smallest Value that is bigger than the given one.
	Next(value Value) (next Value, ok bool)

	// Prev returns the biggest Value that is smaller than the given one.
	Prev(value Value) (prev Value, ok bool)
}

// ParseStep creates the Step of the given ValueType from the textual form of its size (i.e. "1" for integers, "7" days
// for dates, "0.01" for decimals or "1s" for times). Integer sizes are always read in base 10. The returned sample
// Value can be used to register the Step.
func ParseStep(valueType ValueType, size string) (sample Value, step Step, err error) {
	defer func() {
		if r := recover(); r != nil {
			sample, step, err = nil, nil, ierrors.Wrapf(ErrParseStringFailed, "invalid %s step %q: %v", valueType, size, r)
		}
	}()

	switch valueType {
	case Int64ValueType:
		delta, err := strconv.ParseInt(size, 10, 64)
		if err != nil {
			return nil, nil, ierrors.Wrapf(ErrParseStringFailed, "invalid int64 step %q: %w", size, err)
		}

		return Int64Value(0), NewIntegerStep(Int64Value(delta)), nil
	case Uint64ValueType:
		delta, err := strconv.ParseUint(size, 10, 64)
		if err != nil {
			return nil, nil, ierrors.Wrapf(ErrParseStringFailed, "invalid uint64 step %q: %w", size, err)
		}

		return Uint64Value(0), NewIntegerStep(Uint64Value(delta)), nil
	case DecimalValueType:
		tick, err := decimal.NewFromString(size)
		if err != nil {
			return nil, nil, ierrors.Wrapf(ErrParseStringFailed, "invalid decimal step %q: %w", size, err)
		}

		return DecimalValue{}, NewDecimalStep(tick), nil
	case DateValueType:
		days, err := strconv.Atoi(size)
		if err != nil {
			return nil, nil, ierrors.Wrapf(ErrParseStringFailed, "invalid date step %q: %w", size, err)
		}

		return DateValue{}, NewDateStep(days), nil
	case TimeValueType:
		duration, err := cast.ToDurationE(size)
		if err != nil {
			return nil, nil, ierrors.Wrapf(ErrParseStringFailed, "invalid time step %q: %w", size, err)
		}

		return TimeValue{}, NewDurationStep(duration), nil
	default:
		return nil, nil, ierrors.Wrapf(ErrUnsupportedValueType, "%s values can not be stepped", valueType)
	}
}

// region integerStep //////////////////////////////////////////////////////////////////////////////////////////////////

// IntegerValue is a constraint that permits the integer based Values.
type IntegerValue interface {
	Value
	constraints.Integer
}

type integerStep[V IntegerValue] struct {
	delta V
}

// NewIntegerStep returns a Step that moves integer based Values by the given delta. Next and Prev report false instead
// of wrapping around at the limits of the underlying integer type.
func NewIntegerStep[V IntegerValue](delta V) Step {
	if delta <= 0 {
		panic(fmt.Sprintf("integer step must be positive (got %d)", delta))
	}

	return &integerStep[V]{delta: delta}
}

func (s *integerStep[V]) Next(value Value) (Value, bool) {
	current := mustCast[V](value)
	if next := current + s.delta; next > current {
		return next, true
	}

	return nil, false
}

func (s *integerStep[V]) Prev(value Value) (Value, bool) {
	current := mustCast[V](value)
	if prev := current - s.delta; prev < current {
		return prev, true
	}

	return nil, false
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region dateStep /////////////////////////////////////////////////////////////////////////////////////////////////////

type dateStep struct {
	days int
}

// NewDateStep returns a Step that moves DateValues by the given number of days.
func NewDateStep(days int) Step {
	if days <= 0 {
		panic(fmt.Sprintf("date step must be positive (got %d)", days))
	}

	return &dateStep{days: days}
}

func (s *dateStep) Next(value Value) (Value, bool) {
	return mustCast[DateValue](value).AddDays(s.days), true
}

func (s *dateStep) Prev(value Value) (Value, bool) {
	return mustCast[DateValue](value).AddDays(-s.days), true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region decimalStep //////////////////////////////////////////////////////////////////////////////////////////////////

type decimalStep struct {
	tick decimal.Decimal
}

// NewDecimalStep returns a Step that treats DecimalValues as discrete with the given tick size (i.e. 0.01 for cents).
func NewDecimalStep(tick decimal.Decimal) Step {
	if !tick.IsPositive() {
		panic(fmt.Sprintf("decimal tick must be positive (got %s)", tick))
	}

	return &decimalStep{tick: tick}
}

func (s *decimalStep) Next(value Value) (Value, bool) {
	return NewDecimalValue(mustCast[DecimalValue](value).decimal.Add(s.tick)), true
}

func (s *decimalStep) Prev(value Value) (Value, bool) {
	return NewDecimalValue(mustCast[DecimalValue](value).decimal.Sub(s.tick)), true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

// region durationStep /////////////////////////////////////////////////////////////////////////////////////////////////

type durationStep struct {
	duration time.Duration
}

// NewDurationStep returns a Step that treats TimeValues as discrete with the given resolution (i.e. time.Second).
func NewDurationStep(duration time.Duration) Step {
	if duration <= 0 {
		panic(fmt.Sprintf("duration step must be positive (got %s)", duration))
	}

	return &durationStep{duration: duration}
}

func (s *durationStep) Next(value Value) (Value, bool) {
	return NewTimeValue(mustCast[TimeValue](value).time.Add(s.duration)), true
}

func (s *durationStep) Prev(value Value) (Value, bool) {
	return NewTimeValue(mustCast[TimeValue](value).time.Add(-s.duration)), true
}

// endregion ///////////////////////////////////////////////////////////////////////////////////////////////////////////

func mustCast[V Value](value Value) V {
	typeCastedValue, ok := value.(V)
	if !ok {
		var zero V
		panic(fmt.Sprintf("step for %s values can not be applied to %T", zero.Type(), value))
	}

	return typeCastedValue
}
