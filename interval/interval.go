package interval

import (
	"strings"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/lo"
	"github.com/iotaledger/intervals/bitmask"
	"github.com/iotaledger/intervals/marshalutil"
)

const (
	lowerEndPointBit uint = iota
	upperEndPointBit
)

// Interval defines the boundaries around a contiguous span of Values (i.e. "integers from 1 to 100 inclusive").
//
// Each Interval may be bounded or unbounded on either side. If bounded, there is an associated EndPoint value and the
// Interval is considered to be either open (does not include the EndPoint) or closed (includes the EndPoint) on that
// side. Intervals are immutable, all transformations return new Intervals.
//
// With three possibilities on each side, this yields nine basic types of intervals, enumerated below:
//
//	Notation         Definition          Factory method
//	(a, b)           {x | a < x < b}     Open
//	[a, b]           {x | a <= x <= b}   Closed
//	(a, b]           {x | a < x <= b}    OpenClosed
//	[a, b)           {x | a <= x < b}    ClosedOpen
//	(a, inf)         {x | x > a}         GreaterThan
//	[a, inf)         {x | x >= a}        AtLeast
//	(-inf, b)        {x | x < b}         LessThan
//	(-inf, b]        {x | x <= b}        AtMost
//	(-inf, inf)      {x}                 All
//
// Equal EndPoints are allowed for all BoundTypes: [a, a] contains a single value while (a, a), [a, a) and (a, a] are
// empty. A lower EndPoint that is bigger than the upper one is allowed as well and yields an empty Interval, which is
// the form canonicalization produces for empty discrete Intervals (i.e. (3, 4) becomes [4, 3]).
type Interval struct {
	lowerEndPoint *EndPoint
	upperEndPoint *EndPoint
}

// New creates an Interval from the given bounds. A nil bound means that the Interval is unbounded on that side and the
// corresponding inclusive flag is ignored. Crossed bounds (lower > upper) create an empty Interval.
func New(lower Value, upper Value, lowerInclusive bool, upperInclusive bool) (*Interval, error) {
	if lower != nil && upper != nil && lower.Type() != upper.Type() {
		return nil, ierrors.Wrapf(ErrValueTypeMismatch, "lower is %s and upper is %s", lower.Type(), upper.Type())
	}

	interval := new(Interval)
	if lower != nil {
		interval.lowerEndPoint = NewEndPoint(lower, BoundTypeFromInclusive(lowerInclusive))
	}
	if upper != nil {
		interval.upperEndPoint = NewEndPoint(upper, BoundTypeFromInclusive(upperInclusive))
	}

	return interval, nil
}

// MustNew creates an Interval from the given bounds and panics if their ValueTypes differ.
func MustNew(lower Value, upper Value, lowerInclusive bool, upperInclusive bool) *Interval {
	return lo.PanicOnErr(New(lower, upper, lowerInclusive, upperInclusive))
}

// FromBytes unmarshals an Interval from a sequence of bytes.
func FromBytes(intervalBytes []byte) (interval *Interval, consumedBytes int, err error) {
	marshalUtil := marshalutil.New(intervalBytes)
	if interval, err = FromMarshalUtil(marshalUtil); err != nil {
		return nil, 0, ierrors.Wrap(err, "failed to parse Interval from MarshalUtil")
	}

	return interval, marshalUtil.ReadOffset(), nil
}

// FromMarshalUtil unmarshals an Interval using a MarshalUtil (for easier unmarshalling).
func FromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (interval *Interval, err error) {
	endPointExistsMaskByte, err := marshalUtil.ReadByte()
	if err != nil {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "failed to read endpoint exists mask: %w", err)
	}

	var lowerEndPoint, upperEndPoint *EndPoint
	endPointExistsMask := bitmask.BitMask(endPointExistsMaskByte)
	if endPointExistsMask.HasBit(lowerEndPointBit) {
		if lowerEndPoint, err = EndPointFromMarshalUtil(marshalUtil); err != nil {
			return nil, ierrors.Wrap(err, "failed to parse lower EndPoint from MarshalUtil")
		}
	}
	if endPointExistsMask.HasBit(upperEndPointBit) {
		if upperEndPoint, err = EndPointFromMarshalUtil(marshalUtil); err != nil {
			return nil, ierrors.Wrap(err, "failed to parse upper EndPoint from MarshalUtil")
		}
	}

	if lowerEndPoint != nil && upperEndPoint != nil && lowerEndPoint.value.Type() != upperEndPoint.value.Type() {
		return nil, ierrors.Wrapf(ErrParseBytesFailed, "%w: lower is %s and upper is %s", ErrValueTypeMismatch, lowerEndPoint.value.Type(), upperEndPoint.value.Type())
	}

	return &Interval{
		lowerEndPoint: lowerEndPoint,
		upperEndPoint: upperEndPoint,
	}, nil
}

// All returns an Interval that contains all possible Values.
func All() *Interval {
	return &Interval{}
}

// AtLeast returns an Interval that contains all Values greater than or equal to lower.
func AtLeast(lower Value) *Interval {
	return MustNew(lower, nil, true, false)
}

// AtMost returns an Interval that contains all Values less than or equal to upper.
func AtMost(upper Value) *Interval {
	return MustNew(nil, upper, false, true)
}

// GreaterThan returns an Interval that contains all Values strictly greater than lower.
func GreaterThan(lower Value) *Interval {
	return MustNew(lower, nil, false, false)
}

// LessThan returns an Interval that contains all values strictly less than upper.
func LessThan(upper Value) *Interval {
	return MustNew(nil, upper, false, false)
}

// Closed returns an Interval that contains all Values greater than or equal to lower and less than or equal to upper.
func Closed(lower Value, upper Value) *Interval {
	return MustNew(lower, upper, true, true)
}

// ClosedOpen returns an Interval that contains all Values greater than or equal to lower and strictly less than upper.
func ClosedOpen(lower Value, upper Value) *Interval {
	return MustNew(lower, upper, true, false)
}

// Open returns an Interval that contains all Values strictly greater than lower and strictly less than upper.
func Open(lower Value, upper Value) *Interval {
	return MustNew(lower, upper, false, false)
}

// OpenClosed returns an Interval that contains all values strictly greater than lower and less than or equal to upper.
func OpenClosed(lower Value, upper Value) *Interval {
	return MustNew(lower, upper, false, true)
}

// Singleton returns an Interval that contains exactly the given Value.
func Singleton(value Value) *Interval {
	return MustNew(value, value, true, true)
}

// Lower returns the lower bound or nil if the Interval is unbounded below.
func (i *Interval) Lower() Value {
	if i.lowerEndPoint == nil {
		return nil
	}

	return i.lowerEndPoint.value
}

// Upper returns the upper bound or nil if the Interval is unbounded above.
func (i *Interval) Upper() Value {
	if i.upperEndPoint == nil {
		return nil
	}

	return i.upperEndPoint.value
}

// LowerInc returns true if the lower bound is part of the Interval. An unbounded side is never inclusive.
func (i *Interval) LowerInc() bool {
	return i.lowerEndPoint != nil && i.lowerEndPoint.Inclusive()
}

// UpperInc returns true if the upper bound is part of the Interval. An unbounded side is never inclusive.
func (i *Interval) UpperInc() bool {
	return i.upperEndPoint != nil && i.upperEndPoint.Inclusive()
}

// HasLowerBound returns true if this Interval has a lower EndPoint.
func (i *Interval) HasLowerBound() bool {
	return i.lowerEndPoint != nil
}

// HasUpperBound returns true if this Interval has an upper EndPoint.
func (i *Interval) HasUpperBound() bool {
	return i.upperEndPoint != nil
}

// LowerBoundType returns the type of this Interval's lower bound - BoundTypeClosed if the Interval includes its lower
// EndPoint and BoundTypeOpen if it does not include its lower EndPoint.
func (i *Interval) LowerBoundType() BoundType {
	if i.lowerEndPoint == nil {
		panic("Interval has no lower bound - check HasLowerBound() before calling this method")
	}

	return i.lowerEndPoint.boundType
}

// LowerEndPoint returns the lower EndPoint of this Interval. It panics if the Interval has no lower EndPoint.
func (i *Interval) LowerEndPoint() *EndPoint {
	if i.lowerEndPoint == nil {
		panic("Interval has no lower EndPoint - check HasLowerBound() before calling this method")
	}

	return i.lowerEndPoint
}

// UpperBoundType returns the type of this Interval's upper bound - BoundTypeClosed if the Interval includes its upper
// EndPoint and BoundTypeOpen if it does not include its upper EndPoint.
func (i *Interval) UpperBoundType() BoundType {
	if i.upperEndPoint == nil {
		panic("Interval has no upper bound - check HasUpperBound() before calling this method")
	}

	return i.upperEndPoint.boundType
}

// UpperEndPoint returns the upper EndPoint of this Interval. It panics if the Interval has no upper EndPoint.
func (i *Interval) UpperEndPoint() *EndPoint {
	if i.upperEndPoint == nil {
		panic("Interval has no upper EndPoint - check HasUpperBound() before calling this method")
	}

	return i.upperEndPoint
}

// ValueType returns the ValueType of the bounds. The second return value is false for Intervals without any bound.
func (i *Interval) ValueType() (ValueType, bool) {
	switch {
	case i.lowerEndPoint != nil:
		return i.lowerEndPoint.value.Type(), true
	case i.upperEndPoint != nil:
		return i.upperEndPoint.value.Type(), true
	default:
		return 0, false
	}
}

// Compare returns 0 if the Interval contains the given Value, -1 if its contained Values are smaller and 1 if they
// are bigger. Empty Intervals report 1 or -1 for every Value.
func (i *Interval) Compare(value Value) int {
	if i.lowerEndPoint != nil {
		if cmp := i.lowerEndPoint.value.Compare(value); cmp == 1 || (cmp == 0 && !i.lowerEndPoint.Inclusive()) {
			return 1
		}
	}

	if i.upperEndPoint != nil {
		if cmp := i.upperEndPoint.value.Compare(value); cmp == -1 || (cmp == 0 && !i.upperEndPoint.Inclusive()) {
			return -1
		}
	}

	return 0
}

// Contains returns true if value is within the bounds of this Interval.
func (i *Interval) Contains(value Value) bool {
	return i.Compare(value) == 0
}

// Equal returns true if both Intervals have equal EndPoints. It compares the representation, use IsEmpty or
// canonicalize both sides to compare set membership.
func (i *Interval) Equal(other *Interval) bool {
	if i == nil || other == nil {
		return i == other
	}

	return i.lowerEndPoint.Equal(other.lowerEndPoint) && i.upperEndPoint.Equal(other.upperEndPoint)
}

// Bytes returns a marshaled version of the Interval.
func (i *Interval) Bytes() []byte {
	endPointExistsMask := bitmask.BitMask(0).
		SetBitIf(lowerEndPointBit, i.lowerEndPoint != nil).
		SetBitIf(upperEndPointBit, i.upperEndPoint != nil)

	marshalUtil := marshalutil.New().Write(endPointExistsMask)
	if i.lowerEndPoint != nil {
		marshalUtil.Write(i.lowerEndPoint)
	}
	if i.upperEndPoint != nil {
		marshalUtil.Write(i.upperEndPoint)
	}

	return marshalUtil.Bytes()
}

// String returns the textual form of the Interval, i.e. "[1, 5)" or "(-inf, 2000-02-07)".
func (i *Interval) String() string {
	var builder strings.Builder

	if i.lowerEndPoint == nil {
		builder.WriteString("(" + negativeInfinity)
	} else {
		builder.WriteString(lo.Cond(i.lowerEndPoint.Inclusive(), "[", "(") + i.lowerEndPoint.value.String())
	}

	builder.WriteString(", ")

	if i.upperEndPoint == nil {
		builder.WriteString(positiveInfinity + ")")
	} else {
		builder.WriteString(i.upperEndPoint.value.String() + lo.Cond(i.upperEndPoint.Inclusive(), "]", ")"))
	}

	return builder.String()
}
