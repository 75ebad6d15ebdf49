package interval

import (
	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/hive.go/stringify"
	"github.com/iotaledger/intervals/marshalutil"
)

// EndPoint contains information about where Intervals start and end. It combines a threshold value with a BoundType.
type EndPoint struct {
	value     Value
	boundType BoundType
}

// NewEndPoint create a new EndPoint from the given details.
func NewEndPoint(value Value, boundType BoundType) *EndPoint {
	return &EndPoint{
		value:     value,
		boundType: boundType,
	}
}

// EndPointFromMarshalUtil unmarshals an EndPoint using a MarshalUtil (for easier unmarshalling).
func EndPointFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (endPoint *EndPoint, err error) {
	endPoint = &EndPoint{}
	if endPoint.value, err = ValueFromMarshalUtil(marshalUtil); err != nil {
		return nil, ierrors.Wrap(err, "failed to parse Value from MarshalUtil")
	}
	if endPoint.boundType, err = BoundTypeFromMarshalUtil(marshalUtil); err != nil {
		return nil, ierrors.Wrap(err, "failed to parse BoundType from MarshalUtil")
	}

	return endPoint, nil
}

// Value returns the Value of the EndPoint.
func (e *EndPoint) Value() Value {
	return e.value
}

// BoundType returns the BoundType of the EndPoint.
func (e *EndPoint) BoundType() BoundType {
	return e.boundType
}

// Inclusive returns true if the Value of the EndPoint is part of the Interval.
func (e *EndPoint) Inclusive() bool {
	return e.boundType.Inclusive()
}

// Equal returns true if both EndPoints have equal values and the same BoundType. Two nil EndPoints (unbounded) are
// equal.
func (e *EndPoint) Equal(other *EndPoint) bool {
	if e == nil || other == nil {
		return e == nil && other == nil
	}

	return e.boundType == other.boundType && e.value.Type() == other.value.Type() && e.value.Compare(other.value) == 0
}

// Bytes returns a marshaled version of the EndPoint.
func (e *EndPoint) Bytes() []byte {
	return marshalutil.New().
		Write(e.value).
		Write(e.boundType).
		Bytes()
}

// String returns a human-readable version of the EndPoint.
func (e *EndPoint) String() string {
	return stringify.Struct("EndPoint",
		stringify.NewStructField("value", e.value.String()),
		stringify.NewStructField("boundType", e.boundType),
	)
}
