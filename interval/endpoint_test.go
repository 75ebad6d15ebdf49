package interval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/intervals/marshalutil"
)

func TestEndPoint_Value(t *testing.T) {
	require.Equal(t, Int64Value(1), NewEndPoint(Int64Value(1), BoundTypeOpen).Value())
	require.Equal(t, Int64Value(0), NewEndPoint(Int64Value(0), BoundTypeOpen).Value())
	require.Equal(t, Int64Value(-1), NewEndPoint(Int64Value(-1), BoundTypeOpen).Value())
}

func TestEndPoint_BoundType(t *testing.T) {
	require.Equal(t, BoundTypeOpen, NewEndPoint(Int64Value(1), BoundTypeOpen).BoundType())
	require.Equal(t, BoundTypeClosed, NewEndPoint(Int64Value(1), BoundTypeClosed).BoundType())
	require.True(t, NewEndPoint(Int64Value(1), BoundTypeClosed).Inclusive())
}

func TestEndPoint_Equal(t *testing.T) {
	var unbounded *EndPoint

	require.True(t, unbounded.Equal(nil))
	require.False(t, unbounded.Equal(NewEndPoint(Int64Value(1), BoundTypeOpen)))
	require.False(t, NewEndPoint(Int64Value(1), BoundTypeOpen).Equal(nil))
	require.True(t, NewEndPoint(Int64Value(1), BoundTypeOpen).Equal(NewEndPoint(Int64Value(1), BoundTypeOpen)))
	require.False(t, NewEndPoint(Int64Value(1), BoundTypeOpen).Equal(NewEndPoint(Int64Value(1), BoundTypeClosed)))
	require.False(t, NewEndPoint(Int64Value(1), BoundTypeOpen).Equal(NewEndPoint(Uint64Value(1), BoundTypeOpen)))
	require.True(t, NewEndPoint(MustParseDecimal("1.50"), BoundTypeOpen).Equal(NewEndPoint(MustParseDecimal("1.5"), BoundTypeOpen)))
}

func TestEndPoint_MarshalUnmarshal(t *testing.T) {
	for _, endPoint := range []*EndPoint{
		NewEndPoint(Int64Value(1), BoundTypeOpen),
		NewEndPoint(NewDateValue(2000, 2, 2), BoundTypeClosed),
	} {
		unmarshaledEndPoint, err := EndPointFromMarshalUtil(marshalutil.New(endPoint.Bytes()))
		require.NoError(t, err)
		require.Equal(t, endPoint, unmarshaledEndPoint)
	}
}
