package interval

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/marshalutil"
)

func TestBoundType(t *testing.T) {
	require.Equal(t, BoundTypeClosed, BoundTypeFromInclusive(true))
	require.Equal(t, BoundTypeOpen, BoundTypeFromInclusive(false))

	require.True(t, BoundTypeClosed.Inclusive())
	require.False(t, BoundTypeOpen.Inclusive())

	require.Equal(t, "BoundTypeOpen", BoundTypeOpen.String())
	require.Equal(t, "BoundTypeClosed", BoundTypeClosed.String())
	require.Equal(t, "BoundType(11)", BoundType(17).String())
}

func TestBoundTypeFromMarshalUtil(t *testing.T) {
	for _, boundType := range []BoundType{BoundTypeOpen, BoundTypeClosed} {
		unmarshaledBoundType, err := BoundTypeFromMarshalUtil(marshalutil.New(boundType.Bytes()))
		require.NoError(t, err)
		require.Equal(t, boundType, unmarshaledBoundType)
	}

	_, err := BoundTypeFromMarshalUtil(marshalutil.New(BoundType(17).Bytes()))
	require.True(t, ierrors.Is(err, ErrParseBytesFailed))

	_, err = BoundTypeFromMarshalUtil(marshalutil.New([]byte{}))
	require.True(t, ierrors.Is(err, ErrParseBytesFailed))
}
