package interval

import (
	"fmt"

	"github.com/iotaledger/hive.go/ierrors"
	"github.com/iotaledger/intervals/marshalutil"
)

// BoundType indicates whether an EndPoint of some Interval is contained in the Interval itself ("closed") or not
// ("open"). If an Interval is unbounded on a side, it is neither open nor closed on that side; the bound simply does not
// exist.
type BoundType uint8

const (
	// BoundTypeOpen indicates that the EndPoint value is not considered part of the Interval ("exclusive").
	BoundTypeOpen BoundType = iota

	// BoundTypeClosed indicates that the EndPoint value is considered part of the Interval ("inclusive").
	BoundTypeClosed
)

// BoundTypeNames contains a dictionary of the names of BoundTypes.
var BoundTypeNames = [...]string{
	"BoundTypeOpen",
	"BoundTypeClosed",
}

// BoundTypeFromInclusive returns BoundTypeClosed for inclusive bounds and BoundTypeOpen otherwise.
func BoundTypeFromInclusive(inclusive bool) BoundType {
	if inclusive {
		return BoundTypeClosed
	}

	return BoundTypeOpen
}

// BoundTypeFromMarshalUtil unmarshals a BoundType using a MarshalUtil (for easier unmarshalling).
func BoundTypeFromMarshalUtil(marshalUtil *marshalutil.MarshalUtil) (boundType BoundType, err error) {
	boundTypeByte, err := marshalUtil.ReadByte()
	if err != nil {
		return 0, ierrors.Wrapf(ErrParseBytesFailed, "failed to read BoundType: %w", err)
	}

	if boundType = BoundType(boundTypeByte); boundType > BoundTypeClosed {
		return boundType, ierrors.Wrapf(ErrParseBytesFailed, "unsupported BoundType (%X)", uint8(boundType))
	}

	return boundType, nil
}

// Inclusive returns true if the EndPoint value is part of the Interval.
func (b BoundType) Inclusive() bool {
	return b == BoundTypeClosed
}

// Bytes returns a marshaled version of the BoundType.
func (b BoundType) Bytes() []byte {
	return []byte{byte(b)}
}

// String returns a human-readable version of the BoundType.
func (b BoundType) String() string {
	if int(b) >= len(BoundTypeNames) {
		return fmt.Sprintf("BoundType(%X)", uint8(b))
	}

	return BoundTypeNames[b]
}
