package interval

import "github.com/iotaledger/hive.go/ierrors"

var (
	// ErrValueTypeMismatch is returned if the bounds of an Interval have different ValueTypes.
	ErrValueTypeMismatch = ierrors.New("bounds must have the same value type")

	// ErrParseBytesFailed is returned if information can not be parsed from a sequence of bytes.
	ErrParseBytesFailed = ierrors.New("failed to parse bytes")

	// ErrParseStringFailed is returned if an Interval or a Value can not be parsed from its textual form.
	ErrParseStringFailed = ierrors.New("failed to parse string")

	// ErrUnsupportedValueType is returned for ValueTypes that are unknown to this package.
	ErrUnsupportedValueType = ierrors.New("unsupported value type")
)
