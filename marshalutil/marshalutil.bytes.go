package marshalutil

import (
	"math"

	"github.com/iotaledger/hive.go/ierrors"
)

// WriteBytes appends the given bytes to the internal buffer.
// It returns the same MarshalUtil so calls can be chained.
func (util *MarshalUtil) WriteBytes(bytes []byte) *MarshalUtil {
	if len(bytes) == 0 {
		return util
	}

	writeEndOffset := util.expandWriteCapacity(len(bytes))

	copy(util.bytes[util.writeOffset:writeEndOffset], bytes)

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadBytes reads the given amount of bytes and advances the read offset. The returned slice is a copy.
func (util *MarshalUtil) ReadBytes(length int) ([]byte, error) {
	if length < 0 {
		return nil, ierrors.Errorf("invalid length %d", length)
	}

	readEndOffset, err := util.checkReadCapacity(length)
	if err != nil {
		return nil, err
	}

	defer util.ReadSeek(readEndOffset)

	result := make([]byte, length)
	copy(result, util.bytes[util.readOffset:readEndOffset])

	return result, nil
}

// WriteString writes a string prefixed with its uint16 length. It panics if the string does not fit.
func (util *MarshalUtil) WriteString(value string) *MarshalUtil {
	if len(value) > math.MaxUint16 {
		panic(ierrors.Errorf("string of length %d exceeds the maximum of %d bytes", len(value), math.MaxUint16))
	}

	return util.WriteUint16(uint16(len(value))).WriteBytes([]byte(value))
}

// ReadString reads a string that was written with WriteString.
func (util *MarshalUtil) ReadString() (string, error) {
	length, err := util.ReadUint16()
	if err != nil {
		return "", ierrors.Wrap(err, "failed to read string length")
	}

	bytes, err := util.ReadBytes(int(length))
	if err != nil {
		return "", ierrors.Wrap(err, "failed to read string")
	}

	return string(bytes), nil
}
