package marshalutil

import (
	"github.com/iotaledger/hive.go/ierrors"
)

// ErrInsufficientBytes is returned if a read would exceed the end of the buffer.
var ErrInsufficientBytes = ierrors.New("insufficient bytes")

// MarshalUtil is a cursor over a byte buffer that supports writing and reading primitive values. Reads and writes use
// separate offsets so a single instance can be used to build and to parse a buffer.
type MarshalUtil struct {
	bytes       []byte
	readOffset  int
	writeOffset int
	size        int
}

// New creates a MarshalUtil. It accepts no arguments (empty buffer), an int (pre-allocated capacity) or a []byte
// (buffer to parse).
func New(args ...interface{}) *MarshalUtil {
	switch argsCount := len(args); argsCount {
	case 0:
		return &MarshalUtil{
			bytes: make([]byte, 0, 64),
		}
	case 1:
		switch param := args[0].(type) {
		case int:
			return &MarshalUtil{
				bytes: make([]byte, 0, param),
			}
		case []byte:
			return &MarshalUtil{
				bytes: param,
				size:  len(param),
			}
		default:
			panic(ierrors.Errorf("illegal argument type %T in marshalutil.New(...)", param))
		}
	default:
		panic(ierrors.Errorf("illegal argument count %d in marshalutil.New(...)", argsCount))
	}
}

// ReadOffset returns the current read position.
func (util *MarshalUtil) ReadOffset() int {
	return util.readOffset
}

// ReadSeek moves the read position. Negative offsets are relative to the current position.
func (util *MarshalUtil) ReadSeek(offset int) {
	if offset < 0 {
		util.readOffset += offset
	} else {
		util.readOffset = offset
	}
}

// WriteSeek moves the write position. Negative offsets are relative to the current position.
func (util *MarshalUtil) WriteSeek(offset int) {
	if offset < 0 {
		util.writeOffset += offset
	} else {
		util.writeOffset = offset
	}
}

// Bytes returns the written bytes. If clone is true, a copy is returned.
func (util *MarshalUtil) Bytes(clone ...bool) []byte {
	if len(clone) >= 1 && clone[0] {
		cloned := make([]byte, util.size)
		copy(cloned, util.bytes[:util.size])

		return cloned
	}

	return util.bytes[:util.size]
}

// Write marshals the given object by writing its Bytes into the underlying buffer.
func (util *MarshalUtil) Write(object SimpleBinaryMarshaler) *MarshalUtil {
	return util.WriteBytes(object.Bytes())
}

// SimpleBinaryMarshaler represents objects that have a Bytes method for marshaling. In contrast to go's built marshaler
// interface (encoding.BinaryMarshaler) this interface expect no errors to be returned.
type SimpleBinaryMarshaler interface {
	// Bytes returns a marshaled version of the object.
	Bytes() []byte
}

func (util *MarshalUtil) checkReadCapacity(length int) (readEndOffset int, err error) {
	readEndOffset = util.readOffset + length

	if readEndOffset > util.size {
		return readEndOffset, ierrors.Wrapf(ErrInsufficientBytes, "tried to read %d bytes from %d bytes input", readEndOffset, util.size)
	}

	return readEndOffset, nil
}

func (util *MarshalUtil) expandWriteCapacity(length int) (writeEndOffset int) {
	writeEndOffset = util.writeOffset + length

	if writeEndOffset > util.size {
		util.bytes = append(util.bytes[:util.size], make([]byte, writeEndOffset-util.size)...)
		util.size = writeEndOffset
	}

	return writeEndOffset
}
