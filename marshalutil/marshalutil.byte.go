package marshalutil

// WriteByte writes a single byte to the internal buffer.
func (util *MarshalUtil) WriteByte(value byte) *MarshalUtil {
	writeEndOffset := util.expandWriteCapacity(1)

	util.bytes[util.writeOffset] = value

	util.WriteSeek(writeEndOffset)

	return util
}

// ReadByte reads a single byte from the internal buffer.
func (util *MarshalUtil) ReadByte() (byte, error) {
	readEndOffset, err := util.checkReadCapacity(1)
	if err != nil {
		return 0, err
	}

	defer util.ReadSeek(readEndOffset)

	return util.bytes[util.readOffset], nil
}
