package bitmask

// BitMask is a set of up to eight flags packed into a single byte.
type BitMask byte

// SetBit returns a copy of the BitMask with the bit at the given position set.
func (bitmask BitMask) SetBit(pos uint) BitMask {
	return bitmask | 1<<pos
}

// SetBitIf sets the bit at the given position if the condition holds and returns the BitMask unchanged otherwise.
func (bitmask BitMask) SetBitIf(pos uint, condition bool) BitMask {
	if !condition {
		return bitmask
	}

	return bitmask.SetBit(pos)
}

// ClearBit returns a copy of the BitMask with the bit at the given position cleared.
func (bitmask BitMask) ClearBit(pos uint) BitMask {
	return bitmask &^ (1 << pos)
}

// HasBit checks whether the bit at the given position is set.
func (bitmask BitMask) HasBit(pos uint) bool {
	return bitmask&(1<<pos) != 0
}

// Bytes returns the marshaled version of the BitMask.
func (bitmask BitMask) Bytes() []byte {
	return []byte{byte(bitmask)}
}
