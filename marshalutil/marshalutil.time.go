package marshalutil

import (
	"time"
)

// TimeSize contains the amount of bytes of a marshaled Time value (seconds followed by nanoseconds).
const TimeSize = Int64Size + Int64Size

// WriteTime writes a marshaled Time value to the internal buffer. The location is not preserved, times are read back
// in UTC.
func (util *MarshalUtil) WriteTime(timeToWrite time.Time) *MarshalUtil {
	// seconds and nanoseconds are stored separately, UnixNano overflows outside of the years 1678 to 2262
	return util.
		WriteInt64(timeToWrite.Unix()).
		WriteInt64(int64(timeToWrite.Nanosecond()))
}

// ReadTime reads a Time value from the internal buffer.
func (util *MarshalUtil) ReadTime() (result time.Time, err error) {
	seconds, err := util.ReadInt64()
	if err != nil {
		return time.Time{}, err
	}

	nanoSeconds, err := util.ReadInt64()
	if err != nil {
		return time.Time{}, err
	}

	return time.Unix(seconds, nanoSeconds).UTC(), nil
}
