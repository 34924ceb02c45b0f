// This file contains a slice reader which aids reading data from a byte
// slice. It never returns an error: an out-of-range read panics, and the
// top-level Decode recovers from that panic the same way a truncated or
// corrupt section is handled everywhere else in this package.

package replayfile

import (
	"encoding/binary"
	"math"
)

// sliceReader aids reading byte-aligned data from a byte slice.
type sliceReader struct {
	// b is the byte slice to read from.
	b []byte

	// pos is the index of the next byte to read.
	pos uint32
}

// getByte returns the next byte.
func (sr *sliceReader) getByte() (r byte) {
	r, sr.pos = sr.b[sr.pos], sr.pos+1
	return
}

// getUint32 returns the next 4 bytes as a little-endian uint32.
func (sr *sliceReader) getUint32() (r uint32) {
	r, sr.pos = binary.LittleEndian.Uint32(sr.b[sr.pos:]), sr.pos+4
	return
}

// getInt32 returns the next 4 bytes as a little-endian int32.
func (sr *sliceReader) getInt32() int32 {
	return int32(sr.getUint32())
}

// getUint64 returns the next 8 bytes as a little-endian uint64.
func (sr *sliceReader) getUint64() (r uint64) {
	r, sr.pos = binary.LittleEndian.Uint64(sr.b[sr.pos:]), sr.pos+8
	return
}

// getFloat32 returns the next 4 bytes as an IEEE-754 little-endian float.
func (sr *sliceReader) getFloat32() float32 {
	return math.Float32frombits(sr.getUint32())
}

// readSlice returns the next size bytes as a new slice.
func (sr *sliceReader) readSlice(size uint32) (r []byte) {
	r = make([]byte, size)
	copy(r, sr.b[sr.pos:sr.pos+size])
	sr.pos += size
	return
}

// remaining returns every byte from the current position to the end of
// the slice, without advancing pos.
func (sr *sliceReader) remaining() []byte {
	return sr.b[sr.pos:]
}

// skip advances pos by n bytes without reading them.
func (sr *sliceReader) skip(n uint32) {
	sr.pos += n
}
