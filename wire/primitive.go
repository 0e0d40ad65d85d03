package wire

import (
	"encoding/binary"
	"math"

	"neopack.dev/neopack"
)

// This file implements the low-level primitive codec: a u16 length-prefix
// codec and a single little-endian fixed-width read/write pair, sized by the
// caller, shared by all scalar tags.
// Both halves are expressed on top of encoding/binary.

// putU16 appends a u16 length/count prefix in little-endian order.
func putU16(buf []byte, v uint16) []byte {
	var tmp [2]byte
	binary.LittleEndian.PutUint16(tmp[:], v)
	return append(buf, tmp[:]...)
}

// readU16 decodes a u16 prefix from the first two bytes of b. The caller
// must have already verified len(b) >= 2.
func readU16(b []byte) uint16 {
	return binary.LittleEndian.Uint16(b)
}

// appendScalar appends the little-endian payload for a scalar tag whose raw
// bit pattern (as produced by [neopack.NewScalarValue]'s inverse) is bits.
// size is the payload width as returned by [neopack.Tag.ScalarSize].
func appendScalar(buf []byte, bits uint64, size int) []byte {
	var tmp [8]byte
	binary.LittleEndian.PutUint64(tmp[:], bits)
	return append(buf, tmp[:size]...)
}

// readScalar decodes a little-endian scalar payload of the given size from
// the front of b into a zero-extended uint64 bit pattern. The caller must
// have already verified len(b) >= size.
func readScalar(b []byte, size int) uint64 {
	var tmp [8]byte
	copy(tmp[:size], b[:size])
	return binary.LittleEndian.Uint64(tmp[:])
}

// boolBits and f32Bits/f64Bits adapt Go's native scalar types to the raw
// uint64 bit pattern appendScalar/readScalar and neopack.Value operate on.

func boolBits(v bool) uint64 {
	if v {
		return 1
	}
	return 0
}

func f32Bits(v float32) uint64 { return uint64(math.Float32bits(v)) }
func f64Bits(v float64) uint64 { return math.Float64bits(v) }

func float32FromBits(bits uint32) float32 { return math.Float32frombits(bits) }
func float64FromBits(bits uint64) float64 { return math.Float64frombits(bits) }

// scalarSizeOrPanic is ScalarSize without the ok result, for call sites that
// already know tag is a scalar tag (an invariant the caller is responsible
// for, e.g. because it just switched on tag.IsScalar()).
func scalarSizeOrPanic(tag neopack.Tag) int {
	size, ok := tag.ScalarSize()
	if !ok {
		panic("neopack/wire: " + tag.String() + " is not a scalar tag")
	}
	return size
}
