package neopack

import (
	"math"
	"unsafe"
)

// ContainerHeader describes a List, Map, or Array value without traversing
// its elements. It is the payload of a [Value] whose Tag [Tag.IsContainer].
type ContainerHeader struct {
	// Tag is TagList, TagMap, or TagArray.
	Tag Tag
	// Count is the number of elements (List, Map) or items (Array).
	Count uint16
	// ItemTag and Stride are only meaningful when Tag == TagArray.
	ItemTag Tag
	Stride  uint16
	// EncodedLen is the number of bytes remaining in the container's own
	// encoding, measured from the cursor position immediately after the
	// container's header. It is exact for Array (Stride*Count), which a
	// caller can use to skip the value without entering a sub-reader. For
	// List and Map it is -1: their length is not known without walking the
	// elements.
	EncodedLen int
}

// Value is the generic tagged sum returned by a tagged-value read that has
// not committed to a specific scalar, blob, or container interpretation.
// The Tag field is the discriminant; callers branch on it before calling
// the matching accessor, the same way a type switch would be used for a Go
// sum type. Calling an accessor for the wrong Tag panics, since that is a
// caller bug rather than a decode failure.
//
// Value holds no heap-allocated state of its own beyond the borrowed blob
// slice for String/Bytes/Struct, which aliases the decoder's input buffer
// (see the zero-copy guarantee documented on
// [neopack.dev/neopack/wire.Reader]).
type Value struct {
	Tag Tag

	scalar uint64  // raw bit pattern for Bool/S*/U*/F32/F64
	blob   []byte  // borrowed payload for String/Bytes/Struct
	cont   ContainerHeader
}

// NewScalarValue builds a Value for a scalar tag from its raw little-endian
// bit pattern (as produced by the primitive codec in the wire package).
// Bool uses bit 0; floats use their IEEE-754 bit pattern.
func NewScalarValue(tag Tag, bits uint64) Value {
	return Value{Tag: tag, scalar: bits}
}

// NewBlobValue builds a Value for a blob tag (String, Bytes, Struct) from a
// slice borrowed from the decoder's input.
func NewBlobValue(tag Tag, b []byte) Value {
	return Value{Tag: tag, blob: b}
}

// NewContainerValue builds a Value for a container tag from its header
// metadata, without any element having been read.
func NewContainerValue(h ContainerHeader) Value {
	return Value{Tag: h.Tag, cont: h}
}

func (v Value) want(t Tag) {
	if v.Tag != t {
		panic("neopack: Value holds " + v.Tag.String() + ", not " + t.String())
	}
}

// Bool returns the decoded value. Panics unless Tag == TagBool.
func (v Value) Bool() bool { v.want(TagBool); return v.scalar != 0 }

// I8 returns the decoded value. Panics unless Tag == TagS8.
func (v Value) I8() int8 { v.want(TagS8); return int8(v.scalar) }

// U8 returns the decoded value. Panics unless Tag == TagU8.
func (v Value) U8() uint8 { v.want(TagU8); return uint8(v.scalar) }

// I16 returns the decoded value. Panics unless Tag == TagS16.
func (v Value) I16() int16 { v.want(TagS16); return int16(v.scalar) }

// U16 returns the decoded value. Panics unless Tag == TagU16.
func (v Value) U16() uint16 { v.want(TagU16); return uint16(v.scalar) }

// I32 returns the decoded value. Panics unless Tag == TagS32.
func (v Value) I32() int32 { v.want(TagS32); return int32(v.scalar) }

// U32 returns the decoded value. Panics unless Tag == TagU32.
func (v Value) U32() uint32 { v.want(TagU32); return uint32(v.scalar) }

// I64 returns the decoded value. Panics unless Tag == TagS64.
func (v Value) I64() int64 { v.want(TagS64); return int64(v.scalar) }

// U64 returns the decoded value. Panics unless Tag == TagU64.
func (v Value) U64() uint64 { v.want(TagU64); return v.scalar }

// F32 returns the decoded value. Panics unless Tag == TagF32.
func (v Value) F32() float32 {
	v.want(TagF32)
	return math.Float32frombits(uint32(v.scalar))
}

// F64 returns the decoded value. Panics unless Tag == TagF64.
func (v Value) F64() float64 {
	v.want(TagF64)
	return math.Float64frombits(v.scalar)
}

// Bytes returns the borrowed payload slice. Panics unless Tag is TagBytes or
// TagStruct. The returned slice aliases the decoder's input buffer.
func (v Value) Bytes() []byte {
	if v.Tag != TagBytes && v.Tag != TagStruct {
		panic("neopack: Value holds " + v.Tag.String() + ", not Bytes or Struct")
	}
	return v.blob
}

// Str returns the payload as a string without copying it. Panics unless
// Tag == TagString. The returned string aliases the decoder's input buffer
// for as long as the caller retains it.
func (v Value) Str() string {
	v.want(TagString)
	if len(v.blob) == 0 {
		return ""
	}
	return unsafe.String(unsafe.SliceData(v.blob), len(v.blob))
}

// Container returns the container metadata. Panics unless
// Tag.IsContainer().
func (v Value) Container() ContainerHeader {
	if !v.Tag.IsContainer() {
		panic("neopack: Value holds " + v.Tag.String() + ", not a container")
	}
	return v.cont
}
