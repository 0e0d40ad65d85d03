package neopack

import "strconv"

// Tag identifies the shape of an encoded value. It is the first byte of
// every value's wire encoding. The meaning of a Tag value is fixed by the
// wire format; unlike an ASN.1 tag, it carries no class or application
// namespace.
type Tag uint8

// Scalar tags. Each has a fixed-width little-endian payload.
const (
	TagBool Tag = 0x01
	TagS8   Tag = 0x02
	TagU8   Tag = 0x03
	TagS16  Tag = 0x04
	TagU16  Tag = 0x05
	TagS32  Tag = 0x06
	TagU32  Tag = 0x07
	TagS64  Tag = 0x08
	TagU64  Tag = 0x09
	TagF32  Tag = 0x0A
	TagF64  Tag = 0x0B
)

// Blob tags. Each carries a u16 length prefix followed by that many bytes.
const (
	TagString Tag = 0x10
	TagBytes  Tag = 0x11
	TagStruct Tag = 0x12
)

// Container tags. List and Map carry a u16 element count; Array additionally
// carries an item tag and a u16 stride.
const (
	TagList  Tag = 0x20
	TagMap   Tag = 0x21
	TagArray Tag = 0x23
)

// Valid reports whether t is one of the seventeen tags defined by the wire
// format. All other byte values are invalid in any context.
func (t Tag) Valid() bool {
	switch t {
	case TagBool, TagS8, TagU8, TagS16, TagU16, TagS32, TagU32, TagS64, TagU64,
		TagF32, TagF64, TagString, TagBytes, TagStruct, TagList, TagMap, TagArray:
		return true
	}
	return false
}

// IsScalar reports whether t is one of the ten fixed-width scalar tags.
func (t Tag) IsScalar() bool {
	_, ok := t.ScalarSize()
	return ok
}

// ScalarSize returns the payload width in bytes of a scalar tag. ok is false
// if t is not a scalar tag.
func (t Tag) ScalarSize() (size int, ok bool) {
	switch t {
	case TagBool, TagS8, TagU8:
		return 1, true
	case TagS16, TagU16:
		return 2, true
	case TagS32, TagU32, TagF32:
		return 4, true
	case TagS64, TagU64, TagF64:
		return 8, true
	}
	return 0, false
}

// IsBlob reports whether t is one of the three length-prefixed blob tags
// (String, Bytes, Struct).
func (t Tag) IsBlob() bool {
	switch t {
	case TagString, TagBytes, TagStruct:
		return true
	}
	return false
}

// IsContainer reports whether t is one of the three container tags
// (List, Map, Array).
func (t Tag) IsContainer() bool {
	switch t {
	case TagList, TagMap, TagArray:
		return true
	}
	return false
}

// String returns a human-readable name for t, or "Tag(0xXX)" for a value
// that is not one of the seventeen defined tags.
func (t Tag) String() string {
	switch t {
	case TagBool:
		return "Bool"
	case TagS8:
		return "S8"
	case TagU8:
		return "U8"
	case TagS16:
		return "S16"
	case TagU16:
		return "U16"
	case TagS32:
		return "S32"
	case TagU32:
		return "U32"
	case TagS64:
		return "S64"
	case TagU64:
		return "U64"
	case TagF32:
		return "F32"
	case TagF64:
		return "F64"
	case TagString:
		return "String"
	case TagBytes:
		return "Bytes"
	case TagStruct:
		return "Struct"
	case TagList:
		return "List"
	case TagMap:
		return "Map"
	case TagArray:
		return "Array"
	}
	return "Tag(0x" + strconv.FormatUint(uint64(t), 16) + ")"
}

// MaxSize is the largest value a u16 length, container count, or array
// stride may take on the wire. NEOPACK trades extensibility beyond this
// ceiling for predictable, allocation-bounded memory use.
const MaxSize = 65535
