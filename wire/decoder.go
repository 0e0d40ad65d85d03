package wire

import (
	"unicode/utf8"
	"unsafe"

	"neopack.dev/neopack"
)

// Reader is a cursor over an immutable byte slice. It never panics on
// malformed input and never advances its cursor when a read fails. A
// successful scalar or blob read does not allocate; NewReader, the List, Map
// and Array sub-readers, and every returned *neopack.Error are
// heap-allocated. Every failure is a [neopack.Error] the caller can act on, and a
// [neopack.Pending] result means "try this exact call again once at least
// Needed more bytes are appended to the same backing data".
//
// The zero value is not usable; construct one with [NewReader].
type Reader struct {
	buf []byte
	pos int
}

// NewReader returns a Reader positioned at the start of input. input is
// never copied or retained beyond aliasing: every String, Bytes, and Struct
// value later read from it borrows a sub-slice of input directly.
func NewReader(input []byte) *Reader {
	return &Reader{buf: input}
}

// InputOffset returns the cursor's current byte offset into the slice
// passed to NewReader.
func (r *Reader) InputOffset() int { return r.pos }

func (r *Reader) remaining() int { return len(r.buf) - r.pos }

// peekTag returns the tag byte at the cursor without advancing it.
func (r *Reader) peekTag() (neopack.Tag, *neopack.Error) {
	if r.remaining() < 1 {
		return 0, neopack.PendingError(1)
	}
	b := r.buf[r.pos]
	tag := neopack.Tag(b)
	if !tag.Valid() {
		return 0, neopack.InvalidTagError(b)
	}
	return tag, nil
}

func (r *Reader) readScalarTag(want neopack.Tag) (uint64, *neopack.Error) {
	tag, err := r.peekTag()
	if err != nil {
		return 0, err
	}
	if tag != want {
		return 0, neopack.TypeMismatchError(want, tag)
	}
	size := scalarSizeOrPanic(tag)
	need := 1 + size
	if r.remaining() < need {
		return 0, neopack.PendingError(need - r.remaining())
	}
	bits := readScalar(r.buf[r.pos+1:r.pos+need], size)
	r.pos += need
	return bits, nil
}

// Bool reads a Bool value. Returns a TypeMismatch error if the tag at the
// cursor is not TagBool, or Pending if fewer than 2 bytes are available.
func (r *Reader) Bool() (bool, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagBool)
	return bits != 0, err
}

// I8 reads an S8 value.
func (r *Reader) I8() (int8, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagS8)
	return int8(bits), err
}

// U8 reads a U8 value.
func (r *Reader) U8() (uint8, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagU8)
	return uint8(bits), err
}

// I16 reads an S16 value.
func (r *Reader) I16() (int16, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagS16)
	return int16(bits), err
}

// U16 reads a U16 value.
func (r *Reader) U16() (uint16, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagU16)
	return uint16(bits), err
}

// I32 reads an S32 value.
func (r *Reader) I32() (int32, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagS32)
	return int32(bits), err
}

// U32 reads a U32 value.
func (r *Reader) U32() (uint32, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagU32)
	return uint32(bits), err
}

// I64 reads an S64 value.
func (r *Reader) I64() (int64, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagS64)
	return int64(bits), err
}

// U64 reads a U64 value.
func (r *Reader) U64() (uint64, *neopack.Error) {
	return r.readScalarTag(neopack.TagU64)
}

// F32 reads an F32 value.
func (r *Reader) F32() (float32, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagF32)
	if err != nil {
		return 0, err
	}
	return float32FromBits(uint32(bits)), nil
}

// F64 reads an F64 value.
func (r *Reader) F64() (float64, *neopack.Error) {
	bits, err := r.readScalarTag(neopack.TagF64)
	if err != nil {
		return 0, err
	}
	return float64FromBits(bits), nil
}

func (r *Reader) readBlobTag(want neopack.Tag) ([]byte, *neopack.Error) {
	tag, err := r.peekTag()
	if err != nil {
		return nil, err
	}
	if tag != want {
		return nil, neopack.TypeMismatchError(want, tag)
	}
	if r.remaining() < 3 {
		return nil, neopack.PendingError(3 - r.remaining())
	}
	length := int(readU16(r.buf[r.pos+1 : r.pos+3]))
	need := 3 + length
	if r.remaining() < need {
		return nil, neopack.PendingError(need - r.remaining())
	}
	payload := r.buf[r.pos+3 : r.pos+need]
	if want == neopack.TagString && !utf8.Valid(payload) {
		return nil, neopack.InvalidUtf8Error()
	}
	r.pos += need
	return payload, nil
}

// Str reads a String value without copying its payload; the returned string
// aliases the slice passed to NewReader. Returns InvalidUtf8 (cursor
// unchanged) if the payload is not valid UTF-8.
func (r *Reader) Str() (string, *neopack.Error) {
	b, err := r.readBlobTag(neopack.TagString)
	if err != nil {
		return "", err
	}
	if len(b) == 0 {
		return "", nil
	}
	return unsafe.String(unsafe.SliceData(b), len(b)), nil
}

// BytesValue reads a Bytes value without copying; the returned slice
// aliases the slice passed to NewReader.
func (r *Reader) BytesValue() ([]byte, *neopack.Error) {
	return r.readBlobTag(neopack.TagBytes)
}

// StructValue reads a Struct value without copying or interpreting its
// payload; the returned slice aliases the slice passed to NewReader.
func (r *Reader) StructValue() ([]byte, *neopack.Error) {
	return r.readBlobTag(neopack.TagStruct)
}

// Value reads whatever is at the cursor without the caller committing to a
// specific type up front. For a scalar or blob tag it behaves exactly like
// the matching typed reader and advances the cursor past the full value.
// For a container tag it only inspects the header (Count, and for Array the
// exact ItemTag, Stride, and EncodedLen) without advancing the cursor or
// committing to element-level iteration.
//
// When the returned Value is a container (Value.Tag.IsContainer()), the
// cursor is left exactly where List, Map, or Array would find it: the
// caller must immediately do one of those two things before reading
// anything else from r: enter it (List, Map, or Array) to iterate its
// elements, or discard it (Skip) to move past it as a whole. This is also
// why ListReader.Next and MapReader.Next, which fetch each element through
// Value, impose the same obligation on their caller for any
// container-tagged element they return.
func (r *Reader) Value() (neopack.Value, *neopack.Error) {
	tag, err := r.peekTag()
	if err != nil {
		return neopack.Value{}, err
	}
	switch {
	case tag.IsScalar():
		bits, err := r.readScalarTag(tag)
		if err != nil {
			return neopack.Value{}, err
		}
		return neopack.NewScalarValue(tag, bits), nil
	case tag.IsBlob():
		b, err := r.readBlobTag(tag)
		if err != nil {
			return neopack.Value{}, err
		}
		return neopack.NewBlobValue(tag, b), nil
	default:
		h, err := r.peekContainerHeader(tag)
		if err != nil {
			return neopack.Value{}, err
		}
		return neopack.NewContainerValue(h), nil
	}
}

// peekContainerHeader inspects the container header at the cursor without
// advancing it. For List and Map, EncodedLen is -1: the byte length of a
// List or Map's own encoding cannot be known without walking its elements,
// since they may nest further containers of unknown depth.
func (r *Reader) peekContainerHeader(tag neopack.Tag) (neopack.ContainerHeader, *neopack.Error) {
	switch tag {
	case neopack.TagList, neopack.TagMap:
		if r.remaining() < 3 {
			return neopack.ContainerHeader{}, neopack.PendingError(3 - r.remaining())
		}
		count := readU16(r.buf[r.pos+1 : r.pos+3])
		return neopack.ContainerHeader{Tag: tag, Count: count, EncodedLen: -1}, nil
	case neopack.TagArray:
		if r.remaining() < 6 {
			return neopack.ContainerHeader{}, neopack.PendingError(6 - r.remaining())
		}
		itemByte := r.buf[r.pos+1]
		itemTag := neopack.Tag(itemByte)
		if !itemTag.Valid() {
			return neopack.ContainerHeader{}, neopack.InvalidTagError(itemByte)
		}
		stride := readU16(r.buf[r.pos+2 : r.pos+4])
		count := readU16(r.buf[r.pos+4 : r.pos+6])
		if stride == 0 {
			return neopack.ContainerHeader{}, neopack.MalformedError("array stride must be >= 1")
		}
		total := int(stride) * int(count)
		if total > neopack.MaxSize {
			return neopack.ContainerHeader{}, neopack.MalformedError("array stride*count exceeds 65535")
		}
		return neopack.ContainerHeader{Tag: tag, Count: count, ItemTag: itemTag, Stride: stride, EncodedLen: total}, nil
	default:
		panic("neopack/wire: peekContainerHeader called with a non-container tag")
	}
}

// List enters a List value at the cursor, advancing past its header and
// returning a reader over its elements.
func (r *Reader) List() (*ListReader, *neopack.Error) {
	tag, err := r.peekTag()
	if err != nil {
		return nil, err
	}
	if tag != neopack.TagList {
		return nil, neopack.TypeMismatchError(neopack.TagList, tag)
	}
	if r.remaining() < 3 {
		return nil, neopack.PendingError(3 - r.remaining())
	}
	count := readU16(r.buf[r.pos+1 : r.pos+3])
	r.pos += 3
	return &ListReader{r: r, remaining: int(count)}, nil
}

// Map enters a Map value at the cursor, advancing past its header and
// returning a reader over its key/value pairs.
func (r *Reader) Map() (*MapReader, *neopack.Error) {
	tag, err := r.peekTag()
	if err != nil {
		return nil, err
	}
	if tag != neopack.TagMap {
		return nil, neopack.TypeMismatchError(neopack.TagMap, tag)
	}
	if r.remaining() < 3 {
		return nil, neopack.PendingError(3 - r.remaining())
	}
	count := readU16(r.buf[r.pos+1 : r.pos+3])
	r.pos += 3
	return &MapReader{r: r, remaining: int(count)}, nil
}

// Array enters an Array value at the cursor, advancing past its header and
// returning a reader over its fixed-stride items.
func (r *Reader) Array() (*ArrayReader, *neopack.Error) {
	tag, err := r.peekTag()
	if err != nil {
		return nil, err
	}
	if tag != neopack.TagArray {
		return nil, neopack.TypeMismatchError(neopack.TagArray, tag)
	}
	h, err := r.peekContainerHeader(tag)
	if err != nil {
		return nil, err
	}
	r.pos += 6
	return &ArrayReader{r: r, remaining: int(h.Count), itemTag: h.ItemTag, stride: h.Stride}, nil
}

// Skip discards the value at the cursor, advancing past it in full. For a
// scalar or blob it behaves like the matching typed reader with the result
// discarded. For an Array, the skip is direct: stride*count is already
// known from the header. For a List or Map, skipping means walking every
// element (recursively, since an element may itself be a container): there
// is no way to know a List or Map's total encoded length without visiting
// its contents.
//
// Like every other read on Reader, a non-nil error leaves the cursor exactly
// where it was when Skip was called, even if the List or Map being skipped
// failed partway through its walk: the caller can retry the same Skip call
// once more input is available.
func (r *Reader) Skip() *neopack.Error {
	tag, err := r.peekTag()
	if err != nil {
		return err
	}
	switch {
	case tag.IsScalar():
		_, err := r.readScalarTag(tag)
		return err
	case tag.IsBlob():
		_, err := r.readBlobTag(tag)
		return err
	case tag == neopack.TagArray:
		h, err := r.peekContainerHeader(tag)
		if err != nil {
			return err
		}
		need := 6 + h.EncodedLen
		if r.remaining() < need {
			return neopack.PendingError(need - r.remaining())
		}
		r.pos += need
		return nil
	case tag == neopack.TagList:
		return r.skipList()
	default: // neopack.TagMap
		return r.skipMap()
	}
}

func (r *Reader) skipList() *neopack.Error {
	start := r.pos
	lr, err := r.List()
	if err != nil {
		r.pos = start
		return err
	}
	for lr.remaining > 0 {
		if err := r.Skip(); err != nil {
			r.pos = start
			return err
		}
		lr.remaining--
	}
	return nil
}

func (r *Reader) skipMap() *neopack.Error {
	start := r.pos
	mr, err := r.Map()
	if err != nil {
		r.pos = start
		return err
	}
	for mr.remaining > 0 {
		keyTag, err := r.peekTag()
		if err != nil {
			r.pos = start
			return err
		}
		if keyTag != neopack.TagString {
			r.pos = start
			return neopack.MalformedError("map entry key is not tagged String")
		}
		if err := r.Skip(); err != nil {
			r.pos = start
			return err
		}
		if err := r.Skip(); err != nil {
			r.pos = start
			return err
		}
		mr.remaining--
	}
	return nil
}
