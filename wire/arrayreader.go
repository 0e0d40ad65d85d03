package wire

import "neopack.dev/neopack"

// ArrayReader reads the fixed-stride items of an Array value obtained from
// [Reader.Array]. Items are returned as raw byte slices aliasing the
// Reader's input; the caller is responsible for interpreting them according
// to ItemTag and Stride. An Array holds homogeneous fixed-width items with
// no per-item tag or length prefix.
type ArrayReader struct {
	r         *Reader
	remaining int
	itemTag   neopack.Tag
	stride    uint16
}

// ItemTag returns the tag declared for every item in the array.
func (ar *ArrayReader) ItemTag() neopack.Tag { return ar.itemTag }

// Stride returns the fixed byte width of every item in the array.
func (ar *ArrayReader) Stride() uint16 { return ar.stride }

// Next reads the next item's raw bytes. ok is false once every item
// declared by the Array's header has been read, with err nil. A non-nil err
// leaves the underlying Reader's cursor unchanged, so the same Next call
// can be retried once more input is available.
func (ar *ArrayReader) Next() (item []byte, ok bool, err *neopack.Error) {
	if ar.remaining == 0 {
		return nil, false, nil
	}
	n := int(ar.stride)
	if ar.r.remaining() < n {
		return nil, false, neopack.PendingError(n - ar.r.remaining())
	}
	b := ar.r.buf[ar.r.pos : ar.r.pos+n]
	ar.r.pos += n
	ar.remaining--
	return b, true, nil
}
