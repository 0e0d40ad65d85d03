// Package wire implements the NEOPACK encoder and decoder: an append-only
// [Encoder] with a stack of open container scopes, and a resumable [Reader]
// over an immutable byte slice whose successful scalar and blob reads do not
// allocate. Both halves share the
// tag vocabulary and primitive codec defined by [neopack.dev/neopack].
package wire

import (
	"errors"
	"strconv"
	"unicode/utf8"

	"neopack.dev/neopack"
)

// Encoder is an append-only byte buffer with a stack of open container
// scopes (List, Map, Array). Appending a scalar or blob value, or opening a
// nested container, is only ever rejected as a fail-fast invariant
// violation (a panic); misuse is a programmer bug, never data the caller
// is expected to branch on.
//
// The zero value is not usable; construct one with [NewEncoder].
type Encoder struct {
	buf   []byte
	stack scopeStack
}

// NewEncoder returns a new, empty Encoder.
func NewEncoder() *Encoder {
	return new(Encoder)
}

// Reset discards any buffered output and open scopes, returning e to its
// initial state. The underlying buffer capacity is reused.
func (e *Encoder) Reset() {
	e.buf = e.buf[:0]
	e.stack.reset()
}

// beginValue validates that a scalar, blob, or container-open operation is
// legal at the current position: it must be the root level, an open List
// (any value allowed), or an open Map with a value currently owed (i.e. a
// preceding Key call). It is illegal directly inside an open Array, which
// only accepts Push.
func (e *Encoder) beginValue() {
	top := e.stack.top()
	if top == nil {
		return
	}
	switch top.kind {
	case scopeList:
		// any value may be appended to a list
	case scopeMap:
		if top.mapAwait != awaitingValue {
			panic("neopack/wire: map value appended without a preceding Key")
		}
	case scopeArray:
		panic("neopack/wire: cannot append a scalar, blob, or container value while an Array scope is open; use Push")
	}
}

// endValue updates the enclosing scope's bookkeeping after a value has been
// fully written: a List's count is incremented, or a Map's pending value
// slot is closed out and its pair count incremented. It must be called
// before any nested scope is pushed, so that the nested container counts as
// exactly one value of its parent.
func (e *Encoder) endValue() {
	top := e.stack.top()
	if top == nil {
		return
	}
	switch top.kind {
	case scopeList:
		top.count++
		if top.count > neopack.MaxSize {
			panic("neopack/wire: list count exceeds 65535")
		}
	case scopeMap:
		top.mapAwait = awaitingKey
		top.count++
		if top.count > neopack.MaxSize {
			panic("neopack/wire: map count exceeds 65535")
		}
	}
}

func (e *Encoder) appendScalarTag(tag neopack.Tag, bits uint64) *Encoder {
	size := scalarSizeOrPanic(tag)
	e.beginValue()
	e.buf = append(e.buf, byte(tag))
	e.buf = appendScalar(e.buf, bits, size)
	e.endValue()
	return e
}

// Bool appends a Bool value.
func (e *Encoder) Bool(v bool) *Encoder { return e.appendScalarTag(neopack.TagBool, boolBits(v)) }

// S8 appends an S8 value.
func (e *Encoder) S8(v int8) *Encoder { return e.appendScalarTag(neopack.TagS8, uint64(uint8(v))) }

// U8 appends a U8 value.
func (e *Encoder) U8(v uint8) *Encoder { return e.appendScalarTag(neopack.TagU8, uint64(v)) }

// S16 appends an S16 value.
func (e *Encoder) S16(v int16) *Encoder {
	return e.appendScalarTag(neopack.TagS16, uint64(uint16(v)))
}

// U16 appends a U16 value.
func (e *Encoder) U16(v uint16) *Encoder { return e.appendScalarTag(neopack.TagU16, uint64(v)) }

// S32 appends an S32 value.
func (e *Encoder) S32(v int32) *Encoder {
	return e.appendScalarTag(neopack.TagS32, uint64(uint32(v)))
}

// U32 appends a U32 value.
func (e *Encoder) U32(v uint32) *Encoder { return e.appendScalarTag(neopack.TagU32, uint64(v)) }

// S64 appends an S64 value.
func (e *Encoder) S64(v int64) *Encoder { return e.appendScalarTag(neopack.TagS64, uint64(v)) }

// U64 appends a U64 value.
func (e *Encoder) U64(v uint64) *Encoder { return e.appendScalarTag(neopack.TagU64, v) }

// F32 appends an F32 value.
func (e *Encoder) F32(v float32) *Encoder { return e.appendScalarTag(neopack.TagF32, f32Bits(v)) }

// F64 appends an F64 value.
func (e *Encoder) F64(v float64) *Encoder { return e.appendScalarTag(neopack.TagF64, f64Bits(v)) }

func (e *Encoder) appendBlob(tag neopack.Tag, b []byte) *Encoder {
	if len(b) > neopack.MaxSize {
		panic("neopack/wire: " + tag.String() + " payload exceeds 65535 bytes")
	}
	e.beginValue()
	e.buf = append(e.buf, byte(tag))
	e.buf = putU16(e.buf, uint16(len(b)))
	e.buf = append(e.buf, b...)
	e.endValue()
	return e
}

// Str appends a String value. Panics if s is not valid UTF-8 or exceeds
// 65535 bytes; the encoder only ever admits values that are already valid
// at its API boundary.
func (e *Encoder) Str(s string) *Encoder {
	if !utf8.ValidString(s) {
		panic("neopack/wire: Str: payload is not valid UTF-8")
	}
	return e.appendBlob(neopack.TagString, []byte(s))
}

// Bytes appends a Bytes value. Panics if b exceeds 65535 bytes.
func (e *Encoder) Bytes(b []byte) *Encoder { return e.appendBlob(neopack.TagBytes, b) }

// Struct appends a Struct value. The payload is opaque to NEOPACK; it is
// never interpreted or validated beyond its length. Panics if b exceeds
// 65535 bytes.
func (e *Encoder) Struct(b []byte) *Encoder { return e.appendBlob(neopack.TagStruct, b) }

// List opens a new List scope. Every value subsequently appended at the
// current nesting level (until the matching EndList) counts toward the
// list's element count.
func (e *Encoder) List() *Encoder {
	e.beginValue()
	e.buf = append(e.buf, byte(neopack.TagList))
	countOffset := len(e.buf)
	e.buf = putU16(e.buf, 0)
	e.endValue()
	e.stack.push(scope{kind: scopeList, countOffset: countOffset})
	return e
}

// EndList closes the innermost List scope, back-patching its element count.
// Panics if the innermost open scope is not a List.
func (e *Encoder) EndList() *Encoder {
	top := e.stack.top()
	if top == nil || top.kind != scopeList {
		panic("neopack/wire: EndList: no matching open List scope")
	}
	putU16At(e.buf, top.countOffset, uint16(top.count))
	e.stack.pop()
	return e
}

// Map opens a new Map scope. Within it, every value must be introduced by a
// call to Key; the value that completes a pair may be a scalar, a blob, or
// a nested container.
func (e *Encoder) Map() *Encoder {
	e.beginValue()
	e.buf = append(e.buf, byte(neopack.TagMap))
	countOffset := len(e.buf)
	e.buf = putU16(e.buf, 0)
	e.endValue()
	e.stack.push(scope{kind: scopeMap, countOffset: countOffset, mapAwait: awaitingKey})
	return e
}

// Key writes a String-tagged key for the next Map pair. It must be followed
// by exactly one value append before the next Key or EndMap, the central
// correctness rule of the map encoder. Panics if called
// without an open Map scope, while a value is still owed for a previous
// Key, or if k is invalid UTF-8 or exceeds 65535 bytes.
func (e *Encoder) Key(k string) *Encoder {
	top := e.stack.top()
	if top == nil || top.kind != scopeMap {
		panic("neopack/wire: Key: no open Map scope")
	}
	if top.mapAwait != awaitingKey {
		panic("neopack/wire: Key: a value is still owed for the previous Key")
	}
	if !utf8.ValidString(k) {
		panic("neopack/wire: Key: not valid UTF-8")
	}
	if len(k) > neopack.MaxSize {
		panic("neopack/wire: Key: exceeds 65535 bytes")
	}
	e.buf = append(e.buf, byte(neopack.TagString))
	e.buf = putU16(e.buf, uint16(len(k)))
	e.buf = append(e.buf, k...)
	top.mapAwait = awaitingValue
	return e
}

// EndMap closes the innermost Map scope, back-patching its pair count.
// Panics if the innermost open scope is not a Map, or if a Key was written
// without a matching value (a dangling key).
func (e *Encoder) EndMap() *Encoder {
	top := e.stack.top()
	if top == nil || top.kind != scopeMap {
		panic("neopack/wire: EndMap: no matching open Map scope")
	}
	if top.mapAwait == awaitingValue {
		panic("neopack/wire: EndMap: dangling Key without a value")
	}
	putU16At(e.buf, top.countOffset, uint16(top.count))
	e.stack.pop()
	return e
}

// Array opens a new Array scope with the given item tag and per-item
// stride in bytes. stride must be between 1 and 65535 inclusive. Items are
// supplied via Push, never via the scalar/blob/container value methods.
func (e *Encoder) Array(item neopack.Tag, stride uint16) *Encoder {
	if stride < 1 {
		panic("neopack/wire: Array: stride must be >= 1")
	}
	e.beginValue()
	e.buf = append(e.buf, byte(neopack.TagArray))
	e.buf = append(e.buf, byte(item))
	e.buf = putU16(e.buf, stride)
	countOffset := len(e.buf)
	e.buf = putU16(e.buf, 0)
	e.endValue()
	e.stack.push(scope{kind: scopeArray, countOffset: countOffset, itemTag: item, stride: stride})
	return e
}

// Push appends one item to the innermost open Array scope. b must have
// exactly Stride bytes. Panics if there is no open Array scope, if len(b)
// does not equal the declared stride, or if the running byte tally would
// exceed 65535.
func (e *Encoder) Push(b []byte) *Encoder {
	top := e.stack.top()
	if top == nil || top.kind != scopeArray {
		panic("neopack/wire: Push: no open Array scope")
	}
	if len(b) != int(top.stride) {
		panic("neopack/wire: Push: len(b) != stride")
	}
	if top.byteTally+len(b) > neopack.MaxSize {
		panic("neopack/wire: Push: stride*count exceeds 65535")
	}
	e.buf = append(e.buf, b...)
	top.byteTally += len(b)
	top.count++
	return e
}

// EndArray closes the innermost Array scope, back-patching its item count.
// Panics if the innermost open scope is not an Array, or if the running
// byte tally does not equal stride*count (an assertion; Push already
// enforces this incrementally).
func (e *Encoder) EndArray() *Encoder {
	top := e.stack.top()
	if top == nil || top.kind != scopeArray {
		panic("neopack/wire: EndArray: no matching open Array scope")
	}
	if top.byteTally != int(top.stride)*top.count {
		panic("neopack/wire: EndArray: byte tally does not match stride*count")
	}
	if top.count > neopack.MaxSize {
		panic("neopack/wire: EndArray: count exceeds 65535")
	}
	putU16At(e.buf, top.countOffset, uint16(top.count))
	e.stack.pop()
	return e
}

// IntoBytes returns the finished buffer. It returns an error rather than the
// buffer if any scope is still open: a garbage-collected implementation has
// no deterministic end-of-scope destructor, so an omitted End* call must be
// caught here instead of silently producing a truncated-count buffer.
func (e *Encoder) IntoBytes() ([]byte, error) {
	if d := e.stack.depth(); d != 0 {
		return nil, errors.New("neopack/wire: IntoBytes: " + strconv.Itoa(d) + " scope(s) still open")
	}
	return e.buf, nil
}

// putU16At overwrites the two bytes at buf[offset:offset+2] with v encoded
// little-endian. Used to back-patch a placeholder count written by
// List/Map/Array's open call.
func putU16At(buf []byte, offset int, v uint16) {
	buf[offset] = byte(v)
	buf[offset+1] = byte(v >> 8)
}
