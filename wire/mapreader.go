package wire

import "neopack.dev/neopack"

// MapReader reads the key/value pairs of a Map value obtained from
// [Reader.Map]. Each entry's key must be tagged String; any other tag is a
// Malformed error, since NEOPACK requires map entries to be headed by a
// String-tagged key. Duplicate keys are not detected or deduplicated; they
// are surfaced to the caller in encounter order.
type MapReader struct {
	r         *Reader
	remaining int

	// pendingKey and havePendingKey let Next resume after a Pending error on
	// the value half of a pair without re-reading (and re-validating) the
	// key half.
	pendingKey     string
	havePendingKey bool
}

// Next reads the next key/value pair. more is false once every pair
// declared by the Map's header has been read, with err nil. A non-nil err
// while reading the key leaves the underlying Reader's cursor unchanged. If
// the key has been read but its value fails, the key is kept by the
// MapReader and the cursor stays just after the key, not where this call
// started; calling Next again resumes with the value.
//
// If the returned value is a container (value.Tag.IsContainer()), its bytes
// have only been header-peeked, not consumed. The same obligation
// documented on [Reader.Value] applies: enter it (List, Map, or Array on
// the same Reader) or discard it (Reader.Skip) before calling Next again.
func (mr *MapReader) Next() (key string, value neopack.Value, more bool, err *neopack.Error) {
	if mr.remaining == 0 {
		return "", neopack.Value{}, false, nil
	}
	if !mr.havePendingKey {
		tag, err := mr.r.peekTag()
		if err != nil {
			return "", neopack.Value{}, false, err
		}
		if tag != neopack.TagString {
			return "", neopack.Value{}, false, neopack.MalformedError("map entry key is not tagged String")
		}
		k, err := mr.r.Str()
		if err != nil {
			return "", neopack.Value{}, false, err
		}
		mr.pendingKey = k
		mr.havePendingKey = true
	}
	v, err := mr.r.Value()
	if err != nil {
		return "", neopack.Value{}, false, err
	}
	key = mr.pendingKey
	mr.pendingKey = ""
	mr.havePendingKey = false
	mr.remaining--
	return key, v, true, nil
}
