package wire

import "neopack.dev/neopack"

// ListReader reads the elements of a List value obtained from
// [Reader.List]. Elements may be of any tag, including nested containers.
type ListReader struct {
	r         *Reader
	remaining int
}

// Next reads the next element. ok is false once every element declared by
// the List's header has been read, with err nil. A non-nil err leaves both
// the ListReader and the underlying Reader's cursor unchanged, so the same
// Next call can be retried once more input is available.
//
// If the returned value is a container (value.Tag.IsContainer()), its bytes
// have only been header-peeked, not consumed. The same obligation
// documented on [Reader.Value] applies: enter it (List, Map, or Array on
// the same Reader) or discard it (Reader.Skip) before calling Next again.
func (lr *ListReader) Next() (value neopack.Value, ok bool, err *neopack.Error) {
	if lr.remaining == 0 {
		return neopack.Value{}, false, nil
	}
	v, err := lr.r.Value()
	if err != nil {
		return neopack.Value{}, false, err
	}
	lr.remaining--
	return v, true, nil
}
