// Package neopack defines the wire vocabulary shared by the NEOPACK encoder
// and decoder: the [Tag] type and its seventeen value shapes, the [Error]
// type used for every data-driven decode failure, and the generic [Value]
// sum type returned by a tagged-value read that has not yet committed to a
// specific scalar, blob, or container interpretation.
//
// Encoding and decoding of a byte stream using this vocabulary is
// implemented in the [neopack.dev/neopack/wire] subpackage. This package
// only defines the shared types; it performs no I/O and allocates nothing.
//
// # Wire format
//
// A NEOPACK stream is a concatenation of encoded values. Every value is a
// tag byte followed by a tag-specific payload:
//
//   - Scalars (Bool, S8..U64, F32, F64) carry a fixed-width little-endian
//     payload.
//   - Blobs (String, Bytes, Struct) carry a u16 length prefix followed by
//     that many bytes.
//   - Containers (List, Map, Array) carry a u16 count (Array additionally
//     carries an item tag and a u16 stride) followed by that many elements:
//     encoded values for a List, String-key/value pairs for a Map, and raw
//     stride-sized items for an Array.
//
// All sizes are unsigned 16-bit; there is no magic header and no version
// byte. See the package documentation of [neopack.dev/neopack/wire] for the
// encoder and decoder that read and write this format.
package neopack
