package neopack

import "strconv"

// Kind enumerates the five disjoint decode-error variants. A Kind is data,
// never a panic: every Reader method that can fail returns a [Error] built
// around one of these, leaving its cursor unchanged so a caller can retry
// or try a different reader at the same position.
type Kind uint8

const (
	// Pending means the decoder needs more input to complete the current
	// read. [Error.Needed] holds the exact number of additional bytes
	// required. The caller should extend its buffer and retry the same
	// call.
	Pending Kind = iota + 1
	// InvalidTag means the tag byte at the cursor is not recognized in the
	// current context. [Error.Byte] holds the offending byte.
	InvalidTag
	// InvalidUtf8 means a String value's payload bytes are not valid UTF-8.
	InvalidUtf8
	// TypeMismatch means a typed reader was invoked at a position whose tag
	// disagrees. [Error.Expected] and [Error.Actual] hold the two tags. The
	// cursor is unchanged, so the caller can retry with a different typed
	// reader.
	TypeMismatch
	// Malformed means a structural violation was detected: an array whose
	// stride*count overflows the size ceiling, a map entry not headed by a
	// String tag, or another impossible count.
	Malformed
)

// String returns the name of k.
func (k Kind) String() string {
	switch k {
	case Pending:
		return "Pending"
	case InvalidTag:
		return "InvalidTag"
	case InvalidUtf8:
		return "InvalidUtf8"
	case TypeMismatch:
		return "TypeMismatch"
	case Malformed:
		return "Malformed"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Error is the error value returned by every decode-side operation that can
// fail. All five [Kind] variants are represented by this single type; the
// Kind field selects which of the other fields are meaningful. Error is
// comparable by Kind using [errors.Is] against the bare Kind constants.
type Error struct {
	Kind Kind

	// Needed is the number of additional bytes required to complete the
	// read. Only meaningful when Kind == Pending. Always >= 1.
	Needed int

	// Byte is the offending tag byte. Only meaningful when
	// Kind == InvalidTag.
	Byte byte

	// Expected and Actual are the tag that a typed reader required and the
	// tag actually found at the cursor. Only meaningful when
	// Kind == TypeMismatch.
	Expected, Actual Tag

	// Msg is a short, human-readable description used for Malformed errors
	// and as a fallback for any other kind where no structured field
	// applies.
	Msg string
}

// Error implements the error interface.
func (e *Error) Error() string {
	switch e.Kind {
	case Pending:
		return "neopack: pending, need " + strconv.Itoa(e.Needed) + " more byte(s)"
	case InvalidTag:
		return "neopack: invalid tag byte 0x" + strconv.FormatUint(uint64(e.Byte), 16)
	case InvalidUtf8:
		return "neopack: string payload is not valid UTF-8"
	case TypeMismatch:
		return "neopack: type mismatch: expected " + e.Expected.String() + ", got " + e.Actual.String()
	case Malformed:
		if e.Msg != "" {
			return "neopack: malformed: " + e.Msg
		}
		return "neopack: malformed"
	}
	return "neopack: error"
}

// Is reports whether target is the bare Kind constant matching e.Kind,
// allowing callers to write errors.Is(err, neopack.Pending).
func (e *Error) Is(target error) bool {
	k, ok := target.(Kind)
	return ok && k == e.Kind
}

// Error lets a bare Kind satisfy the error interface, which is what makes
// errors.Is(err, neopack.Pending) work without callers constructing a
// *Error of their own.
func (k Kind) Error() string { return k.String() }

// PendingError returns an [Error] of Kind [Pending] requiring n additional
// bytes. n must be >= 1.
func PendingError(n int) *Error { return &Error{Kind: Pending, Needed: n} }

// InvalidTagError returns an [Error] of Kind [InvalidTag] for the offending
// byte b.
func InvalidTagError(b byte) *Error { return &Error{Kind: InvalidTag, Byte: b} }

// TypeMismatchError returns an [Error] of Kind [TypeMismatch] for a reader
// that required expected but found actual.
func TypeMismatchError(expected, actual Tag) *Error {
	return &Error{Kind: TypeMismatch, Expected: expected, Actual: actual}
}

// InvalidUtf8Error returns an [Error] of Kind [InvalidUtf8].
func InvalidUtf8Error() *Error { return &Error{Kind: InvalidUtf8} }

// MalformedError returns an [Error] of Kind [Malformed] with the given
// description.
func MalformedError(msg string) *Error { return &Error{Kind: Malformed, Msg: msg} }
