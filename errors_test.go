package neopack

import (
	"errors"
	"testing"
)

func TestError_Is(t *testing.T) {
	tests := map[string]struct {
		err    *Error
		target Kind
		want   bool
	}{
		"PendingMatches":       {PendingError(3), Pending, true},
		"PendingAgainstOther":  {PendingError(3), Malformed, false},
		"TypeMismatchMatches":  {TypeMismatchError(TagU32, TagString), TypeMismatch, true},
		"InvalidUtf8Matches":   {InvalidUtf8Error(), InvalidUtf8, true},
		"InvalidTagMatches":    {InvalidTagError(0xFF), InvalidTag, true},
		"MalformedMatches":     {MalformedError("bad"), Malformed, true},
		"MalformedAgainstTM":   {MalformedError("bad"), TypeMismatch, false},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := errors.Is(tc.err, tc.target); got != tc.want {
				t.Errorf("errors.Is(err, %v) = %v, want %v", tc.target, got, tc.want)
			}
		})
	}
}

func TestError_Error(t *testing.T) {
	tests := map[string]struct {
		err  *Error
		want string
	}{
		"Pending":      {PendingError(4), "neopack: pending, need 4 more byte(s)"},
		"InvalidTag":   {InvalidTagError(0xFF), "neopack: invalid tag byte 0xff"},
		"InvalidUtf8":  {InvalidUtf8Error(), "neopack: string payload is not valid UTF-8"},
		"TypeMismatch": {TypeMismatchError(TagU32, TagString), "neopack: type mismatch: expected U32, got String"},
		"Malformed":    {MalformedError("array stride*count exceeds 65535"), "neopack: malformed: array stride*count exceeds 65535"},
	}
	for name, tc := range tests {
		t.Run(name, func(t *testing.T) {
			if got := tc.err.Error(); got != tc.want {
				t.Errorf("Error() = %q, want %q", got, tc.want)
			}
		})
	}
}
