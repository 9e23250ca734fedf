package omgwtf8

import (
	"fmt"
	"strings"
	"unsafe"
)

// S is an immutable OMG-WTF-8 encoded byte string. The zero value is the
// empty string.
type S struct {
	b []byte
}

// FromBytesUnchecked wraps b as an OMG-WTF-8 string without validating that
// b is well-formed. Callers are responsible for the invariants described in
// the package documentation; passing bytes that are not valid OMG-WTF-8
// produces an S whose behavior under the other operations in this package
// is unspecified. b is not copied.
func FromBytesUnchecked(b []byte) S {
	return S{b: b}
}

// FromUTF8String wraps s, which must already be valid UTF-8 (guaranteed by
// the Go string type), as an OMG-WTF-8 string. No allocation or copy is
// performed: the returned S aliases s's backing array, which is safe
// because Go strings are immutable.
func FromUTF8String(s string) S {
	if len(s) == 0 {
		return S{}
	}
	return S{b: unsafe.Slice(unsafe.StringData(s), len(s))}
}

// Len returns the length of s in bytes.
func (s S) Len() int { return len(s.b) }

// IsEmpty reports whether s has zero length.
func (s S) IsEmpty() bool { return len(s.b) == 0 }

// Bytes returns the raw OMG-WTF-8 bytes backing s. The returned slice must
// not be mutated.
func (s S) Bytes() []byte { return s.b }

// GoString renders s as a Go source literal suitable for debugging output,
// e.g. omgwtf8.S(b"\xed\xa0\x80"). It is diagnostic only and is not part of
// the wire format.
func (s S) GoString() string {
	var sb strings.Builder
	sb.WriteString(`omgwtf8.S(b"`)
	for _, c := range s.b {
		fmt.Fprintf(&sb, "\\x%02x", c)
	}
	sb.WriteString(`")`)
	return sb.String()
}
