// Package omgwtf8 implements OMG-WTF-8, a byte-level encoding for Unicode
// strings that may contain WTF-16 code units, including unpaired surrogates.
//
// # Overview
//
// OMG-WTF-8 extends WTF-8 (itself an extension of UTF-8 permitting unpaired
// surrogates) with one more relaxation: a string may begin with a bare
// low-surrogate byte group or end with a bare high-surrogate byte group, or
// both. This lets any 16-bit code-unit boundary in the original WTF-16
// content become a valid byte-slice boundary in the encoded form, at the
// cost of byte-level equality no longer coinciding with code-unit-sequence
// equality: two different byte strings can represent the same WTF-16
// content, so comparison and hashing first reduce a string to a canonical
// triple (see canon.go) before comparing.
//
// # When to use
//
// Use this package when you need to store or slice WTF-16 content (for
// example, content coming from a JavaScript engine or a Windows API) at
// arbitrary 16-bit-unit offsets without pre-validating that every cut falls
// on a well-formed UTF-8 boundary, while still keeping a byte representation
// that is UTF-8 for all well-formed input.
//
// # When NOT to use
//
// This is not a general string type: there is no in-place mutation, no
// Unicode normalization, and no validating constructor that rejects
// ill-formed input. It also does not validate that code units fall in the
// 16-bit range; callers that need scalar-value semantics should convert
// through ToUTF8 and use the standard library's string/rune facilities.
//
// # Basic usage
//
//	s := omgwtf8.FromUTF8String("héllo")
//	mid := s.Slice(1, 3)
//	units := s.EncodeWide()
//	for {
//		u, ok := units.Next()
//		if !ok {
//			break
//		}
//		_ = u
//	}
package omgwtf8
