package omgwtf8

import (
	"bytes"
	"encoding/binary"
	"hash/fnv"
)

// canonicalTriple is the canonical form of an OMG-WTF-8 string used for
// equality, ordering, and hashing: a string's leading bare low-surrogate
// group and trailing bare high-surrogate group (if present) are peeled off
// into lowTag/highTag, leaving middle as the remaining well-formed bytes.
// Two strings compare equal exactly when their canonical triples match.
type canonicalTriple struct {
	lowTag  uint16
	middle  []byte
	highTag uint16
}

// canonicalize computes s's canonical triple per the length-based cases:
// strings of length 0-2 can hold no surrogate group at all; length-3
// strings are tested as a single group; length 4-5 strings can hold a
// group at one end only; length 6 and up can hold independent groups at
// both ends.
func (s S) canonicalize() canonicalTriple {
	b := s.b
	n := len(b)
	switch {
	case n <= 2:
		return canonicalTriple{middle: b}
	case n == 3:
		c := newThreeByteSeq(b).canonicalize()
		switch {
		case c >= 0xA000 && c <= 0xAFFF:
			return canonicalTriple{highTag: c}
		case c >= 0xB000 && c <= 0xBFFF:
			return canonicalTriple{lowTag: c}
		default:
			return canonicalTriple{middle: b}
		}
	case n == 4, n == 5:
		if c := newThreeByteSeq(b[:3]).canonicalize(); c >= 0xB000 && c <= 0xBFFF {
			return canonicalTriple{lowTag: c, middle: b[3:]}
		}
		if c := newThreeByteSeq(b[n-3:]).canonicalize(); c >= 0xA000 && c <= 0xAFFF {
			return canonicalTriple{middle: b[:n-3], highTag: c}
		}
		return canonicalTriple{middle: b}
	default:
		beg := newThreeByteSeq(b[:3]).canonicalize()
		end := newThreeByteSeq(b[n-3:]).canonicalize()
		begLow := beg >= 0xB000 && beg <= 0xBFFF
		endHigh := end >= 0xA000 && end <= 0xAFFF
		switch {
		case begLow && endHigh:
			return canonicalTriple{lowTag: beg, middle: b[3 : n-3], highTag: end}
		case begLow:
			return canonicalTriple{lowTag: beg, middle: b[3:]}
		case endHigh:
			return canonicalTriple{middle: b[:n-3], highTag: end}
		default:
			return canonicalTriple{middle: b}
		}
	}
}

// Equal reports whether s and other represent the same canonical sequence
// of WTF-16 code units.
func (s S) Equal(other S) bool {
	a, b := s.canonicalize(), other.canonicalize()
	return a.lowTag == b.lowTag && a.highTag == b.highTag && bytes.Equal(a.middle, b.middle)
}

// Compare returns -1, 0, or 1 according to whether s sorts before, equal
// to, or after other under canonical-triple order (lowTag, then middle
// bytes, then highTag). This total order can disagree with plain byte order
// when one side has a peeled surrogate tag the other doesn't.
func (s S) Compare(other S) int {
	a, b := s.canonicalize(), other.canonicalize()
	if a.lowTag != b.lowTag {
		if a.lowTag < b.lowTag {
			return -1
		}
		return 1
	}
	if c := bytes.Compare(a.middle, b.middle); c != 0 {
		return c
	}
	if a.highTag != b.highTag {
		if a.highTag < b.highTag {
			return -1
		}
		return 1
	}
	return 0
}

// Less reports whether s sorts before other under Compare.
func (s S) Less(other S) bool { return s.Compare(other) < 0 }

// Hash returns a 64-bit hash of s's canonical triple, consistent with
// Equal: a.Equal(b) implies a.Hash() == b.Hash(). It uses the standard
// library's FNV-1a (no dependency in the retrieval pack offers a
// non-cryptographic hash primitive; see DESIGN.md).
func (s S) Hash() uint64 {
	t := s.canonicalize()
	h := fnv.New64a()
	var tag [2]byte
	binary.BigEndian.PutUint16(tag[:], t.lowTag)
	h.Write(tag[:])
	h.Write(t.middle)
	binary.BigEndian.PutUint16(tag[:], t.highTag)
	h.Write(tag[:])
	return h.Sum64()
}
