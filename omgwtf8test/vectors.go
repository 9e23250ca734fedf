// Package omgwtf8test exposes golden-vector tables used to exercise the
// omgwtf8 package from its own tests and, since none of it reaches into
// unexported state, from any downstream consumer's tests too.
package omgwtf8test

// SurrogatePairVector pairs a sequence of UTF-16 code units with the bytes
// omgwtf8.FromWide is expected to produce for them.
type SurrogatePairVector struct {
	Name  string
	Units []uint16
	Want  []byte
}

// SurrogatePairVectors covers the surrogate-pairing state machine: a clean
// pair; a leading unpaired low surrogate, a pair, and a trailing unpaired
// high surrogate; and plain ASCII.
var SurrogatePairVectors = []SurrogatePairVector{
	{
		Name:  "paired supplementary character",
		Units: []uint16{0xD888, 0xDDDD},
		Want:  []byte{0xF0, 0xB2, 0x87, 0x9D},
	},
	{
		Name:  "leading unpaired low then a pair then a trailing unpaired high",
		Units: []uint16{0xDDDD, 0xD888, 0xDDDD, 0xD888},
		Want:  []byte{0xED, 0xB7, 0x9D, 0xF0, 0xB2, 0x87, 0x9D, 0xED, 0xA2, 0x88},
	},
	{
		Name:  "ordinary ASCII",
		Units: []uint16{'h', 'i'},
		Want:  []byte{'h', 'i'},
	},
}

// CanonicalEquivalenceVector names a set of byte sequences that differ at
// the byte level but must canonicalize to the same (lowTag, middle, highTag)
// triple, and so must compare, order, and hash identically.
type CanonicalEquivalenceVector struct {
	Name  string
	Forms [][]byte
}

// CanonicalEquivalenceVectors holds a family of four byte-distinct
// encodings of the same logical string: every combination of a bare low
// group vs. a canonical ED-prefixed low group, crossed with a bare high
// group vs. a canonical ED-prefixed high group.
var CanonicalEquivalenceVectors = []CanonicalEquivalenceVector{
	{
		Name: "mixed bare and canonical surrogate groups at both ends",
		Forms: [][]byte{
			{0xED, 0xB8, 0x83, 0xED, 0xA5, 0xA6},
			{0xA9, 0xA8, 0x83, 0xED, 0xA5, 0xA6},
			{0xED, 0xB8, 0x83, 0xF1, 0xA9, 0xA8},
			{0xA9, 0xA8, 0x83, 0xF1, 0xA9, 0xA8},
		},
	},
}

// SearchMatch is a half-open byte range [Start, End) reported by a match.
type SearchMatch struct {
	Start, End int
}

// SearchVector exercises the searcher's cursor arithmetic against a
// haystack built from one repeated 4-byte sequence.
type SearchVector struct {
	Name        string
	Haystack    []byte
	NeedleUnits []uint16
	WantMatches []SearchMatch
}

var scream = []byte{0xF0, 0x9F, 0x98, 0xB1} // U+1F631, pair D83D DE31

func repeat3(b []byte) []byte {
	out := make([]byte, 0, len(b)*3)
	out = append(out, b...)
	out = append(out, b...)
	out = append(out, b...)
	return out
}

// SearchVectors is the canonical set of traced haystack/needle/match
// triples used to pin down the searcher's non-overlapping-cursor behavior.
var SearchVectors = []SearchVector{
	{
		Name:        "single high surrogate needle over three repeated characters",
		Haystack:    repeat3(scream),
		NeedleUnits: []uint16{0xD83D},
		WantMatches: []SearchMatch{{0, 3}, {4, 7}, {8, 11}},
	},
	{
		Name:        "low-then-high needle spanning two adjacent characters",
		Haystack:    repeat3(scream),
		NeedleUnits: []uint16{0xDE31, 0xD83D},
		WantMatches: []SearchMatch{{1, 7}, {5, 11}},
	},
}

// FindVector exercises Find's offset conversion: the reported offset must
// always be a valid slice boundary, even when the match itself begins on
// what would otherwise be an interior byte of a 4-byte sequence.
type FindVector struct {
	Name        string
	Haystack    []byte
	NeedleUnits []uint16
	WantOffset  int
}

// FindVectors covers the low-surrogate-needle case: the needle matches the
// trailing three bytes of a 4-byte sequence, and the reported offset lands
// one byte past the match's raw start.
var FindVectors = []FindVector{
	{
		Name:        "low surrogate needle into a supplementary character",
		Haystack:    []byte{0xF0, 0x9F, 0x98, 0x80}, // U+1F600, pair D83D DE00
		NeedleUnits: []uint16{0xDE00},
		WantOffset:  2,
	},
}

// SplitVector exercises Split's piece boundaries against a haystack built
// from one repeated 4-byte sequence.
type SplitVector struct {
	Name        string
	Haystack    []byte
	NeedleUnits []uint16
	WantPieces  []string
}

// SplitVectors covers splitting on a high-surrogate needle: the leading
// piece is empty and every following piece starts with the bare
// low-surrogate group that the needle's match left behind.
var SplitVectors = []SplitVector{
	{
		Name:        "high surrogate needle over three repeated characters",
		Haystack:    repeat3(scream),
		NeedleUnits: []uint16{0xD83D},
		WantPieces:  []string{"", "\x9f\x98\xb1", "\x9f\x98\xb1", "\x9f\x98\xb1"},
	},
}
