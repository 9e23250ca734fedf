package omgwtf8

import "bytes"

// A needle's canonical triple compiles to a compiledPattern: the literal
// middle bytes, plus, when the needle begins or ends with a peeled
// surrogate tag, a three-byte disjunction at that end between the
// canonical ED xx xx form and every "bare" byte form that canonicalizes to
// the same tag. This is a dedicated byte automaton in place of a general
// regex engine (see DESIGN.md for why github.com/coregx/coregex cannot
// serve this: its compiler promotes literal runes above U+007F to their
// UTF-8 encoding before matching, which is exactly wrong for raw surrogate
// byte groups). Its shape, compile once then scan with an advancing
// cursor, mirrors coregex's own Regex/next-match API and ahocorasick's
// compiled-matcher usage pattern.
type compiledPattern struct {
	hasLow  bool
	low     lowAlt
	middle  []byte
	hasHigh bool
	high    highAlt
}

// lowAlt holds the two three-byte forms that canonicalize to a given low
// surrogate tag: the canonical ED Bx yy form, and the bare form whose first
// byte is any continuation byte and whose second byte comes from a set of
// four, one per nibble class.
type lowAlt struct {
	canonicalByte1 byte
	bareByte1Set   [4]byte
	sharedByte2    byte
}

// highAlt holds the two three-byte forms that canonicalize to a given high
// surrogate tag: the canonical ED Ax yy form, and the head of the 4-byte
// UTF-8 sequence for the supplementary code point the tag pairs with,
// whose third byte ranges over a contiguous 16-value block.
type highAlt struct {
	canonicalByte1 byte
	canonicalByte2 byte
	prefixByte2    byte
	prefixByte3    byte
	rangeBase      byte
}

func buildLowAlt(tag uint16) lowAlt {
	y := byte(tag>>8) & 0xF
	return lowAlt{
		canonicalByte1: byte(tag >> 8),
		bareByte1Set:   [4]byte{0x80 | y, 0x90 | y, 0xA0 | y, 0xB0 | y},
		sharedByte2:    byte(tag),
	}
}

func buildHighAlt(tag uint16) highAlt {
	s := ((uint32(tag) & 0x3F) | ((uint32(tag) >> 2) & 0x3C0)) + 0x40
	nibbleBase := byte(s&3 | 8)
	return highAlt{
		canonicalByte1: byte(tag >> 8),
		canonicalByte2: byte(tag),
		prefixByte2:    byte((s >> 8) | 0xF0),
		prefixByte3:    byte(((s >> 2) & 0x3F) | 0x80),
		rangeBase:      nibbleBase << 4,
	}
}

func (a lowAlt) match(h []byte, pos int) (consumed int, ok bool) {
	if pos+3 > len(h) {
		return 0, false
	}
	b0, b1, b2 := h[pos], h[pos+1], h[pos+2]
	if b2 != a.sharedByte2 {
		return 0, false
	}
	if b0 == 0xED && b1 == a.canonicalByte1 {
		return 3, true
	}
	if b0 >= 0x80 && b0 <= 0xBF {
		for _, v := range a.bareByte1Set {
			if b1 == v {
				return 3, true
			}
		}
	}
	return 0, false
}

func (a highAlt) match(h []byte, pos int) (consumed int, ok bool) {
	if pos+3 > len(h) {
		return 0, false
	}
	b0, b1, b2 := h[pos], h[pos+1], h[pos+2]
	if b0 == 0xED && b1 == a.canonicalByte1 && b2 == a.canonicalByte2 {
		return 3, true
	}
	if b0 == a.prefixByte2 && b1 == a.prefixByte3 && b2 >= a.rangeBase && b2 <= a.rangeBase+0x0F {
		return 3, true
	}
	return 0, false
}

func compilePattern(needle S) *compiledPattern {
	tri := needle.canonicalize()
	p := &compiledPattern{middle: tri.middle}
	if tri.lowTag != 0 {
		p.hasLow = true
		p.low = buildLowAlt(tri.lowTag)
	}
	if tri.highTag != 0 {
		p.hasHigh = true
		p.high = buildHighAlt(tri.highTag)
	}
	return p
}

func (p *compiledPattern) minLen() int {
	n := len(p.middle)
	if p.hasLow {
		n += 3
	}
	if p.hasHigh {
		n += 3
	}
	return n
}

func (p *compiledPattern) isLiteral() bool { return !p.hasLow && !p.hasHigh }

// matchAt reports whether p matches haystack starting exactly at pos, and
// if so how many bytes the match consumes.
func (p *compiledPattern) matchAt(h []byte, pos int) (length int, ok bool) {
	cur := pos
	if p.hasLow {
		n, matched := p.low.match(h, cur)
		if !matched {
			return 0, false
		}
		cur += n
	}
	if len(p.middle) > 0 {
		end := cur + len(p.middle)
		if end > len(h) || !bytes.Equal(h[cur:end], p.middle) {
			return 0, false
		}
		cur = end
	}
	if p.hasHigh {
		n, matched := p.high.match(h, cur)
		if !matched {
			return 0, false
		}
		cur += n
	}
	return cur - pos, true
}

func isContinuationByte(b byte) bool { return b >= 0x80 && b <= 0xBF }

// endToStartCursor converts a match-end cursor into the position the next
// search should resume from. A match that ends mid-way through what would
// otherwise be a 4-byte sequence (because it consumed only the 3-byte head
// representing a high-surrogate tag) rewinds by two bytes so the following
// search can still find a match that starts on the byte it just "borrowed".
func endToStartCursor(h []byte, cur int) int {
	if cur != len(h) && isContinuationByte(h[cur]) {
		return cur - 2
	}
	return cur
}

// startToEndCursor is the mirror of endToStartCursor, used to extend the
// end of a split piece that precedes a match whose start "borrowed" bytes
// from what would otherwise be a 4-byte sequence.
func startToEndCursor(h []byte, cur int) int {
	if cur != 0 && isContinuationByte(h[cur]) {
		return cur + 2
	}
	return cur
}

// startCursorToOffset converts a raw match-start cursor into the external
// byte offset reported by Find: a one-byte (not two-byte) nudge forward,
// since a reported offset should land on the nearest valid slice boundary
// rather than on the matched byte range itself.
func startCursorToOffset(h []byte, cur int) int {
	if cur != 0 && isContinuationByte(h[cur]) {
		return cur + 1
	}
	return cur
}

// searcher scans a haystack for successive non-overlapping matches of a
// compiled pattern, advancing an internal cursor after each match.
type searcher struct {
	haystack []byte
	pat      *compiledPattern
	cursor   int
	done     bool
}

func newSearcher(haystack, needle S) *searcher {
	return &searcher{haystack: haystack.b, pat: compilePattern(needle)}
}

func (sr *searcher) nextMatch() (start, end int, ok bool) {
	if sr.done {
		return 0, 0, false
	}
	h := sr.haystack

	if sr.pat.isLiteral() {
		if len(sr.pat.middle) == 0 {
			if sr.cursor > len(h) {
				sr.done = true
				return 0, 0, false
			}
			start, end = sr.cursor, sr.cursor
			sr.cursor++
			return start, end, true
		}
		// A pattern with no surrogate disjunctions reduces to an ordinary
		// substring search; bytes.Index is the obvious stdlib fit here,
		// the same way a literal-only needle would hit a plain substring
		// prefilter in a general regex engine before ever reaching an NFA.
		idx := bytes.Index(h[sr.cursor:], sr.pat.middle)
		if idx < 0 {
			sr.done = true
			return 0, 0, false
		}
		start = sr.cursor + idx
		end = start + len(sr.pat.middle)
		sr.cursor = endToStartCursor(h, end)
		return start, end, true
	}

	minLen := sr.pat.minLen()
	for pos := sr.cursor; pos+minLen <= len(h); pos++ {
		if n, matched := sr.pat.matchAt(h, pos); matched {
			start, end = pos, pos+n
			sr.cursor = endToStartCursor(h, end)
			return start, end, true
		}
	}
	sr.done = true
	return 0, 0, false
}

// Contains reports whether needle occurs anywhere in s.
func (s S) Contains(needle S) bool {
	sr := newSearcher(s, needle)
	_, _, ok := sr.nextMatch()
	return ok
}

// Find returns the byte offset of the first occurrence of needle in s,
// or false if it does not occur. The returned offset is always a valid
// slice boundary into s, even when the match itself begins on what would
// otherwise be an interior byte of a 4-byte sequence.
func (s S) Find(needle S) (int, bool) {
	sr := newSearcher(s, needle)
	start, _, ok := sr.nextMatch()
	if !ok {
		return 0, false
	}
	return startCursorToOffset(sr.haystack, start), true
}

// SplitIterator yields the pieces of a haystack divided by non-overlapping
// occurrences of a needle, including a leading and/or trailing empty piece
// when the needle occurs at either end.
type SplitIterator struct {
	haystack []byte
	searcher *searcher
	start    int
	end      int
	finished bool
}

// Split returns an iterator over the pieces of s divided by occurrences of
// needle.
func (s S) Split(needle S) *SplitIterator {
	return &SplitIterator{
		haystack: s.b,
		searcher: newSearcher(s, needle),
		start:    0,
		end:      len(s.b),
	}
}

// Next returns the next piece and true, or false once every piece
// (including the final trailing piece after the last match) has been
// returned.
func (it *SplitIterator) Next() (S, bool) {
	if it.finished {
		return S{}, false
	}
	a, b, ok := it.searcher.nextMatch()
	if ok {
		pieceEnd := startToEndCursor(it.haystack, a)
		piece := S{b: it.haystack[it.start:pieceEnd]}
		it.start = endToStartCursor(it.haystack, b)
		return piece, true
	}
	it.finished = true
	return S{b: it.haystack[it.start:it.end]}, true
}
