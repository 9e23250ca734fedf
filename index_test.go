package omgwtf8

import "testing"

// smiley is U+1F600 (😀), encoded F0 9F 98 80, a 4-byte UTF-8 sequence
// used throughout these tests to exercise the FourByteSeq1/2/3 index
// classifications.
var smiley = []byte{0xF0, 0x9F, 0x98, 0x80}

func TestClassifyIndex(t *testing.T) {
	s := FromBytesUnchecked(append(append([]byte{}, smiley...), 'x'))
	tests := []struct {
		index int
		want  indexKind
	}{
		{0, charBoundary},
		{1, fourByteSeq1},
		{2, fourByteSeq2},
		{3, fourByteSeq3},
		{4, charBoundary}, // 'x'
		{5, charBoundary}, // len(s)
		{6, outOfBounds},
		{-1, outOfBounds},
	}
	for _, tc := range tests {
		if got := s.classify(tc.index); got != tc.want {
			t.Errorf("classify(%d) = %v, want %v", tc.index, got, tc.want)
		}
	}
}

func TestSliceAdjustsFourByteSeq2(t *testing.T) {
	s := FromBytesUnchecked(smiley)
	// Index 2 sits between the two code units the supplementary code
	// point decomposes into; slicing there must adjust outward rather
	// than cutting mid-sequence.
	head := s.Slice(0, 2)
	if len(head.b) != 3 {
		t.Fatalf("Slice(0, 2).Len() = %d, want 3", len(head.b))
	}
	tail := s.Slice(2, 4)
	if len(tail.b) != 3 {
		t.Fatalf("Slice(2, 4).Len() = %d, want 3", len(tail.b))
	}
}

func TestSliceFromTo(t *testing.T) {
	s := FromUTF8String("abcdef")
	if got := s.From(2); string(got.b) != "cdef" {
		t.Fatalf("From(2) = %q, want %q", got.b, "cdef")
	}
	if got := s.To(2); string(got.b) != "ab" {
		t.Fatalf("To(2) = %q, want %q", got.b, "ab")
	}
}

func TestSlicePanicsOnInteriorIndex(t *testing.T) {
	s := FromBytesUnchecked(smiley)
	tests := []struct {
		name string
		i, j int
	}{
		{"FourByteSeq1 start", 1, 4},
		{"FourByteSeq3 end", 0, 3},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatalf("expected panic")
				}
				if _, ok := r.(*SliceError); !ok {
					t.Fatalf("expected *SliceError panic, got %T", r)
				}
			}()
			s.Slice(tc.i, tc.j)
		})
	}
}

func TestSlicePanicsOnReversedRange(t *testing.T) {
	s := FromUTF8String("abcd")
	defer func() {
		r := recover()
		if r == nil {
			t.Fatalf("expected panic")
		}
		se, ok := r.(*SliceError)
		if !ok {
			t.Fatalf("expected *SliceError panic, got %T", r)
		}
		if se.Kind != reversedRange {
			t.Fatalf("Kind = %v, want reversedRange", se.Kind)
		}
	}()
	s.Slice(3, 1)
}

func TestSliceEmptyRange(t *testing.T) {
	s := FromUTF8String("abcd")
	if got := s.Slice(2, 2); !got.IsEmpty() {
		t.Fatalf("Slice(2, 2) = %q, want empty", got.b)
	}
}
