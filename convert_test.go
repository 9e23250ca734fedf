package omgwtf8

import (
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/omgwtf8/omgwtf8/omgwtf8test"
)

func TestFromUTF8StringAndBackToUTF8(t *testing.T) {
	s := FromUTF8String("héllo, 世界")
	got, ok := s.ToUTF8()
	if !ok {
		t.Fatalf("ToUTF8() ok = false, want true")
	}
	if got != "héllo, 世界" {
		t.Fatalf("ToUTF8() = %q", got)
	}
}

func TestToUTF8RejectsUnpairedSurrogate(t *testing.T) {
	s := FromWide([]uint16{'a', 0xD800, 'b'})
	if _, ok := s.ToUTF8(); ok {
		t.Fatalf("ToUTF8() ok = true for a string with an unpaired surrogate")
	}
}

func TestFromWideVectors(t *testing.T) {
	for _, vec := range omgwtf8test.SurrogatePairVectors {
		t.Run(vec.Name, func(t *testing.T) {
			got := FromWide(vec.Units).Bytes()
			if diff := cmp.Diff(vec.Want, got); diff != "" {
				t.Fatalf("FromWide mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestEncodeWideRoundTrip(t *testing.T) {
	units := []uint16{'h', 0xD83D, 0xDE00, 'i', 0xD800}
	s := FromWide(units)
	it := s.EncodeWide()
	var got []uint16
	for {
		u, ok := it.Next()
		if !ok {
			break
		}
		got = append(got, u)
	}
	if diff := cmp.Diff(units, got); diff != "" {
		t.Fatalf("EncodeWide round trip mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalCopyRewritesSplitGroups(t *testing.T) {
	in := []byte{0xB2, 0x87, 0x9D, 0xF0, 0xB2, 0x87, 0x9D, 0xF0, 0xB2, 0x87}
	want := []byte{0xED, 0xB7, 0x9D, 0xF0, 0xB2, 0x87, 0x9D, 0xED, 0xA2, 0x88}
	got := FromBytesUnchecked(in).CanonicalCopy().Bytes()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("CanonicalCopy mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalCopyIsIdempotent(t *testing.T) {
	in := []byte{0xB2, 0x87, 0x9D, 0xF0, 0xB2, 0x87, 0x9D, 0xF0, 0xB2, 0x87}
	once := FromBytesUnchecked(in).CanonicalCopy()
	twice := once.CanonicalCopy()
	if diff := cmp.Diff(once.Bytes(), twice.Bytes()); diff != "" {
		t.Fatalf("CanonicalCopy is not idempotent (-once +twice):\n%s", diff)
	}
}

func TestCanonicalCopyLeavesShortStringsAlone(t *testing.T) {
	in := []byte{0x80, 0x81}
	got := FromBytesUnchecked(in).CanonicalCopy().Bytes()
	if diff := cmp.Diff(in, got); diff != "" {
		t.Fatalf("CanonicalCopy mismatch on length < 3 (-want +got):\n%s", diff)
	}
}
