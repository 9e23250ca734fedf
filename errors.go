package omgwtf8

import "github.com/pkg/errors"

// SliceError is the panic value raised when a slice operation is asked to
// cut at a byte index that is not a valid boundary: an interior byte of a
// multi-byte sequence, an out-of-range index, or a reversed range. It
// implements error so a caller that chooses to recover can inspect or wrap
// it like any other error.
type SliceError struct {
	Index int
	Kind  indexKind
	cause error
}

func (e *SliceError) Error() string { return e.cause.Error() }

func (e *SliceError) Unwrap() error { return e.cause }

func panicInvalidIndex(i int, kind indexKind) {
	panic(&SliceError{
		Index: i,
		Kind:  kind,
		cause: errors.Errorf("omgwtf8: invalid slice index %d (%s)", i, kind),
	})
}

func panicReversedRange(i, j int) {
	panic(&SliceError{
		Index: i,
		Kind:  reversedRange,
		cause: errors.Errorf("omgwtf8: reversed slice range %d..%d", i, j),
	})
}
