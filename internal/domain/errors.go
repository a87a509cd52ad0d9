package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfRange is returned for a position outside the indexed sequence.
	ErrOutOfRange = errors.New("position out of range")
	// ErrShapeConsistency means the host's per-group shape disagrees with its
	// reported total. It signals a host bug and is never retried.
	ErrShapeConsistency = errors.New("group shape disagrees with reported count")
	// ErrUnhandledRegion means a position record is none of header, item or footer.
	ErrUnhandledRegion = errors.New("unhandled region kind")
	// ErrTypeCodeMismatch means the host's type code predicates classify a
	// code differently from the position it was produced for.
	ErrTypeCodeMismatch = errors.New("type code does not match region")
)

// ShapeError carries the details of a failed rebuild.
type ShapeError struct {
	// Last is the last flat index the rebuild emitted (-1 when nothing was emitted).
	Last int
	// Reported is the host's reported total count.
	Reported int
	// Group is the offending group for a negative item count, -1 otherwise.
	Group int
	// ItemCount is the negative item count reported for Group.
	ItemCount int
}

func (e *ShapeError) Error() string {
	if e.Group >= 0 {
		return fmt.Sprintf("group %d reports %d items: %v", e.Group, e.ItemCount, ErrShapeConsistency)
	}

	return fmt.Sprintf("last position is %d but reported count is %d (want last == %d): %v",
		e.Last, e.Reported, e.Reported-1, ErrShapeConsistency)
}

func (e *ShapeError) Unwrap() error {
	return ErrShapeConsistency
}

func outOfRange(position, length int) error {
	return fmt.Errorf("position %d not in [0, %d): %w", position, length, ErrOutOfRange)
}
