package image

import (
	"errors"
	"fmt"
)

var (
	// ErrTypeMismatch reports a descriptor whose tag does not match its element type.
	ErrTypeMismatch = errors.New("wrong image data type")

	// ErrInvalidLayout reports negative dimensions or element counts.
	ErrInvalidLayout = errors.New("invalid layout")

	// ErrOutOfBounds reports a layout that addresses elements outside its buffer.
	ErrOutOfBounds = errors.New("layout exceeds buffer")

	// ErrNilDescriptor reports a nil descriptor argument.
	ErrNilDescriptor = errors.New("nil descriptor")

	// ErrNotOwned reports a release of a borrowed descriptor.
	ErrNotOwned = errors.New("descriptor does not own its buffer")

	// ErrReleased reports a second release of the same buffer.
	ErrReleased = errors.New("descriptor already released")
)

// TypeMismatchError describes a failed tag check on one kernel operand.
type TypeMismatchError struct {
	Operand string
	Want    DataType
	Got     DataType
}

func (e *TypeMismatchError) Error() string {
	if e.Operand == "" {
		return fmt.Sprintf("%s: want %s (%d), got tag %d", ErrTypeMismatch, e.Want, e.Want, e.Got)
	}
	return fmt.Sprintf("%s: %s: want %s (%d), got tag %d", ErrTypeMismatch, e.Operand, e.Want, e.Want, e.Got)
}

// Is makes errors.Is(err, ErrTypeMismatch) hold.
func (e *TypeMismatchError) Is(target error) bool {
	return target == ErrTypeMismatch
}
