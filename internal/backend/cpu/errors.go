package cpu

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/born-ml/imterface/internal/image"
)

var (
	// ErrShapeMismatch reports operands whose width or height differ.
	ErrShapeMismatch = errors.New("shape mismatch")

	// ErrEmpty reports a reduction over an image without elements.
	ErrEmpty = errors.New("empty image")
)

// operand names a descriptor argument for diagnostics.
type operand[T image.Element] struct {
	name string
	d    *image.Descriptor[T]
}

func arg[T image.Element](name string, d *image.Descriptor[T]) operand[T] {
	return operand[T]{name: name, d: d}
}

// validate checks every operand's tag, then that all operands share the first
// operand's width and height. Nothing is dereferenced.
func validate[T image.Element](op string, operands ...operand[T]) error {
	for _, o := range operands {
		if o.d == nil {
			slog.Warn("missing image descriptor", "op", op, "operand", o.name)
			return fmt.Errorf("%s: %s: %w", op, o.name, image.ErrNilDescriptor)
		}
		if err := o.d.Check(o.name); err != nil {
			slog.Warn("wrong image data type", "op", op, "operand", o.name,
				"want", image.TagOf[T](), "got", int32(o.d.TypeID()))
			return fmt.Errorf("%s: %w", op, err)
		}
	}

	first := operands[0]
	for _, o := range operands[1:] {
		if !o.d.Layout().SameSize(first.d.Layout()) {
			slog.Warn("image shapes differ", "op", op,
				first.name, first.d.Layout(), o.name, o.d.Layout())
			return fmt.Errorf("%s: %w: %s is %dx%d, %s is %dx%d", op, ErrShapeMismatch,
				first.name, first.d.Width(), first.d.Height(), o.name, o.d.Width(), o.d.Height())
		}
	}
	return nil
}
