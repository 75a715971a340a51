package cpu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/born-ml/imterface/internal/image"
	"github.com/born-ml/imterface/internal/logutil"
)

// Max returns the largest element of in, seeded with element (0, 0).
//
// The seed is read only after the tag check and only when the image has at
// least one element; an empty image returns ErrEmpty.
func Max[T image.Element](in *image.Descriptor[T]) (T, error) {
	var zero T
	if err := validate("max", arg("in", in)); err != nil {
		return zero, err
	}
	if in.Empty() {
		slog.Warn("maximum of empty image", "op", "max", "layout", in.Layout())
		return zero, fmt.Errorf("max: %w", ErrEmpty)
	}
	slog.Log(context.TODO(), logutil.LevelTrace, "max", "in", in)

	m := in.At(0, 0)
	if rowwise(in) {
		for y := 0; y < in.Height(); y++ {
			m = maxRow(m, in.Row(y))
		}
		return m, nil
	}

	for y := 0; y < in.Height(); y++ {
		for x := 0; x < in.Width(); x++ {
			if v := in.At(x, y); m < v {
				m = v
			}
		}
	}
	return m, nil
}
