package cpu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/born-ml/imterface/internal/image"
	"github.com/born-ml/imterface/internal/logutil"
)

// Add computes out[x,y] = a[x,y] + b[x,y] over the width x height range of a.
//
// out is caller-supplied and may be a itself or b itself when the layouts
// coincide. An empty image (width or height 0) is not an error; nothing is
// written.
//
// Example:
//
//	a, _ := image.New([]float32{1, 2, 3, 4}, image.Contiguous(1, 2, 2))
//	b, _ := image.New([]float32{10, 20, 30, 40}, image.Contiguous(1, 2, 2))
//	out, _ := image.New(make([]float32, 4), image.Contiguous(1, 2, 2))
//	err := cpu.Add(a, b, out) // out = [11 22 33 44]
func Add[T image.Element](a, b, out *image.Descriptor[T]) error {
	if err := validate("add", arg("in1", a), arg("in2", b), arg("out", out)); err != nil {
		return err
	}
	slog.Log(context.TODO(), logutil.LevelTrace, "add", "in1", a, "in2", b, "out", out)
	add(a, b, out)
	return nil
}

// AddAlloc computes a + b into a new contiguous descriptor allocated from
// alloc. The result takes width, height and channels from a, has XStride 1 and
// YStride equal to its width, and carries the canonical tag. The caller owns
// it and must Release it. On failure it returns nil.
func AddAlloc[T image.Element](a, b *image.Descriptor[T], alloc image.Allocator[T]) (*image.Descriptor[T], error) {
	if err := validate("add", arg("in1", a), arg("in2", b)); err != nil {
		return nil, err
	}
	out, err := image.Alloc(alloc, a.Channels(), a.Width(), a.Height())
	if err != nil {
		slog.Warn("could not allocate output image", "op", "add", "layout", a.Layout(), "error", err)
		return nil, fmt.Errorf("add: %w", err)
	}
	slog.Log(context.TODO(), logutil.LevelTrace, "add", "in1", a, "in2", b, "out", out)
	add(a, b, out)
	return out, nil
}

func add[T image.Element](a, b, out *image.Descriptor[T]) {
	if rowwise(a, b, out) {
		for y := 0; y < a.Height(); y++ {
			addRow(out.Row(y), a.Row(y), b.Row(y))
		}
		return
	}

	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			out.Set(x, y, a.At(x, y)+b.At(x, y))
		}
	}
}
