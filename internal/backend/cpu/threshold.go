package cpu

import (
	"context"
	"log/slog"

	"github.com/born-ml/imterface/internal/image"
	"github.com/born-ml/imterface/internal/logutil"
)

// Threshold computes out[x,y] = 1 if in[x,y] > threshold, else 0.
// The comparison is strict: values equal to threshold map to 0.
func Threshold[T image.Element](in, out *image.Descriptor[T], threshold T) error {
	if err := validate("threshold", arg("in", in), arg("out", out)); err != nil {
		return err
	}
	slog.Log(context.TODO(), logutil.LevelTrace, "threshold", "in", in, "out", out, "threshold", threshold)

	if rowwise(in, out) {
		for y := 0; y < in.Height(); y++ {
			thresholdRow(out.Row(y), in.Row(y), threshold)
		}
		return nil
	}

	for y := 0; y < in.Height(); y++ {
		for x := 0; x < in.Width(); x++ {
			if in.At(x, y) > threshold {
				out.Set(x, y, 1)
			} else {
				out.Set(x, y, 0)
			}
		}
	}
	return nil
}
