package cpu

import (
	"fmt"
	"log/slog"

	"github.com/born-ml/imterface/internal/image"
)

// Release frees an owned descriptor, such as the result of AddAlloc, through
// the allocator it was created with. The tag is checked first, so a release
// through the wrong element type frees nothing.
func Release[T image.Element](d *image.Descriptor[T]) error {
	if err := validate("release", arg("in", d)); err != nil {
		return err
	}
	if err := d.Release(); err != nil {
		slog.Warn("could not release image", "op", "release", "error", err)
		return fmt.Errorf("release: %w", err)
	}
	return nil
}
