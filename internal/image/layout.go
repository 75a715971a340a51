package image

import "fmt"

// Layout describes the logical dimensions and element strides of a 2D buffer.
//
// Strides count elements, not bytes. They may be zero, negative or larger than
// the row length, which covers row-major, column-major and sliced views.
type Layout struct {
	Channels int
	Width    int
	Height   int
	XStride  int
	YStride  int
}

// Contiguous returns a row-major layout with one element per pixel:
// XStride is 1 and YStride is width. Channels is carried as given.
func Contiguous(channels, width, height int) Layout {
	return Layout{
		Channels: channels,
		Width:    width,
		Height:   height,
		XStride:  1,
		YStride:  width,
	}
}

// Validate checks that all dimensions are non-negative.
func (l Layout) Validate() error {
	if l.Channels < 0 || l.Width < 0 || l.Height < 0 {
		return fmt.Errorf("%w: channels=%d width=%d height=%d (must be >= 0)",
			ErrInvalidLayout, l.Channels, l.Width, l.Height)
	}
	return nil
}

// NumElements returns the number of addressed elements (width * height).
func (l Layout) NumElements() int {
	return l.Width * l.Height
}

// Empty reports whether the layout addresses no elements.
func (l Layout) Empty() bool {
	return l.Width == 0 || l.Height == 0
}

// Offset returns the element offset of (x, y) relative to (0, 0).
func (l Layout) Offset(x, y int) int {
	return x*l.XStride + y*l.YStride
}

// Span returns the smallest and largest offsets addressed by the layout.
// For an empty layout it returns (0, -1).
func (l Layout) Span() (lo, hi int) {
	if l.Empty() {
		return 0, -1
	}
	dx := (l.Width - 1) * l.XStride
	dy := (l.Height - 1) * l.YStride
	lo = min(0, dx) + min(0, dy)
	hi = max(0, dx) + max(0, dy)
	return lo, hi
}

// SameSize reports whether both layouts have the same width and height.
func (l Layout) SameSize(other Layout) bool {
	return l.Width == other.Width && l.Height == other.Height
}

// String returns a compact description of the layout.
func (l Layout) String() string {
	return fmt.Sprintf("%dx%dx%d stride(%d,%d)", l.Width, l.Height, l.Channels, l.XStride, l.YStride)
}
