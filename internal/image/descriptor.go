package image

import "fmt"

// Descriptor is a view of a rectangular, strided buffer of element type T,
// tagged with a runtime type identifier.
//
// The element at (x, y) lives at data[origin + x*XStride + y*YStride]. The
// layout is checked against the buffer once, at construction, so accessors
// never leave the buffer. The tag is NOT checked at construction: a descriptor
// coming from foreign code may carry a stale or wrong tag, and kernels call
// Check before touching data.
//
// A descriptor either borrows its buffer (New, View) or owns it (Alloc, Adopt).
// Only owned descriptors may be released.
type Descriptor[T Element] struct {
	data   []T
	origin int
	layout Layout
	typeID DataType
	owned  *ownedBuffer[T]
}

// View wraps data as a borrowed descriptor. origin is the index of element
// (0, 0) inside data; it is non-zero for views with negative strides.
func View[T Element](data []T, origin int, layout Layout, typeID DataType) (*Descriptor[T], error) {
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	if err := checkBounds(len(data), origin, layout); err != nil {
		return nil, err
	}
	return &Descriptor[T]{
		data:   data,
		origin: origin,
		layout: layout,
		typeID: typeID,
	}, nil
}

// New wraps data as a borrowed descriptor with the canonical tag for T.
//
// Example:
//
//	d, err := image.New([]float32{1, 2, 3, 4}, image.Contiguous(1, 2, 2))
func New[T Element](data []T, layout Layout) (*Descriptor[T], error) {
	return View(data, 0, layout, TagOf[T]())
}

// Alloc creates an owned, contiguous descriptor of width x height elements.
// The caller must Release it.
func Alloc[T Element](alloc Allocator[T], channels, width, height int) (*Descriptor[T], error) {
	layout := Contiguous(channels, width, height)
	if err := layout.Validate(); err != nil {
		return nil, err
	}
	data, err := alloc.Alloc(layout.NumElements())
	if err != nil {
		return nil, fmt.Errorf("alloc %s: %w", layout, err)
	}
	return Adopt(data, layout, TagOf[T](), alloc)
}

// Adopt wraps an existing buffer and takes ownership of it: Release frees it
// through alloc. Element (0, 0) must be data[0].
func Adopt[T Element](data []T, layout Layout, typeID DataType, alloc Allocator[T]) (*Descriptor[T], error) {
	d, err := View(data, 0, layout, typeID)
	if err != nil {
		return nil, err
	}
	d.owned = newOwnedBuffer(data, alloc)
	return d, nil
}

func checkBounds(n, origin int, l Layout) error {
	lo, hi := l.Span()
	if hi < lo {
		return nil
	}
	if origin+lo < 0 || origin+hi >= n {
		return fmt.Errorf("%w: %s addresses [%d, %d] from origin %d, buffer holds %d elements",
			ErrOutOfBounds, l, origin+lo, origin+hi, origin, n)
	}
	return nil
}

// Layout returns the descriptor's layout.
func (d *Descriptor[T]) Layout() Layout { return d.layout }

// Channels returns the informational channel count.
func (d *Descriptor[T]) Channels() int { return d.layout.Channels }

// Width returns the number of columns.
func (d *Descriptor[T]) Width() int { return d.layout.Width }

// Height returns the number of rows.
func (d *Descriptor[T]) Height() int { return d.layout.Height }

// XStride returns the element stride between columns.
func (d *Descriptor[T]) XStride() int { return d.layout.XStride }

// YStride returns the element stride between rows.
func (d *Descriptor[T]) YStride() int { return d.layout.YStride }

// TypeID returns the runtime tag.
func (d *Descriptor[T]) TypeID() DataType { return d.typeID }

// Origin returns the index of element (0, 0) in Data.
func (d *Descriptor[T]) Origin() int { return d.origin }

// Data returns the underlying buffer window.
// WARNING: Direct access to the memory the layout addresses.
func (d *Descriptor[T]) Data() []T { return d.data }

// Empty reports whether the descriptor addresses no elements.
func (d *Descriptor[T]) Empty() bool { return d.layout.Empty() }

// Owned reports whether the descriptor owns its buffer.
func (d *Descriptor[T]) Owned() bool { return d.owned != nil }

// Released reports whether an owned descriptor has been released.
func (d *Descriptor[T]) Released() bool {
	return d.owned != nil && d.owned.released.Load()
}

// WellFormed reports whether the tag matches the element type T.
func (d *Descriptor[T]) WellFormed() bool {
	return d.typeID == TagOf[T]()
}

// Check returns a *TypeMismatchError naming operand when the descriptor is not
// well-formed.
func (d *Descriptor[T]) Check(operand string) error {
	if d.WellFormed() {
		return nil
	}
	return &TypeMismatchError{Operand: operand, Want: TagOf[T](), Got: d.typeID}
}

// Index returns the buffer index of element (x, y).
func (d *Descriptor[T]) Index(x, y int) int {
	return d.origin + d.layout.Offset(x, y)
}

// At returns element (x, y). Coordinates are not range-checked against
// width and height.
func (d *Descriptor[T]) At(x, y int) T {
	return d.data[d.Index(x, y)]
}

// Set stores v at (x, y).
func (d *Descriptor[T]) Set(x, y int, v T) {
	d.data[d.Index(x, y)] = v
}

// Row returns row y as a slice of width elements when columns are adjacent
// (XStride == 1), and nil otherwise.
func (d *Descriptor[T]) Row(y int) []T {
	if d.layout.XStride != 1 || d.layout.Width == 0 {
		return nil
	}
	start := d.Index(0, y)
	return d.data[start : start+d.layout.Width]
}

// Release frees an owned buffer through its allocator. It returns ErrNotOwned
// for borrowed descriptors and ErrReleased on a second call.
func (d *Descriptor[T]) Release() error {
	if d.owned == nil {
		return ErrNotOwned
	}
	if err := d.owned.release(); err != nil {
		return err
	}
	d.data = nil
	return nil
}

// String returns a compact description of the descriptor.
func (d *Descriptor[T]) String() string {
	return fmt.Sprintf("Descriptor[%s](%s, tag=%d)", TagOf[T](), d.layout, d.typeID)
}
