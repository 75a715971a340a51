// Package abi converts between the C image descriptor record and Go
// descriptors, and carries status codes and the last error across the
// foreign boundary.
package abi

import (
	"fmt"
	"unsafe"

	"github.com/born-ml/imterface/internal/image"
)

// RawDescriptor mirrors the C record
//
//	struct { T *data; int channels, width, height, xStride, yStride, typeId; }
//
// field for field. Its size is 32 bytes on 64-bit platforms.
type RawDescriptor struct {
	Data     unsafe.Pointer
	Channels int32
	Width    int32
	Height   int32
	XStride  int32
	YStride  int32
	TypeID   int32
}

// Layout returns the record's geometry.
func (r *RawDescriptor) Layout() image.Layout {
	return image.Layout{
		Channels: int(r.Channels),
		Width:    int(r.Width),
		Height:   int(r.Height),
		XStride:  int(r.XStride),
		YStride:  int(r.YStride),
	}
}

// window returns the slice of memory the record addresses, and the index of
// element (0, 0) inside it.
func window[T image.Element](r *RawDescriptor) ([]T, int, image.Layout, error) {
	if r == nil {
		return nil, 0, image.Layout{}, image.ErrNilDescriptor
	}
	layout := r.Layout()
	if err := layout.Validate(); err != nil {
		return nil, 0, layout, err
	}
	lo, hi := layout.Span()
	if hi < lo {
		return nil, 0, layout, nil
	}
	// A non-empty record without data is malformed.
	if r.Data == nil {
		return nil, 0, layout, fmt.Errorf("%w: null data for %s", image.ErrInvalidLayout, layout)
	}
	var zero T
	size := int(unsafe.Sizeof(zero))
	base := (*T)(unsafe.Add(r.Data, lo*size))
	return unsafe.Slice(base, hi-lo+1), -lo, layout, nil
}

// FromRaw views the foreign record as a borrowed descriptor. The tag is taken
// from the record as is; kernels check it before touching data.
func FromRaw[T image.Element](r *RawDescriptor) (*image.Descriptor[T], error) {
	data, origin, layout, err := window[T](r)
	if err != nil {
		return nil, err
	}
	return image.View(data, origin, layout, image.DataType(r.TypeID))
}

// Adopt views a record whose data was allocated by alloc and takes ownership
// of it. Element (0, 0) must be the first element of the allocation.
func Adopt[T image.Element](r *RawDescriptor, alloc image.Allocator[T]) (*image.Descriptor[T], error) {
	data, origin, layout, err := window[T](r)
	if err != nil {
		return nil, err
	}
	if origin != 0 {
		return nil, fmt.Errorf("%w: owned buffer must start at element (0, 0)", image.ErrInvalidLayout)
	}
	return image.Adopt(data, layout, image.DataType(r.TypeID), alloc)
}

// Fill writes d's geometry, tag and data pointer into r.
func Fill[T image.Element](r *RawDescriptor, d *image.Descriptor[T]) {
	l := d.Layout()
	r.Channels = int32(l.Channels)
	r.Width = int32(l.Width)
	r.Height = int32(l.Height)
	r.XStride = int32(l.XStride)
	r.YStride = int32(l.YStride)
	r.TypeID = int32(d.TypeID())
	r.Data = nil
	if data := d.Data(); !d.Empty() && len(data) > 0 {
		r.Data = unsafe.Pointer(&data[d.Origin()])
	}
}

// ToRaw returns a new record describing d. The record points into d's buffer;
// for Go heap buffers it must not outlive d or cross into C.
func ToRaw[T image.Element](d *image.Descriptor[T]) *RawDescriptor {
	r := &RawDescriptor{}
	Fill(r, d)
	return r
}
