// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package image

import (
	"github.com/born-ml/imterface/internal/image"
)

// Element is a constraint for image element types: float32, uint8, float64
// and int32 (the C int).
type Element = image.Element

// DataType is the runtime tag of a descriptor.
type DataType = image.DataType

// Data type constants.
const (
	Invalid DataType = image.Invalid
	Float32 DataType = image.Float32
	Uint8   DataType = image.Uint8
	Float64 DataType = image.Float64
	Int     DataType = image.Int
)

// Layout describes dimensions and element strides.
type Layout = image.Layout

// Descriptor is a tagged, strided view of a 2D buffer.
type Descriptor[T Element] = image.Descriptor[T]

// Allocator hands out buffers for owned descriptors.
type Allocator[T Element] = image.Allocator[T]

// HeapAllocator allocates from the Go heap.
type HeapAllocator[T Element] = image.HeapAllocator[T]

// TypeMismatchError describes a failed tag check.
type TypeMismatchError = image.TypeMismatchError

// Errors returned by descriptor constructors and kernels.
var (
	ErrTypeMismatch  = image.ErrTypeMismatch
	ErrInvalidLayout = image.ErrInvalidLayout
	ErrOutOfBounds   = image.ErrOutOfBounds
	ErrNilDescriptor = image.ErrNilDescriptor
	ErrNotOwned      = image.ErrNotOwned
	ErrReleased      = image.ErrReleased
)

// Contiguous returns a row-major layout (XStride 1, YStride width).
func Contiguous(channels, width, height int) Layout {
	return image.Contiguous(channels, width, height)
}

// New wraps data as a borrowed descriptor with the canonical tag for T.
func New[T Element](data []T, layout Layout) (*Descriptor[T], error) {
	return image.New(data, layout)
}

// View wraps data as a borrowed descriptor with an explicit origin and tag.
func View[T Element](data []T, origin int, layout Layout, typeID DataType) (*Descriptor[T], error) {
	return image.View(data, origin, layout, typeID)
}

// Alloc creates an owned contiguous descriptor. The caller must Release it.
func Alloc[T Element](alloc Allocator[T], channels, width, height int) (*Descriptor[T], error) {
	return image.Alloc(alloc, channels, width, height)
}

// TagOf returns the canonical tag for T.
func TagOf[T Element]() DataType {
	return image.TagOf[T]()
}

// ParseDataType maps a type name such as "float32" or "uint8" to its tag.
func ParseDataType(name string) DataType {
	return image.ParseDataType(name)
}
