// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package image provides the public API for type-tagged, strided 2D image
// descriptors.
//
// A descriptor pairs a buffer of one element type with a runtime tag and a
// layout:
//   - Descriptor[T]: view of width x height elements at arbitrary strides
//   - Layout: dimensions and element strides
//   - DataType: runtime tag shared with foreign callers
//   - Allocator: storage for descriptors that own their buffer
//
// Example:
//
//	a, _ := image.New([]float32{1, 2, 3, 4}, image.Contiguous(1, 2, 2))
//	b, _ := image.New([]float32{10, 20, 30, 40}, image.Contiguous(1, 2, 2))
//	out, _ := image.New(make([]float32, 4), image.Contiguous(1, 2, 2))
//	err := cpu.Add(a, b, out)
package image
