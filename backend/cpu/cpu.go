// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package cpu

import (
	internalcpu "github.com/born-ml/imterface/internal/backend/cpu"
	"github.com/born-ml/imterface/internal/image"
)

// Backend runs batches of independent kernel invocations.
type Backend = internalcpu.Backend

// Job is one kernel invocation in a batch.
type Job = internalcpu.Job

// Errors returned by the kernels in addition to the image package errors.
var (
	ErrShapeMismatch = internalcpu.ErrShapeMismatch
	ErrEmpty         = internalcpu.ErrEmpty
)

// New creates a CPU backend configured from the environment.
func New() *Backend {
	return internalcpu.New()
}

// Add computes out = a + b element-wise.
func Add[T image.Element](a, b, out *image.Descriptor[T]) error {
	return internalcpu.Add(a, b, out)
}

// AddAlloc computes a + b into a new contiguous descriptor owned by the
// caller.
func AddAlloc[T image.Element](a, b *image.Descriptor[T], alloc image.Allocator[T]) (*image.Descriptor[T], error) {
	return internalcpu.AddAlloc(a, b, alloc)
}

// Threshold writes 1 where in > threshold and 0 elsewhere.
func Threshold[T image.Element](in, out *image.Descriptor[T], threshold T) error {
	return internalcpu.Threshold(in, out, threshold)
}

// Max returns the largest element of a non-empty image.
func Max[T image.Element](in *image.Descriptor[T]) (T, error) {
	return internalcpu.Max(in)
}

// Release frees an owned descriptor.
func Release[T image.Element](d *image.Descriptor[T]) error {
	return internalcpu.Release(d)
}
