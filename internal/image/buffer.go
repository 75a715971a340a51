package image

import (
	"fmt"
	"sync/atomic"
)

// Allocator hands out element buffers for descriptors that own their storage.
//
// The C ABI supplies an allocator backed by malloc/free so that buffers handed
// to foreign callers live outside the Go heap.
type Allocator[T Element] interface {
	Alloc(n int) ([]T, error)
	Free(data []T)
}

// HeapAllocator allocates from the Go heap. Free drops the reference and leaves
// reclamation to the garbage collector.
type HeapAllocator[T Element] struct{}

// Alloc returns a zeroed slice of n elements.
func (HeapAllocator[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", ErrInvalidLayout, n)
	}
	return make([]T, n), nil
}

// Free is a no-op for Go heap memory.
func (HeapAllocator[T]) Free([]T) {}

// ownedBuffer is the storage of a descriptor that owns its data.
// It can be released exactly once.
type ownedBuffer[T Element] struct {
	data     []T
	alloc    Allocator[T]
	released atomic.Bool
}

func newOwnedBuffer[T Element](data []T, alloc Allocator[T]) *ownedBuffer[T] {
	return &ownedBuffer[T]{data: data, alloc: alloc}
}

// release frees the storage through its allocator. A second call returns ErrReleased.
func (b *ownedBuffer[T]) release() error {
	if !b.released.CompareAndSwap(false, true) {
		return ErrReleased
	}
	b.alloc.Free(b.data)
	b.data = nil
	return nil
}
