// Command cabi builds the imterface kernels as a C shared library:
//
//	go build -buildmode=c-shared -o libimterface.so ./cabi
//
// Every entry point takes pointers to descriptor records owned by the caller.
// Kernels that write a caller-supplied output return a status code. Each call
// clears the last error first, so imterface_last_error is non-empty only when
// the latest call failed.
package main

/*
#include "imterface.h"
*/
import "C"

import (
	"fmt"
	"log/slog"
	"math"
	"os"
	"unsafe"

	"github.com/born-ml/imterface/internal/abi"
	"github.com/born-ml/imterface/internal/backend/cpu"
	"github.com/born-ml/imterface/internal/envconfig"
	"github.com/born-ml/imterface/internal/image"
	"github.com/born-ml/imterface/internal/logutil"
)

func init() {
	slog.SetDefault(logutil.NewLogger(os.Stderr, envconfig.LogLevel()))
}

// cAllocator allocates element buffers with malloc so that they can be handed
// to, and freed by, foreign code.
type cAllocator[T image.Element] struct{}

func (cAllocator[T]) Alloc(n int) ([]T, error) {
	if n < 0 {
		return nil, fmt.Errorf("%w: negative element count %d", image.ErrInvalidLayout, n)
	}
	if n == 0 {
		return nil, nil
	}
	var zero T
	p := C.malloc(C.size_t(n) * C.size_t(unsafe.Sizeof(zero)))
	if p == nil {
		return nil, fmt.Errorf("%w: %d elements of %s", abi.ErrAllocation, n, image.TagOf[T]())
	}
	return unsafe.Slice((*T)(p), n), nil
}

func (cAllocator[T]) Free(data []T) {
	if len(data) == 0 {
		return
	}
	C.free(unsafe.Pointer(unsafe.SliceData(data)))
}

func raw(p unsafe.Pointer) *abi.RawDescriptor {
	return (*abi.RawDescriptor)(p)
}

// status records err for imterface_last_error and returns its code.
func status(err error) C.int {
	return C.int(abi.SetLastError(err))
}

//export add_f
func add_f(in1, in2, out *C.imterface_f32) C.int {
	abi.ClearLastError()
	a, err := abi.FromRaw[float32](raw(unsafe.Pointer(in1)))
	if err != nil {
		return status(fmt.Errorf("add: in1: %w", err))
	}
	b, err := abi.FromRaw[float32](raw(unsafe.Pointer(in2)))
	if err != nil {
		return status(fmt.Errorf("add: in2: %w", err))
	}
	o, err := abi.FromRaw[float32](raw(unsafe.Pointer(out)))
	if err != nil {
		return status(fmt.Errorf("add: out: %w", err))
	}
	return status(cpu.Add(a, b, o))
}

//export add_f_alloc
func add_f_alloc(in1, in2 *C.imterface_f32) *C.imterface_f32 {
	abi.ClearLastError()
	a, err := abi.FromRaw[float32](raw(unsafe.Pointer(in1)))
	if err != nil {
		status(fmt.Errorf("add: in1: %w", err))
		return nil
	}
	b, err := abi.FromRaw[float32](raw(unsafe.Pointer(in2)))
	if err != nil {
		status(fmt.Errorf("add: in2: %w", err))
		return nil
	}

	out, err := cpu.AddAlloc(a, b, cAllocator[float32]{})
	if err != nil {
		status(err)
		return nil
	}
	rec, err := newRecord(out)
	if err != nil {
		cpu.Release(out) //nolint:errcheck
		status(fmt.Errorf("add: %w", err))
		return nil
	}
	return (*C.imterface_f32)(unsafe.Pointer(rec))
}

// newRecord describes an owned descriptor in a malloc'd record, which
// clean_memory_* frees together with the data.
func newRecord[T image.Element](d *image.Descriptor[T]) (*abi.RawDescriptor, error) {
	p := C.malloc(C.size_t(unsafe.Sizeof(abi.RawDescriptor{})))
	if p == nil {
		return nil, fmt.Errorf("descriptor record: %w", abi.ErrAllocation)
	}
	rec := raw(p)
	abi.Fill(rec, d)
	return rec, nil
}

//export threshold_u8
func threshold_u8(in, out *C.imterface_u8, threshold C.uint8_t) C.int {
	abi.ClearLastError()
	src, err := abi.FromRaw[uint8](raw(unsafe.Pointer(in)))
	if err != nil {
		return status(fmt.Errorf("threshold: in: %w", err))
	}
	dst, err := abi.FromRaw[uint8](raw(unsafe.Pointer(out)))
	if err != nil {
		return status(fmt.Errorf("threshold: out: %w", err))
	}
	return status(cpu.Threshold(src, dst, uint8(threshold)))
}

// im_max_f returns the maximum of in, or NaN on failure. A NaN element can
// also yield NaN; im_max_f_status tells the two apart.
//
//export im_max_f
func im_max_f(in *C.imterface_f32) C.float {
	abi.ClearLastError()
	d, err := abi.FromRaw[float32](raw(unsafe.Pointer(in)))
	if err != nil {
		status(fmt.Errorf("max: in: %w", err))
		return C.float(math.NaN())
	}
	m, err := cpu.Max(d)
	if err != nil {
		status(err)
		return C.float(math.NaN())
	}
	return C.float(m)
}

// im_max_f_status stores the maximum of in through out and returns a status.
// out is written only on success.
//
//export im_max_f_status
func im_max_f_status(in *C.imterface_f32, out *C.float) C.int {
	abi.ClearLastError()
	if out == nil {
		return status(fmt.Errorf("max: out: %w", image.ErrNilDescriptor))
	}
	d, err := abi.FromRaw[float32](raw(unsafe.Pointer(in)))
	if err != nil {
		return status(fmt.Errorf("max: in: %w", err))
	}
	m, err := cpu.Max(d)
	if err != nil {
		return status(err)
	}
	*out = C.float(m)
	return C.int(abi.OK)
}

// release frees the data of a record returned by an allocating kernel, then
// the record itself.
func release[T image.Element](p unsafe.Pointer) C.int {
	d, err := abi.Adopt[T](raw(p), cAllocator[T]{})
	if err != nil {
		return status(fmt.Errorf("release: %w", err))
	}
	if err := cpu.Release(d); err != nil {
		return status(err)
	}
	C.free(p)
	return C.int(abi.OK)
}

//export clean_memory_f
func clean_memory_f(im *C.imterface_f32) C.int {
	abi.ClearLastError()
	return release[float32](unsafe.Pointer(im))
}

//export clean_memory_u8
func clean_memory_u8(im *C.imterface_u8) C.int {
	abi.ClearLastError()
	return release[uint8](unsafe.Pointer(im))
}

//export clean_memory_f64
func clean_memory_f64(im *C.imterface_f64) C.int {
	abi.ClearLastError()
	return release[float64](unsafe.Pointer(im))
}

//export clean_memory_i
func clean_memory_i(im *C.imterface_i32) C.int {
	abi.ClearLastError()
	return release[int32](unsafe.Pointer(im))
}

//export imterface_last_error
func imterface_last_error(buf *C.char, capacity C.size_t) C.size_t {
	var dst []byte
	if buf != nil && capacity > 0 {
		dst = unsafe.Slice((*byte)(unsafe.Pointer(buf)), int(capacity))
	}
	return C.size_t(abi.CopyLastError(dst))
}

//export imterface_clear_last_error
func imterface_clear_last_error() {
	abi.ClearLastError()
}

//export imterface_type_id
func imterface_type_id(name *C.char) C.int {
	abi.ClearLastError()
	if name == nil {
		return C.int(image.Invalid)
	}
	return C.int(image.ParseDataType(C.GoString(name)))
}

func main() {}
