package main

/*
#include "imterface.h"
*/
import "C"

import (
	"unsafe"

	"github.com/born-ml/imterface/internal/abi"
)

// Go-typed entry points over the exports. abi.RawDescriptor has the layout of
// every imterface_* record, so records convert by pointer.

func f32(r *abi.RawDescriptor) *C.imterface_f32 { return (*C.imterface_f32)(unsafe.Pointer(r)) }
func u8(r *abi.RawDescriptor) *C.imterface_u8   { return (*C.imterface_u8)(unsafe.Pointer(r)) }
func f64(r *abi.RawDescriptor) *C.imterface_f64 { return (*C.imterface_f64)(unsafe.Pointer(r)) }
func i32(r *abi.RawDescriptor) *C.imterface_i32 { return (*C.imterface_i32)(unsafe.Pointer(r)) }

func addF(in1, in2, out *abi.RawDescriptor) abi.Status {
	return abi.Status(add_f(f32(in1), f32(in2), f32(out)))
}

// addFAlloc returns nil on failure. The result must be released with cleanMemoryF.
func addFAlloc(in1, in2 *abi.RawDescriptor) *abi.RawDescriptor {
	return raw(unsafe.Pointer(add_f_alloc(f32(in1), f32(in2))))
}

func thresholdU8(in, out *abi.RawDescriptor, threshold uint8) abi.Status {
	return abi.Status(threshold_u8(u8(in), u8(out), C.uint8_t(threshold)))
}

func imMaxF(in *abi.RawDescriptor) float32 {
	return float32(im_max_f(f32(in)))
}

func imMaxFStatus(in *abi.RawDescriptor) (float32, abi.Status) {
	var out C.float
	st := abi.Status(im_max_f_status(f32(in), &out))
	return float32(out), st
}

func cleanMemoryF(r *abi.RawDescriptor) abi.Status   { return abi.Status(clean_memory_f(f32(r))) }
func cleanMemoryU8(r *abi.RawDescriptor) abi.Status  { return abi.Status(clean_memory_u8(u8(r))) }
func cleanMemoryF64(r *abi.RawDescriptor) abi.Status { return abi.Status(clean_memory_f64(f64(r))) }
func cleanMemoryI(r *abi.RawDescriptor) abi.Status   { return abi.Status(clean_memory_i(i32(r))) }

// lastError reads imterface_last_error through a buffer of the given capacity.
func lastError(capacity int) (string, int) {
	if capacity == 0 {
		return "", int(imterface_last_error(nil, 0))
	}
	buf := make([]byte, capacity)
	n := int(imterface_last_error((*C.char)(unsafe.Pointer(&buf[0])), C.size_t(capacity)))
	end := 0
	for end < len(buf) && buf[end] != 0 {
		end++
	}
	return string(buf[:end]), n
}

func typeID(name string) int {
	cs := C.CString(name)
	defer C.free(unsafe.Pointer(cs))
	return int(imterface_type_id(cs))
}
