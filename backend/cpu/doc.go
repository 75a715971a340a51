// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the image kernels.
//
// Kernels check the type tag of every descriptor before touching data, then
// check that operand shapes agree. Failures are logged at warn level and
// returned; caller-supplied outputs are left untouched.
//
// Example:
//
//	import (
//	    "github.com/born-ml/imterface/backend/cpu"
//	    "github.com/born-ml/imterface/image"
//	)
//
//	func main() {
//	    in, _ := image.New([]uint8{10, 128, 200}, image.Contiguous(1, 3, 1))
//	    out, _ := image.New(make([]uint8, 3), image.Contiguous(1, 3, 1))
//	    _ = cpu.Threshold(in, out, 128) // out = [0 0 1]
//	}
package cpu
