package cpu

import (
	"github.com/born-ml/imterface/internal/image"
)

// rowwise reports whether every descriptor has adjacent columns, so rows can
// be processed as slices.
func rowwise[T image.Element](ds ...*image.Descriptor[T]) bool {
	for _, d := range ds {
		if d.XStride() != 1 {
			return false
		}
	}
	return true
}

// addRow computes dst[i] = a[i] + b[i]. dst may alias a or b exactly.
func addRow[T image.Element](dst, a, b []T) {
	switch d := any(dst).(type) {
	case []float32:
		addRowFloat32(d, any(a).([]float32), any(b).([]float32))
		return
	case []float64:
		addRowFloat64(d, any(a).([]float64), any(b).([]float64))
		return
	case []int32:
		addRowInt32(d, any(a).([]int32), any(b).([]int32))
		return
	case []uint8:
		addRowUint8(d, any(a).([]uint8), any(b).([]uint8))
		return
	}
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

// thresholdRow computes dst[i] = 1 if src[i] > t, else 0.
func thresholdRow[T image.Element](dst, src []T, t T) {
	if d, ok := any(dst).([]uint8); ok {
		thresholdRowUint8(d, any(src).([]uint8), any(t).(uint8))
		return
	}
	for i, v := range src {
		if v > t {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// maxRow folds row into the running maximum m. A value replaces m only when
// m < value, so NaNs never replace m and a NaN seed is kept.
func maxRow[T image.Element](m T, row []T) T {
	if r, ok := any(row).([]float32); ok {
		return T(maxRowFloat32(float32(m), r))
	}
	for _, v := range row {
		if m < v {
			m = v
		}
	}
	return m
}
