package cpu

// Float32 row operations

func addRowFloat32(dst, a, b []float32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func maxRowFloat32(m float32, row []float32) float32 {
	for _, v := range row {
		if m < v {
			m = v
		}
	}
	return m
}
