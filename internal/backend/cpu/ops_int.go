package cpu

// Integer row operations

func addRowInt32(dst, a, b []int32) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func addRowUint8(dst, a, b []uint8) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func thresholdRowUint8(dst, src []uint8, t uint8) {
	src = src[:len(dst)]
	for i, v := range src {
		var bit uint8
		if v > t {
			bit = 1
		}
		dst[i] = bit
	}
}
