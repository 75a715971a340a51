package image

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// countingAllocator records allocations and frees.
type countingAllocator[T Element] struct {
	allocs int
	frees  int
}

func (a *countingAllocator[T]) Alloc(n int) ([]T, error) {
	a.allocs++
	return make([]T, n), nil
}

func (a *countingAllocator[T]) Free([]T) {
	a.frees++
}

func TestNewCanonicalTag(t *testing.T) {
	d, err := New([]uint8{1, 2, 3, 4}, Contiguous(1, 2, 2))
	require.NoError(t, err)

	assert.Equal(t, Uint8, d.TypeID())
	assert.True(t, d.WellFormed())
	assert.NoError(t, d.Check("in"))
	assert.False(t, d.Owned())
	assert.Equal(t, uint8(4), d.At(1, 1))
}

func TestViewForeignTag(t *testing.T) {
	d, err := View([]float32{1, 2}, 0, Contiguous(1, 2, 1), Uint8)
	require.NoError(t, err, "tags are checked by kernels, not at construction")

	assert.False(t, d.WellFormed())

	err = d.Check("in1")
	require.ErrorIs(t, err, ErrTypeMismatch)

	var mismatch *TypeMismatchError
	require.True(t, errors.As(err, &mismatch))
	assert.Equal(t, "in1", mismatch.Operand)
	assert.Equal(t, Float32, mismatch.Want)
	assert.Equal(t, Uint8, mismatch.Got)
	assert.Contains(t, err.Error(), "in1")
}

func TestViewBounds(t *testing.T) {
	data := make([]float32, 11)

	// 3x2 view with xStride=2, yStride=6 needs offsets up to 10.
	_, err := View(data, 0, Layout{Channels: 1, Width: 3, Height: 2, XStride: 2, YStride: 6}, Float32)
	require.NoError(t, err)

	_, err = View(data[:10], 0, Layout{Channels: 1, Width: 3, Height: 2, XStride: 2, YStride: 6}, Float32)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	// Negative strides need a non-zero origin.
	flipped := Layout{Channels: 1, Width: 3, Height: 2, XStride: 1, YStride: -3}
	_, err = View(make([]float32, 6), 0, flipped, Float32)
	assert.ErrorIs(t, err, ErrOutOfBounds)

	d, err := View([]float32{0, 1, 2, 3, 4, 5}, 3, flipped, Float32)
	require.NoError(t, err)
	assert.Equal(t, float32(3), d.At(0, 0))
	assert.Equal(t, float32(2), d.At(2, 1))

	_, err = View([]float32{1}, 0, Layout{Width: -1}, Float32)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}

func TestViewEmpty(t *testing.T) {
	d, err := New[float32](nil, Contiguous(1, 0, 3))
	require.NoError(t, err)
	assert.True(t, d.Empty())
	assert.Nil(t, d.Row(0))
}

func TestDescriptorAtSet(t *testing.T) {
	// Column-major 3x2: element (x, y) lives at x*2 + y.
	data := make([]int32, 6)
	d, err := New(data, Layout{Channels: 1, Width: 3, Height: 2, XStride: 2, YStride: 1})
	require.NoError(t, err)

	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			d.Set(x, y, int32(10*y+x))
		}
	}

	assert.Equal(t, []int32{0, 10, 1, 11, 2, 12}, data)
	assert.Equal(t, int32(12), d.At(2, 1))
	assert.Nil(t, d.Row(0), "Row needs adjacent columns")
}

func TestDescriptorRow(t *testing.T) {
	// Rows of 2 elements padded to 4.
	data := []float64{1, 2, -1, -1, 3, 4, -1, -1}
	d, err := New(data, Layout{Channels: 1, Width: 2, Height: 2, XStride: 1, YStride: 4})
	require.NoError(t, err)

	assert.Equal(t, []float64{1, 2}, d.Row(0))
	assert.Equal(t, []float64{3, 4}, d.Row(1))
}

func TestAllocRelease(t *testing.T) {
	alloc := &countingAllocator[float32]{}

	d, err := Alloc[float32](alloc, 3, 4, 2)
	require.NoError(t, err)

	assert.True(t, d.Owned())
	assert.Equal(t, Float32, d.TypeID())
	assert.Equal(t, 3, d.Channels())
	assert.Equal(t, 1, d.XStride())
	assert.Equal(t, 4, d.YStride())
	assert.Len(t, d.Data(), 8)
	assert.Equal(t, 1, alloc.allocs)

	require.NoError(t, d.Release())
	assert.True(t, d.Released())
	assert.Nil(t, d.Data())
	assert.Equal(t, 1, alloc.frees)

	assert.ErrorIs(t, d.Release(), ErrReleased)
	assert.Equal(t, 1, alloc.frees, "second release must not free again")
}

func TestReleaseBorrowed(t *testing.T) {
	d, err := New([]float32{1}, Contiguous(1, 1, 1))
	require.NoError(t, err)

	assert.ErrorIs(t, d.Release(), ErrNotOwned)
	assert.Equal(t, float32(1), d.At(0, 0), "borrowed data stays usable")
}

func TestAdopt(t *testing.T) {
	alloc := &countingAllocator[uint8]{}
	data := []uint8{1, 2, 3}

	d, err := Adopt(data, Contiguous(1, 3, 1), Uint8, alloc)
	require.NoError(t, err)
	assert.True(t, d.Owned())
	assert.Equal(t, 0, alloc.allocs)

	require.NoError(t, d.Release())
	assert.Equal(t, 1, alloc.frees)
}

func TestHeapAllocator(t *testing.T) {
	var alloc HeapAllocator[float64]

	data, err := alloc.Alloc(5)
	require.NoError(t, err)
	assert.Len(t, data, 5)

	_, err = alloc.Alloc(-1)
	assert.ErrorIs(t, err, ErrInvalidLayout)
}
