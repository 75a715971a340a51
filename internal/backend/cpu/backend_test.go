package cpu

import (
	"context"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/imterface/internal/image"
	"github.com/born-ml/imterface/internal/parallel"
)

func TestNew(t *testing.T) {
	t.Setenv("IMTERFACE_NUM_WORKERS", "3")
	t.Setenv("IMTERFACE_SEQUENTIAL", "")

	b := New()
	assert.Equal(t, "CPU", b.Name())
	assert.Equal(t, 3, b.Config().NumWorkers)

	t.Setenv("IMTERFACE_SEQUENTIAL", "true")
	assert.False(t, New().Config().Enabled)
}

func TestBatch_DisjointBuffers(t *testing.T) {
	backend := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 4})

	const n = 32
	outs := make([]*image.Descriptor[float32], n)
	jobs := make([]Job, n)
	for i := range jobs {
		a := fromRows(t, [][]float32{{float32(i), 1}, {2, 3}})
		b := fromRows(t, [][]float32{{1, 1}, {1, 1}})
		outs[i] = zeros[float32](t, 2, 2)
		out := outs[i]
		jobs[i] = func() error { return Add(a, b, out) }
	}

	require.NoError(t, backend.Batch(context.Background(), jobs...))

	for i, out := range outs {
		assert.Equal(t, [][]float32{{float32(i) + 1, 2}, {3, 4}}, rowsOf(out), "job %d", i)
	}
}

func TestBatch_MixedKernels(t *testing.T) {
	backend := NewWithConfig(parallel.Config{Enabled: true, NumWorkers: 2})

	in := fromRows(t, [][]uint8{{10, 200}})
	thresh := zeros[uint8](t, 2, 1)
	values := fromRows(t, [][]float64{{1, 9, 4}})
	var peak float64

	err := backend.Batch(context.Background(),
		func() error { return Threshold(in, thresh, 100) },
		func() error {
			v, err := Max(values)
			peak = v
			return err
		},
	)
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 1}, thresh.Data())
	assert.Equal(t, 9.0, peak)
}

func TestBatch_FirstError(t *testing.T) {
	backend := NewWithConfig(parallel.Config{Enabled: false})

	good := fromRows(t, [][]float32{{1}})
	bad := mistagged(t, fromRows(t, [][]float32{{1}}), image.Uint8)
	untouched := fromRows(t, [][]float32{{-1}})

	err := backend.Batch(context.Background(),
		func() error { return Add(good, good, good) },
		func() error { return Add(bad, good, good) },
		func() error { return Add(good, good, untouched) },
	)
	require.ErrorIs(t, err, image.ErrTypeMismatch)
	assert.Equal(t, float32(2), good.At(0, 0))
	assert.Equal(t, float32(-1), untouched.At(0, 0), "jobs after a failure are skipped")
}

func TestBatch_Empty(t *testing.T) {
	assert.NoError(t, New().Batch(context.Background()))
}

func BenchmarkAdd(b *testing.B) {
	for _, size := range []int{64, 512} {
		data := make([]float32, size*size)
		a, _ := image.New(data, image.Contiguous(1, size, size))
		out, _ := image.New(make([]float32, size*size), image.Contiguous(1, size, size))
		transposed, _ := image.New(data, image.Layout{Channels: 1, Width: size, Height: size, XStride: size, YStride: 1})

		b.Run(fmt.Sprintf("rows/%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Add(a, a, out)
			}
		})
		b.Run(fmt.Sprintf("strided/%d", size), func(b *testing.B) {
			for i := 0; i < b.N; i++ {
				_ = Add(transposed, a, out)
			}
		})
	}
}
