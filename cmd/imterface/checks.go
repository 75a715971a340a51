package main

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/born-ml/imterface/internal/backend/cpu"
	"github.com/born-ml/imterface/internal/image"
)

type check struct {
	Name string
	Run  func() error
}

type checkResult struct {
	Name string
	Err  error
}

// runChecks runs every check as one batch job and collects each outcome.
func runChecks(ctx context.Context, backend *cpu.Backend, checks []check) ([]checkResult, error) {
	results := make([]checkResult, len(checks))
	jobs := make([]cpu.Job, len(checks))
	for i, c := range checks {
		results[i].Name = c.Name
		jobs[i] = func() error {
			results[i].Err = c.Run()
			return nil
		}
	}
	if err := backend.Batch(ctx, jobs...); err != nil {
		return nil, err
	}
	return results, nil
}

func checks() []check {
	return []check{
		{"add", checkAdd},
		{"add empty", checkAddEmpty},
		{"add strided", checkAddStrided},
		{"add alloc", checkAddAlloc},
		{"threshold", checkThreshold},
		{"max", checkMax},
		{"type mismatch", checkTypeMismatch},
	}
}

func contiguous[T image.Element](data []T, w, h int) *image.Descriptor[T] {
	d, err := image.New(data, image.Contiguous(1, w, h))
	if err != nil {
		panic(err)
	}
	return d
}

func values[T image.Element](d *image.Descriptor[T]) []T {
	out := make([]T, 0, d.Width()*d.Height())
	for y := 0; y < d.Height(); y++ {
		for x := 0; x < d.Width(); x++ {
			out = append(out, d.At(x, y))
		}
	}
	return out
}

func expect[T comparable](what string, got, want []T) error {
	if !slices.Equal(got, want) {
		return fmt.Errorf("%s = %v, want %v", what, got, want)
	}
	return nil
}

func checkAdd() error {
	a := contiguous([]float32{1, 2, 3, 4}, 2, 2)
	b := contiguous([]float32{10, 20, 30, 40}, 2, 2)
	out := contiguous(make([]float32, 4), 2, 2)
	if err := cpu.Add(a, b, out); err != nil {
		return err
	}
	return expect("sum", values(out), []float32{11, 22, 33, 44})
}

func checkAddEmpty() error {
	a := contiguous[float32](nil, 0, 3)
	if err := cpu.Add(a, a, a); err != nil {
		return err
	}
	return nil
}

func checkAddStrided() error {
	buf := []float32{1, 0, 2, 0, 3, 0, 4, 0, 5, 0, 6, 0}
	strided, err := image.New(buf, image.Layout{Channels: 1, Width: 3, Height: 2, XStride: 2, YStride: 6})
	if err != nil {
		return err
	}
	dense := contiguous([]float32{1, 2, 3, 4, 5, 6}, 3, 2)

	viaStrided := contiguous(make([]float32, 6), 3, 2)
	viaDense := contiguous(make([]float32, 6), 3, 2)
	if err := cpu.Add(strided, dense, viaStrided); err != nil {
		return err
	}
	if err := cpu.Add(dense, dense, viaDense); err != nil {
		return err
	}
	return expect("strided sum", values(viaStrided), values(viaDense))
}

func checkAddAlloc() error {
	a := contiguous([]float32{1, 2, 3, 4, 5, 6}, 3, 2)
	out, err := cpu.AddAlloc(a, a, image.HeapAllocator[float32]{})
	if err != nil {
		return err
	}
	if out.Width() != 3 || out.Height() != 2 || out.XStride() != 1 || out.YStride() != 3 {
		return fmt.Errorf("output layout %s", out.Layout())
	}
	if err := expect("sum", values(out), []float32{2, 4, 6, 8, 10, 12}); err != nil {
		return err
	}
	if err := cpu.Release(out); err != nil {
		return err
	}
	if err := cpu.Release(out); !errors.Is(err, image.ErrReleased) {
		return fmt.Errorf("second release = %v, want %v", err, image.ErrReleased)
	}
	return nil
}

func checkThreshold() error {
	in := contiguous([]uint8{0, 127, 128, 129, 255}, 5, 1)
	out := contiguous(make([]uint8, 5), 5, 1)
	if err := cpu.Threshold(in, out, 128); err != nil {
		return err
	}
	return expect("mask", values(out), []uint8{0, 0, 0, 1, 1})
}

func checkMax() error {
	in := contiguous([]float32{3, -7, 12.5, 0, 12, -1}, 3, 2)
	m, err := cpu.Max(in)
	if err != nil {
		return err
	}
	if m != 12.5 {
		return fmt.Errorf("max = %v, want 12.5", m)
	}
	if _, err := cpu.Max(contiguous[float32](nil, 0, 0)); !errors.Is(err, cpu.ErrEmpty) {
		return fmt.Errorf("max of empty image = %v, want %v", err, cpu.ErrEmpty)
	}
	return nil
}

func checkTypeMismatch() error {
	a, err := image.View([]float32{1, 2}, 0, image.Contiguous(1, 2, 1), image.Uint8)
	if err != nil {
		return err
	}
	b := contiguous([]float32{1, 2}, 2, 1)
	out := contiguous([]float32{-1, -1}, 2, 1)

	if err := cpu.Add(a, b, out); !errors.Is(err, image.ErrTypeMismatch) {
		return fmt.Errorf("add with wrong tag = %v, want %v", err, image.ErrTypeMismatch)
	}
	return expect("untouched output", values(out), []float32{-1, -1})
}
