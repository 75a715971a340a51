package cpu

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/born-ml/imterface/internal/image"
)

// fromRows builds a contiguous descriptor from row-major values.
func fromRows[T image.Element](t *testing.T, rows [][]T) *image.Descriptor[T] {
	t.Helper()
	h := len(rows)
	w := 0
	if h > 0 {
		w = len(rows[0])
	}
	data := make([]T, 0, w*h)
	for _, r := range rows {
		data = append(data, r...)
	}
	d, err := image.New(data, image.Contiguous(1, w, h))
	require.NoError(t, err)
	return d
}

// zeros builds a contiguous descriptor of zeros.
func zeros[T image.Element](t *testing.T, w, h int) *image.Descriptor[T] {
	t.Helper()
	d, err := image.New(make([]T, w*h), image.Contiguous(1, w, h))
	require.NoError(t, err)
	return d
}

// rowsOf reads a descriptor back as row-major values.
func rowsOf[T image.Element](d *image.Descriptor[T]) [][]T {
	rows := make([][]T, d.Height())
	for y := range rows {
		rows[y] = make([]T, d.Width())
		for x := range rows[y] {
			rows[y][x] = d.At(x, y)
		}
	}
	return rows
}

// mistagged returns a borrowed view of d's data carrying the wrong tag.
func mistagged[T image.Element](t *testing.T, d *image.Descriptor[T], tag image.DataType) *image.Descriptor[T] {
	t.Helper()
	v, err := image.View(d.Data(), d.Origin(), d.Layout(), tag)
	require.NoError(t, err)
	return v
}
