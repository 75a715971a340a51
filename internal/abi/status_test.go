package abi

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/born-ml/imterface/internal/backend/cpu"
	"github.com/born-ml/imterface/internal/image"
)

func TestStatusOf(t *testing.T) {
	tests := []struct {
		err  error
		want Status
	}{
		{nil, OK},
		{fmt.Errorf("add: %w", &image.TypeMismatchError{Operand: "in1", Want: image.Float32, Got: image.Uint8}), TypeMismatch},
		{fmt.Errorf("add: %w", cpu.ErrShapeMismatch), ShapeMismatch},
		{cpu.ErrEmpty, Empty},
		{image.ErrNilDescriptor, InvalidArgument},
		{image.ErrOutOfBounds, InvalidArgument},
		{fmt.Errorf("alloc: %w", ErrAllocation), AllocationFailed},
		{fmt.Errorf("release: %w", image.ErrReleased), NotOwned},
		{image.ErrNotOwned, NotOwned},
		{errors.New("boom"), Internal},
	}

	for _, tt := range tests {
		t.Run(tt.want.String(), func(t *testing.T) {
			assert.Equal(t, tt.want, StatusOf(tt.err))
		})
	}
}

func TestLastError(t *testing.T) {
	ClearLastError()
	assert.Empty(t, LastError())

	assert.Equal(t, OK, SetLastError(nil))
	assert.Empty(t, LastError())

	st := SetLastError(fmt.Errorf("max: %w", cpu.ErrEmpty))
	assert.Equal(t, Empty, st)
	assert.Equal(t, "max: empty image", LastError())

	buf := make([]byte, 5)
	n := CopyLastError(buf)
	assert.Equal(t, len("max: empty image"), n)
	assert.Equal(t, []byte("max:\x00"), buf)

	assert.Equal(t, n, CopyLastError(nil))

	ClearLastError()
	assert.Empty(t, LastError())
}
