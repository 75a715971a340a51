package abi

import (
	"errors"
	"sync"

	"github.com/born-ml/imterface/internal/backend/cpu"
	"github.com/born-ml/imterface/internal/image"
)

// Status is the integer result code returned by the C entry points.
type Status int32

// Status codes. The values are part of the foreign ABI.
const (
	OK               Status = 0
	TypeMismatch     Status = 1
	ShapeMismatch    Status = 2
	Empty            Status = 3
	InvalidArgument  Status = 4
	AllocationFailed Status = 5
	NotOwned         Status = 6
	Internal         Status = 99
)

// ErrAllocation reports a failed foreign allocation.
var ErrAllocation = errors.New("allocation failed")

// String returns a short name for the status.
func (s Status) String() string {
	switch s {
	case OK:
		return "ok"
	case TypeMismatch:
		return "type mismatch"
	case ShapeMismatch:
		return "shape mismatch"
	case Empty:
		return "empty"
	case InvalidArgument:
		return "invalid descriptor"
	case AllocationFailed:
		return "allocation failed"
	case NotOwned:
		return "not owned"
	default:
		return "internal error"
	}
}

// StatusOf maps an error returned by the kernels or the descriptor
// constructors to its status code.
func StatusOf(err error) Status {
	switch {
	case err == nil:
		return OK
	case errors.Is(err, image.ErrTypeMismatch):
		return TypeMismatch
	case errors.Is(err, cpu.ErrShapeMismatch):
		return ShapeMismatch
	case errors.Is(err, cpu.ErrEmpty):
		return Empty
	case errors.Is(err, image.ErrNilDescriptor),
		errors.Is(err, image.ErrInvalidLayout),
		errors.Is(err, image.ErrOutOfBounds):
		return InvalidArgument
	case errors.Is(err, ErrAllocation):
		return AllocationFailed
	case errors.Is(err, image.ErrNotOwned), errors.Is(err, image.ErrReleased):
		return NotOwned
	default:
		return Internal
	}
}

var (
	lastErrMu sync.Mutex
	lastErr   string
)

// SetLastError records err as the message returned by LastError and returns
// its status. A nil error leaves the previous message in place.
func SetLastError(err error) Status {
	if err == nil {
		return OK
	}
	lastErrMu.Lock()
	lastErr = err.Error()
	lastErrMu.Unlock()
	return StatusOf(err)
}

// LastError returns the most recently recorded error message.
func LastError() string {
	lastErrMu.Lock()
	defer lastErrMu.Unlock()
	return lastErr
}

// ClearLastError forgets the recorded message.
func ClearLastError() {
	lastErrMu.Lock()
	lastErr = ""
	lastErrMu.Unlock()
}

// CopyLastError copies the last error message into buf as a NUL-terminated
// string, truncating when needed, and returns the full message length.
// With a nil buf or zero capacity nothing is written.
func CopyLastError(buf []byte) int {
	msg := LastError()
	if len(buf) > 0 {
		n := copy(buf[:len(buf)-1], msg)
		buf[n] = 0
	}
	return len(msg)
}
