// Package cpu implements the kernel set over strided image descriptors.
//
// Every kernel checks the type tag of each descriptor it receives before it
// reads or writes any element, then checks that the operands agree in width
// and height. On failure it logs a warning, leaves every buffer untouched and
// returns the error. Kernels run to completion on the caller's goroutine.
package cpu

import (
	"context"

	"github.com/born-ml/imterface/internal/envconfig"
	"github.com/born-ml/imterface/internal/parallel"
)

// Backend runs batches of independent kernel invocations.
type Backend struct {
	cfg parallel.Config
}

// New creates a CPU backend configured from the environment
// (IMTERFACE_NUM_WORKERS, IMTERFACE_SEQUENTIAL).
func New() *Backend {
	cfg := parallel.DefaultConfig()
	if n := envconfig.NumWorkers(); n > 0 {
		cfg.NumWorkers = int(n)
	}
	if envconfig.Sequential() {
		cfg.Enabled = false
	}
	return NewWithConfig(cfg)
}

// NewWithConfig creates a CPU backend with an explicit parallel configuration.
func NewWithConfig(cfg parallel.Config) *Backend {
	return &Backend{cfg: cfg}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "CPU"
}

// Config returns the backend's parallel configuration.
func (b *Backend) Config() parallel.Config {
	return b.cfg
}

// Job is one kernel invocation, usually a closure over its descriptors.
type Job func() error

// Batch runs jobs concurrently and returns the first error. Jobs must work on
// disjoint buffers; overlapping outputs need external synchronization.
// Jobs that have not started when one fails are skipped.
func (b *Backend) Batch(ctx context.Context, jobs ...Job) error {
	return parallel.Run(ctx, len(jobs), func(_ context.Context, i int) error {
		return jobs[i]()
	}, b.cfg)
}
