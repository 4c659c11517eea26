package crook

import (
	"github.com/crookcomp/crook/internal/ppm"
	"github.com/pkg/errors"
)

// Options carries the two tuning integers both sides of a stream must
// agree on (§6): memoryLimit in MiB and orderLimit in bytes of context.
type Options struct {
	MemoryLimit int
	OrderLimit  int
}

// DefaultOptions matches the original command line tool's defaults: 128
// MiB of memory and a 4-byte order limit.
func DefaultOptions() Options {
	return Options{MemoryLimit: 128, OrderLimit: 4}
}

// Validate rejects parameters that the model cannot operate with. This
// resolves the Open Question in spec §9: memoryLimit values too small to
// hold the 256-node bootstrap tree are rejected outright rather than left
// to silently corrupt the arena.
func (o Options) Validate() error {
	if o.MemoryLimit <= 0 {
		return errors.New("crook: MemoryLimit must be > 0")
	}
	if o.OrderLimit < 0 {
		return errors.New("crook: OrderLimit must be >= 0")
	}
	if min := ppm.MinMemoryMiB(); o.MemoryLimit < min {
		return errors.Errorf("crook: MemoryLimit %d MiB is below the %d MiB floor needed for the bootstrap tree", o.MemoryLimit, min)
	}
	return nil
}
