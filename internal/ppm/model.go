package ppm

import "github.com/pkg/errors"

// nodeSize is the in-memory footprint of one node: four packed uint32
// fields, 16 bytes, no padding. GetUsedMemory and the arena-capacity
// computation both depend on this being accurate.
const nodeSize = 16

// ErrMemoryTooSmall is returned by NewModel when memoryLimit cannot hold
// the 256-node bootstrap tree built at construction (§3, §9 Open
// Question). crook.Options.Validate performs the same check up front so
// callers see the error before any I/O happens.
var ErrMemoryTooSmall = errors.New("ppm: memoryLimit too small for the bootstrap tree")

// Model is the adaptive binary context tree ("the PPM tree"). It exposes
// Predict/Update to the bit driver and GetUsedMemory for progress
// reporting.
type Model struct {
	arena *arena

	act   uint32 // index of the node currently predicting
	order int    // bit length of act's context string

	orderLimitBits int
}

// MinMemoryMiB is the smallest memoryLimit (in MiB) that can hold the
// bootstrap tree, given the current node layout.
func MinMemoryMiB() int {
	bytes := minArenaNodes * nodeSize
	mib := bytes >> 20
	if bytes%(1<<20) != 0 {
		mib++
	}
	if mib < 1 {
		mib = 1
	}
	return mib
}

// NewModel builds the initial order-0 bytewise tree described in §3.
// memoryLimit is in MiB, orderLimit in bytes of context.
func NewModel(memoryLimit, orderLimit int) (*Model, error) {
	if memoryLimit <= 0 {
		return nil, errors.New("ppm: memoryLimit must be > 0")
	}
	if orderLimit < 0 {
		return nil, errors.New("ppm: orderLimit must be >= 0")
	}

	nodesLimit := uint32(memoryLimit) * (1 << 20) / nodeSize
	if nodesLimit < minArenaNodes {
		return nil, ErrMemoryTooSmall
	}

	return &Model{
		arena:          newArena(nodesLimit),
		act:            1,
		order:          0,
		orderLimitBits: 8*orderLimit + 7,
	}, nil
}

// Predict returns the probability, scaled to ariPScale, that the next bit
// is 1.
func (m *Model) Predict() uint32 {
	return Fit0(m.arena.get(m.act).p1(), ppmPBits, ariPBits)
}

// Update consumes the true next bit, adjusting statistics along the
// suffix chain and possibly growing the tree (§4.2).
func (m *Model) Update(bit uint32) {
	act := m.act
	m.arena.get(act).update(bit)

	lst := act
	for m.arena.get(act).ext(bit) == 0 {
		lst = act
		act = m.arena.get(act).sfx
		m.order -= 8
		m.arena.get(act).update(bit)
	}

	extIdx := m.arena.get(act).ext(bit)
	if act != lst && m.order+9 <= m.orderLimitBits && !m.arena.full() {
		extNode := m.arena.get(extIdx)
		newIdx := m.arena.alloc(extIdx, extNode)
		m.arena.get(lst).setExt(bit, newIdx)
		m.act = newIdx
		m.order += 9
	} else {
		m.act = extIdx
		m.order++
	}
}

// GetUsedMemory returns the MiB occupied by the arena's high-water mark.
func (m *Model) GetUsedMemory() uint32 {
	return (m.arena.top * nodeSize) >> 20
}
