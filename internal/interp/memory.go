package interp

import (
	"errors"

	"github.com/jcorbin/forth/internal/mem"
)

// cellSize is the constant pushed by the `cells` primitive; this
// implementation stores one Cell per arena slot, so it is 1.
const cellSize = 1

// memory wraps a fixed-size mem.Arena with the monotonically increasing
// free-cursor convention used by variable, create, and allot.
type memory struct {
	arena *mem.Arena
	free  uint
}

func newMemory(size uint) memory {
	return memory{arena: mem.NewArena(size)}
}

func (m *memory) load(addr Cell) Cell {
	v, err := m.arena.Load(uint(addr))
	if err != nil {
		fail(toInvalidAddress(err))
	}
	return v
}

func (m *memory) store(addr Cell, val Cell) {
	if err := m.arena.Store(uint(addr), val); err != nil {
		fail(toInvalidAddress(err))
	}
}

// allot advances the free cursor by n cells, per the `allot` primitive.
// Negative n is permitted (it retreats the cursor), matching classic Forth.
func (m *memory) allot(n Cell) {
	next := Cell(m.free) + n
	if next < 0 {
		fail(Errf(KindInvalidAddress, "allot would move free cursor negative"))
	}
	m.free = uint(next)
}

// reserve carves one cell at the current free cursor and advances it,
// returning the address of the reserved cell (used by `variable`).
func (m *memory) reserve() Cell {
	addr := Cell(m.free)
	m.allot(1)
	return addr
}

// here returns the current free-cursor address without advancing it (used
// by `create`, which allocates no cells of its own).
func (m *memory) here() Cell { return Cell(m.free) }

func toInvalidAddress(err error) Error {
	var lim mem.LimitError
	if errors.As(err, &lim) {
		return Errf(KindInvalidAddress, "%v", lim)
	}
	return Errf(KindInvalidAddress, "%v", err)
}
