package world

import (
	"io"
	"math/rand/v2"
)

// testEntropy returns a reproducible seed source.
func testEntropy(seed byte) io.Reader {
	var key [32]byte
	key[0] = seed
	return rand.NewChaCha8(key)
}

// testParams returns small parameters that keep tests fast.
func testParams() Params {
	p := DefaultParams()
	p.Size = 20
	return p
}

// resetProcessParams restores the process defaults and unfreezes them.
func resetProcessParams() {
	processParams.Lock()
	processParams.params = DefaultParams()
	processParams.frozen = false
	processParams.Unlock()
}

// uniformPentagrid builds a pentagrid with every cell set to fill.
func uniformPentagrid(size int, fill Cell) Pentagrid {
	var p Pentagrid
	for _, pos := range Positions {
		p[pos] = NewGrid(size, fill)
	}
	return p
}
