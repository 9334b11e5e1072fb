package board

import (
	"math/bits"

	"golang.org/x/exp/constraints"

	"github.com/daystram/chessrules/position"
)

// bitmap is a set of squares, bit i standing for position.Pos(i).
type bitmap uint64

func (bm *bitmap) Set(pos position.Pos) {
	*bm |= maskCell[pos]
}

func (bm bitmap) Has(pos position.Pos) bool {
	return pos.Valid() && bm&maskCell[pos] != 0
}

func (bm bitmap) BitCount() uint8 {
	return uint8(bits.OnesCount64(uint64(bm)))
}

// Positions lists the set squares in file-major order.
func (bm bitmap) Positions() []position.Pos {
	if bm == 0 {
		return nil
	}
	ps := make([]position.Pos, 0, bm.BitCount())
	for _, pos := range position.AllPositions() {
		if bm.Has(pos) {
			ps = append(ps, pos)
		}
	}
	return ps
}

func abs[T constraints.Signed](v T) T {
	if v < 0 {
		return -v
	}
	return v
}
