package board

import (
	"github.com/daystram/chessrules/position"
)

const (
	Width      = position.MaxComponentScalar
	Height     = position.MaxComponentScalar
	TotalCells = Width * Height
)

var (
	DefaultStartingPositionFEN = "rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1"

	maskCell      [TotalCells]bitmap
	maskDiagonals [TotalCells]bitmap
	maskLaterals  [TotalCells]bitmap
	maskKnight    [TotalCells]bitmap
	maskKing      [TotalCells]bitmap

	maskPawnPush    [2 + 1][TotalCells]bitmap
	maskPawnCapture [2 + 1][TotalCells]bitmap

	// pawnDirection is the rank delta of a single pawn step.
	pawnDirection = [2 + 1]position.Pos{
		SideWhite: 1,
		SideBlack: -1,
	}
	pawnStartRank = [2 + 1]position.Pos{
		SideWhite: position.Rank2,
		SideBlack: position.Rank7,
	}
	promotionRank = [2 + 1]position.Pos{
		SideWhite: position.Rank8,
		SideBlack: position.Rank1,
	}

	// posCastling holds the [from, to] hops of the king and the rook.
	posCastling = [2 + 1][2 + 1][6 + 1][2]position.Pos{
		SideWhite: {
			CastleDirectionKingSide: {
				PieceKing: {position.E1, position.G1},
				PieceRook: {position.H1, position.F1},
			},
			CastleDirectionQueenSide: {
				PieceKing: {position.E1, position.C1},
				PieceRook: {position.A1, position.D1},
			},
		},
		SideBlack: {
			CastleDirectionKingSide: {
				PieceKing: {position.E8, position.G8},
				PieceRook: {position.H8, position.F8},
			},
			CastleDirectionQueenSide: {
				PieceKing: {position.E8, position.C8},
				PieceRook: {position.A8, position.D8},
			},
		},
	}

	offsetKnight = [8][2]position.Pos{
		{1, 2}, {2, 1}, {2, -1}, {1, -2}, {-1, -2}, {-2, -1}, {-2, 1}, {-1, 2},
	}
	offsetKing = [8][2]position.Pos{
		{0, 1}, {1, 1}, {1, 0}, {1, -1}, {0, -1}, {-1, -1}, {-1, 0}, {-1, 1},
	}
	directionDiagonals = [4][2]position.Pos{
		{1, 1}, {1, -1}, {-1, -1}, {-1, 1},
	}
	directionLaterals = [4][2]position.Pos{
		{0, 1}, {1, 0}, {0, -1}, {-1, 0},
	}
)

func init() {
	initMask()
}

func initMask() {
	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskCell[pos] = 1 << pos
	}

	for pos := position.Pos(0); pos < TotalCells; pos++ {
		maskDiagonals[pos] = scanRays(pos, directionDiagonals[:])
		maskLaterals[pos] = scanRays(pos, directionLaterals[:])
		maskKnight[pos] = scanOffsets(pos, offsetKnight[:])
		maskKing[pos] = scanOffsets(pos, offsetKing[:])
	}

	for _, s := range []Side{SideWhite, SideBlack} {
		dir := pawnDirection[s]
		for pos := position.Pos(0); pos < TotalCells; pos++ {
			var push bitmap
			if one, ok := pos.Offset(0, dir); ok {
				push.Set(one)
				if pos.Y() == pawnStartRank[s] {
					if two, ok := pos.Offset(0, 2*dir); ok {
						push.Set(two)
					}
				}
			}
			maskPawnPush[s][pos] = push
			maskPawnCapture[s][pos] = scanOffsets(pos, [][2]position.Pos{{-1, dir}, {1, dir}})
		}
	}
}

// scanRays walks each direction from pos up to the board edge.
func scanRays(pos position.Pos, dirs [][2]position.Pos) bitmap {
	var mask bitmap
	for _, d := range dirs {
		for p, ok := pos.Offset(d[0], d[1]); ok; p, ok = p.Offset(d[0], d[1]) {
			mask.Set(p)
		}
	}
	return mask
}

func scanOffsets(pos position.Pos, offsets [][2]position.Pos) bitmap {
	var mask bitmap
	for _, o := range offsets {
		if p, ok := pos.Offset(o[0], o[1]); ok {
			mask.Set(p)
		}
	}
	return mask
}

// defaultPlacements is the standard opening array: pawns first, then the
// back ranks file by file, alternating white and black.
func defaultPlacements() []Placement {
	pls := make([]Placement, 0, 32)
	for x := position.FileA; x <= position.FileH; x++ {
		pls = append(pls, Placement{Side: SideWhite, Piece: PiecePawn, Pos: position.NewPos(x, position.Rank2)})
	}
	for x := position.FileA; x <= position.FileH; x++ {
		pls = append(pls, Placement{Side: SideBlack, Piece: PiecePawn, Pos: position.NewPos(x, position.Rank7)})
	}
	backRank := [Width]Piece{PieceRook, PieceKnight, PieceBishop, PieceQueen, PieceKing, PieceBishop, PieceKnight, PieceRook}
	for x, p := range backRank {
		pls = append(pls,
			Placement{Side: SideWhite, Piece: p, Pos: position.NewPos(position.Pos(x), position.Rank1)},
			Placement{Side: SideBlack, Piece: p, Pos: position.NewPos(position.Pos(x), position.Rank8)},
		)
	}
	return pls
}
