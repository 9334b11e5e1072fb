package board

import "github.com/daystram/chessrules/position"

type CastleDirection uint8

const (
	CastleDirectionUnknown CastleDirection = iota
	CastleDirectionKingSide
	CastleDirectionQueenSide
)

func (d CastleDirection) String() string {
	switch d {
	case CastleDirectionKingSide:
		return "0-0"
	case CastleDirectionQueenSide:
		return "0-0-0"
	default:
		return ""
	}
}

// castleDirectionOf returns the direction a king move would castle in, or
// CastleDirectionUnknown when the move does not have the shape of a castle.
func castleDirectionOf(s Side, mv Move) CastleDirection {
	if !s.Valid() {
		return CastleDirectionUnknown
	}
	for _, d := range []CastleDirection{CastleDirectionKingSide, CastleDirectionQueenSide} {
		hops := posCastling[s][d][PieceKing]
		if mv.From == hops[0] && mv.To == hops[1] {
			return d
		}
	}
	return CastleDirectionUnknown
}

// castleHops returns the king and rook hops of a castle.
func castleHops(s Side, d CastleDirection) (king, rook [2]position.Pos) {
	return posCastling[s][d][PieceKing], posCastling[s][d][PieceRook]
}
