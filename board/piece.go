package board

import (
	"fmt"

	"github.com/daystram/chessrules/position"
)

type Piece uint8

const (
	PieceUnknown Piece = iota
	PiecePawn
	PieceBishop
	PieceKnight
	PieceRook
	PieceQueen
	PieceKing
)

// PawnPromoteCandidates represents the candidates for pawn promotion.
var PawnPromoteCandidates = []Piece{PieceBishop, PieceKnight, PieceRook, PieceQueen}

func (p Piece) String() string {
	return p.Name()
}

func (p Piece) Valid() bool {
	return PiecePawn <= p && p <= PieceKing
}

// IsSliding reports whether the piece moves along rays that can be blocked.
func (p Piece) IsSliding() bool {
	return p == PieceBishop || p == PieceRook || p == PieceQueen
}

func (p Piece) Name() string {
	switch p {
	case PiecePawn:
		return "Pawn"
	case PieceBishop:
		return "Bishop"
	case PieceKnight:
		return "Knight"
	case PieceRook:
		return "Rook"
	case PieceQueen:
		return "Queen"
	case PieceKing:
		return "King"
	default:
		return ""
	}
}

func (p Piece) SymbolAlgebra(s Side) string {
	if p == PiecePawn {
		return ""
	}
	return p.SymbolFEN(s)
}

func (p Piece) SymbolFEN(s Side) string {
	var sym rune
	switch p {
	case PiecePawn:
		sym = 'P'
	case PieceBishop:
		sym = 'B'
	case PieceKnight:
		sym = 'N'
	case PieceRook:
		sym = 'R'
	case PieceQueen:
		sym = 'Q'
	case PieceKing:
		sym = 'K'
	default:
		return ""
	}
	if s == SideBlack {
		sym |= 0x20 // lowercase is +32 uppercase
	}
	return string(sym)
}

func (p Piece) SymbolUnicode(s Side) string {
	switch s {
	case SideWhite:
		switch p {
		case PiecePawn:
			return "♙"
		case PieceBishop:
			return "♗"
		case PieceKnight:
			return "♘"
		case PieceRook:
			return "♖"
		case PieceQueen:
			return "♕"
		case PieceKing:
			return "♔"
		default:
			return ""
		}
	case SideBlack:
		switch p {
		case PiecePawn:
			return "♟"
		case PieceBishop:
			return "♝"
		case PieceKnight:
			return "♞"
		case PieceRook:
			return "♜"
		case PieceQueen:
			return "♛"
		case PieceKing:
			return "♚"
		default:
			return ""
		}
	default:
		return ""
	}
}

// pieceFromSymbol is the inverse of SymbolFEN.
func pieceFromSymbol(sym rune) (Side, Piece) {
	s := SideWhite
	if 'a' <= sym && sym <= 'z' {
		s = SideBlack
		sym &^= 0x20
	}
	switch sym {
	case 'P':
		return s, PiecePawn
	case 'B':
		return s, PieceBishop
	case 'N':
		return s, PieceKnight
	case 'R':
		return s, PieceRook
	case 'Q':
		return s, PieceQueen
	case 'K':
		return s, PieceKing
	default:
		return SideUnknown, PieceUnknown
	}
}

// Placement is a piece of a given side standing on a square.
type Placement struct {
	Side  Side
	Piece Piece
	Pos   position.Pos
}

func (pl Placement) String() string {
	return fmt.Sprintf("%s %s %s", pl.Side, pl.Piece, pl.Pos)
}

// QuietMoves returns the squares the piece could move to without capturing,
// ignoring blocking pieces and checks.
func QuietMoves(pl Placement) []position.Pos {
	return quietDestination(pl).Positions()
}

// CaptureMoves returns the squares the piece could capture on, ignoring
// blocking pieces and checks. Only pawns capture differently from how they move.
func CaptureMoves(pl Placement) []position.Pos {
	return captureDestination(pl).Positions()
}

func quietDestination(pl Placement) bitmap {
	if !pl.Pos.Valid() {
		return 0
	}
	switch pl.Piece {
	case PiecePawn:
		if !pl.Side.Valid() {
			return 0
		}
		return maskPawnPush[pl.Side][pl.Pos]
	case PieceBishop:
		return maskDiagonals[pl.Pos]
	case PieceKnight:
		return maskKnight[pl.Pos]
	case PieceRook:
		return maskLaterals[pl.Pos]
	case PieceQueen:
		return maskDiagonals[pl.Pos] | maskLaterals[pl.Pos]
	case PieceKing:
		return maskKing[pl.Pos]
	default:
		return 0
	}
}

func captureDestination(pl Placement) bitmap {
	if pl.Piece == PiecePawn {
		if !pl.Pos.Valid() || !pl.Side.Valid() {
			return 0
		}
		return maskPawnCapture[pl.Side][pl.Pos]
	}
	return quietDestination(pl)
}
