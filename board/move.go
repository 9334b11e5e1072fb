package board

import (
	"errors"
	"fmt"

	"github.com/daystram/chessrules/position"
)

var (
	// ErrInvalidMoveText represents unparsable coordinate move text.
	ErrInvalidMoveText = errors.New("invalid move text")
)

// Move is a proposed transition. It carries no legality.
type Move struct {
	From, To position.Pos
}

func (m Move) String() string {
	return m.UCI()
}

func (m Move) UCI() string {
	return m.From.Notation() + m.To.Notation()
}

// ParseUCI parses coordinate move text such as "e2e4" or "e7e8q". The
// promotion piece is PieceUnknown when the text carries none.
func ParseUCI(s string) (Move, Piece, error) {
	if len(s) != 4 && len(s) != 5 {
		return Move{}, PieceUnknown, fmt.Errorf("%w: %q", ErrInvalidMoveText, s)
	}
	from, err := position.NewPosFromNotation(s[0:2])
	if err != nil {
		return Move{}, PieceUnknown, fmt.Errorf("%w: %w", ErrInvalidMoveText, err)
	}
	to, err := position.NewPosFromNotation(s[2:4])
	if err != nil {
		return Move{}, PieceUnknown, fmt.Errorf("%w: %w", ErrInvalidMoveText, err)
	}
	promote := PieceUnknown
	if len(s) == 5 {
		_, promote = pieceFromSymbol(rune(s[4]))
		if promote == PieceUnknown || promote == PiecePawn || promote == PieceKing {
			return Move{}, PieceUnknown, fmt.Errorf("%w: bad promotion %q", ErrInvalidMoveText, s[4:])
		}
	}
	return Move{From: from, To: to}, promote, nil
}

type SpecialMoveKind uint8

const (
	SpecialMoveNone SpecialMoveKind = iota
	SpecialMoveEnPassant
	SpecialMovePromotion
	SpecialMoveCastling
)

// SpecialMove tags a historical move with at most one special protocol.
// Promote is only meaningful for SpecialMovePromotion and Castle only for
// SpecialMoveCastling.
type SpecialMove struct {
	Kind    SpecialMoveKind
	Promote Piece
	Castle  CastleDirection
}

func EnPassant() SpecialMove {
	return SpecialMove{Kind: SpecialMoveEnPassant}
}

func Promotion(p Piece) SpecialMove {
	return SpecialMove{Kind: SpecialMovePromotion, Promote: p}
}

func Castling(d CastleDirection) SpecialMove {
	return SpecialMove{Kind: SpecialMoveCastling, Castle: d}
}

func (s SpecialMove) String() string {
	switch s.Kind {
	case SpecialMoveEnPassant:
		return "e.p."
	case SpecialMovePromotion:
		return "=" + s.Promote.SymbolAlgebra(SideWhite)
	case SpecialMoveCastling:
		return s.Castle.String()
	default:
		return ""
	}
}

type AttackOnKing uint8

const (
	AttackOnKingNone AttackOnKing = iota
	AttackOnKingCheck
	AttackOnKingCheckmate
	AttackOnKingStalemate
)

type GameEnd uint8

const (
	GameEndNone GameEnd = iota
	GameEndWhiteWins
	GameEndBlackWins
	GameEndDraw
)

func (g GameEnd) String() string {
	switch g {
	case GameEndWhiteWins:
		return "1-0"
	case GameEndBlackWins:
		return "0-1"
	case GameEndDraw:
		return "1/2-1/2"
	default:
		return ""
	}
}

// HistoricalMove is an applied move. Piece is the type that left the origin
// square, so a promotion records PiecePawn and keeps the new type in Special.
type HistoricalMove struct {
	Move
	Side  Side
	Piece Piece

	IsCapture    bool
	Special      SpecialMove
	AttackOnKing AttackOnKing
	GameEnd      GameEnd
}

func (hm HistoricalMove) UCI() string {
	nt := hm.Move.UCI()
	if hm.Special.Kind == SpecialMovePromotion {
		nt += hm.Special.Promote.SymbolFEN(SideBlack)
	}
	return nt
}

// isDoublePawnPush reports whether the move advanced a pawn two ranks on its file.
func (hm HistoricalMove) isDoublePawnPush() bool {
	return hm.Piece == PiecePawn && hm.From.X() == hm.To.X() && abs(hm.To.Y()-hm.From.Y()) == 2
}
