package board

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/daystram/chessrules/position"
)

var (
	ErrInvalidFEN = errors.New("invalid fen")
)

var castleRightSymbols = [2 + 1][2 + 1]rune{
	SideWhite: {
		CastleDirectionKingSide:  'K',
		CastleDirectionQueenSide: 'Q',
	},
	SideBlack: {
		CastleDirectionKingSide:  'k',
		CastleDirectionQueenSide: 'q',
	},
}

// UnmarshalFEN loads a FEN record into b. History is the record of en passant
// rights, so an en passant target becomes a synthesized double pawn push. A
// castling right is only accepted when its king and rook stand on their home
// squares; an omitted right is withdrawn for the rest of the game.
func UnmarshalFEN(fen string, b *Board) error {
	if b == nil {
		return fmt.Errorf("invalid board")
	}
	segments := strings.Split(fen, " ")
	if len(segments) != 6 {
		return fmt.Errorf("%w: incorrect number of segments", ErrInvalidFEN)
	}

	rows := strings.Split(segments[0], "/")
	if len(rows) != int(Height) {
		return fmt.Errorf("%w: invalid board configuration", ErrInvalidFEN)
	}
	var pls []Placement
	for y := position.Pos(0); y < Height; y++ {
		ptrX, ptrY := -1, Height-y-1
		for x := position.Pos(0); x < Width; x++ {
			ptrX++
			if ptrX >= len(rows[ptrY]) {
				return fmt.Errorf("%w: missing cells", ErrInvalidFEN)
			}
			cell := rune(rows[ptrY][ptrX])
			if cell != '0' && unicode.IsDigit(cell) {
				skip := position.Pos(cell - '0')
				if x+skip-1 < Width {
					x += skip - 1
					continue
				}
				return fmt.Errorf("%w: skip out of bounds", ErrInvalidFEN)
			}
			s, p := pieceFromSymbol(cell)
			if p == PieceUnknown {
				return fmt.Errorf("%w: unknown symbol '%s'", ErrInvalidFEN, string(cell))
			}
			pls = append(pls, Placement{Side: s, Piece: p, Pos: position.NewPos(x, y)})
		}
		if ptrX != len(rows[ptrY])-1 {
			return fmt.Errorf("%w: extra cells", ErrInvalidFEN)
		}
	}
	b.placements = pls
	b.history = nil
	b.revoked = [2 + 1][2 + 1]bool{}
	if err := b.reindex(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidFEN, err)
	}

	switch segments[1] {
	case "w":
		b.turn = SideWhite
	case "b":
		b.turn = SideBlack
	default:
		return fmt.Errorf("%w: invalid turn", ErrInvalidFEN)
	}

	if len(segments[2]) > 4 || segments[2] == "" {
		return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
	}
	if segments[2] != "-" {
		for i, r := range segments[2] {
			if !strings.ContainsRune("KQkq", r) || strings.ContainsRune(segments[2][i+1:], r) {
				return fmt.Errorf("%w: invalid castling rights", ErrInvalidFEN)
			}
		}
	}
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, d := range []CastleDirection{CastleDirectionKingSide, CastleDirectionQueenSide} {
			granted := strings.ContainsRune(segments[2], castleRightSymbols[s][d])
			home := b.isCastlingHome(s, d)
			if granted && !home {
				return fmt.Errorf("%w: castling right %c does not match piece placement", ErrInvalidFEN, castleRightSymbols[s][d])
			}
			b.revoked[s][d] = !granted && home
		}
	}

	halfMoveClock, err := strconv.ParseUint(segments[4], 10, 64)
	if err != nil {
		return fmt.Errorf("%w: invalid half move clock", ErrInvalidFEN)
	}
	b.halfMoveBase = halfMoveClock

	fullMoveClock, err := strconv.ParseUint(segments[5], 10, 64)
	if err != nil || fullMoveClock == 0 {
		return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
	}
	b.fullMoveBase = fullMoveClock

	if segments[3] != "-" {
		target, err := position.NewPosFromNotation(segments[3])
		if err != nil {
			return fmt.Errorf("%w: invalid enpassant position: %w", ErrInvalidFEN, err)
		}
		pushed := b.turn.Opposite()
		dir := pawnDirection[pushed]
		from, okFrom := target.Offset(0, -dir)
		to, okTo := target.Offset(0, dir)
		if !okFrom || !okTo || from.Y() != pawnStartRank[pushed] {
			return fmt.Errorf("%w: invalid enpassant position", ErrInvalidFEN)
		}
		if pl, ok := b.PieceAt(to); !ok || pl.Side != pushed || pl.Piece != PiecePawn {
			return fmt.Errorf("%w: no pawn to capture en passant", ErrInvalidFEN)
		}
		b.history = []HistoricalMove{{
			Move:  Move{From: from, To: to},
			Side:  pushed,
			Piece: PiecePawn,
		}}
		if pushed == SideBlack {
			if b.fullMoveBase < 2 {
				return fmt.Errorf("%w: invalid full move clock", ErrInvalidFEN)
			}
			b.fullMoveBase--
		}
	}

	return nil
}

// isCastlingHome reports whether the king and rook of a castle are unmoved
// and on their home squares.
func (b *Board) isCastlingHome(s Side, d CastleDirection) bool {
	kingHops, rookHops := castleHops(s, d)
	king, ok := b.PieceAt(kingHops[0])
	if !ok || king.Side != s || king.Piece != PieceKing {
		return false
	}
	rook, ok := b.PieceAt(rookHops[0])
	if !ok || rook.Side != s || rook.Piece != PieceRook {
		return false
	}
	return !b.hasMoved(s, PieceKing, kingHops[0]) && !b.hasMoved(s, PieceRook, rookHops[0])
}

// canCastle reports whether the castling right of s in direction d is still held.
func (b *Board) canCastle(s Side, d CastleDirection) bool {
	return !b.revoked[s][d] && b.isCastlingHome(s, d)
}

func MarshalFEN(b *Board) (string, error) {
	if b == nil {
		return "", fmt.Errorf("invalid board")
	}
	builder := strings.Builder{}
	var skip uint8
	for y := position.Pos(Height) - 1; y >= 0; y-- {
		for x := position.Pos(0); x < Width; x++ {
			for skip = 0; x < Width && b.cells[position.NewPos(x, y)] == 0; x++ {
				skip++
			}
			if skip != 0 {
				_, _ = builder.WriteRune(rune(skip + '0'))
			}
			if x < Width {
				pl, _ := b.PieceAt(position.NewPos(x, y))
				_, _ = builder.WriteString(pl.Piece.SymbolFEN(pl.Side))
			}
		}
		if y > 0 {
			_, _ = builder.WriteRune('/')
		}
	}

	if b.turn == SideWhite {
		_, _ = builder.WriteString(" w ")
	} else {
		_, _ = builder.WriteString(" b ")
	}

	rights := 0
	for _, s := range []Side{SideWhite, SideBlack} {
		for _, d := range []CastleDirection{CastleDirectionKingSide, CastleDirectionQueenSide} {
			if b.canCastle(s, d) {
				_, _ = builder.WriteRune(castleRightSymbols[s][d])
				rights++
			}
		}
	}
	if rights == 0 {
		_, _ = builder.WriteRune('-')
	}
	_, _ = builder.WriteRune(' ')

	if last, ok := b.LastMove(); ok && last.isDoublePawnPush() {
		_, _ = builder.WriteString(position.NewPos(last.To.X(), (last.From.Y()+last.To.Y())/2).Notation())
	} else {
		_, _ = builder.WriteRune('-')
	}

	_, _ = builder.WriteString(fmt.Sprintf(" %d %d", b.HalfMoveClock(), b.FullMoveClock()))

	return builder.String(), nil
}

func (b *Board) FEN() string {
	fen, _ := MarshalFEN(b)
	return fen
}

// HalfMoveClock counts the moves since the last capture or pawn move.
func (b *Board) HalfMoveClock() uint64 {
	clock := b.halfMoveBase
	for _, hm := range b.history {
		if hm.Piece == PiecePawn || hm.IsCapture {
			clock = 0
		} else {
			clock++
		}
	}
	return clock
}

// FullMoveClock starts at 1 and increments after each Black move.
func (b *Board) FullMoveClock() uint64 {
	clock := b.fullMoveBase
	for _, hm := range b.history {
		if hm.Side == SideBlack {
			clock++
		}
	}
	return clock
}
