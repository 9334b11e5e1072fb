// Package notation renders applied moves in short algebraic notation.
//
// Notation never disambiguates between two pieces of the same type that can
// reach the same square: "Nd2" is written even when both knights could go.
package notation

import (
	"fmt"
	"strings"

	"github.com/daystram/chessrules/board"
)

// ToNotation renders one applied move, e.g. "e4", "exd5", "Nf3+", "f8=R#" or "0-0-0".
func ToNotation(hm board.HistoricalMove) string {
	check := attackOnKingSuffix(hm.AttackOnKing)
	if hm.Special.Kind == board.SpecialMoveCastling {
		return hm.Special.Castle.String() + check
	}

	builder := strings.Builder{}
	_, _ = builder.WriteString(hm.Piece.SymbolAlgebra(board.SideWhite))
	if hm.IsCapture {
		if hm.Piece == board.PiecePawn {
			_, _ = builder.WriteString(hm.From.X().NotationComponentX())
		}
		_, _ = builder.WriteRune('x')
	}
	_, _ = builder.WriteString(hm.To.Notation())
	if hm.Special.Kind == board.SpecialMovePromotion {
		_, _ = builder.WriteString("=" + hm.Special.Promote.SymbolAlgebra(board.SideWhite))
	}
	_, _ = builder.WriteString(check)
	return builder.String()
}

func attackOnKingSuffix(a board.AttackOnKing) string {
	switch a {
	case board.AttackOnKingCheck:
		return "+"
	case board.AttackOnKingCheckmate:
		return "#"
	default:
		return ""
	}
}

// History renders every move that led to b, oldest first.
func History(b *board.Board) []string {
	hms := b.History()
	moves := make([]string, 0, len(hms))
	for _, hm := range hms {
		moves = append(moves, ToNotation(hm))
	}
	return moves
}

// MovePair is one numbered row of a move table. Black is only meaningful when
// HasBlack is set.
type MovePair struct {
	White    string
	Black    string
	HasBlack bool
}

// PairedMoves groups moves into White/Black rows. An odd trailing move gets a
// row of its own.
func PairedMoves(moves []string) []MovePair {
	pairs := make([]MovePair, 0, (len(moves)+1)/2)
	for i := 0; i < len(moves); i += 2 {
		pair := MovePair{White: moves[i]}
		if i+1 < len(moves) {
			pair.Black, pair.HasBlack = moves[i+1], true
		}
		pairs = append(pairs, pair)
	}
	return pairs
}

// Result returns the score of a finished game: "1-0", "0-1" or "1/2-1/2".
// It is empty while the game is running.
func Result(b *board.Board) string {
	return b.State().GameEnd().String()
}

// Status describes the game for a player: the winner, a stalemate, or whose turn it is.
func Status(b *board.Board) string {
	switch st := b.State(); {
	case st.IsCheckmate():
		return fmt.Sprintf("%s wins", b.Winner())
	case st.IsDraw():
		return "Stalemate"
	default:
		return fmt.Sprintf("Next player to move: %s", b.Turn())
	}
}

// Table renders the game as a numbered move list followed by the result, if
// any. A game whose history opens with a Black move starts with "..." in the
// White column.
func Table(b *board.Board) string {
	moves := History(b)
	if first, ok := firstMover(b); ok && first == board.SideBlack {
		moves = append([]string{"..."}, moves...)
	}

	builder := strings.Builder{}
	for i, pair := range PairedMoves(moves) {
		_, _ = builder.WriteString(fmt.Sprintf("%d. %s", i+1, pair.White))
		if pair.HasBlack {
			_, _ = builder.WriteString(" " + pair.Black)
		}
		_, _ = builder.WriteString("\n")
	}
	if res := Result(b); res != "" {
		_, _ = builder.WriteString(res + "\n")
	}
	return builder.String()
}

func firstMover(b *board.Board) (board.Side, bool) {
	hms := b.History()
	if len(hms) == 0 {
		return board.SideUnknown, false
	}
	return hms[0].Side, true
}
