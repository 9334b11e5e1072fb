package board

import (
	"github.com/daystram/chessrules/position"
)

// IsLegalMove reports whether the side to move may play mv. En passant and
// castling are tried before the standard rules.
func (b *Board) IsLegalMove(mv Move) bool {
	if !mv.From.Valid() || !mv.To.Valid() {
		return false
	}
	if b.IsLegalEnPassant(mv) {
		return true
	}
	if b.IsLegalCastling(mv) {
		return true
	}
	return b.isLegalStandardMove(mv)
}

func (b *Board) isLegalStandardMove(mv Move) bool {
	pl, ok := b.PieceAt(mv.From)
	if !ok || pl.Side != b.turn {
		return false
	}
	target, occupied := b.PieceAt(mv.To)
	if occupied && target.Side == b.turn {
		return false
	}

	reach := quietDestination(pl)
	if occupied {
		reach = captureDestination(pl)
	}
	if !reach.Has(mv.To) {
		return false
	}
	if pl.Piece != PieceKnight && !b.isPathClear(mv.From, mv.To) {
		return false
	}

	bb := b.scratch()
	if occupied {
		bb.remove(mv.To)
	}
	bb.relocate(mv.From, mv.To)
	bb.turn = bb.turn.Opposite()
	return !bb.IsInCheck(b.turn)
}

// IsLegalEnPassant reports whether mv is a pawn capturing, en passant, an
// enemy pawn that advanced two squares on the immediately preceding move.
func (b *Board) IsLegalEnPassant(mv Move) bool {
	captured, ok := b.enPassantCapture(mv)
	if !ok {
		return false
	}

	bb := b.scratch()
	bb.remove(captured)
	bb.relocate(mv.From, mv.To)
	bb.turn = bb.turn.Opposite()
	return !bb.IsInCheck(b.turn)
}

// enPassantCapture checks the shape of an en passant capture and returns the
// square of the pawn it would take.
func (b *Board) enPassantCapture(mv Move) (position.Pos, bool) {
	if !mv.From.Valid() || !mv.To.Valid() {
		return 0, false
	}
	pl, ok := b.PieceAt(mv.From)
	if !ok || pl.Side != b.turn || pl.Piece != PiecePawn {
		return 0, false
	}
	// a single diagonal step forward
	if mv.To.Y()-mv.From.Y() != pawnDirection[pl.Side] || abs(mv.To.X()-mv.From.X()) != 1 {
		return 0, false
	}
	if _, occupied := b.PieceAt(mv.To); occupied {
		return 0, false
	}

	captured := position.NewPos(mv.To.X(), mv.From.Y())
	last, ok := b.LastMove()
	if !ok || last.Side != b.turn.Opposite() || !last.isDoublePawnPush() || last.To != captured {
		return 0, false
	}
	victim, ok := b.PieceAt(captured)
	if !ok || victim.Side == b.turn || victim.Piece != PiecePawn {
		return 0, false
	}
	return captured, true
}

// IsLegalCastling reports whether mv is the king of the side to move castling.
// Whether the king or rook moved before is read from history.
func (b *Board) IsLegalCastling(mv Move) bool {
	pl, ok := b.PieceAt(mv.From)
	if !ok || pl.Side != b.turn || pl.Piece != PieceKing {
		return false
	}
	d := castleDirectionOf(pl.Side, mv)
	if d == CastleDirectionUnknown {
		return false
	}

	kingHops, rookHops := castleHops(pl.Side, d)
	rook, ok := b.PieceAt(rookHops[0])
	if !ok || rook.Side != pl.Side || rook.Piece != PieceRook {
		return false
	}
	if !b.isPathClear(kingHops[0], rookHops[0]) {
		return false
	}
	if b.revoked[pl.Side][d] || b.hasMoved(pl.Side, PieceKing, kingHops[0]) || b.hasMoved(pl.Side, PieceRook, rookHops[0]) {
		return false
	}

	if b.IsInCheck(pl.Side) {
		return false
	}
	// the rook lands on the square the king passes through
	passing := b.scratch()
	passing.relocate(kingHops[0], rookHops[1])
	if passing.IsInCheck(pl.Side) {
		return false
	}
	landing := b.scratch()
	landing.castle(pl.Side, d)
	return !landing.IsInCheck(pl.Side)
}

// LegalMoves lists every legal move of the side to move: pieces in storage
// order, destinations in position.AllPositions order.
func (b *Board) LegalMoves() []Move {
	var mvs []Move
	b.eachLegalMove(func(mv Move) bool {
		mvs = append(mvs, mv)
		return true
	})
	return mvs
}

func (b *Board) hasLegalMove() bool {
	found := false
	b.eachLegalMove(func(Move) bool {
		found = true
		return false
	})
	return found
}

// eachLegalMove calls f for every legal move until f returns false.
func (b *Board) eachLegalMove(f func(Move) bool) {
	for _, pl := range b.placements {
		if pl.Side != b.turn {
			continue
		}
		for _, to := range position.AllPositions() {
			mv := Move{From: pl.Pos, To: to}
			if b.IsLegalMove(mv) && !f(mv) {
				return
			}
		}
	}
}

// IsPromotion reports whether mv takes a pawn to its last rank.
func (b *Board) IsPromotion(mv Move) bool {
	pl, ok := b.PieceAt(mv.From)
	if !ok || pl.Piece != PiecePawn || !pl.Side.Valid() || !mv.To.Valid() {
		return false
	}
	return mv.To.Y() == promotionRank[pl.Side]
}
