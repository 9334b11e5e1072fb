package board

import (
	"fmt"

	"golang.org/x/exp/slices"
)

// Apply plays mv and returns the resulting board; b itself is left untouched.
// promote must name the promotion piece exactly when mv is a promotion, and
// be PieceUnknown otherwise.
func (b *Board) Apply(mv Move, promote Piece) (*Board, error) {
	if !b.IsLegalMove(mv) {
		return nil, fmt.Errorf("%w: %s", ErrIllegalMove, mv)
	}
	isPromotion := b.IsPromotion(mv)
	switch {
	case isPromotion && promote == PieceUnknown:
		return nil, fmt.Errorf("%w: %s requires a promotion piece", ErrIllegalMove, mv)
	case !isPromotion && promote != PieceUnknown:
		return nil, fmt.Errorf("%w: %s is not a promotion", ErrIllegalMove, mv)
	case isPromotion && !slices.Contains(PawnPromoteCandidates, promote):
		return nil, fmt.Errorf("%w: cannot promote to %s", ErrIllegalMove, promote)
	}

	var bb *Board
	var hm HistoricalMove
	switch {
	case b.IsLegalCastling(mv):
		bb, hm = b.applyCastling(mv)
	case b.IsLegalEnPassant(mv):
		bb, hm = b.applyEnPassant(mv)
	default:
		bb, hm = b.applyStandard(mv, promote)
	}
	bb.turn = bb.turn.Opposite()
	bb.history = append(bb.history, hm)

	// annotate against the position the move produced
	st := bb.State()
	bb.history[len(bb.history)-1].AttackOnKing = st.AttackOnKing()
	bb.history[len(bb.history)-1].GameEnd = st.GameEnd()

	if err := bb.validate(); err != nil {
		return nil, err
	}
	return bb, nil
}

func (b *Board) applyStandard(mv Move, promote Piece) (*Board, HistoricalMove) {
	pl, _ := b.PieceAt(mv.From)
	_, occupied := b.PieceAt(mv.To)
	hm := HistoricalMove{
		Move:      mv,
		Side:      pl.Side,
		Piece:     pl.Piece,
		IsCapture: occupied,
	}

	bb := b.Clone()
	if occupied {
		bb.remove(mv.To)
	}
	bb.relocate(mv.From, mv.To)
	if promote != PieceUnknown {
		bb.placements[bb.cells[mv.To]-1].Piece = promote
		hm.Special = Promotion(promote)
	}
	return bb, hm
}

func (b *Board) applyCastling(mv Move) (*Board, HistoricalMove) {
	pl, _ := b.PieceAt(mv.From)
	d := castleDirectionOf(pl.Side, mv)
	bb := b.Clone()
	bb.castle(pl.Side, d)
	return bb, HistoricalMove{
		Move:    mv,
		Side:    pl.Side,
		Piece:   PieceKing,
		Special: Castling(d),
	}
}

// castle moves the king two files and the rook onto the square the king crossed.
func (b *Board) castle(s Side, d CastleDirection) {
	kingHops, rookHops := castleHops(s, d)
	b.relocate(kingHops[0], kingHops[1])
	b.relocate(rookHops[0], rookHops[1])
}

func (b *Board) applyEnPassant(mv Move) (*Board, HistoricalMove) {
	pl, _ := b.PieceAt(mv.From)
	captured, _ := b.enPassantCapture(mv)
	bb := b.Clone()
	bb.remove(captured)
	bb.relocate(mv.From, mv.To)
	return bb, HistoricalMove{
		Move:      mv,
		Side:      pl.Side,
		Piece:     PiecePawn,
		IsCapture: true,
		Special:   EnPassant(),
	}
}
