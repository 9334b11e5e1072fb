package board

import (
	"errors"
	"fmt"

	"golang.org/x/exp/slices"

	"github.com/daystram/chessrules/position"
)

var (
	ErrIllegalPosition = errors.New("illegal position")
	ErrIllegalMove     = errors.New("illegal move")
)

// Board is a game snapshot: the pieces, the side to move and every move that
// led here, oldest first. A Board handed out by this package is never
// mutated; moves produce new boards.
type Board struct {
	placements []Placement
	turn       Side
	history    []HistoricalMove

	// cells[pos] is 1 + the index of the placement on pos, 0 when empty
	cells [TotalCells]uint8

	// clock offsets and castling rights withdrawn by a loaded FEN record
	halfMoveBase uint64
	fullMoveBase uint64
	revoked      [2 + 1][2 + 1]bool
}

type boardConfig struct {
	placements []Placement
	turn       Side
	history    []HistoricalMove
	fen        string
	fenSet     bool
}

type BoardOption func(*boardConfig)

// WithPlacements replaces the standard opening array. The order given is the
// order LegalMoves visits pieces in.
func WithPlacements(pls ...Placement) BoardOption {
	return func(cfg *boardConfig) {
		cfg.placements = slices.Clone(pls)
		if cfg.placements == nil {
			cfg.placements = []Placement{}
		}
	}
}

func WithTurn(s Side) BoardOption {
	return func(cfg *boardConfig) {
		cfg.turn = s
	}
}

func WithHistory(mvs ...HistoricalMove) BoardOption {
	return func(cfg *boardConfig) {
		cfg.history = slices.Clone(mvs)
	}
}

// WithFEN loads pieces, side to move and history from a FEN record. It takes
// precedence over the other options.
func WithFEN(fen string) BoardOption {
	return func(cfg *boardConfig) {
		cfg.fen, cfg.fenSet = fen, true
	}
}

// NewBoard returns the standard opening position with White to move unless
// options say otherwise.
func NewBoard(opts ...BoardOption) (*Board, error) {
	cfg := &boardConfig{
		turn: SideWhite,
	}
	for _, f := range opts {
		f(cfg)
	}

	b := &Board{
		fullMoveBase: 1,
	}
	if cfg.fenSet {
		if err := UnmarshalFEN(cfg.fen, b); err != nil {
			return nil, err
		}
	} else {
		b.placements = cfg.placements
		if b.placements == nil {
			b.placements = defaultPlacements()
		}
		b.turn = cfg.turn
		b.history = cfg.history
	}

	if err := b.reindex(); err != nil {
		return nil, err
	}
	if err := b.validate(); err != nil {
		return nil, err
	}
	return b, nil
}

// reindex rebuilds the square lookup from the placement list.
func (b *Board) reindex() error {
	b.cells = [TotalCells]uint8{}
	for i, pl := range b.placements {
		if !pl.Pos.Valid() {
			return fmt.Errorf("%w: %s off the board", ErrIllegalPosition, pl)
		}
		if b.cells[pl.Pos] != 0 {
			return fmt.Errorf("%w: more than one piece on %s", ErrIllegalPosition, pl.Pos)
		}
		b.cells[pl.Pos] = uint8(i + 1)
	}
	return nil
}

// validate checks the invariants every handed out board satisfies.
func (b *Board) validate() error {
	if !b.turn.Valid() {
		return fmt.Errorf("%w: invalid side to move", ErrIllegalPosition)
	}
	var kings [2 + 1]int
	for _, pl := range b.placements {
		if !pl.Side.Valid() || !pl.Piece.Valid() {
			return fmt.Errorf("%w: invalid piece on %s", ErrIllegalPosition, pl.Pos)
		}
		if pl.Piece == PieceKing {
			kings[pl.Side]++
		}
	}
	for _, s := range []Side{SideWhite, SideBlack} {
		if kings[s] != 1 {
			return fmt.Errorf("%w: %s has %d kings", ErrIllegalPosition, s, kings[s])
		}
	}
	if b.IsInCheck(b.turn.Opposite()) {
		return fmt.Errorf("%w: %s moved into check", ErrIllegalPosition, b.turn.Opposite())
	}
	return nil
}

func (b *Board) Turn() Side {
	return b.turn
}

// PieceAt returns the piece on pos, and false when the square is empty.
func (b *Board) PieceAt(pos position.Pos) (Placement, bool) {
	if !pos.Valid() || b.cells[pos] == 0 {
		return Placement{}, false
	}
	return b.placements[b.cells[pos]-1], true
}

// Placements returns the pieces in storage order.
func (b *Board) Placements() []Placement {
	return slices.Clone(b.placements)
}

// History returns the applied moves, oldest first.
func (b *Board) History() []HistoricalMove {
	return slices.Clone(b.history)
}

// LastMove returns the most recent history entry.
func (b *Board) LastMove() (HistoricalMove, bool) {
	if len(b.history) == 0 {
		return HistoricalMove{}, false
	}
	return b.history[len(b.history)-1], true
}

// Clone returns a deep copy of the board.
func (b *Board) Clone() *Board {
	bb := b.scratch()
	bb.history = slices.Clone(b.history)
	return bb
}

// scratch copies everything but the history, which stays shared and must
// only be read. Used for legality simulations.
func (b *Board) scratch() *Board {
	return &Board{
		placements:   slices.Clone(b.placements),
		turn:         b.turn,
		history:      b.history,
		cells:        b.cells,
		halfMoveBase: b.halfMoveBase,
		fullMoveBase: b.fullMoveBase,
		revoked:      b.revoked,
	}
}

func (b *Board) kingPos(s Side) (position.Pos, bool) {
	for _, pl := range b.placements {
		if pl.Side == s && pl.Piece == PieceKing {
			return pl.Pos, true
		}
	}
	return 0, false
}

// IsInCheck reports whether any piece of the other side attacks the king of s.
func (b *Board) IsInCheck(s Side) bool {
	king, ok := b.kingPos(s)
	if !ok {
		return false
	}
	return b.isAttackedBy(king, s.Opposite())
}

func (b *Board) isAttackedBy(target position.Pos, s Side) bool {
	for _, pl := range b.placements {
		if pl.Side == s && b.attacks(pl, target) {
			return true
		}
	}
	return false
}

// attacks reports whether pl could capture on target, honouring blockers.
// Non-sliding captures never cross a square.
func (b *Board) attacks(pl Placement, target position.Pos) bool {
	if !captureDestination(pl).Has(target) {
		return false
	}
	return !pl.Piece.IsSliding() || b.isPathClear(pl.Pos, target)
}

// isPathClear reports whether every square strictly between from and to is
// empty. Squares on no common line are never clear.
func (b *Board) isPathClear(from, to position.Pos) bool {
	between, err := position.Between(from, to)
	if err != nil {
		return false
	}
	for _, pos := range between {
		if b.cells[pos] != 0 {
			return false
		}
	}
	return true
}

// hasMoved reports whether history shows the piece of side s that started on
// home having moved. Any king move counts for the king; a rook counts when
// it left from or arrived on home.
func (b *Board) hasMoved(s Side, p Piece, home position.Pos) bool {
	return slices.IndexFunc(b.history, func(hm HistoricalMove) bool {
		if hm.Side != s || hm.Piece != p {
			return false
		}
		return p == PieceKing || hm.From == home || hm.To == home
	}) != -1
}

// State classifies the position from the side to move's point of view.
func (b *Board) State() State {
	inCheck := b.IsInCheck(b.turn)
	canMove := b.hasLegalMove()
	switch {
	case inCheck && !canMove:
		if b.turn == SideWhite {
			return StateCheckmateWhite
		}
		return StateCheckmateBlack
	case inCheck:
		if b.turn == SideWhite {
			return StateCheckWhite
		}
		return StateCheckBlack
	case !canMove:
		return StateStalemate
	default:
		return StateRunning
	}
}

func (b *Board) IsCheckmate() bool {
	return !b.hasLegalMove() && b.IsInCheck(b.turn)
}

func (b *Board) IsStalemate() bool {
	return !b.hasLegalMove() && !b.IsInCheck(b.turn)
}

// Winner returns the side that delivered checkmate, SideUnknown otherwise.
func (b *Board) Winner() Side {
	if b.IsCheckmate() {
		return b.turn.Opposite()
	}
	return SideUnknown
}

// remove takes the piece on pos off the board, keeping the order of the rest.
func (b *Board) remove(pos position.Pos) {
	if b.cells[pos] == 0 {
		return
	}
	i := b.cells[pos]
	b.placements = slices.Delete(b.placements, int(i-1), int(i))
	b.cells[pos] = 0
	for p, c := range b.cells {
		if c > i {
			b.cells[p] = c - 1
		}
	}
}

// relocate moves the piece on from to the empty square to.
func (b *Board) relocate(from, to position.Pos) {
	i := b.cells[from]
	if i == 0 {
		return
	}
	b.placements[i-1].Pos = to
	b.cells[from], b.cells[to] = 0, i
}
