package bench

import (
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessrules/board"
)

// Stats counts the leaves of a perft tree. Every promotion choice is a leaf
// of its own.
type Stats struct {
	Nodes      uint64
	Captures   uint64
	EnPassants uint64
	Castles    uint64
	Promotions uint64
}

// candidate is a legal move together with one of its promotion choices.
type candidate struct {
	mv      board.Move
	promote board.Piece
}

func (c candidate) UCI() string {
	return c.mv.UCI() + c.promote.SymbolFEN(board.SideBlack)
}

func Perft(depth int, fen string, parallel, verbose bool, out chan string) error {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}
	_, err = Count(b, depth, parallel, verbose, out)
	return err
}

// Count walks the game tree of b to depth and reports a summary line to out.
// With verbose set, the node count below every root move is reported first.
func Count(b *board.Board, depth int, parallel, verbose bool, out chan string) (Stats, error) {
	var run perftFunc
	if parallel {
		run = runPerftParallel
	} else {
		run = runPerft
	}

	var st Stats
	start := time.Now()
	_, err := run(b, depth, true, verbose, out, &st)
	end := time.Now()
	if err != nil {
		return st, err
	}

	if out != nil {
		out <- message.NewPrinter(language.English).
			Sprintf("d=%d nodes=%d rate=%dn/s cap=%d enp=%d cas=%d pro=%d (%.3fs elapsed)",
				depth, st.Nodes, int(float64(st.Nodes)/end.Sub(start).Seconds()),
				st.Captures, st.EnPassants, st.Castles, st.Promotions, end.Sub(start).Seconds())
	}
	return st, nil
}

type perftFunc func(b *board.Board, d int, root, verbose bool, out chan string, st *Stats) (uint64, error)

// candidates lists the legal moves of b with promotions expanded.
func candidates(b *board.Board) []candidate {
	var cs []candidate
	for _, mv := range b.LegalMoves() {
		if !b.IsPromotion(mv) {
			cs = append(cs, candidate{mv: mv, promote: board.PieceUnknown})
			continue
		}
		for _, p := range board.PawnPromoteCandidates {
			cs = append(cs, candidate{mv: mv, promote: p})
		}
	}
	return cs
}

// leaf classifies a move played from b without applying it.
func leaf(b *board.Board, c candidate) Stats {
	st := Stats{Nodes: 1}
	if _, ok := b.PieceAt(c.mv.To); ok {
		st.Captures++
	}
	if b.IsLegalEnPassant(c.mv) {
		st.Captures++
		st.EnPassants++
	}
	if b.IsLegalCastling(c.mv) {
		st.Castles++
	}
	if c.promote != board.PieceUnknown {
		st.Promotions++
	}
	return st
}

func runPerft(b *board.Board, d int, root, verbose bool, out chan string, st *Stats) (uint64, error) {
	if d == 0 {
		st.Nodes++
		return 1, nil
	}

	var sum uint64
	for _, c := range candidates(b) {
		var child uint64
		if d != 1 {
			bb, err := b.Apply(c.mv, c.promote)
			if err != nil {
				return 0, fmt.Errorf("perft %s: %w", c.UCI(), err)
			}
			if child, err = runPerft(bb, d-1, false, verbose, out, st); err != nil {
				return 0, err
			}
		} else {
			l := leaf(b, c)
			child = l.Nodes
			st.Nodes += l.Nodes
			st.Captures += l.Captures
			st.EnPassants += l.EnPassants
			st.Castles += l.Castles
			st.Promotions += l.Promotions
		}
		if verbose && root {
			out <- fmt.Sprintf("%s: %d", c.UCI(), child)
		}
		sum += child
	}
	return sum, nil
}

func runPerftParallel(b *board.Board, d int, root, verbose bool, out chan string, st *Stats) (uint64, error) {
	if d == 0 {
		atomic.AddUint64(&st.Nodes, 1)
		return 1, nil
	}

	var sum uint64
	var wg sync.WaitGroup
	var once sync.Once
	var firstErr error
	for _, c := range candidates(b) {
		c := c
		wg.Add(1)
		go func() {
			defer wg.Done()
			var child uint64
			if d != 1 {
				bb, err := b.Apply(c.mv, c.promote)
				if err == nil {
					child, err = runPerftParallel(bb, d-1, false, verbose, out, st)
				}
				if err != nil {
					once.Do(func() { firstErr = fmt.Errorf("perft %s: %w", c.UCI(), err) })
					return
				}
			} else {
				l := leaf(b, c)
				child = l.Nodes
				atomic.AddUint64(&st.Nodes, l.Nodes)
				atomic.AddUint64(&st.Captures, l.Captures)
				atomic.AddUint64(&st.EnPassants, l.EnPassants)
				atomic.AddUint64(&st.Castles, l.Castles)
				atomic.AddUint64(&st.Promotions, l.Promotions)
			}
			if verbose && root {
				out <- fmt.Sprintf("%s: %d", c.UCI(), child)
			}
			atomic.AddUint64(&sum, child)
		}()
	}
	wg.Wait()
	return sum, firstErr
}
