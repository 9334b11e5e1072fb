package bench

import (
	"errors"
	"fmt"
	"strings"

	"github.com/dylhunn/dragontoothmg"
	"golang.org/x/exp/slices"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/daystram/chessrules/board"
)

var (
	ErrMoveMismatch = errors.New("legal moves differ from reference")
)

// Verify walks the game tree of fen to depth and compares the legal moves of
// every node with those of dragontoothmg, which is fed the node's FEN.
func Verify(depth int, fen string, out chan string) error {
	b, err := board.NewBoard(
		board.WithFEN(fen),
	)
	if err != nil {
		return err
	}
	nodes, err := VerifyBoard(b, depth)
	if err != nil {
		return err
	}
	if out != nil {
		out <- message.NewPrinter(language.English).Sprintf("d=%d verified=%d ok", depth, nodes)
	}
	return nil
}

// VerifyBoard is Verify for a board already in hand. It returns the number of
// nodes checked.
func VerifyBoard(b *board.Board, depth int) (uint64, error) {
	if err := compareMoves(b); err != nil {
		return 0, err
	}
	if depth <= 0 {
		return 1, nil
	}

	nodes := uint64(1)
	for _, c := range candidates(b) {
		bb, err := b.Apply(c.mv, c.promote)
		if err != nil {
			return nodes, fmt.Errorf("verify %s: %w", c.UCI(), err)
		}
		n, err := VerifyBoard(bb, depth-1)
		nodes += n
		if err != nil {
			return nodes, err
		}
	}
	return nodes, nil
}

func compareMoves(b *board.Board) error {
	fen := b.FEN()
	got := make([]string, 0)
	for _, c := range candidates(b) {
		got = append(got, c.UCI())
	}
	ref := dragontoothmg.ParseFen(fen)
	want := make([]string, 0)
	for _, mv := range ref.GenerateLegalMoves() {
		want = append(want, mv.String())
	}
	slices.Sort(got)
	slices.Sort(want)
	if slices.Equal(got, want) {
		return nil
	}

	var missing, extra []string
	for _, mv := range want {
		if _, found := slices.BinarySearch(got, mv); !found {
			missing = append(missing, mv)
		}
	}
	for _, mv := range got {
		if _, found := slices.BinarySearch(want, mv); !found {
			extra = append(extra, mv)
		}
	}
	return fmt.Errorf("%w: fen=%q missing=[%s] extra=[%s]", ErrMoveMismatch, fen,
		strings.Join(missing, " "), strings.Join(extra, " "))
}
