// Package shell is a line-oriented command interface for driving a board
// from a terminal or a script.
package shell

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/daystram/chessrules/bench"
	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/notation"
)

var (
	ErrUnknownCommand   = errors.New("unknown command")
	ErrInvalidArguments = errors.New("invalid arguments")

	defaultOptions = options{
		parallelPerft: true,
	}
)

type options struct {
	parallelPerft bool
}

type Option func(*options)

// WithParallelPerft selects the runner used by "go perft".
func WithParallelPerft(parallel bool) Option {
	return func(o *options) {
		o.parallelPerft = parallel
	}
}

type Interface struct {
	board   *board.Board
	options options
	out     io.Writer
}

func NewInterface(opts ...Option) *Interface {
	i := &Interface{
		options: defaultOptions,
	}
	for _, opt := range opts {
		opt(&i.options)
	}
	return i
}

// Run reads commands from in until "quit", the end of input or the
// cancellation of ctx. A failing command writes an "error: " line to out and
// the loop carries on.
func (i *Interface) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	i.out = out
	if err := i.commandPosition(ctx, []string{"startpos"}); err != nil {
		return err
	}

	reader := bufio.NewReader(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		cmd, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return readErr
		}

		args := strings.Fields(cmd)
		if len(args) != 0 {
			if args[0] == "quit" {
				return nil
			}
			if err := i.dispatch(ctx, args); err != nil {
				i.println(fmt.Sprintf("error: %v", err))
			}
		}
		if readErr != nil {
			return nil
		}
	}
}

func (i *Interface) dispatch(ctx context.Context, args []string) error {
	switch args[0] {
	case "position":
		return i.commandPosition(ctx, args[1:])
	case "d":
		return i.commandDraw(ctx)
	case "fen":
		return i.commandFEN(ctx)
	case "moves":
		return i.commandMoves(ctx)
	case "move":
		return i.commandMove(ctx, args[1:])
	case "history":
		return i.commandHistory(ctx)
	case "status":
		return i.commandStatus(ctx)
	case "go":
		return i.commandGo(ctx, args[1:])
	case "verify":
		return i.commandVerify(ctx, args[1:])
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCommand, args[0])
	}
}

// commandPosition handles "position startpos|fen <fen> [moves <m1> ...]".
// The current board is only replaced when every listed move applies.
func (i *Interface) commandPosition(_ context.Context, args []string) error {
	if len(args) == 0 {
		return fmt.Errorf("%w: position needs startpos or fen", ErrInvalidArguments)
	}

	var fen string
	var rest []string
	switch args[0] {
	case "startpos":
		fen, rest = board.DefaultStartingPositionFEN, args[1:]
	case "fen":
		end := len(args)
		for j, arg := range args {
			if arg == "moves" {
				end = j
				break
			}
		}
		fen, rest = strings.Join(args[1:end], " "), args[end:]
	default:
		return fmt.Errorf("%w: unknown position kind %q", ErrInvalidArguments, args[0])
	}

	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	if len(rest) != 0 {
		if rest[0] != "moves" {
			return fmt.Errorf("%w: unexpected %q", ErrInvalidArguments, rest[0])
		}
		for _, text := range rest[1:] {
			if b, err = applyText(b, text); err != nil {
				return err
			}
		}
	}
	i.board = b
	return nil
}

func (i *Interface) commandDraw(_ context.Context) error {
	i.println(i.board.Draw())
	return nil
}

func (i *Interface) commandFEN(_ context.Context) error {
	i.println(i.board.FEN())
	return nil
}

// commandMoves lists the legal moves in coordinate text, one entry per
// promotion choice.
func (i *Interface) commandMoves(_ context.Context) error {
	var texts []string
	for _, mv := range i.board.LegalMoves() {
		if !i.board.IsPromotion(mv) {
			texts = append(texts, mv.UCI())
			continue
		}
		for _, p := range board.PawnPromoteCandidates {
			texts = append(texts, mv.UCI()+p.SymbolFEN(board.SideBlack))
		}
	}
	i.println(strings.Join(texts, " "))
	return nil
}

func (i *Interface) commandMove(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: move takes one coordinate move", ErrInvalidArguments)
	}
	b, err := applyText(i.board, args[0])
	if err != nil {
		return err
	}
	i.board = b

	hm, _ := b.LastMove()
	i.println(notation.ToNotation(hm))
	if !b.State().IsRunning() {
		i.println(notation.Status(b))
	}
	return nil
}

func (i *Interface) commandHistory(_ context.Context) error {
	_, _ = io.WriteString(i.out, notation.Table(i.board))
	return nil
}

func (i *Interface) commandStatus(_ context.Context) error {
	i.println(notation.Status(i.board))
	return nil
}

func (i *Interface) commandGo(_ context.Context, args []string) error {
	if len(args) != 2 || args[0] != "perft" {
		return fmt.Errorf("%w: usage: go perft <depth>", ErrInvalidArguments)
	}
	depth, err := parseDepth(args[1])
	if err != nil {
		return err
	}
	return i.stream(func(out chan string) error {
		return bench.Perft(depth, i.board.FEN(), i.options.parallelPerft, true, out)
	})
}

func (i *Interface) commandVerify(_ context.Context, args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("%w: usage: verify <depth>", ErrInvalidArguments)
	}
	depth, err := parseDepth(args[0])
	if err != nil {
		return err
	}
	return i.stream(func(out chan string) error {
		return bench.Verify(depth, i.board.FEN(), out)
	})
}

// stream prints every report line f sends until f returns.
func (i *Interface) stream(f func(out chan string) error) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			i.println(s)
		}
	}()
	err := f(out)
	close(out)
	<-done
	return err
}

func (i *Interface) println(a ...any) {
	fmt.Fprintln(i.out, a...)
}

func applyText(b *board.Board, text string) (*board.Board, error) {
	mv, promote, err := board.ParseUCI(text)
	if err != nil {
		return nil, err
	}
	return b.Apply(mv, promote)
}

func parseDepth(s string) (int, error) {
	depth, err := strconv.Atoi(s)
	if err != nil || depth < 0 {
		return 0, fmt.Errorf("%w: bad depth %q", ErrInvalidArguments, s)
	}
	return depth, nil
}
