package bench

import (
	"errors"
	"fmt"
	"testing"

	"github.com/daystram/chessrules/board"
)

func TestPerft(t *testing.T) {
	t.Parallel()

	// Results obtained from https://www.chessprogramming.org/Perft_Results.
	tests := map[string][]struct {
		depth     int
		wantNodes uint64
		onlyNodes bool
		wantCap   uint64
		wantEnp   uint64
		wantCas   uint64
		wantPro   uint64
	}{
		"rnbqkbnr/pppppppp/8/8/8/8/PPPPPPPP/RNBQKBNR w KQkq - 0 1": {
			{
				depth:     0,
				wantNodes: 1,
			},
			{
				depth:     1,
				wantNodes: 20,
			},
			{
				depth:     2,
				wantNodes: 400,
			},
			{
				depth:     3,
				wantNodes: 8_902,
				wantCap:   34,
			},
		},
		"r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1": {
			{
				depth:     1,
				wantNodes: 48,
				wantCap:   8,
				wantCas:   2,
			},
			{
				depth:     2,
				wantNodes: 2_039,
				wantCap:   351,
				wantEnp:   1,
				wantCas:   91,
			},
		},
		"8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1": {
			{
				depth:     1,
				wantNodes: 14,
				wantCap:   1,
			},
			{
				depth:     2,
				wantNodes: 191,
				wantCap:   14,
			},
			{
				depth:     3,
				wantNodes: 2_812,
				wantCap:   209,
				wantEnp:   2,
			},
		},
		"r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1": {
			{
				depth:     1,
				wantNodes: 6,
			},
			{
				depth:     2,
				wantNodes: 264,
				wantCap:   87,
				wantCas:   6,
				wantPro:   48,
			},
		},
		"rnbq1k1r/pp1Pbppp/2p5/8/2B5/8/PPP1NnPP/RNBQK2R w KQ - 1 8": {
			{
				depth:     1,
				wantNodes: 44,
				onlyNodes: true,
			},
			{
				depth:     2,
				wantNodes: 1_486,
				onlyNodes: true,
			},
		},
	}

	for fen, constraints := range tests {
		fen := fen
		for _, tt := range constraints {
			tt := tt
			t.Run(fmt.Sprintf("perft(%d): %s", tt.depth, fen), func(t *testing.T) {
				t.Parallel()
				b, err := board.NewBoard(
					board.WithFEN(fen),
				)
				if err != nil {
					t.Fatal("unexpected error:", err)
				}

				for _, run := range []perftFunc{runPerft, runPerftParallel} {
					var st Stats
					nodes, err := run(b, tt.depth, true, false, nil, &st)
					if err != nil {
						t.Fatal("unexpected error:", err)
					}

					if nodes != tt.wantNodes || st.Nodes != tt.wantNodes {
						t.Errorf("unexpected nodes: got=%d/%d want=%d", nodes, st.Nodes, tt.wantNodes)
					}
					if !tt.onlyNodes {
						if st.Captures != tt.wantCap {
							t.Errorf("unexpected cap: got=%d want=%d", st.Captures, tt.wantCap)
						}
						if st.EnPassants != tt.wantEnp {
							t.Errorf("unexpected enp: got=%d want=%d", st.EnPassants, tt.wantEnp)
						}
						if st.Castles != tt.wantCas {
							t.Errorf("unexpected cas: got=%d want=%d", st.Castles, tt.wantCas)
						}
						if st.Promotions != tt.wantPro {
							t.Errorf("unexpected pro: got=%d want=%d", st.Promotions, tt.wantPro)
						}
					}
				}
			})
		}
	}
}

func TestPerftReport(t *testing.T) {
	t.Parallel()
	out := make(chan string, 64)
	if err := Perft(1, board.DefaultStartingPositionFEN, false, true, out); err != nil {
		t.Fatal("unexpected error:", err)
	}
	close(out)

	var lines []string
	for line := range out {
		lines = append(lines, line)
	}
	if len(lines) != 21 {
		t.Fatalf("unexpected report length: got=%d want=21", len(lines))
	}
	if lines[0] != "b1a3: 1" {
		t.Errorf("unexpected first line: got=%q", lines[0])
	}

	if err := Perft(1, "not a fen", false, false, nil); !errors.Is(err, board.ErrInvalidFEN) {
		t.Errorf("unexpected error: got=%v want=%v", err, board.ErrInvalidFEN)
	}
}

func TestVerify(t *testing.T) {
	t.Parallel()
	tests := []struct {
		fen       string
		depth     int
		wantNodes uint64
	}{
		{fen: board.DefaultStartingPositionFEN, depth: 2, wantNodes: 1 + 20 + 400},
		{fen: "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1", depth: 1, wantNodes: 1 + 48},
		{fen: "8/2p5/3p4/KP5r/1R3p1k/8/4P1P1/8 w - - 0 1", depth: 2, wantNodes: 1 + 14 + 191},
		{fen: "r3k2r/Pppp1ppp/1b3nbN/nP6/BBP1P3/q4N2/Pp1P2PP/R2Q1RK1 w kq - 0 1", depth: 1, wantNodes: 1 + 6},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(fmt.Sprintf("verify(%d): %s", tt.depth, tt.fen), func(t *testing.T) {
			t.Parallel()
			b, err := board.NewBoard(board.WithFEN(tt.fen))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}
			nodes, err := VerifyBoard(b, tt.depth)
			if err != nil {
				t.Fatalf("unexpected error: %v\n%s", err, b.Dump())
			}
			if nodes != tt.wantNodes {
				t.Errorf("unexpected nodes: got=%d want=%d", nodes, tt.wantNodes)
			}
		})
	}
}
