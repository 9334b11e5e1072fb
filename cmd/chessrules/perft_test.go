package main

import (
	"errors"
	"testing"

	"github.com/daystram/chessrules/board"
)

func TestModes(t *testing.T) {
	tests := []struct {
		name    string
		run     func(fen string) error
		fen     string
		wantErr error
	}{
		{
			name: "perft",
			run:  func(fen string) error { return perft(2, fen, true) },
			fen:  board.DefaultStartingPositionFEN,
		},
		{
			name: "verify",
			run:  func(fen string) error { return verify(2, fen) },
			fen:  "r3k2r/p1ppqpb1/bn2pnp1/3PN3/1p2P3/2N2Q1p/PPPBBPPP/R3K2R w KQkq - 0 1",
		},
		{
			name: "movegen",
			run:  func(fen string) error { return movegen(fen, true) },
			fen:  "8/P6k/8/8/8/8/6K1/8 w - - 0 1",
		},
		{
			name: "step",
			run:  func(fen string) error { return step(fen, 1, 40) },
			fen:  board.DefaultStartingPositionFEN,
		},
		{
			name:    "invalid fen",
			run:     func(fen string) error { return perft(1, fen, false) },
			fen:     "8/8/8 w - - 0 1",
			wantErr: board.ErrInvalidFEN,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			err := tt.run(tt.fen)
			if tt.wantErr == nil && err != nil {
				t.Fatal("unexpected error:", err)
			}
			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("unexpected error: got=%v want=%v", err, tt.wantErr)
			}
		})
	}
}
