package main

import (
	"fmt"
	"log"
	"math/rand"
	"time"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/notation"
)

// step plays random legal moves from fen until the game ends or limit plies
// are played, timing move generation, application and state detection.
func step(fen string, seed int64, limit int) error {
	log.Println("============ step")
	var (
		timesLegalMoves []time.Duration
		timesApply      []time.Duration
		timesState      []time.Duration
	)
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	rng := rand.New(rand.NewSource(seed))
	for ply := 0; ply < limit && b.State().IsRunning(); ply++ {
		t1 := time.Now()
		mvs := b.LegalMoves()
		t2 := time.Now()
		timesLegalMoves = append(timesLegalMoves, t2.Sub(t1))
		if len(mvs) == 0 {
			return fmt.Errorf("unexpected move exhaustion: state=%s", b.State())
		}
		mv := mvs[rng.Intn(len(mvs))]
		promote := board.PieceUnknown
		if b.IsPromotion(mv) {
			promote = board.PawnPromoteCandidates[rng.Intn(len(board.PawnPromoteCandidates))]
		}

		t1 = time.Now()
		bb, err := b.Apply(mv, promote)
		t2 = time.Now()
		if err != nil {
			return err
		}
		timesApply = append(timesApply, t2.Sub(t1))
		b = bb

		t1 = time.Now()
		_ = b.State()
		t2 = time.Now()
		timesState = append(timesState, t2.Sub(t1))

		hm, _ := b.LastMove()
		fmt.Printf("\n===== [#%d] %s: %s\n", ply/2+1, hm.Side, notation.ToNotation(hm))
		fmt.Println(b.Draw())
		fmt.Println(b.FEN())
	}

	avg := func(ds []time.Duration) time.Duration {
		if len(ds) == 0 {
			return 0
		}
		var s time.Duration
		for _, d := range ds {
			s += d
		}
		return s / time.Duration(len(ds))
	}

	fmt.Println()
	fmt.Print(notation.Table(b))
	fmt.Println(notation.Status(b))
	fmt.Println("legal:", avg(timesLegalMoves))
	fmt.Println("apply:", avg(timesApply))
	fmt.Println("state:", avg(timesState))
	return nil
}
