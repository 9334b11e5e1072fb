package main

import (
	"fmt"
	"log"
	"strconv"

	"github.com/daystram/chessrules/board"
	"github.com/daystram/chessrules/notation"
)

func movegen(fen string, draw bool) error {
	log.Println("============ movegen")
	b, err := board.NewBoard(board.WithFEN(fen))
	if err != nil {
		return err
	}
	fmt.Println("to move:", b.Turn())
	fmt.Println(b.Dump())
	fmt.Println(b.Draw())
	fmt.Println(b.State())
	dumpMoves(b)

	if draw {
		for _, mv := range b.LegalMoves() {
			promote := board.PieceUnknown
			if b.IsPromotion(mv) {
				promote = board.PieceQueen
			}
			bb, err := b.Apply(mv, promote)
			if err != nil {
				return err
			}
			fmt.Println(mv)
			fmt.Println(bb.Draw())
			fmt.Println(bb.FEN())
		}
	}
	return nil
}

func dumpMoves(b *board.Board) {
	mvs := b.LegalMoves()
	for i, mv := range mvs {
		pl, _ := b.PieceAt(mv.From)
		promote := board.PieceUnknown
		if b.IsPromotion(mv) {
			promote = board.PieceQueen
		}
		bb, err := b.Apply(mv, promote)
		if err != nil {
			log.Printf("apply %s: %v\n", mv, err)
			continue
		}
		hm, _ := bb.LastMove()
		fmt.Printf("option %*d: [%s] [%s] %s %s %s => %s (cap=%v) (spc=%s)\n",
			len(strconv.Itoa(len(mvs))), i+1, mv.UCI(), notation.ToNotation(hm), pl.Side, pl.Piece, mv.From, mv.To, hm.IsCapture, hm.Special)
	}
}
