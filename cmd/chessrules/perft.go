package main

import (
	"log"

	"github.com/daystram/chessrules/bench"
)

func perft(depth int, fen string, parallel bool) error {
	name := "dfs"
	if parallel {
		name = "parallel dfs"
	}
	log.Printf("============ perft(%d): %s\n", depth, name)
	return report(func(out chan string) error {
		return bench.Perft(depth, fen, parallel, true, out)
	})
}

func verify(depth int, fen string) error {
	log.Printf("============ verify(%d)\n", depth)
	return report(func(out chan string) error {
		return bench.Verify(depth, fen, out)
	})
}

func report(f func(out chan string) error) error {
	out := make(chan string, 64)
	done := make(chan struct{})
	go func() {
		defer close(done)
		for s := range out {
			log.Println(s)
		}
	}()
	err := f(out)
	close(out)
	<-done
	return err
}
