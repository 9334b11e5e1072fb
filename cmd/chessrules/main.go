package main

import (
	"flag"
	"log"
	"net/http"
	_ "net/http/pprof"
	"os"
	"strings"

	"github.com/daystram/chessrules/board"
)

const (
	exitOK = iota
	exitErr
)

var (
	profile = flag.Bool("profile", false, "serve pprof endpoint")

	movegenRun  = flag.Bool("movegen", false, "run movegen mode")
	movegenDraw = flag.Bool("movegen.draw", false, "draw applied moves in movegen mode")

	perftDepth    = flag.Int("perft", 0, "run perft to the given depth")
	verifyDepth   = flag.Int("verify", 0, "verify legal moves against dragontoothmg to the given depth")
	parallelPerft = flag.Bool("parallel", true, "run perft on a goroutine per move")

	stepRun   = flag.Bool("step", false, "run step mode")
	stepSeed  = flag.Int64("step.seed", 1, "random seed in step mode")
	stepLimit = flag.Int("step.limit", 500, "maximum plies in step mode")
)

func main() {
	flag.Parse()

	if *profile {
		runProfiler()
	}

	err := realMain(flag.Args())
	if err != nil {
		log.Println(err)
		os.Exit(exitErr)
	}
	os.Exit(exitOK)
}

func runProfiler() {
	go func() {
		addr := "localhost:6060"
		log.Printf("starting pprof endpoint: http://%s/debug/pprof\n", addr)
		_ = http.ListenAndServe(addr, nil)
	}()
}

func realMain(args []string) error {
	fen := board.DefaultStartingPositionFEN
	if len(args) > 0 {
		fen = strings.Join(args, " ")
	}
	if *movegenRun {
		return movegen(fen, *movegenDraw)
	}
	if *perftDepth > 0 {
		return perft(*perftDepth, fen, *parallelPerft)
	}
	if *verifyDepth > 0 {
		return verify(*verifyDepth, fen)
	}
	if *stepRun {
		return step(fen, *stepSeed, *stepLimit)
	}

	return runShell()
}
