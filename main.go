package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"sync"

	"github.com/chzyer/readline"
	"github.com/pkg/profile"

	"github.com/salmiakki/standoff/standoff"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "standoff: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	var (
		configPath  = flag.String("config", "", "challenge YAML file (flags override it)")
		rows        = flag.Int("rows", 0, "board row count")
		cols        = flag.Int("cols", 0, "board column count")
		kings       = flag.Int("K", 0, "number of kings")
		queens      = flag.Int("Q", 0, "number of queens")
		bishops     = flag.Int("B", 0, "number of bishops")
		rooks       = flag.Int("R", 0, "number of rooks")
		knights     = flag.Int("N", 0, "number of knights")
		pieceSpec   = flag.String("pieces", "", `compact piece spec, e.g. "K=2,Q=1,N=3"`)
		maxResults  = flag.Int("max", 0, "stop after this many solutions (0 = all)")
		art         = flag.Bool("art", false, "render boards with unicode chess glyphs")
		quiet       = flag.Bool("quiet", false, "print only the solution count and timing")
		interactive = flag.Bool("interactive", false, "page through solutions one at a time")
		progress    = flag.Bool("progress", false, "show a live progress line")
		timings     = flag.Bool("timings", false, "print stopwatch buckets after the run")
		profileMode = flag.String("profile", "", "write a profile: cpu, mem, clock or trace")
	)
	flag.Parse()

	switch *profileMode {
	case "":
	case "cpu":
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	case "mem":
		defer profile.Start(profile.MemProfile, profile.ProfilePath(".")).Stop()
	case "clock":
		defer profile.Start(profile.ClockProfile, profile.ProfilePath(".")).Stop()
	case "trace":
		defer profile.Start(profile.TraceProfile, profile.ProfilePath(".")).Stop()
	default:
		return fmt.Errorf("unknown profile mode %q", *profileMode)
	}

	boardRows, boardCols := *rows, *cols
	var counts []standoff.PieceCount

	if *configPath != "" {
		ch, err := LoadChallenge(*configPath)
		if err != nil {
			return err
		}
		if boardRows == 0 {
			boardRows = ch.Rows
		}
		if boardCols == 0 {
			boardCols = ch.Cols
		}
		counts, err = ch.PieceCounts()
		if err != nil {
			return err
		}
	}

	if *pieceSpec != "" {
		parsed, err := standoff.ParsePieceSpec(*pieceSpec)
		if err != nil {
			return err
		}
		counts = parsed
	}
	if flagCounts := countsFromFlags(*kings, *queens, *bishops, *rooks, *knights); len(flagCounts) > 0 {
		counts = flagCounts
	}

	solver, err := standoff.NewSolver(boardRows, boardCols, counts)
	if err != nil {
		return err
	}
	fmt.Print(solver)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	solutions := solver.Solutions(ctx)

	var wg sync.WaitGroup
	if *progress {
		wg.Add(1)
		go PrintUpdates(solver, &wg)
	}

	var rl *readline.Instance
	if *interactive {
		rl, err = readline.New("next solution? [Enter/q] ")
		if err != nil {
			return err
		}
		defer rl.Close()
	}

	found := 0
	for board := range solutions {
		found++
		if !*quiet {
			fmt.Printf("#%d\n", found)
			if *art {
				fmt.Println(board.Art())
			} else {
				fmt.Println(board)
			}
		}
		if *maxResults > 0 && found >= *maxResults {
			cancel()
			break
		}
		if rl != nil {
			line, rlErr := rl.Readline()
			if rlErr != nil || line == "q" {
				cancel()
				break
			}
		}
	}
	// Drain after cancellation so the search goroutine finishes and the
	// elapsed time is final.
	for range solutions {
	}
	wg.Wait()

	fmt.Printf("Solutions: %d\n", found)
	fmt.Printf("Total duration: %.4f\n", solver.Elapsed().Seconds())
	if *timings {
		fmt.Printf("Stopwatch:\n%s", solver.Timings())
	}
	return nil
}

func countsFromFlags(k, q, b, r, n int) []standoff.PieceCount {
	spec := []standoff.PieceCount{
		{Piece: standoff.King, Count: k},
		{Piece: standoff.Queen, Count: q},
		{Piece: standoff.Bishop, Count: b},
		{Piece: standoff.Rook, Count: r},
		{Piece: standoff.Knight, Count: n},
	}
	total := 0
	for _, pc := range spec {
		total += pc.Count
	}
	if total == 0 {
		return nil
	}
	return spec
}
