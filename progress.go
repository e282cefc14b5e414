package main

import (
	"fmt"
	"sync"
	"time"

	"github.com/salmiakki/standoff/standoff"
)

// PrintUpdates renders a live progress line from the solver's update
// channel until the solver closes it.
func PrintUpdates(s *standoff.Solver, wg *sync.WaitGroup) {
	defer wg.Done()
	if s.Progress == nil {
		return
	}
	fmt.Println("Searching...")
	for {
		select {
		case update, ok := <-s.Progress:
			if !ok {
				return
			}
			bar := ""
			pct := float64(update.Placed) / float64(update.TotalPieces)
			for i := 0.05; i <= 1.0; i += 0.05 {
				if pct >= i {
					bar += "="
				} else {
					bar += "."
				}
			}
			bar = "[" + bar + "]"
			bar += fmt.Sprintf(" %d/%d placed, %d solutions, %d attempts",
				update.Placed, update.TotalPieces, update.Solutions, update.Attempts)
			fmt.Print("\033[1A\033[K")
			fmt.Printf("%s\n", bar)
		default:
			time.Sleep(50 * time.Millisecond)
		}
	}
}
