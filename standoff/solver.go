package standoff

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// memoDepth caps the size of partial placement sets remembered as fully
// explored. Larger partial states are so rarely reached twice by
// different piece orders that keying them costs more than re-exploring;
// correctness does not depend on the cap, only on never memoizing a
// state that was abandoned mid-branch (we only record after a branch is
// exhausted). The count tests cover boards deep enough to cross the cap.
const memoDepth = 5

// PieceCount pairs a piece type with how many of it to place.
type PieceCount struct {
	Piece Piece
	Count int
}

// ProgressUpdate is a best-effort snapshot of the search, emitted on the
// solver's Progress channel after every successful placement.
type ProgressUpdate struct {
	Placed      int
	TotalPieces int
	Solutions   int
	Attempts    int64
}

// Solver enumerates every distinct placement of a piece multiset on a
// rows x cols board such that no piece attacks another. Memoization and
// dedup state live on the Solver, so a Solver is single-use: call
// Solutions once, consume (or cancel) the channel, then make a new
// Solver to run again.
type Solver struct {
	rows   int
	cols   int
	spec   []PieceCount
	pieces []Piece

	completed *SignatureSet
	emitted   *SignatureSet
	watch     *Stopwatch

	attempts  int64
	solutions int
	elapsed   time.Duration

	// Progress receives best-effort updates during the search; sends
	// never block. The solver closes it when the search ends.
	Progress chan ProgressUpdate
}

// NewSolver validates the inputs and prepares a solver. Zero and
// negative counts mean "none of that piece" rather than an error;
// dimension and piece-type problems surface here, before any search.
func NewSolver(rows, cols int, spec []PieceCount) (*Solver, error) {
	if rows < 1 || cols < 1 || rows > MaxSide || cols > MaxSide {
		return nil, errDimensions(rows, cols)
	}
	pieces := make([]Piece, 0)
	for _, pc := range spec {
		if !pc.Piece.Valid() {
			return nil, errPiece(fmt.Sprintf("code %d", pc.Piece))
		}
		for i := 0; i < pc.Count; i++ {
			pieces = append(pieces, pc.Piece)
		}
	}
	return &Solver{
		rows:      rows,
		cols:      cols,
		spec:      spec,
		pieces:    pieces,
		completed: EmptySignatureSet(),
		emitted:   EmptySignatureSet(),
		watch:     NewStopwatch(),
		Progress:  make(chan ProgressUpdate, rows*cols*2),
	}, nil
}

func (s *Solver) String() string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "Solver     : recursive\n")
	fmt.Fprintf(&sb, "Board size : (%d, %d)\n", s.rows, s.cols)
	fmt.Fprintf(&sb, "Pieces     :\n")
	for _, pc := range s.spec {
		if pc.Count > 0 {
			fmt.Fprintf(&sb, "\t* %s: %d\n", pluralize(pc.Piece.Name(), pc.Count), pc.Count)
		}
	}
	return sb.String()
}

// Solutions starts the search and returns the solution stream. Each
// board on the channel is an independent clone owned by the receiver,
// emitted at most once per distinct placement set. The channel closes
// when the search space is exhausted or ctx is cancelled; either way the
// search goroutine exits and Elapsed becomes meaningful.
func (s *Solver) Solutions(ctx context.Context) <-chan *Board {
	out := make(chan *Board)
	go func() {
		defer close(out)
		defer close(s.Progress)
		start := time.Now()
		defer func() {
			s.elapsed = time.Since(start)
		}()
		if len(s.pieces) == 0 {
			return
		}
		board, err := NewBoard(s.rows, s.cols)
		if err != nil {
			// NewSolver already validated the dimensions.
			panic(err)
		}
		s.search(ctx, out, board, s.pieces)
	}()
	return out
}

// search tries every remaining piece type on every free square of board,
// recursing with a copy per attempt. Pieces of a type already tried at
// this position are skipped (instances are interchangeable, so the
// second try could only rediscover the first's branches). Partial states
// whose signature was recorded as fully explored are abandoned; solution
// signatures already emitted are swallowed.
func (s *Solver) search(ctx context.Context, out chan<- *Board, board *Board, pieces []Piece) {
	if _, ok := board.NextFree(); ok {
		s.watch.Start("copy")
		next := board.Copy()
		s.watch.Stop("copy")
		for i, p := range pieces {
			if i > 0 && p == pieces[i-1] {
				continue
			}
			it := board.FreeSquares()
			for pos, more := it.Next(); more; pos, more = it.Next() {
				select {
				case <-ctx.Done():
					return
				default:
				}
				s.attempts++
				if !next.TryPlace(p, pos.Row, pos.Col) {
					continue
				}
				s.sendProgress(next.PlacedCount())
				if len(pieces) == 1 {
					if s.emitted.Add(next.Signature()) {
						s.solutions++
						select {
						case out <- next:
						case <-ctx.Done():
							return
						}
					}
				} else if !s.completed.Contains(next.Signature()) {
					rest := make([]Piece, 0, len(pieces)-1)
					rest = append(rest, pieces[:i]...)
					rest = append(rest, pieces[i+1:]...)
					s.search(ctx, out, next, rest)
				}
				s.watch.Start("copy")
				next = board.Copy()
				s.watch.Stop("copy")
			}
		}
	}
	if n := board.PlacedCount(); n > 1 && n <= memoDepth {
		s.completed.Add(board.Signature())
	}
}

func (s *Solver) sendProgress(placed int) {
	select {
	case s.Progress <- ProgressUpdate{
		Placed:      placed,
		TotalPieces: len(s.pieces),
		Solutions:   s.solutions,
		Attempts:    s.attempts,
	}:
	default:
	}
}

// Elapsed is the wall-clock duration of the enumeration, valid once the
// solution channel has closed.
func (s *Solver) Elapsed() time.Duration {
	return s.elapsed
}

// SolutionCount reports how many distinct solutions have been emitted so
// far.
func (s *Solver) SolutionCount() int {
	return s.solutions
}

// Attempts reports how many placements the search has tried so far.
func (s *Solver) Attempts() int64 {
	return s.attempts
}

// Timings returns the named stopwatch buckets accumulated during the
// search.
func (s *Solver) Timings() string {
	return s.watch.Results()
}
