package standoff

import (
	"fmt"
	"sort"
	"time"
)

// Stopwatch accumulates wall-clock time into named buckets. Each Solver
// owns one; nothing here is safe for concurrent use, which matches the
// single-threaded search.
type Stopwatch struct {
	Buckets      map[string]int64
	BucketStarts map[string]int64
}

func NewStopwatch() *Stopwatch {
	return &Stopwatch{
		Buckets:      make(map[string]int64),
		BucketStarts: make(map[string]int64),
	}
}

func (s *Stopwatch) Start(b string) {
	s.BucketStarts[b] = time.Now().UnixNano()
	_, ok := s.Buckets[b]
	if !ok {
		s.Buckets[b] = 0
	}
}

func (s *Stopwatch) Stop(b string) {
	end := time.Now().UnixNano()
	start, ok := s.BucketStarts[b]
	if !ok {
		return
	}
	s.Buckets[b] += end - start
	delete(s.BucketStarts, b)
}

func (s *Stopwatch) Results() string {
	names := make([]string, 0, len(s.Buckets))
	for k := range s.Buckets {
		names = append(names, k)
	}
	sort.Strings(names)
	out := ""
	for _, k := range names {
		out += fmt.Sprintf("%s: %.4f\n", k, float64(s.Buckets[k])/1000000000.0)
	}
	return out
}
