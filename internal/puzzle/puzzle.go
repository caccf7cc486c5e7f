// Package puzzle holds the registry of daily solutions. Each day package
// registers itself in an init func; the CLI resolves days through Get/All.
package puzzle

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// PartFunc solves one part of a puzzle from the raw input bytes.
type PartFunc func(data []byte) (int, error)

// Solution is one day's registered puzzle.
type Solution struct {
	Day   int
	Title string
	Part1 PartFunc
	Part2 PartFunc
}

// Result is the outcome of running a single part.
type Result struct {
	Day      int
	Part     int
	Title    string
	Answer   int
	Duration time.Duration
	Err      error
}

var (
	mu       sync.RWMutex
	registry = make(map[int]Solution)
)

// Register adds a solution to the registry. Duplicate day numbers panic:
// that is a programming error, caught at init time.
func Register(s Solution) {
	mu.Lock()
	defer mu.Unlock()
	if _, exists := registry[s.Day]; exists {
		panic(fmt.Sprintf("puzzle: day %d registered twice", s.Day))
	}
	registry[s.Day] = s
}

// Get returns the solution for a day.
func Get(day int) (Solution, error) {
	mu.RLock()
	defer mu.RUnlock()
	s, ok := registry[day]
	if !ok {
		return Solution{}, fmt.Errorf("no solution registered for day %d", day)
	}
	return s, nil
}

// All returns every registered solution in day order.
func All() []Solution {
	mu.RLock()
	defer mu.RUnlock()
	out := make([]Solution, 0, len(registry))
	for _, s := range registry {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Day < out[j].Day })
	return out
}

// RunPart executes one part and captures the answer and timing.
func (s Solution) RunPart(part int, data []byte) Result {
	res := Result{Day: s.Day, Part: part, Title: s.Title}
	fn := s.Part1
	if part == 2 {
		fn = s.Part2
	}
	if fn == nil {
		res.Err = fmt.Errorf("day %d has no part %d", s.Day, part)
		return res
	}
	start := time.Now()
	res.Answer, res.Err = fn(data)
	res.Duration = time.Since(start)
	return res
}
