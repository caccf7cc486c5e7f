// Package day01 solves Report Repair: find entries in an expense report
// that sum to 2020 and multiply them.
package day01

import (
	"fmt"
	"sort"

	"advent2020/internal/input"
	"advent2020/internal/puzzle"
)

const target = 2020

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   1,
		Title: "Report Repair",
		Part1: Part1,
		Part2: Part2,
	})
}

// FindPair returns the two entries summing to target, scanning a sorted
// copy from both ends. Returns false if no pair exists.
func FindPair(entries []int, target int) (int, int, bool) {
	sorted := make([]int, len(entries))
	copy(sorted, entries)
	sort.Ints(sorted)

	lo, hi := 0, len(sorted)-1
	for lo < hi {
		sum := sorted[lo] + sorted[hi]
		switch {
		case sum == target:
			return sorted[lo], sorted[hi], true
		case sum < target:
			lo++
		default:
			hi--
		}
	}
	return 0, 0, false
}

// FindTriple returns three entries summing to target, fixing each entry in
// turn and pair-searching the rest for the residual.
func FindTriple(entries []int, target int) (int, int, int, bool) {
	for i, first := range entries {
		rest := make([]int, 0, len(entries)-1)
		rest = append(rest, entries[:i]...)
		rest = append(rest, entries[i+1:]...)
		if a, b, ok := FindPair(rest, target-first); ok {
			return first, a, b, true
		}
	}
	return 0, 0, 0, false
}

// Part1 multiplies the pair of entries that sums to 2020.
func Part1(data []byte) (int, error) {
	entries, err := input.Ints(data)
	if err != nil {
		return 0, err
	}
	a, b, ok := FindPair(entries, target)
	if !ok {
		return 0, fmt.Errorf("no pair sums to %d", target)
	}
	return a * b, nil
}

// Part2 multiplies the triple of entries that sums to 2020.
func Part2(data []byte) (int, error) {
	entries, err := input.Ints(data)
	if err != nil {
		return 0, err
	}
	a, b, c, ok := FindTriple(entries, target)
	if !ok {
		return 0, fmt.Errorf("no triple sums to %d", target)
	}
	return a * b * c, nil
}
