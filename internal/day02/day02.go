// Package day02 solves Password Philosophy: validate passwords against the
// sled-rental and Toboggan Corporate interpretations of the policy line.
package day02

import (
	"fmt"
	"regexp"
	"strconv"

	"advent2020/internal/input"
	"advent2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   2,
		Title: "Password Philosophy",
		Part1: Part1,
		Part2: Part2,
	})
}

// Entry is one policy line: two numbers, a letter, and the password.
// The numbers mean min/max count in part 1 and 1-based positions in part 2.
type Entry struct {
	Low      int
	High     int
	Letter   byte
	Password string
}

var lineRe = regexp.MustCompile(`^(\d+)-(\d+) ([a-z]): (\S+)$`)

// ParseLine parses a policy line of the form "1-3 a: abcde".
func ParseLine(line string) (Entry, error) {
	m := lineRe.FindStringSubmatch(line)
	if m == nil {
		return Entry{}, fmt.Errorf("malformed policy line %q", line)
	}
	low, _ := strconv.Atoi(m[1])
	high, _ := strconv.Atoi(m[2])
	return Entry{Low: low, High: high, Letter: m[3][0], Password: m[4]}, nil
}

// Parse parses every line of the input.
func Parse(data []byte) ([]Entry, error) {
	lines := input.Lines(data)
	entries := make([]Entry, 0, len(lines))
	for i, line := range lines {
		e, err := ParseLine(line)
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", i+1, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// ValidCount reports whether the letter occurs between Low and High times
// inclusive (part 1 rules).
func (e Entry) ValidCount() bool {
	n := 0
	for i := 0; i < len(e.Password); i++ {
		if e.Password[i] == e.Letter {
			n++
		}
	}
	return n >= e.Low && n <= e.High
}

// ValidPosition reports whether exactly one of the 1-based positions Low and
// High holds the letter (part 2 rules). Out-of-range positions don't match.
func (e Entry) ValidPosition() bool {
	at := func(pos int) bool {
		return pos >= 1 && pos <= len(e.Password) && e.Password[pos-1] == e.Letter
	}
	return at(e.Low) != at(e.High)
}

func countValid(data []byte, valid func(Entry) bool) (int, error) {
	entries, err := Parse(data)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, e := range entries {
		if valid(e) {
			n++
		}
	}
	return n, nil
}

// Part1 counts passwords valid under the occurrence-count policy.
func Part1(data []byte) (int, error) {
	return countValid(data, Entry.ValidCount)
}

// Part2 counts passwords valid under the position policy.
func Part2(data []byte) (int, error) {
	return countValid(data, Entry.ValidPosition)
}
