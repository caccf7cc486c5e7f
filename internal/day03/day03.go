// Package day03 solves Toboggan Trajectory: count trees hit while
// descending a horizontally repeating grid at fixed slopes.
package day03

import (
	"fmt"

	"advent2020/internal/input"
	"advent2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   3,
		Title: "Toboggan Trajectory",
		Part1: Part1,
		Part2: Part2,
	})
}

// Grid is a map of tree cells. Columns repeat horizontally: column access
// is taken modulo the width.
type Grid struct {
	rows [][]bool // true = tree
}

// Slope is a step taken repeatedly from the top-left corner.
type Slope struct {
	Right int
	Down  int
}

// Part2Slopes are the five slopes whose tree counts are multiplied in part 2.
var Part2Slopes = []Slope{{1, 1}, {3, 1}, {5, 1}, {7, 1}, {1, 2}}

// ParseGrid parses the map. Any character other than '.' or '#' is fatal.
func ParseGrid(data []byte) (*Grid, error) {
	var rows [][]bool
	for y, line := range input.Lines(data) {
		row := make([]bool, 0, len(line))
		col := 0
		for _, c := range line {
			col++
			switch c {
			case '#':
				row = append(row, true)
			case '.':
				row = append(row, false)
			default:
				return nil, fmt.Errorf("row %d col %d: unexpected character %q", y+1, col, c)
			}
		}
		rows = append(rows, row)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("empty grid")
	}
	return &Grid{rows: rows}, nil
}

// Height returns the number of rows.
func (g *Grid) Height() int { return len(g.rows) }

// Tree reports whether the cell at (x, y) is a tree, wrapping x around the
// row width.
func (g *Grid) Tree(x, y int) bool {
	row := g.rows[y]
	if len(row) == 0 {
		return false
	}
	return row[x%len(row)]
}

// CountTrees counts trees hit descending from (0,0) by the slope until
// passing the bottom row.
func (g *Grid) CountTrees(s Slope) int {
	n := 0
	x := 0
	for y := 0; y < g.Height(); y += s.Down {
		if g.Tree(x, y) {
			n++
		}
		x += s.Right
	}
	return n
}

// Part1 counts trees on the slope right 3, down 1.
func Part1(data []byte) (int, error) {
	g, err := ParseGrid(data)
	if err != nil {
		return 0, err
	}
	return g.CountTrees(Slope{Right: 3, Down: 1}), nil
}

// Part2 multiplies the tree counts of the five canonical slopes.
func Part2(data []byte) (int, error) {
	g, err := ParseGrid(data)
	if err != nil {
		return 0, err
	}
	product := 1
	for _, s := range Part2Slopes {
		product *= g.CountTrees(s)
	}
	return product, nil
}
