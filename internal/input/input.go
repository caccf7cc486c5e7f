// Package input loads puzzle inputs. Every puzzle reads one plain-text
// file, either line-oriented or split into blank-line-delimited records.
package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// Read returns the raw bytes of the given input file. The path "-" reads
// from stdin.
func Read(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read input: %w", err)
	}
	return data, nil
}

// Resolve returns the input path for a day: the explicit path if given,
// otherwise <dir>/day<N>.txt.
func Resolve(explicit, dir string, day int) string {
	if explicit != "" {
		return explicit
	}
	return filepath.Join(dir, fmt.Sprintf("day%d.txt", day))
}

// Lines splits data into lines, dropping the trailing empty line that a
// final newline produces. Interior blank lines are preserved.
func Lines(data []byte) []string {
	var lines []string
	sc := bufio.NewScanner(strings.NewReader(string(data)))
	for sc.Scan() {
		lines = append(lines, sc.Text())
	}
	return lines
}

// Ints parses one integer per line. Blank lines are an error: the numeric
// puzzles guarantee a dense list.
func Ints(data []byte) ([]int, error) {
	lines := Lines(data)
	nums := make([]int, 0, len(lines))
	for i, line := range lines {
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err != nil {
			return nil, fmt.Errorf("line %d: %q is not an integer", i+1, line)
		}
		nums = append(nums, n)
	}
	return nums, nil
}

// Records splits data into blank-line-delimited records. Lines within a
// record are joined with a single space, so a record that spans several
// lines reads as one whitespace-separated string.
func Records(data []byte) []string {
	var records []string
	var current []string
	flush := func() {
		if len(current) > 0 {
			records = append(records, strings.Join(current, " "))
			current = current[:0]
		}
	}
	for _, line := range Lines(data) {
		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}
		current = append(current, line)
	}
	flush()
	return records
}
