// Package day04 solves Passport Processing: check blank-line-delimited
// passport records for required fields, then validate the field values
// against a static rule table.
package day04

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"advent2020/internal/input"
	"advent2020/internal/puzzle"
)

func init() {
	puzzle.Register(puzzle.Solution{
		Day:   4,
		Title: "Passport Processing",
		Part1: Part1,
		Part2: Part2,
	})
}

// Passport maps field names to raw string values.
type Passport map[string]string

// requiredFields excludes cid, which is optional.
var requiredFields = []string{"byr", "iyr", "eyr", "hgt", "hcl", "ecl", "pid"}

var (
	hclRe = regexp.MustCompile(`^#[0-9a-f]{6}$`)
	pidRe = regexp.MustCompile(`^[0-9]{9}$`)
	hgtRe = regexp.MustCompile(`^(\d+)(cm|in)$`)

	eyeColors = map[string]bool{
		"amb": true, "blu": true, "brn": true,
		"gry": true, "grn": true, "hzl": true, "oth": true,
	}
)

// ParsePassport parses one record of whitespace-separated key:value pairs.
func ParsePassport(record string) (Passport, error) {
	p := make(Passport)
	for _, pair := range strings.Fields(record) {
		key, value, ok := strings.Cut(pair, ":")
		if !ok || key == "" || value == "" {
			return nil, fmt.Errorf("malformed field %q", pair)
		}
		p[key] = value
	}
	return p, nil
}

// Parse splits the input into passports.
func Parse(data []byte) ([]Passport, error) {
	records := input.Records(data)
	passports := make([]Passport, 0, len(records))
	for i, record := range records {
		p, err := ParsePassport(record)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i+1, err)
		}
		passports = append(passports, p)
	}
	return passports, nil
}

// HasRequiredFields reports whether every required field is present
// (part 1 rules).
func (p Passport) HasRequiredFields() bool {
	for _, f := range requiredFields {
		if _, ok := p[f]; !ok {
			return false
		}
	}
	return true
}

func yearInRange(s string, lo, hi int) bool {
	if len(s) != 4 {
		return false
	}
	n, err := strconv.Atoi(s)
	return err == nil && n >= lo && n <= hi
}

func validHeight(s string) bool {
	m := hgtRe.FindStringSubmatch(s)
	if m == nil {
		return false
	}
	n, _ := strconv.Atoi(m[1])
	if m[2] == "cm" {
		return n >= 150 && n <= 193
	}
	return n >= 59 && n <= 76
}

// Valid reports whether all required fields are present and every value
// passes its rule (part 2 rules).
func (p Passport) Valid() bool {
	if !p.HasRequiredFields() {
		return false
	}
	return yearInRange(p["byr"], 1920, 2002) &&
		yearInRange(p["iyr"], 2010, 2020) &&
		yearInRange(p["eyr"], 2020, 2030) &&
		validHeight(p["hgt"]) &&
		hclRe.MatchString(p["hcl"]) &&
		eyeColors[p["ecl"]] &&
		pidRe.MatchString(p["pid"])
}

func countPassports(data []byte, valid func(Passport) bool) (int, error) {
	passports, err := Parse(data)
	if err != nil {
		return 0, err
	}
	n := 0
	for _, p := range passports {
		if valid(p) {
			n++
		}
	}
	return n, nil
}

// Part1 counts passports with all required fields present.
func Part1(data []byte) (int, error) {
	return countPassports(data, Passport.HasRequiredFields)
}

// Part2 counts passports whose field values all validate.
func Part2(data []byte) (int, error) {
	return countPassports(data, Passport.Valid)
}
