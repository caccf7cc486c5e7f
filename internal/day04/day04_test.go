package day04

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleInput = `ecl:gry pid:860033327 eyr:2020 hcl:#fffffd
byr:1937 iyr:2017 cid:147 hgt:183cm

iyr:2013 ecl:amb cid:350 eyr:2023 pid:028048884
hcl:#cfa07d byr:1929

hcl:#ae17e1 iyr:2013
eyr:2024
ecl:brn pid:760753108 byr:1931
hgt:179cm

hcl:#cfa07d eyr:2025 pid:166559648
iyr:2011 ecl:brn hgt:59in
`

const invalidInput = `eyr:1972 cid:100
hcl:#18171d ecl:amb hgt:170 pid:186cm iyr:2018 byr:1926

iyr:2019
hcl:#602927 eyr:1967 hgt:170cm
ecl:grn pid:012533040 byr:1946

hcl:dab227 iyr:2012
ecl:brn hgt:182cm pid:021572410 eyr:2020 byr:1992 cid:277

hgt:59cm ecl:zzz
eyr:2038 hcl:74454a iyr:2023
pid:3556412378 byr:2007
`

const validInput = `pid:087499704 hgt:74in ecl:grn iyr:2012 eyr:2030 byr:1980
hcl:#623a2f

eyr:2029 ecl:blu cid:129 byr:1989
iyr:2014 pid:896056539 hcl:#a97842 hgt:165cm

hcl:#888785
hgt:164cm byr:2001 iyr:2015 cid:88
pid:545766238 ecl:hzl
eyr:2022

iyr:2010 hgt:158cm hcl:#b6652a ecl:blu byr:1944 eyr:2021 pid:093154719
`

func TestParsePassport(t *testing.T) {
	t.Run("multi-line record", func(t *testing.T) {
		p, err := ParsePassport("ecl:gry pid:860033327 byr:1937")
		require.NoError(t, err)
		want := Passport{"ecl": "gry", "pid": "860033327", "byr": "1937"}
		if diff := cmp.Diff(want, p); diff != "" {
			t.Errorf("passport mismatch (-want +got):\n%s", diff)
		}
	})

	t.Run("malformed pair", func(t *testing.T) {
		_, err := ParsePassport("ecl:gry pid")
		assert.Error(t, err)
	})
}

func TestHasRequiredFields(t *testing.T) {
	passports, err := Parse([]byte(sampleInput))
	require.NoError(t, err)
	require.Len(t, passports, 4)

	want := []bool{true, false, true, false}
	for i, p := range passports {
		assert.Equal(t, want[i], p.HasRequiredFields(), "passport %d", i+1)
	}
}

func TestFieldRules(t *testing.T) {
	t.Run("byr", func(t *testing.T) {
		assert.True(t, yearInRange("2002", 1920, 2002))
		assert.False(t, yearInRange("2003", 1920, 2002))
		assert.False(t, yearInRange("12", 1920, 2002))
	})

	t.Run("hgt", func(t *testing.T) {
		assert.True(t, validHeight("60in"))
		assert.True(t, validHeight("190cm"))
		assert.False(t, validHeight("190in"))
		assert.False(t, validHeight("190"))
	})

	t.Run("hcl", func(t *testing.T) {
		assert.True(t, hclRe.MatchString("#123abc"))
		assert.False(t, hclRe.MatchString("#123abz"))
		assert.False(t, hclRe.MatchString("123abc"))
	})

	t.Run("ecl", func(t *testing.T) {
		assert.True(t, eyeColors["brn"])
		assert.False(t, eyeColors["wat"])
	})

	t.Run("pid", func(t *testing.T) {
		assert.True(t, pidRe.MatchString("000000001"))
		assert.False(t, pidRe.MatchString("0123456789"))
	})
}

func TestPart1(t *testing.T) {
	got, err := Part1([]byte(sampleInput))
	require.NoError(t, err)
	assert.Equal(t, 2, got)
}

func TestPart2(t *testing.T) {
	t.Run("all invalid", func(t *testing.T) {
		got, err := Part2([]byte(invalidInput))
		require.NoError(t, err)
		assert.Equal(t, 0, got)
	})

	t.Run("all valid", func(t *testing.T) {
		got, err := Part2([]byte(validInput))
		require.NoError(t, err)
		assert.Equal(t, 4, got)
	})
}
