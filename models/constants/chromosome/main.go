package chromosome

import (
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/samber/lo"
)

const ReferenceAssembly = "GRCh37"

// CanonicalPattern is the hand-written form of the name rule.
// The matcher actually used is derived from the length table.
const CanonicalPattern = `^(X|Y|M|[1-9]|1[0-9]|2[0-2])$`

// GRCh37/hg19 reference lengths in base pairs. Never written after init.
var grch37Lengths = map[string]int{
	"1":  249250621,
	"2":  243199373,
	"3":  198022430,
	"4":  191154276,
	"5":  180915260,
	"6":  171115067,
	"7":  159138663,
	"8":  146364022,
	"9":  141213431,
	"10": 135534747,
	"11": 135006516,
	"12": 133851895,
	"13": 115169878,
	"14": 107349540,
	"15": 102531392,
	"16": 90354753,
	"17": 81195210,
	"18": 78077248,
	"19": 59128983,
	"20": 63025520,
	"21": 48129895,
	"22": 51304566,
	"X":  155270560,
	"Y":  59373566,
	"M":  16571,
}

var humanChromosomeName = regexp.MustCompile(namePatternFromTable())

func namePatternFromTable() string {
	quoted := lo.Map(ValidListOfHumanChromosomes(), func(id string, _ int) string {
		return regexp.QuoteMeta(id)
	})
	return "^(" + strings.Join(quoted, "|") + ")$"
}

// ValidListOfHumanChromosomes returns a fresh copy of the table's keys
// in canonical order: 1..22, X, Y, M.
func ValidListOfHumanChromosomes() []string {
	humChroms := lo.Keys(grch37Lengths)
	sort.Slice(humChroms, func(i, j int) bool {
		return rank(humChroms[i]) < rank(humChroms[j])
	})
	return humChroms
}

// autosomes sort numerically, followed by X, Y then M
func rank(id string) int {
	if n, err := strconv.Atoi(id); err == nil {
		return n
	}
	switch id {
	case "X":
		return 100
	case "Y":
		return 101
	default:
		return 102
	}
}

func IsValidHumanChromosome(text string) bool {
	return humanChromosomeName.MatchString(text)
}

// Length returns the GRCh37 length of a canonical chromosome id.
func Length(id string) (int, bool) {
	length, ok := grch37Lengths[id]
	return length, ok
}

func Count() int {
	return len(grch37Lengths)
}
