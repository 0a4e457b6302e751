package pinyin

import "strings"

// Compare orders two Pīnyīn strings letter by letter and reports
// a negative, zero, or positive result in the usual comparator sense.
//
// The primary pass compares the case-folded strings, so case never outranks
// a real letter or tone difference ("a" sorts before "B" because a < b, not
// because of case). Only when the folded forms are identical does a second
// pass over the original strings break the tie, which puts lowercase before
// uppercase. Folding with strings.ToLower keeps tone marks intact
// (Ā becomes ā, never a).
//
// Compare is total: any two strings compare, valid Pīnyīn or not.
func Compare(a, b string) int {
	if c := compareRanks(strings.ToLower(a), strings.ToLower(b)); c != 0 {
		return c
	}
	return compareRanks(a, b)
}

// compareRanks compares two strings by the collation rank of each rune.
// The first differing rank decides; an exhausted shared prefix falls back
// to length, shorter first.
func compareRanks(a, b string) int {
	ra := []rune(a)
	rb := []rune(b)

	n := len(ra)
	if len(rb) < n {
		n = len(rb)
	}
	for i := 0; i < n; i++ {
		if d := Rank(ra[i]) - Rank(rb[i]); d != 0 {
			return d
		}
	}
	return len(ra) - len(rb)
}
