package pinyin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlphabetRanksAreUnique(t *testing.T) {
	runes := []rune(Alphabet)
	require.Len(t, weights, len(runes), "alphabet contains a duplicate character")
	require.Equal(t, len(runes), offset)

	for i, r := range runes {
		assert.Equal(t, i, Rank(r), "rank of %q", string(r))
	}
}

func TestAlphabetLandmarks(t *testing.T) {
	// Digits come first.
	assert.Less(t, Rank('9'), Rank('a'))

	// Lowercase tone run, then the uppercase run, per base letter.
	assert.Less(t, Rank('à'), Rank('A'))
	assert.Less(t, Rank('À'), Rank('b'))

	// v sits between the u family and the ü family, ü before w.
	assert.Less(t, Rank('Ù'), Rank('v'))
	assert.Less(t, Rank('V'), Rank('ü'))
	assert.Less(t, Rank('Ǜ'), Rank('w'))

	// Separators close the table: apostrophe < hyphen < space.
	assert.Less(t, Rank('Z'), Rank('\''))
	assert.Less(t, Rank('\''), Rank('-'))
	assert.Less(t, Rank('-'), Rank(' '))
}

func TestToneRunsWithinFamilies(t *testing.T) {
	families := [][]rune{
		{'a', 'ā', 'á', 'ǎ', 'à'},
		{'A', 'Ā', 'Á', 'Ǎ', 'À'},
		{'e', 'ē', 'é', 'ě', 'è'},
		{'i', 'ī', 'í', 'ǐ', 'ì'},
		{'o', 'ō', 'ó', 'ǒ', 'ò'},
		{'u', 'ū', 'ú', 'ǔ', 'ù'},
		{'U', 'Ū', 'Ú', 'Ǔ', 'Ù'},
		{'ü', 'ǖ', 'ǘ', 'ǚ', 'ǜ'},
		{'Ü', 'Ǖ', 'Ǘ', 'Ǚ', 'Ǜ'},
	}
	for _, fam := range families {
		for i := 1; i < len(fam); i++ {
			assert.Equal(t, Rank(fam[i-1])+1, Rank(fam[i]),
				"%q should immediately precede %q", string(fam[i-1]), string(fam[i]))
		}
	}
}

func TestRankOutsideAlphabet(t *testing.T) {
	// Out-of-table characters shift by the table size, so even NUL ranks
	// after the last separator.
	assert.Equal(t, int('中')+offset, Rank('中'))
	assert.Greater(t, Rank(rune(0)), Rank(' '))

	// Mutual order among unrecognized characters follows the code point.
	assert.Less(t, Rank('#'), Rank('$'))
	assert.Less(t, Rank('$'), Rank('©'))
	assert.Less(t, Rank('©'), Rank('中'))
	assert.Less(t, Rank('中'), Rank('文'))
}
