package pinyin

// Collation alphabet for Hànyǔ Pīnyīn written with tone diacritics.
//
// A character's position in Alphabet is its collation rank. Tone-marked
// vowels are distinct letters of the alphabet, not decorated base letters:
// each vowel family runs bare, 1st tone (macron), 2nd (acute), 3rd (caron),
// 4th (grave), lowercase before uppercase. Consonants carry no tone marks.

// Alphabet lists every recognized character in rank order:
// digits, then the letter families a–z (with v before the ü family and
// ü before w), then the separators apostrophe < hyphen < space.
const Alphabet = "0123456789" +
	"aāáǎàAĀÁǍÀ" +
	"bB" + "cC" + "dD" +
	"eēéěèEĒÉĚÈ" +
	"fF" + "gG" + "hH" +
	"iīíǐìIĪÍǏÌ" +
	"jJ" + "kK" + "lL" + "mM" + "nN" +
	"oōóǒòOŌÓǑÒ" +
	"pP" + "qQ" + "rR" + "sS" + "tT" +
	"uūúǔùUŪÚǓÙ" +
	"vV" +
	"üǖǘǚǜÜǕǗǙǛ" +
	"wW" + "xX" + "yY" + "zZ" +
	"'- "

// weights maps each Alphabet character to its rank. Built once at init,
// read-only afterwards, so concurrent sorts can share it without locking.
var weights map[rune]int

// offset is the rank boundary for characters outside the alphabet.
var offset int

func init() {
	runes := []rune(Alphabet)
	weights = make(map[rune]int, len(runes))
	for i, r := range runes {
		weights[r] = i
	}
	offset = len(runes)
	if len(weights) != offset {
		panic("pinyin: duplicate character in collation alphabet")
	}
}

// Rank returns the collation rank of r. Characters in the alphabet get
// their table rank; any other character ranks by code point shifted past
// the end of the table, so unrecognized characters always sort after every
// recognized one. Rank is total and never fails.
func Rank(r rune) int {
	if w, ok := weights[r]; ok {
		return w
	}
	return int(r) + offset
}
