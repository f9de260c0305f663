package script

// hrasva (short) to dirgha (long) independent vowels.
var hrasvaToDirghaSvar = map[rune]rune{
	'अ': 'आ',
	'इ': 'ई',
	'उ': 'ऊ',
	'ऋ': 'ॠ',
}

var dirghaToHrasvaSvar = map[rune]rune{
	'आ': 'अ',
	'ई': 'इ',
	'ऊ': 'उ',
	'ॠ': 'ऋ',
}

// hrasva to dirgha matras. Only ि and ु have length pairs.
var hrasvaToDirghaMatra = map[rune]rune{
	'ि': 'ी',
	'ु': 'ू',
}

var dirghaToHrasvaMatra = map[rune]rune{
	'ी': 'ि',
	'ू': 'ु',
}

var svarToMatra = map[rune]rune{
	'आ': 'ा',
	'इ': 'ि',
	'ई': 'ी',
	'उ': 'ु',
	'ऊ': 'ू',
	'ऋ': 'ृ',
	'ॠ': 'ॄ',
	'ए': 'े',
	'ऐ': 'ै',
	'ओ': 'ो',
	'औ': 'ौ',
}

var matraToSvar = map[rune]rune{
	'ा': 'आ',
	'ि': 'इ',
	'ी': 'ई',
	'ु': 'उ',
	'ू': 'ऊ',
	'ृ': 'ऋ',
	'ॄ': 'ॠ',
	'े': 'ए',
	'ै': 'ऐ',
	'ो': 'ओ',
	'ौ': 'औ',
}

// ToDirgha lengthens a short vowel or matra. ok is false when r has no
// long counterpart.
func ToDirgha(r rune) (rune, bool) {
	if d, ok := hrasvaToDirghaSvar[r]; ok {
		return d, true
	}
	d, ok := hrasvaToDirghaMatra[r]
	return d, ok
}

// ToHrasva shortens a long vowel or matra.
func ToHrasva(r rune) (rune, bool) {
	if h, ok := dirghaToHrasvaSvar[r]; ok {
		return h, true
	}
	h, ok := dirghaToHrasvaMatra[r]
	return h, ok
}

// IsHrasva reports whether r is a short vowel or short matra.
func IsHrasva(r rune) bool {
	if _, ok := hrasvaToDirghaSvar[r]; ok {
		return true
	}
	_, ok := hrasvaToDirghaMatra[r]
	return ok
}

// IsDirgha reports whether r is a long vowel or long matra. The compound
// vowels ए ऐ ओ औ and their matras count as long.
func IsDirgha(r rune) bool {
	if _, ok := dirghaToHrasvaSvar[r]; ok {
		return true
	}
	if _, ok := dirghaToHrasvaMatra[r]; ok {
		return true
	}
	switch r {
	case 'ए', 'ऐ', 'ओ', 'औ', 'े', 'ै', 'ो', 'ौ':
		return true
	}
	return false
}

// MatraFor returns the dependent form of an independent vowel. अ has no
// matra (it is inherent in the consonant), so ok is false.
func MatraFor(svar rune) (rune, bool) {
	m, ok := svarToMatra[svar]
	return m, ok
}

// SvarFor returns the independent vowel a matra stands for.
func SvarFor(matra rune) (rune, bool) {
	s, ok := matraToSvar[matra]
	return s, ok
}
