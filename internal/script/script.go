// Package script provides the Devanagari character model for the
// engine. It classifies runes, groups consonants by articulation class,
// maps between short and long vowels and between independent vowels and
// their dependent matra forms, and segments words into aksharas.
package script

// Combining and sign runes referenced throughout the engine.
const (
	Chandrabindu rune = 'ँ' // ँ
	Shirbindu    rune = 'ं' // ं (anusvara)
	Visarga      rune = 'ः' // ः
	Nukta        rune = '़' // ़
	Avagraha     rune = 'ऽ' // ऽ
	Halanta      rune = '्' // ् (virama)
	Danda        rune = '।' // ।
	DoubleDanda  rune = '॥' // ॥
)

// CharType classifies a single Devanagari rune.
type CharType uint8

const (
	CharOther CharType = iota
	CharSvar           // independent vowel
	CharVyanjan        // consonant
	CharMatra          // dependent vowel sign
	CharHalanta
	CharChandrabindu
	CharShirbindu
	CharVisarga
	CharNukta
	CharAvagraha
	CharNumeral
	CharDanda
)

// Classify returns the CharType of r. Runes outside the Devanagari
// block classify as CharOther.
func Classify(r rune) CharType {
	switch {
	case r == Halanta:
		return CharHalanta
	case r == Chandrabindu:
		return CharChandrabindu
	case r == Shirbindu:
		return CharShirbindu
	case r == Visarga:
		return CharVisarga
	case r == Nukta:
		return CharNukta
	case r == Avagraha:
		return CharAvagraha
	case r == Danda || r == DoubleDanda:
		return CharDanda
	case r >= '०' && r <= '९':
		return CharNumeral
	case IsSvar(r):
		return CharSvar
	case IsVyanjan(r):
		return CharVyanjan
	case IsMatra(r):
		return CharMatra
	default:
		return CharOther
	}
}

// IsDevanagari reports whether r falls in the Devanagari block.
func IsDevanagari(r rune) bool {
	return r >= 'ऀ' && r <= 'ॿ'
}

// ContainsDevanagari reports whether s has at least one Devanagari rune.
func ContainsDevanagari(s string) bool {
	for _, r := range s {
		if IsDevanagari(r) {
			return true
		}
	}
	return false
}

// IsSvar reports whether r is an independent vowel.
func IsSvar(r rune) bool {
	return (r >= 'ऄ' && r <= 'औ') || r == 'ॠ' || r == 'ॡ'
}

// IsVyanjan reports whether r is a consonant, including the nukta
// precomposed forms क़..य़.
func IsVyanjan(r rune) bool {
	return (r >= 'क' && r <= 'ह') || (r >= 'क़' && r <= 'य़')
}

// IsMatra reports whether r is a dependent vowel sign.
func IsMatra(r rune) bool {
	return (r >= 'ा' && r <= 'ौ') || r == 'ॢ' || r == 'ॣ'
}

// HasNukta reports whether the word carries a nukta, either combining
// or precomposed. Nukta consonants only occur in borrowed words.
func HasNukta(s string) bool {
	for _, r := range s {
		if r == Nukta || (r >= 'क़' && r <= 'य़') {
			return true
		}
	}
	return false
}

// Varga is the articulation class of a consonant.
type Varga uint8

const (
	VargaNone     Varga = iota
	VargaKa             // velar: क ख ग घ ङ
	VargaCha            // palatal: च छ ज झ ञ
	VargaTa             // retroflex: ट ठ ड ढ ण
	VargaTaDental       // dental: त थ द ध न
	VargaPa             // labial: प फ ब भ म
	VargaAntastha       // semivowels: य र ल व
	VargaUshma          // sibilants and ह: श ष स ह
)

// VargaOf returns the articulation class of a consonant, or VargaNone
// for anything else.
func VargaOf(r rune) Varga {
	switch {
	case r >= 'क' && r <= 'ङ':
		return VargaKa
	case r >= 'च' && r <= 'ञ':
		return VargaCha
	case r >= 'ट' && r <= 'ण':
		return VargaTa
	case r >= 'त' && r <= 'न':
		return VargaTaDental
	case r >= 'प' && r <= 'म':
		return VargaPa
	case r >= 'य' && r <= 'व':
		return VargaAntastha
	case r >= 'श' && r <= 'ह':
		return VargaUshma
	default:
		return VargaNone
	}
}

var panchhamByVarga = map[Varga]rune{
	VargaKa:       'ङ',
	VargaCha:      'ञ',
	VargaTa:       'ण',
	VargaTaDental: 'न',
	VargaPa:       'म',
}

// PanchhamOf returns the nasal (fifth) consonant of the varga r belongs
// to. ok is false for semivowels, sibilants, and non-consonants.
func PanchhamOf(r rune) (rune, bool) {
	p, ok := panchhamByVarga[VargaOf(r)]
	return p, ok
}

// IsPanchham reports whether r is one of the five nasal consonants.
func IsPanchham(r rune) bool {
	switch r {
	case 'ङ', 'ञ', 'ण', 'न', 'म':
		return true
	}
	return false
}

// IsStop reports whether r is a non-nasal stop consonant, i.e. one of
// the first four members of the five stop vargas. The nasalization
// rules keep shirbindu only in front of these.
func IsStop(r rune) bool {
	v := VargaOf(r)
	switch v {
	case VargaKa, VargaCha, VargaTa, VargaTaDental, VargaPa:
		return !IsPanchham(r)
	}
	return false
}
