package script

import "strings"

// Akshara is one orthographic syllable: an optional conjunct onset, a
// nucleus vowel or matra, and optional nasal or visarga coda signs.
type Akshara struct {
	Text string
}

// HasMatra reports whether the akshara carries an explicit matra.
func (a Akshara) HasMatra() bool {
	for _, r := range a.Text {
		if IsMatra(r) {
			return true
		}
	}
	return false
}

// EndsHalanta reports whether the akshara ends in a bare virama.
func (a Akshara) EndsHalanta() bool {
	return strings.HasSuffix(a.Text, string(Halanta))
}

// SplitAksharas segments a word into aksharas. The segmentation is
// lossless: concatenating the returned aksharas reproduces the input.
// Conjunct chains (consonant + halanta + consonant...) stay in one
// akshara, as does a word-final halanta.
func SplitAksharas(word string) []Akshara {
	runes := []rune(word)
	var out []Akshara
	i := 0
	for i < len(runes) {
		start := i
		switch {
		case IsVyanjan(runes[i]):
			i++
			if i < len(runes) && runes[i] == Nukta {
				i++
			}
			for i+1 < len(runes) && runes[i] == Halanta && IsVyanjan(runes[i+1]) {
				i += 2
				if i < len(runes) && runes[i] == Nukta {
					i++
				}
			}
			if i < len(runes) && runes[i] == Halanta {
				i++
			} else if i < len(runes) && IsMatra(runes[i]) {
				i++
			}
			i = absorbCoda(runes, i)
		case IsSvar(runes[i]):
			i++
			i = absorbCoda(runes, i)
		default:
			i++
		}
		out = append(out, Akshara{Text: string(runes[start:i])})
	}
	return out
}

func absorbCoda(runes []rune, i int) int {
	for i < len(runes) {
		switch runes[i] {
		case Chandrabindu, Shirbindu, Visarga:
			i++
		default:
			return i
		}
	}
	return i
}

// AksharaCount returns the number of aksharas in word.
func AksharaCount(word string) int {
	return len(SplitAksharas(word))
}
