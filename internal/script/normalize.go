package script

import "golang.org/x/text/unicode/norm"

// Normalize brings s into NFC so that decomposed sequences (consonant +
// combining nukta, vowel + length sign) compare equal to their composed
// forms. Every public entry point normalizes before analysis.
func Normalize(s string) string {
	if norm.NFC.IsNormalString(s) {
		return s
	}
	return norm.NFC.String(s)
}
