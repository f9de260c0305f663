// Package sandhi implements bidirectional Nepali sandhi: joining two
// morphemes into their fused surface form (Apply) and recovering the
// candidate morpheme pairs a fused word could have come from (Split).
package sandhi

import (
	"strings"

	"github.com/nepalinlp/orthography-engine/internal/script"
	engerr "github.com/nepalinlp/orthography-engine/pkg/errors"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

func sandhiRule(code string) types.Rule {
	return types.Rule{Source: types.SourceVarnaVinyas, Code: code}
}

// Apply joins first and second at their boundary. Families are tried in
// fixed order: visarga, consonant, vowel. When no rule fires the result
// is ErrNoRuleApplies; plain concatenation is not sandhi.
func Apply(first, second string) (*types.SandhiResult, error) {
	first = script.Normalize(first)
	second = script.Normalize(second)
	if first == "" || second == "" {
		return nil, engerr.New(engerr.ErrEmptyInput, "sandhi", "both morphemes required")
	}
	if r := applyVisarga(first, second); r != nil {
		return r, nil
	}
	if r := applyConsonant(first, second); r != nil {
		return r, nil
	}
	if r := applyVowel(first, second); r != nil {
		return r, nil
	}
	return nil, engerr.Newf(engerr.ErrNoRuleApplies, "sandhi", "%q + %q", first, second)
}

// applyVowel handles the vowel families. A bare final consonant carries
// an inherent अ, so morphemes like प्र and अप participate in the अ/आ
// rules with the consonant kept and the result matra appended.
func applyVowel(first, second string) *types.SandhiResult {
	firstRunes := []rune(first)
	secondRunes := []rune(second)
	last := firstRunes[len(firstRunes)-1]
	inherent := false
	if script.IsVyanjan(last) {
		last = 'अ'
		inherent = true
	}
	fos := secondRunes[0]
	prefix := string(firstRunes[:len(firstRunes)-1])
	rest := string(secondRunes[1:])

	isIClass := last == 'इ' || last == 'ई' || last == 'ि' || last == 'ी'
	isUClass := last == 'उ' || last == 'ऊ' || last == 'ु' || last == 'ू'
	isAClass := last == 'अ' || last == 'आ' || last == 'ा'

	// दीर्घ before यण्: same-class vowels lengthen instead of gliding
	if isIClass && (fos == 'इ' || fos == 'ई') {
		return &types.SandhiResult{
			Surface: joinLengthened(prefix, 'ई', 'ी', rest),
			Type:    types.SandhiDirgha,
			Rule:    sandhiRule("दीर्घ: इ/ई + इ/ई → ई"),
		}
	}
	if isUClass && (fos == 'उ' || fos == 'ऊ') {
		return &types.SandhiResult{
			Surface: joinLengthened(prefix, 'ऊ', 'ू', rest),
			Type:    types.SandhiDirgha,
			Rule:    sandhiRule("दीर्घ: उ/ऊ + उ/ऊ → ऊ"),
		}
	}

	if isIClass && script.IsSvar(fos) {
		return &types.SandhiResult{
			Surface: joinGlide(prefix, last, "य", fos, rest),
			Type:    types.SandhiYan,
			Rule:    sandhiRule("यण्: इ/ई + स्वर → य"),
		}
	}
	if isUClass && script.IsSvar(fos) {
		return &types.SandhiResult{
			Surface: joinGlide(prefix, last, "व", fos, rest),
			Type:    types.SandhiYan,
			Rule:    sandhiRule("यण्: उ/ऊ + स्वर → व"),
		}
	}

	if isAClass {
		switch {
		case fos == 'अ' || fos == 'आ':
			return &types.SandhiResult{
				Surface: emitA(first, prefix, inherent, rest, "आ", "ा"),
				Type:    types.SandhiDirgha,
				Rule:    sandhiRule("दीर्घ: अ/आ + अ/आ → आ"),
			}
		case fos == 'इ' || fos == 'ई':
			return &types.SandhiResult{
				Surface: emitA(first, prefix, inherent, rest, "ए", "े"),
				Type:    types.SandhiGuna,
				Rule:    sandhiRule("गुण: अ/आ + इ/ई → ए"),
			}
		case fos == 'उ' || fos == 'ऊ':
			return &types.SandhiResult{
				Surface: emitA(first, prefix, inherent, rest, "ओ", "ो"),
				Type:    types.SandhiGuna,
				Rule:    sandhiRule("गुण: अ/आ + उ/ऊ → ओ"),
			}
		case fos == 'ऋ':
			return &types.SandhiResult{
				Surface: emitA(first, prefix, inherent, rest, "अर्", "र्"),
				Type:    types.SandhiGuna,
				Rule:    sandhiRule("गुण: अ/आ + ऋ → अर्"),
			}
		case fos == 'ए' || fos == 'ऐ':
			return &types.SandhiResult{
				Surface: emitA(first, prefix, inherent, rest, "ऐ", "ै"),
				Type:    types.SandhiVriddhi,
				Rule:    sandhiRule("वृद्धि: अ/आ + ए/ऐ → ऐ"),
			}
		case fos == 'ओ' || fos == 'औ':
			return &types.SandhiResult{
				Surface: emitA(first, prefix, inherent, rest, "औ", "ौ"),
				Type:    types.SandhiVriddhi,
				Rule:    sandhiRule("वृद्धि: अ/आ + ओ/औ → औ"),
			}
		}
	}

	if (last == 'ए' || last == 'े') && script.IsSvar(fos) {
		return &types.SandhiResult{
			Surface: prefix + "य" + glideTail(fos, rest),
			Type:    types.SandhiAyadi,
			Rule:    sandhiRule("अयादि: ए + स्वर → अय्"),
		}
	}
	if (last == 'ऐ' || last == 'ै') && script.IsSvar(fos) {
		return &types.SandhiResult{
			Surface: prefix + "ाय" + glideTail(fos, rest),
			Type:    types.SandhiAyadi,
			Rule:    sandhiRule("अयादि: ऐ + स्वर → आय्"),
		}
	}
	if (last == 'ओ' || last == 'ो') && script.IsSvar(fos) {
		return &types.SandhiResult{
			Surface: prefix + "व" + glideTail(fos, rest),
			Type:    types.SandhiAyadi,
			Rule:    sandhiRule("अयादि: ओ + स्वर → अव्"),
		}
	}
	if (last == 'औ' || last == 'ौ') && script.IsSvar(fos) {
		return &types.SandhiResult{
			Surface: prefix + "ाव" + glideTail(fos, rest),
			Type:    types.SandhiAyadi,
			Rule:    sandhiRule("अयादि: औ + स्वर → आव्"),
		}
	}
	return nil
}

// joinLengthened writes the fused long vowel: independent form at a
// word-initial or post-vowel position, matra after a consonant.
func joinLengthened(prefix string, svar, matra rune, rest string) string {
	if prefix == "" {
		return string(svar) + rest
	}
	prefixRunes := []rune(prefix)
	if script.IsSvar(prefixRunes[len(prefixRunes)-1]) {
		return prefix + string(svar) + rest
	}
	return prefix + string(matra) + rest
}

// joinGlide writes the यण् output. When the final vowel was a matra the
// glide joins the preceding consonant as a conjunct (्य/्व). The second
// morpheme's initial vowel rides on the glide: अ as its inherent vowel,
// anything else as a matra.
func joinGlide(prefix string, last rune, glide string, fos rune, rest string) string {
	tail := glideTail(fos, rest)
	if script.IsMatra(last) {
		return prefix + string(script.Halanta) + glide + tail
	}
	return prefix + glide + tail
}

func glideTail(fos rune, rest string) string {
	if fos == 'अ' {
		return rest
	}
	if m, ok := script.MatraFor(fos); ok {
		return string(m) + rest
	}
	return string(fos) + rest
}

// emitA writes the अ/आ-class output for explicit and inherent endings.
func emitA(first, prefix string, inherent bool, rest, fullVowel, matra string) string {
	if inherent {
		return first + matra + rest
	}
	if prefix == "" {
		return fullVowel + rest
	}
	return prefix + matra + rest
}

// applyVisarga handles the visarga family.
func applyVisarga(first, second string) *types.SandhiResult {
	if !strings.HasSuffix(first, string(script.Visarga)) {
		return nil
	}
	prefix := strings.TrimSuffix(first, string(script.Visarga))
	secondRunes := []rune(second)
	fos := secondRunes[0]

	switch fos {
	case 'स', 'श', 'ष', 'क', 'ख', 'प', 'फ':
		return &types.SandhiResult{
			Surface: first + second,
			Type:    types.SandhiVisarga,
			Rule:    sandhiRule("विसर्ग: अघोष अगाडि यथावत्"),
		}
	}

	if script.IsSvar(fos) {
		rest := string(secondRunes[1:])
		ra := "र"
		if fos != 'अ' {
			if m, ok := script.MatraFor(fos); ok {
				ra = "र" + string(m)
			} else {
				ra = "र" + string(fos)
			}
		}
		return &types.SandhiResult{
			Surface: prefix + ra + rest,
			Type:    types.SandhiVisarga,
			Rule:    sandhiRule("विसर्ग: स्वर अगाडि → र"),
		}
	}

	if isVoicedConsonant(fos) {
		prefixRunes := []rune(prefix)
		lastOfPrefix := prefixRunes[len(prefixRunes)-1]
		implicitA := !script.IsMatra(lastOfPrefix) && !script.IsSvar(lastOfPrefix) &&
			lastOfPrefix != script.Halanta
		punarAntar := prefix == "पुन" || prefix == "अन्त"
		if implicitA && !punarAntar {
			return &types.SandhiResult{
				Surface: prefix + "ो" + second,
				Type:    types.SandhiVisarga,
				Rule:    sandhiRule("विसर्ग: अः + घोष वर्ण → ओ"),
			}
		}
		return &types.SandhiResult{
			Surface: prefix + "र" + second,
			Type:    types.SandhiVisarga,
			Rule:    sandhiRule("विसर्ग: घोष वर्ण अगाडि → र"),
		}
	}
	return nil
}

func isVoicedConsonant(r rune) bool {
	switch r {
	case 'ग', 'घ', 'ङ', 'ज', 'झ', 'ञ', 'ड', 'ढ', 'ण',
		'द', 'ध', 'न', 'ब', 'भ', 'म', 'य', 'र', 'ल', 'व', 'ह':
		return true
	}
	return false
}

// assimilations holds the prefix-junction consonant patterns.
var assimilations = []struct {
	first   string
	lead    string
	merged  string
	rule    string
}{
	{"उत्", "ल", "उल्ल", "व्यञ्जन: उत् + ल → उल्ल"},
	{"उत्", "च", "उच्च", "व्यञ्जन: उत् + च → उच्च"},
	{"उत्", "न", "उन्न", "व्यञ्जन: उत् + न → उन्न"},
	{"उत्", "स", "उत्स", "व्यञ्जन: उत् + स → उत्स"},
	{"उत्", "थ", "उत्थ", "व्यञ्जन: उत् + थ → उत्थ"},
	{"उत्", "प", "उत्प", "व्यञ्जन: उत् + प → उत्प"},
	{"सम्", "क", "सङ्क", "व्यञ्जन: सम् + क → सङ्क"},
}

// applyConsonant handles prefix assimilation and gemination.
func applyConsonant(first, second string) *types.SandhiResult {
	for _, a := range assimilations {
		if first == a.first && strings.HasPrefix(second, a.lead) {
			return &types.SandhiResult{
				Surface: a.merged + strings.TrimPrefix(second, a.lead),
				Type:    types.SandhiConsonant,
				Rule:    sandhiRule(a.rule),
			}
		}
	}
	if strings.HasSuffix(first, string(script.Halanta)) {
		firstRunes := []rune(first)
		if len(firstRunes) >= 2 {
			base := firstRunes[len(firstRunes)-2]
			secondRunes := []rune(second)
			if len(secondRunes) > 0 && secondRunes[0] == base {
				prefix := string(firstRunes[:len(firstRunes)-2])
				return &types.SandhiResult{
					Surface: prefix + string(base) + string(script.Halanta) + second,
					Type:    types.SandhiConsonant,
					Rule:    sandhiRule("व्यञ्जन: समान वर्ण द्वित्व"),
				}
			}
		}
	}
	return nil
}
