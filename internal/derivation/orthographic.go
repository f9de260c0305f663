package derivation

import (
	"strings"

	"github.com/nepalinlp/orthography-engine/internal/morph"
	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

var orthographicRules = []patternRule{
	{
		spec: Spec{
			ID:          "ortho-chandrabindu",
			Category:    types.CategoryNasalization,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(ख)"),
			OriginGated: true,
			Examples:    [][2]string{{"सिँह", "सिंह"}, {"गरौं", "गरौँ"}},
		},
		apply: applyChandrabindu,
	},
	{
		spec: Spec{
			ID:          "ortho-sibilant",
			Category:    types.CategorySibilant,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(ग)(अ)"),
			OriginGated: true,
			Examples:    [][2]string{{"रजिष्टर", "रजिस्टर"}, {"खुषी", "खुसी"}},
		},
		apply: applySibilant,
	},
	{
		spec: Spec{
			ID:          "ortho-vocalic-r",
			Category:    types.CategoryVocalicR,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(ग)-ऋ"),
			OriginGated: true,
			Examples:    [][2]string{{"रिषि", "ऋषि"}, {"क्रितज्ञ", "कृतज्ञ"}},
		},
		apply: applyVocalicR,
	},
	{
		spec: Spec{
			ID:          "ortho-halanta",
			Category:    types.CategoryVirama,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(ङ)"),
			OriginGated: true,
			Examples:    [][2]string{{"बुद्धिमान", "बुद्धिमान्"}, {"गर्छस", "गर्छस्"}},
		},
		apply: applyHalanta,
	},
	{
		spec: Spec{
			ID:       "ortho-aadi-vriddhi",
			Category: types.CategoryVowelLength,
			Kind:     types.KindError,
			Rule:     varnaVinyas("३(क)-आदिवृद्धि"),
			Examples: [][2]string{{"अर्थिक", "आर्थिक"}, {"इतिहासिक", "ऐतिहासिक"}},
		},
		apply: applyAadiVriddhi,
	},
	{
		spec: Spec{
			ID:       "ortho-ya-e",
			Category: types.CategorySemivowel,
			Kind:     types.KindError,
			Rule:     varnaVinyas("३(इ)"),
			Examples: [][2]string{{"यकता", "एकता"}, {"एथार्थ", "यथार्थ"}},
		},
		apply: applyYaE,
	},
	{
		spec: Spec{
			ID:       "ortho-ksha-chhya",
			Category: types.CategoryConjunct,
			Kind:     types.KindError,
			Rule:     varnaVinyas("३(उ)"),
			Examples: [][2]string{{"छेत्र", "क्षेत्र"}, {"लछ्य", "लक्ष्य"}},
		},
		apply: applyKshaChhya,
	},
	{
		spec: Spec{
			ID:       "ortho-gya",
			Category: types.CategoryConjunct,
			Kind:     types.KindError,
			Rule:     varnaVinyas("३(ग)(ऊ)"),
			Examples: [][2]string{{"अग्यान", "अज्ञान"}, {"प्रग्या", "प्रज्ञा"}},
		},
		apply: applyGya,
	},
}

// Nasalization mark follows word origin: tatsam words write shirbindu,
// the rest write chandrabindu. Shirbindu before a stop consonant stays
// in every origin since it abbreviates the panchham varna there.
func applyChandrabindu(e *Engine, word string) (string, types.Step, bool) {
	dec := morph.ClassifyWithProvenance(e.lex, word)

	if dec.Origin == types.OriginTatsam {
		if !strings.ContainsRune(word, script.Chandrabindu) {
			return "", types.Step{}, false
		}
		out := strings.ReplaceAll(word, string(script.Chandrabindu), string(script.Shirbindu))
		return out, step(varnaVinyas("३(ख)"), word, out,
			"तत्सम शब्दमा शिरबिन्दु, चन्द्रबिन्दु होइन"), true
	}

	if !strings.ContainsRune(word, script.Shirbindu) {
		return "", types.Step{}, false
	}
	runes := []rune(word)
	changed := false
	for i, r := range runes {
		if r != script.Shirbindu {
			continue
		}
		if i+1 < len(runes) && script.IsStop(runes[i+1]) {
			continue
		}
		if !safeShirbinduSwap(e, runes, i, dec.Source) {
			continue
		}
		runes[i] = script.Chandrabindu
		changed = true
	}
	if !changed {
		return "", types.Step{}, false
	}
	out := string(runes)
	return out, step(varnaVinyas("३(ख)"), word, out,
		"तद्भव/देशज/आगन्तुक शब्दमा अनुनासिकका लागि चन्द्रबिन्दु"), true
}

// A heuristic-only origin decision is weak evidence, so the swap needs a
// second signal: a first-person verb ending, or a lexicon-attested
// chandrabindu form.
func safeShirbinduSwap(e *Engine, runes []rune, idx int, source types.OriginSource) bool {
	if source != types.OriginFromHeuristic {
		return true
	}
	if idx == len(runes)-1 && idx > 0 && (runes[idx-1] == 'े' || runes[idx-1] == 'ौ') {
		return true
	}
	candidate := make([]rune, len(runes))
	copy(candidate, runes)
	candidate[idx] = script.Chandrabindu
	return e.lex.Contains(string(candidate))
}

// Sibilant choice by origin: loanwords keep only dental स (and dental न),
// tadbhav drops the retroflex ष, tatsam preserves all three.
func applySibilant(e *Engine, word string) (string, types.Step, bool) {
	switch morph.Classify(e.lex, word) {
	case types.OriginAagantuk:
		if strings.ContainsRune(word, 'ष') {
			out := strings.ReplaceAll(word, "ष", "स")
			return out, step(varnaVinyas("३(ग)(अ)-९"), word, out,
				"आगन्तुक शब्दमा स मात्र प्रयोग हुन्छ"), true
		}
		if strings.ContainsRune(word, 'ण') {
			out := strings.ReplaceAll(word, "ण", "न")
			return out, step(varnaVinyas("३(ग)(अ)-९"), word, out,
				"आगन्तुक शब्दमा दन्त्य न प्रयोग हुन्छ"), true
		}
	case types.OriginTadbhav, types.OriginDeshaj:
		if strings.ContainsRune(word, 'ष') {
			out := strings.ReplaceAll(word, "ष", "स")
			return out, step(varnaVinyas("३(ग)(अ)-८"), word, out,
				"तद्भव शब्दमा मूर्धन्य ष हुँदैन"), true
		}
	}
	return "", types.Step{}, false
}

// Tatsam words spell the vocalic r with ऋ/ृ, never रि/क्रि.
func applyVocalicR(e *Engine, word string) (string, types.Step, bool) {
	if morph.Classify(e.lex, word) != types.OriginTatsam {
		return "", types.Step{}, false
	}
	if rest, ok := strings.CutPrefix(word, "रि"); ok {
		if strings.HasPrefix(rest, "ष") || strings.HasPrefix(rest, "त") {
			out := "ऋ" + rest
			return out, step(varnaVinyas("३(ग)-ऋ"), word, out,
				"तत्सम शब्दमा ऋ, रि होइन"), true
		}
	}
	if strings.Contains(word, "क्रि") {
		out := strings.ReplaceAll(word, "क्रि", "कृ")
		return out, step(varnaVinyas("३(ग)-कृ"), word, out,
			"तत्सम शब्दमा कृ, क्रि होइन"), true
	}
	return "", types.Step{}, false
}

var halantaVerbSuffixes = []struct {
	wrong, right, code string
}{
	{"छस", "छस्", "३(ङ)-२"},
	{"छन", "छन्", "३(ङ)-३"},
	{"इस", "इस्", "३(ङ)-२"},
}

var halantaTatsamSuffixes = []struct {
	wrong, right, code string
}{
	{"मान", "मान्", "३(ङ)-मान्"},
	{"वान", "वान्", "३(ङ)-वान्"},
	{"वत", "वत्", "३(ङ)-वत्"},
}

func applyHalanta(e *Engine, word string) (string, types.Step, bool) {
	// Finite verbs in …छ never end halanta.
	if stem, ok := strings.CutSuffix(word, "छ्"); ok {
		out := stem + "छ"
		if e.lex.Contains(out) && !e.lex.Contains(word) {
			return out, step(varnaVinyas("३(ङ)-अजन्त-५"), word, out,
				"समापक क्रियाको अन्त्यमा हलन्त लेखिँदैन"), true
		}
	}

	// Second-person disrespect and third-person plural endings carry
	// halanta. Lexicon-attested forms only.
	for _, s := range halantaVerbSuffixes {
		if stem, ok := strings.CutSuffix(word, s.wrong); ok {
			out := stem + s.right
			if e.lex.Contains(out) {
				return out, step(varnaVinyas(s.code), word, out,
					"क्रियापदको अन्त्यमा हलन्त"), true
			}
		}
	}

	if morph.Classify(e.lex, word) != types.OriginTatsam {
		return "", types.Step{}, false
	}
	for _, s := range halantaTatsamSuffixes {
		stem, ok := strings.CutSuffix(word, s.wrong)
		if !ok {
			continue
		}
		out := stem + s.right
		// A headword without an attested halanta form is a root noun
		// (सम्मान), not a suffixed one.
		if e.lex.Contains(word) && !e.lex.Contains(out) {
			return "", types.Step{}, false
		}
		return out, step(varnaVinyas(s.code), word, out,
			"तत्सम प्रत्ययको अन्त्यमा हलन्त"), true
	}
	return "", types.Step{}, false
}

// vriddhi strengthens the first vowel: अ→आ, इ/ई→ऐ, उ/ऊ→औ.
func vriddhi(runes []rune) []rune {
	for i, r := range runes {
		if script.IsSvar(r) {
			var v rune
			switch r {
			case 'अ':
				v = 'आ'
			case 'इ', 'ई':
				v = 'ऐ'
			case 'उ', 'ऊ':
				v = 'औ'
			default:
				return nil
			}
			out := append([]rune(nil), runes...)
			out[i] = v
			return out
		}
		if script.IsMatra(r) {
			var v rune
			switch r {
			case 'ि', 'ी':
				v = 'ै'
			case 'ु', 'ू':
				v = 'ौ'
			default:
				return nil
			}
			out := append([]rune(nil), runes...)
			out[i] = v
			return out
		}
		if script.IsVyanjan(r) {
			if i+1 < len(runes) && (script.IsMatra(runes[i+1]) || runes[i+1] == script.Halanta) {
				continue
			}
			// Inherent अ strengthens to आ, written as the ा matra.
			out := make([]rune, 0, len(runes)+1)
			out = append(out, runes[:i+1]...)
			out = append(out, 'ा')
			out = append(out, runes[i+1:]...)
			return out
		}
	}
	return nil
}

// The -इक suffix triggers vriddhi on the root's first vowel. The bare
// root must be lexicon-attested.
func applyAadiVriddhi(e *Engine, word string) (string, types.Step, bool) {
	runes := []rune(word)
	n := len(runes)
	if n < 3 || runes[n-1] != 'क' || (runes[n-2] != 'ि' && runes[n-2] != 'इ') {
		return "", types.Step{}, false
	}
	root := string(runes[:n-2])
	if root == "" || !e.lex.Contains(root) {
		return "", types.Step{}, false
	}
	strengthened := vriddhi(runes)
	if strengthened == nil {
		return "", types.Step{}, false
	}
	out := string(strengthened)
	if out == word {
		return "", types.Step{}, false
	}
	return out, step(varnaVinyas("३(क)-आदिवृद्धि"), word, out,
		"-इक प्रत्ययमा प्रथम स्वरको वृद्धि हुन्छ"), true
}

// Word-initial ए and य are distinct; swap and accept only a
// lexicon-attested candidate.
func applyYaE(e *Engine, word string) (string, types.Step, bool) {
	runes := []rune(word)
	if len(runes) == 0 {
		return "", types.Step{}, false
	}
	var swap rune
	switch runes[0] {
	case 'ए':
		swap = 'य'
	case 'य':
		swap = 'ए'
	default:
		return "", types.Step{}, false
	}
	if e.lex.Contains(word) {
		return "", types.Step{}, false
	}
	runes[0] = swap
	out := string(runes)
	if !e.lex.Contains(out) {
		return "", types.Step{}, false
	}
	return out, step(varnaVinyas("३(इ)"), word, out,
		"शब्दादिमा ए र य फरक वर्ण हुन्"), true
}

// Longer patterns first so क्ष्य is not caught by the bare क्ष entry.
var kshaChhyaSubs = [][2]string{
	{"छ्य", "क्ष्य"},
	{"क्ष्य", "छ्य"},
	{"छे", "क्षे"},
	{"क्षे", "छे"},
	{"क्ष", "च्छ"},
	{"च्छ", "क्ष"},
	{"छ", "क्ष"},
	{"क्ष", "छ"},
}

// क्ष is tatsam-only, छ appears in every origin. Substitutions are
// lexicon-validated in both directions.
func applyKshaChhya(e *Engine, word string) (string, types.Step, bool) {
	if e.lex.Contains(word) {
		return "", types.Step{}, false
	}
	if !strings.Contains(word, "क्ष") && !strings.Contains(word, "छ") {
		return "", types.Step{}, false
	}
	for _, sub := range kshaChhyaSubs {
		if !strings.Contains(word, sub[0]) {
			continue
		}
		out := strings.ReplaceAll(word, sub[0], sub[1])
		if e.lex.Contains(out) {
			return out, step(varnaVinyas("३(उ)"), word, out,
				"क्ष/छ भेद: "+sub[0]+" होइन, "+sub[1]), true
		}
	}
	return "", types.Step{}, false
}

var gyaSubs = [][2]string{
	{"ग्याँ", "ज्ञा"},
	{"ग्या", "ज्ञा"},
}

// Tatsam words spell ज्ञ; ग्या/ग्याँ misspellings map back when the
// lexicon confirms the candidate.
func applyGya(e *Engine, word string) (string, types.Step, bool) {
	if e.lex.Contains(word) {
		return "", types.Step{}, false
	}
	if !strings.Contains(word, "ग्या") {
		return "", types.Step{}, false
	}
	for _, sub := range gyaSubs {
		if !strings.Contains(word, sub[0]) {
			continue
		}
		out := strings.ReplaceAll(word, sub[0], sub[1])
		if out != word && e.lex.Contains(out) {
			return out, step(varnaVinyas("३(ग)(ऊ)"), word, out,
				"तत्सम शब्दमा ज्ञ प्रयोग हुन्छ"), true
		}
	}
	return "", types.Step{}, false
}
