package derivation

import (
	"strings"

	"github.com/nepalinlp/orthography-engine/internal/morph"
	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

var structuralRules = []patternRule{
	{
		spec: Spec{
			ID:       "struct-shri",
			Category: types.CategoryConjunct,
			Kind:     types.KindError,
			Rule:     shuddhaAshuddha("दफा ४"),
			Examples: [][2]string{{"श्रृङ्गार", "शृङ्गार"}},
		},
		apply: applyShriCorrection,
	},
	{
		spec: Spec{
			ID:       "struct-redundant-suffix",
			Category: types.CategoryTableLookup,
			Kind:     types.KindError,
			Rule:     shuddhaAshuddha("दफा ४"),
			Examples: [][2]string{{"सौन्दर्यता", "सौन्दर्य"}, {"औचित्यता", "औचित्य"}},
		},
		apply: applyRedundantSuffix,
	},
	{
		spec: Spec{
			ID:          "struct-panchham",
			Category:    types.CategoryNasalization,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(ख)-पञ्चम"),
			OriginGated: true,
			Examples:    [][2]string{{"संघर्ष", "सङ्घर्ष"}},
		},
		apply: applyPanchhamVarna,
	},
}

// शृ is श + ृ; writing it श्रृ inserts a र that was never there.
func applyShriCorrection(_ *Engine, word string) (string, types.Step, bool) {
	if !strings.Contains(word, "श्रृ") {
		return "", types.Step{}, false
	}
	out := strings.ReplaceAll(word, "श्रृ", "शृ")
	return out, step(shuddhaAshuddha("दफा ४"), word, out, "श + ृ = शृ, र रहित रूप"), true
}

// Abstract nouns in -र्य/-त्य/-थ्य are already complete; a trailing -ता
// doubles the nominalization.
func applyRedundantSuffix(_ *Engine, word string) (string, types.Step, bool) {
	if !strings.HasSuffix(word, "र्यता") && !strings.HasSuffix(word, "त्यता") && !strings.HasSuffix(word, "थ्यता") {
		return "", types.Step{}, false
	}
	out := strings.TrimSuffix(word, "ता")
	return out, step(shuddhaAshuddha("दफा ४"), word, out, "भाववाचक शब्दमा -ता प्रत्यय अनावश्यक"), true
}

// Tatsam words spell the nasal before a stop consonant with the varga's
// panchham letter, not with shirbindu.
func applyPanchhamVarna(e *Engine, word string) (string, types.Step, bool) {
	if morph.Classify(e.lex, word) != types.OriginTatsam {
		return "", types.Step{}, false
	}
	if !strings.ContainsRune(word, script.Shirbindu) {
		return "", types.Step{}, false
	}

	runes := []rune(word)
	out := make([]rune, 0, len(runes)+2)
	changed := false
	for i := 0; i < len(runes); i++ {
		if runes[i] == script.Shirbindu && i+1 < len(runes) {
			if p, ok := script.PanchhamOf(runes[i+1]); ok {
				out = append(out, p, script.Halanta)
				changed = true
				continue
			}
		}
		out = append(out, runes[i])
	}
	if !changed {
		return "", types.Step{}, false
	}
	result := string(out)
	return result, step(varnaVinyas("३(ख)-पञ्चम"), word, result,
		"तत्सम शब्दमा स्पर्श व्यञ्जन अघि पञ्चम वर्ण"), true
}
