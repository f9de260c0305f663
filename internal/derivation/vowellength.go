package derivation

import (
	"strings"

	"github.com/nepalinlp/orthography-engine/internal/morph"
	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

var vowelLengthRules = []patternRule{
	{
		spec: Spec{
			ID:       "vowel-suffix-nu",
			Category: types.CategoryVowelLength,
			Kind:     types.KindError,
			Rule:     varnaVinyas("३(क)-प्रत्यय-नु"),
			Examples: [][2]string{{"स्वीकार्नु", "स्विकार्नु"}},
		},
		apply: applySuffixNuHrasva,
	},
	{
		spec: Spec{
			ID:       "vowel-suffix-eli",
			Category: types.CategoryVowelLength,
			Kind:     types.KindError,
			Rule:     varnaVinyas("३(क)-प्रत्यय-एली"),
			Examples: [][2]string{{"पूर्वेली", "पुर्वेली"}},
		},
		apply: applySuffixEliHrasva,
	},
	{
		spec: Spec{
			ID:       "vowel-suffix-preserves",
			Category: types.CategoryVowelLength,
			Kind:     types.KindError,
			Rule:     varnaVinyas("३(क)(उ)"),
			Examples: [][2]string{{"पुर्वी", "पूर्वी"}},
		},
		apply: applySuffixPreservesDirgha,
	},
	{
		spec: Spec{
			ID:          "vowel-tadbhav-hrasva",
			Category:    types.CategoryVowelLength,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(क)-१२"),
			OriginGated: true,
			Examples:    [][2]string{{"मीठो", "मिठो"}},
		},
		apply: applyTadbhavHrasva,
	},
	{
		spec: Spec{
			ID:          "vowel-dirgha-endings",
			Category:    types.CategoryVowelLength,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(ई)"),
			OriginGated: true,
			Examples:    [][2]string{{"भनि", "भनी"}, {"गरि", "गरी"}},
		},
		apply: applyDirghaEndings,
	},
	{
		spec: Spec{
			ID:          "vowel-kinship",
			Category:    types.CategoryVowelLength,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(क)(इ)-१"),
			OriginGated: true,
			Examples:    [][2]string{{"दाजू", "दाजु"}, {"भाउजु", "भाउजू"}},
		},
		apply: applyKinshipLength,
	},
	{
		spec: Spec{
			ID:          "vowel-final-dirgha",
			Category:    types.CategoryVowelLength,
			Kind:        types.KindError,
			Rule:        varnaVinyas("३(क)(ई)"),
			OriginGated: true,
			Examples:    [][2]string{{"नेपालि", "नेपाली"}},
		},
		apply: applyFinalDirgha,
	},
}

// The -नु infinitive shortens the last दीर्घ ई of the stem.
func applySuffixNuHrasva(_ *Engine, word string) (string, types.Step, bool) {
	if !strings.HasSuffix(word, "नु") {
		return "", types.Step{}, false
	}
	idx := strings.LastIndex(word, "नु")
	if k := strings.LastIndex(word, "कार्नु"); k >= 0 {
		idx = k
	}
	p := strings.LastIndex(word[:idx], "ी")
	if p < 0 {
		return "", types.Step{}, false
	}
	out := word[:p] + "ि" + word[p+len("ी"):]
	return out, step(varnaVinyas("३(क)-प्रत्यय-नु"), word, out,
		"-नु प्रत्ययले धातुको स्वर ह्रस्व हुन्छ"), true
}

// The -एली suffix shortens the last दीर्घ ऊ of the stem.
func applySuffixEliHrasva(_ *Engine, word string) (string, types.Step, bool) {
	if !strings.HasSuffix(word, "ेली") && !strings.HasSuffix(word, "एली") {
		return "", types.Step{}, false
	}
	idx := strings.LastIndex(word, "ेली")
	if idx < 0 {
		return "", types.Step{}, false
	}
	p := strings.LastIndex(word[:idx], "ू")
	if p < 0 {
		return "", types.Step{}, false
	}
	out := word[:p] + "ु" + word[p+len("ू"):]
	return out, step(varnaVinyas("३(क)-प्रत्यय-एली"), word, out,
		"-एली प्रत्ययले धातुको स्वर ह्रस्व हुन्छ"), true
}

// Stems that keep their दीर्घ under -ई/-ईय. Exact forms only, to avoid
// flagging unrelated words.
var dirghaPreservingStems = [][2]string{
	{"पुर्वी", "पूर्वी"},
	{"पुर्वीय", "पूर्वीय"},
}

func applySuffixPreservesDirgha(_ *Engine, word string) (string, types.Step, bool) {
	for _, pair := range dirghaPreservingStems {
		if word == pair[0] {
			return pair[1], step(varnaVinyas("३(क)(उ)"), word, pair[1],
				"-ई/-ईय प्रत्ययमा मूलको दीर्घ कायम रहन्छ"), true
		}
	}
	return "", types.Step{}, false
}

func hasTatsamSuffix(word string) bool {
	return strings.HasSuffix(word, "ीकरण") ||
		strings.HasSuffix(word, "ीकृत") ||
		strings.HasSuffix(word, "ीकार") ||
		strings.HasSuffix(word, "ीय") ||
		strings.HasSuffix(word, "ीन")
}

func isFeminineDirghaPattern(word string) bool {
	return strings.HasSuffix(word, "नी") || strings.HasSuffix(word, "डी") ||
		strings.HasSuffix(word, "ती") || strings.HasSuffix(word, "ली")
}

var kinshipBases = []string{
	"दिदी", "बहिनी", "भाउजू", "फुपू", "सासू", "जेठानी", "कान्छी", "बुहारी", "मितिनी",
}

func isKinshipDirghaPattern(word string) bool {
	for _, base := range kinshipBases {
		if strings.HasPrefix(word, base) {
			return true
		}
	}
	return false
}

// Non-tatsam words take ह्रस्व in initial and medial positions. The
// rewritten form must be lexicon-attested; compounds with legitimate
// दीर्घ stems stay untouched.
func applyTadbhavHrasva(e *Engine, word string) (string, types.Step, bool) {
	if morph.Classify(e.lex, word) == types.OriginTatsam {
		return "", types.Step{}, false
	}
	if isFeminineDirghaPattern(word) || isKinshipDirghaPattern(word) || hasTatsamSuffix(word) {
		return "", types.Step{}, false
	}

	runes := []rune(word)
	if len(runes) < 2 {
		return "", types.Step{}, false
	}
	changed := false
	for i := 0; i < len(runes)-1; i++ {
		switch runes[i] {
		case 'ी':
			runes[i] = 'ि'
			changed = true
		case 'ू':
			runes[i] = 'ु'
			changed = true
		case 'ई':
			runes[i] = 'इ'
			changed = true
		case 'ऊ':
			runes[i] = 'उ'
			changed = true
		}
	}
	if !changed {
		return "", types.Step{}, false
	}
	out := string(runes)
	if !e.lex.Contains(out) {
		return "", types.Step{}, false
	}
	return out, step(varnaVinyas("३(क)-१२"), word, out,
		"तद्भव/देशज शब्दमा ह्रस्व स्वर प्रयोग हुन्छ"), true
}

// Feminine suffixes and नामयोगी words that must end in दीर्घ ई.
var dirghaIIEndings = []string{"नी", "डी", "सानी"}

var dirghaIIWords = []string{"अगाडी", "पछाडी", "माथी", "तली"}

func applyDirghaEndings(e *Engine, word string) (string, types.Step, bool) {
	if morph.Classify(e.lex, word) == types.OriginTatsam {
		return "", types.Step{}, false
	}
	runes := []rune(word)
	if len(runes) == 0 || runes[len(runes)-1] != 'ि' {
		return "", types.Step{}, false
	}

	// Short verb-like forms ending in -ि are असमापक क्रिया and take -ी.
	if n := len(runes); n >= 2 && n <= 4 && script.IsVyanjan(runes[n-2]) {
		runes[n-1] = 'ी'
		out := string(runes)
		return out, step(varnaVinyas("३(ई)"), word, out,
			"असमापक क्रियाको अन्त्यमा दीर्घ ई हुन्छ"), true
	}

	for _, ending := range dirghaIIEndings {
		hrasva := strings.ReplaceAll(ending, "ी", "ि")
		if strings.HasSuffix(word, hrasva) {
			out := strings.TrimSuffix(word, hrasva) + ending
			return out, step(varnaVinyas("३(ई)"), word, out,
				"स्त्रीलिङ्गी/विशेषण शब्दमा अन्तिम दीर्घ ई"), true
		}
	}
	for _, correct := range dirghaIIWords {
		if word == strings.ReplaceAll(correct, "ी", "ि") {
			return correct, step(varnaVinyas("३(ई)"), word, correct,
				"नामयोगी/अव्यय शब्दमा दीर्घ ई"), true
		}
	}
	return "", types.Step{}, false
}

// Masculine kinship terms end in ह्रस्व, feminine in दीर्घ.
var masculineKinship = [][2]string{
	{"दाजू", "दाजु"},
	{"बाबू", "बाबु"},
	{"भिनाजू", "भिनाजु"},
	{"साहू", "साहु"},
}

var feminineKinship = [][2]string{
	{"भाउजु", "भाउजू"},
	{"फुपु", "फुपू"},
	{"सासु", "सासू"},
	{"बुहारि", "बुहारी"},
	{"जेठानि", "जेठानी"},
	{"कान्छि", "कान्छी"},
}

func applyKinshipLength(e *Engine, word string) (string, types.Step, bool) {
	origin := morph.Classify(e.lex, word)
	if origin != types.OriginTadbhav && origin != types.OriginDeshaj {
		return "", types.Step{}, false
	}
	for _, pair := range masculineKinship {
		if word == pair[0] {
			return pair[1], step(varnaVinyas("३(क)(इ)-१"), word, pair[1],
				"पुलिङ्ग नातागोता शब्दमा ह्रस्व"), true
		}
	}
	for _, pair := range feminineKinship {
		if word == pair[0] {
			return pair[1], step(varnaVinyas("३(ई)"), word, pair[1],
				"स्त्रीलिङ्ग नातागोता शब्दमा दीर्घ"), true
		}
	}
	return "", types.Step{}, false
}

// Lexicon-backed word-final ह्रस्व→दीर्घ correction: fires only when the
// ह्रस्व form is unattested and the दीर्घ form is a known headword.
func applyFinalDirgha(e *Engine, word string) (string, types.Step, bool) {
	if morph.Classify(e.lex, word) == types.OriginTatsam {
		return "", types.Step{}, false
	}
	runes := []rune(word)
	if len(runes) == 0 {
		return "", types.Step{}, false
	}
	last := runes[len(runes)-1]
	if last != 'ि' && last != 'ु' {
		return "", types.Step{}, false
	}
	if e.lex.Contains(word) {
		return "", types.Step{}, false
	}
	dirgha, ok := script.ToDirgha(last)
	if !ok {
		return "", types.Step{}, false
	}
	runes[len(runes)-1] = dirgha
	out := string(runes)
	if !e.lex.Contains(out) {
		return "", types.Step{}, false
	}
	code := "३(क)(ई)"
	if last == 'ु' {
		code = "३(क)(ऊ)"
	}
	return out, step(varnaVinyas(code), word, out,
		"शब्दान्त्यमा दीर्घ आवश्यक, शब्दकोश प्रमाणित"), true
}
