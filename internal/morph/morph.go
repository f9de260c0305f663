// Package morph classifies Nepali words by etymological origin and
// decomposes them into prefix, root, and suffix. Both operations are
// total: any input, including garbage, produces an answer.
package morph

import (
	"strings"

	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Classify returns the origin class of word. Precedence: curated
// override table, then the lexicon origin tag, then script heuristics.
// lex may be nil, in which case the lexicon stage is skipped.
func Classify(lex *lexicon.Lexicon, word string) types.Origin {
	return ClassifyWithProvenance(lex, word).Origin
}

// ClassifyWithProvenance is Classify with the deciding authority and a
// confidence attached.
func ClassifyWithProvenance(lex *lexicon.Lexicon, word string) types.OriginDecision {
	word = script.Normalize(strings.TrimSpace(word))
	if word == "" {
		return types.OriginDecision{Origin: types.OriginDeshaj, Source: types.OriginFromHeuristic, Confidence: 0}
	}
	if origin, ok := originOverrides[word]; ok {
		return types.OriginDecision{Origin: origin, Source: types.OriginFromOverride, Confidence: 1}
	}
	if lex != nil {
		if origin, ok := lex.OriginOf(word); ok && origin != types.OriginDeshaj {
			return types.OriginDecision{Origin: origin, Source: types.OriginFromLexicon, Confidence: 0.95}
		}
	}
	origin, confidence := heuristicOrigin(word)
	return types.OriginDecision{Origin: origin, Source: types.OriginFromHeuristic, Confidence: confidence}
}

// heuristicOrigin applies the script-shape rules in fixed order:
// nukta marks a borrowing, Sanskrit-only letters and conjuncts mark
// tatsam, verbal and adjectival endings mark tadbhav.
func heuristicOrigin(word string) (types.Origin, float64) {
	if script.HasNukta(word) {
		return types.OriginAagantuk, 0.9
	}
	for _, r := range word {
		switch r {
		case 'ऋ', 'ॠ', 'ृ', 'ॄ', 'ष', script.Visarga:
			return types.OriginTatsam, 0.8
		}
	}
	for _, conjunct := range []string{"क्ष", "ज्ञ", "त्र", "त्त"} {
		if strings.Contains(word, conjunct) {
			return types.OriginTatsam, 0.75
		}
	}
	for _, ending := range []string{"नु", "ने", "को"} {
		if strings.HasSuffix(word, ending) {
			return types.OriginTadbhav, 0.7
		}
	}
	for _, ending := range []string{"ठो", "डो", "ढो", "ठा", "डा", "ढा"} {
		if strings.HasSuffix(word, ending) {
			return types.OriginTadbhav, 0.65
		}
	}
	return types.OriginDeshaj, 0.5
}

// Decompose splits word into at most one prefix, a root, and at most
// one suffix. The prefix is reported in canonical form (उल्लिखित gives
// prefix उत्), the suffix as written. Words that fit no pattern come
// back whole in Root.
func Decompose(word string) types.Morpheme {
	word = script.Normalize(strings.TrimSpace(word))
	m := types.Morpheme{Root: word}
	if word == "" {
		return m
	}
	rest := word
	for _, pf := range prefixForms {
		if !strings.HasPrefix(rest, pf.surface) {
			continue
		}
		residue := rest[len(pf.surface):]
		min := 2
		if len([]rune(pf.surface)) <= 1 {
			min = 4
		}
		if len([]rune(residue)) < min {
			continue
		}
		m.Prefix = pf.canonical
		rest = residue
		break
	}
	minRoot := 1
	if m.Prefix != "" {
		minRoot = 4
	}
	for _, ss := range suffixSurfaces {
		surface := ss[1]
		if !strings.HasSuffix(rest, surface) {
			continue
		}
		residue := rest[:len(rest)-len(surface)]
		if len([]rune(residue)) < minRoot {
			continue
		}
		m.Suffix = surface
		rest = residue
		break
	}
	m.Root = rest
	return m
}
