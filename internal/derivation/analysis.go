package derivation

import (
	"github.com/nepalinlp/orthography-engine/internal/morph"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// RuleNote cites one standard rule with an explanation of how it bears
// on the analyzed word.
type RuleNote struct {
	Rule        types.Rule `json:"rule"`
	Explanation string     `json:"explanation"`
}

// WordAnalysis is the explained verdict for a single word.
type WordAnalysis struct {
	Word             string             `json:"word"`
	Origin           types.Origin       `json:"origin"`
	OriginSource     types.OriginSource `json:"origin_source"`
	OriginConfidence float64            `json:"origin_confidence"`
	Correct          bool               `json:"correct"`
	Correction       string             `json:"correction,omitempty"`
	Notes            []RuleNote         `json:"rule_notes,omitempty"`
}

// Analyze derives the word and explains the outcome. Incorrect words
// carry one note per derivation step; correct words carry the
// origin-based conventions they satisfy.
func (e *Engine) Analyze(word string) WordAnalysis {
	if word == "" {
		return WordAnalysis{Correct: true}
	}

	dec := morph.ClassifyWithProvenance(e.lex, word)
	d := e.Derive(word)

	a := WordAnalysis{
		Word:             d.Input,
		Origin:           dec.Origin,
		OriginSource:     dec.Source,
		OriginConfidence: dec.Confidence,
		Correct:          d.Correct,
	}
	if d.Correct {
		a.Notes = correctNotes(dec.Origin)
		return a
	}
	a.Correction = d.Output
	for _, st := range d.Steps {
		a.Notes = append(a.Notes, RuleNote{Rule: st.Rule, Explanation: st.Note})
	}
	return a
}

func correctNotes(origin types.Origin) []RuleNote {
	switch origin {
	case types.OriginTatsam:
		return []RuleNote{
			{Rule: varnaVinyas("३(ख)"), Explanation: "तत्सम शब्दमा शिरबिन्दु र पञ्चम वर्ण यथावत् रहन्छन्"},
			{Rule: varnaVinyas("३(ग)(अ)"), Explanation: "तत्सम शब्दमा श/ष/स मूल रूपमा कायम रहन्छन्"},
		}
	case types.OriginAagantuk:
		return []RuleNote{
			{Rule: varnaVinyas("३(ग)(अ)-९"), Explanation: "आगन्तुक शब्दमा स र न मात्र प्रयोग हुन्छन्"},
		}
	default:
		return []RuleNote{
			{Rule: varnaVinyas("३(क)"), Explanation: "तद्भव/देशज शब्दमा ह्रस्व स्वरको प्रधानता हुन्छ"},
		}
	}
}
