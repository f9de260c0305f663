package pipeline

import (
	"strings"

	"github.com/nepalinlp/orthography-engine/internal/sandhi"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Quantifiers that already imply plurality. A plural marker after one
// of these is redundant in standard usage.
var quantifiers = map[string]bool{
	"धेरै":    true,
	"सबै":     true,
	"केही":    true,
	"अनेक":    true,
	"धेरैजसो": true,
}

// Common intransitive verb forms. The ergative marker ले on the subject
// of these is a frequent overcorrection.
var intransitiveForms = map[string]bool{
	"छ":       true,
	"थियो":    true,
	"गयो":     true,
	"जान्छ":   true,
	"आयो":     true,
	"आउँछ":    true,
	"बस्यो":   true,
	"हिँड्यो": true,
	"सुत्यो":  true,
	"पुग्यो":  true,
}

func stripPlural(word string) (string, bool) {
	for _, m := range []string{"हरू", "हरु"} {
		if i := strings.Index(word, m); i >= 0 {
			return word[:i] + word[i+len(m):], true
		}
	}
	return "", false
}

func hasPlural(word string) bool {
	return strings.Contains(word, "हरू") || strings.Contains(word, "हरु")
}

// grammarPass runs agreement heuristics over the analyzed tokens. The
// findings are advisory: each carries a confidence well below the
// rule-backed passes, and when two heuristics claim the same span only
// the most confident one survives.
func (c *Checker) grammarPass(tokens []types.AnalyzedToken, blocked map[types.Span]bool, diags []types.Diagnostic) []types.Diagnostic {
	var hints []types.Diagnostic
	for i, tok := range tokens {
		span := types.Span{Start: tok.Start, End: tok.End}
		if blocked[span] {
			continue
		}

		if i > 0 && quantifiers[tokens[i-1].Text] {
			if singular, ok := stripPlural(tok.Text); ok {
				hints = append(hints, types.Diagnostic{
					Span:       span,
					Found:      tok.Text,
					Want:       singular,
					Kind:       types.KindAmbiguous,
					Category:   types.CategoryTableLookup,
					Rule:       types.Rule{Source: types.SourceVyakaran, Code: "दफा१-बहुवचन"},
					Confidence: 0.62,
					Note:       "परिमाणवाचक \"" + tokens[i-1].Text + "\" पछि बहुवचन चिह्न अनावश्यक हुन्छ",
				})
			}
		}

		if tok.Suffix == "ले" && followedByIntransitive(tokens, i) {
			hints = append(hints, types.Diagnostic{
				Span:       span,
				Found:      tok.Text,
				Want:       tok.Stem,
				Kind:       types.KindAmbiguous,
				Category:   types.CategoryTableLookup,
				Rule:       types.Rule{Source: types.SourceVyakaran, Code: "दफा२-कर्तृचिह्न"},
				Confidence: 0.68,
				Note:       "अकर्मक क्रियासँग कर्ता चिह्न \"ले\" प्रायः लाग्दैन",
			})
		}

		if (tok.Suffix == "को" || tok.Suffix == "की") &&
			i+1 < len(tokens) && hasPlural(tokens[i+1].Text) {
			hints = append(hints, types.Diagnostic{
				Span:       span,
				Found:      tok.Text,
				Want:       tok.Stem + "का",
				Kind:       types.KindAmbiguous,
				Category:   types.CategoryTableLookup,
				Rule:       types.Rule{Source: types.SourceVyakaran, Code: "दफा३-सम्बन्ध"},
				Confidence: 0.64,
				Note:       "बहुवचन नामसँग सम्बन्ध चिह्न \"का\" हुनुपर्छ",
			})
		}

		if tok.Suffix == "" && !c.lex.Contains(tok.Text) {
			if cand := bestSplit(c, tok.Text); cand != nil {
				hints = append(hints, types.Diagnostic{
					Span:       span,
					Found:      tok.Text,
					Want:       tok.Text,
					Kind:       types.KindAmbiguous,
					Category:   types.CategorySandhi,
					Rule:       types.Rule{Source: types.SourceVarnaVinyas, Code: "४(सन्धि)"},
					Confidence: 0.75,
					Note:       "सन्धि: " + cand.Left + " + " + cand.Right,
				})
			}
		}
	}

	for _, h := range bestPerSpan(hints) {
		if !overlapsAny(diags, h.Span) {
			diags = append(diags, h)
		}
	}
	return diags
}

func followedByIntransitive(tokens []types.AnalyzedToken, i int) bool {
	for _, t := range tokens[i+1:] {
		if intransitiveForms[t.Text] {
			return true
		}
	}
	return false
}

// bestSplit returns the first decomposition whose parts are both
// attested, or nil.
func bestSplit(c *Checker, word string) *types.SplitCandidate {
	for _, cand := range sandhi.Split(c.lex, word) {
		if cand.Known {
			return &cand
		}
	}
	return nil
}

// bestPerSpan keeps, for each span, only the most confident hint.
// Order among distinct spans is preserved.
func bestPerSpan(hints []types.Diagnostic) []types.Diagnostic {
	best := make(map[types.Span]int)
	var out []types.Diagnostic
	for _, h := range hints {
		if i, ok := best[h.Span]; ok {
			if h.Confidence > out[i].Confidence {
				out[i] = h
			}
			continue
		}
		best[h.Span] = len(out)
		out = append(out, h)
	}
	return out
}
