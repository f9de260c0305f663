// Package engine is the public facade over the orthography engine. It
// exposes the whole operation surface as pure functions on the
// embedded lexicon: no files, no network, no environment. Hosts that
// need their own lexicon, logger or metrics wire the internal
// components directly.
package engine

import (
	"context"

	"github.com/nepalinlp/orthography-engine/internal/derivation"
	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	"github.com/nepalinlp/orthography-engine/internal/morph"
	"github.com/nepalinlp/orthography-engine/internal/pipeline"
	"github.com/nepalinlp/orthography-engine/internal/sandhi"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Options re-exports the pipeline options for text checks.
type Options = pipeline.Options

// DefaultOptions returns the conservative text-check configuration.
func DefaultOptions() Options {
	return pipeline.DefaultOptions()
}

// WordAnalysis re-exports the per-word analysis report.
type WordAnalysis = derivation.WordAnalysis

// Suggestion re-exports a near-miss lexicon suggestion.
type Suggestion = lexicon.Suggestion

// CheckWord checks a single word. It returns nil when the word is
// correct as written or unknown to every rule.
func CheckWord(word string) *types.Diagnostic {
	return pipeline.Default().CheckWord(word)
}

// CheckText checks running text and returns diagnostics sorted by
// span.
func CheckText(ctx context.Context, text string, opts Options) []types.Diagnostic {
	return pipeline.Default().CheckText(ctx, text, opts)
}

// Derive replays the correction rules over word and returns the full
// trace.
func Derive(word string) types.Derivation {
	return derivation.Default().Derive(word)
}

// AnalyzeWord reports a word's origin, correctness and the rules that
// bear on it in one call.
func AnalyzeWord(word string) WordAnalysis {
	return derivation.Default().Analyze(word)
}

// Decomposition is a word split into affixes plus its origin class.
type Decomposition struct {
	types.Morpheme
	Origin types.Origin `json:"origin"`
}

// DecomposeWord splits a word into prefix, root and suffix and reports
// its origin.
func DecomposeWord(word string) Decomposition {
	return Decomposition{
		Morpheme: morph.Decompose(word),
		Origin:   morph.Classify(derivation.Default().Lexicon(), word),
	}
}

// SandhiApply joins two morphemes under the sandhi rules.
func SandhiApply(first, second string) (*types.SandhiResult, error) {
	return sandhi.Apply(first, second)
}

// SandhiSplit recovers the lexicon-attested morpheme pairs that fuse
// into word.
func SandhiSplit(word string) []types.SplitCandidate {
	return sandhi.Split(derivation.Default().Lexicon(), word)
}

// Nearby returns headwords within maxDist edits of word, closest
// first, at most limit of them.
func Nearby(word string, maxDist, limit int) []Suggestion {
	return derivation.Default().Lexicon().Nearby(word, maxDist, limit)
}
