// Package derivation turns a word into a replayable correction trace.
//
// Derivation is two-phased. Phase A consults the lexicon: exact
// headwords resolve immediately and curated misspellings resolve with a
// single table-citation step. Phase B runs the ordered pattern-rule
// families over anything the lexicon does not settle, chaining each
// family's rewrite into the next.
package derivation

import (
	"strings"
	"sync"

	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	"github.com/nepalinlp/orthography-engine/internal/morph"
	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Engine derives corrections against one immutable lexicon. It holds no
// mutable state and is safe for concurrent use.
type Engine struct {
	lex *lexicon.Lexicon
}

func New(lex *lexicon.Lexicon) *Engine {
	return &Engine{lex: lex}
}

var (
	defaultOnce   sync.Once
	defaultEngine *Engine
)

// Default returns the engine backed by the embedded lexicon.
func Default() *Engine {
	defaultOnce.Do(func() {
		defaultEngine = New(lexicon.Default())
	})
	return defaultEngine
}

// Lexicon exposes the engine's word store.
func (e *Engine) Lexicon() *lexicon.Lexicon {
	return e.lex
}

func correctDerivation(word string) types.Derivation {
	return types.Derivation{Input: word, Output: word, Correct: true}
}

// Derive decides whether word is correctly spelled and, if not, builds
// the corrected form with one step per applied rule. The result is
// deterministic: equal inputs yield equal traces.
func (e *Engine) Derive(word string) types.Derivation {
	word = script.Normalize(word)
	if word == "" {
		return correctDerivation("")
	}

	switch verdict, corr := e.lex.Lookup(word); verdict {
	case types.VerdictCorrect:
		return correctDerivation(word)
	case types.VerdictIncorrect:
		// Multi-answer table entries list alternatives separated by
		// slashes; the first form is the canonical replacement.
		want := corr.Want
		if i := strings.IndexByte(want, '/'); i >= 0 {
			want = want[:i]
		}
		return types.Derivation{
			Input:  word,
			Output: want,
			Steps: []types.Step{
				step(corr.Rule, word, want, corr.Note),
			},
			Category: types.CategoryTableLookup,
			Kind:     types.KindError,
		}
	}

	cur := word
	var steps []types.Step
	var category types.Category
	kind := types.KindError
	originNoted := false

	for _, fam := range families() {
		for _, r := range fam.rules {
			out, st, ok := r.apply(e, cur)
			if !ok {
				continue
			}
			if r.spec.OriginGated && !originNoted {
				steps = append(steps, originStep(e, cur))
				originNoted = true
			}
			steps = append(steps, st)
			if category == "" {
				category = r.spec.Category
				kind = r.spec.Kind
			}
			cur = out
			if fam.exclusive {
				break
			}
		}
	}

	if len(steps) == 0 {
		// No rule fired and the lexicon is silent. Absence of evidence
		// against a word does not flag it.
		return correctDerivation(word)
	}
	return types.Derivation{
		Input:    word,
		Output:   cur,
		Steps:    steps,
		Category: category,
		Kind:     kind,
	}
}

// originStep records the classification an origin-gated rule relied on.
// It rewrites nothing; Before equals After.
func originStep(e *Engine, word string) types.Step {
	dec := morph.ClassifyWithProvenance(e.lex, word)
	return types.Step{
		Rule:   varnaVinyas("शब्दवर्ग"),
		Before: word,
		After:  word,
		Note:   "शब्दवर्ग: " + dec.Origin.String() + " (" + string(dec.Source) + ")",
	}
}
