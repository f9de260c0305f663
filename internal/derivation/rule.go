package derivation

import (
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Spec is the static metadata of one pattern rule.
type Spec struct {
	// ID is the stable machine-readable rule identifier.
	ID string
	// Category names the orthographic phenomenon the rule governs.
	Category types.Category
	// Kind is the severity of a finding produced by this rule.
	Kind types.DiagnosticKind
	// Rule is the standard citation attached to emitted steps.
	Rule types.Rule
	// OriginGated marks rules whose firing depends on the word-origin
	// classification. Their traces carry an extra classification step.
	OriginGated bool
	// Examples holds (incorrect, correct) pairs the rule is known to fix.
	Examples [][2]string
}

// ruleFunc attempts one rewrite. It returns the rewritten word and the
// step describing it, or ok=false when the rule does not apply.
type ruleFunc func(e *Engine, word string) (string, types.Step, bool)

type patternRule struct {
	spec  Spec
	apply ruleFunc
}

// family is an ordered group of rules sharing an evaluation policy.
// An exclusive family stops at its first firing rule; a non-exclusive
// family lets every rule inspect the current form in turn.
type family struct {
	name      string
	exclusive bool
	rules     []patternRule
}

func families() []family {
	return []family{
		{name: "structural", exclusive: true, rules: structuralRules},
		{name: "vowel-length", exclusive: true, rules: vowelLengthRules},
		{name: "orthographic", exclusive: false, rules: orthographicRules},
	}
}

// Registry lists the metadata of every pattern rule in evaluation order.
func Registry() []Spec {
	var specs []Spec
	for _, fam := range families() {
		for _, r := range fam.rules {
			specs = append(specs, r.spec)
		}
	}
	return specs
}

func step(rule types.Rule, before, after, note string) types.Step {
	return types.Step{Rule: rule, Before: before, After: after, Note: note}
}

func varnaVinyas(code string) types.Rule {
	return types.Rule{Source: types.SourceVarnaVinyas, Code: code}
}

func shuddhaAshuddha(code string) types.Rule {
	return types.Rule{Source: types.SourceShuddhaAshuddha, Code: code}
}
