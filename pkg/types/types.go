// Package types defines the shared data types used across the Nepali
// orthography engine: word origin classes, correction rules, derivation
// traces, sandhi results, and the diagnostics emitted over running text.
//
// These types are pure data with JSON struct tags so host runtimes
// (editor servers, web services, batch tools) can serialize engine
// output without depending on internal packages.
package types

import "fmt"

// ---------- Word classification ----------

// Origin is the etymological class of a Nepali word. Several spelling
// rules branch on it: tatsam words keep Sanskrit orthography while
// tadbhav and borrowed words follow simplified conventions.
type Origin uint8

const (
	// OriginDeshaj marks native words with no Sanskrit ancestry.
	OriginDeshaj Origin = iota
	// OriginTatsam marks unmodified Sanskrit loans.
	OriginTatsam
	// OriginTadbhav marks words derived from Sanskrit with sound change.
	OriginTadbhav
	// OriginAagantuk marks foreign borrowings (Arabic, Persian, English).
	OriginAagantuk
)

func (o Origin) String() string {
	switch o {
	case OriginTatsam:
		return "tatsam"
	case OriginTadbhav:
		return "tadbhav"
	case OriginAagantuk:
		return "aagantuk"
	default:
		return "deshaj"
	}
}

// ParseOrigin maps an origin tag back to its Origin value. Unknown tags
// fall back to OriginDeshaj, matching the classifier default.
func ParseOrigin(s string) Origin {
	switch s {
	case "tatsam":
		return OriginTatsam
	case "tadbhav":
		return OriginTadbhav
	case "aagantuk":
		return OriginAagantuk
	default:
		return OriginDeshaj
	}
}

// Gender is the grammatical gender recorded for a headword. Nepali
// marks gender sparsely, so most entries stay GenderNone.
type Gender uint8

const (
	GenderNone Gender = iota
	GenderMasculine
	GenderFeminine
	GenderOther
)

func (g Gender) String() string {
	switch g {
	case GenderMasculine:
		return "m"
	case GenderFeminine:
		return "f"
	case GenderOther:
		return "o"
	default:
		return ""
	}
}

// ParseGender maps a headword gender tag to its Gender value.
func ParseGender(s string) Gender {
	switch s {
	case "m":
		return GenderMasculine
	case "f":
		return GenderFeminine
	case "o":
		return GenderOther
	default:
		return GenderNone
	}
}

// OriginSource records which authority produced an origin decision.
type OriginSource string

const (
	OriginFromOverride  OriginSource = "override"
	OriginFromLexicon   OriginSource = "lexicon"
	OriginFromHeuristic OriginSource = "heuristic"
)

// OriginDecision is an origin classification with provenance attached.
type OriginDecision struct {
	Origin     Origin       `json:"origin"`
	Source     OriginSource `json:"source"`
	Confidence float64      `json:"confidence"`
}

// Morpheme is the result of decomposing a word into at most one prefix,
// a root, and at most one suffix.
type Morpheme struct {
	Prefix string `json:"prefix,omitempty"`
	Root   string `json:"root"`
	Suffix string `json:"suffix,omitempty"`
}

// ---------- Rules ----------

// RuleSource identifies the treatise a correction rule cites.
type RuleSource uint8

const (
	// SourceVarnaVinyas cites the orthography (spelling) standard.
	SourceVarnaVinyas RuleSource = iota
	// SourceVyakaran cites the grammar reference.
	SourceVyakaran
	// SourceShuddhaAshuddha cites the curated correct/incorrect word list.
	SourceShuddhaAshuddha
	// SourceChihna cites the punctuation conventions.
	SourceChihna
)

func (s RuleSource) String() string {
	switch s {
	case SourceVyakaran:
		return "vyakaran"
	case SourceShuddhaAshuddha:
		return "shuddha-ashuddha"
	case SourceChihna:
		return "chihna"
	default:
		return "varnavinyas"
	}
}

// ParseRuleSource maps a source name to its RuleSource value. Unknown
// names fall back to SourceVarnaVinyas.
func ParseRuleSource(s string) RuleSource {
	switch s {
	case "vyakaran":
		return SourceVyakaran
	case "shuddha-ashuddha":
		return SourceShuddhaAshuddha
	case "chihna":
		return SourceChihna
	default:
		return SourceVarnaVinyas
	}
}

// Rule is a citable correction rule: the source treatise plus a section
// code within it, e.g. varnavinyas:3.2.
type Rule struct {
	Source RuleSource `json:"source"`
	Code   string     `json:"code"`
}

func (r Rule) String() string {
	return fmt.Sprintf("%s:%s", r.Source, r.Code)
}

// Category groups rules by the orthographic phenomenon they govern.
type Category string

const (
	CategoryVowelLength  Category = "vowel-length"
	CategoryNasalization Category = "nasalization"
	CategorySibilant     Category = "sibilant-choice"
	CategoryVocalicR     Category = "vocalic-r"
	CategoryVirama       Category = "virama"
	CategorySemivowel    Category = "semivowel"
	CategoryConjunct     Category = "conjunct-simplification"
	CategorySandhi       Category = "sandhi"
	CategoryTableLookup  Category = "table-lookup"
	CategoryPunctuation  Category = "punctuation"
)

// ---------- Derivation ----------

// Step is a single rewrite in a derivation trace. Applying Before→After
// in sequence over the derivation input reproduces its output.
type Step struct {
	Rule   Rule   `json:"rule"`
	Before string `json:"before"`
	After  string `json:"after"`
	Note   string `json:"note,omitempty"`
}

// DiagnosticKind is the three-way strength of a finding.
type DiagnosticKind uint8

const (
	// KindError is a rule-backed misspelling with a definite correction.
	KindError DiagnosticKind = iota
	// KindVariant is an accepted form with a preferred alternative.
	KindVariant
	// KindAmbiguous is a heuristic finding that needs human judgement.
	KindAmbiguous
)

func (k DiagnosticKind) String() string {
	switch k {
	case KindVariant:
		return "variant"
	case KindAmbiguous:
		return "ambiguous"
	default:
		return "error"
	}
}

// Derivation is the replayable proof that a word is correct as written
// or should be rewritten. Correct words carry no steps.
type Derivation struct {
	Input    string         `json:"input"`
	Output   string         `json:"output"`
	Steps    []Step         `json:"steps,omitempty"`
	Correct  bool           `json:"correct"`
	Category Category       `json:"category,omitempty"`
	Kind     DiagnosticKind `json:"kind"`
}

// ---------- Diagnostics ----------

// Span is a half-open byte range [Start, End) into the checked text.
type Span struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Diagnostic is a single finding over running text.
type Diagnostic struct {
	Span       Span           `json:"span"`
	Found      string         `json:"found"`
	Want       string         `json:"want"`
	Kind       DiagnosticKind `json:"kind"`
	Category   Category       `json:"category"`
	Rule       Rule           `json:"rule"`
	Confidence float64        `json:"confidence"`
	Note       string         `json:"note,omitempty"`
	Steps      []Step         `json:"steps,omitempty"`
}

// ---------- Sandhi ----------

// SandhiType names the sandhi family that produced a junction.
type SandhiType string

const (
	SandhiDirgha    SandhiType = "dirgha"
	SandhiGuna      SandhiType = "guna"
	SandhiVriddhi   SandhiType = "vriddhi"
	SandhiYan       SandhiType = "yan"
	SandhiAyadi     SandhiType = "ayadi"
	SandhiVisarga   SandhiType = "visarga"
	SandhiConsonant SandhiType = "vyanjan"
)

// SandhiResult is a joined surface form with the rule that formed it.
type SandhiResult struct {
	Surface string     `json:"surface"`
	Type    SandhiType `json:"type"`
	Rule    Rule       `json:"rule"`
}

// SplitCandidate is one possible decomposition of a fused word, with
// the sandhi rule that rejoins the parts. Known reports whether both
// parts are lexicon headwords.
type SplitCandidate struct {
	Left  string     `json:"left"`
	Right string     `json:"right"`
	Type  SandhiType `json:"type"`
	Rule  Rule       `json:"rule"`
	Known bool       `json:"known"`
}

// ---------- Tokens ----------

// Token is a checkable word with its byte span in the source text.
type Token struct {
	Text  string `json:"text"`
	Start int    `json:"start"`
	End   int    `json:"end"`
}

// AnalyzedToken is a token with its morphological decomposition.
type AnalyzedToken struct {
	Token
	Stem   string `json:"stem"`
	Suffix string `json:"suffix,omitempty"`
}

// ---------- Lookup ----------

// Verdict is the three-way result of a lexicon lookup.
type Verdict uint8

const (
	VerdictUnknown Verdict = iota
	VerdictCorrect
	VerdictIncorrect
)

func (v Verdict) String() string {
	switch v {
	case VerdictCorrect:
		return "correct"
	case VerdictIncorrect:
		return "incorrect"
	default:
		return "unknown"
	}
}
