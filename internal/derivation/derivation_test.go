package derivation

import (
	"reflect"
	"testing"

	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

func TestDeriveCorrectWords(t *testing.T) {
	e := Default()
	for _, word := range []string{"नेपाल", "मिठो", "बुद्धिमान्", "क्षेत्र", "एकता", "सम्मान"} {
		d := e.Derive(word)
		if !d.Correct {
			t.Errorf("Derive(%q) flagged a correct word: output %q, steps %v", word, d.Output, d.Steps)
		}
		if d.Output != word {
			t.Errorf("Derive(%q) output = %q, want input unchanged", word, d.Output)
		}
		if len(d.Steps) != 0 {
			t.Errorf("Derive(%q) emitted %d steps for a correct word", word, len(d.Steps))
		}
	}
}

func TestDeriveTableLookup(t *testing.T) {
	e := Default()
	d := e.Derive("अत्याधिक")
	if d.Correct {
		t.Fatal("Derive(अत्याधिक) reported correct")
	}
	if d.Output != "अत्यधिक" {
		t.Fatalf("output = %q, want अत्यधिक", d.Output)
	}
	if d.Category != types.CategoryTableLookup {
		t.Errorf("category = %q, want %q", d.Category, types.CategoryTableLookup)
	}
	if len(d.Steps) != 1 {
		t.Fatalf("steps = %d, want 1", len(d.Steps))
	}
	if d.Steps[0].Rule.Code == "" {
		t.Error("table step carries no rule citation")
	}
}

func TestDeriveMultiAnswerTakesFirst(t *testing.T) {
	lex, err := lexicon.BuildFromSources("साँचो\n", []byte(`corrections:
  - wrong: "झुटो"
    right: "झुट्टो/झूटो"
    source: shuddha-ashuddha
    code: "Section 4"
`))
	if err != nil {
		t.Fatal(err)
	}
	d := New(lex).Derive("झुटो")
	if d.Correct {
		t.Fatal("Derive(झुटो) reported correct")
	}
	if d.Output != "झुट्टो" {
		t.Fatalf("output = %q, want first alternative झुट्टो", d.Output)
	}
	if len(d.Steps) != 1 || d.Steps[0].After != "झुट्टो" {
		t.Fatalf("steps = %+v, want one step rewriting to झुट्टो", d.Steps)
	}
}

func TestDeriveTadbhavHrasva(t *testing.T) {
	e := Default()
	d := e.Derive("मीठो")
	if d.Output != "मिठो" {
		t.Fatalf("Derive(मीठो) output = %q, want मिठो", d.Output)
	}
	if d.Category != types.CategoryVowelLength {
		t.Errorf("category = %q, want %q", d.Category, types.CategoryVowelLength)
	}
	if len(d.Steps) < 2 {
		t.Fatalf("steps = %d, want at least 2 (classification, then rewrite)", len(d.Steps))
	}
	if d.Steps[0].Before != d.Steps[0].After {
		t.Error("first step should be the origin classification, not a rewrite")
	}
	last := d.Steps[len(d.Steps)-1]
	if last.After != "मिठो" {
		t.Errorf("final step after = %q, want मिठो", last.After)
	}
}

func TestDerivePatternRules(t *testing.T) {
	e := Default()
	tests := []struct {
		in, want string
		category types.Category
	}{
		{"श्रृङ्गार", "शृङ्गार", types.CategoryConjunct},
		{"सौन्दर्यता", "सौन्दर्य", types.CategoryTableLookup},
		{"संघर्ष", "सङ्घर्ष", types.CategoryNasalization},
		{"संक्षेप", "सङ्क्षेप", types.CategoryNasalization},

		{"स्वीकार्नु", "स्विकार्नु", types.CategoryVowelLength},
		{"पूर्वेली", "पुर्वेली", types.CategoryVowelLength},
		{"पुर्वी", "पूर्वी", types.CategoryVowelLength},
		{"भनि", "भनी", types.CategoryVowelLength},
		{"गरि", "गरी", types.CategoryVowelLength},
		{"दाजू", "दाजु", types.CategoryVowelLength},
		{"भाउजु", "भाउजू", types.CategoryVowelLength},
		{"नेपालि", "नेपाली", types.CategoryVowelLength},

		{"सिँह", "सिंह", types.CategoryNasalization},
		{"गरौं", "गरौँ", types.CategoryNasalization},
		{"कहां", "कहाँ", types.CategoryNasalization},
		{"खुषी", "खुसी", types.CategorySibilant},
		{"रजिष्टर", "रजिस्टर", types.CategorySibilant},
		{"रिषि", "ऋषि", types.CategoryVocalicR},
		{"क्रितज्ञ", "कृतज्ञ", types.CategoryVocalicR},
		{"बुद्धिमान", "बुद्धिमान्", types.CategoryVirama},
		{"गर्छस", "गर्छस्", types.CategoryVirama},
		{"जान्छन", "जान्छन्", types.CategoryVirama},
		{"जान्छ्", "जान्छ", types.CategoryVirama},
		{"अर्थिक", "आर्थिक", types.CategoryVowelLength},
		{"इतिहासिक", "ऐतिहासिक", types.CategoryVowelLength},
		{"यकता", "एकता", types.CategorySemivowel},
		{"एथार्थ", "यथार्थ", types.CategorySemivowel},
		{"छेत्र", "क्षेत्र", types.CategoryConjunct},
		{"लछ्य", "लक्ष्य", types.CategoryConjunct},
		{"अग्यान", "अज्ञान", types.CategoryConjunct},
		{"प्रग्या", "प्रज्ञा", types.CategoryConjunct},
	}
	for _, tt := range tests {
		d := e.Derive(tt.in)
		if d.Correct {
			t.Errorf("Derive(%q) reported correct, want %q", tt.in, tt.want)
			continue
		}
		if d.Output != tt.want {
			t.Errorf("Derive(%q) output = %q, want %q", tt.in, d.Output, tt.want)
		}
		if d.Category != tt.category {
			t.Errorf("Derive(%q) category = %q, want %q", tt.in, d.Category, tt.category)
		}
		if len(d.Steps) == 0 {
			t.Errorf("Derive(%q) emitted no steps", tt.in)
		}
	}
}

// A corrected word must be stable under re-derivation.
func TestDeriveIdempotent(t *testing.T) {
	e := Default()
	words := []string{
		"अत्याधिक", "मीठो", "श्रृङ्गार", "सौन्दर्यता", "संघर्ष",
		"स्वीकार्नु", "पूर्वेली", "भनि", "दाजू", "भाउजु", "नेपालि",
		"सिँह", "गरौं", "खुषी", "रिषि", "बुद्धिमान", "गर्छस",
		"अर्थिक", "यकता", "छेत्र", "अग्यान", "नेपाल",
	}
	for _, w := range words {
		first := e.Derive(w)
		second := e.Derive(first.Output)
		if second.Output != first.Output {
			t.Errorf("derive(%q) = %q, but re-deriving gives %q", w, first.Output, second.Output)
		}
	}
}

func TestDeriveDeterministic(t *testing.T) {
	e := Default()
	a := e.Derive("मीठो")
	b := e.Derive("मीठो")
	if !reflect.DeepEqual(a, b) {
		t.Errorf("repeated derivations differ:\n%v\n%v", a, b)
	}
}

func TestDeriveEmptyInput(t *testing.T) {
	d := Default().Derive("")
	if !d.Correct || len(d.Steps) != 0 {
		t.Errorf("Derive(\"\") = %+v, want empty correct derivation", d)
	}
}

func TestRegistry(t *testing.T) {
	specs := Registry()
	if len(specs) == 0 {
		t.Fatal("empty rule registry")
	}
	seen := make(map[string]bool)
	for _, s := range specs {
		if s.ID == "" {
			t.Error("rule with empty ID")
		}
		if seen[s.ID] {
			t.Errorf("duplicate rule ID %q", s.ID)
		}
		seen[s.ID] = true
		if s.Category == "" {
			t.Errorf("rule %q has no category", s.ID)
		}
		if len(s.Examples) == 0 {
			t.Errorf("rule %q has no examples", s.ID)
		}
	}
}

// Every example a rule advertises must actually be fixed by Derive.
func TestRegistryExamplesHold(t *testing.T) {
	e := Default()
	for _, s := range Registry() {
		for _, ex := range s.Examples {
			d := e.Derive(ex[0])
			if d.Output != ex[1] {
				t.Errorf("rule %s example: Derive(%q) = %q, want %q", s.ID, ex[0], d.Output, ex[1])
			}
		}
	}
}

func TestAnalyze(t *testing.T) {
	e := Default()

	a := e.Analyze("मीठो")
	if a.Correct {
		t.Fatal("Analyze(मीठो) reported correct")
	}
	if a.Correction != "मिठो" {
		t.Errorf("correction = %q, want मिठो", a.Correction)
	}
	if a.Origin != types.OriginTadbhav {
		t.Errorf("origin = %v, want tadbhav", a.Origin)
	}
	if len(a.Notes) == 0 {
		t.Error("incorrect word carries no rule notes")
	}

	b := e.Analyze("ऋतु")
	if !b.Correct {
		t.Errorf("Analyze(ऋतु) reported incorrect: %+v", b)
	}
	if b.Origin != types.OriginTatsam {
		t.Errorf("origin = %v, want tatsam", b.Origin)
	}
	if len(b.Notes) == 0 {
		t.Error("correct word carries no explanatory notes")
	}
}
