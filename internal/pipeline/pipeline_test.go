package pipeline

import (
	"context"
	"strings"
	"testing"

	"github.com/nepalinlp/orthography-engine/pkg/types"
)

func TestTokenize(t *testing.T) {
	text := `नेपाल, सुन्दर। "देश" hello 123`
	got := Tokenize(text)
	want := []string{"नेपाल", "सुन्दर", "देश"}
	if len(got) != len(want) {
		t.Fatalf("Tokenize() = %d tokens, want %d: %+v", len(got), len(want), got)
	}
	for i, tok := range got {
		if tok.Text != want[i] {
			t.Errorf("token %d = %q, want %q", i, tok.Text, want[i])
		}
		if text[tok.Start:tok.End] != tok.Text {
			t.Errorf("token %d span [%d,%d) = %q, does not match text %q",
				i, tok.Start, tok.End, text[tok.Start:tok.End], tok.Text)
		}
		if i > 0 && tok.Start < got[i-1].End {
			t.Errorf("token %d span overlaps previous", i)
		}
	}
}

func TestAnalyzeDetachesCaseMarkers(t *testing.T) {
	c := Default()
	tests := []struct {
		word   string
		stem   string
		suffix string
	}{
		{"मानिसहरू", "मानिस", "हरू"},
		{"दिदीलाई", "दिदी", "लाई"},
		{"सुन्दर", "सुन्दर", ""},
		// stem not attested, marker stays attached
		{"झ्याले", "झ्याले", ""},
	}
	for _, tt := range tests {
		got := c.analyze(Tokenize(tt.word))
		if len(got) != 1 {
			t.Fatalf("analyze(%q) = %d tokens, want 1", tt.word, len(got))
		}
		if got[0].Stem != tt.stem || got[0].Suffix != tt.suffix {
			t.Errorf("analyze(%q) = stem %q suffix %q, want %q %q",
				tt.word, got[0].Stem, got[0].Suffix, tt.stem, tt.suffix)
		}
	}
}

func TestCheckWord(t *testing.T) {
	c := Default()

	if d := c.CheckWord("सुन्दर"); d != nil {
		t.Errorf("CheckWord(सुन्दर) = %+v, want nil", d)
	}
	if d := c.CheckWord(""); d != nil {
		t.Errorf("CheckWord(\"\") = %+v, want nil", d)
	}

	d := c.CheckWord("मीठो")
	if d == nil {
		t.Fatal("CheckWord(मीठो) = nil, want diagnostic")
	}
	if d.Want != "मिठो" {
		t.Errorf("Want = %q, want मिठो", d.Want)
	}
	if d.Confidence != 1 {
		t.Errorf("Confidence = %v, want 1", d.Confidence)
	}
	if d.Category != types.CategoryVowelLength {
		t.Errorf("Category = %q, want %q", d.Category, types.CategoryVowelLength)
	}
	if len(d.Steps) < 2 {
		t.Errorf("Steps = %d, want at least the classification and the rewrite", len(d.Steps))
	}
	if d.Rule.Code == "" || d.Note == "" {
		t.Errorf("diagnostic lacks rule citation: rule %+v note %q", d.Rule, d.Note)
	}
	if d.Span.End != len("मीठो") {
		t.Errorf("Span = %+v, want whole word", d.Span)
	}
}

func TestCheckTextPeriodBecomesDanda(t *testing.T) {
	c := Default()
	text := "नेपाल सुन्दर देश हो."
	got := c.CheckText(context.Background(), text, Options{})
	if len(got) != 1 {
		t.Fatalf("CheckText() = %d diagnostics, want 1: %+v", len(got), got)
	}
	d := got[0]
	if d.Category != types.CategoryPunctuation || d.Want != "।" {
		t.Errorf("diagnostic = %+v, want danda substitution", d)
	}
	if text[d.Span.Start:d.Span.End] != "." {
		t.Errorf("span covers %q, want the period", text[d.Span.Start:d.Span.End])
	}
}

func TestCheckTextWordSpan(t *testing.T) {
	c := Default()
	text := "यो मीठो छ।"
	got := c.CheckText(context.Background(), text, Options{})
	if len(got) != 1 {
		t.Fatalf("CheckText() = %d diagnostics, want 1: %+v", len(got), got)
	}
	d := got[0]
	if text[d.Span.Start:d.Span.End] != "मीठो" {
		t.Errorf("span covers %q, want मीठो", text[d.Span.Start:d.Span.End])
	}
	if d.Want != "मिठो" {
		t.Errorf("Want = %q, want मिठो", d.Want)
	}
	if len(d.Steps) == 0 {
		t.Error("text diagnostic lost its derivation steps")
	}
}

func TestCheckTokenReattachesSuffix(t *testing.T) {
	c := Default()
	toks := c.analyze(Tokenize("अत्याधिकले"))
	if len(toks) != 1 || toks[0].Suffix != "ले" {
		t.Fatalf("analyze = %+v, want detached ले", toks)
	}
	d := c.checkToken(toks[0])
	if d == nil {
		t.Fatal("checkToken = nil, want diagnostic")
	}
	if d.Found != "अत्याधिकले" || d.Want != "अत्यधिकले" {
		t.Errorf("Found %q Want %q, marker not reattached", d.Found, d.Want)
	}
	if d.Span.End != len("अत्याधिकले") {
		t.Errorf("Span = %+v, want full surface token", d.Span)
	}
}

func TestCheckTextPadayog(t *testing.T) {
	c := Default()
	text := "घर तिर गए।"
	got := c.CheckText(context.Background(), text, Options{})
	if len(got) != 1 {
		t.Fatalf("CheckText() = %d diagnostics, want 1: %+v", len(got), got)
	}
	d := got[0]
	if d.Found != "घर तिर" || d.Want != "घरतिर" {
		t.Errorf("diagnostic = %+v, want घरतिर join", d)
	}
	if d.Kind != types.KindError || d.Confidence != 0.95 {
		t.Errorf("kind %v confidence %v, want error at 0.95", d.Kind, d.Confidence)
	}
}

func TestCheckTextStyleNeedsGrammarMode(t *testing.T) {
	c := Default()
	text := "देशको निम्ति काम भयो।"
	if got := c.CheckText(context.Background(), text, Options{}); len(got) != 0 {
		t.Fatalf("without grammar mode = %+v, want none", got)
	}
	got := c.CheckText(context.Background(), text, Options{Grammar: true})
	if len(got) != 1 {
		t.Fatalf("grammar mode = %d diagnostics, want 1: %+v", len(got), got)
	}
	d := got[0]
	if d.Found != "देशको निम्ति" || d.Want != "देशका निम्ति" {
		t.Errorf("diagnostic = %+v, want देशका निम्ति", d)
	}
	if d.Kind != types.KindVariant {
		t.Errorf("Kind = %v, want variant", d.Kind)
	}
}

func TestGrammarHeuristics(t *testing.T) {
	c := Default()
	tests := []struct {
		name       string
		text       string
		found      string
		want       string
		confidence float64
	}{
		{"quantifier plural", "धेरै मानिसहरू आए।", "मानिसहरू", "मानिस", 0.62},
		{"ergative intransitive", "साथीले आयो।", "साथीले", "साथी", 0.68},
		{"genitive plural", "साथीको घरहरू राम्रा छन्।", "साथीको", "साथीका", 0.64},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := c.CheckText(context.Background(), tt.text, Options{Grammar: true})
			if len(got) != 1 {
				t.Fatalf("CheckText() = %d diagnostics, want 1: %+v", len(got), got)
			}
			d := got[0]
			if d.Found != tt.found || d.Want != tt.want {
				t.Errorf("got %q -> %q, want %q -> %q", d.Found, d.Want, tt.found, tt.want)
			}
			if d.Confidence != tt.confidence {
				t.Errorf("Confidence = %v, want %v", d.Confidence, tt.confidence)
			}
			if d.Kind != types.KindAmbiguous {
				t.Errorf("Kind = %v, want ambiguous", d.Kind)
			}
			if got := c.CheckText(context.Background(), tt.text, Options{}); len(got) != 0 {
				t.Errorf("heuristic fired without grammar mode: %+v", got)
			}
		})
	}
}

func TestGrammarCompoundHint(t *testing.T) {
	c := Default()
	got := c.CheckText(context.Background(), "देवालय राम्रो छ।", Options{Grammar: true})
	if len(got) != 1 {
		t.Fatalf("CheckText() = %d diagnostics, want 1: %+v", len(got), got)
	}
	d := got[0]
	if d.Category != types.CategorySandhi {
		t.Errorf("Category = %q, want sandhi", d.Category)
	}
	if !strings.Contains(d.Note, "देव + आलय") {
		t.Errorf("Note = %q, want the decomposition", d.Note)
	}
	if d.Found != d.Want {
		t.Errorf("hint rewrites the word: %q -> %q", d.Found, d.Want)
	}
}

func TestCheckTextSorted(t *testing.T) {
	c := Default()
	text := "मीठो खाना हो."
	got := c.CheckText(context.Background(), text, Options{})
	if len(got) != 2 {
		t.Fatalf("CheckText() = %d diagnostics, want 2: %+v", len(got), got)
	}
	for i := 1; i < len(got); i++ {
		if got[i].Span.Start < got[i-1].Span.Start {
			t.Fatalf("diagnostics out of span order: %+v", got)
		}
	}
	if got[0].Want != "मिठो" || got[1].Want != "।" {
		t.Errorf("got %q, %q; want मिठो then danda", got[0].Want, got[1].Want)
	}
}

func TestCheckTextParallelMatchesInline(t *testing.T) {
	c := Default()
	// Well past fanOutThreshold, so token checks run on workers.
	text := strings.TrimSpace(strings.Repeat("मीठो खाना ", 3*fanOutThreshold))
	got := c.CheckText(context.Background(), text, Options{})
	if len(got) != 3*fanOutThreshold {
		t.Fatalf("CheckText() = %d diagnostics, want %d", len(got), 3*fanOutThreshold)
	}
	for i, d := range got {
		if d.Want != "मिठो" {
			t.Fatalf("diagnostic %d want-field = %q, want मिठो", i, d.Want)
		}
		if i > 0 && got[i-1].Span.Start >= d.Span.Start {
			t.Fatalf("diagnostics out of span order at %d: %+v", i, got[i-1:i+1])
		}
	}
	again := c.CheckText(context.Background(), text, Options{})
	if len(again) != len(got) {
		t.Fatalf("second run returned %d diagnostics, want %d", len(again), len(got))
	}
	for i := range got {
		if got[i].Span != again[i].Span || got[i].Want != again[i].Want {
			t.Fatalf("run mismatch at %d: %+v vs %+v", i, got[i], again[i])
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() built two checkers")
	}
}
