package punctuation

import (
	"testing"

	"github.com/nepalinlp/orthography-engine/pkg/types"
)

func TestPeriodAfterDevanagari(t *testing.T) {
	diags := Check("नेपाल सुन्दर देश हो.")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	d := diags[0]
	if d.Found != "." || d.Want != "।" {
		t.Errorf("found %q want-field %q, expected . → ।", d.Found, d.Want)
	}
	if d.Category != types.CategoryPunctuation {
		t.Errorf("category = %q", d.Category)
	}
	if d.Span.End != len("नेपाल सुन्दर देश हो.") {
		t.Errorf("span = %+v, want the trailing period", d.Span)
	}
}

func TestDandaIsCorrect(t *testing.T) {
	if diags := Check("नेपाल सुन्दर देश हो।"); len(diags) != 0 {
		t.Errorf("danda flagged: %+v", diags)
	}
}

func TestAbbreviationDotAllowed(t *testing.T) {
	for _, text := range []string{"डा. राम", "श्री. हरि आए।", "त्रि.वि. मा पढ्छु।", "सं. रा. अ. मा बस्छु।"} {
		for _, d := range Check(text) {
			if d.Found == "." {
				t.Errorf("Check(%q) flagged abbreviation dot: %+v", text, d)
			}
		}
	}
}

func TestShortWordDotIsSentenceEnd(t *testing.T) {
	diags := Check("म यहाँ हुँ. तिमी कहाँ छौ?")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Want != "।" {
		t.Errorf("want-field = %q", diags[0].Want)
	}
}

func TestLatinTextNotFlagged(t *testing.T) {
	if diags := Check("Dr. Smith went home."); len(diags) != 0 {
		t.Errorf("latin text flagged: %+v", diags)
	}
}

func TestEllipsis(t *testing.T) {
	diags := Check("त्यसपछि... के भयो?")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Found != "..." || diags[0].Want != Ellipsis {
		t.Errorf("got %q → %q, want ... → %s", diags[0].Found, diags[0].Want, Ellipsis)
	}
}

func TestStraightQuotes(t *testing.T) {
	diags := Check(`उनले "राम्रो" भने।`)
	if len(diags) != 2 {
		t.Fatalf("got %d diagnostics, want 2: %+v", len(diags), diags)
	}
	if diags[0].Want != "“" {
		t.Errorf("first quote want = %q, expected opening smart quote", diags[0].Want)
	}
	if diags[1].Want != "”" {
		t.Errorf("second quote want = %q, expected closing smart quote", diags[1].Want)
	}
}

func TestSpaceBeforeMark(t *testing.T) {
	diags := Check("के भयो ?")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Found != " ?" || diags[0].Want != "?" {
		t.Errorf("got %q → %q, want space stripped", diags[0].Found, diags[0].Want)
	}
}

func TestSlashSpacing(t *testing.T) {
	diags := Check("तिमी / उहाँ")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Found != " / " || diags[0].Want != "/" {
		t.Errorf("got %q → %q", diags[0].Found, diags[0].Want)
	}
}

func TestDoubledCommaGap(t *testing.T) {
	diags := Check("ऐजन, , हो")
	var found bool
	for _, d := range diags {
		if d.Want == ",," {
			found = true
		}
	}
	if !found {
		t.Errorf("no doubled-comma diagnostic in %+v", diags)
	}
}

func TestUnbalancedBracket(t *testing.T) {
	diags := Check("यो (राम्रो छ")
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1: %+v", len(diags), diags)
	}
	if diags[0].Found != "(" {
		t.Errorf("found = %q", diags[0].Found)
	}

	if diags := Check("यो (राम्रो) छ"); len(diags) != 0 {
		t.Errorf("balanced brackets flagged: %+v", diags)
	}
}

func TestSortedBySpan(t *testing.T) {
	diags := Check(`उनले "हो" भने र गए.` + "\n")
	for i := 1; i < len(diags); i++ {
		if diags[i].Span.Start < diags[i-1].Span.Start {
			t.Fatalf("diagnostics unsorted: %+v", diags)
		}
	}
	if len(diags) < 3 {
		t.Errorf("expected quote and period findings, got %+v", diags)
	}
}
