package sandhi

import (
	"errors"
	"testing"

	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	engerr "github.com/nepalinlp/orthography-engine/pkg/errors"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

func TestApply(t *testing.T) {
	tests := []struct {
		first, second string
		want          string
		typ           types.SandhiType
	}{
		{"विद्या", "आलय", "विद्यालय", types.SandhiDirgha},
		{"हिम", "आलय", "हिमालय", types.SandhiDirgha},
		{"महा", "ईश", "महेश", types.SandhiGuna},
		{"सूर्य", "उदय", "सूर्योदय", types.SandhiGuna},
		{"देव", "इन्द्र", "देवेन्द्र", types.SandhiGuna},
		{"गण", "ईश", "गणेश", types.SandhiGuna},
		{"अति", "अधिक", "अत्यधिक", types.SandhiYan},
		{"इति", "आदि", "इत्यादि", types.SandhiYan},
		{"सु", "आगत", "स्वागत", types.SandhiYan},
		{"प्रति", "एक", "प्रत्येक", types.SandhiYan},
		{"ने", "अन", "नयन", types.SandhiAyadi},
		{"दुः", "ख", "दुःख", types.SandhiVisarga},
		{"मनः", "रथ", "मनोरथ", types.SandhiVisarga},
		{"मनः", "बल", "मनोबल", types.SandhiVisarga},
		{"पुनः", "आगमन", "पुनरागमन", types.SandhiVisarga},
		{"उत्", "लेख", "उल्लेख", types.SandhiConsonant},
		{"उत्", "चारण", "उच्चारण", types.SandhiConsonant},
		{"सम्", "कलन", "सङ्कलन", types.SandhiConsonant},
		{"महत्", "त्व", "महत्त्व", types.SandhiConsonant},
	}
	for _, tt := range tests {
		got, err := Apply(tt.first, tt.second)
		if err != nil {
			t.Errorf("Apply(%q, %q) error: %v", tt.first, tt.second, err)
			continue
		}
		if got.Surface != tt.want {
			t.Errorf("Apply(%q, %q) = %q, want %q", tt.first, tt.second, got.Surface, tt.want)
		}
		if got.Type != tt.typ {
			t.Errorf("Apply(%q, %q) type = %v, want %v", tt.first, tt.second, got.Type, tt.typ)
		}
	}
}

func TestApplyErrors(t *testing.T) {
	if _, err := Apply("", "अधिक"); !errors.Is(err, engerr.ErrEmptyInput) {
		t.Errorf("empty first: err = %v, want ErrEmptyInput", err)
	}
	if _, err := Apply("अति", ""); !errors.Is(err, engerr.ErrEmptyInput) {
		t.Errorf("empty second: err = %v, want ErrEmptyInput", err)
	}
	if _, err := Apply("घर", "बाटो"); !errors.Is(err, engerr.ErrNoRuleApplies) {
		t.Errorf("no junction: err = %v, want ErrNoRuleApplies", err)
	}
}

func TestSplit(t *testing.T) {
	lex := lexicon.Default()
	tests := []struct {
		word        string
		wantLeft    string
		wantRight   string
	}{
		{"विद्यालय", "विद्या", "आलय"},
		{"सूर्योदय", "सूर्य", "उदय"},
		{"अत्यधिक", "अति", "अधिक"},
		{"हिमालय", "हिम", "आलय"},
		{"देवेन्द्र", "देव", "इन्द्र"},
	}
	for _, tt := range tests {
		got := Split(lex, tt.word)
		found := false
		for _, c := range got {
			if c.Left == tt.wantLeft && c.Right == tt.wantRight {
				found = true
				if !c.Known {
					t.Errorf("Split(%q): %s + %s not marked known", tt.word, c.Left, c.Right)
				}
				if c.Type == "" || c.Rule.Code == "" {
					t.Errorf("Split(%q): %s + %s lacks a rule citation", tt.word, c.Left, c.Right)
				}
			}
		}
		if !found {
			t.Errorf("Split(%q) = %v, missing %s + %s", tt.word, got, tt.wantLeft, tt.wantRight)
		}
	}
}

func TestSplitShortWordIsAtomic(t *testing.T) {
	lex := lexicon.Default()
	for _, w := range []string{"घर", "राम", "दिन"} {
		if got := Split(lex, w); len(got) != 0 {
			t.Errorf("Split(%q) = %v, want none for short word", w, got)
		}
	}
}

func TestSplitNoDuplicates(t *testing.T) {
	lex := lexicon.Default()
	got := Split(lex, "विद्यालय")
	seen := make(map[[2]string]bool)
	for _, c := range got {
		key := [2]string{c.Left, c.Right}
		if seen[key] {
			t.Errorf("duplicate candidate %s + %s", c.Left, c.Right)
		}
		seen[key] = true
	}
}

func TestApplySplitRoundTrip(t *testing.T) {
	lex := lexicon.Default()
	pairs := [][2]string{
		{"विद्या", "आलय"},
		{"सूर्य", "उदय"},
		{"अति", "अधिक"},
		{"देव", "इन्द्र"},
	}
	for _, p := range pairs {
		res, err := Apply(p[0], p[1])
		if err != nil {
			t.Fatalf("Apply(%q, %q): %v", p[0], p[1], err)
		}
		found := false
		for _, c := range Split(lex, res.Surface) {
			if c.Left == p[0] && c.Right == p[1] {
				found = true
			}
		}
		if !found {
			t.Errorf("Split(%q) does not recover %s + %s", res.Surface, p[0], p[1])
		}
	}
}
