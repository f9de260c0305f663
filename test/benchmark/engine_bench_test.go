package benchmark

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"github.com/nepalinlp/orthography-engine/internal/derivation"
	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	"github.com/nepalinlp/orthography-engine/internal/pipeline"
	"github.com/nepalinlp/orthography-engine/internal/sandhi"
)

// BenchmarkLexiconLookup measures single-word lookup latency. Lookup is
// the innermost hot path of every rule, so it must stay allocation-free.
func BenchmarkLexiconLookup(b *testing.B) {
	lex := lexicon.Default()
	words := []struct {
		name string
		word string
	}{
		{"headword", "नेपाल"},
		{"correction", "अत्याधिक"},
		{"miss", "क्वालिफायर"},
		{"long_headword", "सूर्योदय"},
	}
	for _, w := range words {
		b.Run(w.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				v, _ := lex.Lookup(w.word)
				_ = v
			}
		})
	}
}

// BenchmarkDerive measures full derivations across the rule families.
func BenchmarkDerive(b *testing.B) {
	eng := derivation.Default()
	words := []struct {
		name string
		word string
	}{
		{"correct", "नेपाल"},
		{"table", "अत्याधिक"},
		{"vowel_length", "मीठो"},
		{"conjunct", "श्रृङ्खला"},
		{"chained", "खुषी"},
	}
	for _, w := range words {
		b.Run(w.name, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				d := eng.Derive(w.word)
				_ = d
			}
		})
	}
}

// BenchmarkCheckText measures the full pipeline over texts of
// increasing length.
func BenchmarkCheckText(b *testing.B) {
	c := pipeline.Default()
	sentence := "नेपाल सुन्दर देश हो र यहाँका मानिस मिठो खाना खान्छन्। "
	ctx := context.Background()
	for _, n := range []int{1, 16, 256} {
		text := strings.Repeat(sentence, n)
		b.Run(fmt.Sprintf("sentences_%d", n), func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				diags := c.CheckText(ctx, text, pipeline.Options{})
				_ = diags
			}
		})
	}
}

// BenchmarkCheckTextGrammar isolates the cost of the heuristic passes.
func BenchmarkCheckTextGrammar(b *testing.B) {
	c := pipeline.Default()
	text := strings.Repeat("धेरै मानिसहरू देवालय तिर गए। ", 16)
	ctx := context.Background()
	for _, opts := range []struct {
		name string
		o    pipeline.Options
	}{
		{"plain", pipeline.Options{}},
		{"grammar", pipeline.Options{Grammar: true}},
	} {
		b.Run(opts.name, func(b *testing.B) {
			b.ReportAllocs()
			b.SetBytes(int64(len(text)))
			for i := 0; i < b.N; i++ {
				diags := c.CheckText(ctx, text, opts.o)
				_ = diags
			}
		})
	}
}

// BenchmarkSandhiSplit measures compound decomposition, the most
// search-heavy single-word operation.
func BenchmarkSandhiSplit(b *testing.B) {
	lex := derivation.Default().Lexicon()
	for _, w := range []string{"विद्यालय", "सूर्योदय", "हिमालय"} {
		b.Run(w, func(b *testing.B) {
			b.ReportAllocs()
			for i := 0; i < b.N; i++ {
				out := sandhi.Split(lex, w)
				_ = out
			}
		})
	}
}

// BenchmarkNearby measures the suggestion scan; it walks the whole key
// set and sets the upper bound on interactive suggestion latency.
func BenchmarkNearby(b *testing.B) {
	lex := derivation.Default().Lexicon()
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		out := lex.Nearby("नेपल", 2, 10)
		_ = out
	}
}
