// Package pipeline turns running text into ranked, span-accurate
// diagnostics. Tokens fan out across workers for the word-level pass;
// phrase, grammar and punctuation passes run over the raw text; the
// merged result is sorted by span.
package pipeline

import (
	"context"
	"log/slog"
	"runtime"
	"sort"
	"strings"
	"sync"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"github.com/nepalinlp/orthography-engine/internal/derivation"
	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	"github.com/nepalinlp/orthography-engine/internal/punctuation"
	"github.com/nepalinlp/orthography-engine/pkg/errors"
	"github.com/nepalinlp/orthography-engine/pkg/logger"
	"github.com/nepalinlp/orthography-engine/pkg/metrics"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Options controls the optional passes of a text check.
type Options struct {
	// Grammar enables heuristic, lower-confidence suggestions. They are
	// advisory and never emitted unless requested.
	Grammar bool `yaml:"grammar"`
}

// DefaultOptions is the conservative configuration: rule-backed
// findings only.
func DefaultOptions() Options {
	return Options{}
}

// Checker runs the full diagnostic pipeline. Safe for concurrent use.
type Checker struct {
	engine  *derivation.Engine
	lex     *lexicon.Lexicon
	log     *slog.Logger
	metrics *metrics.Metrics
	phrases phraseFile
}

// New builds a Checker on top of a derivation engine. log and m may be
// nil; metrics are simply not recorded then.
func New(engine *derivation.Engine, log *slog.Logger, m *metrics.Metrics) (*Checker, error) {
	phrases, err := loadPhrases()
	if err != nil {
		return nil, errors.Newf(errors.ErrInvalidInput, "pipeline", "phrase table: %v", err)
	}
	if log == nil {
		log = logger.WithComponent("pipeline")
	}
	if m != nil {
		m.LexiconSize.Set(float64(engine.Lexicon().Len()))
	}
	return &Checker{
		engine:  engine,
		lex:     engine.Lexicon(),
		log:     log,
		metrics: m,
		phrases: phrases,
	}, nil
}

var (
	defaultOnce    sync.Once
	defaultChecker *Checker
)

// Default returns the checker over the embedded lexicon. The embedded
// phrase table is validated at build time, so failure here is a
// programming error.
func Default() *Checker {
	defaultOnce.Do(func() {
		c, err := New(derivation.Default(), nil, nil)
		if err != nil {
			panic(err)
		}
		defaultChecker = c
	})
	return defaultChecker
}

// firstRewrite picks the first step that changed the text; traces open
// with a non-rewriting classification step for origin-gated rules.
func firstRewrite(steps []types.Step) (types.Rule, string) {
	for _, s := range steps {
		if s.Before != s.After {
			return s.Rule, s.Note
		}
	}
	if len(steps) > 0 {
		return steps[0].Rule, steps[0].Note
	}
	return types.Rule{}, ""
}

// CheckWord checks one word. Correct and unknown words yield nil; a
// correcting derivation yields one diagnostic spanning the whole word.
func (c *Checker) CheckWord(word string) *types.Diagnostic {
	if word == "" {
		return nil
	}
	start := time.Now()
	d := c.engine.Derive(word)
	if c.metrics != nil {
		c.metrics.DeriveLatency.Observe(time.Since(start).Seconds())
	}
	if d.Correct {
		if c.metrics != nil {
			outcome := "unknown"
			if c.lex.Contains(d.Output) {
				outcome = "correct"
			}
			c.metrics.WordChecksTotal.WithLabelValues(outcome).Inc()
		}
		return nil
	}

	rule, note := firstRewrite(d.Steps)
	if c.metrics != nil {
		c.metrics.WordChecksTotal.WithLabelValues("corrected").Inc()
		c.metrics.DiagnosticsTotal.WithLabelValues(string(d.Category)).Inc()
	}
	return &types.Diagnostic{
		Span:       types.Span{Start: 0, End: len(word)},
		Found:      word,
		Want:       d.Output,
		Kind:       d.Kind,
		Category:   d.Category,
		Rule:       rule,
		Confidence: 1,
		Note:       note,
		Steps:      d.Steps,
	}
}

// checkToken checks one analyzed token and rebases the diagnostic onto
// the token's span. A detached case marker is reattached so the
// replacement covers the full surface form.
func (c *Checker) checkToken(tok types.AnalyzedToken) *types.Diagnostic {
	if tok.Suffix != "" && c.lex.Contains(tok.Stem+tok.Suffix) {
		// The agglutinative form is itself attested; the stem's rules
		// do not apply to it.
		return nil
	}
	d := c.CheckWord(tok.Stem)
	if d == nil {
		return nil
	}
	d.Span = types.Span{Start: tok.Start, End: tok.End}
	if tok.Suffix != "" {
		d.Found += tok.Suffix
		d.Want += tok.Suffix
	}
	return d
}

// Texts below this token count are checked inline; goroutine handoff
// costs more than the lookups it would spread.
const fanOutThreshold = 32

// CheckText runs every pass over text and returns the diagnostics
// sorted by span start. Token checks are independent and fan out across
// workers above fanOutThreshold tokens; all other passes are single
// sweeps over the raw text.
func (c *Checker) CheckText(ctx context.Context, text string, opts Options) []types.Diagnostic {
	start := time.Now()
	tokens := c.analyze(Tokenize(text))

	results := make([]*types.Diagnostic, len(tokens))
	if len(tokens) < fanOutThreshold {
		for i, tok := range tokens {
			results[i] = c.checkToken(tok)
		}
	} else {
		g, _ := errgroup.WithContext(ctx)
		g.SetLimit(runtime.GOMAXPROCS(0))
		for i, tok := range tokens {
			i, tok := i, tok
			g.Go(func() error {
				results[i] = c.checkToken(tok)
				return nil
			})
		}
		_ = g.Wait()
	}

	var diags []types.Diagnostic
	blocked := make(map[types.Span]bool)
	for _, d := range results {
		if d != nil {
			diags = append(diags, *d)
			blocked[d.Span] = true
		}
	}

	diags = c.phrasePass(text, c.phrases.Padayog, blocked, diags,
		types.Rule{Source: types.SourceVarnaVinyas, Code: "३(घ)"},
		types.KindError, 0.95, "पदयोग/पदवियोग: ")
	if opts.Grammar {
		diags = c.phrasePass(text, c.phrases.Style, blocked, diags,
			types.Rule{Source: types.SourceVyakaran, Code: "दफा४-शैली"},
			types.KindVariant, 0.78, "शैली सुझाव: ")
		diags = c.grammarPass(tokens, blocked, diags)
	}

	diags = append(diags, punctuation.Check(text)...)

	sort.SliceStable(diags, func(i, j int) bool {
		if diags[i].Span.Start != diags[j].Span.Start {
			return diags[i].Span.Start < diags[j].Span.Start
		}
		return diags[i].Span.End < diags[j].Span.End
	})

	if c.metrics != nil {
		c.metrics.TextCheckLatency.Observe(time.Since(start).Seconds())
		c.metrics.TextCheckBytes.Observe(float64(len(text)))
	}
	c.log.DebugContext(ctx, "text checked",
		"bytes", len(text),
		"tokens", len(tokens),
		"diagnostics", len(diags),
		"duration", time.Since(start),
	)
	return diags
}

// phrasePass matches a phrase table against the raw text at word
// boundaries. Spans already claimed by the word pass stay untouched.
func (c *Checker) phrasePass(text string, specs []phraseSpec, blocked map[types.Span]bool,
	diags []types.Diagnostic, rule types.Rule, kind types.DiagnosticKind,
	confidence float64, notePrefix string) []types.Diagnostic {

	for _, spec := range specs {
		for from := 0; ; {
			i := strings.Index(text[from:], spec.Wrong)
			if i < 0 {
				break
			}
			span := types.Span{Start: from + i, End: from + i + len(spec.Wrong)}
			from = span.End
			if blocked[span] || overlapsAny(diags, span) || !atWordBoundary(text, span) {
				continue
			}
			diags = append(diags, types.Diagnostic{
				Span:       span,
				Found:      spec.Wrong,
				Want:       spec.Right,
				Kind:       kind,
				Category:   types.CategoryTableLookup,
				Rule:       rule,
				Confidence: confidence,
				Note:       notePrefix + spec.Note,
			})
			blocked[span] = true
		}
	}
	return diags
}

func overlapsAny(diags []types.Diagnostic, span types.Span) bool {
	for _, d := range diags {
		if d.Span.Start < span.End && span.Start < d.Span.End {
			return true
		}
	}
	return false
}

func atWordBoundary(text string, span types.Span) bool {
	if span.Start > 0 {
		r, _ := utf8.DecodeLastRuneInString(text[:span.Start])
		if !isBoundaryRune(r) {
			return false
		}
	}
	if span.End < len(text) {
		r, _ := utf8.DecodeRuneInString(text[span.End:])
		if !isBoundaryRune(r) {
			return false
		}
	}
	return true
}

func isBoundaryRune(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r' ||
		strings.ContainsRune(tokenPunct, r)
}
