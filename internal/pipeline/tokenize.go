package pipeline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

const tokenPunct = ".,!?;:-()[]{}\"'/।…"

// Tokenize splits text on whitespace, strips surrounding punctuation
// and keeps only tokens containing Devanagari. Spans are byte offsets
// into the original text.
func Tokenize(text string) []types.Token {
	var tokens []types.Token
	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		if unicode.IsSpace(r) {
			i += size
			continue
		}
		start := i
		for i < len(text) {
			r, size = utf8.DecodeRuneInString(text[i:])
			if unicode.IsSpace(r) {
				break
			}
			i += size
		}
		seg := text[start:i]
		lead, tail := trimPunct(seg)
		if lead >= tail {
			continue
		}
		word := seg[lead:tail]
		if !script.ContainsDevanagari(word) {
			continue
		}
		tokens = append(tokens, types.Token{
			Text:  word,
			Start: start + lead,
			End:   start + tail,
		})
	}
	return tokens
}

// trimPunct returns the byte range of seg with surrounding punctuation
// removed.
func trimPunct(seg string) (int, int) {
	lead := 0
	for lead < len(seg) {
		r, size := utf8.DecodeRuneInString(seg[lead:])
		if !strings.ContainsRune(tokenPunct, r) {
			break
		}
		lead += size
	}
	tail := len(seg)
	for tail > lead {
		r, size := utf8.DecodeLastRuneInString(seg[:tail])
		if !strings.ContainsRune(tokenPunct, r) {
			break
		}
		tail -= size
	}
	return lead, tail
}

// Case and plural markers that attach directly to a word. Longest
// first, so combined forms win over their tails.
var caseMarkers = []string{
	"हरूलाई", "हरूले", "हरूको", "हरूका", "हरूमा",
	"हरू", "हरु", "लाई", "देखि", "सम्म", "बाट", "सँग",
	"ले", "मा", "को", "का", "की",
}

// analyze detaches a trailing case marker when the remaining stem is a
// plausible word: either lexicon-attested or a curated misspelling. A
// token boundary never separates a word from its marker, so correction
// spans stay whole.
func (c *Checker) analyze(tokens []types.Token) []types.AnalyzedToken {
	out := make([]types.AnalyzedToken, len(tokens))
	for i, tok := range tokens {
		out[i] = types.AnalyzedToken{Token: tok, Stem: tok.Text}
		for _, marker := range caseMarkers {
			stem, ok := strings.CutSuffix(tok.Text, marker)
			if !ok || utf8.RuneCountInString(stem) < 2 {
				continue
			}
			if verdict, _ := c.lex.Lookup(stem); verdict == types.VerdictUnknown {
				continue
			}
			out[i].Stem = stem
			out[i].Suffix = marker
			break
		}
	}
	return out
}
