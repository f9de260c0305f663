// Package punctuation scans running text for convention violations:
// latin sentence-enders, straight quotes, unbalanced brackets and
// misplaced spacing around marks. Checks fire only in Devanagari
// context so mixed-script documents keep their latin punctuation.
package punctuation

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Ellipsis is the single-character replacement for dot runs.
const Ellipsis = "…"

// Check reports every punctuation finding in text, sorted by span.
func Check(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	diags = append(diags, checkPeriods(text)...)
	diags = append(diags, checkEllipsis(text)...)
	diags = append(diags, checkQuotes(text)...)
	diags = append(diags, checkMarkSpacing(text)...)
	diags = append(diags, checkSlashSpacing(text)...)
	diags = append(diags, checkDoubledComma(text)...)
	diags = append(diags, checkBracketBalance(text)...)

	sort.Slice(diags, func(i, j int) bool {
		if diags[i].Span.Start != diags[j].Span.Start {
			return diags[i].Span.Start < diags[j].Span.Start
		}
		return diags[i].Span.End < diags[j].Span.End
	})
	return diags
}

func diag(start, end int, found, want, code, note string) types.Diagnostic {
	return types.Diagnostic{
		Span:       types.Span{Start: start, End: end},
		Found:      found,
		Want:       want,
		Kind:       types.KindError,
		Category:   types.CategoryPunctuation,
		Rule:       types.Rule{Source: types.SourceChihna, Code: code},
		Confidence: 1,
		Note:       note,
	}
}

// devanagariBefore reports Devanagari among the ten runes ending at pos.
func devanagariBefore(text string, pos int) bool {
	s := text[:pos]
	for i := 0; i < 10 && s != ""; i++ {
		r, size := utf8.DecodeLastRuneInString(s)
		if script.IsDevanagari(r) {
			return true
		}
		s = s[:len(s)-size]
	}
	return false
}

// devanagariAfter reports Devanagari among the ten runes starting at pos.
func devanagariAfter(text string, pos int) bool {
	seen := 0
	for _, r := range text[pos:] {
		if script.IsDevanagari(r) {
			return true
		}
		seen++
		if seen >= 10 {
			break
		}
	}
	return false
}

// A sentence written in Devanagari ends with the danda, not a period.
// Periods survive inside abbreviations (डा. राम) and ellipses.
func checkPeriods(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	for i := 0; i < len(text); i++ {
		if text[i] != '.' {
			continue
		}
		if !devanagariBefore(text, i) {
			continue
		}
		if partOfDotRun(text, i) {
			continue
		}

		end := i + 1
		switch {
		case end >= len(text) || text[end] == '\n' || text[end] == '\r':
			// Sentence-final position: always wrong, even after an
			// abbreviation token.
			diags = append(diags, diag(i, end, ".", string(script.Danda),
				"५-पूर्णविराम", "वाक्यको अन्त्यमा पूर्णविराम (।) प्रयोग हुन्छ"))
		case text[end] == ' ':
			if !isAbbreviationDot(text, i) {
				diags = append(diags, diag(i, end, ".", string(script.Danda),
					"५-पूर्णविराम", "वाक्यको अन्त्यमा पूर्णविराम (।) प्रयोग हुन्छ"))
			}
		}
	}
	return diags
}

func partOfDotRun(text string, pos int) bool {
	if pos >= 2 && text[pos-1] == '.' && text[pos-2] == '.' {
		return true
	}
	return pos+1 < len(text) && text[pos+1] == '.'
}

// Conservative allowlist; a blanket short-token test would swallow real
// sentence enders like "म यहाँ हुँ. तिमी?".
var abbreviationAllowlist = []string{"डा", "श्री", "प्रा", "सं", "वि"}

func isAbbreviationDot(text string, pos int) bool {
	word := lastToken(text[:pos])
	for _, abbr := range abbreviationAllowlist {
		if word == abbr {
			return true
		}
	}
	// Chains like "त्रि.वि." or "अ. दु. अ. आ." are abbreviation runs.
	if isShortDevanagariToken(word) &&
		(followsAbbreviationChain(text, pos) || precededByAbbreviationChain(text, pos-len(word))) {
		return true
	}
	return false
}

// lastToken returns the text after the final whitespace or dot, so
// dotted chains like त्रि.वि. yield the segment before the cursor.
func lastToken(s string) string {
	if i := strings.LastIndexFunc(s, func(r rune) bool {
		return unicode.IsSpace(r) || r == '.'
	}); i >= 0 {
		_, size := utf8.DecodeRuneInString(s[i:])
		return s[i+size:]
	}
	return s
}

func isShortDevanagariToken(token string) bool {
	n := utf8.RuneCountInString(token)
	if n == 0 || n > 4 {
		return false
	}
	for _, r := range token {
		if !script.IsDevanagari(r) {
			return false
		}
	}
	return true
}

func followsAbbreviationChain(text string, periodPos int) bool {
	i := periodPos + 1
	for i < len(text) && (text[i] == ' ' || text[i] == '\t') {
		i++
	}
	j := i
	for j < len(text) {
		r, size := utf8.DecodeRuneInString(text[j:])
		if !script.IsDevanagari(r) {
			break
		}
		j += size
	}
	if j == i || !isShortDevanagariToken(text[i:j]) {
		return false
	}
	return j < len(text) && text[j] == '.'
}

func precededByAbbreviationChain(text string, wordStart int) bool {
	i := wordStart
	for i > 0 && (text[i-1] == ' ' || text[i-1] == '\t') {
		i--
	}
	if i == 0 || text[i-1] != '.' {
		return false
	}
	return isShortDevanagariToken(lastToken(text[:i-1]))
}

// Three or more periods collapse to the ellipsis character.
func checkEllipsis(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	for i := 0; i+2 < len(text); {
		if text[i] != '.' || text[i+1] != '.' || text[i+2] != '.' {
			i++
			continue
		}
		start := i
		for i < len(text) && text[i] == '.' {
			i++
		}
		if devanagariBefore(text, start) || devanagariAfter(text, i) {
			diags = append(diags, diag(start, i, text[start:i], Ellipsis,
				"५-ऐजनबिन्दु", "धेरै थोप्लाको सट्टा ऐजन बिन्दु (…) प्रयोग हुन्छ"))
		}
	}
	return diags
}

// Straight ASCII quotes become typographic quotes. Opening or closing
// is guessed from the left context.
func checkQuotes(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	for i, r := range text {
		if r != '"' && r != '\'' {
			continue
		}
		if !devanagariBefore(text, i) && !devanagariAfter(text, i+1) {
			continue
		}
		opening := i == 0
		if !opening {
			prev, _ := utf8.DecodeLastRuneInString(text[:i])
			opening = unicode.IsSpace(prev) || strings.ContainsRune("([{-", prev)
		}
		var want, code string
		if r == '"' {
			code = "५-दोहोरो-उद्धरण"
			if opening {
				want = "“"
			} else {
				want = "”"
			}
		} else {
			code = "५-एकल-उद्धरण"
			if opening {
				want = "‘"
			} else {
				want = "’"
			}
		}
		diags = append(diags, diag(i, i+1, string(r), want, code,
			"उद्धरण चिह्नमा टाइपोग्राफिक उद्धरण प्रयोग हुन्छ"))
	}
	return diags
}

// ? ! ; , attach to the previous word; a space before them is flagged.
func checkMarkSpacing(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	for i, r := range text {
		if r != '?' && r != '!' && r != ';' && r != ',' {
			continue
		}
		if !devanagariBefore(text, i) {
			continue
		}
		prev, size := utf8.DecodeLastRuneInString(text[:i])
		if size == 0 || !unicode.IsSpace(prev) {
			continue
		}
		start := i - size
		diags = append(diags, diag(start, i+utf8.RuneLen(r), text[start:i+utf8.RuneLen(r)], string(r),
			"५-चिह्न-स्थान", "विराम चिह्न अघिल्लो शब्दसँगै लेखिन्छ"))
	}
	return diags
}

// The slash joins alternatives directly: तिमी/उहाँ, not तिमी / उहाँ.
func checkSlashSpacing(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	for i := 0; i < len(text); i++ {
		if text[i] != '/' {
			continue
		}
		start, end := i, i+1
		if prev, size := utf8.DecodeLastRuneInString(text[:i]); size > 0 && unicode.IsSpace(prev) {
			start -= size
		}
		if i+1 < len(text) {
			if next, size := utf8.DecodeRuneInString(text[i+1:]); size > 0 && unicode.IsSpace(next) {
				end += size
			}
		}
		if start == i && end == i+1 {
			continue
		}
		if !devanagariBefore(text, i) && !devanagariAfter(text, i+1) {
			continue
		}
		diags = append(diags, diag(start, end, text[start:end], "/",
			"५-तिर्यक", "तिर्यक् विराम (/) विकल्पका शब्दसँगै लेखिन्छ"))
	}
	return diags
}

// ऐजन is two commas with no gap.
func checkDoubledComma(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	for i := 0; i < len(text); {
		if text[i] != ',' {
			i++
			continue
		}
		j := i + 1
		for j < len(text) && (text[j] == ' ' || text[j] == '\t') {
			j++
		}
		if j > i+1 && j < len(text) && text[j] == ',' &&
			(devanagariBefore(text, i) || devanagariAfter(text, j+1)) {
			diags = append(diags, diag(i, j+1, text[i:j+1], ",,",
				"५-ऐजन", "ऐजन चिह्नका दुई अल्पविराम सँगै लेखिन्छन्"))
			i = j + 1
			continue
		}
		i++
	}
	return diags
}

// Unmatched parentheses in Devanagari context.
func checkBracketBalance(text string) []types.Diagnostic {
	var diags []types.Diagnostic
	var stack []int
	for i, r := range text {
		switch r {
		case '(':
			stack = append(stack, i)
		case ')':
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
				continue
			}
			if devanagariBefore(text, i) || devanagariAfter(text, i+1) {
				diags = append(diags, diag(i, i+1, ")", "()",
					"५-कोष्ठक", "कोष्ठक चिह्न सन्तुलित हुनुपर्छ"))
			}
		}
	}
	for _, start := range stack {
		if devanagariBefore(text, start) || devanagariAfter(text, start+1) {
			diags = append(diags, diag(start, start+1, "(", "()",
				"५-कोष्ठक", "कोष्ठक चिह्न सन्तुलित हुनुपर्छ"))
		}
	}
	return diags
}
