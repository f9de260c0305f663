package sandhi

import (
	"sort"
	"strings"
	"unicode/utf8"

	"github.com/nepalinlp/orthography-engine/internal/lexicon"
	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// preSandhiVowels are the independent vowels a right morpheme may have
// started with before fusing.
var preSandhiVowels = []string{"अ", "आ", "इ", "ई", "उ", "ऊ", "ए", "ऐ", "ओ", "औ", "ऋ"}

// matraSources maps a junction matra back to the vowels that could have
// produced it under दीर्घ, गुण, or वृद्धि sandhi.
var matraSources = map[rune][]string{
	'ा': {"अ", "आ"},
	'े': {"इ", "ई"},
	'ो': {"उ", "ऊ"},
	'ै': {"ए", "ऐ"},
	'ौ': {"ओ", "औ"},
}

// Split recovers the morpheme pairs that fuse into word. Every
// candidate is validated: both parts must be lexicon headwords and
// Apply on them must reproduce word exactly. Words shorter than three
// aksharas are atomic and return nil. Candidates come back ranked,
// smaller left fragment first.
func Split(lex *lexicon.Lexicon, word string) []types.SplitCandidate {
	word = script.Normalize(word)
	if script.AksharaCount(word) < 3 {
		return nil
	}

	var out []types.SplitCandidate
	seen := make(map[[2]string]bool)
	try := func(left, right string) {
		key := [2]string{left, right}
		if seen[key] {
			return
		}
		if !lex.Contains(left) || !lex.Contains(right) {
			return
		}
		res, err := Apply(left, right)
		if err != nil || res.Surface != word {
			return
		}
		seen[key] = true
		out = append(out, types.SplitCandidate{
			Left:  left,
			Right: right,
			Type:  res.Type,
			Rule:  res.Rule,
			Known: true,
		})
	}

	for i := 1; i < len(word); i++ {
		if !utf8.RuneStart(word[i]) {
			continue
		}
		left, right := word[:i], word[i:]

		// boundary unchanged by sandhi (retained visarga and the like)
		try(left, right)

		// right lost its initial vowel into the junction
		for _, v := range preSandhiVowels {
			candidate := v + right
			try(left, candidate)
			try(left+"ा", candidate)
			try(left+string(script.Visarga), candidate)
		}

		// यण् reversal: ...्य came from ि/ी, ...्व from ु/ू; the right
		// morpheme's initial vowel rides the glide as a matra or as the
		// absorbed inherent अ
		if base, ok := strings.CutSuffix(left, "्य"); ok {
			for _, l := range []string{base + "ि", base + "ी"} {
				for _, r := range glideRightCandidates(right) {
					try(l, r)
				}
			}
		}
		if base, ok := strings.CutSuffix(left, "्व"); ok {
			for _, l := range []string{base + "ु", base + "ू"} {
				for _, r := range glideRightCandidates(right) {
					try(l, r)
				}
			}
		}

		// विसर्ग → र reversal: full र absorbed a following अ,
		// or र् stands before a voiced consonant
		if rest, ok := strings.CutPrefix(right, "र्"); ok {
			try(left+string(script.Visarga), rest)
		} else if rest, ok := strings.CutPrefix(right, "र"); ok {
			try(left+string(script.Visarga), "अ"+rest)
		}

		// sibilant-cluster reversal: श्+च/छ, ष्+ट/ठ, स्+त/थ ← विसर्ग
		for sibilant, stops := range map[string]string{"श": "चछ", "ष": "टठ", "स": "तथ"} {
			base, ok := strings.CutSuffix(left, sibilant+string(script.Halanta))
			if !ok {
				continue
			}
			if fos, _ := utf8.DecodeRuneInString(right); strings.ContainsRune(stops, fos) {
				try(base+string(script.Visarga), right)
			}
		}

		// अयादि reversal: ाय←ऐ, य←ए, ाव←औ, व←ओ
		ayadi := [][2]string{}
		if base, ok := strings.CutSuffix(left, "ाय"); ok {
			ayadi = append(ayadi, [2]string{base + "ै", base + "ऐ"})
		} else if base, ok := strings.CutSuffix(left, "य"); ok {
			ayadi = append(ayadi, [2]string{base + "े", base + "ए"})
		}
		if base, ok := strings.CutSuffix(left, "ाव"); ok {
			ayadi = append(ayadi, [2]string{base + "ौ", base + "औ"})
		} else if base, ok := strings.CutSuffix(left, "व"); ok {
			ayadi = append(ayadi, [2]string{base + "ो", base + "ओ"})
		}
		for _, pair := range ayadi {
			for _, l := range pair {
				for _, r := range glideRightCandidates(right) {
					try(l, r)
				}
			}
		}

		// junction matra reconstruction: सूर्य|ोदय ← सूर्य + उदय
		if fos, size := utf8.DecodeRuneInString(right); size > 0 {
			if sources, ok := matraSources[fos]; ok {
				remainder := right[size:]
				for _, v := range sources {
					candidate := v + remainder
					try(left, candidate)
					try(left+"ा", candidate)
					try(left+string(script.Visarga), candidate)
				}
			}
		}
	}

	// degenerate fragments are roots, not compounds
	filtered := out[:0]
	for _, c := range out {
		if script.AksharaCount(c.Left) >= 2 && script.AksharaCount(c.Right) >= 2 {
			filtered = append(filtered, c)
		}
	}
	out = filtered

	sortCandidates(out)
	return out
}

// glideRightCandidates proposes the pre-sandhi right morpheme behind a
// glide junction. A leading matra maps back to its independent vowel;
// a leading consonant means the glide absorbed an initial अ, but the
// other vowels are proposed too for the visarga-style boundaries.
func glideRightCandidates(right string) []string {
	if fos, size := utf8.DecodeRuneInString(right); size > 0 && script.IsMatra(fos) {
		if svar, ok := script.SvarFor(fos); ok {
			return []string{string(svar) + right[size:]}
		}
		return nil
	}
	out := make([]string, 0, len(preSandhiVowels))
	for _, v := range preSandhiVowels {
		out = append(out, v+right)
	}
	return out
}

func sortCandidates(out []types.SplitCandidate) {
	sort.Slice(out, func(i, j int) bool {
		li, lj := script.AksharaCount(out[i].Left), script.AksharaCount(out[j].Left)
		if li != lj {
			return li < lj
		}
		if out[i].Left != out[j].Left {
			return out[i].Left < out[j].Left
		}
		return out[i].Right < out[j].Right
	})
}
