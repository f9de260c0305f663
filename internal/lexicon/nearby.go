package lexicon

import (
	"sort"
	"strings"

	"github.com/nepalinlp/orthography-engine/internal/script"
)

// Suggestion is a headword within edit distance of a query.
type Suggestion struct {
	Word     string
	Distance int
}

// Nearby returns up to limit headwords within maxDist rune edits of
// word, closest first, ties in sorted key order. The scan walks the
// whole key set; it serves suggestion lists, not the lookup hot path.
func (l *Lexicon) Nearby(word string, maxDist, limit int) []Suggestion {
	if maxDist <= 0 || limit <= 0 {
		return nil
	}
	query := []rune(script.Normalize(word))
	var out []Suggestion
	l.fsa.Walk(func(key string, ordinal int) {
		if strings.Contains(key, "\x1f") {
			return
		}
		if _, _, corr := unpackMeta(l.meta[ordinal]); corr != 0 {
			return
		}
		candidate := []rune(key)
		if diff := len(candidate) - len(query); diff > maxDist || diff < -maxDist {
			return
		}
		if d, ok := editDistanceWithin(query, candidate, maxDist); ok && d > 0 {
			out = append(out, Suggestion{Word: key, Distance: d})
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Distance != out[j].Distance {
			return out[i].Distance < out[j].Distance
		}
		return out[i].Word < out[j].Word
	})
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// editDistanceWithin computes the Levenshtein distance between a and b
// if it does not exceed maxDist, using a banded two-row table.
func editDistanceWithin(a, b []rune, maxDist int) (int, bool) {
	if len(a) == 0 {
		return len(b), len(b) <= maxDist
	}
	if len(b) == 0 {
		return len(a), len(a) <= maxDist
	}
	prev := make([]int, len(b)+1)
	cur := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}
	for i := 1; i <= len(a); i++ {
		cur[0] = i
		rowMin := cur[0]
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			d := prev[j-1] + cost
			if del := prev[j] + 1; del < d {
				d = del
			}
			if ins := cur[j-1] + 1; ins < d {
				d = ins
			}
			cur[j] = d
			if d < rowMin {
				rowMin = d
			}
		}
		if rowMin > maxDist {
			return 0, false
		}
		prev, cur = cur, prev
	}
	if prev[len(b)] > maxDist {
		return 0, false
	}
	return prev[len(b)], true
}
