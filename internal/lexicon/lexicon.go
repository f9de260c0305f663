// Package lexicon implements the engine's word store: a minimal
// acyclic automaton over UTF-8 keys with packed per-word metadata
// (origin class, gender, correction index) and a versioned binary blob
// form for offline distribution. Lookups are read-only, safe for
// concurrent use, and allocation-free.
package lexicon

import (
	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// Metadata packing: 2 bits origin, 2 bits gender, 28 bits correction
// index. Index 0 means the form is correct as written.
const (
	originBits     = 2
	genderBits     = 2
	metaShift      = originBits + genderBits
	originMask     = 1<<originBits - 1
	genderMask     = 1<<genderBits - 1
	maxCorrections = 1<<(32-metaShift) - 1
)

// keyExt is appended to a headword key when a curated correction claims
// the same surface form. The headword metadata stays reachable under
// the extended key while the correction wins the plain lookup.
const keyExt = "\x1f\x01"

func packMeta(origin types.Origin, gender types.Gender, correction uint32) uint32 {
	return uint32(origin) | uint32(gender)<<originBits | correction<<metaShift
}

func unpackMeta(m uint32) (types.Origin, types.Gender, uint32) {
	return types.Origin(m & originMask),
		types.Gender(m >> originBits & genderMask),
		m >> metaShift
}

// Correction is the curated replacement for a known misspelling.
type Correction struct {
	Want string
	Rule types.Rule
	Note string
}

// Entry is one build input: a surface form with its metadata.
type Entry struct {
	Key        string
	Origin     types.Origin
	Gender     types.Gender
	Correction uint32
}

// Lexicon is the immutable word store.
type Lexicon struct {
	fsa         *Automaton
	meta        []uint32
	corrections []Correction
}

// Build constructs a Lexicon from entries and the correction-target
// table. Entries are sorted internally; the result depends only on the
// set of entries, not their order. corrections[0] must be the zero
// value (index 0 means "correct").
func Build(entries []Entry, corrections []Correction) (*Lexicon, error) {
	keys := make([]string, len(entries))
	byKey := make(map[string]Entry, len(entries))
	for i, e := range entries {
		keys[i] = e.Key
		byKey[e.Key] = e
	}
	fsa, err := buildAutomaton(keys)
	if err != nil {
		return nil, err
	}
	meta := make([]uint32, fsa.Len())
	fsa.Walk(func(key string, ordinal int) {
		e := byKey[key]
		meta[ordinal] = packMeta(e.Origin, e.Gender, e.Correction)
	})
	if len(corrections) == 0 {
		corrections = []Correction{{}}
	}
	return &Lexicon{fsa: fsa, meta: meta, corrections: corrections}, nil
}

// Len returns the number of stored surface forms, key-extension
// entries included.
func (l *Lexicon) Len() int {
	return l.fsa.Len()
}

// Contains reports whether word is an accepted headword. A form
// displaced by a correction entry still counts when its headword record
// survives under the extension key.
func (l *Lexicon) Contains(word string) bool {
	word = script.Normalize(word)
	ord, ok := l.fsa.Index(word)
	if !ok {
		return false
	}
	if _, _, corr := unpackMeta(l.meta[ord]); corr == 0 {
		return true
	}
	return l.fsa.Accepts(word + keyExt)
}

// Lookup returns the three-way verdict for word. For VerdictIncorrect
// the curated correction is returned as well.
func (l *Lexicon) Lookup(word string) (types.Verdict, *Correction) {
	word = script.Normalize(word)
	ord, ok := l.fsa.Index(word)
	if !ok {
		return types.VerdictUnknown, nil
	}
	_, _, corr := unpackMeta(l.meta[ord])
	if corr == 0 {
		return types.VerdictCorrect, nil
	}
	if int(corr) >= len(l.corrections) {
		return types.VerdictUnknown, nil
	}
	return types.VerdictIncorrect, &l.corrections[corr]
}

// OriginOf returns the recorded origin class of a headword. When the
// plain key is claimed by a correction, the displaced headword record
// is consulted.
func (l *Lexicon) OriginOf(word string) (types.Origin, bool) {
	m, ok := l.headwordMeta(word)
	if !ok {
		return types.OriginDeshaj, false
	}
	origin, _, _ := unpackMeta(m)
	return origin, true
}

// GenderOf returns the recorded gender of a headword.
func (l *Lexicon) GenderOf(word string) (types.Gender, bool) {
	m, ok := l.headwordMeta(word)
	if !ok {
		return types.GenderNone, false
	}
	_, gender, _ := unpackMeta(m)
	return gender, true
}

func (l *Lexicon) headwordMeta(word string) (uint32, bool) {
	word = script.Normalize(word)
	ord, ok := l.fsa.Index(word)
	if !ok {
		return 0, false
	}
	m := l.meta[ord]
	if _, _, corr := unpackMeta(m); corr == 0 {
		return m, true
	}
	extOrd, ok := l.fsa.Index(word + keyExt)
	if !ok {
		return 0, false
	}
	return l.meta[extOrd], true
}
