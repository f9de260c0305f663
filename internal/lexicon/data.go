package lexicon

import (
	"embed"
	"fmt"
	"strings"
	"sync"

	"gopkg.in/yaml.v3"

	"github.com/nepalinlp/orthography-engine/internal/script"
	"github.com/nepalinlp/orthography-engine/pkg/types"
)

//go:embed data/words.txt data/corrections.yaml
var dataFS embed.FS

type correctionFile struct {
	Corrections []correctionSpec `yaml:"corrections"`
}

type correctionSpec struct {
	Wrong  string `yaml:"wrong"`
	Right  string `yaml:"right"`
	Source string `yaml:"source"`
	Code   string `yaml:"code"`
	Note   string `yaml:"note"`
}

var (
	defaultOnce sync.Once
	defaultLex  *Lexicon
	defaultErr  error
)

// Default returns the process-wide lexicon built from the embedded
// data. The build runs once and goes through the blob codec round trip,
// so the serialised form is exercised on every startup. Default panics
// on a build failure: the embedded data is part of the binary and a
// failure there is a packaging defect, not a runtime condition.
func Default() *Lexicon {
	defaultOnce.Do(func() {
		defaultLex, defaultErr = loadEmbedded()
	})
	if defaultErr != nil {
		panic(fmt.Sprintf("lexicon: embedded data failed to load: %v", defaultErr))
	}
	return defaultLex
}

func loadEmbedded() (*Lexicon, error) {
	wordsRaw, err := dataFS.ReadFile("data/words.txt")
	if err != nil {
		return nil, fmt.Errorf("reading embedded word list: %w", err)
	}
	corrRaw, err := dataFS.ReadFile("data/corrections.yaml")
	if err != nil {
		return nil, fmt.Errorf("reading embedded corrections: %w", err)
	}
	built, err := BuildFromSources(string(wordsRaw), corrRaw)
	if err != nil {
		return nil, err
	}
	// round trip through the blob codec so a format regression fails fast
	decoded, err := Unmarshal(built.Marshal())
	if err != nil {
		return nil, fmt.Errorf("codec round trip: %w", err)
	}
	return decoded, nil
}

// BuildFromSources builds a lexicon from a headword list and a YAML
// correction table. The word list holds one headword per line with
// optional origin= and gender= tags; # starts a comment.
func BuildFromSources(wordList string, correctionsYAML []byte) (*Lexicon, error) {
	type headword struct {
		origin types.Origin
		gender types.Gender
	}
	headwords := make(map[string]headword)
	for lineNo, line := range strings.Split(wordList, "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.Fields(line)
		word := script.Normalize(fields[0])
		hw := headword{}
		for _, f := range fields[1:] {
			switch {
			case strings.HasPrefix(f, "origin="):
				hw.origin = types.ParseOrigin(strings.TrimPrefix(f, "origin="))
			case strings.HasPrefix(f, "gender="):
				hw.gender = types.ParseGender(strings.TrimPrefix(f, "gender="))
			default:
				return nil, fmt.Errorf("word list line %d: unknown tag %q", lineNo+1, f)
			}
		}
		headwords[word] = hw
	}

	var cf correctionFile
	if err := yaml.Unmarshal(correctionsYAML, &cf); err != nil {
		return nil, fmt.Errorf("parsing corrections: %w", err)
	}
	if len(cf.Corrections) > maxCorrections {
		return nil, fmt.Errorf("correction table too large: %d entries", len(cf.Corrections))
	}

	corrections := make([]Correction, 1, len(cf.Corrections)+1)
	var entries []Entry
	displaced := make(map[string]bool)
	for _, spec := range cf.Corrections {
		wrong := script.Normalize(spec.Wrong)
		idx := uint32(len(corrections))
		corrections = append(corrections, Correction{
			Want: script.Normalize(spec.Right),
			Rule: types.Rule{Source: types.ParseRuleSource(spec.Source), Code: spec.Code},
			Note: spec.Note,
		})
		e := Entry{Key: wrong, Correction: idx}
		if hw, ok := headwords[wrong]; ok {
			// the surface form is also a headword: correction wins the
			// plain key, headword record moves to the extension key
			e.Origin = hw.origin
			e.Gender = hw.gender
			entries = append(entries, Entry{Key: wrong + keyExt, Origin: hw.origin, Gender: hw.gender})
			displaced[wrong] = true
		}
		entries = append(entries, e)
	}
	for word, hw := range headwords {
		if displaced[word] {
			continue
		}
		entries = append(entries, Entry{Key: word, Origin: hw.origin, Gender: hw.gender})
	}
	return Build(entries, corrections)
}
