package pipeline

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/phrases.yaml
var phrasesYAML []byte

type phraseSpec struct {
	Wrong string `yaml:"wrong"`
	Right string `yaml:"right"`
	Note  string `yaml:"note"`
}

type phraseFile struct {
	Padayog []phraseSpec `yaml:"padayog"`
	Style   []phraseSpec `yaml:"style"`
}

func loadPhrases() (phraseFile, error) {
	var pf phraseFile
	if err := yaml.Unmarshal(phrasesYAML, &pf); err != nil {
		return pf, fmt.Errorf("parsing phrase table: %w", err)
	}
	return pf, nil
}
