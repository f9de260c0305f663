package morph

import (
	"sort"

	"github.com/nepalinlp/orthography-engine/pkg/types"
)

// originOverrides holds curated word → origin decisions that outrank
// both lexicon tags and heuristics. Kept sorted for readability; lookup
// goes through a map built at init.
var originOverrides = map[string]types.Origin{
	"अग्नि":        types.OriginTatsam,
	"अनुभूति":      types.OriginTatsam,
	"अर्थात्":      types.OriginTatsam,
	"आउँछ":         types.OriginTadbhav,
	"आगो":          types.OriginTadbhav,
	"आतिथ्य":       types.OriginTatsam,
	"इन्डिया":      types.OriginAagantuk,
	"इन्स्टिच्युट": types.OriginAagantuk,
	"इन्स्टिच्यूट": types.OriginAagantuk,
	"ऋतु":          types.OriginTatsam,
	"ऋषि":          types.OriginTatsam,
	"ऋषिमुनि":      types.OriginTatsam,
	"एकता":         types.OriginTatsam,
	"एशिया":        types.OriginAagantuk,
	"औचित्य":       types.OriginTatsam,
	"कम्प्युटर":    types.OriginAagantuk,
	"कारबाही":      types.OriginTadbhav,
	"कृति":         types.OriginTatsam,
	"खुर्सानी":     types.OriginTadbhav,
	"गत्यवरोध":     types.OriginTatsam,
	"गुणस्तरीय":    types.OriginTatsam,
	"चुला":         types.OriginDeshaj,
	"झन्डा":        types.OriginTadbhav,
	"टोपी":         types.OriginDeshaj,
	"दिदी":         types.OriginTadbhav,
	"धीरता":        types.OriginTatsam,
	"धैर्य":        types.OriginTatsam,
	"नमस्ते":       types.OriginTatsam,
	"परिषद्":       types.OriginTatsam,
	"पहाडी":        types.OriginTadbhav,
	"पुतली":        types.OriginTadbhav,
	"पूर्वी":       types.OriginTatsam,
	"पूर्वीय":      types.OriginTatsam,
	"प्रशासन":      types.OriginTatsam,
	"फाउन्डेसन":    types.OriginAagantuk,
	"बगैँचा":       types.OriginTadbhav,
	"बहिनी":        types.OriginTadbhav,
	"बेहोरा":       types.OriginTadbhav,
	"भाइ":          types.OriginTadbhav,
	"भाउजू":        types.OriginTadbhav,
	"भाका":         types.OriginDeshaj,
	"भएकामा":       types.OriginTadbhav,
	"महत्त्व":      types.OriginTatsam,
	"मिठो":         types.OriginTadbhav,
	"मितिनीले":     types.OriginTadbhav,
	"मिलेको":       types.OriginTadbhav,
	"मुखमा":        types.OriginTadbhav,
	"मुद्दा":       types.OriginAagantuk,
	"यकिन":         types.OriginAagantuk,
	"यथार्थ":       types.OriginTatsam,
	"रजिस्टर":      types.OriginAagantuk,
	"राजनीतिक":     types.OriginTatsam,
	"रूप":          types.OriginTatsam,
	"लक्ष्य":       types.OriginTatsam,
	"विज्ञान":      types.OriginTatsam,
	"विवेकशील":     types.OriginTatsam,
	"व्यावहारिक":   types.OriginTatsam,
	"शासन":         types.OriginTatsam,
	"शुद्ध":        types.OriginTatsam,
	"शृङ्गार":      types.OriginTatsam,
	"शृङ्खला":      types.OriginTatsam,
	"शेष":          types.OriginTatsam,
	"संवाद":        types.OriginTatsam,
	"संसद्":        types.OriginTatsam,
	"संसारमा":      types.OriginTadbhav,
	"सहिद":         types.OriginAagantuk,
	"सामग्री":      types.OriginTatsam,
	"सुन्दरता":     types.OriginTatsam,
	"सुरुआत":       types.OriginTadbhav,
	"सौन्दर्य":     types.OriginTatsam,
	"सौन्दर्यता":   types.OriginTatsam,
	"स्विकार्नु":   types.OriginTadbhav,
	"हरू":          types.OriginTadbhav,
	"हात":          types.OriginTadbhav,
	"हामी":         types.OriginTadbhav,

	// Common misspelled surface forms. Tagging these lets origin-gated
	// correction rules classify a word before it has been repaired.
	"आत्मवत":    types.OriginTatsam,
	"खुषी":      types.OriginAagantuk,
	"बुद्धिमान": types.OriginTatsam,
	"भगवान":     types.OriginTatsam,
	"रजिष्टर":   types.OriginAagantuk,
	"विद्वान":   types.OriginTatsam,
	"शक्तिमान":  types.OriginTatsam,
	"श्रीमान":   types.OriginTatsam,
	"सिँह":      types.OriginTatsam,
	"स्वीकार्नु": types.OriginTadbhav,
}

// prefixForm is one strippable prefix: the canonical morpheme and the
// surface it takes inside a word after boundary sandhi. Order matters:
// longer or more specific surfaces come before their substrings.
type prefixForm struct {
	canonical string
	surface   string
}

var prefixForms = []prefixForm{
	{"प्र", "प्र"},
	{"उत्", "उल्"}, // उत् + ल → उल्ल
	{"उत्", "उच्"}, // उत् + च → उच्च
	{"उत्", "उत्"},
	{"सम्", "सम्"},
	{"सम्", "सं"},
	{"अभि", "अभि"},
	{"अनु", "अनु"},
	{"परि", "परि"},
	{"वि", "वि"},
	{"निर्", "निर्"},
	{"निर्", "निः"},
	{"निस्", "निस्"},
	{"अ", "अ"},
	{"पुनः", "पुनः"},
	{"पुनः", "पुनर"}, // पुनः before a vowel
}

// suffixes in strip order. Forms starting with an independent vowel
// also match their matra-initial spelling after a consonant.
var suffixes = []string{
	"ईकरण",
	"ता",
	"ई",
	"ईय",
	"नु",
	"एली",
	"ने",
	"को",
	"मा",
	"ले",
	"ित",
	"इक",
}

// suffixSurfaces maps each canonical suffix to the surface spellings it
// can take, built at init. Longer surfaces strip first so एली is not
// shadowed by its ई tail.
var suffixSurfaces = func() [][2]string {
	matraFor := map[rune]rune{'ई': 'ी', 'इ': 'ि', 'ए': 'े'}
	var out [][2]string
	for _, s := range suffixes {
		out = append(out, [2]string{s, s})
		runes := []rune(s)
		if m, ok := matraFor[runes[0]]; ok {
			variant := string(m) + string(runes[1:])
			out = append(out, [2]string{s, variant})
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return len(out[i][1]) > len(out[j][1])
	})
	return out
}()
