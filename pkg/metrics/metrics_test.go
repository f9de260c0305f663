package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus"
)

func TestNewWithRegisters(t *testing.T) {
	reg := prometheus.NewRegistry()
	m := NewWith(reg)
	m.WordChecksTotal.WithLabelValues("correct").Inc()
	m.DiagnosticsTotal.WithLabelValues("vowel-length").Inc()
	m.DeriveLatency.Observe(2e-6)
	m.LexiconSize.Set(388)

	families, err := reg.Gather()
	if err != nil {
		t.Fatalf("Gather() error: %v", err)
	}
	want := map[string]bool{
		"orthography_word_checks_total":      false,
		"orthography_diagnostics_total":      false,
		"orthography_derive_latency_seconds": false,
		"orthography_lexicon_entries":        false,
	}
	for _, f := range families {
		if _, ok := want[f.GetName()]; ok {
			want[f.GetName()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("collector %s not gathered", name)
		}
	}
}

func TestDefaultIsShared(t *testing.T) {
	if Default() != Default() {
		t.Error("Default() built two collector sets")
	}
}
