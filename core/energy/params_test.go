package energy

import (
	"errors"
	"strings"
	"testing"
)

func TestDefaultParamsLoaded(t *testing.T) {
	p := DefaultParams()
	if p.Hairpin37[2] == 0 {
		t.Fatalf("hairpin37[2] should be populated")
	}
	if len(p.Tloop37) == 0 {
		t.Fatalf("tloop37 should contain curated tetraloops")
	}
	if p.PKMultiloopPenalty != p.A1 {
		t.Fatalf("pseudoknot multiloop penalty should alias to A1 at load time, got %v want %v", p.PKMultiloopPenalty, p.A1)
	}
}

func TestLoadFromReaderOverridesScalars(t *testing.T) {
	r := strings.NewReader("a1 = 5.5\n# comment\n\nat_penalty = 0.75\n")
	p, err := LoadFromReader(r)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p.A1 != 5.5 {
		t.Fatalf("A1 = %v, want 5.5", p.A1)
	}
	if p.AtPenalty != 0.75 {
		t.Fatalf("AtPenalty = %v, want 0.75", p.AtPenalty)
	}
}

func TestLoadFromReaderRejectsMalformedLine(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("not-a-kv-line"))
	if !errors.Is(err, ErrEnergyParamLoad) {
		t.Fatalf("expected ErrEnergyParamLoad, got %v", err)
	}
}

func TestLoadFromReaderRejectsUnknownKey(t *testing.T) {
	_, err := LoadFromReader(strings.NewReader("bogus_key = 1.0"))
	if !errors.Is(err, ErrEnergyParamLoad) {
		t.Fatalf("expected ErrEnergyParamLoad, got %v", err)
	}
}
