package oracle

import (
	"testing"

	"rnamoip-core/energy"
	"rnamoip-core/seq"
)

func TestGHLReturnsNonzeroHairpinEnergy(t *testing.T) {
	s := seq.New("GGGAAACCC")
	o := New(s, energy.DefaultParams())
	g := o.GHL(0, 8)
	if g == 0 {
		t.Fatalf("expected nonzero hairpin energy")
	}
}

func TestGILStackWhenAdjacent(t *testing.T) {
	s := seq.New("GGGAAACCC")
	o := New(s, energy.DefaultParams())
	got := o.GIL(0, 1, 7, 8, false)
	want := o.Params.Stack37[s.PairType(0, 8)][s.PairType(1, 7)]
	if got != want {
		t.Fatalf("GIL stack case = %v, want %v", got, want)
	}
}

func TestGILPseudoknotScaling(t *testing.T) {
	s := seq.New("GGGGGAAACCCCC")
	o := New(s, energy.DefaultParams())
	plain := o.GIL(0, 1, 11, 12, false)
	pk := o.GIL(0, 1, 11, 12, true)
	want := plain * o.Params.PKStackSpan
	if pk != want {
		t.Fatalf("pk-scaled GIL = %v, want %v", pk, want)
	}
}

func TestGILAsymmetryIsCapped(t *testing.T) {
	o := &Oracle{Params: energy.DefaultParams()}
	got := o.GILAsymmetry(1, 20)
	if got > o.Gloop(21)+o.Params.MaxAsymmetry+1e-9 {
		t.Fatalf("asymmetry penalty exceeded cap: %v", got)
	}
}
