package posterior

import (
	"testing"

	"rnamoip-core/energy"
	"rnamoip-core/oracle"
	"rnamoip-core/seq"
)

func newOracle(s string) *oracle.Oracle {
	return oracle.New(seq.New(s), energy.DefaultParams())
}

func TestPosteriorProbabilitiesAreBounded(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCC")
	r := Compute(o, true)
	n := o.Seq.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			v := r.Pb.Get(i, j)
			if v < -1e-6 || v > 1+1e-6 {
				t.Fatalf("Pb(%d,%d) = %v out of [0,1]", i, j, v)
			}
		}
	}
}

func TestPosteriorRowSumBounded(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCC")
	r := Compute(o, true)
	n := o.Seq.Len()
	for i := 0; i < n; i++ {
		var sum float64
		// Pb is upper-triangular (Get(i, i-1) is the matrix's empty-span
		// seed, not a probability), so base i's pairs are (i,j>i) and (k<i,i).
		for j := i + 1; j < n; j++ {
			sum += r.Pb.Get(i, j)
		}
		for k := 0; k < i; k++ {
			sum += r.Pb.Get(k, i)
		}
		if sum > 1+1e-3 {
			t.Fatalf("row %d base-pair probability sums to %v, want <= 1", i, sum)
		}
	}
}

func TestPosteriorFastAndSlowAgree(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCC")
	fast := Compute(o, true)
	slow := Compute(o, false)
	n := o.Seq.Len()
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			df := fast.Pb.Get(i, j) - slow.Pb.Get(i, j)
			if df < 0 {
				df = -df
			}
			if df > 1e-3 {
				t.Fatalf("Pb(%d,%d) fast=%v slow=%v diverge", i, j, fast.Pb.Get(i, j), slow.Pb.Get(i, j))
			}
		}
	}
}

func TestLog10CellOmitsNegligibleProbability(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCC")
	r := Compute(o, true)
	r.Pb.Set(0, 1, 0)
	if _, ok := r.Log10Cell(0, 1); ok {
		t.Fatalf("expected a near-zero probability cell to be omitted")
	}
}

func TestLog10CellRoundsNegativeLog10(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCC")
	r := Compute(o, true)
	r.Pb.Set(2, 9, 0.01)
	v, ok := r.Log10Cell(2, 9)
	if !ok {
		t.Fatalf("expected cell to be rendered")
	}
	if v != 2 {
		t.Fatalf("Log10Cell = %d, want 2", v)
	}
}

func TestPosteriorEmptySequence(t *testing.T) {
	o := newOracle("")
	r := Compute(o, true)
	if r.N != 0 {
		t.Fatalf("N = %d, want 0", r.N)
	}
}
