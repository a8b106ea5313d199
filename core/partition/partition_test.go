package partition

import (
	"math"
	"testing"

	"rnamoip-core/energy"
	"rnamoip-core/oracle"
	"rnamoip-core/seq"
)

func newOracle(s string) *oracle.Oracle {
	return oracle.New(seq.New(s), energy.DefaultParams())
}

func TestNoPKFastAgreesWithNoPKSlow(t *testing.T) {
	sequences := []string{
		"GGGAAACCC",
		"GGGGCAAAAGCCCC",
		"GCGCAAAAGCGCAAAAGCGC",
	}
	for _, s := range sequences {
		o := newOracle(s)
		slow := NoPKSlow(o)
		fast := NoPKFast(o)
		n := o.Seq.Len()
		got := fast.Q.Get(0, n-1)
		want := slow.Q.Get(0, n-1)
		if want == 0 {
			t.Fatalf("%s: slow partition function is zero", s)
		}
		relErr := math.Abs(got-want) / want
		if relErr > 1e-4 {
			t.Fatalf("%s: Q(0,n-1) fast=%v slow=%v relErr=%v", s, got, want, relErr)
		}
	}
}

func TestNoPKPartitionIsAtLeastOne(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCC")
	tbl := NoPKSlow(o)
	n := o.Seq.Len()
	if tbl.Q.Get(0, n-1) < 1.0 {
		t.Fatalf("Q(0,n-1) = %v, want >= 1 (empty structure always included)", tbl.Q.Get(0, n-1))
	}
}

func TestNoPKShortSequenceHasNoPairs(t *testing.T) {
	o := newOracle("GGGAAA")
	tbl := NoPKSlow(o)
	n := o.Seq.Len()
	if got := tbl.Q.Get(0, n-1); got != 1.0 {
		t.Fatalf("Q(0,n-1) for unpairable sequence = %v, want 1.0", got)
	}
}

func TestPKFastPartitionFunctionIsAtLeastOne(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCCGGGGCAAAAGCCCC")
	tbl := PKFast(o)
	n := o.Seq.Len()
	got := tbl.Q.Get(0, n-1)
	if got < 1.0 {
		t.Fatalf("PK Q(0,n-1) = %v, want >= 1", got)
	}
}

func TestPKFastAndPKSlowAgree(t *testing.T) {
	o := newOracle("GGGGCAAAAGCCCCGGGG")
	fast := PKFast(o)
	slow := PKSlow(o)
	n := o.Seq.Len()
	if fast.Q.Get(0, n-1) != slow.Q.Get(0, n-1) {
		t.Fatalf("PKFast and PKSlow should share one recursion and agree exactly")
	}
}

func TestSetMaxWorkersOverridesDefaultWorkers(t *testing.T) {
	defer SetMaxWorkers(0)

	SetMaxWorkers(1)
	if got := defaultWorkers(128); got != 1 {
		t.Fatalf("defaultWorkers(128) with override=1 = %d, want 1", got)
	}

	SetMaxWorkers(3)
	if got := defaultWorkers(128); got != 3 {
		t.Fatalf("defaultWorkers(128) with override=3 = %d, want 3", got)
	}

	SetMaxWorkers(0)
	if got := defaultWorkers(1); got != 1 {
		t.Fatalf("defaultWorkers(1) = %d, want 1 regardless of override", got)
	}
}

func TestMatrixSeedConvention(t *testing.T) {
	m := NewMatrix(5)
	if m.Get(2, 1) != 1 {
		t.Fatalf("Get(i,i-1) should be the fixed empty-span seed 1.0")
	}
	m.Set(2, 1, 99)
	if m.Get(2, 1) != 1 {
		t.Fatalf("seed cell must not be writable")
	}
}
