package structure

import "testing"

func TestDominatesRequiresWeakOnBothStrictOnOne(t *testing.T) {
	a := SecondaryStructure{Obj1: 2, Obj2: 3}
	b := SecondaryStructure{Obj1: 2, Obj2: 3}
	if a.Dominates(b) {
		t.Fatalf("identical scores must not dominate")
	}
	c := SecondaryStructure{Obj1: 2, Obj2: 4}
	if !c.Dominates(a) {
		t.Fatalf("strictly better on one, equal on other should dominate")
	}
	d := SecondaryStructure{Obj1: 1, Obj2: 4}
	if d.Dominates(a) {
		t.Fatalf("worse on one objective must not dominate")
	}
}

func TestSortOrdersBasePairsByEndpoints(t *testing.T) {
	s := New(10)
	s.SetBasepair(5, 9)
	s.SetBasepair(0, 8)
	s.Sort()
	if s.BasePairs[0].U != 0 || s.BasePairs[1].U != 5 {
		t.Fatalf("pairs not sorted by 5' endpoint: %+v", s.BasePairs)
	}
}

func TestSetBasepairNormalizesOrder(t *testing.T) {
	s := New(10)
	s.SetBasepair(9, 5)
	if s.BasePairs[0].U != 5 || s.BasePairs[0].V != 9 {
		t.Fatalf("basepair not normalized: %+v", s.BasePairs[0])
	}
}
