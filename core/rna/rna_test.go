package rna

import (
	"context"
	"errors"
	"testing"

	"rnamoip-core/motif"
	"rnamoip-core/seq"
)

// S1: a short hairpin-forming sequence folds to a non-empty frontier. n=7
// keeps the admissible-pair count (and so the brute-force variable count)
// small enough for the reference solver.
func TestFoldHairpinProducesFrontier(t *testing.T) {
	res, err := Fold(context.Background(), Options{
		Sequence: "GGGAAAC",
		Theta:    0.0,
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if len(res.Frontier) == 0 {
		t.Fatalf("expected a non-empty Pareto frontier")
	}
}

// S2: an empty sequence is rejected before any computation starts.
func TestFoldRejectsEmptySequence(t *testing.T) {
	_, err := Fold(context.Background(), Options{Sequence: ""})
	if !errors.Is(err, seq.ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}
}

// S3: an all-N sequence is rejected.
func TestFoldRejectsAllNSequence(t *testing.T) {
	_, err := Fold(context.Background(), Options{Sequence: "NNNNNNN"})
	if !errors.Is(err, seq.ErrInvalidSequence) {
		t.Fatalf("expected ErrInvalidSequence, got %v", err)
	}
}

// S4: a thymine-containing sequence is normalized and folds, with a
// warning recorded.
func TestFoldNormalizesThymineAndWarns(t *testing.T) {
	res, err := Fold(context.Background(), Options{
		Sequence: "GGGTAAC",
		Theta:    0.0,
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if len(res.Warnings) == 0 {
		t.Fatalf("expected a normalization warning for a thymine-containing sequence")
	}
}

// S6: a positive lambda-min above every reachable motif-coverage score
// prunes the frontier to empty without erroring.
func TestFoldLambdaMinPrunesUnreachableFrontier(t *testing.T) {
	res, err := Fold(context.Background(), Options{
		Sequence:  "GGGAAAC",
		Theta:     0.0,
		LambdaMin: 1000,
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if len(res.Frontier) != 0 {
		t.Fatalf("expected an empty frontier above every reachable motif-coverage score, got %d", len(res.Frontier))
	}
}

// S5: supplying a motif insertion site wires a component decision
// variable into the model without breaking the fold.
func TestFoldWiresMotifSites(t *testing.T) {
	res, err := Fold(context.Background(), Options{
		Sequence: "GGGAAAC",
		Theta:    0.0,
		MotifSites: []motif.Motif{
			{Components: []motif.Component{{First: 1, Last: 3}}, Score: 5},
		},
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if len(res.Frontier) == 0 {
		t.Fatalf("expected a non-empty Pareto frontier with a motif site present")
	}
}

// Pseudoknots, when requested, actually runs the pseudoknot-aware
// partition function and surfaces its total Q(0,n-1); it is not a no-op.
func TestFoldPseudoknotsComputesPartitionFunction(t *testing.T) {
	without, err := Fold(context.Background(), Options{
		Sequence: "GGGGCAAAAGCCCC",
		Theta:    0.0,
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if without.PseudoknotQ != 0 {
		t.Fatalf("expected PseudoknotQ to stay zero when Pseudoknots is unset, got %v", without.PseudoknotQ)
	}

	with, err := Fold(context.Background(), Options{
		Sequence:    "GGGGCAAAAGCCCC",
		Theta:       0.0,
		Pseudoknots: true,
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if with.PseudoknotQ < 1.0 {
		t.Fatalf("expected PseudoknotQ >= 1 (empty structure always included), got %v", with.PseudoknotQ)
	}
}

// S7: a motif whose closing pair is admissible appears inserted on the
// Pareto frontier, contributing its score to objective 1. Since this is
// the only motif candidate, the highest-obj1 frontier point can only be
// reached by inserting it — no other way to raise objective 1 exists.
func TestFoldInsertsAdmissibleMotifOnFrontier(t *testing.T) {
	res, err := Fold(context.Background(), Options{
		Sequence: "GGGAAACC",
		Theta:    0.0,
		MotifSites: []motif.Motif{
			// closing pair (1,6) is a canonical G-C pair that can stack on
			// (0,7), so the no-lonely-pair constraints allow it; no residue
			// strictly inside [1,6] can pair at n=8 (i<=n-7=1).
			{Components: []motif.Component{{First: 1, Last: 6}}, Score: 5},
		},
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}

	if len(res.Frontier) == 0 {
		t.Fatalf("expected a non-empty frontier")
	}
	best := res.Frontier[0]
	for _, s := range res.Frontier[1:] {
		if s.Obj1 > best.Obj1 {
			best = s
		}
	}
	if best.Obj1 != 5 {
		t.Fatalf("expected the highest-obj1 frontier point to score the motif's full weight (5), got %v", best.Obj1)
	}
	if len(best.Motifs) == 0 {
		t.Fatalf("expected the highest-obj1 frontier point to record the inserted motif")
	}
	hasClosingPair := false
	for _, bp := range best.BasePairs {
		if bp.U == 1 && bp.V == 6 {
			hasClosingPair = true
		}
	}
	if !hasClosingPair {
		t.Fatalf("expected the inserted motif's closing base pair (1,6) to be present")
	}
}

// S8: a motif whose closing pair falls below the minimum pairing distance
// (j-i>=4) never gets inserted — its component variable is constrained to
// zero (core/ilp's boundary constraint degenerates to C(x,0) <= 0), so
// objective 1 stays at zero for every frontier point.
func TestFoldNeverInsertsMotifWithInadmissibleClosingPair(t *testing.T) {
	res, err := Fold(context.Background(), Options{
		Sequence: "GGGAAAC",
		Theta:    0.0,
		MotifSites: []motif.Motif{
			// First=0, Last=2: distance 2 < 4, so (0,2) is never an
			// admissible pair regardless of theta.
			{Components: []motif.Component{{First: 0, Last: 2}}, Score: 5},
		},
	})
	if err != nil {
		t.Fatalf("Fold: %v", err)
	}
	if len(res.Frontier) == 0 {
		t.Fatalf("expected a non-empty frontier")
	}
	for _, s := range res.Frontier {
		if s.Obj1 != 0 {
			t.Fatalf("expected objective 1 to stay at zero with no insertable motif, got %v", s.Obj1)
		}
		if len(s.Motifs) != 0 {
			t.Fatalf("expected no frontier point to record an inserted motif, got %d", len(s.Motifs))
		}
	}
}
