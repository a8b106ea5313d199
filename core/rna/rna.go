// core/rna/rna.go
package rna

import (
	"context"
	"fmt"
	"math"

	"rnamoip-core/energy"
	"rnamoip-core/ilp"
	"rnamoip-core/motif"
	"rnamoip-core/oracle"
	"rnamoip-core/pareto"
	"rnamoip-core/partition"
	"rnamoip-core/posterior"
	"rnamoip-core/seq"
	"rnamoip-core/solver"
	"rnamoip-core/structure"
)

// Options configures one folding run (spec.md §6 "external interfaces").
type Options struct {
	Sequence      string
	Params        *energy.Params // nil selects energy.DefaultParams()
	FastPartition bool           // true: O(N^3)/O(N^5); false: O(N^4)/O(N^8)
	// Pseudoknots additionally runs the pseudoknot-aware partition
	// function (partition.PKFast/PKSlow, selected by FastPartition) and
	// reports its total Q(0,n-1) in Result.PseudoknotQ. The posterior
	// probabilities and ILP model Fold builds are still always derived
	// from the non-pseudoknotted tables: a pseudoknot-aware posterior
	// back-recursion and ILP encoding are not wired into this pipeline
	// (see DESIGN.md).
	Pseudoknots bool
	Theta       float64          // minimum posterior base-pair probability to model
	MotifSites  []motif.Motif    // candidate motif insertion sites
	Solver      solver.Interface // nil selects solver.BruteForce{}

	// LambdaMin/LambdaMax bound the epsilon-constraint sweep's starting
	// range on objective 1 (motif coverage); LambdaMax<=0 means unbounded
	// above, matching the non-negative range objective 1 ranges over.
	LambdaMin float64
	LambdaMax float64

	// WorkerThreads caps the partition-function sweep's worker-pool width
	// (core/partition.SetMaxWorkers); 0 leaves the GOMAXPROCS-derived
	// default in place.
	WorkerThreads int
}

// Result is the full output of one folding run.
type Result struct {
	Sequence  *seq.Sequence
	Posterior *posterior.Result
	Frontier  []structure.SecondaryStructure
	Warnings  []string

	// PseudoknotQ is the total pseudoknot-aware partition function
	// Q(0,n-1), populated only when Options.Pseudoknots is set; zero
	// otherwise.
	PseudoknotQ float64
}

// Fold runs the full pipeline spec.md §2 describes: normalize the
// sequence, compute base-pair posterior probabilities, build the 0/1
// linear model, and enumerate its Pareto frontier.
func Fold(ctx context.Context, opts Options) (*Result, error) {
	s := seq.New(opts.Sequence)
	if err := s.Validate(); err != nil {
		return nil, err
	}

	partition.SetMaxWorkers(opts.WorkerThreads)

	params := opts.Params
	if params == nil {
		params = energy.DefaultParams()
	}
	o := oracle.New(s, params)

	var pseudoknotQ float64
	if opts.Pseudoknots {
		var pk *partition.PKTables
		if opts.FastPartition {
			pk = partition.PKFast(o)
		} else {
			pk = partition.PKSlow(o)
		}
		pseudoknotQ = pk.Q.Get(0, s.Len()-1)
	}

	post := posterior.Compute(o, opts.FastPartition)

	model, err := ilp.Build(s.Len(), post.Pb, opts.MotifSites, opts.Theta)
	if err != nil {
		return nil, fmt.Errorf("rna: building model: %w", err)
	}

	slv := opts.Solver
	if slv == nil {
		slv = solver.BruteForce{}
	}

	lambdaMax := opts.LambdaMax
	if lambdaMax <= 0 {
		lambdaMax = math.Inf(1)
	}
	enumerator := pareto.NewEnumerator(model, slv, s.Len())
	frontier, err := enumerator.RunBounded(ctx, opts.LambdaMin, lambdaMax)
	if err != nil {
		return nil, fmt.Errorf("rna: enumerating Pareto frontier: %w", err)
	}

	return &Result{
		Sequence:    s,
		Posterior:   post,
		Frontier:    frontier,
		Warnings:    s.Warnings(),
		PseudoknotQ: pseudoknotQ,
	}, nil
}
