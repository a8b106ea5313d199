// core/pareto/pareto.go
package pareto

import (
	"context"
	"errors"
	"math"

	"rnamoip-core/ilp"
	"rnamoip-core/solver"
	"rnamoip-core/structure"
)

// Enumerator runs the epsilon-constraint method over a built Model to
// enumerate the Pareto frontier of (motif coverage, expected accuracy)
// solutions (spec.md §3 "Pareto frontier", mirroring MOIP::extend_pareto
// and MOIP::add_solution).
type Enumerator struct {
	Model    *ilp.Model
	Solver   solver.Interface
	Frontier []structure.SecondaryStructure

	n            int
	noRepeatCuts []ilp.Constraint
}

// NewEnumerator builds an Enumerator over a solved-model/solver pair. n is
// the sequence length, needed only to size returned structures.
func NewEnumerator(model *ilp.Model, s solver.Interface, n int) *Enumerator {
	return &Enumerator{Model: model, Solver: s, n: n}
}

// Run enumerates the full Pareto frontier starting from an unconstrained
// bound on objective 1, returning every non-dominated solution found.
func (e *Enumerator) Run(ctx context.Context) ([]structure.SecondaryStructure, error) {
	return e.RunBounded(ctx, math.Inf(-1), math.Inf(1))
}

// RunBounded enumerates the Pareto frontier restricted to an initial
// [lambdaMin, lambdaMax] bound on objective 1, letting callers narrow the
// epsilon-constraint search (spec.md §6 external interface's lambda bounds)
// instead of always sweeping the unconstrained range. If the context
// expires mid-search, RunBounded stops and returns the Pareto set
// collected so far rather than an error (spec.md §5: "Expiry causes the
// enumerator to return the Pareto set collected so far").
func (e *Enumerator) RunBounded(ctx context.Context, lambdaMin, lambdaMax float64) ([]structure.SecondaryStructure, error) {
	if err := e.extend(ctx, lambdaMin, lambdaMax); err != nil {
		return nil, err
	}
	return e.Frontier, nil
}

// extend mirrors MOIP::extend_pareto: solve objective 2 (expected
// accuracy) under the constraint that objective 1 (motif coverage) lies
// in [lambdaMin, lambdaMax]; if the result is undominated, record it and
// recurse with lambdaMin raised to the solution's own objective-1 value,
// narrowing the search to motif coverage at least that high (the no-repeat
// cut keeps the same assignment from being returned again). A context
// deadline/cancellation surfaced by the solver ends the recursion without
// propagating an error, so the frontier built so far is preserved.
func (e *Enumerator) extend(ctx context.Context, lambdaMin, lambdaMax float64) error {
	s, err := e.solveObjective(ctx, 2, lambdaMin, lambdaMax)
	if err != nil {
		if errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
			return nil
		}
		return err
	}
	if s.Empty {
		return nil
	}
	if !e.isUndominatedYet(s) {
		return nil
	}
	e.addSolution(s)
	return e.extend(ctx, s.ObjectiveScore(1), lambdaMax)
}

func (e *Enumerator) isUndominatedYet(s structure.SecondaryStructure) bool {
	for _, p := range e.Frontier {
		if p.Dominates(s) {
			return false
		}
	}
	return true
}

// addSolution adds s to the frontier, first removing every entry s now
// dominates. The original engine's equivalent (MOIP::add_solution) built
// a to-remove index list and erased it with a loop bounded `i != 0`,
// which never erases index 0 of that list — here a single stable filter
// removes every dominated entry, index 0 included.
func (e *Enumerator) addSolution(s structure.SecondaryStructure) {
	kept := e.Frontier[:0:0]
	for _, p := range e.Frontier {
		if !s.Dominates(p) {
			kept = append(kept, p)
		}
	}
	e.Frontier = append(kept, s)
}

// solveObjective solves one objective (1 or 2) under a bound on the
// other, mirroring MOIP::solve_objective, then adds a no-repeat cut so a
// later call in the same Enumerator cannot return the identical
// assignment again.
func (e *Enumerator) solveObjective(ctx context.Context, o int, min, max float64) (structure.SecondaryStructure, error) {
	otherCoeffs := otherObjectiveCoeffs(e.Model, o)

	extra := make([]ilp.Constraint, 0, len(e.noRepeatCuts)+2)
	extra = append(extra, e.noRepeatCuts...)
	if !math.IsInf(min, -1) {
		extra = append(extra, ilp.Constraint{Name: "epsilon_min", Coeffs: otherCoeffs, Sense: ilp.GE, RHS: min})
	}
	if !math.IsInf(max, 1) {
		extra = append(extra, ilp.Constraint{Name: "epsilon_max", Coeffs: otherCoeffs, Sense: ilp.LE, RHS: max})
	}

	obj := solver.Objective1
	if o == 2 {
		obj = solver.Objective2
	}

	res, err := e.Solver.Solve(ctx, e.Model, obj, extra)
	if err != nil {
		if err == solver.ErrSolverInfeasible {
			return structure.NewEmpty(), nil
		}
		return structure.SecondaryStructure{}, err
	}
	if res.Status != solver.StatusOptimal {
		return structure.NewEmpty(), nil
	}

	s := structure.New(e.n)
	for idx, v := range e.Model.Vars {
		if !res.Model[idx] {
			continue
		}
		switch v.Kind {
		case ilp.VarPair:
			s.SetBasepair(v.U, v.V)
		case ilp.VarComponent:
			if v.CompIdx == 0 {
				s.InsertMotif(v.MotifIdx)
			}
		}
	}
	s.Sort()
	s.SetObjectiveScore(1, objectiveValue(e.Model.Obj1, res.Model))
	s.SetObjectiveScore(2, objectiveValue(e.Model.Obj2, res.Model))

	e.noRepeatCuts = append(e.noRepeatCuts, noRepeatCut(e.Model, res.Model))
	return s, nil
}

func otherObjectiveCoeffs(m *ilp.Model, solving int) map[int]float64 {
	if solving == 2 {
		return m.Obj1
	}
	return m.Obj2
}

func objectiveValue(coeffs map[int]float64, assignment solver.ModelMap) float64 {
	var v float64
	for idx, coeff := range coeffs {
		if assignment[idx] {
			v += coeff
		}
	}
	return v
}

// noRepeatCut forbids the solver from returning res again (mirrors the
// "forbidding to find best_ss later" constraint MOIP::solve_objective adds
// after each solve): sum of unset vars plus (1-value) of set vars must be
// at least 1, i.e. at least one variable must flip.
func noRepeatCut(m *ilp.Model, assignment solver.ModelMap) ilp.Constraint {
	coeffs := make(map[int]float64, len(m.Vars))
	ones := 0
	for idx := range m.Vars {
		if assignment[idx] {
			coeffs[idx] = -1
			ones++
		} else {
			coeffs[idx] = 1
		}
	}
	return ilp.Constraint{Name: "no_repeat", Coeffs: coeffs, Sense: ilp.GE, RHS: float64(1 - ones)}
}
