// core/solver/bruteforce.go
package solver

import (
	"context"
	"fmt"

	"rnamoip-core/ilp"
)

// MaxBruteForceVars caps the variable count BruteForce will attempt;
// beyond it, exhaustive 2^k enumeration is not practical. BruteForce
// exists as the package's one concrete Interface implementation for
// tests and small inputs, not as a production MILP solver (spec.md
// Non-goals: the real solver is an external black box).
const MaxBruteForceVars = 22

// BruteForce exhaustively enumerates every boolean assignment and returns
// the feasible one maximizing the requested objective. It implements
// Interface.
type BruteForce struct{}

func (BruteForce) Solve(ctx context.Context, m *ilp.Model, obj Objective, extra []ilp.Constraint) (Result, error) {
	k := len(m.Vars)
	if k > MaxBruteForceVars {
		return Result{}, fmt.Errorf("%w: brute-force solver cannot handle %d variables (limit %d)", ErrSolverUnavailable, k, MaxBruteForceVars)
	}

	coeffs := m.Obj1
	if obj == Objective2 {
		coeffs = m.Obj2
	}

	constraints := make([]ilp.Constraint, 0, len(m.Constraints)+len(extra))
	constraints = append(constraints, m.Constraints...)
	constraints = append(constraints, extra...)

	best := Result{Status: StatusInfeasible}
	bestSet := false
	assignment := make([]bool, k)

	var rec func(i int) error
	rec = func(i int) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if i == k {
			if !satisfies(assignment, constraints) {
				return nil
			}
			val := objectiveValue(assignment, coeffs)
			if !bestSet || val > best.ObjectiveValue {
				mm := make(ModelMap, k)
				for idx, v := range assignment {
					mm[idx] = v
				}
				best = Result{Status: StatusOptimal, Model: mm, ObjectiveValue: val}
				bestSet = true
			}
			return nil
		}
		for _, v := range [2]bool{false, true} {
			assignment[i] = v
			if err := rec(i + 1); err != nil {
				return err
			}
		}
		return nil
	}

	if err := rec(0); err != nil {
		return Result{}, err
	}
	if !bestSet {
		return Result{Status: StatusInfeasible}, ErrSolverInfeasible
	}
	return best, nil
}

func satisfies(assignment []bool, constraints []ilp.Constraint) bool {
	for _, c := range constraints {
		var sum float64
		for idx, coeff := range c.Coeffs {
			if idx >= 0 && idx < len(assignment) && assignment[idx] {
				sum += coeff
			}
		}
		switch c.Sense {
		case ilp.LE:
			if sum > c.RHS+1e-9 {
				return false
			}
		case ilp.GE:
			if sum < c.RHS-1e-9 {
				return false
			}
		case ilp.EQ:
			if sum < c.RHS-1e-9 || sum > c.RHS+1e-9 {
				return false
			}
		}
	}
	return true
}

func objectiveValue(assignment []bool, coeffs map[int]float64) float64 {
	var v float64
	for idx, coeff := range coeffs {
		if idx >= 0 && idx < len(assignment) && assignment[idx] {
			v += coeff
		}
	}
	return v
}
