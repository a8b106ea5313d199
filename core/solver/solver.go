// core/solver/solver.go
package solver

import (
	"context"
	"errors"

	"rnamoip-core/ilp"
)

// ErrSolverUnavailable is returned by an Interface implementation that
// cannot reach its backing solver (process not found, licence missing,
// RPC unreachable). ErrSolverInfeasible is returned when the solver ran
// but proved the model has no feasible assignment.
var (
	ErrSolverUnavailable = errors.New("solver: backend unavailable")
	ErrSolverInfeasible  = errors.New("solver: model is infeasible")
)

// Status is the outcome of a Solve call, the bounded-ILP analogue of
// crillab-gophersat's SAT Status (Sat/Unsat/Indet).
type Status int

const (
	StatusOptimal Status = iota
	StatusInfeasible
	StatusIndeterminate
)

func (s Status) String() string {
	switch s {
	case StatusOptimal:
		return "optimal"
	case StatusInfeasible:
		return "infeasible"
	default:
		return "indeterminate"
	}
}

// ModelMap associates a decision-variable index with its solved boolean
// value, the ILP analogue of crillab-gophersat's ModelMap.
type ModelMap map[int]bool

// Result is a single Solve outcome.
type Result struct {
	Status         Status
	Model          ModelMap
	ObjectiveValue float64
}

// Objective selects which of a model's two linear objectives to maximize.
type Objective int

const (
	Objective1 Objective = iota
	Objective2
)

// Interface is any backend able to maximize one linear objective of a
// bounded 0/1 model subject to its constraints plus an optional extra set
// (bound constraints and no-repeat cuts added by the Pareto enumerator).
// This generalizes crillab-gophersat's Interface — Optimal/Enumerate over
// pure SAT clauses — to bounded 0/1 linear integer programming; real MILP
// backends (CPLEX, CBC, OR-Tools) are expected to implement it out of
// process. See DESIGN.md for why no such backend ships here.
type Interface interface {
	Solve(ctx context.Context, m *ilp.Model, obj Objective, extra []ilp.Constraint) (Result, error)
}
